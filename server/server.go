package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/learnhub/course-backend/controllers"
	"github.com/learnhub/course-backend/models"
	"github.com/learnhub/course-backend/res"
	"github.com/learnhub/course-backend/services"
	"github.com/learnhub/course-backend/settings"
	"github.com/learnhub/course-backend/stack"
	"go.uber.org/zap"
)

var settingsData = settings.GetSettings()

func Init() {
	router := gin.New()
	// Zap logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	router.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
	}))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if err, ok := recovered.(string); ok {
			c.String(http.StatusInternalServerError, fmt.Sprintf("Server Internal Error: %s", err))
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, res.Response{
			Success: false,
			Message: "Server Internal Error",
		})
	}))
	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"*"},
		AllowHeaders: []string{"*"},
	}))
	// Validators
	InitValidators()
	// Storage
	if err := models.DbConnect.Ping(); err != nil {
		logger.Error("MongoDB connection error", zap.Error(err))
	} else {
		logger.Info("MongoDB connected")
	}
	uploadsService := services.NewUploadsService(settingsData.UPLOADS_DIRECTORY)
	if err := uploadsService.InitDirs(); err != nil {
		logger.Fatal("could not create upload directories", zap.Error(err))
	}
	// Services
	events := stack.NewNats(logger)
	courseService := services.NewCourseService(models.NewCourseModel(), uploadsService, events)
	quizService := services.NewQuizService(models.NewQuizModel(), events)
	dashboardService := services.NewDashboardService(models.NewUserModel())
	// Init controllers
	coursesController := &controllers.CoursesController{Service: courseService}
	quizzesController := &controllers.QuizzesController{Service: quizService}
	dashboardController := &controllers.DashboardController{Service: dashboardService}
	// Define routes
	// Courses
	router.GET("/courses", coursesController.GetCourses)
	router.GET("/courses/:id", coursesController.GetCourse)
	router.POST("/courses", coursesController.UploadCourse)
	router.PUT("/courses/:id", coursesController.UpdateCourse)
	router.DELETE("/courses/:id", coursesController.DeleteCourse)
	// Quizzes
	router.POST("/quizzes", quizzesController.UploadQuiz)
	router.GET("/quizzes", quizzesController.GetQuizzes)
	router.PUT("/quizzes/:id", quizzesController.UpdateQuiz)
	router.DELETE("/quizzes/:id", quizzesController.DeleteQuiz)
	// Dashboard
	router.GET("/dashboard/:id", dashboardController.GetDashboard)
	// Sub-API groups, same storage adapter behind them
	apiCourse := router.Group("/api/course")
	{
		apiCourse.GET("", coursesController.GetCourses)
		apiCourse.GET("/:id", coursesController.GetCourse)
	}
	apiQuiz := router.Group("/api/quiz")
	{
		apiQuiz.GET("", quizzesController.GetQuizzes)
	}
	// No route
	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(404, res.Response{
			Success: false,
			Message: "Not found",
		})
	})
	// Init server
	if err := router.Run(fmt.Sprintf(":%s", settingsData.PORT)); err != nil {
		logger.Fatal("Error init server", zap.Error(err))
	}
}
