package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learnhub/course-backend/forms"
	"github.com/learnhub/course-backend/res"
	"github.com/learnhub/course-backend/services"
)

type QuizzesController struct {
	Service *services.QuizService
}

func (quizzes *QuizzesController) GetQuizzes(c *gin.Context) {
	quizzesData, errRes := quizzes.Service.GetQuizzes()
	if errRes != nil {
		abortWithErrRes(c, errRes)
		return
	}
	c.JSON(http.StatusOK, quizzesData)
}

func (quizzes *QuizzesController) UploadQuiz(c *gin.Context) {
	var form forms.QuizForm
	if err := c.ShouldBindJSON(&form); err != nil {
		abortWithErrRes(c, res.ValidationErr(fmt.Errorf(services.QUIZ_REQUIRED_MESSAGE)))
		return
	}
	quizData, errRes := quizzes.Service.UploadQuiz(&form)
	if errRes != nil {
		abortWithErrRes(c, errRes)
		return
	}
	c.JSON(http.StatusCreated, services.QuizRes{
		Message: "Quiz uploaded successfully",
		Quiz:    quizData,
	})
}

func (quizzes *QuizzesController) UpdateQuiz(c *gin.Context) {
	idQuiz := c.Param("id")
	var form forms.QuizUpdateForm
	if err := c.ShouldBindJSON(&form); err != nil {
		abortWithErrRes(c, res.ValidationErr(err))
		return
	}
	quizData, errRes := quizzes.Service.UpdateQuiz(idQuiz, &form)
	if errRes != nil {
		abortWithErrRes(c, errRes)
		return
	}
	c.JSON(http.StatusOK, services.QuizRes{
		Message: "Quiz updated successfully",
		Quiz:    quizData,
	})
}

func (quizzes *QuizzesController) DeleteQuiz(c *gin.Context) {
	idQuiz := c.Param("id")

	if errRes := quizzes.Service.DeleteQuiz(idQuiz); errRes != nil {
		abortWithErrRes(c, errRes)
		return
	}
	c.JSON(http.StatusOK, services.MessageRes{
		Message: "Quiz deleted successfully",
	})
}
