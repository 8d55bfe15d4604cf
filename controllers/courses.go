package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learnhub/course-backend/forms"
	"github.com/learnhub/course-backend/services"
)

type CoursesController struct {
	Service *services.CourseService
}

func (courses *CoursesController) GetCourses(c *gin.Context) {
	coursesData, errRes := courses.Service.GetCourses()
	if errRes != nil {
		abortWithErrRes(c, errRes)
		return
	}
	c.JSON(http.StatusOK, coursesData)
}

func (courses *CoursesController) GetCourse(c *gin.Context) {
	idCourse := c.Param("id")

	courseData, errRes := courses.Service.GetCourse(idCourse)
	if errRes != nil {
		abortWithErrRes(c, errRes)
		return
	}
	c.JSON(http.StatusOK, courseData)
}

func (courses *CoursesController) UploadCourse(c *gin.Context) {
	form := forms.NewCourseForm(c)
	multipartForm, _ := c.MultipartForm()

	courseData, errRes := courses.Service.UploadCourse(form, multipartForm)
	if errRes != nil {
		abortWithErrRes(c, errRes)
		return
	}
	c.JSON(http.StatusCreated, services.CourseUploadedRes{
		Message: "Course uploaded successfully",
		Course:  courseData,
	})
}

func (courses *CoursesController) UpdateCourse(c *gin.Context) {
	idCourse := c.Param("id")
	form := forms.NewCourseForm(c)
	multipartForm, _ := c.MultipartForm()

	courseData, errRes := courses.Service.UpdateCourse(idCourse, form, multipartForm)
	if errRes != nil {
		abortWithErrRes(c, errRes)
		return
	}
	c.JSON(http.StatusOK, courseData)
}

func (courses *CoursesController) DeleteCourse(c *gin.Context) {
	idCourse := c.Param("id")

	if errRes := courses.Service.DeleteCourse(idCourse); errRes != nil {
		abortWithErrRes(c, errRes)
		return
	}
	c.JSON(http.StatusOK, services.MessageRes{
		Message: "Course deleted successfully",
	})
}
