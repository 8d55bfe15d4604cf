package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/learnhub/course-backend/res"
)

func abortWithErrRes(c *gin.Context, errRes *res.ErrorRes) {
	c.AbortWithStatusJSON(errRes.StatusCode, errRes.Body())
}
