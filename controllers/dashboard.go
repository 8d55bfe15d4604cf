package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learnhub/course-backend/services"
)

type DashboardController struct {
	Service *services.DashboardService
}

func (dashboard *DashboardController) GetDashboard(c *gin.Context) {
	idInstructor := c.Param("id")

	dashboardData, errRes := dashboard.Service.GetDashboard(idInstructor)
	if errRes != nil {
		abortWithErrRes(c, errRes)
		return
	}
	c.JSON(http.StatusOK, dashboardData)
}
