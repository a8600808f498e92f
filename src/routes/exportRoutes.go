package routes

import (
	"github.com/ARQAP/mesa-de-ayuda/src/controllers"
	"github.com/ARQAP/mesa-de-ayuda/src/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupExportRoutes(router *gin.Engine, service *services.TicketService, log *zap.Logger) {
	exportController := controllers.NewExportController(service, log)

	router.GET("/export", exportController.ExportTickets)
	router.GET("/__health", controllers.Health)
}
