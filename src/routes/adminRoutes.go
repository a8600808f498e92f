package routes

import (
	"github.com/ARQAP/mesa-de-ayuda/src/controllers"
	"github.com/ARQAP/mesa-de-ayuda/src/middleware"
	"github.com/ARQAP/mesa-de-ayuda/src/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupAdminRoutes(router *gin.Engine, tickets *services.TicketService, settings *services.SettingService, backups *services.BackupService, log *zap.Logger) {
	adminController := controllers.NewAdminController(tickets, settings, backups, log)

	admin := router.Group("/admin")
	{
		admin.GET("/settings", adminController.ShowSettings)
		admin.POST("/settings", adminController.UpdateSettings)
	}

	// Protected routes
	confirmed := admin.Group("")
	confirmed.Use(middleware.AdminConfirmationMiddleware(settings))
	{
		confirmed.POST("/delete_selected", adminController.DeleteSelected)
		confirmed.POST("/backup", adminController.Backup)
	}
}
