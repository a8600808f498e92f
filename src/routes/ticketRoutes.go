package routes

import (
	"html/template"

	"github.com/ARQAP/mesa-de-ayuda/src/controllers"
	"github.com/ARQAP/mesa-de-ayuda/src/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupTicketRoutes(router *gin.Engine, service *services.TicketService, tmpl *template.Template, log *zap.Logger) {
	ticketController := controllers.NewTicketController(service, tmpl, log)

	// Public routes
	router.GET("/", ticketController.ShowSubmitForm)
	router.POST("/", ticketController.SubmitTicket)

	// Technician routes
	router.GET("/dashboard", ticketController.Dashboard)
	router.GET("/dashboard/table", ticketController.DashboardTable)
	router.GET("/process/:id", ticketController.ProcessTicket)
	router.POST("/resolve/:id", ticketController.ResolveTicket)
	router.POST("/ticket/:id/edit", ticketController.EditTicket)
}
