package controllers

import (
	"net/http"

	"github.com/ARQAP/mesa-de-ayuda/src/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ExportController struct {
	service *services.TicketService
	log     *zap.Logger
}

func NewExportController(service *services.TicketService, log *zap.Logger) *ExportController {
	return &ExportController{service: service, log: log}
}

// ExportTickets handles GET /export and streams every ticket as CSV
func (c *ExportController) ExportTickets(ctx *gin.Context) {
	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition", "attachment; filename=tickets.csv")
	ctx.Status(http.StatusOK)

	// headers are already sent, a failure can only be logged
	if err := c.service.ExportCSV(ctx.Request.Context(), ctx.Writer); err != nil {
		c.log.Error("Error exportando tickets", zap.Error(err))
		_ = ctx.Error(err)
	}
}

// Health handles GET /__health
func Health(ctx *gin.Context) {
	ctx.String(http.StatusOK, "OK")
}
