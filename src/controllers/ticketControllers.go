package controllers

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/ARQAP/mesa-de-ayuda/src/catalog"
	"github.com/ARQAP/mesa-de-ayuda/src/dtos"
	"github.com/ARQAP/mesa-de-ayuda/src/models"
	"github.com/ARQAP/mesa-de-ayuda/src/services"
	"github.com/ARQAP/mesa-de-ayuda/src/templates"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TicketController struct {
	service *services.TicketService
	tmpl    *template.Template
	log     *zap.Logger
}

func NewTicketController(service *services.TicketService, tmpl *template.Template, log *zap.Logger) *TicketController {
	return &TicketController{service: service, tmpl: tmpl, log: log}
}

// ShowSubmitForm handles GET / and renders the submission form
func (c *TicketController) ShowSubmitForm(ctx *gin.Context) {
	message, category := flash(ctx)
	ctx.HTML(http.StatusOK, "form.html", gin.H{
		"Title":     "Reportar un problema",
		"Message":   message,
		"Category":  category,
		"Cubiculos": catalog.Cubiculos(),
		"Problemas": catalog.Problemas(),
	})
}

// SubmitTicket handles POST / and creates a new ticket
func (c *TicketController) SubmitTicket(ctx *gin.Context) {
	var form dtos.SubmitTicketDTO
	if err := ctx.ShouldBind(&form); err != nil {
		redirectWithMessage(ctx, "/", "❌ Formulario inválido.", categoryError)
		return
	}

	ticket, err := c.service.SubmitTicket(ctx.Request.Context(), form)
	if err != nil {
		redirectOnError(ctx, c.log, "/", err)
		return
	}

	c.log.Info("Ticket creado",
		zap.Int("id", ticket.ID),
		zap.String("cubiculo", ticket.Cubiculo),
		zap.String("problema", ticket.Problema))
	redirectWithMessage(ctx, "/", "🎫 Ticket generado correctamente", categorySuccess)
}

// Dashboard handles GET /dashboard and renders the filtered ticket list
func (c *TicketController) Dashboard(ctx *gin.Context) {
	filter := filterFromQuery(ctx)

	tickets, err := c.service.ListTickets(ctx.Request.Context(), filter)
	if err != nil {
		internalError(ctx, c.log, err)
		return
	}

	maxID := 0
	if len(tickets) > 0 {
		maxID = tickets[0].ID
	}

	message, category := flash(ctx)
	ctx.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":          "Dashboard",
		"Message":        message,
		"Category":       category,
		"Tickets":        tickets,
		"MaxID":          maxID,
		"Tecnicos":       catalog.Tecnicos(),
		"Cubiculos":      catalog.Cubiculos(),
		"Problemas":      catalog.Problemas(),
		"Statuses":       models.Statuses(),
		"SelectedStatus": filter.Status,
		"SelectedTech":   filter.Tech,
	})
}

// DashboardTable handles GET /dashboard/table for the live-refresh poller
func (c *TicketController) DashboardTable(ctx *gin.Context) {
	filter := filterFromQuery(ctx)
	sinceID, err := strconv.Atoi(ctx.Query("since_id"))
	if err != nil {
		sinceID = 0
	}

	feed, err := c.service.GetTicketFeed(ctx.Request.Context(), filter, sinceID)
	if err != nil {
		internalError(ctx, c.log, err)
		return
	}

	html, err := templates.Render(c.tmpl, templates.TicketsTableBody, gin.H{
		"Tickets":  feed.Tickets,
		"Tecnicos": catalog.Tecnicos(),
	})
	if err != nil {
		internalError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"html":   html,
		"max_id": feed.MaxID,
		"news":   feed.News,
	})
}

// ProcessTicket handles GET /process/:id and marks the ticket "en progreso"
func (c *TicketController) ProcessTicket(ctx *gin.Context) {
	id, ok := ticketIDParam(ctx)
	if !ok {
		redirectOnError(ctx, c.log, "/dashboard", services.ErrTicketNotFound)
		return
	}

	if err := c.service.StartProcessing(ctx.Request.Context(), id); err != nil {
		redirectOnError(ctx, c.log, "/dashboard", err)
		return
	}
	ctx.Redirect(http.StatusFound, "/dashboard")
}

// ResolveTicket handles POST /resolve/:id
func (c *TicketController) ResolveTicket(ctx *gin.Context) {
	id, ok := ticketIDParam(ctx)
	if !ok {
		redirectOnError(ctx, c.log, "/dashboard", services.ErrTicketNotFound)
		return
	}

	var form dtos.ResolveTicketDTO
	if err := ctx.ShouldBind(&form); err != nil {
		redirectOnError(ctx, c.log, "/dashboard", services.ErrInvalidTecnico)
		return
	}

	if err := c.service.ResolveTicket(ctx.Request.Context(), id, form); err != nil {
		redirectOnError(ctx, c.log, "/dashboard", err)
		return
	}

	c.log.Info("Ticket resuelto", zap.Int("id", id), zap.String("atendido_por", form.AtendidoPor))
	ctx.Redirect(http.StatusFound, "/dashboard")
}

// EditTicket handles POST /ticket/:id/edit
func (c *TicketController) EditTicket(ctx *gin.Context) {
	id, ok := ticketIDParam(ctx)
	if !ok {
		redirectOnError(ctx, c.log, "/dashboard", services.ErrTicketNotFound)
		return
	}

	var form dtos.EditTicketDTO
	if err := ctx.ShouldBind(&form); err != nil {
		redirectOnError(ctx, c.log, "/dashboard", services.ErrInvalidEditData)
		return
	}

	if err := c.service.EditTicket(ctx.Request.Context(), id, form); err != nil {
		redirectOnError(ctx, c.log, "/dashboard", err)
		return
	}

	redirectWithMessage(ctx, "/dashboard", "✏️ Ticket actualizado.", categorySuccess)
}

func filterFromQuery(ctx *gin.Context) dtos.TicketFilterDTO {
	return dtos.TicketFilterDTO{
		Status: ctx.DefaultQuery("status", "todos"),
		Tech:   ctx.DefaultQuery("tech", "todos"),
	}
}
