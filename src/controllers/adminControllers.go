package controllers

import (
	"errors"
	"net/http"

	"github.com/ARQAP/mesa-de-ayuda/src/dtos"
	"github.com/ARQAP/mesa-de-ayuda/src/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminController struct {
	tickets  *services.TicketService
	settings *services.SettingService
	backups  *services.BackupService
	log      *zap.Logger
}

func NewAdminController(tickets *services.TicketService, settings *services.SettingService, backups *services.BackupService, log *zap.Logger) *AdminController {
	return &AdminController{tickets: tickets, settings: settings, backups: backups, log: log}
}

// DeleteSelected handles POST /admin/delete_selected. The admin confirmation is
// checked by middleware before this runs.
func (c *AdminController) DeleteSelected(ctx *gin.Context) {
	var form dtos.DeleteSelectedDTO
	if err := ctx.ShouldBind(&form); err != nil {
		jsonError(ctx, http.StatusBadRequest, services.ErrNoValidIDs)
		return
	}

	ids := services.ParseTicketIDs(form.IDs)
	if len(ids) == 0 {
		jsonError(ctx, http.StatusBadRequest, services.ErrNoValidIDs)
		return
	}

	removed, err := c.tickets.DeleteTickets(ctx.Request.Context(), ids)
	if err != nil {
		c.log.Error("Error eliminando tickets", zap.Ints("ids", ids), zap.Error(err))
		jsonError(ctx, http.StatusInternalServerError, err)
		return
	}

	c.log.Info("Tickets eliminados", zap.Ints("ids", ids), zap.Int64("removed", removed))
	ctx.JSON(http.StatusOK, gin.H{"ok": true, "deleted": len(ids), "removed": removed})
}

// ShowSettings handles GET /admin/settings
func (c *AdminController) ShowSettings(ctx *gin.Context) {
	hasHash, err := c.settings.HasAdminPassword(ctx.Request.Context())
	if err != nil {
		internalError(ctx, c.log, err)
		return
	}
	c.renderSettings(ctx, hasHash, "", "")
}

// UpdateSettings handles POST /admin/settings and changes the admin password
func (c *AdminController) UpdateSettings(ctx *gin.Context) {
	var form dtos.ChangePasswordDTO
	_ = ctx.ShouldBind(&form)

	err := c.settings.ChangeAdminPassword(ctx.Request.Context(), form.Current, form.New, form.Confirm)
	if err != nil {
		message, known := userMessage(err)
		if !known {
			internalError(ctx, c.log, err)
			return
		}
		hasHash, hashErr := c.settings.HasAdminPassword(ctx.Request.Context())
		if hashErr != nil {
			internalError(ctx, c.log, hashErr)
			return
		}
		c.renderSettings(ctx, hasHash, message, categoryError)
		return
	}

	redirectWithMessage(ctx, "/dashboard", "🔐 Clave actualizada correctamente.", categorySuccess)
}

// Backup handles POST /admin/backup and uploads the CSV export to Google Drive
func (c *AdminController) Backup(ctx *gin.Context) {
	fileID, err := c.backups.Backup(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrBackupDisabled) {
			jsonError(ctx, http.StatusBadRequest, err)
			return
		}
		jsonError(ctx, http.StatusBadGateway, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ok": true, "file_id": fileID})
}

func (c *AdminController) renderSettings(ctx *gin.Context, hasHash bool, message, category string) {
	ctx.HTML(http.StatusOK, "admin_settings.html", gin.H{
		"Title":    "Ajustes",
		"HasHash":  hasHash,
		"Message":  message,
		"Category": category,
	})
}

func jsonError(ctx *gin.Context, status int, err error) {
	message, ok := userMessage(err)
	if !ok {
		message = "Error interno del servidor."
	}
	ctx.JSON(status, gin.H{"ok": false, "error": message})
}
