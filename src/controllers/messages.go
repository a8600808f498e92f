package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ARQAP/mesa-de-ayuda/src/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	categorySuccess = "success"
	categoryError   = "error"
)

// user-facing text for the errors a form can produce
var errorMessages = []struct {
	err     error
	message string
}{
	{services.ErrInvalidCubiculo, "❌ Cubículo inválido."},
	{services.ErrInvalidProblema, "❌ Problema inválido."},
	{services.ErrDuplicateOpenTicket, "❌ Ya tienes un ticket pendiente en tu cubículo. Espera a que sea atendido."},
	{services.ErrInvalidTecnico, "❌ Técnico inválido."},
	{services.ErrInvalidEditData, "❌ Datos inválidos en edición."},
	{services.ErrResolutionIncomplete, `❌ Para "resuelto" elige técnico y escribe solución.`},
	{services.ErrTicketNotFound, "❌ Ticket no encontrado."},
	{services.ErrPasswordTooShort, "❌ La nueva clave debe tener al menos 4 caracteres."},
	{services.ErrPasswordMismatch, "❌ Las claves no coinciden."},
	{services.ErrWrongCurrentPassword, "❌ Clave actual incorrecta."},
	{services.ErrUnauthorized, "Clave o confirmación incorrecta."},
	{services.ErrNoValidIDs, "Sin IDs válidos."},
	{services.ErrBackupDisabled, "Respaldo en Google Drive no configurado."},
}

func userMessage(err error) (string, bool) {
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.message, true
		}
	}
	return "", false
}

func redirectWithMessage(ctx *gin.Context, path, message, category string) {
	query := url.Values{}
	query.Set("message", message)
	query.Set("category", category)
	ctx.Redirect(http.StatusFound, path+"?"+query.Encode())
}

// redirectOnError sends known errors back to path as a flash message. Anything
// else is logged and answered with a 500.
func redirectOnError(ctx *gin.Context, log *zap.Logger, path string, err error) {
	if message, ok := userMessage(err); ok {
		redirectWithMessage(ctx, path, message, categoryError)
		return
	}
	internalError(ctx, log, err)
}

func internalError(ctx *gin.Context, log *zap.Logger, err error) {
	log.Error("Unhandled error",
		zap.String("method", ctx.Request.Method),
		zap.String("path", ctx.Request.URL.Path),
		zap.Error(err))
	_ = ctx.Error(err)
	ctx.String(http.StatusInternalServerError, "Error interno del servidor")
}

func flash(ctx *gin.Context) (string, string) {
	return ctx.Query("message"), ctx.DefaultQuery("category", categorySuccess)
}

func ticketIDParam(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
