package middleware

import (
	"net/http"

	"github.com/ARQAP/mesa-de-ayuda/src/dtos"
	"github.com/ARQAP/mesa-de-ayuda/src/services"
	"github.com/gin-gonic/gin"
)

// AdminConfirmationMiddleware guards destructive admin actions: the form must carry
// the admin password and the literal confirmation word.
func AdminConfirmationMiddleware(settings *services.SettingService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var form dtos.AdminConfirmationDTO
		if err := ctx.ShouldBind(&form); err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Formulario inválido."})
			return
		}

		if err := settings.VerifyAdminConfirmation(ctx.Request.Context(), form.Password, form.Confirm); err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Clave o confirmación incorrecta."})
			return
		}

		ctx.Next()
	}
}
