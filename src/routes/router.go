package routes

import (
	"github.com/ARQAP/mesa-de-ayuda/src/middleware"
	"github.com/ARQAP/mesa-de-ayuda/src/services"
	"github.com/ARQAP/mesa-de-ayuda/src/templates"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies groups what the router needs to build every route
type Dependencies struct {
	Tickets     *services.TicketService
	Settings    *services.SettingService
	Backups     *services.BackupService
	Log         *zap.Logger
	CORSOrigins []string
}

// SetupRouter builds the gin engine with middleware, templates and all routes
func SetupRouter(deps Dependencies) (*gin.Engine, error) {
	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Recovery(deps.Log), middleware.RequestLogger(deps.Log))
	if len(deps.CORSOrigins) > 0 {
		router.Use(middleware.SetupCORS(deps.CORSOrigins))
	}
	router.SetHTMLTemplate(tmpl)

	SetupTicketRoutes(router, deps.Tickets, tmpl, deps.Log)
	SetupAdminRoutes(router, deps.Tickets, deps.Settings, deps.Backups, deps.Log)
	SetupExportRoutes(router, deps.Tickets, deps.Log)

	return router, nil
}
