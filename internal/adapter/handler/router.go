package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	meetingHandler   *Meeting
	itemHandler      *ActionItem
	aiHandler        *AIController
	signalingHandler *Signaling
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	meetingHandler *Meeting,
	itemHandler *ActionItem,
	aiHandler *AIController,
	signalingHandler *Signaling,
) *Router {
	return &Router{
		cfg:              cfg,
		meetingHandler:   meetingHandler,
		itemHandler:      itemHandler,
		aiHandler:        aiHandler,
		signalingHandler: signalingHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Websocket signaling sits outside the API group
	e.GET("/ws", rt.signalingHandler.Serve)

	api := e.Group("/api")

	rt.setupMeetingRoutes(api)
	rt.setupActionItemRoutes(api)
	rt.setupAIRoutes(api)
}

// setupMeetingRoutes configures meeting CRUD routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings")

	meetingGroup.GET("", rt.meetingHandler.List)
	meetingGroup.POST("", rt.meetingHandler.Create)
	meetingGroup.GET("/:id", rt.meetingHandler.Get)
	meetingGroup.PUT("/:id", rt.meetingHandler.Update)
	meetingGroup.DELETE("/:id", rt.meetingHandler.Delete)
}

// setupActionItemRoutes configures action item routes
func (rt *Router) setupActionItemRoutes(g *echo.Group) {
	itemGroup := g.Group("/action-items")

	itemGroup.GET("", rt.itemHandler.List)
	itemGroup.PUT("/:id", rt.itemHandler.Update)
}

// setupAIRoutes configures assistant routes
func (rt *Router) setupAIRoutes(g *echo.Group) {
	aiGroup := g.Group("/ai")

	aiGroup.POST("/summarize", rt.aiHandler.Summarize)
	aiGroup.POST("/ask", rt.aiHandler.Ask)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"time":        time.Now().Format(time.RFC3339),
		"environment": rt.cfg.Server.Environment,
	})
}
