// File: studyplan/handlers/bundle.go
package handlers

import (
	"studyplan/services/planner"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Session endpoints
	CreateSessionHandler      gin.HandlerFunc
	BulkCreateSessionsHandler gin.HandlerFunc
	ListSessionsHandler       gin.HandlerFunc
	GetSessionHandler         gin.HandlerFunc
	UpdateSessionHandler      gin.HandlerFunc
	StartSessionHandler       gin.HandlerFunc
	CompleteSessionHandler    gin.HandlerFunc
	DeleteSessionHandler      gin.HandlerFunc

	// Planner endpoints
	SuggestHandler    gin.HandlerFunc
	PlanHandler       gin.HandlerFunc
	TemplateHandler   gin.HandlerFunc
	DistributeHandler gin.HandlerFunc

	// Calendar endpoints
	WeekHandler        gin.HandlerFunc
	CapacityHandler    gin.HandlerFunc
	SetCapacityHandler gin.HandlerFunc
	StatsHandler       gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle builds every handler on top of one planner service.
func NewHandlerBundle(svc planner.PlannerService) *HandlerBundle {
	sessions := NewSessionHandler(svc)
	plans := NewPlannerHandler(svc)
	calendar := NewCalendarHandler(svc)

	return &HandlerBundle{
		CreateSessionHandler:      sessions.CreateSessionHandler,
		BulkCreateSessionsHandler: sessions.BulkCreateSessionsHandler,
		ListSessionsHandler:       sessions.ListSessionsHandler,
		GetSessionHandler:         sessions.GetSessionHandler,
		UpdateSessionHandler:      sessions.UpdateSessionHandler,
		StartSessionHandler:       sessions.StartSessionHandler,
		CompleteSessionHandler:    sessions.CompleteSessionHandler,
		DeleteSessionHandler:      sessions.DeleteSessionHandler,

		SuggestHandler:    plans.SuggestHandler,
		PlanHandler:       plans.PlanHandler,
		TemplateHandler:   plans.TemplateHandler,
		DistributeHandler: plans.DistributeHandler,

		WeekHandler:        calendar.WeekHandler,
		CapacityHandler:    calendar.CapacityHandler,
		SetCapacityHandler: calendar.SetCapacityHandler,
		StatsHandler:       calendar.StatsHandler,

		HealthHandler: HealthHandler,
	}
}
