package routes

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	appmiddleware "github.com/frostline/ac-maintenance-api/internal/middleware"
	leadsvc "github.com/frostline/ac-maintenance-api/internal/service/lead"
)

// Register wires all HTTP routes into the provided API router. repo may be
// nil when no store is configured at startup; the content routes keep
// working and the lead and diagnostics routes report the store as
// unavailable.
func Register(api huma.API, repo leadsvc.Repository) {
	registerRoot(api)
	registerHealth(api)
	registerContent(api)
	registerLeads(api, repo)
	registerDiagnostics(api, repo)
}

// RootData models the banner payload for the root route.
type RootData struct {
	Message string `json:"message" doc:"Service banner" example:"AC Maintenance Service Backend Running"`
}

// RootOutput is the response wrapper for the root endpoint.
type RootOutput struct {
	Body RootData
}

func registerRoot(api huma.API) {
	huma.Get(api, "/", func(ctx context.Context, _ *struct{}) (*RootOutput, error) {
		return &RootOutput{Body: RootData{Message: "AC Maintenance Service Backend Running"}}, nil
	})
}

// HealthData models the success payload for the health route.
type HealthData struct {
	Message string `json:"message" doc:"Health status message" example:"healthy"`
}

// HealthOutput is the response wrapper for the health endpoint.
type HealthOutput struct {
	Body HealthData
}

func registerHealth(api huma.API) {
	huma.Get(api, "/health", func(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
		appmiddleware.LogInfo(ctx, "health check", zap.String("path", "/health"))
		return &HealthOutput{Body: HealthData{Message: "healthy"}}, nil
	})
}
