package routes

import (
	"context"
	"net/http"
	"os"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	appmiddleware "github.com/frostline/ac-maintenance-api/internal/middleware"
	leadsvc "github.com/frostline/ac-maintenance-api/internal/service/lead"
)

// DiagnosticsData describes backend and store connectivity. Operational
// only; the shape is not a functional contract.
type DiagnosticsData struct {
	Backend           string   `json:"backend"            doc:"Backend process status"       example:"running"`
	Database          string   `json:"database"           doc:"Store status"                 example:"connected"`
	DatabaseName      string   `json:"database_name"      doc:"Configured database name"     example:"(default)"`
	ProjectConfigured bool     `json:"project_configured" doc:"Whether a project ID is set"`
	ConnectionStatus  string   `json:"connection_status"  doc:"Connection status"            example:"connected"`
	Collections       []string `json:"collections"        doc:"Up to ten collection names"`
}

// DiagnosticsOutput is the response wrapper for the diagnostics endpoint.
type DiagnosticsOutput struct {
	Body DiagnosticsData
}

func registerDiagnostics(api huma.API, repo leadsvc.Repository) {
	huma.Register(api, huma.Operation{
		OperationID: "test-database",
		Method:      http.MethodGet,
		Path:        "/test",
		Summary:     "Check store connectivity",
		Description: "Reports whether the document store is configured and reachable. Diagnostic endpoint for operators, not a functional contract.",
		Tags:        []string{"Diagnostics"},
	}, func(ctx context.Context, _ *struct{}) (*DiagnosticsOutput, error) {
		data := DiagnosticsData{
			Backend:           "running",
			Database:          "not configured",
			DatabaseName:      databaseName(),
			ProjectConfigured: projectConfigured(),
			ConnectionStatus:  "not_connected",
		}

		if repo == nil {
			return &DiagnosticsOutput{Body: data}, nil
		}

		collections, err := repo.Collections(ctx)
		if err != nil {
			appmiddleware.LogWarn(ctx, "store diagnostics probe failed", zap.Error(err))
			data.Database = "error"
			data.ConnectionStatus = "error"
			return &DiagnosticsOutput{Body: data}, nil
		}

		data.Database = "connected"
		data.ConnectionStatus = "connected"
		data.Collections = collections
		return &DiagnosticsOutput{Body: data}, nil
	})
}

func databaseName() string {
	if name := os.Getenv("DATABASE_NAME"); name != "" {
		return name
	}
	return "(default)"
}

func projectConfigured() bool {
	for _, key := range []string{"GOOGLE_CLOUD_PROJECT", "GCP_PROJECT", "GCLOUD_PROJECT", "PROJECT_ID"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}
