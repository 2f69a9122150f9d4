package routes

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/frostline/ac-maintenance-api/internal/common"
	appmiddleware "github.com/frostline/ac-maintenance-api/internal/middleware"
	"github.com/frostline/ac-maintenance-api/internal/pagination"
	leadsvc "github.com/frostline/ac-maintenance-api/internal/service/lead"
)

// LeadSubmitInput carries the raw lead payload. Constraints are enforced by
// the lead schema validator rather than the OpenAPI schema, so the validator
// stays the single gate in front of the repository.
type LeadSubmitInput struct {
	Body map[string]any `doc:"Lead submission payload"`
}

// LeadSubmitData is the success payload for a stored lead.
type LeadSubmitData struct {
	Status string `json:"status" doc:"Submission outcome"               example:"success"`
	ID     string `json:"id"     doc:"Store-assigned lead identifier"   example:"hQ7zp2nC4XfGkM1T9aBc"`
}

// LeadSubmitOutput is the response wrapper for the lead submission endpoint.
type LeadSubmitOutput struct {
	Body LeadSubmitData
}

// LeadRecord is a stored lead as exposed on the listing endpoint.
type LeadRecord struct {
	ID                string      `json:"id"                           doc:"Store-assigned identifier"`
	Name              string      `json:"name"                         doc:"Contact person full name"       example:"Jane Doe"`
	Email             string      `json:"email"                        doc:"Contact email"                  example:"jane@example.com"`
	Phone             *string     `json:"phone,omitempty"              doc:"Phone number"`
	Company           *string     `json:"company,omitempty"            doc:"Company or property name"`
	Location          *string     `json:"location,omitempty"           doc:"City/Area of the site"`
	UnitTypes         []string    `json:"unit_types,omitempty"         doc:"Split, Ducted, VRF, Package, etc."`
	UnitsCount        *int        `json:"units_count,omitempty"        doc:"Approximate number of units"`
	CapacityTonnage   *string     `json:"capacity_tonnage,omitempty"   doc:"Range like 1-50 TR/BtuH"`
	PreferredInterval *string     `json:"preferred_interval,omitempty" doc:"Monthly, Quarterly, Bi-Annual, Annual"`
	PainPoints        []string    `json:"pain_points,omitempty"        doc:"Selected pain points"`
	Message           *string     `json:"message,omitempty"            doc:"Additional context or notes"`
	CreatedAt         common.Time `json:"created_at"                   doc:"Insert timestamp"`
}

// LeadListInput defines query parameters for listing stored leads.
type LeadListInput struct {
	pagination.Params
}

// LeadListData is the response body containing one page of leads.
type LeadListData struct {
	Leads []LeadRecord `json:"leads" doc:"Stored leads in document-ID order"`
}

// LeadListOutput is the response wrapper with pagination Link header.
type LeadListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body LeadListData
}

const leadCursorType = "lead"

func registerLeads(api huma.API, repo leadsvc.Repository) {
	huma.Register(api, huma.Operation{
		OperationID: "create-lead",
		Method:      http.MethodPost,
		Path:        "/api/leads",
		Summary:     "Submit a maintenance lead",
		Description: "Validates and stores a service-interest submission. Duplicate submissions are stored as independent records.",
		Tags:        []string{"Leads"},
	}, func(ctx context.Context, input *LeadSubmitInput) (*LeadSubmitOutput, error) {
		l, err := leadsvc.Validate(input.Body)
		if err != nil {
			var ve *leadsvc.ValidationError
			if errors.As(err, &ve) {
				return nil, huma.Error422UnprocessableEntity("validation failed", &huma.ErrorDetail{
					Location: "body." + ve.Field,
					Message:  ve.Rule + ": " + ve.Message,
				})
			}
			return nil, huma.Error422UnprocessableEntity("validation failed", err)
		}

		if repo == nil {
			appmiddleware.LogError(ctx, "lead submitted but no store is configured", nil)
			return nil, huma.Error500InternalServerError("lead storage is not configured")
		}

		id, err := repo.Insert(ctx, l)
		if err != nil {
			appmiddleware.LogError(ctx, "lead insert failed", err)
			return nil, huma.Error500InternalServerError("failed to store lead")
		}

		appmiddleware.LogInfo(ctx, "lead stored", zap.String("id", id))
		return &LeadSubmitOutput{Body: LeadSubmitData{Status: "success", ID: id}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-leads",
		Method:      http.MethodGet,
		Path:        "/api/leads",
		Summary:     "List stored leads",
		Description: "Returns stored leads one page at a time. Use the cursor from the Link header to fetch the next page.",
		Tags:        []string{"Leads"},
	}, func(ctx context.Context, input *LeadListInput) (*LeadListOutput, error) {
		cursor, err := pagination.DecodeCursor(input.Cursor)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor format")
		}
		if cursor.Type != "" && cursor.Type != leadCursorType {
			return nil, huma.Error400BadRequest("cursor type mismatch")
		}

		if repo == nil {
			return nil, huma.Error500InternalServerError("lead storage is not configured")
		}

		limit := input.DefaultLimit()
		stored, hasMore, err := repo.List(ctx, cursor.Value, limit)
		if err != nil {
			appmiddleware.LogError(ctx, "lead list failed", err)
			return nil, huma.Error500InternalServerError("failed to list leads")
		}

		var nextCursor string
		if hasMore && len(stored) > 0 {
			nextCursor = pagination.Cursor{Type: leadCursorType, Value: stored[len(stored)-1].ID}.Encode()
		}

		query := url.Values{}
		query.Set("limit", strconv.Itoa(limit))

		records := make([]LeadRecord, 0, len(stored))
		for _, sl := range stored {
			records = append(records, toLeadRecord(sl))
		}

		return &LeadListOutput{
			Link: pagination.BuildLinkHeader("/api/leads", query, nextCursor, ""),
			Body: LeadListData{Leads: records},
		}, nil
	})
}

func toLeadRecord(sl leadsvc.StoredLead) LeadRecord {
	return LeadRecord{
		ID:                sl.ID,
		Name:              sl.Lead.Name,
		Email:             sl.Lead.Email,
		Phone:             sl.Lead.Phone,
		Company:           sl.Lead.Company,
		Location:          sl.Lead.Location,
		UnitTypes:         sl.Lead.UnitTypes,
		UnitsCount:        sl.Lead.UnitsCount,
		CapacityTonnage:   sl.Lead.CapacityTonnage,
		PreferredInterval: sl.Lead.PreferredInterval,
		PainPoints:        sl.Lead.PainPoints,
		Message:           sl.Lead.Message,
		CreatedAt:         common.NewTime(sl.CreatedAt),
	}
}
