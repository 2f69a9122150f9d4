package routes

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// PainPointsData lists researched pain points for AC owners and operators.
type PainPointsData struct {
	PainPoints []string `json:"pain_points" doc:"Researched pain points for AC owners/operators"`
}

// PainPointsOutput is the response wrapper for the pain points endpoint.
type PainPointsOutput struct {
	Body PainPointsData
}

// TaskCategory groups related routine maintenance items.
type TaskCategory struct {
	Category string   `json:"category" doc:"Maintenance area"        example:"Airflow & Filtration"`
	Items    []string `json:"items"    doc:"Tasks within this area"`
}

// IntervalGuidance maps a service interval to the work recommended at it.
type IntervalGuidance struct {
	Interval    string   `json:"interval"    doc:"Service cadence" example:"Quarterly"`
	Recommended []string `json:"recommended" doc:"Work recommended at this cadence"`
}

// MaintenanceTasksData is the fixed reference catalogue of evidence-based
// routine maintenance for split and ducted AC systems in the 1-50 ton range.
type MaintenanceTasksData struct {
	Scope            string             `json:"scope"             doc:"Service scope"`
	CapacityRange    string             `json:"capacity_range"    doc:"Supported capacity range"`
	SystemTypes      []string           `json:"system_types"      doc:"Supported system types"`
	Tasks            []TaskCategory     `json:"tasks"             doc:"Task catalogue by category"`
	IntervalGuidance []IntervalGuidance `json:"interval_guidance" doc:"Recommended work per interval"`
}

// MaintenanceTasksOutput is the response wrapper for the maintenance tasks endpoint.
type MaintenanceTasksOutput struct {
	Body MaintenanceTasksData
}

var painPoints = []string{
	"Frequent breakdowns during peak heat",
	"Inconsistent cooling and hot/cold spots",
	"High electricity bills",
	"Poor air quality, dust and allergens",
	"Water leaks or drain line clogs",
	"Unpleasant odors when the unit starts",
	"Noisy operation or vibrations",
	"Short equipment lifespan due to poor maintenance",
	"Unexpected repair costs and downtime",
	"Thermostat inaccuracies and comfort issues",
	"Slow response from service providers",
	"Lack of maintenance records for compliance/warranty",
}

var maintenanceTasks = MaintenanceTasksData{
	Scope:         "Preventive maintenance for residential, commercial, and light-industrial AC systems",
	CapacityRange: "1 to 50 ton (12,000 to 600,000 Btu/h)",
	SystemTypes: []string{
		"Split (ducted/non-ducted)",
		"Ducted package units",
		"VRF/VRV (upon request)",
	},
	Tasks: []TaskCategory{
		{Category: "Airflow & Filtration", Items: []string{
			"Inspect and clean/replace air filters (MERV rating as specified)",
			"Measure external static pressure and adjust airflow to manufacturer specs",
			"Inspect supply/return grilles and ductwork for blockages or leaks",
		}},
		{Category: "Evaporator & Condenser Coils", Items: []string{
			"Visual inspection of evaporator and condenser coils",
			"Clean coils with appropriate method (dry brush, fin combs, or coil cleaner)",
			"Straighten bent fins to restore heat transfer",
		}},
		{Category: "Condensate Management", Items: []string{
			"Flush and clear condensate drain line and trap",
			"Test condensate pump operation (if installed)",
			"Check drain pan for rust, algae, or overflow sensors",
		}},
		{Category: "Refrigerant Circuit", Items: []string{
			"Check for oil stains and obvious leaks",
			"Verify superheat/subcooling and compare to design conditions",
			"Tighten service caps and inspect Schrader cores",
		}},
		{Category: "Electrical & Controls", Items: []string{
			"Inspect contactors, relays, capacitors, and wiring for wear/overheating",
			"Torque terminal connections to spec",
			"Test safety controls and float switches",
			"Calibrate thermostat and verify setpoints/schedules",
		}},
		{Category: "Mechanical Components", Items: []string{
			"Inspect blower wheel, motor bearings, and belts/pulleys; adjust tension",
			"Check fan blades and motor mounts for balance and vibration",
			"Lubricate bearings where applicable",
		}},
		{Category: "Performance Verification", Items: []string{
			"Measure supply/return air temperatures; calculate temperature split",
			"Record amperage/voltage vs nameplate",
			"Verify overall system capacity aligns with 1-50 ton application",
		}},
		{Category: "Documentation", Items: []string{
			"Record measurements and maintenance actions",
			"Note deficiencies and recommended corrective actions",
			"Maintain logs to support warranty and compliance",
		}},
	},
	IntervalGuidance: []IntervalGuidance{
		{Interval: "Monthly / Bi-Monthly", Recommended: []string{
			"Filter inspection and replacement",
			"Visual check of condensate drains",
			"Basic visual inspection of outdoor unit",
		}},
		{Interval: "Quarterly", Recommended: []string{
			"Coil inspection/cleaning as needed",
			"Drain line flushing",
			"Electrical inspection and torque check",
		}},
		{Interval: "Bi-Annual", Recommended: []string{
			"Refrigerant performance check (superheat/subcool)",
			"Thermostat calibration and control verification",
			"Static pressure and airflow balancing",
		}},
		{Interval: "Annual", Recommended: []string{
			"Full system tune-up and performance benchmarking",
			"Ductwork inspection for leaks and insulation",
			"Comprehensive documentation and lifecycle advisory",
		}},
	},
}

func registerContent(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-pain-points",
		Method:      http.MethodGet,
		Path:        "/api/pain-points",
		Summary:     "List common AC pain points",
		Tags:        []string{"Content"},
	}, func(_ context.Context, _ *struct{}) (*PainPointsOutput, error) {
		return &PainPointsOutput{Body: PainPointsData{PainPoints: painPoints}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-maintenance-tasks",
		Method:      http.MethodGet,
		Path:        "/api/maintenance-tasks",
		Summary:     "Get the routine maintenance task catalogue",
		Description: "Returns the evidence-based routine maintenance catalogue for split and ducted AC systems (1-50 ton), including interval guidance.",
		Tags:        []string{"Content"},
	}, func(_ context.Context, _ *struct{}) (*MaintenanceTasksOutput, error) {
		return &MaintenanceTasksOutput{Body: maintenanceTasks}, nil
	})
}
