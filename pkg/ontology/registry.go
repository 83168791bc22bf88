package ontology

import "strings"

// Category tags.
const (
	CategoryMachineComponents      = "machine_components"
	CategoryMaintenanceActivities  = "maintenance_activities"
	CategoryProcessParameters      = "process_parameters"
	CategoryFailuresAndAnomalies   = "failures_and_anomalies"
	CategoryRelationships          = "relationships"
	CategoryMetricsAndKPI          = "metrics_and_kpi"
	CategoryDocumentation          = "documentation"
	CategorySafetyAndCompliance    = "safety_and_compliance"
	CategoryOperatingEnvironment   = "operating_environment"
	CategorySparePartsAndInventory = "spare_parts_and_inventory"
	CategoryIntegrationAndSystems  = "integration_and_systems"
	CategoryHumanFactorsAndSkills  = "human_factors_and_skills"

	CategoryRoot  = "root"
	CategoryOther = "other"
)

// categoryDef is one row of the registry.
type categoryDef struct {
	tag      string
	keywords []string
	color    string
}

// registry is ordered: category matching returns the first hit, so a key
// matching keywords of two categories resolves to the earlier row.
var registry = []categoryDef{
	{CategoryMachineComponents, []string{"component", "unit", "system", "hardware", "equipment"}, "#3b82f6"},
	{CategoryMaintenanceActivities, []string{"maintenance", "repair", "service", "inspection", "calibration"}, "#10b981"},
	{CategoryProcessParameters, []string{"parameter", "setting", "configuration", "pressure", "temperature"}, "#f59e0b"},
	{CategoryFailuresAndAnomalies, []string{"failure", "anomaly", "defect", "fault", "error"}, "#ef4444"},
	{CategoryRelationships, []string{"relationship", "causal", "temporal", "functional", "dependency"}, "#8b5cf6"},
	{CategoryMetricsAndKPI, []string{"metric", "kpi", "indicator", "performance", "efficiency"}, "#ec4899"},
	{CategoryDocumentation, []string{"document", "manual", "guide", "specification", "procedure"}, "#6366f1"},
	{CategorySafetyAndCompliance, []string{"safety", "compliance", "regulation", "standard", "hazard"}, "#f97316"},
	{CategoryOperatingEnvironment, []string{"environment", "condition", "ambient", "location"}, "#14b8a6"},
	{CategorySparePartsAndInventory, []string{"spare", "part", "inventory", "stock", "material"}, "#a855f7"},
	{CategoryIntegrationAndSystems, []string{"integration", "interface", "protocol", "communication"}, "#06b6d4"},
	{CategoryHumanFactorsAndSkills, []string{"human", "skill", "operator", "training", "competence"}, "#84cc16"},
}

const (
	colorRoot  = "#64748b"
	colorOther = "#9ca3af"
)

// Category describes one selectable category for clients.
type Category struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Categories returns the domain categories in registry order.
// The synthetic "root" and "other" tags are not included.
func Categories() []Category {
	out := make([]Category, 0, len(registry))
	for _, c := range registry {
		out = append(out, Category{Key: c.tag, Label: FormatLabel(c.tag), Color: c.color})
	}
	return out
}

// ColorOf returns the display color for a category tag. Unknown tags get
// the "other" color.
func ColorOf(category string) string {
	switch category {
	case CategoryRoot:
		return colorRoot
	case CategoryOther:
		return colorOther
	}
	for _, c := range registry {
		if c.tag == category {
			return c.color
		}
	}
	return colorOther
}

// determineCategory returns the first category with a keyword contained in
// key or path, case-insensitively.
func determineCategory(key, path string) string {
	key = strings.ToLower(key)
	path = strings.ToLower(path)
	for _, c := range registry {
		for _, kw := range c.keywords {
			if strings.Contains(key, kw) || strings.Contains(path, kw) {
				return c.tag
			}
		}
	}
	return CategoryOther
}
