package ontology

import (
	"strings"

	"github.com/matzehuels/ontograph/pkg/document"
	"github.com/matzehuels/ontograph/pkg/graph"
)

// instancePrefix is the id prefix of flattened instance nodes.
const instancePrefix = graph.RootNodeID + "." + sectionInstances + "."

// Substrings of the normalized instance type, checked group by group.
var (
	componentTypes = []string{
		"machine", "mold", "sensor", "pump", "motor", "heater", "valve",
		"screw", "barrel", "nozzle", "hydraulic", "controller", "component", "unit",
	}
	maintenanceTypes = []string{
		"maintenancetask", "maintenanceevent", "maintenance", "repair",
		"inspection", "calibration", "event", "task",
	}
	materialTypes = []string{"material", "resin", "polymer", "oil", "lubricant"}
)

// addInstances emits one node per object-valued entry of instances. Instances
// hang off no parent, so no hierarchical edge is created.
func (b *builder) addInstances(instances *document.Object) {
	instances.Each(func(key string, value document.Value) bool {
		record, ok := document.AsObject(value)
		if !ok {
			return true
		}
		kind := normalizeType(record.String("type"))
		id := instancePrefix + key
		b.addNode(graph.NodeData{
			ID:         id,
			Label:      instanceLabel(key, kind, record),
			Category:   instanceCategory(kind),
			Size:       graph.SizeComposite,
			Path:       id,
			Properties: record.Clone(),
			NodeType:   graph.NodeTypeInstance,
		})
		return true
	})
}

func normalizeType(t string) string {
	return strings.ReplaceAll(strings.ToLower(t), "_", "")
}

func instanceCategory(kind string) string {
	switch {
	case kind == "":
		return CategoryOther
	case containsAny(kind, componentTypes):
		return CategoryMachineComponents
	case containsAny(kind, maintenanceTypes):
		return CategoryMaintenanceActivities
	case containsAny(kind, materialTypes):
		return CategorySparePartsAndInventory
	}
	return CategoryOther
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// instanceLabel picks a human label from the record based on its type and
// falls back to the instance key.
func instanceLabel(key, kind string, record *document.Object) string {
	field := func(name string) string {
		v, _ := record.Get(name)
		return scalarString(v)
	}

	var label string
	switch kind {
	case "maintenancetask", "maintenanceevent":
		label = field("description")
	case "machine":
		manufacturer, model := field("manufacturer"), field("model")
		switch {
		case manufacturer != "" && model != "":
			label = manufacturer + " " + model
		default:
			label = model
		}
	case "material":
		label = field("material_name")
	case "mold":
		label = field("mold_id")
	case "temperaturesensor":
		if zone := field("zone"); zone != "" {
			label = "Temperature Sensor " + FormatLabel(zone)
		}
	}

	if label == "" {
		return key
	}
	return label
}
