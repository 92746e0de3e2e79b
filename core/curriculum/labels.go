package curriculum

// Static display lookup tables. These are immutable configuration: read-only
// at runtime, with a defined fallback entry for unknown fields.

const (
	fallbackLabel = ""
	fallbackIcon  = "circle"
)

var fieldLabels = map[string]string{
	"animals":             "Animals",
	"roots":               "Roots",
	"species":             "Species",
	"phrases":             "Phrases",
	"pattern":             "Pattern",
	"numbers":             "Numbers",
	"commands":            "Commands",
	"colors":              "Colors",
	"days":                "Days",
	"places":              "Places",
	"vocabulary":          "Vocabulary",
	"skills":              "Skills",
	"components":          "Components",
	"principles":          "Principles",
	"rivers":              "Rivers",
	"materials":           "Materials",
	"types":               "Types",
	"dances":              "Dances",
	"discussionQuestions": "Discussion Questions",
}

var fieldIcons = map[string]string{
	"moons":      "moon",
	"steps":      "list-ordered",
	"protocol":   "scroll",
	"animals":    "paw",
	"roots":      "sprout",
	"species":    "fish",
	"calendar":   "calendar",
	"numbers":    "hash",
	"colors":     "palette",
	"days":       "sun",
	"stories":    "book-open",
	"dances":     "music",
	"places":     "map-pin",
	"rivers":     "waves",
	"vocabulary": "languages",
	"games":      "dice",
	"divisions":  "users",
	"source":     "quote",
}

// FieldLabel returns the display label for a recognized field name, or the
// fallback for anything else.
func FieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return fallbackLabel
}

// FieldIcon returns the icon name for a recognized field name, or the
// fallback icon for anything else.
func FieldIcon(field string) string {
	if icon, ok := fieldIcons[field]; ok {
		return icon
	}
	return fallbackIcon
}

// RecognizedFields lists every lesson field name the classifier inspects, in
// precedence order. Content tooling uses it to flag unrecognized fields.
func RecognizedFields() []string {
	fields := make([]string, 0, len(shapeRules))
	for _, rule := range shapeRules {
		fields = append(fields, rule.field)
	}
	return fields
}
