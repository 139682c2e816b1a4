package category

// Category is one entry of the fixed expense category catalog.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

const (
	// UnknownName is returned when a category id cannot be resolved,
	// e.g. for expenses persisted before a catalog change.
	UnknownName = "Unknown"

	// NeutralColor is the color used for unresolved categories.
	NeutralColor = "#6b7280"
)

// Defaults returns the six default expense categories in catalog order.
func Defaults() []Category {
	return []Category{
		{ID: "accommodation", Name: "Accommodation", Color: "#3b82f6"},
		{ID: "food", Name: "Food & Drinks", Color: "#10b981"},
		{ID: "activities", Name: "Activities", Color: "#8b5cf6"},
		{ID: "transportation", Name: "Transportation", Color: "#f59e0b"},
		{ID: "shopping", Name: "Shopping", Color: "#ef4444"},
		{ID: "other", Name: "Other", Color: "#ec4899"},
	}
}

// BudgetTemplate returns a zero allocation for every category in the
// catalog.
func BudgetTemplate(catalog []Category) map[string]float64 {
	template := make(map[string]float64, len(catalog))
	for _, cat := range catalog {
		template[cat.ID] = 0
	}
	return template
}

// Resolver looks up display attributes for category ids. Unresolvable
// ids yield the Unknown placeholder instead of an error so stale data
// never breaks display paths.
type Resolver struct {
	catalog []Category
	byID    map[string]Category
}

func NewResolver(catalog []Category) *Resolver {
	byID := make(map[string]Category, len(catalog))
	for _, cat := range catalog {
		byID[cat.ID] = cat
	}
	return &Resolver{catalog: catalog, byID: byID}
}

// Catalog returns the categories in catalog order.
func (r *Resolver) Catalog() []Category {
	return r.catalog
}

// Known reports whether id is part of the catalog.
func (r *Resolver) Known(id string) bool {
	_, ok := r.byID[id]
	return ok
}

func (r *Resolver) Name(id string) string {
	if cat, ok := r.byID[id]; ok {
		return cat.Name
	}
	return UnknownName
}

func (r *Resolver) Color(id string) string {
	if cat, ok := r.byID[id]; ok {
		return cat.Color
	}
	return NeutralColor
}
