package knowledge

import (
	"fmt"
	"sort"
	"strings"
)

// OwnedComponent pairs a component name with its ownership record for
// owner- and sector-scoped queries.
type OwnedComponent struct {
	Component string    `json:"component"`
	Ownership Ownership `json:"ownership"`
}

// Component returns the record for an exact component name.
func (g *Graph) Component(name string) (Component, bool) {
	comp, ok := g.components[name]
	return comp, ok
}

// OwnershipOf returns the ownership record for an exact component name.
func (g *Graph) OwnershipOf(name string) (Ownership, bool) {
	own, ok := g.ownership[name]
	return own, ok
}

// Search filters components by case-insensitive substring over type and
// category. Empty filters match everything. Results come back sorted by
// type, category, then name so output is stable across calls.
func (g *Graph) Search(componentType, category string) []Component {
	typeFilter := strings.ToLower(componentType)
	categoryFilter := strings.ToLower(category)

	var matches []Component
	for _, comp := range g.components {
		if typeFilter != "" && !strings.Contains(strings.ToLower(comp.Type), typeFilter) {
			continue
		}
		if categoryFilter != "" && !strings.Contains(strings.ToLower(comp.Category), categoryFilter) {
			continue
		}
		matches = append(matches, comp)
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Type != matches[j].Type {
			return matches[i].Type < matches[j].Type
		}
		if matches[i].Category != matches[j].Category {
			return matches[i].Category < matches[j].Category
		}
		return matches[i].Name < matches[j].Name
	})
	return matches
}

// Relationships returns the union of a component's dependencies and the
// entities it provides services to. The second return is false when the
// component itself is unknown; a known component with no recorded edges
// yields an empty, valid result.
func (g *Graph) Relationships(name string) ([]Relationship, bool) {
	if _, ok := g.components[name]; !ok {
		return nil, false
	}

	var rels []Relationship
	for _, dep := range g.relations.DependsOn[name] {
		rels = append(rels, Relationship{
			RelatedComponent: dep,
			Type:             "Dependency",
			Context:          fmt.Sprintf("%s depends on %s", name, dep),
			Confidence:       "high",
		})
	}
	for _, target := range g.relations.ProvidesTo[name] {
		rels = append(rels, Relationship{
			RelatedComponent: target,
			Type:             "Provider",
			Context:          fmt.Sprintf("%s provides services to %s", name, target),
			Confidence:       "high",
		})
	}
	return rels, true
}

// AllOwnership returns every ownership record keyed by component name.
func (g *Graph) AllOwnership() map[string]Ownership {
	return g.ownership
}

// ByOwner returns components whose primary owner, technical lead, or
// business owner contains the given name, case-insensitively.
func (g *Graph) ByOwner(person string) []OwnedComponent {
	needle := strings.ToLower(person)
	var matches []OwnedComponent
	for name, own := range g.ownership {
		if strings.Contains(strings.ToLower(own.PrimaryOwner), needle) ||
			strings.Contains(strings.ToLower(own.TechnicalLead), needle) ||
			strings.Contains(strings.ToLower(own.BusinessOwner), needle) {
			matches = append(matches, OwnedComponent{Component: name, Ownership: own})
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Component < matches[j].Component })
	return matches
}

// BySector returns components tagged with a sector containing the given
// value, case-insensitively.
func (g *Graph) BySector(sector string) []OwnedComponent {
	needle := strings.ToLower(sector)
	var matches []OwnedComponent
	for name, own := range g.ownership {
		for _, s := range own.Sectors {
			if strings.Contains(strings.ToLower(s), needle) {
				matches = append(matches, OwnedComponent{Component: name, Ownership: own})
				break
			}
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Component < matches[j].Component })
	return matches
}
