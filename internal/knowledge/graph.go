// Package knowledge holds the static component knowledge graph of the
// Meridian reference architecture: component records, ownership records,
// and the dependency and service relationships between them. The data
// ships embedded in the binary and never changes at runtime, so every
// query reads one shared in-memory structure.
package knowledge

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"
)

//go:embed data/graph.yaml
var graphData []byte

// Component describes one architectural component.
type Component struct {
	Name             string   `yaml:"-" json:"name"`
	Type             string   `yaml:"type" json:"type"`
	Category         string   `yaml:"category" json:"category"`
	Description      string   `yaml:"description" json:"description"`
	Responsibilities []string `yaml:"responsibilities" json:"responsibilities"`
	Interfaces       []string `yaml:"interfaces" json:"interfaces"`
	Dependencies     []string `yaml:"dependencies" json:"dependencies"`
	ProvidesTo       []string `yaml:"provides_to" json:"provides_to"`
	Specifications   []string `yaml:"specifications" json:"specifications"`
	SourceDocument   string   `yaml:"source_document" json:"source_document"`
	Confidence       string   `yaml:"confidence" json:"confidence"`
}

// Stakeholder is a named contact with an interest in a component.
type Stakeholder struct {
	Name         string `yaml:"name" json:"name"`
	Role         string `yaml:"role" json:"role"`
	Organization string `yaml:"organization" json:"organization"`
}

// ContactInfo carries the team-level contact channels for a component.
type ContactInfo struct {
	Email   string `yaml:"email" json:"email"`
	Phone   string `yaml:"phone" json:"phone"`
	Channel string `yaml:"channel" json:"channel"`
}

// Ownership records who owns, leads, and staffs a component.
type Ownership struct {
	PrimaryOwner    string        `yaml:"primary_owner" json:"primary_owner"`
	TechnicalLead   string        `yaml:"technical_lead" json:"technical_lead"`
	BusinessOwner   string        `yaml:"business_owner" json:"business_owner"`
	DevelopmentTeam string        `yaml:"development_team" json:"development_team"`
	Sectors         []string      `yaml:"sectors" json:"sectors"`
	Stakeholders    []Stakeholder `yaml:"stakeholders" json:"stakeholders"`
	ContactInfo     ContactInfo   `yaml:"contact_info" json:"contact_info"`
}

// Relationship is one edge of the graph as surfaced to callers.
type Relationship struct {
	RelatedComponent string `json:"related_component"`
	Type             string `json:"relationship_type"`
	Context          string `json:"context"`
	Confidence       string `json:"confidence"`
}

type relationTables struct {
	DependsOn  map[string][]string `yaml:"depends_on"`
	ProvidesTo map[string][]string `yaml:"provides_to"`
}

// Graph is the loaded, read-only knowledge graph.
type Graph struct {
	components map[string]Component
	ownership  map[string]Ownership
	relations  relationTables
}

var (
	loadOnce    sync.Once
	loadedGraph *Graph
	loadErr     error
)

// Load decodes the embedded graph data on first call and returns the same
// shared instance afterwards. The graph is immutable once loaded.
func Load() (*Graph, error) {
	loadOnce.Do(func() {
		var raw struct {
			Components    map[string]Component `yaml:"components"`
			Ownership     map[string]Ownership `yaml:"ownership"`
			Relationships relationTables       `yaml:"relationships"`
		}
		if err := yaml.Unmarshal(graphData, &raw); err != nil {
			loadErr = fmt.Errorf("decoding knowledge graph data: %w", err)
			return
		}
		for name, comp := range raw.Components {
			comp.Name = name
			raw.Components[name] = comp
		}
		loadedGraph = &Graph{
			components: raw.Components,
			ownership:  raw.Ownership,
			relations:  raw.Relationships,
		}
	})
	return loadedGraph, loadErr
}
