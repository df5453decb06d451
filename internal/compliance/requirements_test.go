package compliance

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRequirements(t *testing.T) {
	text := "Interoperability is central to the programme. " +
		"All systems must support the data exchange protocol. " +
		"See the annex for details."
	docs := []Document{{Name: standardName, Text: text}}

	reqs, total := SearchRequirements(docs, "data exchange")
	require.Len(t, reqs, 1)
	assert.Equal(t, 1, total)

	got := reqs[0]
	assert.Equal(t, "All systems must support the data exchange protocol", got.RequirementText)
	assert.Equal(t, "high", got.Relevance)
	assert.Equal(t, standardName, got.SourceDocument)
	assert.Equal(t, strings.Index(strings.ToLower(text), "data exchange"), got.MatchPosition)
	assert.Contains(t, got.Context, "data exchange")
}

func TestSearchRequirementsNeedsRequirementLanguage(t *testing.T) {
	docs := []Document{{
		Name: standardName,
		Text: "The data exchange festival happens each autumn in the town square.",
	}}

	reqs, total := SearchRequirements(docs, "data exchange")
	assert.Empty(t, reqs)
	assert.Zero(t, total)
}

func TestSearchRequirementsDedupsRepeatedSentences(t *testing.T) {
	docs := []Document{{
		Name: standardName,
		Text: "Systems shall log access events. Unrelated filler sentence here. " +
			"Systems shall log access events.",
	}}

	reqs, total := SearchRequirements(docs, "log access")
	require.Len(t, reqs, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Systems shall log access events", reqs[0].RequirementText)
}

func TestSearchRequirementsSortsHighRelevanceFirst(t *testing.T) {
	docs := []Document{
		{
			Name: standardName,
			Text: "Network compliance is reviewed annually. Encryption keys rotate quarterly.",
		},
		{
			Name: "Meridian_Technical_Standard_V2.pdf",
			Text: "Backup copies must rotate through offsite storage.",
		},
	}

	reqs, total := SearchRequirements(docs, "rotate")
	require.Len(t, reqs, 2)
	assert.Equal(t, 2, total)
	assert.Equal(t, "high", reqs[0].Relevance)
	assert.Equal(t, "Backup copies must rotate through offsite storage", reqs[0].RequirementText)
	assert.Equal(t, "medium", reqs[1].Relevance)
}

func TestSearchRequirementsStopsScanningAndCaps(t *testing.T) {
	var docs []Document
	for i := 0; i < 25; i++ {
		docs = append(docs, Document{
			Name: fmt.Sprintf("Meridian_Technical_Standard_V%d.pdf", i),
			Text: fmt.Sprintf("Directive %d says the relay must sync time with source %d.", i, i),
		})
	}

	reqs, total := SearchRequirements(docs, "must sync time")
	assert.Len(t, reqs, 15)
	assert.Equal(t, 20, total, "scanning stops after twenty raw hits")
}

func TestSearchRequirementsNoMatch(t *testing.T) {
	docs := []Document{{Name: standardName, Text: "Nothing relevant in here."}}

	reqs, total := SearchRequirements(docs, "telemetry")
	assert.Empty(t, reqs)
	assert.Zero(t, total)
}
