package compliance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardName = "Meridian_Technical_Standard_V1.pdf"

func TestExtractRules(t *testing.T) {
	docs := []Document{{
		Name: standardName,
		Text: "The platform must encrypt all traffic at rest. " +
			"Suppliers may expose optional interfaces. " +
			"Operators will review logs weekly.",
	}}

	rules, total := ExtractRules(docs, "", "")
	require.Len(t, rules, 3)
	assert.Equal(t, 3, total)

	assert.Equal(t, "must encrypt all traffic at rest.", rules[0].RuleText)
	assert.Equal(t, "must", rules[0].RuleType)
	assert.Equal(t, "Security", rules[0].Context)
	assert.Equal(t, "high", rules[0].Confidence)
	assert.Equal(t, standardName, rules[0].SourceDocument)

	assert.Equal(t, "will", rules[1].RuleType, "will outranks may in the sort")
	assert.Equal(t, "General", rules[1].Context)
	assert.Equal(t, "medium", rules[1].Confidence)

	assert.Equal(t, "may", rules[2].RuleType)
	assert.Equal(t, "Interoperability", rules[2].Context)
}

func TestExtractRulesFilters(t *testing.T) {
	docs := []Document{{
		Name: standardName,
		Text: "Components shall authenticate peers before exchange. " +
			"Payloads should carry metadata for provenance.",
	}}

	t.Run("rule type filter is exact and case-insensitive", func(t *testing.T) {
		rules, total := ExtractRules(docs, "", "SHALL")
		require.Len(t, rules, 1)
		assert.Equal(t, 1, total)
		assert.Equal(t, "shall", rules[0].RuleType)
	})

	t.Run("category filter matches derived context substring", func(t *testing.T) {
		rules, _ := ExtractRules(docs, "data", "")
		require.Len(t, rules, 1)
		assert.Equal(t, "Data Management", rules[0].Context)
		assert.Equal(t, "should", rules[0].RuleType)
	})

	t.Run("no matches", func(t *testing.T) {
		rules, total := ExtractRules(docs, "aviation", "")
		assert.Empty(t, rules)
		assert.Zero(t, total)
	})
}

func TestExtractRulesCapsAtFifty(t *testing.T) {
	docs := []Document{{
		Name: standardName,
		Text: strings.Repeat("Devices must encrypt stored keys. ", 60),
	}}

	rules, total := ExtractRules(docs, "", "")
	assert.Len(t, rules, 50)
	assert.Equal(t, 60, total, "total counts matches before the cap")
}

func TestExtractRulesSkipsOverlongMatches(t *testing.T) {
	docs := []Document{{
		Name: standardName,
		Text: "Systems must " + strings.Repeat("x", 600) + ".",
	}}

	rules, total := ExtractRules(docs, "", "")
	assert.Empty(t, rules)
	assert.Zero(t, total)
}
