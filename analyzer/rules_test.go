package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findRule(t *testing.T, id string) rule {
	t.Helper()
	for _, r := range ruleTable {
		if r.id == id {
			return r
		}
	}
	t.Fatalf("no rule with id %q", id)
	return rule{}
}

func evalRule(t *testing.T, id string, rc *ruleContext) string {
	t.Helper()
	rating, message := findRule(t, id).evaluate(rc)
	require.NotEmpty(t, message)
	return rating
}

// TestRuleTableShape tests structural invariants of the rule table
func TestRuleTableShape(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range ruleTable {
		assert.False(t, seen[r.id], "duplicate rule id %s", r.id)
		seen[r.id] = true
		assert.Contains(t, []string{CategorySEO, CategoryReadability}, r.category, "rule %s", r.id)
		assert.Greater(t, r.weight, 0.0, "rule %s", r.id)
		assert.NotNil(t, r.evaluate, "rule %s", r.id)
	}
}

// TestKeywordDensityRule tests the density bands
func TestKeywordDensityRule(t *testing.T) {
	tests := []struct {
		count   int
		density float64
		want    string
	}{
		{0, 0, RatingBad},
		{1, 0.3, RatingOK},
		{1, 0.5, RatingGood},
		{5, 1.8, RatingGood},
		{5, 2.5, RatingGood},
		{6, 3.0, RatingOK},
		{7, 3.5, RatingOK},
		{9, 4.2, RatingBad},
	}

	for _, tt := range tests {
		rc := &ruleContext{
			keyword: []string{"cat"},
			stats:   ContentStatistics{KeywordCount: tt.count, KeywordDensity: tt.density},
		}
		assert.Equal(t, tt.want, evalRule(t, "keyword-density", rc), "density %.1f", tt.density)
	}
}

// TestKeywordPresenceRules tests the title, introduction, meta and
// subheading keyword rules
func TestKeywordPresenceRules(t *testing.T) {
	rc := &ruleContext{
		keyword:        []string{"coffee"},
		titleWords:     tokenizeWords("The Coffee Handbook"),
		metaWords:      tokenizeWords("All about tea instead"),
		firstParagraph: tokenizeWords("Coffee is great."),
		subheadings:    [][]string{tokenizeWords("Brewing basics"), tokenizeWords("Grinding coffee beans")},
	}

	assert.Equal(t, RatingGood, evalRule(t, "keyword-in-title", rc))
	assert.Equal(t, RatingBad, evalRule(t, "keyword-in-meta-description", rc))
	assert.Equal(t, RatingGood, evalRule(t, "keyword-in-introduction", rc))
	assert.Equal(t, RatingGood, evalRule(t, "keyword-in-subheadings", rc))

	rc.subheadings = [][]string{tokenizeWords("Brewing basics")}
	assert.Equal(t, RatingOK, evalRule(t, "keyword-in-subheadings", rc))
}

// TestKeywordRulesApplicability tests that keyword rules are skipped
// without a keyword
func TestKeywordRulesApplicability(t *testing.T) {
	noKeyword := &ruleContext{}
	withKeyword := &ruleContext{keyword: []string{"cat"}}

	for _, id := range []string{"keyword-density", "keyword-in-title", "keyword-in-introduction", "keyword-in-meta-description"} {
		r := findRule(t, id)
		require.NotNil(t, r.applies, "rule %s", id)
		assert.False(t, r.applies(noKeyword), "rule %s should be skipped without keyword", id)
		assert.True(t, r.applies(withKeyword), "rule %s should run with keyword", id)
	}

	// Subheadings additionally require at least one subheading.
	r := findRule(t, "keyword-in-subheadings")
	assert.False(t, r.applies(withKeyword))
	withKeyword.subheadings = [][]string{{"brewing"}}
	assert.True(t, r.applies(withKeyword))
}

// TestLengthRules tests the title, meta description and content length
// bands
func TestLengthRules(t *testing.T) {
	titleOf := func(n int) *ruleContext {
		return &ruleContext{input: AnalysisInput{Title: strings.Repeat("a", n)}}
	}
	assert.Equal(t, RatingBad, evalRule(t, "title-length", titleOf(0)))
	assert.Equal(t, RatingOK, evalRule(t, "title-length", titleOf(29)))
	assert.Equal(t, RatingGood, evalRule(t, "title-length", titleOf(30)))
	assert.Equal(t, RatingGood, evalRule(t, "title-length", titleOf(60)))
	assert.Equal(t, RatingOK, evalRule(t, "title-length", titleOf(61)))

	metaOf := func(n int) *ruleContext {
		return &ruleContext{input: AnalysisInput{MetaDescription: strings.Repeat("a", n)}}
	}
	assert.Equal(t, RatingBad, evalRule(t, "meta-description-length", metaOf(0)))
	assert.Equal(t, RatingOK, evalRule(t, "meta-description-length", metaOf(119)))
	assert.Equal(t, RatingGood, evalRule(t, "meta-description-length", metaOf(120)))
	assert.Equal(t, RatingGood, evalRule(t, "meta-description-length", metaOf(160)))
	assert.Equal(t, RatingOK, evalRule(t, "meta-description-length", metaOf(161)))

	wordsOf := func(n int) *ruleContext {
		return &ruleContext{stats: ContentStatistics{WordCount: n}}
	}
	assert.Equal(t, RatingGood, evalRule(t, "content-length", wordsOf(300)))
	assert.Equal(t, RatingOK, evalRule(t, "content-length", wordsOf(250)))
	assert.Equal(t, RatingBad, evalRule(t, "content-length", wordsOf(199)))
	assert.Equal(t, RatingBad, evalRule(t, "content-length", wordsOf(0)))
}

// TestStructureRules tests the link and image rules
func TestStructureRules(t *testing.T) {
	rc := &ruleContext{stats: ContentStatistics{InternalLinkCount: 2, ExternalLinkCount: 1}}
	assert.Equal(t, RatingGood, evalRule(t, "internal-links", rc))
	assert.Equal(t, RatingGood, evalRule(t, "external-links", rc))

	empty := &ruleContext{}
	assert.Equal(t, RatingBad, evalRule(t, "internal-links", empty))
	assert.Equal(t, RatingOK, evalRule(t, "external-links", empty))

	assert.Equal(t, RatingBad, evalRule(t, "image-alt", &ruleContext{}))
	assert.Equal(t, RatingOK, evalRule(t, "image-alt", &ruleContext{
		stats: ContentStatistics{ImageCount: 2, ImagesWithAlt: 1, ImagesMissingAlt: 1},
	}))
	assert.Equal(t, RatingGood, evalRule(t, "image-alt", &ruleContext{
		stats: ContentStatistics{ImageCount: 2, ImagesWithAlt: 2},
	}))
}

// TestReadabilityRules tests the readability thresholds
func TestReadabilityRules(t *testing.T) {
	sentenceAvg := func(avg float64) *ruleContext {
		return &ruleContext{stats: ContentStatistics{SentenceCount: 5, AverageSentenceLength: avg}}
	}
	assert.Equal(t, RatingGood, evalRule(t, "sentence-length", sentenceAvg(20)))
	assert.Equal(t, RatingOK, evalRule(t, "sentence-length", sentenceAvg(23)))
	assert.Equal(t, RatingBad, evalRule(t, "sentence-length", sentenceAvg(26)))
	assert.Equal(t, RatingBad, evalRule(t, "sentence-length", &ruleContext{}))

	passive := func(pct float64) *ruleContext {
		return &ruleContext{stats: ContentStatistics{SentenceCount: 5, PassiveVoicePercentage: pct}}
	}
	assert.Equal(t, RatingGood, evalRule(t, "passive-voice", passive(10)))
	assert.Equal(t, RatingOK, evalRule(t, "passive-voice", passive(12)))
	assert.Equal(t, RatingBad, evalRule(t, "passive-voice", passive(16)))

	transition := func(pct float64) *ruleContext {
		return &ruleContext{stats: ContentStatistics{SentenceCount: 5, TransitionWordPercentage: pct}}
	}
	assert.Equal(t, RatingGood, evalRule(t, "transition-words", transition(30)))
	assert.Equal(t, RatingOK, evalRule(t, "transition-words", transition(25)))
	assert.Equal(t, RatingBad, evalRule(t, "transition-words", transition(10)))

	paragraph := func(avg float64) *ruleContext {
		return &ruleContext{stats: ContentStatistics{ParagraphCount: 3, AverageParagraphLength: avg}}
	}
	assert.Equal(t, RatingGood, evalRule(t, "paragraph-length", paragraph(120)))
	assert.Equal(t, RatingOK, evalRule(t, "paragraph-length", paragraph(180)))
	assert.Equal(t, RatingBad, evalRule(t, "paragraph-length", paragraph(220)))

	flesch := func(score float64) *ruleContext {
		return &ruleContext{stats: ContentStatistics{FleschReadingEase: &score}}
	}
	assert.Equal(t, RatingGood, evalRule(t, "flesch-reading-ease", flesch(60)))
	assert.Equal(t, RatingOK, evalRule(t, "flesch-reading-ease", flesch(55)))
	assert.Equal(t, RatingBad, evalRule(t, "flesch-reading-ease", flesch(49.9)))
	assert.Equal(t, RatingBad, evalRule(t, "flesch-reading-ease", &ruleContext{}))
}
