package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCountSyllables tests the vowel-group syllable heuristic
func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"happy", 2},
		{"banana", 3},
		{"reading", 2},
		{"analysis", 4},
		{"optimization", 5},
		{"strength", 1},
		{"queue", 1},
		// Silent-e adjustment.
		{"code", 1},
		{"the", 1},
		// The adjustment undercounts -le words; accepted heuristic error.
		{"table", 1},
		// Minimum of one for any non-empty token.
		{"tsk", 1},
		{"123", 1},
		{"", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, countSyllables(tt.word), "word %q", tt.word)
	}
}

// TestFleschReadingEase tests the formula against hand-computed values
func TestFleschReadingEase(t *testing.T) {
	// 206.835 - 1.015*(10/2) - 84.6*(12/10)
	assert.InDelta(t, 100.24, fleschReadingEase(10, 2, 12), 0.001)
	// 206.835 - 1.015*(100/5) - 84.6*(141/100)
	assert.InDelta(t, 67.25, fleschReadingEase(100, 5, 141), 0.01)
}

// TestIsPassiveSentence tests the auxiliary + participle heuristic
func TestIsPassiveSentence(t *testing.T) {
	tests := []struct {
		sentence string
		want     bool
	}{
		{"The mouse was eaten by the cat", true},
		{"The report was quickly completed", true},
		{"The bread is baked daily", true},
		{"Mistakes were made", true},
		// Predicate adjectives are not participles.
		{"The cat was happy", false},
		{"He was naked", false},
		{"It is red", false},
		// Progressive, not passive.
		{"She was running fast", false},
		{"They are hundred percent sure", false},
		{"The dog chased the ball", false},
	}

	for _, tt := range tests {
		got := isPassiveSentence(tokenizeWords(tt.sentence))
		assert.Equal(t, tt.want, got, "sentence %q", tt.sentence)
	}
}

// TestHasTransitionWord tests connective detection
func TestHasTransitionWord(t *testing.T) {
	tests := []struct {
		sentence string
		want     bool
	}{
		{"However, this works", true},
		{"HOWEVER it failed", true},
		{"As a result, sales rose", true},
		{"It works well, in addition to being cheap", true},
		{"This is a cat", false},
		{"The result was positive", false},
	}

	for _, tt := range tests {
		got := hasTransitionWord(tokenizeWords(tt.sentence))
		assert.Equal(t, tt.want, got, "sentence %q", tt.sentence)
	}
}

// TestCountPhrase tests keyword occurrence counting
func TestCountPhrase(t *testing.T) {
	tests := []struct {
		name   string
		words  []string
		phrase []string
		want   int
	}{
		{"single word", []string{"the", "cat", "sat"}, []string{"cat"}, 1},
		{"case insensitive", []string{"The", "Cat"}, []string{"cat"}, 1},
		{"no partial match", []string{"cats", "scattered"}, []string{"cat"}, 0},
		{"multi word phrase", []string{"best", "seo", "tools", "here"}, []string{"seo", "tools"}, 1},
		{"non overlapping", []string{"a", "a", "a"}, []string{"a", "a"}, 1},
		{"repeated", []string{"cat", "and", "cat", "and", "cat"}, []string{"cat"}, 3},
		{"empty phrase", []string{"a"}, nil, 0},
		{"empty words", nil, []string{"a"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countPhrase(tt.words, tt.phrase))
		})
	}
}

// TestComputeStatisticsZeroDenominators tests that ratios stay at zero
// instead of becoming NaN when the content is empty
func TestComputeStatisticsZeroDenominators(t *testing.T) {
	stats := computeStatistics(parseDocument("", ""), "keyword")

	assert.Equal(t, 0, stats.WordCount)
	assert.Equal(t, 0, stats.SentenceCount)
	assert.Zero(t, stats.AverageSentenceLength)
	assert.Zero(t, stats.AverageParagraphLength)
	assert.Zero(t, stats.PassiveVoicePercentage)
	assert.Zero(t, stats.TransitionWordPercentage)
	assert.Zero(t, stats.KeywordDensity)
	assert.Nil(t, stats.FleschReadingEase)
}

// TestComputeStatisticsSyllables tests syllable aggregation and the
// complex-word count
func TestComputeStatisticsSyllables(t *testing.T) {
	// cat=1, banana=3, optimization=5 syllables.
	stats := computeStatistics(parseDocument("cat banana optimization", ""), "")

	assert.Equal(t, 3, stats.WordCount)
	assert.Equal(t, 9, stats.SyllableCount)
	assert.Equal(t, 2, stats.ComplexWordCount)
}
