package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRatingValue tests the rating to value mapping
func TestRatingValue(t *testing.T) {
	assert.Equal(t, 1.0, ratingValue(RatingGood))
	assert.Equal(t, 0.5, ratingValue(RatingOK))
	assert.Zero(t, ratingValue(RatingBad))
	assert.Zero(t, ratingValue("nonsense"))
}

// TestCompositeScore tests the weighted average aggregation
func TestCompositeScore(t *testing.T) {
	assessments := []Assessment{
		{Category: CategorySEO, Rating: RatingGood, Weight: 3},
		{Category: CategorySEO, Rating: RatingBad, Weight: 1},
		{Category: CategoryReadability, Rating: RatingOK, Weight: 2},
	}

	// (3*1 + 1*0) / 4 = 0.75
	assert.InDelta(t, 75.0, compositeScore(assessments, CategorySEO), 0.001)
	assert.InDelta(t, 50.0, compositeScore(assessments, CategoryReadability), 0.001)
	assert.Zero(t, compositeScore(nil, CategorySEO))
}

// TestCompositeScoreExtremes tests that all-good and all-bad map to the
// scale endpoints
func TestCompositeScoreExtremes(t *testing.T) {
	allGood := []Assessment{
		{Category: CategorySEO, Rating: RatingGood, Weight: 2},
		{Category: CategorySEO, Rating: RatingGood, Weight: 5},
	}
	assert.InDelta(t, 100.0, compositeScore(allGood, CategorySEO), 0.001)

	allBad := []Assessment{
		{Category: CategorySEO, Rating: RatingBad, Weight: 2},
		{Category: CategorySEO, Rating: RatingBad, Weight: 5},
	}
	assert.Zero(t, compositeScore(allBad, CategorySEO))
}
