package analyzer

// ratingValue maps a rating onto the unit interval for weighting.
func ratingValue(rating string) float64 {
	switch rating {
	case RatingGood:
		return 1.0
	case RatingOK:
		return 0.5
	default:
		return 0
	}
}

// compositeScore is the weighted average of one category's assessments
// scaled to 0-100. Skipped rules never reach this function, so they
// contribute no weight to the denominator. A category with no
// applicable rules scores 0.
func compositeScore(assessments []Assessment, category string) float64 {
	var weighted, total float64
	for _, a := range assessments {
		if a.Category != category {
			continue
		}
		total += a.Weight
		weighted += a.Weight * ratingValue(a.Rating)
	}
	if total == 0 {
		return 0
	}
	return 100 * weighted / total
}
