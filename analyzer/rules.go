package analyzer

import "fmt"

// ruleContext is everything a rule may read: the computed statistics,
// the original input, and tokenized views of the fields the keyword
// rules match against.
type ruleContext struct {
	stats          ContentStatistics
	input          AnalysisInput
	keyword        []string
	titleWords     []string
	metaWords      []string
	firstParagraph []string
	subheadings    [][]string
}

func newRuleContext(input AnalysisInput, doc *document, stats ContentStatistics) *ruleContext {
	rc := &ruleContext{
		stats:          stats,
		input:          input,
		keyword:        tokenizePhrase(input.Keyword),
		titleWords:     tokenizeWords(input.Title),
		metaWords:      tokenizeWords(input.MetaDescription),
		firstParagraph: tokenizeWords(doc.firstParagraph),
	}
	for _, h := range doc.subheadings {
		rc.subheadings = append(rc.subheadings, tokenizeWords(h))
	}
	return rc
}

// rule is one row of the assessment table. A nil applies means the rule
// always runs; when applies returns false the rule is skipped entirely
// and contributes no weight to the composite score.
type rule struct {
	id       string
	category string
	weight   float64
	applies  func(*ruleContext) bool
	evaluate func(*ruleContext) (rating, message string)
}

func needsKeyword(rc *ruleContext) bool {
	return len(rc.keyword) > 0
}

func needsKeywordAndSubheadings(rc *ruleContext) bool {
	return len(rc.keyword) > 0 && len(rc.subheadings) > 0
}

// ruleTable is the fixed, ordered assessment table. Evaluation order is
// the slice order, so results are stable across calls. Adding a rule is
// a table edit; the aggregation in score.go stays untouched.
var ruleTable = []rule{
	{
		id:       "keyword-density",
		category: CategorySEO,
		weight:   3,
		applies:  needsKeyword,
		evaluate: func(rc *ruleContext) (string, string) {
			density := rc.stats.KeywordDensity
			switch {
			case rc.stats.KeywordCount == 0:
				return RatingBad, "The focus keyword does not appear in the content"
			case density < 0.5:
				return RatingOK, fmt.Sprintf("Keyword density is %.1f%%, which is below the recommended minimum of 0.5%%", density)
			case density <= 2.5:
				return RatingGood, fmt.Sprintf("Keyword density is %.1f%%, which is within the recommended range", density)
			case density <= 3.5:
				return RatingOK, fmt.Sprintf("Keyword density is %.1f%%, which is slightly above the recommended maximum of 2.5%%", density)
			default:
				return RatingBad, fmt.Sprintf("Keyword density is %.1f%%; this reads as keyword stuffing (keep it under 2.5%%)", density)
			}
		},
	},
	{
		id:       "keyword-in-title",
		category: CategorySEO,
		weight:   2,
		applies:  needsKeyword,
		evaluate: func(rc *ruleContext) (string, string) {
			if containsPhrase(rc.titleWords, rc.keyword) {
				return RatingGood, "The focus keyword appears in the title"
			}
			return RatingBad, "Add the focus keyword to the title"
		},
	},
	{
		id:       "keyword-in-introduction",
		category: CategorySEO,
		weight:   2,
		applies:  needsKeyword,
		evaluate: func(rc *ruleContext) (string, string) {
			if containsPhrase(rc.firstParagraph, rc.keyword) {
				return RatingGood, "The focus keyword appears in the first paragraph"
			}
			return RatingBad, "Use the focus keyword in the first paragraph so the topic is clear right away"
		},
	},
	{
		id:       "keyword-in-meta-description",
		category: CategorySEO,
		weight:   1,
		applies:  needsKeyword,
		evaluate: func(rc *ruleContext) (string, string) {
			if containsPhrase(rc.metaWords, rc.keyword) {
				return RatingGood, "The focus keyword appears in the meta description"
			}
			return RatingBad, "Add the focus keyword to the meta description"
		},
	},
	{
		id:       "keyword-in-subheadings",
		category: CategorySEO,
		weight:   1,
		applies:  needsKeywordAndSubheadings,
		evaluate: func(rc *ruleContext) (string, string) {
			for _, h := range rc.subheadings {
				if containsPhrase(h, rc.keyword) {
					return RatingGood, "The focus keyword appears in at least one subheading"
				}
			}
			return RatingOK, "None of the subheadings mention the focus keyword"
		},
	},
	{
		id:       "title-length",
		category: CategorySEO,
		weight:   1,
		evaluate: func(rc *ruleContext) (string, string) {
			length := len([]rune(rc.input.Title))
			switch {
			case length == 0:
				return RatingBad, "Add a title"
			case length < 30:
				return RatingOK, fmt.Sprintf("The title is %d characters long; titles of 30-60 characters perform best", length)
			case length <= 60:
				return RatingGood, fmt.Sprintf("The title is %d characters long, which is within the recommended 30-60", length)
			default:
				return RatingOK, fmt.Sprintf("The title is %d characters long; search engines may truncate titles over 60 characters", length)
			}
		},
	},
	{
		id:       "meta-description-length",
		category: CategorySEO,
		weight:   2,
		evaluate: func(rc *ruleContext) (string, string) {
			length := len([]rune(rc.input.MetaDescription))
			switch {
			case length == 0:
				return RatingBad, "Add a meta description"
			case length < 120:
				return RatingOK, fmt.Sprintf("The meta description is %d characters long; aim for 120-160 characters", length)
			case length <= 160:
				return RatingGood, fmt.Sprintf("The meta description is %d characters long, which is within the recommended 120-160", length)
			default:
				return RatingOK, fmt.Sprintf("The meta description is %d characters long; search engines may truncate descriptions over 160 characters", length)
			}
		},
	},
	{
		id:       "content-length",
		category: CategorySEO,
		weight:   3,
		evaluate: func(rc *ruleContext) (string, string) {
			words := rc.stats.WordCount
			switch {
			case words >= 300:
				return RatingGood, fmt.Sprintf("The content is %d words long", words)
			case words >= 200:
				return RatingOK, fmt.Sprintf("The content is %d words long, slightly under the recommended 300", words)
			default:
				return RatingBad, fmt.Sprintf("The content is %d words long; aim for at least 300 words", words)
			}
		},
	},
	{
		id:       "internal-links",
		category: CategorySEO,
		weight:   1,
		evaluate: func(rc *ruleContext) (string, string) {
			if rc.stats.InternalLinkCount > 0 {
				return RatingGood, fmt.Sprintf("Found %d internal link(s)", rc.stats.InternalLinkCount)
			}
			return RatingBad, "Add internal links to related pages on your site"
		},
	},
	{
		id:       "external-links",
		category: CategorySEO,
		weight:   1,
		evaluate: func(rc *ruleContext) (string, string) {
			if rc.stats.ExternalLinkCount > 0 {
				return RatingGood, fmt.Sprintf("Found %d external link(s)", rc.stats.ExternalLinkCount)
			}
			return RatingOK, "Consider linking to authoritative external sources"
		},
	},
	{
		id:       "image-alt",
		category: CategorySEO,
		weight:   1,
		evaluate: func(rc *ruleContext) (string, string) {
			switch {
			case rc.stats.ImageCount == 0:
				return RatingBad, "Add images with descriptive alt text"
			case rc.stats.ImagesMissingAlt > 0:
				return RatingOK, fmt.Sprintf("%d of %d image(s) are missing alt text", rc.stats.ImagesMissingAlt, rc.stats.ImageCount)
			default:
				return RatingGood, fmt.Sprintf("All %d image(s) have alt text", rc.stats.ImageCount)
			}
		},
	},
	{
		id:       "sentence-length",
		category: CategoryReadability,
		weight:   2,
		evaluate: func(rc *ruleContext) (string, string) {
			if rc.stats.SentenceCount == 0 {
				return RatingBad, "There is no text to evaluate"
			}
			avg := rc.stats.AverageSentenceLength
			switch {
			case avg <= 20:
				return RatingGood, fmt.Sprintf("Sentences are %.1f words long on average", avg)
			case avg <= 25:
				return RatingOK, fmt.Sprintf("Sentences are %.1f words long on average; consider shortening some", avg)
			default:
				return RatingBad, fmt.Sprintf("Sentences are %.1f words long on average; aim for 20 words or fewer", avg)
			}
		},
	},
	{
		id:       "paragraph-length",
		category: CategoryReadability,
		weight:   1,
		evaluate: func(rc *ruleContext) (string, string) {
			if rc.stats.ParagraphCount == 0 {
				return RatingBad, "There is no text to evaluate"
			}
			avg := rc.stats.AverageParagraphLength
			switch {
			case avg <= 150:
				return RatingGood, fmt.Sprintf("Paragraphs are %.1f words long on average", avg)
			case avg <= 200:
				return RatingOK, fmt.Sprintf("Paragraphs are %.1f words long on average; consider splitting the longest ones", avg)
			default:
				return RatingBad, fmt.Sprintf("Paragraphs are %.1f words long on average; split them up for easier reading", avg)
			}
		},
	},
	{
		id:       "passive-voice",
		category: CategoryReadability,
		weight:   2,
		evaluate: func(rc *ruleContext) (string, string) {
			if rc.stats.SentenceCount == 0 {
				return RatingBad, "There is no text to evaluate"
			}
			pct := rc.stats.PassiveVoicePercentage
			switch {
			case pct <= 10:
				return RatingGood, fmt.Sprintf("%.1f%% of sentences use passive voice", pct)
			case pct <= 15:
				return RatingOK, fmt.Sprintf("%.1f%% of sentences use passive voice; try rewriting some in active voice", pct)
			default:
				return RatingBad, fmt.Sprintf("%.1f%% of sentences use passive voice; keep it under 10%%", pct)
			}
		},
	},
	{
		id:       "transition-words",
		category: CategoryReadability,
		weight:   2,
		evaluate: func(rc *ruleContext) (string, string) {
			if rc.stats.SentenceCount == 0 {
				return RatingBad, "There is no text to evaluate"
			}
			pct := rc.stats.TransitionWordPercentage
			switch {
			case pct >= 30:
				return RatingGood, fmt.Sprintf("%.1f%% of sentences contain a transition word", pct)
			case pct >= 20:
				return RatingOK, fmt.Sprintf("%.1f%% of sentences contain a transition word; a few more would improve flow", pct)
			default:
				return RatingBad, fmt.Sprintf("Only %.1f%% of sentences contain a transition word; add connectives to improve flow", pct)
			}
		},
	},
	{
		id:       "flesch-reading-ease",
		category: CategoryReadability,
		weight:   2,
		evaluate: func(rc *ruleContext) (string, string) {
			if rc.stats.FleschReadingEase == nil {
				return RatingBad, "Not enough text to compute a reading ease score"
			}
			score := *rc.stats.FleschReadingEase
			switch {
			case score >= 60:
				return RatingGood, fmt.Sprintf("The reading ease score is %.1f, which is plain English", score)
			case score >= 50:
				return RatingOK, fmt.Sprintf("The reading ease score is %.1f, which is fairly difficult to read", score)
			default:
				return RatingBad, fmt.Sprintf("The reading ease score is %.1f; shorter sentences and simpler words would help", score)
			}
		},
	},
}
