package analyzer

// Rating levels assigned by individual assessment rules.
const (
	RatingGood = "good"
	RatingOK   = "ok"
	RatingBad  = "bad"
)

// Assessment categories. Each rule belongs to exactly one and feeds
// that category's composite score.
const (
	CategorySEO         = "seo"
	CategoryReadability = "readability"
)

// AnalysisInput is the content to analyze plus its optional metadata.
// Empty optional fields mean "not provided".
type AnalysisInput struct {
	Content         string `json:"content"`
	Title           string `json:"title"`
	MetaDescription string `json:"metaDescription"`
	Keyword         string `json:"keyword"`
}

// ContentStatistics holds the raw metrics extracted from one piece of
// content. All counts are >= 0 and all percentages are within [0,100];
// ratios with a zero denominator are reported as 0.
type ContentStatistics struct {
	WordCount        int `json:"wordCount"`
	SentenceCount    int `json:"sentenceCount"`
	ParagraphCount   int `json:"paragraphCount"`
	SyllableCount    int `json:"syllableCount"`
	ComplexWordCount int `json:"complexWordCount"`

	AverageSentenceLength    float64 `json:"averageSentenceLength"`
	AverageParagraphLength   float64 `json:"averageParagraphLength"`
	PassiveSentenceCount     int     `json:"passiveSentenceCount"`
	PassiveVoicePercentage   float64 `json:"passiveVoicePercentage"`
	TransitionSentenceCount  int     `json:"transitionSentenceCount"`
	TransitionWordPercentage float64 `json:"transitionWordPercentage"`

	KeywordCount   int     `json:"keywordCount"`
	KeywordDensity float64 `json:"keywordDensity"`

	HeadingCount      map[string]int `json:"headingCount"`
	InternalLinkCount int            `json:"internalLinkCount"`
	ExternalLinkCount int            `json:"externalLinkCount"`
	ImageCount        int            `json:"imageCount"`
	ImagesWithAlt     int            `json:"imagesWithAlt"`
	ImagesMissingAlt  int            `json:"imagesMissingAlt"`

	// FleschReadingEase is nil when the content has no words or no
	// sentences, since the formula would divide by zero.
	FleschReadingEase *float64 `json:"fleschReadingEase"`
}

// Assessment is the outcome of a single rule evaluation.
type Assessment struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Rating   string  `json:"rating"`
	Message  string  `json:"message"`
	Weight   float64 `json:"weight"`
}

// AnalysisResult is the full report for one analysis call.
type AnalysisResult struct {
	SEOScore         float64           `json:"seoScore"`
	ReadabilityScore float64           `json:"readabilityScore"`
	Assessments      []Assessment      `json:"assessments"`
	Statistics       ContentStatistics `json:"statistics"`
}
