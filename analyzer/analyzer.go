package analyzer

// Options configures an Analyzer.
type Options struct {
	// SiteDomain is the hostname links are classified against: hrefs
	// pointing at this domain or one of its subdomains count as
	// internal, everything else as external. Accepts a bare hostname
	// or a full URL. When empty, only relative links are internal.
	SiteDomain string
}

// Analyzer scores content against a fixed table of SEO and readability
// rules. It is immutable after construction and holds no caches or
// counters, so a single instance is safe for concurrent use and every
// call is a pure function of its input.
type Analyzer struct {
	siteDomain string
}

// New creates an Analyzer.
func New(opts Options) *Analyzer {
	return &Analyzer{siteDomain: normalizeDomain(opts.SiteDomain)}
}

// AnalyzeStatistics computes the raw content statistics without running
// the assessment rules. Intended for display-only callers that just
// need the numbers.
func (a *Analyzer) AnalyzeStatistics(content, keyword string) ContentStatistics {
	doc := parseDocument(content, a.siteDomain)
	return computeStatistics(doc, keyword)
}

// Analyze runs the full pipeline: normalize the content, extract the
// metrics, evaluate the rule table, and aggregate the two composite
// scores. It never fails; empty or malformed content produces a
// low-scoring result rather than an error. Rules whose preconditions
// are not met (for example the keyword rules when no keyword is given)
// are skipped and do not drag the scores down.
func (a *Analyzer) Analyze(input AnalysisInput) *AnalysisResult {
	doc := parseDocument(input.Content, a.siteDomain)
	stats := computeStatistics(doc, input.Keyword)

	rc := newRuleContext(input, doc, stats)
	assessments := make([]Assessment, 0, len(ruleTable))
	for _, r := range ruleTable {
		if r.applies != nil && !r.applies(rc) {
			continue
		}
		rating, message := r.evaluate(rc)
		assessments = append(assessments, Assessment{
			ID:       r.id,
			Category: r.category,
			Rating:   rating,
			Message:  message,
			Weight:   r.weight,
		})
	}

	return &AnalysisResult{
		SEOScore:         compositeScore(assessments, CategorySEO),
		ReadabilityScore: compositeScore(assessments, CategoryReadability),
		Assessments:      assessments,
		Statistics:       stats,
	}
}
