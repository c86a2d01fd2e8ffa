package server

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/contentscore/contentscore/analyzer"
	"github.com/contentscore/contentscore/fetcher"
	"github.com/contentscore/contentscore/stats"
)

type analyzeRequest struct {
	Content         string `json:"content" binding:"required"`
	Title           string `json:"title"`
	MetaDescription string `json:"metaDescription"`
	Keyword         string `json:"keyword"`
}

type analyzeURLRequest struct {
	URL     string `json:"url" binding:"required,url"`
	Keyword string `json:"keyword"`
}

type statisticsRequest struct {
	Content string `json:"content" binding:"required"`
	Keyword string `json:"keyword"`
}

// urlAnalysis is the response for URL analyses, the scored result plus
// what was extracted from the page
type urlAnalysis struct {
	Page   *fetcher.Page            `json:"page"`
	Result *analyzer.AnalysisResult `json:"result"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	key := cacheKey("content", req.Content, req.Title, req.MetaDescription, req.Keyword)
	if cached, ok := s.cachedResult(key); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	result := s.analyzer.Analyze(analyzer.AnalysisInput{
		Content:         req.Content,
		Title:           req.Title,
		MetaDescription: req.MetaDescription,
		Keyword:         req.Keyword,
	})

	s.storeResult(key, result)
	s.usage.RecordAnalysis()

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleAnalyzeURL(c *gin.Context) {
	var req analyzeURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL provided"})
		return
	}

	key := cacheKey("url", req.URL, req.Keyword)
	if cached, ok := s.cachedResult(key); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	page, err := s.fetcher.Fetch(c.Request.Context(), req.URL)
	if err != nil {
		s.usage.RecordError()
		s.logger.Error().Err(err).Str("url", req.URL).Msg("fetch failed")

		if errors.Is(err, fetcher.ErrInvalidURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL provided"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch URL: " + err.Error()})
		return
	}

	// Classify links against the fetched page's own host
	pageAnalyzer := s.analyzer
	if host := hostOf(page.URL); host != "" {
		pageAnalyzer = analyzer.New(analyzer.Options{SiteDomain: host})
	}

	result := pageAnalyzer.Analyze(analyzer.AnalysisInput{
		Content:         page.Content,
		Title:           page.Title,
		MetaDescription: page.MetaDescription,
		Keyword:         req.Keyword,
	})

	response := urlAnalysis{Page: page, Result: result}
	s.storeResult(key, response)
	s.usage.RecordURLAnalysis()

	c.JSON(http.StatusOK, response)
}

func (s *Server) handleStatistics(c *gin.Context) {
	var req statisticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	c.JSON(http.StatusOK, s.analyzer.AnalyzeStatistics(req.Content, req.Keyword))
}

func (s *Server) handleUsage(c *gin.Context) {
	months := s.usage.GetAllMonths()
	monthly := make(map[string]stats.MonthlyUsage, len(months))
	for _, month := range months {
		if usage, ok := s.usage.GetMonthlyUsage(month); ok {
			monthly[month] = usage
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"uniqueVisitors24h": s.usage.UniqueVisitors24h(),
		"months":            monthly,
	})
}

// cachedResult looks up a cached response, counting the hit or miss
func (s *Server) cachedResult(key string) (any, bool) {
	if s.cache == nil {
		return nil, false
	}

	value, ok := s.cache.get(key)
	if ok {
		s.usage.RecordCacheHit()
	} else {
		s.usage.RecordCacheMiss()
	}
	return value, ok
}

func (s *Server) storeResult(key string, value any) {
	if s.cache != nil {
		s.cache.put(key, value)
	}
}

func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}
