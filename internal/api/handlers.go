package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jobseek/market-service/internal/analytics"
	"jobseek/market-service/internal/insight"
	"jobseek/market-service/internal/model"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "market-service",
	})
}

// filteredCorpus loads the cached corpus and applies the query-string
// selection. Repeated params select multiple values; none means all.
func (s *Server) filteredCorpus(c *gin.Context) ([]model.JobPosting, bool) {
	corpus, err := s.corpus.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "corpus unavailable: " + err.Error()})
		return nil, false
	}
	sel := analytics.Selection{
		Industries: c.QueryArray("industry"),
		Roles:      c.QueryArray("role"),
		Locations:  c.QueryArray("location"),
	}
	return analytics.Filter(corpus, sel), true
}

func intQuery(c *gin.Context, name string, def int) int {
	if v, err := strconv.Atoi(c.Query(name)); err == nil && v > 0 {
		return v
	}
	return def
}

func (s *Server) handleFilters(c *gin.Context) {
	corpus, err := s.corpus.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analytics.Options(corpus))
}

func (s *Server) handlePostings(c *gin.Context) {
	filtered, ok := s.filteredCorpus(c)
	if !ok {
		return
	}
	// An empty result is a valid state the client must render, not an error.
	c.JSON(http.StatusOK, gin.H{"count": len(filtered), "postings": filtered})
}

func (s *Server) handleMetrics(c *gin.Context) {
	filtered, ok := s.filteredCorpus(c)
	if !ok {
		return
	}
	now := time.Now().UTC()
	topRole, topIndustry := "N/A", "N/A"
	if t := analytics.RoleCounts(filtered); len(t) > 0 {
		topRole = t[0].Label
	}
	if t := analytics.IndustryCounts(filtered); len(t) > 0 {
		topIndustry = t[0].Label
	}
	c.JSON(http.StatusOK, gin.H{
		"total_postings":      len(filtered),
		"freshness":           analytics.Freshness(filtered, now),
		"jobs_today":          analytics.JobsToday(filtered, now),
		"daily_delta":         analytics.DailyDelta(filtered, now),
		"new_companies_today": analytics.NewCompaniesToday(filtered, now),
		"salaries":            analytics.Salaries(filtered),
		"top_role":            topRole,
		"top_industry":        topIndustry,
	})
}

func (s *Server) handleSkills(c *gin.Context) {
	filtered, ok := s.filteredCorpus(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.SkillFrequency(filtered, intQuery(c, "top", 15)))
}

func (s *Server) handleDegrees(c *gin.Context) {
	filtered, ok := s.filteredCorpus(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.DegreeCounts(filtered))
}

func (s *Server) handleExperience(c *gin.Context) {
	filtered, ok := s.filteredCorpus(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.ExperienceCounts(filtered))
}

func (s *Server) handleMatrix(c *gin.Context) {
	filtered, ok := s.filteredCorpus(c)
	if !ok {
		return
	}
	table := analytics.IndustryDegreeMatrix(filtered,
		intQuery(c, "industries", analytics.DefaultTopIndustries),
		intQuery(c, "degrees", analytics.DefaultTopDegrees))
	c.JSON(http.StatusOK, table)
}

func (s *Server) handleTopCompanies(c *gin.Context) {
	filtered, ok := s.filteredCorpus(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analytics.TopCompanies(filtered, intQuery(c, "n", 8)))
}

func (s *Server) handleCompany(c *gin.Context) {
	corpus, err := s.corpus.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	intel, found := analytics.Company(corpus, c.Param("name"), time.Now().UTC())
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no postings for company"})
		return
	}
	c.JSON(http.StatusOK, intel)
}

func (s *Server) handleSummary(c *gin.Context) {
	if s.llm == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "GROQ_API_KEY not configured"})
		return
	}
	filtered, ok := s.filteredCorpus(c)
	if !ok {
		return
	}
	snap := insight.MarketSnapshot{
		TopSkills: analytics.SkillFrequency(filtered, 10),
		Salaries:  analytics.Salaries(filtered),
	}
	if t := analytics.RoleCounts(filtered); len(t) > 0 {
		snap.TopRole = t[0].Label
	}
	if t := analytics.IndustryCounts(filtered); len(t) > 0 {
		snap.TopIndustry = t[0].Label
	}
	summary, err := insight.MarketSummary(c.Request.Context(), s.llm, snap)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

type recommendRequest struct {
	Profile string `json:"profile" binding:"required"`
	TopN    int    `json:"top_n"`
}

func (s *Server) handleRecommend(c *gin.Context) {
	if s.llm == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "GROQ_API_KEY not configured"})
		return
	}
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TopN <= 0 {
		req.TopN = 5
	}
	filtered, ok := s.filteredCorpus(c)
	if !ok {
		return
	}
	recs, err := insight.Recommend(c.Request.Context(), s.llm, req.Profile, filtered, req.TopN)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
