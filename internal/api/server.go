// Package api exposes the corpus and its derived aggregates over HTTP for
// the dashboard and export collaborators. Pure read surface plus the two
// insight endpoints; all heavy lifting lives in analytics and insight.
package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"jobseek/market-service/internal/insight"
	"jobseek/market-service/internal/model"
)

// CorpusProvider serves the (cached) normalized corpus.
type CorpusProvider interface {
	Get(ctx context.Context) ([]model.JobPosting, error)
}

// Server wires the gin router to the corpus and the optional LLM client.
type Server struct {
	corpus CorpusProvider
	llm    insight.Completer // nil disables the insight endpoints
	engine *gin.Engine
}

// NewServer builds the router. Pass a nil llm to run without AI features.
func NewServer(corpus CorpusProvider, llm insight.Completer) *Server {
	s := &Server{corpus: corpus, llm: llm, engine: gin.Default()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/health", s.handleHealth)

	api := s.engine.Group("/api")
	api.GET("/filters", s.handleFilters)
	api.GET("/postings", s.handlePostings)
	api.GET("/metrics", s.handleMetrics)
	api.GET("/skills", s.handleSkills)
	api.GET("/degrees", s.handleDegrees)
	api.GET("/experience", s.handleExperience)
	api.GET("/matrix", s.handleMatrix)
	api.GET("/companies/top", s.handleTopCompanies)
	api.GET("/companies/:name", s.handleCompany)
	api.POST("/insight/summary", s.handleSummary)
	api.POST("/insight/recommend", s.handleRecommend)
}

// Run starts the HTTP listener on addr (e.g. ":8082").
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}
