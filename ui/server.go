package ui

import (
	"bytes"
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"mysterycheck/app"
	"mysterycheck/internal"
	"mysterycheck/internal/report"
)

// Server exposes the latest audit report over HTTP: the HTML dashboard plus
// JSON endpoints for the raw results and analysis. It runs the audit once at
// startup and again on demand.
type Server struct {
	router  *gin.Engine
	service *app.AuditService
	logger  *internal.Logger

	mu     sync.RWMutex
	latest *app.AuditReport
}

// NewServer wires the routes over an audit service.
func NewServer(service *app.AuditService) *Server {
	s := &Server{
		router:  gin.Default(),
		service: service,
		logger:  internal.DefaultLogger,
	}

	s.router.GET("/", s.handleDashboard)
	s.router.GET("/api/results", s.handleResults)
	s.router.GET("/api/analysis", s.handleAnalysis)
	s.router.GET("/api/scenes", s.handleScenes)
	s.router.POST("/api/rerun", s.handleRerun)

	return s
}

// Start runs the audit once and then serves until the process exits.
func (s *Server) Start(port string) error {
	if err := s.refresh(); err != nil {
		return err
	}
	s.logger.Info("[Server] Dashboard listening on :%s", port)
	return s.router.Run(":" + port)
}

func (s *Server) refresh() error {
	rep, err := s.service.Run(context.Background())
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.latest = rep
	s.mu.Unlock()
	return nil
}

func (s *Server) report() *app.AuditReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *Server) handleDashboard(c *gin.Context) {
	rep := s.report()
	if rep == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no audit report available yet"})
		return
	}

	var buf bytes.Buffer
	if err := report.RenderDashboard(&buf, rep); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleResults(c *gin.Context) {
	rep := s.report()
	if rep == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no audit report available yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"run_id":     rep.RunID,
		"all_passed": rep.AllPassed,
		"results":    rep.Results,
	})
}

func (s *Server) handleAnalysis(c *gin.Context) {
	rep := s.report()
	if rep == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no audit report available yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"clue_analysis":      rep.ClueAnalysis,
		"appearances":        rep.Appearances,
		"appearance_summary": rep.AppearanceSummary,
		"difficulty_groups":  rep.DifficultyGroups,
	})
}

func (s *Server) handleScenes(c *gin.Context) {
	rep := s.report()
	if rep == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no audit report available yet"})
		return
	}
	c.JSON(http.StatusOK, rep.SceneComplexity)
}

func (s *Server) handleRerun(c *gin.Context) {
	if err := s.refresh(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	rep := s.report()
	c.JSON(http.StatusOK, gin.H{"run_id": rep.RunID, "all_passed": rep.AllPassed})
}
