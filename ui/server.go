package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lakedash/app"
	"lakedash/internal/config"
)

//go:embed templates/* static/* docs/*
var embeddedFiles embed.FS

// Server represents the dashboard web server
type Server struct {
	router    *gin.Engine
	config    *config.Config
	service   *app.DashboardService
	templates *template.Template
}

// NewServer creates a new web server instance around the dashboard service.
func NewServer(cfg *config.Config, service *app.DashboardService) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:  gin.Default(),
		config:  cfg,
		service: service,
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	s.templates = templates

	s.setupRoutes()
	return s, nil
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		// Thousands grouping happens client-side; this is the server-rendered
		// fallback for fragments.
		"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
		"upper": strings.ToUpper,
		"add":   func(a, b int) int { return a + b },
	}

	templatesFS, err := fs.Sub(embeddedFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to create templates filesystem: %w", err)
	}
	return template.New("").Funcs(funcMap).ParseFS(templatesFS, "*.html")
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err == nil {
		s.router.StaticFS("/static", http.FS(staticFS))
	}

	// Pages
	s.router.GET("/", s.handleIndex)
	s.router.GET("/about", s.handleAbout)

	// Data API
	api := s.router.Group("/api")
	api.GET("/dashboard", s.handleDashboardData)
	api.GET("/table", s.handleTable)
	api.GET("/health", s.handleHealth)

	// Downloads
	s.router.GET("/download/csv", s.handleDownloadCSV)
	s.router.GET("/download/xlsx", s.handleDownloadXLSX)
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	log.Printf("Starting lakedash server on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// renderTemplate executes a page template with a text/html content type.
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, templateName, data); err != nil {
		log.Printf("Template error: %v", err)
		c.String(http.StatusInternalServerError, "Template error")
	}
}
