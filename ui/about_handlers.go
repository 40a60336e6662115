package ui

import (
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// handleAbout renders the embedded project notes from markdown.
func (s *Server) handleAbout(c *gin.Context) {
	source, err := embeddedFiles.ReadFile("docs/about.md")
	if err != nil {
		log.Printf("[handleAbout] docs/about.md not found: %v", err)
		c.String(http.StatusInternalServerError, "About page unavailable")
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	rendered := markdown.ToHTML(source, p, renderer)

	s.renderTemplate(c, "about.html", map[string]interface{}{
		"Title":   "About Lakedash",
		"Content": template.HTML(rendered),
	})
}
