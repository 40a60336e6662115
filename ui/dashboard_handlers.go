package ui

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"lakedash/app"
	"lakedash/domain/core"
	"lakedash/internal/errors"
)

// parseDataRequest reads the sidebar state from query parameters:
// source, from/to (2006-01-02), regions (comma separated), filter, limit.
func (s *Server) parseDataRequest(c *gin.Context) app.DataRequest {
	req := app.DataRequest{
		Source: c.Query("source"),
		Filter: c.Query("filter"),
		Range:  core.LastDays(s.config.Data.SampleDays),
	}

	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			req.Range.From = t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			req.Range.To = t
		}
	}

	if regions := c.Query("regions"); regions != "" {
		for _, r := range strings.Split(regions, ",") {
			if r = strings.TrimSpace(r); r != "" {
				req.Regions = append(req.Regions, r)
			}
		}
	}

	if limit := c.Query("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			req.Limit = n
		}
	}

	return req
}

func (s *Server) handleIndex(c *gin.Context) {
	log.Printf("[handleIndex] Rendering dashboard page")

	now := time.Now()
	data := map[string]interface{}{
		"Title":              "Lakedash Dashboard",
		"Regions":            s.service.Regions(),
		"DefaultSource":      s.service.DefaultSource(),
		"WarehouseAvailable": s.service.WarehouseAvailable(),
		"DefaultFrom":        now.AddDate(0, 0, -s.config.Data.SampleDays).Format("2006-01-02"),
		"DefaultTo":          now.Format("2006-01-02"),
	}
	s.renderTemplate(c, "index.html", data)
}

func (s *Server) handleDashboardData(c *gin.Context) {
	req := s.parseDataRequest(c)

	data, err := s.service.Load(c.Request.Context(), req)
	if err != nil {
		log.Printf("[handleDashboardData] Load failed: %v", err)
		c.JSON(statusFor(err), gin.H{
			"error": err.Error(),
			"code":  errors.GetCode(err),
		})
		return
	}

	c.JSON(http.StatusOK, data)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, s.service.Health(c.Request.Context()))
}

// statusFor maps application error codes to HTTP statuses. Warehouse failures
// surface as 502 so the UI can distinguish them from bad filter input.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput:
		return http.StatusBadRequest
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeConfigInvalid:
		return http.StatusServiceUnavailable
	case errors.CodeExternalService, errors.CodeWarehouseError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
