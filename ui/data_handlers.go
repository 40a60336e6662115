package ui

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lakedash/internal/errors"
)

// handleTable returns raw rows for the expandable data table, with
// offset/limit paging for progressive loading.
func (s *Server) handleTable(c *gin.Context) {
	req := s.parseDataRequest(c)

	offset := 0
	limit := 50
	if o, err := strconv.Atoi(c.Query("offset")); err == nil && o >= 0 {
		offset = o
	}
	if l, err := strconv.Atoi(c.Query("page_size")); err == nil && l > 0 && l <= 500 {
		limit = l
	}

	f, err := s.service.Frame(c.Request.Context(), req)
	if err != nil {
		log.Printf("[handleTable] Frame fetch failed: %v", err)
		c.JSON(statusFor(err), gin.H{
			"error": err.Error(),
			"code":  errors.GetCode(err),
		})
		return
	}

	page := f.Slice(offset, limit)
	c.JSON(http.StatusOK, gin.H{
		"columns": page.ColumnNames(),
		"rows":    page.Rows,
		"offset":  offset,
		"total":   f.RowCount(),
	})
}
