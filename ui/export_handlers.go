package ui

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lakedash/adapters/excel"
	"lakedash/domain/core"
	"lakedash/internal/errors"
)

func exportFilename(id core.ExportID, ext string) string {
	return fmt.Sprintf("lakedash_data_%s_%s.%s", time.Now().Format("20060102"), id.Short(), ext)
}

// handleDownloadCSV streams the filtered dataset as a CSV attachment.
func (s *Server) handleDownloadCSV(c *gin.Context) {
	req := s.parseDataRequest(c)

	f, err := s.service.Frame(c.Request.Context(), req)
	if err != nil {
		log.Printf("[handleDownloadCSV] Frame fetch failed: %v", err)
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "code": errors.GetCode(err)})
		return
	}

	body, err := f.CSV()
	if err != nil {
		log.Printf("[handleDownloadCSV] CSV encoding failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "CSV encoding failed"})
		return
	}

	id := core.NewExportID()
	c.Header("X-Export-Id", id.String())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(id, "csv")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}

// handleDownloadXLSX streams the filtered dataset as an XLSX workbook.
func (s *Server) handleDownloadXLSX(c *gin.Context) {
	req := s.parseDataRequest(c)

	f, err := s.service.Frame(c.Request.Context(), req)
	if err != nil {
		log.Printf("[handleDownloadXLSX] Frame fetch failed: %v", err)
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "code": errors.GetCode(err)})
		return
	}

	body, err := excel.WriteFrame("Data", f)
	if err != nil {
		log.Printf("[handleDownloadXLSX] Workbook encoding failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "workbook encoding failed"})
		return
	}

	id := core.NewExportID()
	c.Header("X-Export-Id", id.String())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(id, "xlsx")))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", body)
}
