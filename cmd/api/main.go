// Command api serves the dashboard's data endpoints without the UI, for
// embedding the data layer behind another front end.
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"lakedash/adapters/warehouse"
	"lakedash/app"
	"lakedash/domain/core"
	"lakedash/internal/config"
	"lakedash/internal/errors"
	"lakedash/internal/sampledata"
	"lakedash/ports"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	generator := sampledata.New(sampledata.Config{
		Seed: appConfig.Data.Seed,
		Days: appConfig.Data.SampleDays,
	})

	var wh ports.WarehousePort
	if appConfig.WarehouseConfigured() {
		connector, err := warehouse.Open(context.Background(), appConfig.Warehouse)
		if err != nil {
			log.Printf("Warehouse connection failed, continuing with sample data: %v", err)
		} else {
			wh = connector
			defer connector.Close()
		}
	}

	service := app.NewDashboardService(appConfig, generator, wh)

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))

	days := appConfig.Data.SampleDays
	router.Get("/api/dashboard", handleDashboard(service, days))
	router.Get("/api/table", handleTable(service, days))
	router.Get("/api/health", handleHealth(service))

	addr := ":" + appConfig.Server.Port
	log.Printf("Starting lakedash data API on %s", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}

// parseDataRequest mirrors the UI's query parameter conventions.
func parseDataRequest(r *http.Request, days int) app.DataRequest {
	q := r.URL.Query()
	req := app.DataRequest{
		Source: q.Get("source"),
		Filter: q.Get("filter"),
		Range:  core.LastDays(days),
	}

	if from := q.Get("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			req.Range.From = t
		}
	}
	if to := q.Get("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			req.Range.To = t
		}
	}
	if regions := q.Get("regions"); regions != "" {
		for _, region := range strings.Split(regions, ",") {
			if region = strings.TrimSpace(region); region != "" {
				req.Regions = append(req.Regions, region)
			}
		}
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		req.Limit = limit
	}
	return req
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeConfigInvalid:
		status = http.StatusServiceUnavailable
	case errors.CodeExternalService, errors.CodeWarehouseError:
		status = http.StatusBadGateway
	}
	writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}

func handleDashboard(service *app.DashboardService, days int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := parseDataRequest(r, days)
		data, err := service.Load(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, data)
	}
}

func handleTable(service *app.DashboardService, days int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := parseDataRequest(r, days)
		f, err := service.Frame(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}

		offset := 0
		limit := 50
		if o, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && o >= 0 {
			offset = o
		}
		if l, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && l > 0 && l <= 500 {
			limit = l
		}

		page := f.Slice(offset, limit)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"columns": page.ColumnNames(),
			"rows":    page.Rows,
			"offset":  offset,
			"total":   f.RowCount(),
		})
	}
}

func handleHealth(service *app.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Health(r.Context()))
	}
}
