package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/joho/godotenv"

	"lakedash/adapters/warehouse"
	"lakedash/app"
	"lakedash/internal/config"
	"lakedash/internal/sampledata"
	"lakedash/ports"
	"lakedash/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Sample data generator is always available; it backs the offline demo
	generator := sampledata.New(sampledata.Config{
		Seed: appConfig.Data.Seed,
		Days: appConfig.Data.SampleDays,
	})

	// Connect to the warehouse when credentials are present
	var wh ports.WarehousePort
	if appConfig.WarehouseConfigured() {
		connector, err := warehouse.Open(context.Background(), appConfig.Warehouse)
		if err != nil {
			// The dashboard still works on sample data; surface the failure
			// and continue rather than refusing to boot.
			log.Printf("Warehouse connection failed, continuing with sample data: %v", err)
		} else {
			wh = connector
			defer connector.Close()
			log.Printf("Connected to %s warehouse", appConfig.Warehouse.Driver)
		}
	} else {
		log.Printf("No warehouse configured, serving sample data")
	}

	service := app.NewDashboardService(appConfig, generator, wh)

	server, err := ui.NewServer(appConfig, service)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	// Start pprof server for performance profiling
	if appConfig.Profiling.Enabled {
		go func() {
			log.Printf("Profiling server starting on :%s", appConfig.Profiling.Port)
			if err := http.ListenAndServe(":"+appConfig.Profiling.Port, nil); err != nil {
				log.Printf("pprof server failed: %v", err)
			}
		}()
	}

	log.Printf("Starting lakedash server on port %s", appConfig.Server.Port)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
