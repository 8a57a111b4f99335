// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/county-health-api/cliparse"
	"github.com/danielhkuo/county-health-api/handlers"
	"github.com/danielhkuo/county-health-api/middleware"
	"github.com/danielhkuo/county-health-api/models"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	countyData := handlers.NewCountyDataHandler(db, cfg)

	// Liveness: the root message doubles as the health check
	liveness := func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
			Message: "County Health Data API is running",
		})
	}
	mux.HandleFunc("GET /{$}", liveness)
	mux.HandleFunc("GET /health", liveness)

	// Lookup endpoint
	mux.HandleFunc("POST /county_data", middleware.WithLogging(countyData.GetCountyData))

	return middleware.CORS(mux)
}
