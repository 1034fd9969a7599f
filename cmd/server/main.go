// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// *****************************************************************************************************//
// Package main is the entry point for the content-search backend server.
//
// This application sets up and runs a web server using the Gin framework. It
// provides a REST API for browsing the bundled catalog of spiritual videos,
// books, and study materials, and for keyword search across all of it. A
// search can be answered from the in-memory catalog or, on request, from the
// live YouTube Data API; books always come from the catalog since no
// external book source exists.
//
// The main function initializes the application's configuration, sets up
// logging and telemetry, seeds the in-memory store, and wires the search
// services before starting the server and handling graceful shutdown.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/govardhan-digital/content-search/internal/middleware"
	"github.com/govardhan-digital/content-search/internal/telemetry"
)

// main orchestrates the setup of logging, telemetry, configuration, the
// content store and search services, the web server, and its API routes. It
// also handles graceful shutdown of the server upon receiving an interrupt
// signal.
func main() {
	// Initialize structured logging for the application.
	telemetry.SetupLogging()
	slog.Info("Logging initialized")

	// Root context for the application; cancelled on exit.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load application configuration from TOML files.
	config := GetConfig()

	// Initialize OpenTelemetry tracing.
	shutdownTelemetry, err := telemetry.SetupTracing(ctx, config)
	if err != nil {
		slog.Error("Failed to setup OpenTelemetry", "error", err)
		log.Fatal(err)
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			slog.Error("telemetry shutdown failed", "error", err)
		}
	}()
	slog.Info("Tracing initialized")

	// Initialize the application's state: the seeded catalog, the YouTube
	// client, and the search services.
	InitState(ctx)
	slog.Info("Initialized State")

	// Set up the Gin web server and its middleware stack.
	r := newRouter(config.Application.Name)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Application.Port),
		Handler:      r,
		ReadTimeout:  20 * time.Second,
		WriteTimeout: 20 * time.Second,
	}

	// Start the HTTP server in a separate goroutine so it doesn't block
	// the main thread.
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to listen: ", "error", err)
		}
	}()
	slog.Info("Server Ready", "port", config.Application.Port)

	// Block until an interrupt signal is received.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutdown Server ...")

	// Give active requests 5 seconds to complete.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server Shutdown Failed:", "error", err)
	}

	log.Println("Server exiting")
}

// newRouter assembles the gin engine: OpenTelemetry tracing of inbound
// requests, permissive CORS, per-request ids, and the API routes grouped
// under "/api/v1". Tests build the same router over fake collaborators.
func newRouter(serviceName string) *gin.Engine {
	r := gin.Default()
	r.Use(otelgin.Middleware(serviceName))
	// cors.Default() is permissive, which suits a public read-only API.
	r.Use(cors.Default())
	r.Use(middleware.RequestID())

	apiV1 := r.Group("/api/v1")
	{
		ContentRouter(apiV1)
		SearchRouter(apiV1)
	}
	return r
}
