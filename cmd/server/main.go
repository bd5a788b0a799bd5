// Clustering Service
// A small algorithm-demonstration service built in Go.
//
// This service provides:
// - K-means clustering over named-feature vectors with pluggable metrics
// - Particle swarm optimisation
// - Discrete fuzzy set operations
// - HTTP API for all three
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/clusterlab/clustering-service/internal/api"
)

func main() {
	// Command-line flags
	port := flag.Int("port", 8001, "Port to listen on")
	workers := flag.Int("workers", 1, "Default worker count for the clustering assignment phase")
	flag.Parse()

	// Check for environment variable override
	if envPort := os.Getenv("CLUSTERING_SERVICE_PORT"); envPort != "" {
		fmt.Sscanf(envPort, "%d", port)
	}
	if envWorkers := os.Getenv("CLUSTERING_WORKERS"); envWorkers != "" {
		fmt.Sscanf(envWorkers, "%d", workers)
	}

	// Initialize handler
	handler := api.NewHandler(*workers)

	// Create router
	router := api.NewRouter(handler)

	// Start server
	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Clustering service starting on %s", addr)
	log.Printf("Assignment workers: %d", *workers)
	log.Printf("Endpoints:")
	log.Printf("   POST /cluster        - Run k-means on a set of records")
	log.Printf("   POST /swarm/minimize - Run particle swarm optimisation")
	log.Printf("   POST /fuzzy          - Apply a discrete fuzzy set operation")
	log.Printf("   GET  /health         - Health check")

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
