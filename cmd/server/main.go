package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"brocard-search/internal/api"
	"brocard-search/internal/store"
)

func main() {
	// Initialize database
	dbPath := getDBPath()
	log.Printf("Connecting to database: %s", dbPath)
	db, err := store.Init(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Create server with database connection
	server := api.NewServer(db)

	s := &http.Server{
		Addr:    ":8080",
		Handler: server.Routes(),
	}

	fmt.Println("Starting server on :8080")
	if err := s.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func getDBPath() string {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./brocard.db"
	}
	return dbPath
}
