package main

import (
	"log"
	"os"

	"brocard-search/internal/store"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./brocard.db"
	}

	log.Printf("Setting up database at: %s\n", dbPath)

	db, err := store.Init(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Println("Creating tables...")
	if err := store.Setup(db); err != nil {
		log.Fatalf("Failed to set up schema: %v", err)
	}

	log.Println("Database setup completed successfully!")
}
