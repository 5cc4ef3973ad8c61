package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"scibind/internal/services"
)

func main() {
	csvPath := flag.String("csv", "", "CSV file with Name, Material Type and Division columns (mandatory)")
	flag.Parse()

	if *csvPath == "" {
		fmt.Println("Usage: load_events -csv <events.csv>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *csvPath, err)
	}
	defer f.Close()

	events, err := services.ParseEventsCSV(f)
	if err != nil {
		log.Fatalf("Invalid events file: %v", err)
	}

	db, err := services.InitDB(dsn)
	if err != nil {
		log.Fatalf("Failed to connect DB: %v", err)
	}
	if err := services.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	if err := services.LoadEvents(db, events); err != nil {
		if errors.Is(err, services.ErrEventsAlreadyLoaded) {
			fmt.Println("Events already loaded")
			return
		}
		log.Fatalf("Failed to load events: %v", err)
	}

	fmt.Printf("Events loaded successfully (%d)\n", len(events))
}
