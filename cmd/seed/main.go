package main

import (
	"context"
	"flag"
	"os"

	"cinebook/internal/config"
	"cinebook/internal/database"
	"cinebook/internal/logger"
	"cinebook/internal/models"
	"cinebook/internal/repository"

	"github.com/joho/godotenv"
)

var (
	clearExisting = flag.Bool("clear", false, "Clear existing movies before seeding")
	dryRun        = flag.Bool("dry-run", false, "Show what would be seeded without writing")
)

var sampleMovies = []models.Movie{
	{
		Title:     "Avatar: The Way of Water",
		Locations: []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata"},
		Showtimes: []string{"10:00 AM", "1:30 PM", "4:30 PM", "8:00 PM"},
	},
	{
		Title:     "Pathaan",
		Locations: []string{"Mumbai", "Delhi", "Bangalore", "Pune", "Hyderabad"},
		Showtimes: []string{"9:30 AM", "12:30 PM", "3:30 PM", "7:00 PM"},
	},
	{
		Title:     "RRR",
		Locations: []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Hyderabad"},
		Showtimes: []string{"11:00 AM", "2:30 PM", "6:30 PM", "9:30 PM"},
	},
	{
		Title:     "Top Gun: Maverick",
		Locations: []string{"Mumbai", "Delhi", "Bangalore", "Pune", "Kolkata"},
		Showtimes: []string{"10:15 AM", "1:00 PM", "4:00 PM", "7:45 PM"},
	},
	{
		Title:     "KGF: Chapter 2",
		Locations: []string{"Mumbai", "Bangalore", "Chennai", "Hyderabad", "Pune"},
		Showtimes: []string{"9:45 AM", "1:15 PM", "5:00 PM", "8:30 PM"},
	},
	{
		Title:     "Doctor Strange: Multiverse of Madness",
		Locations: []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata"},
		Showtimes: []string{"10:30 AM", "1:45 PM", "5:15 PM", "9:00 PM"},
	},
	{
		Title:     "Brahmastra",
		Locations: []string{"Mumbai", "Delhi", "Bangalore", "Pune", "Hyderabad"},
		Showtimes: []string{"9:00 AM", "12:15 PM", "4:15 PM", "8:15 PM"},
	},
	{
		Title:     "The Batman",
		Locations: []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata"},
		Showtimes: []string{"11:15 AM", "2:45 PM", "6:15 PM", "9:45 PM"},
	},
}

func main() {
	flag.Parse()
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, "text")
	log := logger.Get()

	if *dryRun {
		for _, movie := range sampleMovies {
			log.Info("Would seed movie", "title", movie.Title, "locations", movie.Locations)
		}
		return
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to open database", "error", err)
	}
	defer db.Close()

	ctx := context.Background()
	if !db.Available(ctx) {
		log.Error("Database is not reachable; start it and retry")
		os.Exit(1)
	}

	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	movies := repository.NewMovieRepository(db)

	if *clearExisting {
		if err := movies.DeleteAll(ctx); err != nil {
			logger.Fatal("Failed to clear movies", "error", err)
		}
		log.Info("Cleared existing movies")
	}

	for i := range sampleMovies {
		if err := movies.Create(ctx, &sampleMovies[i]); err != nil {
			logger.Fatal("Failed to seed movie", "title", sampleMovies[i].Title, "error", err)
		}
		log.Info("Seeded movie",
			"id", sampleMovies[i].ID,
			"title", sampleMovies[i].Title,
			"locations", sampleMovies[i].Locations)
	}

	log.Info("Seeding completed", "count", len(sampleMovies))
}
