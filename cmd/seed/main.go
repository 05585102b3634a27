package main

import (
	"context"
	"flag"
	"log"
	"os"

	"wiccapedia-api/internal/config"
	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/model"
	"wiccapedia-api/internal/repository/specification"
	"wiccapedia-api/internal/repository/unitofwork"
	"wiccapedia-api/pkg/catalog"
	"wiccapedia-api/pkg/database"

	"github.com/google/uuid"
)

func main() {
	file := flag.String("file", "data/gems.json", "JSON array of gems to load")
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewGormDB(database.Options{
		Driver:   cfg.Database.Driver,
		DSN:      cfg.Database.Connection,
		LogLevel: cfg.Database.LogLevel,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	if err := database.Migrate(db, model.All()...); err != nil {
		log.Fatal("Error: ", err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("Error: Failed to open %s: %v", *file, err)
	}
	defer f.Close()

	records, skipped, err := catalog.LoadRecords(f)
	if err != nil {
		log.Fatal("Error: ", err)
	}
	for _, i := range skipped {
		log.Printf("Warn: gem at index %d has no name or is malformed, skipping", i)
	}

	log.Printf("Seeding %d gems from %s...", len(records), *file)

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	created := 0
	for _, rec := range records {
		existing, err := uow.GemRepository().FindOne(ctx, specification.Filter("name", rec.Name))
		if err != nil {
			log.Fatalf("Error: lookup %q: %v", rec.Name, err)
		}
		if existing != nil {
			log.Printf("Gem '%s' already exists, skipping...", rec.Name)
			continue
		}

		gem := &entity.Gem{
			Id:                 uuid.New(),
			Name:               rec.Name,
			Image:              rec.Image,
			MagicalDescription: rec.MagicalDescription,
			Category:           rec.Category,
			Color:              rec.Color,
			ChemicalFormula:    rec.ChemicalFormula,
		}
		if err := uow.GemRepository().Create(ctx, gem); err != nil {
			log.Printf("Error: Failed to create gem '%s': %v", rec.Name, err)
			continue
		}
		created++
	}

	log.Printf("Seeding completed: %d created, %d skipped", created, len(records)-created+len(skipped))
}
