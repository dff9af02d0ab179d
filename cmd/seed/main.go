package main

import (
	"context"
	"log"
	"time"

	"notes-be/internal/bootstrap"
	"notes-be/internal/config"
	"notes-be/internal/repository/memory"
)

func main() {
	// 1. Load Configuration (.env is read by config.Load)
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.Database.Store == config.StoreMemory {
		log.Fatal("Error: NOTE_STORE is memory; nothing would persist. Use SEED_NOTES=true instead")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 2. Connect to the configured store
	store, err := bootstrap.NewStore(ctx, cfg)
	if err != nil {
		log.Fatal("Error: Failed to connect to note store:", err)
	}
	defer func() {
		if err := store.Close(ctx); err != nil {
			log.Printf("Warn: Failed to close note store: %v", err)
		}
	}()

	existing, err := store.Repository.FindAll(ctx)
	if err != nil {
		log.Fatal("Error: Failed to list notes:", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, n := range existing {
		seen[n.Content] = true
	}

	log.Println("Seeding sample notes...")

	// 3. Insert every sample note that is not there yet
	for _, n := range memory.SampleNotes() {
		if seen[n.Content] {
			log.Printf("Note '%s' already exists, skipping...", n.Content)
			continue
		}

		note := n
		note.Id = ""
		if err := store.Repository.Create(ctx, &note); err != nil {
			log.Printf("Error creating note '%s': %v", n.Content, err)
		} else {
			log.Printf("Created note: %s (%s)", note.Id, note.Content)
		}
	}

	log.Println("Note seeding completed!")
}
