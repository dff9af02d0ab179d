package bootstrap

import (
	"context"
	"fmt"
	"log"

	"notes-be/internal/config"
	"notes-be/internal/entity"
	"notes-be/internal/repository/contract"
	"notes-be/internal/repository/document"
	"notes-be/internal/repository/implementation"
	"notes-be/internal/repository/memory"
	"notes-be/pkg/database"
)

// Store is the configured note store and the function releasing its connection.
type Store struct {
	Repository contract.NoteRepository
	Close      func(ctx context.Context) error
}

func noClose(context.Context) error { return nil }

// NewStore opens the store selected by cfg.Database.Store.
func NewStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Database.Store {
	case config.StoreMemory:
		var seed []entity.Note
		if cfg.App.SeedNotes {
			seed = memory.SampleNotes()
		}
		log.Printf("[INFO] Using note store: MEMORY (%d seeded notes)", len(seed))
		return &Store{Repository: memory.NewNoteRepository(seed...), Close: noClose}, nil

	case config.StoreMongo:
		db, err := database.NewMongoDatabase(ctx, cfg.Database.MongoURI, cfg.Database.MongoDatabase)
		if err != nil {
			return nil, err
		}
		log.Printf("[INFO] Using note store: MONGO (database %s)", cfg.Database.MongoDatabase)
		return &Store{
			Repository: document.NewNoteRepository(db),
			Close: func(ctx context.Context) error {
				return database.CloseMongoDatabase(ctx, db)
			},
		}, nil

	case config.StorePostgres:
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			return nil, fmt.Errorf("unable to connect to GORM DB: %w", err)
		}
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate notes table: %w", err)
		}
		log.Printf("[INFO] Using note store: POSTGRES")
		return &Store{
			Repository: implementation.NewNoteRepository(db),
			Close: func(context.Context) error {
				return database.CloseGormDB(db)
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown note store %q", cfg.Database.Store)
	}
}
