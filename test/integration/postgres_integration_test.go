package integration

import (
	"os"
	"testing"

	"notes-be/internal/repository/implementation"
	"notes-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPostgresNoteStore(t *testing.T) {
	loadEnv()

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err, "Failed to connect to DB")
	t.Cleanup(func() { _ = database.CloseGormDB(gormDB) })

	require.NoError(t, database.Migrate(gormDB))

	runNoteStoreSuite(t, implementation.NewNoteRepository(gormDB), uuid.NewString())
}
