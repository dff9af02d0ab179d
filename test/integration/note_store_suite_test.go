package integration

import (
	"context"
	"log"
	"testing"

	"notes-be/internal/entity"
	"notes-be/internal/repository/contract"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadEnv() {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}
}

// runNoteStoreSuite exercises the behaviour every persistent note store
// shares: opaque ids, content validation, idempotent deletes.
func runNoteStoreSuite(t *testing.T, repo contract.NoteRepository, wellFormedMissingID string) {
	ctx := context.Background()

	t.Run("Create assigns id and date", func(t *testing.T) {
		note := &entity.Note{Content: "integration note", Important: true}
		require.NoError(t, repo.Create(ctx, note))
		assert.NotEmpty(t, note.Id)
		assert.False(t, note.Date.IsZero())

		found, err := repo.FindById(ctx, string(note.Id))
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, note.Content, found.Content)
		assert.True(t, found.Important)
		assert.True(t, note.Date.Equal(found.Date))

		t.Cleanup(func() { _ = repo.Delete(ctx, string(note.Id)) })
	})

	t.Run("Create rejects short content", func(t *testing.T) {
		err := repo.Create(ctx, &entity.Note{Content: "abc"})
		assert.True(t, contract.IsKind(err, contract.KindValidation))
	})

	t.Run("Update replaces content and importance", func(t *testing.T) {
		note := &entity.Note{Content: "before update"}
		require.NoError(t, repo.Create(ctx, note))
		t.Cleanup(func() { _ = repo.Delete(ctx, string(note.Id)) })

		updated, err := repo.Update(ctx, &entity.Note{Id: note.Id, Content: "after update", Important: true})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, note.Id, updated.Id)
		assert.Equal(t, "after update", updated.Content)
		assert.True(t, updated.Important)
		assert.True(t, note.Date.Equal(updated.Date))

		_, err = repo.Update(ctx, &entity.Note{Id: note.Id, Content: "abc"})
		assert.True(t, contract.IsKind(err, contract.KindValidation))
	})

	t.Run("Missing ids", func(t *testing.T) {
		found, err := repo.FindById(ctx, wellFormedMissingID)
		assert.NoError(t, err)
		assert.Nil(t, found)

		updated, err := repo.Update(ctx, &entity.Note{Id: entity.NoteID(wellFormedMissingID), Content: "nobody home"})
		assert.NoError(t, err)
		assert.Nil(t, updated)

		assert.NoError(t, repo.Delete(ctx, wellFormedMissingID))
	})

	t.Run("Malformed ids", func(t *testing.T) {
		_, err := repo.FindById(ctx, "not-an-id")
		assert.True(t, contract.IsKind(err, contract.KindMalformedID))

		_, err = repo.Update(ctx, &entity.Note{Id: "not-an-id", Content: "valid content"})
		assert.True(t, contract.IsKind(err, contract.KindMalformedID))

		assert.NoError(t, repo.Delete(ctx, "not-an-id"))
	})

	t.Run("Delete twice", func(t *testing.T) {
		note := &entity.Note{Content: "short lived"}
		require.NoError(t, repo.Create(ctx, note))

		require.NoError(t, repo.Delete(ctx, string(note.Id)))
		require.NoError(t, repo.Delete(ctx, string(note.Id)))

		found, err := repo.FindById(ctx, string(note.Id))
		assert.NoError(t, err)
		assert.Nil(t, found)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		for _, n := range all {
			assert.NotEqual(t, note.Id, n.Id)
		}
	})
}
