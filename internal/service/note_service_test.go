package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"notes-be/internal/dto"
	"notes-be/internal/entity"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/repository/contract"
	"notes-be/internal/repository/memory"
	"notes-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.EventType()
	}
	return types
}

func newNoteService(pub IPublisherService) (INoteService, *memory.NoteRepository) {
	repo := memory.NewNoteRepository()
	return NewNoteService(repo, pub, logger.NewNopLogger()), repo
}

func boolPtr(b bool) *bool { return &b }

func TestNoteService_Create(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc, _ := newNoteService(pub)

	res, err := svc.Create(ctx, &dto.CreateNoteRequest{Content: "test"})
	require.NoError(t, err)
	assert.Equal(t, entity.NoteIDFromInt(1), res.Id)
	assert.Equal(t, "test", res.Content)
	assert.False(t, res.Important)
	assert.False(t, res.Date.IsZero())

	res, err = svc.Create(ctx, &dto.CreateNoteRequest{Content: "flagged", Important: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, entity.NoteIDFromInt(2), res.Id)
	assert.True(t, res.Important)

	assert.Equal(t, []string{events.NoteCreated, events.NoteCreated}, pub.types())
	assert.Equal(t, entity.NoteIDFromInt(2), pub.events[1].Payload()["id"])
}

func TestNoteService_ShowMissingIsNotFound(t *testing.T) {
	svc, _ := newNoteService(&recordingPublisher{})

	res, err := svc.Show(context.Background(), "5")
	assert.Nil(t, res)
	assert.True(t, contract.IsKind(err, contract.KindNotFound))
}

func TestNoteService_Update(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc, _ := newNoteService(pub)

	_, err := svc.Create(ctx, &dto.CreateNoteRequest{Content: "draft"})
	require.NoError(t, err)

	res, err := svc.Update(ctx, &dto.UpdateNoteRequest{Id: "1", Content: "final", Important: true})
	require.NoError(t, err)
	assert.Equal(t, "final", res.Content)
	assert.True(t, res.Important)

	shown, err := svc.Show(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "final", shown.Content)

	_, err = svc.Update(ctx, &dto.UpdateNoteRequest{Id: "2", Content: "ghost"})
	assert.True(t, contract.IsKind(err, contract.KindNotFound))

	assert.Equal(t, []string{events.NoteCreated, events.NoteUpdated}, pub.types())
}

func TestNoteService_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc, _ := newNoteService(pub)

	_, err := svc.Create(ctx, &dto.CreateNoteRequest{Content: "gone soon"})
	require.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, "1"))
	assert.NoError(t, svc.Delete(ctx, "1"))

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Equal(t, []string{events.NoteCreated, events.NoteDeleted, events.NoteDeleted}, pub.types())
}

func TestNoteService_PublishFailureDoesNotFailRequest(t *testing.T) {
	svc, repo := newNoteService(&recordingPublisher{err: errors.New("bus down")})

	res, err := svc.Create(context.Background(), &dto.CreateNoteRequest{Content: "resilient"})
	require.NoError(t, err)
	assert.Equal(t, "resilient", res.Content)

	notes, _ := repo.FindAll(context.Background())
	assert.Len(t, notes, 1)
}

type failingRepository struct {
	contract.NoteRepository
}

func (failingRepository) Create(context.Context, *entity.Note) error {
	return contract.ValidationFailed("Note validation failed: content: content is shorter than the minimum allowed length (5)")
}

func TestNoteService_CreateValidationErrorPropagates(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewNoteService(failingRepository{}, pub, logger.NewNopLogger())

	_, err := svc.Create(context.Background(), &dto.CreateNoteRequest{Content: "abc"})
	assert.True(t, contract.IsKind(err, contract.KindValidation))
	assert.Empty(t, pub.types())
}
