package service

import (
	"context"
	"time"

	"notes-be/internal/dto"
	"notes-be/internal/entity"
	"notes-be/internal/mapper"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/repository/contract"
	"notes-be/pkg/events"
)

type INoteService interface {
	GetAll(ctx context.Context) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, id string) (*dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id string) error
}

type noteService struct {
	noteRepository   contract.NoteRepository
	publisherService IPublisherService
	logger           logger.ILogger
	mapper           *mapper.NoteMapper
}

func NewNoteService(
	noteRepository contract.NoteRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) INoteService {
	return &noteService{
		noteRepository:   noteRepository,
		publisherService: publisherService,
		logger:           log,
		mapper:           mapper.NewNoteMapper(),
	}
}

func (c *noteService) GetAll(ctx context.Context) ([]*dto.NoteResponse, error) {
	notes, err := c.noteRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return c.mapper.ToResponses(notes), nil
}

func (c *noteService) Show(ctx context.Context, id string) (*dto.NoteResponse, error) {
	note, err := c.noteRepository.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, contract.NotFound(id)
	}
	return c.mapper.ToResponse(note), nil
}

func (c *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	important := false
	if req.Important != nil {
		important = *req.Important
	}

	note := entity.Note{
		Content:   req.Content,
		Important: important,
		Date:      time.Now().UTC().Truncate(time.Millisecond),
	}

	if err := c.noteRepository.Create(ctx, &note); err != nil {
		return nil, err
	}

	res := c.mapper.ToResponse(&note)
	c.publish(ctx, events.NoteCreated, noteEventData(res))
	return res, nil
}

func (c *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	note, err := c.noteRepository.Update(ctx, &entity.Note{
		Id:        entity.NoteID(req.Id),
		Content:   req.Content,
		Important: req.Important,
	})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, contract.NotFound(req.Id)
	}

	res := c.mapper.ToResponse(note)
	c.publish(ctx, events.NoteUpdated, noteEventData(res))
	return res, nil
}

// Delete reports success whether or not the note existed.
func (c *noteService) Delete(ctx context.Context, id string) error {
	if err := c.noteRepository.Delete(ctx, id); err != nil {
		return err
	}
	c.publish(ctx, events.NoteDeleted, map[string]interface{}{"id": id})
	return nil
}

// publish is best effort: lifecycle events never fail the request.
func (c *noteService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if c.publisherService == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := c.publisherService.Publish(ctx, evt); err != nil {
		c.logger.Warn("NoteService", "Failed to publish note event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}

func noteEventData(n *dto.NoteResponse) map[string]interface{} {
	return map[string]interface{}{
		"id":        n.Id,
		"content":   n.Content,
		"important": n.Important,
		"date":      n.Date,
	}
}
