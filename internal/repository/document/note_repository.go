package document

import (
	"context"
	"errors"
	"time"

	"notes-be/internal/entity"
	"notes-be/internal/mapper"
	"notes-be/internal/model"
	"notes-be/internal/repository/contract"
	"notes-be/internal/repository/validation"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const CollectionName = "notes"

type NoteRepository struct {
	coll   *mongo.Collection
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *mongo.Database) contract.NoteRepository {
	var coll *mongo.Collection
	if db != nil {
		coll = db.Collection(CollectionName)
	}
	return &NoteRepository{
		coll:   coll,
		mapper: mapper.NewNoteMapper(),
	}
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, contract.MalformedID(id, err)
	}
	return oid, nil
}

func (r *NoteRepository) Create(ctx context.Context, note *entity.Note) error {
	doc := r.mapper.ToDocument(note)
	doc.ID = bson.NewObjectID()
	if doc.Date.IsZero() {
		doc.Date = time.Now().UTC().Truncate(time.Millisecond)
	}
	if err := validation.Struct(doc); err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	*note = *r.mapper.DocumentToEntity(doc)
	return nil
}

func (r *NoteRepository) Update(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	oid, err := parseID(string(note.Id))
	if err != nil {
		return nil, err
	}

	// content/important are the only mutable fields; validate them as a whole note.
	candidate := &model.NoteDocument{Content: note.Content, Important: note.Important}
	if err := validation.Struct(candidate); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	update := bson.M{"$set": bson.M{
		"content":    note.Content,
		"important":  note.Important,
		"updated_at": now,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc model.NoteDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DocumentToEntity(&doc), nil
}

// Delete ignores malformed ids: they cannot name a stored document.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *NoteRepository) FindById(ctx context.Context, id string) (*entity.Note, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc model.NoteDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DocumentToEntity(&doc), nil
}

func (r *NoteRepository) FindAll(ctx context.Context) ([]*entity.Note, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*model.NoteDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return r.mapper.DocumentsToEntities(docs), nil
}
