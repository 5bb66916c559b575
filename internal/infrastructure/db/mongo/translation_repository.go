package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
)

const (
	collectionTranslations       = "translations"
	collectionTranslationVersion = "translation_versions"
)

// TranslationRepository implements ports.TranslationRepository.
type TranslationRepository struct {
	col      *mongo.Collection
	versions versionStore
}

func NewTranslationRepository(db *mongo.Database) *TranslationRepository {
	return &TranslationRepository{
		col:      db.Collection(collectionTranslations),
		versions: versionStore{col: db.Collection(collectionTranslationVersion)},
	}
}

type translationDoc struct {
	ID             string    `bson:"_id"`
	UserID         string    `bson:"user_id"`
	SourceLanguage string    `bson:"source_language"`
	TargetLanguage string    `bson:"target_language"`
	SourceText     string    `bson:"source_text"`
	TranslatedText string    `bson:"translated_text"`
	DocumentType   string    `bson:"document_type"`
	Purpose        string    `bson:"purpose"`
	Tone           string    `bson:"tone"`
	Jurisdiction   string    `bson:"jurisdiction"`
	VersionCount   int64     `bson:"version_count"`
	CurrentSeq     int64     `bson:"current_seq"`
	CreatedAt      time.Time `bson:"created_at"`
}

func (d translationDoc) toDomain(versions []versionDoc) *domain.Translation {
	t := &domain.Translation{
		ID:             d.ID,
		UserID:         d.UserID,
		SourceLanguage: domain.Language(d.SourceLanguage),
		TargetLanguage: domain.Language(d.TargetLanguage),
		SourceText:     d.SourceText,
		TranslatedText: d.TranslatedText,
		DocumentType:   domain.DocumentType(d.DocumentType),
		Purpose:        domain.Purpose(d.Purpose),
		Tone:           domain.Tone(d.Tone),
		Jurisdiction:   domain.Jurisdiction(d.Jurisdiction),
		CreatedAt:      d.CreatedAt.UTC(),
		Versions:       make([]domain.TranslationVersion, 0, len(versions)),
	}
	for _, v := range versions {
		t.Versions = append(t.Versions, domain.TranslationVersion{
			ID:             v.ID,
			TranslatedText: v.Content,
			CreatedAt:      v.CreatedAt.UTC(),
		})
	}
	return t
}

// ListByUser returns the user's translations, newest first, with versions.
func (r *TranslationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Translation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}

	var docs []translationDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode translations: %w", err)
	}

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	versions, err := r.versions.byParent(ctx, ids...)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Translation, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain(versions[d.ID]))
	}
	return out, nil
}

func (r *TranslationRepository) Get(ctx context.Context, id string) (*domain.Translation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc translationDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find translation: %w", err)
	}

	versions, err := r.versions.byParent(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc.toDomain(versions[id]), nil
}

func (r *TranslationRepository) Create(ctx context.Context, t *domain.Translation) (*domain.Translation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := translationDoc{
		ID:             uuid.NewString(),
		UserID:         t.UserID,
		SourceLanguage: string(t.SourceLanguage),
		TargetLanguage: string(t.TargetLanguage),
		SourceText:     t.SourceText,
		TranslatedText: t.TranslatedText,
		DocumentType:   string(t.DocumentType),
		Purpose:        string(t.Purpose),
		Tone:           string(t.Tone),
		Jurisdiction:   string(t.Jurisdiction),
		CreatedAt:      time.Now().UTC(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert translation: %w", err)
	}
	return doc.toDomain(nil), nil
}

// Delete removes the version rows first, then the translation itself.
func (r *TranslationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.versions.deleteParent(ctx, id); err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete translation: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TranslationRepository) AppendVersion(ctx context.Context, id, translatedText string) (*domain.Translation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.versions.record(ctx, r.col, id, "translated_text", translatedText); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("append translation version: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *TranslationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return err
	}
	return r.versions.ensureIndexes(ctx)
}
