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
	collectionMemorandums       = "memorandums"
	collectionMemorandumVersion = "memorandum_versions"
)

// MemorandumRepository implements ports.MemorandumRepository.
type MemorandumRepository struct {
	col      *mongo.Collection
	versions versionStore
}

func NewMemorandumRepository(db *mongo.Database) *MemorandumRepository {
	return &MemorandumRepository{
		col:      db.Collection(collectionMemorandums),
		versions: versionStore{col: db.Collection(collectionMemorandumVersion)},
	}
}

type memorandumDoc struct {
	ID               string    `bson:"_id"`
	UserID           string    `bson:"user_id"`
	Type             string    `bson:"type"`
	Language         string    `bson:"language"`
	CourtName        string    `bson:"court_name"`
	CaseNumber       string    `bson:"case_number"`
	CaseFacts        string    `bson:"case_facts"`
	LegalRequests    string    `bson:"legal_requests"`
	DefensePoints    *string   `bson:"defense_points,omitempty"`
	Strength         string    `bson:"strength"`
	GeneratedContent string    `bson:"generated_content"`
	VersionCount     int64     `bson:"version_count"`
	CurrentSeq       int64     `bson:"current_seq"`
	CreatedAt        time.Time `bson:"created_at"`
}

func (d memorandumDoc) toDomain(versions []versionDoc) *domain.Memorandum {
	m := &domain.Memorandum{
		ID:               d.ID,
		UserID:           d.UserID,
		Type:             domain.MemorandumType(d.Type),
		Language:         domain.Language(d.Language),
		CourtName:        d.CourtName,
		CaseNumber:       d.CaseNumber,
		CaseFacts:        d.CaseFacts,
		LegalRequests:    d.LegalRequests,
		DefensePoints:    d.DefensePoints,
		Strength:         domain.Strength(d.Strength),
		GeneratedContent: d.GeneratedContent,
		CreatedAt:        d.CreatedAt.UTC(),
		Versions:         make([]domain.MemorandumVersion, 0, len(versions)),
	}
	for _, v := range versions {
		m.Versions = append(m.Versions, domain.MemorandumVersion{
			ID:        v.ID,
			Content:   v.Content,
			CreatedAt: v.CreatedAt.UTC(),
		})
	}
	return m
}

func (r *MemorandumRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Memorandum, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list memorandums: %w", err)
	}

	var docs []memorandumDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode memorandums: %w", err)
	}

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	versions, err := r.versions.byParent(ctx, ids...)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Memorandum, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain(versions[d.ID]))
	}
	return out, nil
}

func (r *MemorandumRepository) Get(ctx context.Context, id string) (*domain.Memorandum, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc memorandumDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find memorandum: %w", err)
	}

	versions, err := r.versions.byParent(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc.toDomain(versions[id]), nil
}

func (r *MemorandumRepository) Create(ctx context.Context, m *domain.Memorandum) (*domain.Memorandum, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := memorandumDoc{
		ID:               uuid.NewString(),
		UserID:           m.UserID,
		Type:             string(m.Type),
		Language:         string(m.Language),
		CourtName:        m.CourtName,
		CaseNumber:       m.CaseNumber,
		CaseFacts:        m.CaseFacts,
		LegalRequests:    m.LegalRequests,
		DefensePoints:    m.DefensePoints,
		Strength:         string(m.Strength),
		GeneratedContent: m.GeneratedContent,
		CreatedAt:        time.Now().UTC(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert memorandum: %w", err)
	}
	return doc.toDomain(nil), nil
}

func (r *MemorandumRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.versions.deleteParent(ctx, id); err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete memorandum: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MemorandumRepository) AppendVersion(ctx context.Context, id, content string) (*domain.Memorandum, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.versions.record(ctx, r.col, id, "generated_content", content); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("append memorandum version: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *MemorandumRepository) EnsureIndexes(ctx context.Context) error {
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
