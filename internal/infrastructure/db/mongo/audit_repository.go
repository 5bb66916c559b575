package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
)

const collectionAuditLogs = "audit_logs"

// AuditRepository implements ports.AuditRepository. Entries are only ever
// inserted.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAuditLogs)}
}

type auditDoc struct {
	ID        string         `bson:"_id"`
	UserID    string         `bson:"user_id"`
	UserEmail string         `bson:"user_email"`
	Action    string         `bson:"action"`
	Details   map[string]any `bson:"details,omitempty"`
	IPAddress string         `bson:"ip_address"`
	UserAgent string         `bson:"user_agent"`
	CreatedAt time.Time      `bson:"created_at"`
}

func (r *AuditRepository) Insert(ctx context.Context, e *domain.AuditLogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := auditDoc{
		ID:        uuid.NewString(),
		UserID:    e.UserID,
		UserEmail: e.UserEmail,
		Action:    string(e.Action),
		Details:   e.Details,
		IPAddress: e.IPAddress,
		UserAgent: e.UserAgent,
		CreatedAt: e.CreatedAt.UTC(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	e.ID = doc.ID
	return nil
}

// List returns the newest entries first.
func (r *AuditRepository) List(ctx context.Context, limit int) ([]*domain.AuditLogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	var docs []auditDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode audit entries: %w", err)
	}

	out := make([]*domain.AuditLogEntry, 0, len(docs))
	for _, d := range docs {
		out = append(out, &domain.AuditLogEntry{
			ID:        d.ID,
			UserID:    d.UserID,
			UserEmail: d.UserEmail,
			Action:    domain.AuditAction(d.Action),
			Details:   d.Details,
			IPAddress: d.IPAddress,
			UserAgent: d.UserAgent,
			CreatedAt: d.CreatedAt.UTC(),
		})
	}
	return out, nil
}

func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	})
	return err
}
