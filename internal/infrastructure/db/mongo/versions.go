package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// versionDoc is one row of a document's revision log. Seq is allocated on the
// parent with $inc, so it orders rows exactly even when appends race.
type versionDoc struct {
	ID        string    `bson:"_id"`
	ParentID  string    `bson:"parent_id"`
	Seq       int64     `bson:"seq"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"created_at"`
}

// versionStore keeps version rows in their own collection, keyed by parent id.
type versionStore struct {
	col *mongo.Collection
}

func (s versionStore) insert(ctx context.Context, parentID string, seq int64, content string, now time.Time) error {
	doc := versionDoc{
		ID:        uuid.NewString(),
		ParentID:  parentID,
		Seq:       seq,
		Content:   content,
		CreatedAt: now,
	}
	if _, err := s.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert version: %w", err)
	}
	return nil
}

// byParent loads the versions of every given parent, each slice ordered by seq.
func (s versionStore) byParent(ctx context.Context, parentIDs ...string) (map[string][]versionDoc, error) {
	out := make(map[string][]versionDoc, len(parentIDs))
	if len(parentIDs) == 0 {
		return out, nil
	}

	filter := bson.M{"parent_id": bson.M{"$in": parentIDs}}
	opts := options.Find().SetSort(bson.D{{Key: "parent_id", Value: 1}, {Key: "seq", Value: 1}})

	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find versions: %w", err)
	}

	var docs []versionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode versions: %w", err)
	}
	for _, d := range docs {
		out[d.ParentID] = append(out[d.ParentID], d)
	}
	return out, nil
}

func (s versionStore) deleteParent(ctx context.Context, parentID string) error {
	if _, err := s.col.DeleteMany(ctx, bson.M{"parent_id": parentID}); err != nil {
		return fmt.Errorf("delete versions: %w", err)
	}
	return nil
}

func (s versionStore) ensureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "parent_id", Value: 1}, {Key: "seq", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// record stores content as the next version of the parent and then promotes
// it to the parent's current field. The version row is written before the
// parent changes, so a failed insert never leaves a current value with no row
// behind it. The promotion only applies while no later seq has been promoted.
func (s versionStore) record(ctx context.Context, parents *mongo.Collection, id, field, content string) error {
	seq, err := nextSeq(ctx, parents, id)
	if err != nil {
		return err
	}
	if err := s.insert(ctx, id, seq, content, time.Now().UTC()); err != nil {
		return err
	}

	filter := bson.M{"_id": id, "current_seq": bson.M{"$not": bson.M{"$gte": seq}}}
	update := bson.M{"$set": bson.M{field: content, "current_seq": seq}}
	if _, err := parents.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("promote version: %w", err)
	}
	return nil
}

// nextSeq bumps version_count on the parent and returns the allocated number.
func nextSeq(ctx context.Context, parents *mongo.Collection, id string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"version_count": 1})

	var res struct {
		VersionCount int64 `bson:"version_count"`
	}
	update := bson.M{"$inc": bson.M{"version_count": 1}}
	if err := parents.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&res); err != nil {
		return 0, err
	}
	return res.VersionCount, nil
}
