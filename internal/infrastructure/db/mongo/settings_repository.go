package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
)

const collectionSettings = "site_settings"

// SettingsRepository stores the single site settings document.
type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection(collectionSettings)}
}

type settingsDoc struct {
	ID          string     `bson:"_id"`
	LogoURL     *string    `bson:"logo_url,omitempty"`
	AppTitle    *string    `bson:"app_title,omitempty"`
	AppSubtitle *string    `bson:"app_subtitle,omitempty"`
	FooterText  *string    `bson:"footer_text,omitempty"`
	UpdatedAt   *time.Time `bson:"updated_at,omitempty"`
}

func (d settingsDoc) toDomain() *domain.SiteSettings {
	s := &domain.SiteSettings{
		ID:          d.ID,
		LogoURL:     d.LogoURL,
		AppTitle:    d.AppTitle,
		AppSubtitle: d.AppSubtitle,
		FooterText:  d.FooterText,
	}
	if d.UpdatedAt != nil {
		t := d.UpdatedAt.UTC()
		s.UpdatedAt = &t
	}
	return s
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc settingsDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": domain.SettingsID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}
	return doc.toDomain(), nil
}

// Upsert writes the provided fields. The first write also seeds the default
// app title unless the patch sets one.
func (r *SettingsRepository) Upsert(ctx context.Context, p domain.SettingsPatch, now time.Time) (*domain.SiteSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": now.UTC()}
	setField(set, "logo_url", p.LogoURL)
	setField(set, "app_title", p.AppTitle)
	setField(set, "app_subtitle", p.AppSubtitle)
	setField(set, "footer_text", p.FooterText)

	update := bson.M{"$set": set}
	if p.AppTitle == nil {
		update["$setOnInsert"] = bson.M{"app_title": domain.DefaultAppTitle}
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc settingsDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": domain.SettingsID}, update, opts).Decode(&doc); err != nil {
		return nil, fmt.Errorf("upsert settings: %w", err)
	}
	return doc.toDomain(), nil
}

func setField(set bson.M, key string, v *string) {
	if v != nil {
		set[key] = *v
	}
}
