package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

const auditCollection = "console_audit"

// AuditRepository persists the console action trail in MongoDB.
type AuditRepository struct {
	coll *mongo.Collection
}

var _ ports.AuditRepository = (*AuditRepository)(nil)

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	ID          string `bson:"_id"`
	Type        string `bson:"type"`
	Title       string `bson:"title"`
	Description string `bson:"description"`
	Status      string `bson:"status"`
	Actor       string `bson:"actor,omitempty"`
	CreatedAt   int64  `bson:"created_at"`
}

func (r *AuditRepository) Insert(ctx context.Context, entry domain.AuditEntry) error {
	doc := auditDoc{
		ID:          entry.ID,
		Type:        entry.Type,
		Title:       entry.Title,
		Description: entry.Description,
		Status:      entry.Status,
		Actor:       entry.Actor,
		CreatedAt:   entry.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// Recent returns the newest entries first.
func (r *AuditRepository) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find audit entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []domain.AuditEntry
	for cursor.Next(ctx) {
		var doc auditDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode audit entry: %w", err)
		}
		entries = append(entries, domain.AuditEntry{
			ID:          doc.ID,
			Type:        doc.Type,
			Title:       doc.Title,
			Description: doc.Description,
			Status:      doc.Status,
			Actor:       doc.Actor,
			CreatedAt:   unixToTime(doc.CreatedAt),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return entries, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
