package repositories

import (
	"context"
	"time"

	"github.com/convoforge/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AnalyticsRepository defines the interface for view/share analytics.
// Counters are best-effort and live outside the relational store; nothing
// in the core workflows depends on them.
type AnalyticsRepository interface {
	RecordView(ctx context.Context, postID, userID uint) error
	RecordShare(ctx context.Context, postID, userID uint) error
	GetPostStats(ctx context.Context, postID uint) (*models.PostStats, error)
}

// MongoAnalyticsRepository implements AnalyticsRepository for MongoDB
type MongoAnalyticsRepository struct {
	stats  *mongo.Collection
	events *mongo.Collection
}

// NewMongoAnalyticsRepository creates a new MongoAnalyticsRepository
func NewMongoAnalyticsRepository(db *mongo.Database) *MongoAnalyticsRepository {
	return &MongoAnalyticsRepository{
		stats:  db.Collection("post_stats"),
		events: db.Collection("engagement_events"),
	}
}

// RecordView records one view event and bumps the post's view counter
func (r *MongoAnalyticsRepository) RecordView(ctx context.Context, postID, userID uint) error {
	return r.record(ctx, postID, userID, models.EngagementView, "views")
}

// RecordShare records one share event and bumps the post's share counter
func (r *MongoAnalyticsRepository) RecordShare(ctx context.Context, postID, userID uint) error {
	return r.record(ctx, postID, userID, models.EngagementShare, "shares")
}

func (r *MongoAnalyticsRepository) record(ctx context.Context, postID, userID uint, kind, counter string) error {
	event := models.EngagementEvent{
		PostID:     postID,
		UserID:     userID,
		Kind:       kind,
		OccurredAt: time.Now(),
	}
	if _, err := r.events.InsertOne(ctx, event); err != nil {
		return err
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.stats.UpdateOne(ctx,
		bson.M{"post_id": postID},
		bson.M{"$inc": bson.M{counter: 1}},
		opts,
	)
	return err
}

// GetPostStats retrieves a post's counters; posts never viewed or shared
// report zeros rather than an error.
func (r *MongoAnalyticsRepository) GetPostStats(ctx context.Context, postID uint) (*models.PostStats, error) {
	var stats models.PostStats
	err := r.stats.FindOne(ctx, bson.M{"post_id": postID}).Decode(&stats)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &models.PostStats{PostID: postID}, nil
		}
		return nil, err
	}
	return &stats, nil
}
