package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/avelinom/vidgate/internal/domain"
)

const videosCollection = "videos"

// VideoRepository persists catalog entries in the videos collection.
type VideoRepository struct {
	coll *mongo.Collection
}

// NewVideoRepository creates a new video repository
func NewVideoRepository(client *Client) *VideoRepository {
	return &VideoRepository{coll: client.Database().Collection(videosCollection)}
}

// ListActive returns up to limit active videos in insertion order.
func (r *VideoRepository) ListActive(ctx context.Context, limit int64) ([]domain.Video, error) {
	opts := options.Find().SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer cursor.Close(ctx)

	videos := []domain.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, fmt.Errorf("failed to decode videos: %w", err)
	}
	return videos, nil
}

// FindActiveByID returns the active video with the given id, or
// (nil, nil) if the record is absent or inactive.
func (r *VideoRepository) FindActiveByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	var video domain.Video
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&video)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find video: %w", err)
	}
	return &video, nil
}

// SeedIfEmpty inserts the sample catalog only when the collection holds no
// documents. Returns the number of inserted records. Not safe against
// concurrent first-starts; a single-instance deployment is assumed.
func (r *VideoRepository) SeedIfEmpty(ctx context.Context, videos []domain.Video) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count videos: %w", err)
	}
	if count > 0 || len(videos) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, len(videos))
	for i := range videos {
		docs[i] = videos[i]
	}

	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to seed videos: %w", err)
	}
	return int64(len(res.InsertedIDs)), nil
}

// Count returns the total number of catalog entries, active or not.
func (r *VideoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count videos: %w", err)
	}
	return count, nil
}
