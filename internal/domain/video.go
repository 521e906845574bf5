package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video represents a catalog entry. YouTubeID is the private source
// reference: it stays server-side and is only ever used to derive the
// embed and thumbnail URLs.
type Video struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	YouTubeID    string             `bson:"youtube_id"`
	ThumbnailURL string             `bson:"thumbnail_url"`
	IsActive     bool               `bson:"is_active"`
}

// DashboardItem is the redacted listing shape: no source reference at all.
type DashboardItem struct {
	ID           string `json:"_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	IsActive     bool   `json:"is_active"`
}

// NewDashboardItem maps a stored video to its listing shape.
func NewDashboardItem(v *Video) DashboardItem {
	return DashboardItem{
		ID:           v.ID.Hex(),
		Title:        v.Title,
		Description:  v.Description,
		ThumbnailURL: v.ThumbnailURL,
		IsActive:     v.IsActive,
	}
}

// VideoDetail is the single-video shape. VideoURL is derived from the
// private source reference; the raw reference itself is never serialized.
type VideoDetail struct {
	ID           string `json:"_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	VideoURL     string `json:"video_url"`
}

// VideoRepository defines persistence operations for the video catalog.
// Lookups return (nil, nil) when no active document matches.
type VideoRepository interface {
	ListActive(ctx context.Context, limit int64) ([]Video, error)
	FindActiveByID(ctx context.Context, id primitive.ObjectID) (*Video, error)
	SeedIfEmpty(ctx context.Context, videos []Video) (int64, error)
	Count(ctx context.Context) (int64, error)
}
