package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/avelinom/vidgate/internal/domain"
)

// DashboardCache caches the redacted dashboard listing. A nil cache
// disables caching entirely.
type DashboardCache interface {
	Get(ctx context.Context, limit int64) ([]domain.DashboardItem, error)
	Set(ctx context.Context, limit int64, items []domain.DashboardItem) error
}

// VideoService serves catalog listings and single-video lookups. All
// outbound shapes are built here so the private source reference never
// leaves the service except as a derived embed URL.
type VideoService struct {
	videos       domain.VideoRepository
	cache        DashboardCache
	limit        int64
	embedBaseURL string
}

// NewVideoService creates a new video service
func NewVideoService(videos domain.VideoRepository, cache DashboardCache, limit int64, embedBaseURL string) *VideoService {
	return &VideoService{
		videos:       videos,
		cache:        cache,
		limit:        limit,
		embedBaseURL: embedBaseURL,
	}
}

// Dashboard returns up to the configured number of active videos, each
// stripped of its source reference. Cache errors degrade to a store read.
func (s *VideoService) Dashboard(ctx context.Context) ([]domain.DashboardItem, error) {
	if s.cache != nil {
		items, err := s.cache.Get(ctx, s.limit)
		if err != nil {
			log.Warn().Err(err).Msg("dashboard cache read failed")
		} else if items != nil {
			return items, nil
		}
	}

	videos, err := s.videos.ListActive(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	items := make([]domain.DashboardItem, 0, len(videos))
	for i := range videos {
		items = append(items, domain.NewDashboardItem(&videos[i]))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, s.limit, items); err != nil {
			log.Warn().Err(err).Msg("dashboard cache write failed")
		}
	}

	return items, nil
}

// GetVideo returns a single active video with the embeddable URL derived
// from the private source reference. Malformed ids and absent records map
// to distinct errors so the handler can answer 400 vs 404.
func (s *VideoService) GetVideo(ctx context.Context, idHex string) (*domain.VideoDetail, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, domain.ErrInvalidVideoID
	}

	video, err := s.videos.FindActiveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find video: %w", err)
	}
	if video == nil {
		return nil, domain.ErrVideoNotFound
	}

	return &domain.VideoDetail{
		ID:           video.ID.Hex(),
		Title:        video.Title,
		Description:  video.Description,
		ThumbnailURL: video.ThumbnailURL,
		VideoURL:     s.embedBaseURL + video.YouTubeID,
	}, nil
}
