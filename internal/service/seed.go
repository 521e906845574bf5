package service

import "github.com/avelinom/vidgate/internal/domain"

// sampleYouTubeID is the source reference carried by the seed record.
const sampleYouTubeID = "Z1RJmh_OqeA"

// SampleCatalog returns the canonical seed record inserted when the
// catalog is first found empty. One record, not two: duplicating the
// sample would only pad the dashboard with identical rows.
func SampleCatalog(thumbBaseURL string) []domain.Video {
	return []domain.Video{
		{
			Title:        "Welcome to VidGate",
			Description:  "A quick tour of the gated video catalog",
			YouTubeID:    sampleYouTubeID,
			ThumbnailURL: thumbBaseURL + sampleYouTubeID + "/default.jpg",
			IsActive:     true,
		},
	}
}
