package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"

	"github.com/ternarybob/digero/internal/models"
)

// videoIDPatterns cover the YouTube URL forms we accept
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&?#]+)`),
	regexp.MustCompile(`youtu\.be/([^&?#]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^&?#]+)`),
	regexp.MustCompile(`youtube\.com/v/([^&?#]+)`),
}

// ExtractVideoID pulls the video ID out of a YouTube URL, or returns the
// empty string when the URL matches no known form
func ExtractVideoID(rawURL string) string {
	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(rawURL); match != nil {
			return match[1]
		}
	}
	return ""
}

// oembedResponse is the subset of the YouTube oEmbed payload we read
type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// IngestVideo normalizes a video transcript supplied by the caller,
// enriching title and author from the YouTube oEmbed endpoint when
// reachable. Metadata lookup is best-effort: a failed lookup falls back to
// generic values rather than failing the ingest.
func (s *Service) IngestVideo(ctx context.Context, videoURL, transcript string) (*models.NormalizedSource, error) {
	videoID := ExtractVideoID(videoURL)
	if videoID == "" {
		return nil, fmt.Errorf("%w: unrecognized video URL %q", ErrProcessingFailed, videoURL)
	}

	title := "YouTube Video"
	author := "YouTube Creator"
	if meta, err := s.fetchOEmbed(ctx, videoURL); err != nil {
		s.logger.Warn().Err(err).Str("video_id", videoID).Msg("Could not fetch video metadata, using defaults")
	} else {
		if meta.Title != "" {
			title = meta.Title
		}
		if meta.AuthorName != "" {
			author = meta.AuthorName
		}
	}

	source := s.newSource(title, transcript, models.SourceTypeVideo, models.SourceMetadata{
		Author: author,
		Domain: "youtube.com",
	})

	s.logger.Info().
		Str("source_id", source.ID).
		Str("video_id", videoID).
		Int("transcript_length", len(transcript)).
		Msg("Video transcript ingested")

	return source, nil
}

func (s *Service) fetchOEmbed(ctx context.Context, videoURL string) (*oembedResponse, error) {
	oembedURL := "https://www.youtube.com/oembed?format=json&url=" + url.QueryEscape(videoURL)

	resp, err := s.fetch(ctx, oembedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var meta oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, fmt.Errorf("decoding oEmbed response: %w", err)
	}
	return &meta, nil
}
