package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"reachsync/internal/domain"
)

// Config holds Instagram source configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Source fetches engagement metrics for one post or reel at a time. The
// provider is invoked per raw URL; callers are responsible for pacing
// successive calls.
type Source struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger.With("source", domain.PlatformInstagram),
	}
}

func (s *Source) Platform() domain.Platform {
	return domain.PlatformInstagram
}

// mediaResponse mirrors the provider's media-info response.
type mediaResponse struct {
	Success      bool   `json:"success"`
	Shortcode    string `json:"shortcode"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
	PlayCount    int64  `json:"play_count"`
	ReshareCount int64  `json:"reshare_count"`
	TakenAt      int64  `json:"taken_at"`
	Error        string `json:"error"`
}

// Fetch looks up metrics for one raw post URL. It always returns a
// structured result; transport and provider failures arrive as
// Success=false with an ErrorMessage, never as an error value.
func (s *Source) Fetch(ctx context.Context, rawURL string) domain.SingleFetchResult {
	reqURL := fmt.Sprintf("%s/media?url=%s", s.baseURL, url.QueryEscape(rawURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return failure(fmt.Sprintf("create request: %v", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ReachSync/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("media request failed", "url", rawURL, "error", err)
		return failure(fmt.Sprintf("execute request: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return failure(fmt.Sprintf("unexpected status: %d", resp.StatusCode))
	}

	var media mediaResponse
	if err := json.NewDecoder(resp.Body).Decode(&media); err != nil {
		return failure(fmt.Sprintf("decode response: %v", err))
	}

	if !media.Success {
		msg := media.Error
		if msg == "" {
			msg = "provider reported failure"
		}
		return failure(msg)
	}

	result := domain.SingleFetchResult{
		Success:     true,
		CanonicalID: media.Shortcode,
		Counts: domain.Counts{
			Likes:    media.LikeCount,
			Comments: media.CommentCount,
			Plays:    media.PlayCount,
			Reshares: media.ReshareCount,
		},
	}
	if media.TakenAt > 0 {
		postedAt := time.Unix(media.TakenAt, 0).UTC()
		result.PostedAt = &postedAt
	}
	return result
}

func failure(msg string) domain.SingleFetchResult {
	return domain.SingleFetchResult{ErrorMessage: msg}
}
