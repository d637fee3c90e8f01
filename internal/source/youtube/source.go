package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"reachsync/internal/domain"
)

// Config holds YouTube source configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source fetches engagement metrics for batches of video IDs.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", domain.PlatformYouTube),
	}
}

func (s *Source) Platform() domain.Platform {
	return domain.PlatformYouTube
}

// FetchBatch fetches metrics for all IDs in one call. Fewer items than
// requested signals partial failure, not a hard error; callers treat
// missing IDs as per-item failures.
func (s *Source) FetchBatch(ctx context.Context, canonicalIDs []string) ([]domain.FetchedMetrics, error) {
	if len(canonicalIDs) == 0 {
		return nil, nil
	}

	resp, err := s.fetchWithRetry(ctx, canonicalIDs)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("fetched video batch",
		"requested", len(canonicalIDs),
		"returned", len(resp.Items),
	)

	return s.transform(resp.Items), nil
}

func (s *Source) fetchWithRetry(ctx context.Context, ids []string) (*APIResponse, error) {
	var resp *APIResponse
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx, ids)
		if err == nil {
			return resp, nil
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, ids []string) (*APIResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("id", strings.Join(ids, ","))
	params.Set("key", s.apiKey)
	params.Set("maxResults", strconv.Itoa(len(ids)))

	reqURL := fmt.Sprintf("%s/videos?%s", s.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ReachSync/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &apiResp, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

func (s *Source) transform(videos []Video) []domain.FetchedMetrics {
	metrics := make([]domain.FetchedMetrics, 0, len(videos))

	for _, v := range videos {
		m := domain.FetchedMetrics{
			CanonicalID: v.ID,
			Counts: domain.Counts{
				Likes:    parseCount(v.Statistics.LikeCount),
				Comments: parseCount(v.Statistics.CommentCount),
				Plays:    parseCount(v.Statistics.ViewCount),
			},
		}

		if v.Snippet.Title != "" {
			title := v.Snippet.Title
			m.Title = &title
		}
		if v.Snippet.Thumbnails.Medium != nil && v.Snippet.Thumbnails.Medium.URL != "" {
			thumb := v.Snippet.Thumbnails.Medium.URL
			m.ThumbnailURL = &thumb
		}
		if postedAt, err := time.Parse(time.RFC3339, v.Snippet.PublishedAt); err == nil {
			m.PostedAt = &postedAt
		} else if v.Snippet.PublishedAt != "" {
			s.logger.Warn("failed to parse publish date",
				"video_id", v.ID,
				"published_at", v.Snippet.PublishedAt,
			)
		}

		metrics = append(metrics, m)
	}

	return metrics
}

func parseCount(raw string) int64 {
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
