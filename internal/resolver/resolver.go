// Package resolver maps raw content URLs to canonical platform IDs.
// Resolution is total: any input yields a Resolution, never an error, so
// the sync loop needs no per-item URL error handling.
package resolver

import (
	"net/url"
	"strings"

	"reachsync/internal/domain"
)

// Resolution is the tagged outcome of resolving one raw URL. Unresolvable
// links carry a reason instead of being dropped silently, so callers can
// report unresolved counts.
type Resolution struct {
	Raw         string
	CanonicalID string
	Reason      string
}

func (r Resolution) Resolved() bool {
	return r.CanonicalID != ""
}

func resolved(raw, id string) Resolution {
	return Resolution{Raw: raw, CanonicalID: id}
}

func unresolvable(raw, reason string) Resolution {
	return Resolution{Raw: raw, Reason: reason}
}

// Resolve extracts the canonical content ID from a raw URL for the given
// platform.
func Resolve(platform domain.Platform, rawURL string) Resolution {
	raw := strings.TrimSpace(rawURL)
	if raw == "" {
		return unresolvable(rawURL, "empty url")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return unresolvable(raw, "unparseable url")
	}
	if u.Host == "" {
		return unresolvable(raw, "missing host")
	}

	switch platform {
	case domain.PlatformYouTube:
		return resolveYouTube(raw, u)
	case domain.PlatformInstagram:
		return resolveInstagram(raw, u)
	default:
		return unresolvable(raw, "unknown platform")
	}
}

func resolveYouTube(raw string, u *url.URL) Resolution {
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	if host == "youtu.be" {
		if id := firstSegment(u.Path); id != "" {
			return resolved(raw, cleanID(id))
		}
		return unresolvable(raw, "short link without id")
	}

	if host != "youtube.com" && host != "m.youtube.com" {
		return unresolvable(raw, "not a youtube host")
	}

	segments := pathSegments(u.Path)
	if len(segments) == 0 {
		return unresolvable(raw, "no video path")
	}

	switch segments[0] {
	case "watch":
		if id := u.Query().Get("v"); id != "" {
			return resolved(raw, cleanID(id))
		}
		return unresolvable(raw, "watch url without v parameter")
	case "embed", "shorts", "live":
		if len(segments) >= 2 && segments[1] != "" {
			return resolved(raw, cleanID(segments[1]))
		}
		return unresolvable(raw, "path without id")
	}

	return unresolvable(raw, "unrecognized youtube path")
}

func resolveInstagram(raw string, u *url.URL) Resolution {
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host != "instagram.com" && host != "instagr.am" {
		return unresolvable(raw, "not an instagram host")
	}

	segments := pathSegments(u.Path)
	if len(segments) < 2 {
		return unresolvable(raw, "no shortcode path")
	}

	switch segments[0] {
	case "p", "reel", "reels":
		if segments[1] != "" {
			return resolved(raw, cleanID(segments[1]))
		}
	}

	return unresolvable(raw, "unrecognized instagram path")
}

func pathSegments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func firstSegment(path string) string {
	segments := pathSegments(path)
	if len(segments) == 0 {
		return ""
	}
	return segments[0]
}

// cleanID strips any trailing query or fragment that survived extraction.
func cleanID(id string) string {
	if i := strings.IndexAny(id, "?#&"); i >= 0 {
		id = id[:i]
	}
	return id
}
