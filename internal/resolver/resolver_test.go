package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reachsync/internal/domain"
)

func TestResolve_YouTube(t *testing.T) {
	tests := []struct {
		name   string
		rawURL string
		wantID string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url with extra params", "https://youtube.com/watch?v=dQw4w9WgXcQ&t=5s", "dQw4w9WgXcQ"},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short link with timestamp", "https://youtu.be/dQw4w9WgXcQ?t=42", "dQw4w9WgXcQ"},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"shorts", "https://www.youtube.com/shorts/abc123XYZ_-", "abc123XYZ_-"},
		{"live", "https://www.youtube.com/live/jfKfPfyJRdk", "jfKfPfyJRdk"},
		{"mobile host", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"foreign host", "https://vimeo.com/watch?v=dQw4w9WgXcQ", ""},
		{"watch without v", "https://www.youtube.com/watch?list=PL123", ""},
		{"channel path", "https://www.youtube.com/@somechannel", ""},
		{"empty", "", ""},
		{"garbage", "not a url at all", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(domain.PlatformYouTube, tt.rawURL)
			if tt.wantID == "" {
				assert.False(t, res.Resolved())
				assert.NotEmpty(t, res.Reason)
			} else {
				assert.True(t, res.Resolved())
				assert.Equal(t, tt.wantID, res.CanonicalID)
			}
		})
	}
}

func TestResolve_Instagram(t *testing.T) {
	tests := []struct {
		name   string
		rawURL string
		wantID string
	}{
		{"post", "https://www.instagram.com/p/Cxyz123AbCd/", "Cxyz123AbCd"},
		{"reel", "https://www.instagram.com/reel/Cxyz123AbCd/", "Cxyz123AbCd"},
		{"reels", "https://instagram.com/reels/Cxyz123AbCd", "Cxyz123AbCd"},
		{"reel with query", "https://www.instagram.com/reel/Cxyz123AbCd/?igsh=token", "Cxyz123AbCd"},
		{"profile", "https://www.instagram.com/someuser/", ""},
		{"foreign host", "https://www.tiktok.com/reel/Cxyz123AbCd", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(domain.PlatformInstagram, tt.rawURL)
			if tt.wantID == "" {
				assert.False(t, res.Resolved())
			} else {
				assert.True(t, res.Resolved())
				assert.Equal(t, tt.wantID, res.CanonicalID)
			}
		})
	}
}

func TestResolve_UnknownPlatform(t *testing.T) {
	res := Resolve(domain.Platform("tiktok"), "https://www.tiktok.com/@u/video/1")
	assert.False(t, res.Resolved())
	assert.Equal(t, "unknown platform", res.Reason)
}

func TestResolve_SameIDFromDifferentRawForms(t *testing.T) {
	a := Resolve(domain.PlatformYouTube, "https://www.youtube.com/watch?v=abc")
	b := Resolve(domain.PlatformYouTube, "https://www.youtube.com/watch?v=abc&t=5")
	assert.True(t, a.Resolved())
	assert.True(t, b.Resolved())
	assert.Equal(t, a.CanonicalID, b.CanonicalID)
}
