package youtube

// APIResponse mirrors the videos.list response shape.
type APIResponse struct {
	Items []Video `json:"items"`
}

type Video struct {
	ID         string     `json:"id"`
	Snippet    Snippet    `json:"snippet"`
	Statistics Statistics `json:"statistics"`
}

type Snippet struct {
	Title       string     `json:"title"`
	PublishedAt string     `json:"publishedAt"`
	Thumbnails  Thumbnails `json:"thumbnails"`
}

type Thumbnails struct {
	Medium *Thumbnail `json:"medium"`
}

type Thumbnail struct {
	URL string `json:"url"`
}

// Statistics counters arrive as decimal strings.
type Statistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}
