package model

// Platform identifies the host of a short-video link
type Platform string

const (
	PlatformUnknown   Platform = ""
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
)

// EmbedAllow is the iframe permission list callers must set on the player frame
const EmbedAllow = "autoplay; encrypted-media; picture-in-picture"

// CanonicalVideoRef is the redirect-free identity of a video
type CanonicalVideoRef struct {
	Platform     Platform `json:"platform"`
	ID           string   `json:"id"`
	CanonicalURL string   `json:"canonical_url"`
}

// VideoMetadata is a best-effort description of a video. Any field may be empty.
type VideoMetadata struct {
	ID           string `json:"id,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Title        string `json:"title,omitempty"`
	VideoURL     string `json:"video_url,omitempty"`
	Author       string `json:"author,omitempty"`
	CanonicalURL string `json:"canonical_url,omitempty"`
	Source       string `json:"source,omitempty"`
}

// HasData reports whether the metadata carries a thumbnail or an id
func (m *VideoMetadata) HasData() bool {
	return m != nil && (m.ThumbnailURL != "" || m.ID != "")
}

// EmbedDescriptor is a player URL meant for a sandboxed iframe
type EmbedDescriptor struct {
	URL      string   `json:"url"`
	Autoplay bool     `json:"autoplay"`
	Platform Platform `json:"platform"`
	Allow    string   `json:"allow"`
}

// VideoLinkRequest carries a raw link pasted by an admin or forwarded by a webhook
type VideoLinkRequest struct {
	URL string `json:"url" binding:"required"`
}

// ResolveResponse represents the response of link resolution
type ResolveResponse struct {
	OriginalURL string             `json:"original_url"`
	ResolvedURL string             `json:"resolved_url"`
	IsShortLink bool               `json:"is_short_link"`
	Ref         *CanonicalVideoRef `json:"ref,omitempty"`
}
