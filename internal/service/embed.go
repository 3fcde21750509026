package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"bigbazar/internal/model"
)

// EmbedService builds player URLs for sandboxed iframes
type EmbedService struct {
	resolver   LinkResolverInterface
	siteOrigin string
}

// NewEmbedService creates a new Embed Service. siteOrigin is reported to
// Instagram's player as the embedding page.
func NewEmbedService(resolver LinkResolverInterface, siteOrigin string) *EmbedService {
	return &EmbedService{
		resolver:   resolver,
		siteOrigin: strings.TrimRight(siteOrigin, "/"),
	}
}

func autoplayFlag(autoplay bool) string {
	if autoplay {
		return "1"
	}
	return "0"
}

// GetEmbedURL returns the player URL for link. ok is false when no video id
// can be established, which callers render as "no preview".
func (es *EmbedService) GetEmbedURL(ctx context.Context, link string, autoplay bool) (string, bool) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", false
	}
	auto := autoplayFlag(autoplay)

	switch DetectPlatform(link) {
	case model.PlatformFacebook:
		// the plugin endpoint resolves any post URL itself
		return fmt.Sprintf("https://www.facebook.com/plugins/video.php?href=%s&show_text=0&t=0&autoplay=%s&mute=0",
			url.QueryEscape(link), auto), true

	case model.PlatformInstagram:
		id, ok := ExtractInstagramID(link)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("https://www.instagram.com/p/%s/embed/?cr=1&v=14&wp=540&rd=%s&rp=%s",
			id, url.QueryEscape(es.siteOrigin), url.QueryEscape("/")), true
	}

	id, ok := ExtractID(link)
	if !ok && es.resolver != nil {
		id, ok = ExtractID(es.resolver.Resolve(ctx, link))
	}
	if !ok {
		return "", false
	}

	return fmt.Sprintf("https://www.tiktok.com/embed/v2/%s?autoplay=%s&mute=0&controls=1&playsinline=1&music_info_bar_enabled=1",
		id, auto), true
}

// Describe wraps GetEmbedURL into an iframe descriptor, or nil
func (es *EmbedService) Describe(ctx context.Context, link string, autoplay bool) *model.EmbedDescriptor {
	embedURL, ok := es.GetEmbedURL(ctx, link, autoplay)
	if !ok {
		return nil
	}

	platform := DetectPlatform(link)
	if platform == model.PlatformUnknown {
		platform = model.PlatformTikTok
	}

	return &model.EmbedDescriptor{
		URL:      embedURL,
		Autoplay: autoplay,
		Platform: platform,
		Allow:    model.EmbedAllow,
	}
}
