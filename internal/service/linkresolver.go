package service

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"bigbazar/internal/chain"
	"bigbazar/internal/model"
	"bigbazar/internal/provider"
	"bigbazar/pkg/util"

	"github.com/rs/zerolog/log"
)

// ChainResolve is the name of the short-link resolution chain
const ChainResolve = "resolve"

// DefaultShortLinkHosts are the platform's redirecting short-link hosts
var DefaultShortLinkHosts = []string{"vt.tiktok.com", "vm.tiktok.com", "t.tiktok.com", "v.tiktok.com"}

var (
	bareIDPattern = regexp.MustCompile(`^\d{15,25}$`)

	pathIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`/video/(\d+)`),
		regexp.MustCompile(`/embed/v2/(\d+)`),
		regexp.MustCompile(`/embed/(\d+)`),
		regexp.MustCompile(`/v/(\d+)`),
	}

	// used only when the link is not a parseable URL
	rawIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`/video/(\d+)`),
		regexp.MustCompile(`/v/(\d+)`),
		regexp.MustCompile(`v2/(\d+)`),
	}

	instagramIDPattern = regexp.MustCompile(`/(reels|reel|p|tv)/([a-zA-Z0-9_-]+)`)

	facebookIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`/videos/(?:[^/?#]+/)?(\d+)`),
		regexp.MustCompile(`/reel/(\d+)`),
		regexp.MustCompile(`[?&]v=(\d+)`),
		regexp.MustCompile(`/share/[vr]/([A-Za-z0-9]+)`),
	}
)

// ExtractID returns the numeric video id carried by link. Malformed input is
// a normal case and yields "", false.
func ExtractID(link string) (string, bool) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", false
	}
	if bareIDPattern.MatchString(link) {
		return link, true
	}

	u, err := url.Parse(util.EnsureScheme(link))
	if err != nil {
		for _, p := range rawIDPatterns {
			if m := p.FindStringSubmatch(link); m != nil {
				return m[1], true
			}
		}
		return "", false
	}

	for _, p := range pathIDPatterns {
		if m := p.FindStringSubmatch(u.Path); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// IsShortLink reports whether link is on one of the default short-link hosts
func IsShortLink(link string) bool {
	return isShortHost(util.Hostname(link), DefaultShortLinkHosts)
}

func isShortHost(host string, hosts []string) bool {
	if host == "" {
		return false
	}
	for _, h := range hosts {
		if strings.EqualFold(host, h) {
			return true
		}
	}
	return false
}

// ExtractInstagramID returns the shortcode of a reel, post or tv link
func ExtractInstagramID(link string) (string, bool) {
	m := instagramIDPattern.FindStringSubmatch(link)
	if m == nil {
		return "", false
	}
	return m[2], true
}

// ExtractFacebookID returns the video id or share code of a Facebook link
func ExtractFacebookID(link string) (string, bool) {
	link = strings.TrimSpace(link)
	if util.HostMatches(util.Hostname(link), "fb.watch") {
		u, err := url.Parse(util.EnsureScheme(link))
		if err != nil {
			return "", false
		}
		code := strings.Split(strings.Trim(u.Path, "/"), "/")[0]
		return code, code != ""
	}

	for _, p := range facebookIDPatterns {
		if m := p.FindStringSubmatch(link); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// DetectPlatform classifies link by host. Bare numeric ids are TikTok ids.
func DetectPlatform(link string) model.Platform {
	link = strings.TrimSpace(link)
	if bareIDPattern.MatchString(link) {
		return model.PlatformTikTok
	}

	host := util.Hostname(link)
	switch {
	case util.HostMatches(host, "tiktok.com"):
		return model.PlatformTikTok
	case util.HostMatches(host, "instagram.com", "instagr.am"):
		return model.PlatformInstagram
	case util.HostMatches(host, "facebook.com", "fb.watch", "fb.com"):
		return model.PlatformFacebook
	default:
		return model.PlatformUnknown
	}
}

// looksCanonical accepts URLs shaped like a long-form video link
func looksCanonical(link string) bool {
	return strings.Contains(link, "/video/") || strings.Contains(link, "/@")
}

// LinkResolver turns short links into canonical long-form links
type LinkResolver struct {
	shortHosts []string
	runner     *chain.Runner[string]
}

// NewLinkResolver creates a new LinkResolver. The structured API lookup is
// tried first, then each redirect follower in order.
func NewLinkResolver(lookup VideoLookup, followers []RedirectFollower, shortHosts []string, opts chain.Options) *LinkResolver {
	if len(shortHosts) == 0 {
		shortHosts = DefaultShortLinkHosts
	}

	strategies := make([]chain.Strategy[string], 0, len(followers)+1)
	if lookup != nil {
		strategies = append(strategies, chain.Strategy[string]{Name: "tikwm", Run: lookupStrategy(lookup)})
	}
	for _, f := range followers {
		strategies = append(strategies, chain.Strategy[string]{Name: f.Name(), Run: followStrategy(f)})
	}

	return &LinkResolver{
		shortHosts: shortHosts,
		runner:     chain.New(ChainResolve, opts, strategies...),
	}
}

func lookupStrategy(lookup VideoLookup) chain.Func[string] {
	return func(ctx context.Context, link string) (string, error) {
		meta, err := lookup.Lookup(ctx, link)
		if err != nil {
			return "", err
		}
		if meta == nil || meta.ID == "" {
			return "", chain.ErrNoData
		}
		return provider.CanonicalTikTokURL(meta.Author, meta.ID), nil
	}
}

func followStrategy(f RedirectFollower) chain.Func[string] {
	return func(ctx context.Context, link string) (string, error) {
		final, err := f.Resolve(ctx, link)
		if err != nil {
			return "", err
		}
		if !looksCanonical(final) {
			return "", fmt.Errorf("%w: landed on %s", chain.ErrNoData, final)
		}
		return final, nil
	}
}

// Strategies returns the resolution strategy names in order
func (r *LinkResolver) Strategies() []string {
	return r.runner.Strategies()
}

// IsShortLink reports whether link is on one of the configured short-link hosts
func (r *LinkResolver) IsShortLink(link string) bool {
	return isShortHost(util.Hostname(link), r.shortHosts)
}

// Resolve returns the canonical form of a short link. Any other input is
// returned unchanged, as is a short link nothing could resolve.
func (r *LinkResolver) Resolve(ctx context.Context, link string) string {
	if !r.IsShortLink(link) {
		return link
	}

	resolved, strategy, err := r.runner.Run(ctx, strings.TrimSpace(link))
	if err != nil {
		log.Warn().Err(err).Str("link", link).Msg("Short link left unresolved")
		return link
	}

	log.Debug().Str("link", link).Str("resolved", resolved).Str("strategy", strategy).Msg("Short link resolved")
	return resolved
}

// Canonicalize derives the platform, id and canonical URL of link
func (r *LinkResolver) Canonicalize(ctx context.Context, link string) (*model.CanonicalVideoRef, bool) {
	_, ref := r.ResolveRef(ctx, link)
	return ref, ref != nil
}

// ResolveRef returns what Resolve returns together with the canonical ref,
// running the resolution chain at most once. ref is nil when no id is found.
func (r *LinkResolver) ResolveRef(ctx context.Context, link string) (string, *model.CanonicalVideoRef) {
	resolved := r.Resolve(ctx, link)
	return resolved, refFor(link, resolved)
}

func refFor(link, resolved string) *model.CanonicalVideoRef {
	switch DetectPlatform(link) {
	case model.PlatformInstagram:
		id, ok := ExtractInstagramID(link)
		if !ok {
			return nil
		}
		return &model.CanonicalVideoRef{
			Platform:     model.PlatformInstagram,
			ID:           id,
			CanonicalURL: InstagramCanonicalURL(id),
		}

	case model.PlatformFacebook:
		id, ok := ExtractFacebookID(link)
		if !ok {
			return nil
		}
		return &model.CanonicalVideoRef{
			Platform:     model.PlatformFacebook,
			ID:           id,
			CanonicalURL: strings.TrimSpace(link),
		}
	}

	id, ok := ExtractID(resolved)
	if !ok {
		return nil
	}
	return &model.CanonicalVideoRef{
		Platform:     model.PlatformTikTok,
		ID:           id,
		CanonicalURL: canonicalTikTokURL(resolved, id),
	}
}

// canonicalTikTokURL keeps a resolved long-form link minus its query string,
// and synthesizes one otherwise
func canonicalTikTokURL(resolved, id string) string {
	u, err := url.Parse(util.EnsureScheme(strings.TrimSpace(resolved)))
	if err == nil && util.HostMatches(u.Hostname(), "tiktok.com") && strings.Contains(u.Path, "/video/") {
		return "https://www.tiktok.com" + u.Path
	}
	return provider.CanonicalTikTokURL("", id)
}

// InstagramCanonicalURL returns the reels URL of a shortcode
func InstagramCanonicalURL(id string) string {
	return "https://www.instagram.com/reels/" + id + "/"
}
