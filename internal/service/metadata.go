package service

import (
	"context"
	"strings"

	"bigbazar/internal/chain"
	"bigbazar/internal/model"
	"bigbazar/internal/provider"

	"github.com/rs/zerolog/log"
)

// ChainMetadata is the name of the metadata chain
const ChainMetadata = "metadata"

// Metadata strategy names
const (
	StrategyTikWM      = "tikwm"
	StrategyOEmbed     = "oembed"
	StrategyTikWMRelay = "tikwm-relay"
)

// DefaultThumbnailProxy serves Instagram thumbnails without referrer checks
const DefaultThumbnailProxy = "https://images.weserv.nl"

const instagramTitle = "Instagram Reel"

// MetadataService fetches best-effort thumbnails and titles for video links
type MetadataService struct {
	resolver       LinkResolverInterface
	runner         *chain.Runner[*model.VideoMetadata]
	thumbnailProxy string
}

// MetadataSources are the upstream lookups in priority order
type MetadataSources struct {
	// Direct hits the structured API without a relay
	Direct VideoLookup
	// OEmbed reads the platform oEmbed endpoint through the primary relay
	OEmbed VideoLookup
	// Backup hits the structured API through the backup relay
	Backup VideoLookup
}

// NewMetadataService creates a new Metadata Service
func NewMetadataService(resolver LinkResolverInterface, sources MetadataSources, thumbnailProxy string, opts chain.Options) *MetadataService {
	if thumbnailProxy == "" {
		thumbnailProxy = DefaultThumbnailProxy
	}

	ms := &MetadataService{
		resolver:       resolver,
		thumbnailProxy: strings.TrimRight(thumbnailProxy, "/"),
	}

	var strategies []chain.Strategy[*model.VideoMetadata]
	if sources.Direct != nil {
		strategies = append(strategies, chain.Strategy[*model.VideoMetadata]{Name: StrategyTikWM, Run: ms.lookupStrategy(sources.Direct)})
	}
	if sources.OEmbed != nil {
		strategies = append(strategies, chain.Strategy[*model.VideoMetadata]{Name: StrategyOEmbed, Run: ms.oembedStrategy(sources.OEmbed)})
	}
	if sources.Backup != nil {
		strategies = append(strategies, chain.Strategy[*model.VideoMetadata]{Name: StrategyTikWMRelay, Run: ms.lookupStrategy(sources.Backup)})
	}
	ms.runner = chain.New(ChainMetadata, opts, strategies...)

	return ms
}

// Strategies returns the metadata strategy names in order
func (ms *MetadataService) Strategies() []string {
	return ms.runner.Strategies()
}

// FetchMetadata returns what the first working source knows about link, or
// nil when every source failed.
func (ms *MetadataService) FetchMetadata(ctx context.Context, link string) *model.VideoMetadata {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil
	}

	switch DetectPlatform(link) {
	case model.PlatformInstagram:
		return ms.instagramMetadata(link)
	case model.PlatformFacebook:
		return nil
	}

	meta, strategy, err := ms.runner.Run(ctx, link)
	if err != nil {
		log.Warn().Err(err).Str("link", link).Msg("No metadata source succeeded")
		return nil
	}
	meta.Source = strategy

	return meta
}

func (ms *MetadataService) lookupStrategy(lookup VideoLookup) chain.Func[*model.VideoMetadata] {
	return func(ctx context.Context, link string) (*model.VideoMetadata, error) {
		meta, err := lookup.Lookup(ctx, link)
		if err != nil {
			return nil, err
		}
		return completeMetadata(meta, link)
	}
}

// oembedStrategy needs a canonical link, so short links are resolved first
func (ms *MetadataService) oembedStrategy(lookup VideoLookup) chain.Func[*model.VideoMetadata] {
	return func(ctx context.Context, link string) (*model.VideoMetadata, error) {
		canonical := link
		if bareIDPattern.MatchString(link) {
			canonical = provider.CanonicalTikTokURL("", link)
		} else if ms.resolver != nil {
			canonical = ms.resolver.Resolve(ctx, link)
		}

		meta, err := lookup.Lookup(ctx, canonical)
		if err != nil {
			return nil, err
		}
		if meta != nil && meta.CanonicalURL == "" && looksCanonical(canonical) {
			meta.CanonicalURL = canonical
		}
		return completeMetadata(meta, canonical)
	}
}

// completeMetadata rejects empty records and fills a missing id from
// whichever URL is at hand
func completeMetadata(meta *model.VideoMetadata, link string) (*model.VideoMetadata, error) {
	if !meta.HasData() {
		return nil, chain.ErrNoData
	}
	if meta.ID == "" {
		if id, ok := ExtractID(meta.CanonicalURL); ok {
			meta.ID = id
		} else if id, ok := ExtractID(link); ok {
			meta.ID = id
		}
	}
	return meta, nil
}

func (ms *MetadataService) instagramMetadata(link string) *model.VideoMetadata {
	id, ok := ExtractInstagramID(link)
	if !ok {
		return nil
	}
	return &model.VideoMetadata{
		ID:           id,
		ThumbnailURL: InstagramThumbnailURL(ms.thumbnailProxy, id),
		Title:        instagramTitle,
		CanonicalURL: InstagramCanonicalURL(id),
		Source:       string(model.PlatformInstagram),
	}
}

// InstagramThumbnailURL returns the proxied large thumbnail of a shortcode
func InstagramThumbnailURL(proxyBase, id string) string {
	if proxyBase == "" {
		proxyBase = DefaultThumbnailProxy
	}
	return strings.TrimRight(proxyBase, "/") + "/?url=instagram.com/p/" + id + "/media/?size=l"
}
