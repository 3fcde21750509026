// Package app wires the video services to their upstreams for the binaries.
package app

import (
	"net/http"

	"bigbazar/internal/chain"
	"bigbazar/internal/config"
	"bigbazar/internal/provider"
	"bigbazar/internal/service"

	"github.com/rs/zerolog/log"
)

// VideoServices are the resolver and metadata chains sharing one set of upstreams
type VideoServices struct {
	Resolver *service.LinkResolver
	Metadata *service.MetadataService
}

// NewVideoServices builds the chains from resolver configuration. Relays
// that fail to build are skipped and their strategies left out.
func NewVideoServices(rc *config.ResolverConfig, client *http.Client, opts chain.Options) *VideoServices {
	relays := provider.NewRelays(rc.Relays, rc, client)
	followers := make([]service.RedirectFollower, 0, len(relays))
	for _, r := range relays {
		followers = append(followers, r)
	}

	direct := provider.NewTikWM(rc.TikWMURL, provider.NewDirect(client, rc.UserAgent))
	resolver := service.NewLinkResolver(direct, followers, rc.ShortLinkHosts, opts)

	sources := service.MetadataSources{Direct: direct}
	if relay, err := provider.NewRelay(rc.MetadataRelay, rc, client); err != nil {
		log.Warn().Err(err).Msg("oEmbed lookups disabled")
	} else {
		sources.OEmbed = provider.NewOEmbed(rc.OEmbedURL, relay)
	}
	if relay, err := provider.NewRelay(rc.BackupRelay, rc, client); err != nil {
		log.Warn().Err(err).Msg("Backup lookups disabled")
	} else {
		sources.Backup = provider.NewTikWM(rc.TikWMURL, relay)
	}

	return &VideoServices{
		Resolver: resolver,
		Metadata: service.NewMetadataService(resolver, sources, rc.ThumbnailProxyURL, opts),
	}
}
