package service

import (
	"context"
	"fmt"
	"time"

	"bigbazar/internal/model"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// BackfillOptions controls a maintenance run
type BackfillOptions struct {
	// Interval is the minimum gap between products that hit the network
	Interval       time.Duration
	DryRun         bool
	ThumbnailProxy string
}

// BackfillService repairs media columns of existing products using the
// resolver and metadata chains
type BackfillService struct {
	products       ProductRepositoryInterface
	metadata       MetadataServiceInterface
	resolver       LinkResolverInterface
	limiter        *rate.Limiter
	dryRun         bool
	thumbnailProxy string
}

// NewBackfillService creates a new Backfill Service
func NewBackfillService(products ProductRepositoryInterface, metadata MetadataServiceInterface, resolver LinkResolverInterface, opts BackfillOptions) *BackfillService {
	limit := rate.Inf
	if opts.Interval > 0 {
		limit = rate.Every(opts.Interval)
	}

	return &BackfillService{
		products:       products,
		metadata:       metadata,
		resolver:       resolver,
		limiter:        rate.NewLimiter(limit, 1),
		dryRun:         opts.DryRun,
		thumbnailProxy: opts.ThumbnailProxy,
	}
}

// BackfillThumbnails fills images of video products that have none
func (bs *BackfillService) BackfillThumbnails(ctx context.Context) (*model.BackfillReport, error) {
	products, err := bs.products.ListProductsWithVideo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	report := &model.BackfillReport{}
	for i := range products {
		p := &products[i]
		report.Scanned++

		if p.HasImages() {
			report.Skipped++
			continue
		}

		if err := bs.limiter.Wait(ctx); err != nil {
			return report, err
		}

		meta := bs.metadata.FetchMetadata(ctx, p.Video())
		if meta == nil || meta.ThumbnailURL == "" {
			log.Warn().Int64("product_id", p.ID).Str("video_url", p.Video()).Msg("Could not resolve thumbnail")
			report.Failed++
			continue
		}

		canonical := meta.CanonicalURL
		if canonical == p.Video() {
			canonical = ""
		}

		if err := bs.apply(p, func() error {
			return bs.products.UpdateProductMedia(ctx, p.ID, meta.ThumbnailURL, canonical)
		}); err != nil {
			report.Failed++
			continue
		}
		report.Updated++
	}

	return report, nil
}

// MigrateLinks rewrites short video links to their canonical form
func (bs *BackfillService) MigrateLinks(ctx context.Context) (*model.BackfillReport, error) {
	products, err := bs.products.ListProductsWithVideo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	report := &model.BackfillReport{}
	for i := range products {
		p := &products[i]
		report.Scanned++

		video := p.Video()
		if !bs.resolver.IsShortLink(video) {
			report.Skipped++
			continue
		}

		if err := bs.limiter.Wait(ctx); err != nil {
			return report, err
		}

		resolved := bs.resolver.Resolve(ctx, video)
		if resolved == video {
			log.Warn().Int64("product_id", p.ID).Str("video_url", video).Msg("Short link could not be resolved")
			report.Failed++
			continue
		}

		if err := bs.apply(p, func() error {
			return bs.products.UpdateVideoURL(ctx, p.ID, resolved)
		}); err != nil {
			report.Failed++
			continue
		}
		report.Updated++
	}

	return report, nil
}

// FixInstagramThumbnails points Instagram products at the proxied thumbnail.
// No upstream is contacted, so the run is not paced.
func (bs *BackfillService) FixInstagramThumbnails(ctx context.Context) (*model.BackfillReport, error) {
	products, err := bs.products.ListProductsWithVideo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	report := &model.BackfillReport{}
	for i := range products {
		p := &products[i]
		report.Scanned++

		if DetectPlatform(p.Video()) != model.PlatformInstagram {
			report.Skipped++
			continue
		}

		id, ok := ExtractInstagramID(p.Video())
		if !ok {
			id, ok = ExtractInstagramID(p.ImageURL)
		}
		if !ok {
			report.Skipped++
			continue
		}

		thumb := InstagramThumbnailURL(bs.thumbnailProxy, id)
		if p.ImageURL == thumb {
			report.Skipped++
			continue
		}

		if err := bs.apply(p, func() error {
			return bs.products.UpdateProductMedia(ctx, p.ID, thumb, "")
		}); err != nil {
			report.Failed++
			continue
		}
		report.Updated++
	}

	return report, nil
}

// apply runs write unless this is a dry run
func (bs *BackfillService) apply(p *model.Product, write func() error) error {
	if bs.dryRun {
		log.Info().Int64("product_id", p.ID).Msg("Dry run, skipping write")
		return nil
	}
	if err := write(); err != nil {
		log.Error().Err(err).Int64("product_id", p.ID).Msg("Failed to update product")
		return err
	}
	log.Info().Int64("product_id", p.ID).Msg("Product updated")
	return nil
}
