package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"bigbazar/internal/app"
	"bigbazar/internal/chain"
	"bigbazar/internal/config"
	"bigbazar/internal/model"
	"bigbazar/internal/provider"
	"bigbazar/internal/repository"
	"bigbazar/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	modeThumbnails = "thumbnails"
	modeLinks      = "links"
	modeInstagram  = "instagram"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	mode := flag.String("mode", modeThumbnails, "job to run: thumbnails, links or instagram")
	dryRun := flag.Bool("dry-run", false, "report changes without writing them")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	productRepo, err := repository.NewProductRepository(&cfg.Database.SQL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to product store")
	}
	defer productRepo.Close()

	client := provider.NewHTTPClient(cfg.Resolver.HTTPTimeout)
	videoSvcs := app.NewVideoServices(&cfg.Resolver, client, chain.Options{
		StrategyTimeout: cfg.Resolver.StrategyTimeout,
		Deadline:        cfg.Resolver.ChainDeadline,
	})

	backfill := service.NewBackfillService(productRepo, videoSvcs.Metadata, videoSvcs.Resolver, service.BackfillOptions{
		Interval:       cfg.Backfill.Interval,
		DryRun:         *dryRun,
		ThumbnailProxy: cfg.Resolver.ThumbnailProxyURL,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var report *model.BackfillReport
	switch *mode {
	case modeThumbnails:
		report, err = backfill.BackfillThumbnails(ctx)
	case modeLinks:
		report, err = backfill.MigrateLinks(ctx)
	case modeInstagram:
		report, err = backfill.FixInstagramThumbnails(ctx)
	default:
		log.Fatal().Str("mode", *mode).Msg("Unknown mode")
	}

	if report != nil {
		log.Info().
			Str("mode", *mode).
			Bool("dry_run", *dryRun).
			Int("scanned", report.Scanned).
			Int("updated", report.Updated).
			Int("skipped", report.Skipped).
			Int("failed", report.Failed).
			Msg("Backfill finished")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Backfill aborted")
	}
}
