package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bigbazar/internal/app"
	"bigbazar/internal/chain"
	"bigbazar/internal/config"
	"bigbazar/internal/handler"
	"bigbazar/internal/model"
	"bigbazar/internal/mq"
	"bigbazar/internal/provider"
	"bigbazar/internal/repository"
	"bigbazar/internal/service"
	"bigbazar/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

// @title Big Bazar Media API
// @version 1.0
// @description Video link resolution, metadata, embeds and pricing for the Big Bazar storefront
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.example.com/support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Initialize repositories
	redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
	defer redisRepo.Close()

	productRepo, err := repository.NewProductRepository(&cfg.Database.SQL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to product store")
	}
	defer productRepo.Close()

	// Initialize services
	client := provider.NewHTTPClient(cfg.Resolver.HTTPTimeout)
	statsSvc := service.NewStatsService(redisRepo)
	opts := chain.Options{
		StrategyTimeout: cfg.Resolver.StrategyTimeout,
		Deadline:        cfg.Resolver.ChainDeadline,
		Observer:        statsSvc.Observer(),
	}

	videoSvcs := app.NewVideoServices(&cfg.Resolver, client, opts)
	resolverSvc, metadataSvc := videoSvcs.Resolver, videoSvcs.Metadata
	embedSvc := service.NewEmbedService(resolverSvc, cfg.Embed.SiteOrigin)
	catalogSvc := service.NewCatalogService(productRepo, embedSvc, cfg.Resolver.ThumbnailProxyURL)
	bloomSvc := service.NewBloomService(redisRepo.GetClient(), &cfg.Bloom)

	var graph service.GraphClient
	if cfg.Instagram.AccessToken != "" {
		graph = provider.NewGraph(cfg.Instagram.GraphURL, cfg.Instagram.GraphVersion, cfg.Instagram.AccessToken, client, cfg.Resolver.UserAgent)
	} else {
		log.Warn().Msg("Instagram access token not set, reel import disabled")
	}
	importSvc := service.NewReelImportService(graph, productRepo)

	// Initialize MQ (optional)
	var producer mq.ProducerInterface
	var mqConsumer *mq.Consumer
	if cfg.RocketMQ.NameServer != "" {
		p, err := mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, importing inline")
		} else {
			producer = p
			defer p.Close()
		}

		mqConsumer, err = mq.NewConsumer(&cfg.RocketMQ, func(ctx context.Context, msg *model.ReelImportMessage) error {
			_, err := importSvc.Import(ctx, msg.MediaID)
			if errors.Is(err, service.ErrInvalidMediaID) || errors.Is(err, service.ErrMissingAccessToken) {
				log.Warn().Err(err).Str("media_id", msg.MediaID).Msg("Dropping reel import")
				return nil
			}
			return err
		})
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
			mqConsumer = nil
		} else {
			defer mqConsumer.Close()
		}
	}

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	videoHandler := handler.NewVideoHandler(resolverSvc, metadataSvc, embedSvc)
	priceHandler := handler.NewPriceHandler()
	productHandler := handler.NewProductHandler(catalogSvc)
	statsHandler := handler.NewStatsHandler(statsSvc)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/video/resolve", videoHandler.Resolve)
		v1.POST("/video/metadata", videoHandler.Metadata)
		v1.GET("/video/embed", videoHandler.Embed)
		v1.POST("/price/calculate", priceHandler.Calculate)
		v1.GET("/products/:id/view", productHandler.View)
		v1.GET("/stats/strategies/:chain", statsHandler.Strategies)
	}

	// Instagram webhook
	webhookHandler := handler.NewWebhookHandler(cfg.Instagram.VerifyToken, bloomSvc, producer, importSvc)
	router.GET("/webhook/instagram", webhookHandler.Verify)
	router.POST("/webhook/instagram", webhookHandler.Receive)

	// Video proxy
	proxyHandler := handler.NewProxyHandler(cfg.Proxy.AllowedHosts, cfg.Proxy.HeaderTimeout)
	router.GET("/proxy-video", proxyHandler.Video)

	// Swagger documentation
	setupSwagger(router)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	if mqConsumer != nil {
		g.Go(func() error {
			if err := mqConsumer.Subscribe(); err != nil {
				log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
			}
			return nil
		})
	}

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
	}

	log.Info().Msg("Server exited")
}

// configPath returns the config file, overridable with CONFIG_PATH
func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "configs/config.yaml"
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
