package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bigbazar/internal/config"
	"bigbazar/internal/model"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var (
	// ErrNotFound is returned when a row does not exist
	ErrNotFound = errors.New("record not found")
	// ErrUnsupportedDriver is returned for an unknown database.sql.driver
	ErrUnsupportedDriver = errors.New("unsupported sql driver")
)

// ProductRepository reads and patches the storefront's products and
// site_settings tables. The schema is owned by the hosted backend, so
// nothing is migrated from here.
type ProductRepository struct {
	db *gorm.DB
}

// Dialector returns the gorm dialector for the configured driver
func Dialector(cfg *config.SQLConfig) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "postgres", "postgresql":
		return postgres.Open(cfg.DSN), nil
	case "mysql":
		return mysql.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, cfg.Driver)
	}
}

// NewProductRepository connects to the product store
func NewProductRepository(cfg *config.SQLConfig) (*ProductRepository, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	log.Info().Str("driver", cfg.Driver).Msg("Product store connected successfully")

	return &ProductRepository{db: db}, nil
}

// GetDB returns the GORM DB instance
func (r *ProductRepository) GetDB() *gorm.DB {
	return r.db
}

// GetProduct retrieves a product by id
func (r *ProductRepository) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProductsWithVideo returns every product that has a video link
func (r *ProductRepository) ListProductsWithVideo(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("video_url IS NOT NULL AND video_url <> ?", "").
		Order("id").
		Find(&products).Error
	return products, err
}

// UpdateProductMedia replaces the product's images with image. videoURL is
// written only when non-empty.
func (r *ProductRepository) UpdateProductMedia(ctx context.Context, id int64, image, videoURL string) error {
	updates := map[string]interface{}{
		"image_url": image,
		"images":    pq.StringArray{image},
	}
	if videoURL != "" {
		updates["video_url"] = videoURL
	}

	return r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// UpdateVideoURL rewrites the product's video link
func (r *ProductRepository) UpdateVideoURL(ctx context.Context, id int64, videoURL string) error {
	return r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Update("video_url", videoURL).Error
}

// InsertPendingProduct creates a product unless one with the same
// platform_id exists. It reports whether a row was written.
func (r *ProductRepository) InsertPendingProduct(ctx context.Context, p *model.Product) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "platform_id"}},
			DoNothing: true,
		}).
		Create(p)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetSetting retrieves a site_settings row
func (r *ProductRepository) GetSetting(ctx context.Context, key string) (*model.SiteSetting, error) {
	var s model.SiteSetting
	err := r.db.WithContext(ctx).Where(&model.SiteSetting{Key: key}).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetFlashSaleConfig returns the store-wide flash sale, or nil when none is configured
func (r *ProductRepository) GetFlashSaleConfig(ctx context.Context) (*model.FlashSaleConfig, error) {
	var cfg model.FlashSaleConfig
	found, err := r.decodeSetting(ctx, model.SettingFlashSale, &cfg)
	if err != nil || !found {
		return nil, err
	}
	return &cfg, nil
}

// GetContactInfo returns the storefront contact channels, or nil when unset
func (r *ProductRepository) GetContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	var info model.ContactInfo
	found, err := r.decodeSetting(ctx, model.SettingContactInfo, &info)
	if err != nil || !found {
		return nil, err
	}
	return &info, nil
}

func (r *ProductRepository) decodeSetting(ctx context.Context, key string, out interface{}) (bool, error) {
	s, err := r.GetSetting(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(s.Value) == 0 {
		return false, nil
	}
	if err := s.Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode setting %s: %w", key, err)
	}
	return true, nil
}

// Close closes the database connection
func (r *ProductRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
