package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bigbazar/internal/model"
	"bigbazar/internal/repository"

	"github.com/rs/zerolog/log"
)

var (
	// ErrProductNotFound is returned when a product does not exist
	ErrProductNotFound = errors.New("product not found")
)

// CatalogService assembles products the way the storefront renders them
type CatalogService struct {
	products       ProductRepositoryInterface
	embed          EmbedServiceInterface
	thumbnailProxy string
	now            func() time.Time
}

// NewCatalogService creates a new Catalog Service
func NewCatalogService(products ProductRepositoryInterface, embed EmbedServiceInterface, thumbnailProxy string) *CatalogService {
	return &CatalogService{
		products:       products,
		embed:          embed,
		thumbnailProxy: thumbnailProxy,
		now:            time.Now,
	}
}

// ProductView returns a product with its effective price, player and order
// link. Missing settings degrade to no flash sale and no order link.
func (cs *CatalogService) ProductView(ctx context.Context, id int64) (*model.ProductView, error) {
	p, err := cs.products.GetProduct(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product %d: %w", id, err)
	}

	flashSale, err := cs.products.GetFlashSaleConfig(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Flash sale settings unavailable")
		flashSale = nil
	}

	view := &model.ProductView{
		Product:   p,
		Price:     CalculatePriceAt(p.PriceInput(), flashSale, cs.now()),
		Thumbnail: p.PrimaryImage(),
	}

	if video := p.Video(); video != "" {
		view.Embed = cs.embed.Describe(ctx, video, true)
		if view.Thumbnail == "" {
			if igID, ok := ExtractInstagramID(video); ok {
				view.Thumbnail = InstagramThumbnailURL(cs.thumbnailProxy, igID)
			}
		}
	}

	contact, err := cs.products.GetContactInfo(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Contact settings unavailable")
	}
	if contact != nil {
		if link := WhatsAppLink(p, contact.WhatsApp); link != "" {
			view.OrderLink = link
		} else {
			view.OrderLink = MessengerLink(contact.Facebook)
		}
	}

	return view, nil
}
