package model

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Product status values written by the import pipeline
const (
	ProductStatusPending = "pending"
	ProductStatusActive  = "active"
)

// Product mirrors the storefront's products table. The table is owned by the
// hosted backend; this service only reads it and patches media columns.
type Product struct {
	ID            int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Category      string         `json:"category"`
	Price         float64        `json:"price"`
	OriginalPrice *float64       `json:"original_price"`
	VideoURL      *string        `json:"video_url"`
	ImageURL      string         `json:"image_url"`
	Images        pq.StringArray `json:"images"`
	PlatformID    *string        `json:"platform_id" gorm:"uniqueIndex"`
	Status        string         `json:"status"`
	IsNew         bool           `json:"is_new"`
	SerialNo      int            `json:"serial_no"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "products"
}

// Video returns the product's video link or an empty string
func (p *Product) Video() string {
	if p.VideoURL == nil {
		return ""
	}
	return *p.VideoURL
}

// HasImages reports whether the product already has a usable image
func (p *Product) HasImages() bool {
	return len(p.Images) > 0 || len(p.ImageURL) > 5
}

// PrimaryImage returns the first image the storefront would display
func (p *Product) PrimaryImage() string {
	if p.ImageURL != "" {
		return p.ImageURL
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// Site setting keys
const (
	SettingFlashSale   = "flash_sale"
	SettingContactInfo = "contact_info"
)

// SiteSetting is a key/value row of the site_settings table
type SiteSetting struct {
	Key   string         `json:"key" gorm:"primaryKey"`
	Value datatypes.JSON `json:"value"`
}

// TableName returns the table name for SiteSetting
func (SiteSetting) TableName() string {
	return "site_settings"
}

// Decode unmarshals the setting value into out
func (s *SiteSetting) Decode(out interface{}) error {
	return json.Unmarshal(s.Value, out)
}

// ContactInfo is the storefront's contact channels
type ContactInfo struct {
	WhatsApp  string `json:"whatsapp"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
}

// PriceInput returns the pricing fields of the product
func (p *Product) PriceInput() PriceInput {
	return PriceInput{Price: p.Price, OriginalPrice: p.OriginalPrice}
}

// ProductView is a product as the storefront renders it
type ProductView struct {
	Product   *Product         `json:"product"`
	Price     PriceResult      `json:"price"`
	Embed     *EmbedDescriptor `json:"embed"`
	Thumbnail string           `json:"thumbnail,omitempty"`
	OrderLink string           `json:"order_link,omitempty"`
}
