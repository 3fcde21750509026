package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// FlashSaleConfig is the store-wide time-boxed discount
type FlashSaleConfig struct {
	Active     bool       `json:"active"`
	Percentage float64    `json:"percentage" binding:"gte=0,lte=100"`
	EndTime    *time.Time `json:"end_time"`
}

// UnmarshalJSON treats an empty end_time string as no end time
func (f *FlashSaleConfig) UnmarshalJSON(data []byte) error {
	var raw struct {
		Active     bool            `json:"active"`
		Percentage float64         `json:"percentage"`
		EndTime    json.RawMessage `json:"end_time"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	f.Active = raw.Active
	f.Percentage = raw.Percentage
	f.EndTime = nil

	end := bytes.TrimSpace(raw.EndTime)
	if len(end) == 0 || bytes.Equal(end, []byte("null")) || bytes.Equal(end, []byte(`""`)) {
		return nil
	}

	var t time.Time
	if err := json.Unmarshal(end, &t); err != nil {
		return err
	}
	f.EndTime = &t
	return nil
}

// InEffect reports whether the sale applies at the given instant
func (f *FlashSaleConfig) InEffect(now time.Time) bool {
	if f == nil || !f.Active || f.Percentage <= 0 {
		return false
	}
	return f.EndTime == nil || f.EndTime.After(now)
}

// PriceResult is the price a customer sees
type PriceResult struct {
	Price           float64  `json:"price"`
	OriginalPrice   *float64 `json:"original_price"`
	DiscountPercent float64  `json:"discount_percent"`
	HasDiscount     bool     `json:"has_discount"`
	IsFlashSale     bool     `json:"is_flash_sale"`
}

// PriceInput is the subset of a product the calculator reads
type PriceInput struct {
	Price         float64  `json:"price" binding:"gte=0"`
	OriginalPrice *float64 `json:"original_price"`
}

// PriceRequest represents the request to calculate a price
type PriceRequest struct {
	Product   PriceInput       `json:"product"`
	FlashSale *FlashSaleConfig `json:"flash_sale"`
}
