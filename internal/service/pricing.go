package service

import (
	"math"
	"time"

	"bigbazar/internal/model"
)

// CalculatePrice derives the price a customer sees right now
func CalculatePrice(product model.PriceInput, flashSale *model.FlashSaleConfig) model.PriceResult {
	return CalculatePriceAt(product, flashSale, time.Now())
}

// CalculatePriceAt derives the price a customer sees at now. An active flash
// sale overrides any per-product discount. The percentage range is not checked.
func CalculatePriceAt(product model.PriceInput, flashSale *model.FlashSaleConfig, now time.Time) model.PriceResult {
	price := product.Price
	var storedOriginal float64
	if product.OriginalPrice != nil {
		storedOriginal = *product.OriginalPrice
	}

	if flashSale.InEffect(now) {
		original := price
		return model.PriceResult{
			Price:           roundHalfUp(original * (1 - flashSale.Percentage/100)),
			OriginalPrice:   &original,
			DiscountPercent: roundHalfUp(flashSale.Percentage),
			HasDiscount:     true,
			IsFlashSale:     true,
		}
	}

	if storedOriginal > price {
		return model.PriceResult{
			Price:           price,
			OriginalPrice:   &storedOriginal,
			DiscountPercent: roundHalfUp((storedOriginal - price) / storedOriginal * 100),
			HasDiscount:     true,
		}
	}

	return model.PriceResult{Price: price}
}

// roundHalfUp rounds .5 towards positive infinity
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
