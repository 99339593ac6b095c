package service

import (
	"github.com/forgehall/forgehall/internal/constants"
	"github.com/forgehall/forgehall/internal/models"

	"github.com/shopspring/decimal"
)

// Starter sets carry a flat 10% introductory discount.
var starterSetFactor = decimal.NewFromFloat(0.9)

// EffectiveUnitPrice returns the price a customer actually pays for one
// unit. Only the STARTER_SET category is discounted; the result is rounded
// to two decimals half-up, so 4999.99 becomes 4499.99.
func EffectiveUnitPrice(product *models.Product) models.Money {
	if product == nil {
		return models.Money{}
	}
	if product.Category == constants.CategoryStarterSet {
		return models.NewMoneyFromDecimal(product.Price.Mul(starterSetFactor))
	}
	return models.NewMoneyFromDecimal(product.Price.Decimal)
}

// LineTotal is the effective unit price times the quantity. The unit price
// is rounded before multiplying, so every unit of a line costs the same.
func LineTotal(product *models.Product, quantity int) models.Money {
	if product == nil || quantity <= 0 {
		return models.Money{}
	}
	unit := EffectiveUnitPrice(product)
	return models.NewMoneyFromDecimal(unit.Mul(decimal.NewFromInt(int64(quantity))))
}
