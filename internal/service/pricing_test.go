package service

import (
	"testing"

	"github.com/forgehall/forgehall/internal/constants"
	"github.com/forgehall/forgehall/internal/models"

	"github.com/shopspring/decimal"
)

func moneyFromString(t *testing.T, value string) models.Money {
	t.Helper()
	money, err := models.NewMoneyFromString(value)
	if err != nil {
		t.Fatalf("parse money %q failed: %v", value, err)
	}
	return money
}

func TestEffectiveUnitPriceStarterSetDiscount(t *testing.T) {
	cases := []struct {
		name     string
		category string
		price    string
		want     string
	}{
		{"starter set gets 10 percent off", constants.CategoryStarterSet, "5000.00", "4500.00"},
		{"starter set rounds half up", constants.CategoryStarterSet, "4999.99", "4499.99"},
		{"miniature unchanged", constants.CategoryMiniature, "1500.00", "1500.00"},
		{"paint unchanged", constants.CategoryPaint, "12.50", "12.50"},
		{"book unchanged", constants.CategoryBook, "40.00", "40.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			product := &models.Product{
				Category: tc.category,
				Price:    moneyFromString(t, tc.price),
			}
			got := EffectiveUnitPrice(product)
			if got.String() != tc.want {
				t.Fatalf("effective price want %s got %s", tc.want, got.String())
			}
		})
	}
}

func TestEffectiveUnitPriceExactFactor(t *testing.T) {
	product := &models.Product{
		Category: constants.CategoryStarterSet,
		Price:    moneyFromString(t, "333.33"),
	}
	want := decimal.RequireFromString("333.33").Mul(decimal.NewFromFloat(0.9)).Round(2)
	got := EffectiveUnitPrice(product)
	if !got.Decimal.Equal(want) {
		t.Fatalf("effective price want %s got %s", want.String(), got.Decimal.String())
	}
}

func TestLineTotalMultipliesRoundedUnit(t *testing.T) {
	product := &models.Product{
		Category: constants.CategoryMiniature,
		Price:    moneyFromString(t, "1500.00"),
	}
	got := LineTotal(product, 2)
	if got.String() != "3000.00" {
		t.Fatalf("line total want 3000.00 got %s", got.String())
	}

	if got := LineTotal(product, 0); got.String() != "0.00" {
		t.Fatalf("zero quantity line total want 0.00 got %s", got.String())
	}
	if got := LineTotal(nil, 3); got.String() != "0.00" {
		t.Fatalf("nil product line total want 0.00 got %s", got.String())
	}
}
