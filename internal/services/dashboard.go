package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/vendormax/apiserver/types"
)

// Counter exposes the record count of a collection.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// PriceLister exposes product counts plus the raw price values needed for
// the inventory-value total.
type PriceLister interface {
	Counter
	ListPrices(ctx context.Context) ([]string, error)
}

// DashboardService computes the summary shown on the dashboard page.
type DashboardService struct {
	vendors    Counter
	categories Counter
	products   PriceLister
	users      Counter
}

func NewDashboardService(vendors, categories Counter, products PriceLister, users Counter) *DashboardService {
	return &DashboardService{
		vendors:    vendors,
		categories: categories,
		products:   products,
		users:      users,
	}
}

// Summarize gathers counts across all collections and totals product prices.
func (s *DashboardService) Summarize(ctx context.Context) (types.DashboardSummary, error) {
	var summary types.DashboardSummary
	var err error

	if summary.TotalVendors, err = s.vendors.Count(ctx); err != nil {
		return types.DashboardSummary{}, err
	}
	if summary.TotalCategories, err = s.categories.Count(ctx); err != nil {
		return types.DashboardSummary{}, err
	}
	if summary.TotalProducts, err = s.products.Count(ctx); err != nil {
		return types.DashboardSummary{}, err
	}
	if summary.ActiveUsers, err = s.users.Count(ctx); err != nil {
		return types.DashboardSummary{}, err
	}

	prices, err := s.products.ListPrices(ctx)
	if err != nil {
		return types.DashboardSummary{}, err
	}
	summary.TotalItemPrice = sumPrices(prices)

	return summary, nil
}

// sumPrices totals the values that parse as positive numbers. Malformed and
// non-positive prices are skipped rather than counted as zero, so legacy
// data cannot silently distort the total.
func sumPrices(prices []string) float64 {
	var total float64
	for _, raw := range prices {
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || value <= 0 {
			continue
		}
		total += value
	}
	return total
}
