// Package config holds the storefront policy constants, overridable from the
// environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hrc-store/storefront/internal/cart"
	"github.com/hrc-store/storefront/internal/domain"
)

const (
	envStoreName         = "STOREFRONT_STORE_NAME"
	envContactPhone      = "STOREFRONT_CONTACT_PHONE"
	envCurrency          = "STOREFRONT_CURRENCY"
	envPriorityFragments = "STOREFRONT_PRIORITY_FRAGMENTS"
	envDiscountThreshold = "STOREFRONT_DISCOUNT_THRESHOLD"
	envDiscountRate      = "STOREFRONT_DISCOUNT_RATE"
	envMinPrice          = "STOREFRONT_MIN_PRICE"
	envMaxPrice          = "STOREFRONT_MAX_PRICE"
)

// Config is the storefront policy: merchandising order, discount rules,
// default listing price bounds, and store identity.
type Config struct {
	StoreName         string
	ContactPhone      string
	Currency          string
	PriorityFragments []string
	Pricing           cart.Pricing
	MinPrice          decimal.Decimal
	MaxPrice          decimal.Decimal
}

// Default is the production policy of the Harsh Rakhi Center storefront.
func Default() Config {
	return Config{
		StoreName:    "HRC - Harsh Rakhi Center",
		ContactPhone: "+91-9887198488",
		Currency:     "₹",
		PriorityFragments: []string{
			"Real Kundan Rakhi",
			"Full Diamond Rakhi",
			"Silver Rakhi",
			"Full Kundan Rakhi",
			"Pan Rakhi",
			"Rakhi with Kum Kum",
		},
		Pricing:  cart.DefaultPricing(),
		MinPrice: decimal.Zero,
		MaxPrice: decimal.NewFromInt(2000),
	}
}

// FromEnv starts from Default and applies any STOREFRONT_* overrides.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv(envStoreName); v != "" {
		cfg.StoreName = v
	}
	if v := os.Getenv(envContactPhone); v != "" {
		cfg.ContactPhone = v
	}
	if v := os.Getenv(envCurrency); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv(envPriorityFragments); v != "" {
		cfg.PriorityFragments = splitFragments(v)
	}

	for _, override := range []struct {
		env    string
		target *decimal.Decimal
	}{
		{envDiscountThreshold, &cfg.Pricing.Threshold},
		{envDiscountRate, &cfg.Pricing.Rate},
		{envMinPrice, &cfg.MinPrice},
		{envMaxPrice, &cfg.MaxPrice},
	} {
		v := os.Getenv(override.env)
		if v == "" {
			continue
		}
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", override.env, err)
		}
		*override.target = parsed
	}

	return cfg, nil
}

func splitFragments(v string) []string {
	var fragments []string
	for _, fragment := range strings.Split(v, ",") {
		if fragment = strings.TrimSpace(fragment); fragment != "" {
			fragments = append(fragments, fragment)
		}
	}
	return fragments
}

// DefaultCriteria is the unfiltered storefront listing: every category, no
// search, the configured price bounds.
func (c Config) DefaultCriteria() domain.FilterCriteria {
	return domain.FilterCriteria{
		Category: domain.CategoryAll,
		MinPrice: c.MinPrice,
		MaxPrice: c.MaxPrice,
	}
}
