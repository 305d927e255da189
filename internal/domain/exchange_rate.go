package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateSnapshot is an immutable reading of the USD→IDR rate.
// Snapshots are replaced wholesale, never merged.
type ExchangeRateSnapshot struct {
	Rate          decimal.Decimal // IDR per USD
	ChangePercent decimal.Decimal // signed, relative to the previous reading
	CapturedAt    time.Time
	Seq           uint64 // fetch order; a lower Seq never replaces a higher one
}

// IsZero reports whether no reading has been taken yet
func (s ExchangeRateSnapshot) IsZero() bool {
	return s.Rate.IsZero() && s.CapturedAt.IsZero()
}

// Convert returns the IDR value of a USD amount at this rate
func (s ExchangeRateSnapshot) Convert(usd decimal.Decimal) decimal.Decimal {
	return usd.Mul(s.Rate)
}
