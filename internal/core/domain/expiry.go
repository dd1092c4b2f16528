// internal/core/domain/expiry.go
package domain

import (
	"strings"
	"time"
)

// ShelfLifeUnit is the unit of a shelf-life magnitude entered at transfer time.
type ShelfLifeUnit string

const (
	ShelfLifeHours  ShelfLifeUnit = "hours"
	ShelfLifeDays   ShelfLifeUnit = "days"
	ShelfLifeWeeks  ShelfLifeUnit = "weeks"
	ShelfLifeMonths ShelfLifeUnit = "months"
)

// ParseShelfLifeUnit normalizes a user-supplied unit string. ok is false for
// blank or unrecognized units, in which case the expiry calculator is skipped.
func ParseShelfLifeUnit(s string) (ShelfLifeUnit, bool) {
	switch ShelfLifeUnit(strings.ToLower(strings.TrimSpace(s))) {
	case ShelfLifeHours:
		return ShelfLifeHours, true
	case ShelfLifeDays:
		return ShelfLifeDays, true
	case ShelfLifeWeeks:
		return ShelfLifeWeeks, true
	case ShelfLifeMonths:
		return ShelfLifeMonths, true
	default:
		return "", false
	}
}

// ComputeExpiry derives an absolute expiry timestamp from a transfer time and
// a shelf-life magnitude. Months use a fixed 30-day approximation; weeks are
// exactly 7 days. Pure and deterministic given now. ok is false when the unit
// is unrecognized, leaving the caller to fall back to an explicit or
// manufacturer expiry date.
func ComputeExpiry(now time.Time, value float64, unit ShelfLifeUnit) (time.Time, bool) {
	var days float64
	switch unit {
	case ShelfLifeHours:
		days = value / 24
	case ShelfLifeDays:
		days = value
	case ShelfLifeWeeks:
		days = value * 7
	case ShelfLifeMonths:
		days = value * 30
	default:
		return time.Time{}, false
	}
	return now.Add(time.Duration(days * 24 * float64(time.Hour))), true
}

// ExpirySource records which rule produced a kitchen batch's calculated expiry.
type ExpirySource string

const (
	ExpiryComputed     ExpirySource = "computed"     // shelf-life calculator
	ExpiryManufacturer ExpirySource = "manufacturer" // copied from the source batch
	ExpiryExplicit     ExpirySource = "explicit"     // supplied by the operator
)

// ResolveExpiry applies the expiry decision chain for a transfer:
// the manufacturer flag short-circuits to the explicit date (if supplied) or
// the source batch's date; otherwise the calculator runs, falling back to the
// explicit date and then the manufacturer date when it yields nothing.
// Returns nil when no rule produces a date (untracked expiry).
func ResolveExpiry(
	now time.Time,
	useManufacturer bool,
	shelfLifeValue *float64,
	shelfLifeUnit string,
	explicit *time.Time,
	manufacturer *time.Time,
) (*time.Time, ExpirySource) {
	if useManufacturer {
		if explicit != nil {
			return explicit, ExpiryExplicit
		}
		return manufacturer, ExpiryManufacturer
	}

	if shelfLifeValue != nil {
		if unit, ok := ParseShelfLifeUnit(shelfLifeUnit); ok {
			if expiry, ok := ComputeExpiry(now, *shelfLifeValue, unit); ok {
				return &expiry, ExpiryComputed
			}
		}
	}

	if explicit != nil {
		return explicit, ExpiryExplicit
	}
	return manufacturer, ExpiryManufacturer
}
