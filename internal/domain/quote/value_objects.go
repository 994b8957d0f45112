package quote

import (
	"math"
	"strings"
	"time"

	"quoteflow/internal/pkg/errs"
)

var (
	ErrEmptyLineItems      = errs.New("quote must have at least one line item")
	ErrEmptyServiceName    = errs.New("line item service name must not be empty")
	ErrNonPositiveQuantity = errs.New("line item quantity must be positive")
	ErrNonPositiveHours    = errs.New("line item hours must be positive")
	ErrNonPositiveRate     = errs.New("line item rate must be positive")
	ErrZeroTotal           = errs.New("quote total must be greater than zero")
	ErrInvalidPaymentTerms = errs.New("deposit and balance percent must sum to 100")
	ErrInvalidValidity     = errs.New("invalid validity duration")
	ErrMissingCustomExpiry = errs.New("custom validity requires an expiry date")
	ErrPastCustomExpiry    = errs.New("custom expiry date must be in the future")
)

// LineItem is one priced service line. Subtotal is always derived, never
// accepted from the caller.
type LineItem struct {
	service  string
	quantity int
	hours    float64
	rate     float64
}

func NewLineItem(service string, quantity int, hours, rate float64) (LineItem, error) {
	service = strings.TrimSpace(service)
	if service == "" {
		return LineItem{}, ErrEmptyServiceName
	}
	if quantity <= 0 {
		return LineItem{}, ErrNonPositiveQuantity
	}
	if hours <= 0 {
		return LineItem{}, ErrNonPositiveHours
	}
	if rate <= 0 {
		return LineItem{}, ErrNonPositiveRate
	}
	return LineItem{service: service, quantity: quantity, hours: hours, rate: rate}, nil
}

// ReconstructLineItem rebuilds a line item from persistence without
// re-running write-time validation.
func ReconstructLineItem(service string, quantity int, hours, rate float64) LineItem {
	return LineItem{service: service, quantity: quantity, hours: hours, rate: rate}
}

func (li LineItem) Service() string  { return li.service }
func (li LineItem) Quantity() int    { return li.quantity }
func (li LineItem) Hours() float64   { return li.hours }
func (li LineItem) Rate() float64    { return li.rate }
func (li LineItem) Subtotal() float64 {
	return round2(float64(li.quantity) * li.hours * li.rate)
}

// Total sums the line item subtotals, rounded to 2 decimals.
func Total(items []LineItem) float64 {
	var sum float64
	for _, li := range items {
		sum += li.Subtotal()
	}
	return round2(sum)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PaymentTerms splits the total into a deposit and a balance share.
type PaymentTerms struct {
	depositPercent int
	balancePercent int
}

func NewPaymentTerms(depositPercent, balancePercent int) (PaymentTerms, error) {
	if depositPercent < 0 || balancePercent < 0 || depositPercent+balancePercent != 100 {
		return PaymentTerms{}, ErrInvalidPaymentTerms
	}
	return PaymentTerms{depositPercent: depositPercent, balancePercent: balancePercent}, nil
}

func ReconstructPaymentTerms(depositPercent, balancePercent int) PaymentTerms {
	return PaymentTerms{depositPercent: depositPercent, balancePercent: balancePercent}
}

func (pt PaymentTerms) DepositPercent() int { return pt.depositPercent }
func (pt PaymentTerms) BalancePercent() int { return pt.balancePercent }

// ValidityDuration is the policy for how long a sent quote stays actionable.
type ValidityDuration string

const (
	Validity7Days  ValidityDuration = "7_days"
	Validity14Days ValidityDuration = "14_days"
	Validity30Days ValidityDuration = "30_days"
	ValidityCustom ValidityDuration = "custom"
)

func (v ValidityDuration) IsValid() bool {
	switch v {
	case Validity7Days, Validity14Days, Validity30Days, ValidityCustom:
		return true
	default:
		return false
	}
}

// Validity pairs the duration policy with the explicit date required for the
// custom policy.
type Validity struct {
	duration     ValidityDuration
	customExpiry *time.Time
}

// NewValidity validates the policy against now. A custom expiry must be
// present and in the future at creation/revision time.
func NewValidity(duration ValidityDuration, customExpiry *time.Time, now time.Time) (Validity, error) {
	if !duration.IsValid() {
		return Validity{}, ErrInvalidValidity
	}
	if duration == ValidityCustom {
		if customExpiry == nil {
			return Validity{}, ErrMissingCustomExpiry
		}
		if !customExpiry.After(now) {
			return Validity{}, ErrPastCustomExpiry
		}
		exp := *customExpiry
		return Validity{duration: duration, customExpiry: &exp}, nil
	}
	return Validity{duration: duration}, nil
}

func ReconstructValidity(duration ValidityDuration, customExpiry *time.Time) Validity {
	return Validity{duration: duration, customExpiry: customExpiry}
}

func (v Validity) Duration() ValidityDuration { return v.duration }
func (v Validity) CustomExpiry() *time.Time   { return v.customExpiry }

// ExpiresAt resolves the absolute expiry for a quote sent (or revised) at the
// given time.
func (v Validity) ExpiresAt(sentAt time.Time) time.Time {
	switch v.duration {
	case Validity7Days:
		return sentAt.Add(7 * 24 * time.Hour)
	case Validity14Days:
		return sentAt.Add(14 * 24 * time.Hour)
	case Validity30Days:
		return sentAt.Add(30 * 24 * time.Hour)
	default:
		return *v.customExpiry
	}
}
