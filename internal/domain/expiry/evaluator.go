// Package expiry holds the pure time rules for quote validity. Everything
// here is a function of (stored timestamps, injected now): no caching, no
// side effects, so a clock rollback in tests re-classifies cleanly.
package expiry

import (
	"time"

	"quoteflow/internal/domain/actor"
)

// Urgency windows differ per side: vendors get flagged inside 24h, customers
// inside 48h. The asymmetry is a contract, not a presentation detail.
const (
	VendorUrgencyWindow   = 24 * time.Hour
	CustomerUrgencyWindow = 48 * time.Hour
)

// Bucket categorizes remaining validity for urgency signaling.
type Bucket string

const (
	BucketExpired      Bucket = "expired"
	BucketUnderHour    Bucket = "under_1h"
	BucketUnderDay     Bucket = "under_24h"
	BucketUnderTwoDays Bucket = "under_48h"
	BucketDays         Bucket = "days"
	BucketNone         Bucket = "none" // no expiry set (e.g. draft)
)

// IsExpired reports whether the validity window has passed. A nil expiresAt
// never expires.
func IsExpired(expiresAt *time.Time, now time.Time) bool {
	return expiresAt != nil && now.After(*expiresAt)
}

// Remaining returns the time left until expiry and its bucket. A negative
// duration pairs with BucketExpired.
func Remaining(expiresAt *time.Time, now time.Time) (time.Duration, Bucket) {
	if expiresAt == nil {
		return 0, BucketNone
	}
	left := expiresAt.Sub(now)
	switch {
	case left < 0:
		return left, BucketExpired
	case left < time.Hour:
		return left, BucketUnderHour
	case left < 24*time.Hour:
		return left, BucketUnderDay
	case left < 48*time.Hour:
		return left, BucketUnderTwoDays
	default:
		return left, BucketDays
	}
}

// UrgencyWindow returns the remaining-time cutoff below which a quote is
// flagged urgent for the given role.
func UrgencyWindow(role actor.Role) time.Duration {
	if role == actor.RoleVendor {
		return VendorUrgencyWindow
	}
	return CustomerUrgencyWindow
}

// IsUrgent reports whether remaining validity has crossed below the role's
// urgency window. Expired quotes are not urgent, they are expired.
func IsUrgent(expiresAt *time.Time, now time.Time, role actor.Role) bool {
	if expiresAt == nil || IsExpired(expiresAt, now) {
		return false
	}
	return expiresAt.Sub(now) < UrgencyWindow(role)
}
