package core

import "time"

type PickupLog struct {
	ID              int        `json:"id"`
	Code            string     `json:"code"`
	IsUsed          bool       `json:"is_used"`
	GeneratedAt     Timestamp  `json:"generated_at"`
	ExpiresAt       Timestamp  `json:"expires_at"`
	CancelledAt     *Timestamp `json:"cancelled_at,omitempty"`
	CancelReason    *string    `json:"cancel_reason,omitempty"`
	UserEmail       string     `json:"user_email"`
	ItemDescription string     `json:"item_description"`
	ItemID          int        `json:"item_id"`
}

// State summarizes the log as used, cancelled, expired or pending.
func (p PickupLog) State(now time.Time) string {
	switch {
	case p.IsUsed:
		return "used"
	case p.CancelledAt != nil:
		return "cancelled"
	case !p.ExpiresAt.IsZero() && now.After(p.ExpiresAt.Time):
		return "expired"
	default:
		return "pending"
	}
}
