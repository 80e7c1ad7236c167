package models

import (
	"time"
)

// Training location values accepted on a profile.
const (
	TrainingGym      = "academia"
	TrainingHome     = "casa"
	TrainingOutdoors = "ar_livre"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Profile struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	FullName            string    `json:"full_name"`
	Age                 int       `json:"age"`
	Weight              float64   `json:"weight"`
	Height              int       `json:"height"`
	Objectives          string    `json:"objectives"`
	DietaryRestrictions string    `json:"dietary_restrictions,omitempty"`
	TrainingType        string    `json:"training_type"`
	CurrentActivities   string    `json:"current_activities,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Suggestion is a generated plan document kept as history.
type Suggestion struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"` // workout | nutrition
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// SubscriptionRecord holds a user's paid entitlement. The free trial is
// anchored on User.CreatedAt, not here.
type SubscriptionRecord struct {
	UserID             string    `json:"user_id"`
	SubscriptionEndsAt time.Time `json:"subscription_ends_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Payment session statuses as reported by the checkout provider.
const (
	SessionPending = "pending"
	SessionPaid    = "paid"
	SessionExpired = "expired"
)

type PaymentSession struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	PackageID string    `json:"package_id"`
	Amount    int64     `json:"amount"` // minor units
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
