// Package subscription implements the trial/paid entitlement state
// machine and idempotent payment reconciliation.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"fitlife/internal/models"
	"fitlife/pkg/logger"
)

// ErrUnknownPackage is returned when a checkout names a package that is
// not in the server-side catalog.
var ErrUnknownPackage = errors.New("unknown subscription package")

// Package is a catalog entry. Amounts are in minor units and defined only
// here: prices are never accepted from a client.
type Package struct {
	Amount    int64
	Currency  string
	Name      string
	TrialDays int
}

// Catalog is the fixed set of purchasable packages.
var Catalog = map[string]Package{
	"monthly_subscription": {
		Amount:    1490,
		Currency:  "brl",
		Name:      "FitLife Premium - Mensal",
		TrialDays: 7,
	},
}

// Renewal period applied on every successful payment.
const renewalPeriod = 30 * 24 * time.Hour

// Free trial window measured from account creation.
const trialDuration = 7 * 24 * time.Hour

// Store is the persistence collaborator. Absent records are returned as
// (nil, nil). Paid is a terminal session status: UpdateSessionStatus must
// leave an already-paid session untouched, and ApplyPaidSession must
// transition the session to paid and extend the subscription atomically,
// reporting whether the transition applied.
type Store interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetSubscription(ctx context.Context, userID string) (*models.SubscriptionRecord, error)
	CreatePaymentSession(ctx context.Context, session *models.PaymentSession) error
	GetPaymentSession(ctx context.Context, sessionID string) (*models.PaymentSession, error)
	UpdateSessionStatus(ctx context.Context, sessionID, status string) error
	ApplyPaidSession(ctx context.Context, sessionID, userID string, endsAt time.Time) (bool, error)
}

// CheckoutSession is the provider's answer to a checkout initiation.
type CheckoutSession struct {
	SessionID string
	URL       string
}

// CheckoutStatus is the provider's view of a session when polled.
type CheckoutStatus struct {
	Status        string
	PaymentStatus string
	AmountTotal   int64
	Currency      string
	Metadata      map[string]string
}

// WebhookEvent is a verified provider-pushed event.
type WebhookEvent struct {
	EventType     string
	SessionID     string
	PaymentStatus string
	Metadata      map[string]string
}

// CheckoutProvider is the external payment collaborator.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, amount int64, currency, successURL, cancelURL string, metadata map[string]string) (*CheckoutSession, error)
	GetStatus(ctx context.Context, sessionID string) (*CheckoutStatus, error)
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

// StatusInfo is the detailed entitlement classification for a user.
type StatusInfo struct {
	IsPremium          bool       `json:"is_premium"`
	Status             string     `json:"status"` // trial | active | trial_ended | no_account
	TrialEndsAt        *time.Time `json:"trial_ends_at,omitempty"`
	TrialEndedAt       *time.Time `json:"trial_ended_at,omitempty"`
	SubscriptionEndsAt *time.Time `json:"subscription_ends_at,omitempty"`
	DaysLeft           int        `json:"days_left"`
}

// Ledger governs whether a user is entitled to premium features.
type Ledger struct {
	store    Store
	checkout CheckoutProvider
	catalog  map[string]Package
	log      *logger.Logger
	now      func() time.Time
}

func NewLedger(store Store, checkout CheckoutProvider, log *logger.Logger) *Ledger {
	return &Ledger{
		store:    store,
		checkout: checkout,
		catalog:  Catalog,
		log:      log,
		now:      time.Now,
	}
}

// IsPremium reports whether the user is inside the free trial window or
// has an active paid subscription. Read only.
func (l *Ledger) IsPremium(ctx context.Context, userID string) (bool, error) {
	user, err := l.store.GetUser(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return false, nil
	}

	now := l.now()
	if now.Before(user.CreatedAt.Add(trialDuration)) {
		return true, nil
	}

	sub, err := l.store.GetSubscription(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load subscription: %w", err)
	}
	if sub != nil && now.Before(sub.SubscriptionEndsAt) {
		return true, nil
	}

	return false, nil
}

// Status classifies the user's entitlement and computes remaining whole
// days.
func (l *Ledger) Status(ctx context.Context, userID string) (*StatusInfo, error) {
	user, err := l.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return &StatusInfo{Status: "no_account"}, nil
	}

	now := l.now()
	trialEnd := user.CreatedAt.Add(trialDuration)
	if now.Before(trialEnd) {
		return &StatusInfo{
			IsPremium:   true,
			Status:      "trial",
			TrialEndsAt: &trialEnd,
			DaysLeft:    wholeDays(trialEnd.Sub(now)),
		}, nil
	}

	sub, err := l.store.GetSubscription(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	if sub != nil && now.Before(sub.SubscriptionEndsAt) {
		endsAt := sub.SubscriptionEndsAt
		return &StatusInfo{
			IsPremium:          true,
			Status:             "active",
			SubscriptionEndsAt: &endsAt,
			DaysLeft:           wholeDays(endsAt.Sub(now)),
		}, nil
	}

	return &StatusInfo{
		Status:       "trial_ended",
		TrialEndedAt: &trialEnd,
	}, nil
}

// InitiateCheckout starts a provider checkout for a catalog package. The
// amount and currency come exclusively from the catalog. A pending
// PaymentSession record is written before the URL is handed back.
func (l *Ledger) InitiateCheckout(ctx context.Context, userID, packageID, originURL string) (checkoutURL, sessionID string, err error) {
	pkg, ok := l.catalog[packageID]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrUnknownPackage, packageID)
	}

	successURL := originURL + "/payment/success?session_id={CHECKOUT_SESSION_ID}"
	cancelURL := originURL + "/dashboard"

	metadata := map[string]string{
		"user_id":    userID,
		"package_id": packageID,
		"trial_days": strconv.Itoa(pkg.TrialDays),
	}

	sess, err := l.checkout.CreateSession(ctx, pkg.Amount, pkg.Currency, successURL, cancelURL, metadata)
	if err != nil {
		return "", "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	record := &models.PaymentSession{
		SessionID: sess.SessionID,
		UserID:    userID,
		PackageID: packageID,
		Amount:    pkg.Amount,
		Currency:  pkg.Currency,
		Status:    models.SessionPending,
	}
	if err := l.store.CreatePaymentSession(ctx, record); err != nil {
		return "", "", fmt.Errorf("failed to record payment session: %w", err)
	}

	l.log.Infow("checkout initiated",
		"user_id", userID, "package_id", packageID, "session_id", sess.SessionID)

	return sess.URL, sess.SessionID, nil
}

// Reconcile applies a reported payment status at most once per session.
// Safe to call from a provider webhook and a client poll racing for the
// same session: paid is terminal, so a stale non-paid report cannot
// reopen a paid session, and the store's atomic paid transition is the
// sole guard against double activation.
func (l *Ledger) Reconcile(ctx context.Context, sessionID, reportedStatus string, metadata map[string]string) (applied bool, err error) {
	if reportedStatus != models.SessionPaid {
		if err := l.store.UpdateSessionStatus(ctx, sessionID, reportedStatus); err != nil {
			return false, fmt.Errorf("failed to update session status: %w", err)
		}
		return false, nil
	}

	userID := metadata["user_id"]
	if userID == "" {
		session, err := l.store.GetPaymentSession(ctx, sessionID)
		if err != nil {
			return false, fmt.Errorf("failed to load payment session: %w", err)
		}
		if session == nil {
			return false, fmt.Errorf("payment session %s not found", sessionID)
		}
		userID = session.UserID
	}

	endsAt := l.now().Add(renewalPeriod)
	applied, err = l.store.ApplyPaidSession(ctx, sessionID, userID, endsAt)
	if err != nil {
		return false, fmt.Errorf("failed to activate subscription: %w", err)
	}
	if !applied {
		l.log.Infow("payment already processed, skipping", "session_id", sessionID)
		return false, nil
	}

	l.log.Infow("subscription activated",
		"user_id", userID, "session_id", sessionID, "ends_at", endsAt)

	return true, nil
}

// PollCheckout fetches the provider's view of a session and reconciles it.
// Used by the client-initiated status poll on the payment success page.
func (l *Ledger) PollCheckout(ctx context.Context, sessionID string) (*CheckoutStatus, bool, error) {
	status, err := l.checkout.GetStatus(ctx, sessionID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get checkout status: %w", err)
	}

	applied, err := l.Reconcile(ctx, sessionID, status.PaymentStatus, status.Metadata)
	if err != nil {
		return nil, false, err
	}

	return status, applied, nil
}

func wholeDays(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}
