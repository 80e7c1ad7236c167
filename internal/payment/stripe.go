package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/checkout/session"
	"github.com/stripe/stripe-go/v72/webhook"

	"fitlife/internal/subscription"
)

// StripeClient implements subscription.CheckoutProvider on top of Stripe
// Checkout.
type StripeClient struct {
	secretKey     string
	publicKey     string
	webhookSecret string
}

func NewStripeClient(cfg struct {
	SecretKey  string
	PublicKey  string
	WebhookKey string
}) *StripeClient {
	// Set the secret key for backend operations
	stripe.Key = cfg.SecretKey

	return &StripeClient{
		secretKey:     cfg.SecretKey,
		publicKey:     cfg.PublicKey,
		webhookSecret: cfg.WebhookKey,
	}
}

// CreateSession opens a checkout session. Amount and currency always come
// from the caller's server-side catalog, never from a client.
func (s *StripeClient) CreateSession(ctx context.Context, amount int64, currency, successURL, cancelURL string, metadata map[string]string) (*subscription.CheckoutSession, error) {
	if stripe.Key != s.secretKey {
		stripe.Key = s.secretKey
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("FitLife Premium"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	if userID, ok := metadata["user_id"]; ok {
		params.ClientReferenceID = stripe.String(userID)
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &subscription.CheckoutSession{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

// GetStatus polls Stripe for the session's current state.
func (s *StripeClient) GetStatus(ctx context.Context, sessionID string) (*subscription.CheckoutStatus, error) {
	if stripe.Key != s.secretKey {
		stripe.Key = s.secretKey
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := session.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkout session: %w", err)
	}

	return &subscription.CheckoutStatus{
		Status:        string(sess.Status),
		PaymentStatus: string(sess.PaymentStatus),
		AmountTotal:   sess.AmountTotal,
		Currency:      string(sess.Currency),
		Metadata:      sess.Metadata,
	}, nil
}

// VerifyWebhook checks the Stripe signature and extracts the checkout
// session fields the ledger needs. A signature mismatch is surfaced to the
// caller so the request can be rejected.
func (s *StripeClient) VerifyWebhook(payload []byte, signature string) (*subscription.WebhookEvent, error) {
	if s.webhookSecret == "" {
		return nil, fmt.Errorf("webhook secret is not configured")
	}

	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to verify webhook signature: %w", err)
	}

	result := &subscription.WebhookEvent{EventType: string(event.Type)}

	switch event.Type {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded", "checkout.session.expired":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("failed to parse checkout session: %w", err)
		}
		result.SessionID = sess.ID
		result.PaymentStatus = string(sess.PaymentStatus)
		result.Metadata = sess.Metadata
	}

	return result, nil
}
