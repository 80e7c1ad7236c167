package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlife/internal/models"
	"fitlife/internal/subscription"
)

func (a *API) handleSubscriptionStatus(c *gin.Context) {
	user := currentUser(c)

	info, err := a.ledger.Status(c.Request.Context(), user.ID)
	if err != nil {
		a.log.Errorw("failed to classify subscription", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
		return
	}

	c.JSON(http.StatusOK, info)
}

type checkoutRequest struct {
	PackageID string `json:"package_id" binding:"required"`
	OriginURL string `json:"origin_url"`
}

func (a *API) handleInitiateCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	origin := req.OriginURL
	if origin == "" {
		origin = c.GetHeader("Origin")
	}
	if origin == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Origem da requisição desconhecida"})
		return
	}

	user := currentUser(c)

	url, sessionID, err := a.ledger.InitiateCheckout(c.Request.Context(), user.ID, req.PackageID, origin)
	if errors.Is(err, subscription.ErrUnknownPackage) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Pacote inválido"})
		return
	}
	if err != nil {
		a.log.Errorw("failed to initiate checkout", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro ao iniciar pagamento"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checkout_url": url,
		"session_id":   sessionID,
	})
}

func (a *API) handlePollCheckout(c *gin.Context) {
	sessionID := c.Param("session_id")

	status, applied, err := a.ledger.PollCheckout(c.Request.Context(), sessionID)
	if err != nil {
		a.log.Errorw("failed to poll checkout", "error", err, "session_id", sessionID)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro ao consultar pagamento"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         status.Status,
		"payment_status": status.PaymentStatus,
		"activated":      applied,
	})
}

// Stripe checkout events can approach 1 MB.
const maxWebhookBody = 2 << 20

// handleStripeWebhook receives provider-pushed payment events. The raw
// body is needed for signature verification, so it is read before any
// binding. Oversized bodies fail the read instead of being truncated
// into an invalid signature.
func (a *API) handleStripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Corpo inválido"})
		return
	}

	event, err := a.checkout.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		a.log.Warnw("webhook verification failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Assinatura inválida"})
		return
	}

	if event.SessionID != "" {
		status := event.PaymentStatus
		if event.EventType == "checkout.session.expired" {
			status = models.SessionExpired
		}

		if _, err := a.ledger.Reconcile(c.Request.Context(), event.SessionID, status, event.Metadata); err != nil {
			a.log.Errorw("failed to reconcile webhook event",
				"error", err, "session_id", event.SessionID, "type", event.EventType)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erro interno"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
