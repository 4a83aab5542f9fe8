package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hasselmann007-dev/pink-store-v2/models"
	"github.com/hasselmann007-dev/pink-store-v2/repository"
)

// SignatureHeader carries the hex HMAC-SHA256 of the webhook body.
const SignatureHeader = "X-Ghosts-Signature"

// WebhookController receives GhostsPay notifications and serves status
// queries from the payment store.
type WebhookController struct {
	store         repository.PaymentStore
	webhookSecret string
	logger        *zap.Logger
}

// NewWebhookController creates a new WebhookController. An empty secret
// disables signature verification.
func NewWebhookController(store repository.PaymentStore, webhookSecret string, logger *zap.Logger) *WebhookController {
	return &WebhookController{
		store:         store,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// HandleWebhook handles POST /api/ghostspay/webhook
func (wc *WebhookController) HandleWebhook(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Webhook JSON inválido"})
		return
	}

	if wc.webhookSecret != "" && !wc.verifySignature(body, ctx.GetHeader(SignatureHeader)) {
		wc.logger.Warn("Webhook signature verification failed")
		ctx.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Assinatura do webhook inválida"})
		return
	}

	var event models.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		wc.logger.Warn("Webhook with malformed body", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Webhook JSON inválido"})
		return
	}

	transactionID := event.ResolveTransactionID()
	if transactionID == "" {
		wc.logger.Warn("Webhook without transaction id")
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Webhook sem ID de transação"})
		return
	}

	update := repository.PaymentUpdate{
		Status:          event.Status,
		Amount:          event.Amount,
		GatewayResponse: json.RawMessage(body),
	}
	if err := wc.store.Record(ctx.Request.Context(), transactionID, update); err != nil {
		wc.logger.Error("Failed to record webhook event",
			zap.String("transaction_id", transactionID),
			zap.Error(err),
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}

	wc.logger.Info("Webhook recorded",
		zap.String("transaction_id", transactionID),
		zap.String("status", event.Status),
	)

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetPaymentStatus handles GET /api/payment-status/:id
func (wc *WebhookController) GetPaymentStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "ID não informado"})
		return
	}

	record, err := wc.store.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Pagamento não encontrado"})
			return
		}
		wc.logger.Error("Failed to load payment status", zap.String("transaction_id", id), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Erro interno no servidor"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"ok":              true,
		"id":              id,
		"status":          record.Status,
		"amount":          record.Amount,
		"gatewayResponse": record.GatewayResponse,
	})
}

func (wc *WebhookController) verifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(wc.webhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
