package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hasselmann007-dev/pink-store-v2/models"
	"github.com/hasselmann007-dev/pink-store-v2/services"
)

// CheckoutController handles HTTP requests for the checkout flow.
type CheckoutController struct {
	checkoutService services.CheckoutService
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(svc services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: svc}
}

// Checkout handles POST /api/checkout
func (cc *CheckoutController) Checkout(ctx *gin.Context) {
	var req models.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "JSON inválido no corpo da requisição"})
		return
	}

	resp, svcErr := cc.checkoutService.Checkout(ctx.Request.Context(), &req)
	if svcErr != nil {
		body := gin.H{"ok": false, "error": svcErr.Message}
		if svcErr.GatewayStatus != 0 {
			body["gatewayStatus"] = svcErr.GatewayStatus
			body["gatewayResponse"] = svcErr.GatewayResponse
		}
		ctx.JSON(svcErr.StatusCode, body)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"payment": resp.Payment,
		"pix":     resp.Pix,
		"status":  resp.Status,
	})
}
