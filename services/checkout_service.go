package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/hasselmann007-dev/pink-store-v2/catalog"
	"github.com/hasselmann007-dev/pink-store-v2/models"
	"github.com/hasselmann007-dev/pink-store-v2/pricing"
	"github.com/hasselmann007-dev/pink-store-v2/providers"
)

// ServiceError is a typed error with an HTTP status code. Gateway failures
// additionally carry the upstream status and body for passthrough.
type ServiceError struct {
	StatusCode      int
	Message         string
	GatewayStatus   int
	GatewayResponse json.RawMessage
}

func (e *ServiceError) Error() string { return e.Message }

// CheckoutResponse is the success payload for POST /api/checkout.
type CheckoutResponse struct {
	Payment json.RawMessage `json:"payment"`
	Pix     models.PixInfo  `json:"pix"`
	Status  string          `json:"status"`
}

// CheckoutService defines the business logic interface.
type CheckoutService interface {
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*CheckoutResponse, *ServiceError)
}

type checkoutServiceImpl struct {
	catalog  *catalog.Catalog
	provider providers.PaymentProvider
	logger   *zap.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(cat *catalog.Catalog, provider providers.PaymentProvider, logger *zap.Logger) CheckoutService {
	return &checkoutServiceImpl{
		catalog:  cat,
		provider: provider,
		logger:   logger,
	}
}

// Checkout validates the cart against the trusted catalog, recomputes the
// totals server-side and creates a PIX transaction at the gateway.
func (s *checkoutServiceImpl) Checkout(ctx context.Context, req *models.CheckoutRequest) (*CheckoutResponse, *ServiceError) {
	if len(req.Cart) == 0 {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Carrinho vazio ou inválido"}
	}

	if svcErr := s.validatePrices(req.Cart); svcErr != nil {
		return nil, svcErr
	}

	result, err := pricing.ComputeTotals(req.Cart, req.BumpAdded)
	if err != nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Carrinho vazio ou inválido"}
	}

	s.logger.Info("Checkout pricing computed",
		zap.Int("items", len(req.Cart)),
		zap.Float64("subtotal", result.Subtotal),
		zap.Float64("shipping", result.ShippingCost),
		zap.Float64("bump", result.BumpCost),
		zap.Float64("total", result.Total),
		zap.Int64("amount_in_cents", result.AmountInCents),
	)

	tx, err := s.provider.CreateTransaction(ctx, req, result)
	if err != nil {
		return nil, s.mapProviderError(err)
	}

	status := tx.Status
	if status == "" {
		status = "pending"
	}

	s.logger.Info("Gateway transaction created",
		zap.String("status", status),
		zap.Int64("pix_amount", tx.Pix.Amount),
	)

	return &CheckoutResponse{
		Payment: tx.Payment,
		Pix:     tx.Pix,
		Status:  status,
	}, nil
}

// validatePrices checks every line against the trusted catalog so a
// tampered client cannot charge itself arbitrary unit prices.
func (s *checkoutServiceImpl) validatePrices(cart []models.CartItem) *ServiceError {
	for _, item := range cart {
		product, err := s.catalog.Get(item.Ref())
		if err != nil {
			s.logger.Warn("Checkout rejected: unknown product", zap.String("ref", item.Ref()))
			return &ServiceError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("Produto desconhecido no carrinho: %s", item.Ref()),
			}
		}
		if pricing.ToCents(item.Price) != pricing.ToCents(product.Price) {
			s.logger.Warn("Checkout rejected: price mismatch",
				zap.String("ref", item.Ref()),
				zap.Float64("submitted", item.Price),
				zap.Float64("catalog", product.Price),
			)
			return &ServiceError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("Preço divergente para o produto %s", item.Ref()),
			}
		}
	}
	return nil
}

func (s *checkoutServiceImpl) mapProviderError(err error) *ServiceError {
	if errors.Is(err, providers.ErrMissingCredentials) {
		s.logger.Error("Checkout failed: gateway credentials not configured")
		return &ServiceError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Credenciais GhostsPay não configuradas no servidor",
		}
	}

	var gatewayErr *providers.GatewayError
	if errors.As(err, &gatewayErr) {
		s.logger.Error("Gateway rejected transaction",
			zap.Int("gateway_status", gatewayErr.StatusCode),
			zap.String("message", gatewayErr.Message),
		)
		return &ServiceError{
			StatusCode:      gatewayErr.StatusCode,
			Message:         gatewayErr.Message,
			GatewayStatus:   gatewayErr.StatusCode,
			GatewayResponse: gatewayErr.Body,
		}
	}

	s.logger.Error("Checkout failed", zap.Error(err))
	return &ServiceError{
		StatusCode: http.StatusInternalServerError,
		Message:    "Erro interno no servidor",
	}
}
