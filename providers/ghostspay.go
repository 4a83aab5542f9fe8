package providers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hasselmann007-dev/pink-store-v2/models"
	"github.com/hasselmann007-dev/pink-store-v2/pricing"
)

// ErrMissingCredentials means the GhostsPay secret key or company id is not
// configured. Checked before any network call is made.
var ErrMissingCredentials = errors.New("credenciais GhostsPay não configuradas no servidor")

const checkoutDescription = "Compra na Pink Store"

// GhostsPayProvider implements PaymentProvider against the GhostsPay API.
type GhostsPayProvider struct {
	baseURL     string
	secretKey   string
	companyID   string
	postbackURL string
	httpClient  *http.Client
}

// NewGhostsPayProvider creates a new GhostsPayProvider.
func NewGhostsPayProvider(baseURL, secretKey, companyID, postbackURL string) *GhostsPayProvider {
	return &GhostsPayProvider{
		baseURL:     baseURL,
		secretKey:   secretKey,
		companyID:   companyID,
		postbackURL: postbackURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ---- GhostsPay API request/response structs ----

type ghostsCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ghostsItem struct {
	Title       string `json:"title"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	ExternalRef string `json:"externalRef"`
}

type ghostsShipping struct {
	ZipCode      string `json:"zipCode"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
}

type ghostsMetadata struct {
	BumpAdded      bool   `json:"bumpAdded"`
	Source         string `json:"source"`
	IdempotencyKey string `json:"idempotencyKey"`
}

type ghostsTransactionRequest struct {
	Amount        int64           `json:"amount"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
	Installments  int             `json:"installments"`
	PostbackURL   string          `json:"postbackUrl"`
	CompanyID     string          `json:"companyId"`
	Customer      ghostsCustomer  `json:"customer"`
	Items         []ghostsItem    `json:"items"`
	Shipping      *ghostsShipping `json:"shipping,omitempty"`
	Metadata      ghostsMetadata  `json:"metadata"`
}

type ghostsPixBlock struct {
	Qrcode         string `json:"qrcode"`
	ExpirationDate string `json:"expirationDate"`
}

// ghostsTransactionResponse covers both response shapes the gateway has been
// observed to send: pix at the top level or nested under gatewayResponse.
type ghostsTransactionResponse struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	Amount          *int64          `json:"amount"`
	Pix             *ghostsPixBlock `json:"pix"`
	GatewayResponse *struct {
		Pix *ghostsPixBlock `json:"pix"`
	} `json:"gatewayResponse"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Raw     string `json:"raw"`
}

// ---- PaymentProvider implementation ----

// CreateTransaction builds the GhostsPay payload and issues a single POST to
// the transaction endpoint. No retries.
func (p *GhostsPayProvider) CreateTransaction(ctx context.Context, req *models.CheckoutRequest, result models.PricingResult) (*TransactionResult, error) {
	if p.secretKey == "" || p.companyID == "" {
		return nil, ErrMissingCredentials
	}

	payload := p.buildPayload(req, result)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal transaction request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/transactions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Basic "+p.authToken())

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	// The gateway may legitimately answer with plain text on error; wrap
	// non-JSON bodies instead of failing outright.
	raw := respBytes
	var ghostData ghostsTransactionResponse
	if err := json.Unmarshal(respBytes, &ghostData); err != nil {
		ghostData = ghostsTransactionResponse{Raw: string(respBytes)}
		raw, _ = json.Marshal(map[string]string{"raw": string(respBytes)})
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &GatewayError{
			StatusCode: resp.StatusCode,
			Message:    gatewayErrorMessage(ghostData),
			Body:       raw,
		}
	}

	return &TransactionResult{
		Payment: raw,
		Pix:     extractPix(ghostData, result.AmountInCents),
		Status:  ghostData.Status,
	}, nil
}

func (p *GhostsPayProvider) buildPayload(req *models.CheckoutRequest, result models.PricingResult) ghostsTransactionRequest {
	items := make([]ghostsItem, 0, len(req.Cart))
	for _, item := range req.Cart {
		items = append(items, ghostsItem{
			Title:       item.Name,
			UnitPrice:   pricing.ToCents(item.Price),
			Quantity:    item.Quantity(),
			ExternalRef: item.Ref(),
		})
	}

	customer := ghostsCustomer{
		Name:  req.Customer.Name,
		Email: req.Customer.Email,
	}
	if customer.Name == "" {
		customer.Name = "Cliente"
	}
	if customer.Email == "" {
		customer.Email = "cliente@email.com"
	}

	method := req.PaymentMethod
	if method == "" {
		method = "PIX"
	}

	payload := ghostsTransactionRequest{
		Amount:        result.AmountInCents,
		Description:   checkoutDescription,
		PaymentMethod: method,
		Installments:  1,
		PostbackURL:   p.postbackURL,
		CompanyID:     p.companyID,
		Customer:      customer,
		Items:         items,
		Metadata: ghostsMetadata{
			BumpAdded:      req.BumpAdded,
			Source:         "pink-store-frontend",
			IdempotencyKey: uuid.NewString(),
		},
	}

	if req.Shipping != nil {
		payload.Shipping = &ghostsShipping{
			ZipCode:      req.Shipping.ZipCode,
			Street:       req.Shipping.Street,
			Neighborhood: req.Shipping.Neighborhood,
			City:         req.Shipping.City,
			State:        req.Shipping.State,
			Number:       req.Shipping.Number,
			Complement:   req.Shipping.Complement,
		}
	}

	return payload
}

func (p *GhostsPayProvider) authToken() string {
	return base64.StdEncoding.EncodeToString([]byte(p.secretKey + ":" + p.companyID))
}

// extractPix reads the PIX fields from the response, checking the top-level
// block first and the nested gatewayResponse block second. The gateway's
// amount wins over the locally computed one when present.
func extractPix(data ghostsTransactionResponse, computedCents int64) models.PixInfo {
	pix := models.PixInfo{Amount: computedCents}
	if data.Amount != nil {
		pix.Amount = *data.Amount
	}

	blocks := []*ghostsPixBlock{data.Pix}
	if data.GatewayResponse != nil {
		blocks = append(blocks, data.GatewayResponse.Pix)
	}
	for _, b := range blocks {
		if b == nil {
			continue
		}
		if pix.Qrcode == "" && b.Qrcode != "" {
			pix.Qrcode = b.Qrcode
		}
		if pix.ExpirationDate == "" && b.ExpirationDate != "" {
			pix.ExpirationDate = b.ExpirationDate
		}
	}

	return pix
}

func gatewayErrorMessage(data ghostsTransactionResponse) string {
	for _, msg := range []string{data.Message, data.Error, data.Raw} {
		if msg != "" {
			return msg
		}
	}
	return "Falha ao criar pagamento na GhostsPay"
}
