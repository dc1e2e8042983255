package payment

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/storefront-api/internal/application/order"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

var _ order.CaptureValidator = (*PayPalService)(nil)

// CaptureStatusCompleted is the only capture status accepted as payment.
const CaptureStatusCompleted = "COMPLETED"

// PayPalService supplies the client id the payment button needs and
// validates the capture result it hands back. The capture itself happens on
// the client; the server only checks the result before marking an order paid.
type PayPalService struct {
	clientID   string
	baseURL    string
	httpClient *http.Client
}

// NewPayPalService builds the adapter. An empty clientID degrades to the
// sandbox placeholder "sb" so local development works without credentials.
func NewPayPalService(clientID, baseURL string) *PayPalService {
	if clientID == "" {
		clientID = "sb"
	}
	return &PayPalService{
		clientID: clientID,
		baseURL:  baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ClientID returns the public client id for the payment button.
func (s *PayPalService) ClientID() string {
	return s.clientID
}

// ValidateCapture checks the capture result before an order is marked paid.
// A missing capture id or a non-completed status is rejected. When a base
// URL is configured, the capture endpoint is probed as a liveness check and
// a failure maps to ErrUpstream.
func (s *PayPalService) ValidateCapture(ctx context.Context, result entity.PaymentResult) error {
	if result.ID == "" {
		return fmt.Errorf("%w: empty capture id", domain.ErrInvalidInput)
	}
	if !strings.EqualFold(result.Status, CaptureStatusCompleted) {
		return fmt.Errorf("%w: capture status %q", domain.ErrInvalidInput, result.Status)
	}
	if s.baseURL == "" {
		return nil
	}

	url := strings.TrimRight(s.baseURL, "/") + "/v2/checkout/orders/" + result.ID
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("build capture request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: capture endpoint returned %d", domain.ErrUpstream, resp.StatusCode)
	}
	return nil
}
