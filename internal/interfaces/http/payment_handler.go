package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/infrastructure/payment"
)

// PaymentHandler supplies the public payment key the checkout button needs.
type PaymentHandler struct {
	paypal *payment.PayPalService
}

// NewPaymentHandler builds the handler.
func NewPaymentHandler(paypal *payment.PayPalService) *PaymentHandler {
	return &PaymentHandler{paypal: paypal}
}

// PayPalKey godoc
// @Summary      PayPal client id for the payment button
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/keys/paypal [get]
func (h *PaymentHandler) PayPalKey(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"client_id": h.paypal.ClientID()})
}
