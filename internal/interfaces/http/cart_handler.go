package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/cart"
	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/pkg/config"
)

// CartHandler serves the session cart. The cart itself lives in a cookie:
// each request loads it into a store, applies the mutation and writes the
// cookie back. A payload older than the idle timeout loads as empty.
type CartHandler struct {
	uc  *cart.UseCase
	cfg config.CartConfig
}

// NewCartHandler builds the handler.
func NewCartHandler(uc *cart.UseCase, cfg config.CartConfig) *CartHandler {
	return &CartHandler{uc: uc, cfg: cfg}
}

// Get godoc
// @Summary      Get the current cart
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	store := h.load(c)
	defer store.Stop()
	return h.respond(c, store)
}

// Reconcile godoc
// @Summary      Set a line-item quantity, validated against stock
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReconcileCartRequest  true  "Product and quantity"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) Reconcile(c *fiber.Ctx) error {
	var in dto.ReconcileCartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	store := h.load(c)
	defer store.Stop()
	if err := h.uc.Reconcile(store, in.ProductID, in.Quantity); err != nil {
		return respondError(c, err)
	}
	return h.respond(c, store)
}

// Add godoc
// @Summary      Add one unit of a product to the cart
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id} [put]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	store := h.load(c)
	defer store.Stop()
	if err := h.uc.Add(store, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return h.respond(c, store)
}

// Remove godoc
// @Summary      Remove a line item
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	store := h.load(c)
	defer store.Stop()
	store.Remove(c.Params("id"))
	return h.respond(c, store)
}

// SetPaymentInfo godoc
// @Summary      Save the shipping address and payment method
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/payment [put]
func (h *CartHandler) SetPaymentInfo(c *fiber.Ctx) error {
	var in entity.PaymentInfo
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	store := h.load(c)
	defer store.Stop()
	store.SetPaymentInfo(in)
	return h.respond(c, store)
}

// Clear godoc
// @Summary      Empty the cart and drop the payment info
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	store := h.load(c)
	defer store.Stop()
	store.Clear()
	return h.respond(c, store)
}

// load builds a store from the request cookie. A missing, garbled or stale
// cookie yields an empty cart.
func (h *CartHandler) load(c *fiber.Ctx) *cart.Store {
	store := cart.NewStore(cart.WithIdleTimeout(
		time.Duration(h.cfg.IdleMinutes)*time.Minute,
		time.Duration(h.cfg.WarningSeconds)*time.Second,
	))
	_ = store.Load(c.Cookies(h.cfg.CookieName))
	return store
}

// respond saves the store back into the cookie and writes the cart body.
// A save failure fails the request; a 200 always carries a fresh cookie.
func (h *CartHandler) respond(c *fiber.Ctx, store *cart.Store) error {
	value, err := store.Save()
	if err != nil {
		return respondError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   h.cfg.IdleMinutes * 60,
	})
	return c.JSON(dto.CartResponse{
		Items:       store.Items(),
		PaymentInfo: store.PaymentInfo(),
	})
}
