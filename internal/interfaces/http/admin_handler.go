package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/application/usecase"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/infrastructure/assets"
)

// AdminHandler handles user administration, the sales dashboard and signed
// upload parameters.
type AdminHandler struct {
	users     *usecase.UserUseCase
	dashboard *usecase.DashboardUseCase
	signer    *assets.Signer
}

// NewAdminHandler builds the handler.
func NewAdminHandler(users *usecase.UserUseCase, dashboard *usecase.DashboardUseCase, signer *assets.Signer) *AdminHandler {
	return &AdminHandler{users: users, dashboard: dashboard, signer: signer}
}

// ListUsers godoc
// @Summary      List accounts
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	out, err := h.users.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetUser godoc
// @Summary      Get one account
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "User id"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [get]
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	out, err := h.users.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateUserRoles godoc
// @Summary      Replace an account's role set
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "User id"
// @Param        body  body  dto.UpdateUserRolesRequest  true  "New role set"
// @Success      200   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/roles [put]
func (h *AdminHandler) UpdateUserRoles(c *fiber.Ctx) error {
	var in dto.UpdateUserRolesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.users.UpdateRoles(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteUser godoc
// @Summary      Delete an account
// @Tags         admin
// @Security     Bearer
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	// Self-deletion would strand the session mid-flight.
	if id == GetUserID(c) {
		return respondError(c, domain.ErrForbidden)
	}
	if err := h.users.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SalesSummary godoc
// @Summary      Dashboard counts and the monthly sales series
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesSummaryDTO
// @Router       /api/admin/summary [get]
func (h *AdminHandler) SalesSummary(c *fiber.Ctx) error {
	out, err := h.dashboard.SalesSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SignUpload godoc
// @Summary      Signed parameters for a direct image upload
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  assets.SignedParams
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/admin/cloudinary-sign [post]
func (h *AdminHandler) SignUpload(c *fiber.Ctx) error {
	var params map[string]string
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&params); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
		}
	}
	out, err := h.signer.Sign(params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
