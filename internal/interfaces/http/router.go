package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storefront-api/internal/application/auth"
	"github.com/jhoicas/storefront-api/internal/application/cart"
	"github.com/jhoicas/storefront-api/internal/application/order"
	"github.com/jhoicas/storefront-api/internal/application/usecase"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/infrastructure/assets"
	"github.com/jhoicas/storefront-api/internal/infrastructure/payment"
	"github.com/jhoicas/storefront-api/pkg/config"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	DashboardUC *usecase.DashboardUseCase
	CartUC      *cart.UseCase
	PlaceOrder  *order.PlaceOrderUseCase
	Lifecycle   *order.LifecycleUseCase
	AuthUC      *auth.AuthUseCase
	PayPal      *payment.PayPalService
	Signer      *assets.Signer
	CartCfg     config.CartConfig
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catalog (public)
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Get("/", productHandler.Browse)
	products.Get("/:id", productHandler.GetByID)

	// Authenticated routes (Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Put("/auth/profile", authHandler.UpdateProfile)

	// Cart
	cartHandler := NewCartHandler(deps.CartUC, deps.CartCfg)
	cartGroup := protected.Group("/cart")
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/items", cartHandler.Reconcile)
	cartGroup.Put("/items/:id", cartHandler.Add)
	cartGroup.Delete("/items/:id", cartHandler.Remove)
	cartGroup.Put("/payment", cartHandler.SetPaymentInfo)

	// Orders
	orderHandler := NewOrderHandler(deps.PlaceOrder, deps.Lifecycle, deps.CartCfg)
	orders := protected.Group("/orders")
	orders.Post("/", orderHandler.Place)
	orders.Get("/history", orderHandler.History)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/pay", orderHandler.Pay)

	// Payment key
	paymentHandler := NewPaymentHandler(deps.PayPal)
	protected.Get("/keys/paypal", paymentHandler.PayPalKey)

	// Back office (admin role)
	adminHandler := NewAdminHandler(deps.UserUC, deps.DashboardUC, deps.Signer)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Post("/products", productHandler.Create)
	admin.Put("/products/:id", productHandler.Update)
	admin.Delete("/products/:id", productHandler.Delete)
	admin.Get("/orders", orderHandler.ListAll)
	admin.Patch("/orders/:id/deliver", orderHandler.Deliver)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/users/:id", adminHandler.GetUser)
	admin.Put("/users/:id/roles", adminHandler.UpdateUserRoles)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Get("/summary", adminHandler.SalesSummary)
	admin.Post("/cloudinary-sign", adminHandler.SignUpload)
}
