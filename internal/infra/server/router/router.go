// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/restobill/backend/internal/integration/entrypoint/controller"
	"github.com/restobill/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	authController    *controller.AuthController
	menuController    *controller.MenuController
	cartController    *controller.CartController
	orderController   *controller.OrderController
	expenseController *controller.ExpenseController
	reportController  *controller.ReportController
	loginRateLimiter  *middleware.RateLimiter
	authMiddleware    *middleware.AuthMiddleware
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	menuController *controller.MenuController,
	cartController *controller.CartController,
	orderController *controller.OrderController,
	expenseController *controller.ExpenseController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	sessionMiddleware *middleware.SessionMiddleware,
) *Router {
	return &Router{
		healthController:  healthController,
		authController:    authController,
		menuController:    menuController,
		cartController:    cartController,
		orderController:   orderController,
		expenseController: expenseController,
		reportController:  reportController,
		loginRateLimiter:  loginRateLimiter,
		authMiddleware:    authMiddleware,
		sessionMiddleware: sessionMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.engine.GET("/health", r.healthController.Check)

	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		}

		// Billing routes used by the cashier terminal. The session middleware
		// keys the cart to a cookie, no login required.
		billing := v1.Group("")
		billing.Use(r.sessionMiddleware.Attach())
		{
			billing.GET("/menu", r.menuController.List)

			billing.GET("/cart", r.cartController.Get)
			billing.POST("/cart/items", r.cartController.Add)
			billing.PATCH("/cart/items/:menuItemId", r.cartController.Update)
			billing.DELETE("/cart/items/:menuItemId", r.cartController.Remove)
			billing.DELETE("/cart", r.cartController.Clear)

			billing.POST("/orders", r.orderController.Create)
			billing.GET("/orders/:id", r.orderController.Get)
			billing.POST("/orders/:id/pay", r.orderController.MarkPaid)
			billing.GET("/orders/:id/qr", r.orderController.BillQR)
		}

		// Back-office routes require a valid admin token.
		admin := v1.Group("/admin")
		admin.Use(r.authMiddleware.Authenticate())
		{
			admin.POST("/menu", r.menuController.Create)
			admin.PATCH("/menu/:id", r.menuController.Update)
			admin.DELETE("/menu/:id", r.menuController.Delete)
			admin.PATCH("/menu/:id/availability", r.menuController.ToggleAvailability)

			admin.GET("/expenses", r.expenseController.List)
			admin.POST("/expenses", r.expenseController.Create)
			admin.PATCH("/expenses/:id", r.expenseController.Update)
			admin.DELETE("/expenses/:id", r.expenseController.Delete)

			reports := admin.Group("/reports")
			{
				reports.GET("/summary", r.reportController.Summary)
				reports.GET("/daily", r.reportController.Daily)
				reports.GET("/monthly", r.reportController.Monthly)
				reports.GET("/sales", r.reportController.Sales)
				reports.GET("/expenses", r.reportController.Expenses)
				reports.GET("/profit", r.reportController.Profit)
				reports.GET("/top-items", r.reportController.TopItems)
				reports.GET("/:kind/export", r.reportController.Export)
			}
		}
	}

	return r.engine
}
