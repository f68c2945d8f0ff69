package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/printguard/printguard-api/internal/advisory"
	"github.com/printguard/printguard-api/internal/config"
	"github.com/printguard/printguard-api/internal/credentials"
	"github.com/printguard/printguard-api/internal/handlers"
	"github.com/printguard/printguard-api/internal/middleware"
	"github.com/printguard/printguard-api/internal/store"
	ucorder "github.com/printguard/printguard-api/internal/usecase/order"
)

func RegisterRoutes(
	r *gin.Engine,
	st *store.Store,
	creds *credentials.Store,
	advisor advisory.Advisor,
	cfg *config.Config,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// USE CASES — SERVICE ORDERS
	// ======================================================
	createOrderUC := ucorder.NewCreateOrder(st)
	updateOrderStatusUC := ucorder.NewUpdateOrderStatus(st)
	deleteOrderUC := ucorder.NewDeleteOrder(st)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(creds, cfg)
	meHandler := handlers.NewMeHandler(creds)

	clientHandler := handlers.NewClientHandler(st)
	printerHandler := handlers.NewPrinterHandler(st)
	partHandler := handlers.NewPartHandler(st)
	technicianHandler := handlers.NewTechnicianHandler(st)

	orderHandler := handlers.NewOrderHandler(
		st,
		advisor,
		createOrderUC,
		updateOrderStatusUC,
		deleteOrderUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(st, advisor)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// só quem provar identidade encerra a sessão persistida
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)

			secured.GET("/me/printers", printerHandler.List)
			secured.POST("/me/printers", printerHandler.Create)

			secured.GET("/me/parts", partHandler.List)
			secured.POST("/me/parts", partHandler.Create)
			secured.PATCH("/me/parts/:id/quantity", partHandler.UpdateQuantity)

			secured.GET("/me/technicians", technicianHandler.List)

			// ------------------------------
			// SERVICE ORDERS
			// ------------------------------
			secured.GET("/me/orders", orderHandler.List)
			secured.POST("/me/orders", orderHandler.Create)
			secured.POST("/me/orders/analyze", orderHandler.Analyze)
			secured.PATCH("/me/orders/:id/status", orderHandler.UpdateStatus)
			secured.DELETE("/me/orders/:id", orderHandler.Delete)

			secured.GET("/me/dashboard", dashboardHandler.Summary)
			secured.POST("/me/dashboard/preventive-report", dashboardHandler.PreventiveReport)
		}
	}
}
