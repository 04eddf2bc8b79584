package handler

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the ledger API on router, usually the /api/v1 group.
func RegisterRoutes(router fiber.Router, inv *InventoryHandler, dash *DashboardHandler) {
	router.Get("/products", inv.GetProducts)
	router.Post("/products", inv.CreateProduct)
	router.Put("/products/:id", inv.UpdateProduct)
	router.Delete("/products/:id", inv.DeleteProduct)

	router.Get("/transactions", inv.GetTransactions)
	router.Post("/transactions", inv.CreateTransaction)
	router.Get("/transactions/:id", inv.GetTransaction)
	router.Delete("/transactions/:id", inv.DeleteTransaction)

	router.Get("/summary", inv.GetSummary)

	router.Get("/dashboard/stats", dash.GetDashboardStats)
	router.Get("/dashboard/stock-movement", dash.GetStockMovement)
}
