package routes

import (
	"github.com/gofiber/fiber/v2"

	"kafe/controllers"
)

// RegisterRoutes wires the sales API under its base path. delete-by-date is
// registered before the :sale_id routes so the id matcher cannot swallow it.
func RegisterRoutes(app *fiber.App, h *controllers.Handler) {
	api := app.Group("/add_student/api")

	// sales
	api.Get("/sales", h.GetSales)
	api.Post("/sales", h.CreateSale)
	api.Post("/sales/bulk", h.BulkCreateSales)
	api.Delete("/sales/delete-by-date", h.DeleteSalesByDate)
	api.Get("/sales/:sale_id", h.GetSaleByID)
	api.Put("/sales/:sale_id", h.UpdateSale)
	api.Delete("/sales/:sale_id", h.DeleteSale)

	// stats
	api.Get("/stats/coffee", h.CoffeeStats)
	api.Get("/stats/daily", h.DailyStats)
}
