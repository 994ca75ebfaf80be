package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"kafe/models"
)

// CoffeeStats reports count and revenue per product, most sold first. money
// is cast to NUMERIC before summing so text-ish legacy rows still aggregate.
func (h *Handler) CoffeeStats(c *fiber.Ctx) error {
	conn, err := h.connect(c)
	if err != nil {
		return dbError(c, err)
	}
	defer conn.Close(context.Background())

	rows, err := conn.Query(c.Context(), `
		SELECT coffee_name,
		       COUNT(*) AS count,
		       SUM(CAST(money AS NUMERIC)) AS total_sales
		FROM coffee_sales
		GROUP BY coffee_name
		ORDER BY count DESC`)
	if err != nil {
		return dbError(c, err)
	}
	defer rows.Close()

	stats := []models.CoffeeStat{}
	for rows.Next() {
		var st models.CoffeeStat
		if err := rows.Scan(&st.CoffeeName, &st.Count, &st.TotalSales); err != nil {
			return dbError(c, err)
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return dbError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// DailyStats reports count and revenue per calendar day, newest day first.
func (h *Handler) DailyStats(c *fiber.Ctx) error {
	conn, err := h.connect(c)
	if err != nil {
		return dbError(c, err)
	}
	defer conn.Close(context.Background())

	rows, err := conn.Query(c.Context(), `
		SELECT DATE(datetime) AS sale_date,
		       COUNT(*) AS count,
		       SUM(CAST(money AS NUMERIC)) AS total_sales
		FROM coffee_sales
		GROUP BY DATE(datetime)
		ORDER BY sale_date DESC`)
	if err != nil {
		return dbError(c, err)
	}
	defer rows.Close()

	stats := []models.DailyStat{}
	for rows.Next() {
		var day time.Time
		var st models.DailyStat
		if err := rows.Scan(&day, &st.Count, &st.TotalSales); err != nil {
			return dbError(c, err)
		}
		st.SaleDate = day.Format("2006-01-02")
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return dbError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
