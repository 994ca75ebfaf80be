package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"kafe/models"
	"kafe/validation"
)

// BulkCreateSales inserts a batch of sales as one unit of work. Every element
// is validated before the transaction starts; the first invalid element
// aborts the request and nothing is written. The commit only happens after
// the whole batch has been inserted.
func (h *Handler) BulkCreateSales(c *fiber.Ctx) error {
	var items []json.RawMessage
	if err := json.Unmarshal(c.Body(), &items); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Request must be a JSON array of sale objects",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Request must be JSON",
		})
	}
	if items == nil {
		// "null" decodes without error but is not an array
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Request must be a JSON array of sale objects",
		})
	}

	records := make([]models.SaleRecord, 0, len(items))
	for _, item := range items {
		rec, err := validation.ParseSale(item)
		if err != nil {
			return badInput(c, err)
		}
		records = append(records, rec)
	}

	conn, err := h.connect(c)
	if err != nil {
		return dbError(c, err)
	}
	defer conn.Close(context.Background())

	tx, err := conn.Begin(c.Context())
	if err != nil {
		return dbError(c, err)
	}
	// no-op once committed
	defer func() { _ = tx.Rollback(context.Background()) }()

	ids := make([]int, 0, len(records))
	for _, rec := range records {
		var id int
		err := tx.QueryRow(c.Context(),
			`INSERT INTO coffee_sales (datetime, cash_type, card, money, coffee_name)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			rec.Datetime, rec.CashType, rec.Card, rec.Money, rec.CoffeeName,
		).Scan(&id)
		if err != nil {
			return dbError(c, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(c.Context()); err != nil {
		return dbError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Added %d sales records", len(ids)),
		"ids":     ids,
	})
}
