package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v4"

	"kafe/condb"
	"kafe/config"
	"kafe/models"
	"kafe/validation"
)

const saleColumns = "id, datetime, cash_type, card, money, coffee_name"

// Handler carries the startup configuration into each request; every method
// opens its own connection and closes it on all exit paths.
type Handler struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

func (h *Handler) connect(c *fiber.Ctx) (*pgx.Conn, error) {
	return condb.Connect(c.Context(), h.cfg)
}

// badInput maps a validation failure to the 400 envelope: an itemized errors
// list for field problems, a generic message for bodies that are not JSON.
func badInput(c *fiber.Ctx, err error) error {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  fieldErrs,
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Request must be JSON",
	})
}

func dbError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

// GetSales lists sales, newest first. coffee_name, date and card query
// filters are each optional and combine with AND.
func (h *Handler) GetSales(c *fiber.Ctx) error {
	coffeeName := c.Query("coffee_name")
	date := c.Query("date")
	card := c.Query("card")

	conn, err := h.connect(c)
	if err != nil {
		return dbError(c, err)
	}
	defer conn.Close(context.Background())

	query := "SELECT " + saleColumns + " FROM coffee_sales"
	var conditions []string
	var params []interface{}

	if coffeeName != "" {
		params = append(params, coffeeName)
		conditions = append(conditions, fmt.Sprintf("coffee_name = $%d", len(params)))
	}
	if date != "" {
		params = append(params, date)
		conditions = append(conditions, fmt.Sprintf("DATE(datetime) = $%d", len(params)))
	}
	if card != "" {
		params = append(params, card)
		conditions = append(conditions, fmt.Sprintf("card = $%d", len(params)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY datetime DESC"

	rows, err := conn.Query(c.Context(), query, params...)
	if err != nil {
		return dbError(c, err)
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.Datetime, &s.CashType, &s.Card, &s.Money, &s.CoffeeName); err != nil {
			return dbError(c, err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return dbError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    sales,
		"count":   len(sales),
	})
}

func (h *Handler) GetSaleByID(c *fiber.Ctx) error {
	saleID, err := c.ParamsInt("sale_id")
	if err != nil {
		// non-integer id: same envelope as any unknown resource
		return fiber.ErrNotFound
	}

	conn, err := h.connect(c)
	if err != nil {
		return dbError(c, err)
	}
	defer conn.Close(context.Background())

	var s models.Sale
	err = conn.QueryRow(c.Context(),
		"SELECT "+saleColumns+" FROM coffee_sales WHERE id = $1", saleID,
	).Scan(&s.ID, &s.Datetime, &s.CashType, &s.Card, &s.Money, &s.CoffeeName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   fmt.Sprintf("Sale with ID %d not found", saleID),
			})
		}
		return dbError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    s,
	})
}

func (h *Handler) CreateSale(c *fiber.Ctx) error {
	rec, err := validation.ParseSale(c.Body())
	if err != nil {
		return badInput(c, err)
	}

	conn, err := h.connect(c)
	if err != nil {
		return dbError(c, err)
	}
	defer conn.Close(context.Background())

	var newID int
	err = conn.QueryRow(c.Context(),
		`INSERT INTO coffee_sales (datetime, cash_type, card, money, coffee_name)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		rec.Datetime, rec.CashType, rec.Card, rec.Money, rec.CoffeeName,
	).Scan(&newID)
	if err != nil {
		return dbError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Sale added successfully",
		"id":      newID,
	})
}

// UpdateSale overwrites all fields of an existing row. No no-op detection:
// writing back identical values still executes the update.
func (h *Handler) UpdateSale(c *fiber.Ctx) error {
	saleID, err := c.ParamsInt("sale_id")
	if err != nil {
		return fiber.ErrNotFound
	}

	rec, err := validation.ParseSale(c.Body())
	if err != nil {
		return badInput(c, err)
	}

	conn, err := h.connect(c)
	if err != nil {
		return dbError(c, err)
	}
	defer conn.Close(context.Background())

	var exists int
	err = conn.QueryRow(c.Context(),
		"SELECT 1 FROM coffee_sales WHERE id = $1", saleID,
	).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   fmt.Sprintf("Sale with ID %d not found", saleID),
			})
		}
		return dbError(c, err)
	}

	_, err = conn.Exec(c.Context(),
		`UPDATE coffee_sales
		 SET datetime = $1, cash_type = $2, card = $3, money = $4, coffee_name = $5
		 WHERE id = $6`,
		rec.Datetime, rec.CashType, rec.Card, rec.Money, rec.CoffeeName, saleID,
	)
	if err != nil {
		return dbError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Sale with ID %d updated successfully", saleID),
	})
}

func (h *Handler) DeleteSale(c *fiber.Ctx) error {
	saleID, err := c.ParamsInt("sale_id")
	if err != nil {
		return fiber.ErrNotFound
	}

	conn, err := h.connect(c)
	if err != nil {
		return dbError(c, err)
	}
	defer conn.Close(context.Background())

	commandTag, err := conn.Exec(c.Context(),
		"DELETE FROM coffee_sales WHERE id = $1", saleID,
	)
	if err != nil {
		return dbError(c, err)
	}
	if commandTag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   fmt.Sprintf("Sale with ID %d not found", saleID),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Sale with ID %d deleted successfully", saleID),
	})
}

// DeleteSalesByDate removes every sale whose sale_date matches the required
// datetime query parameter exactly. Unlike delete-by-id this can remove
// several rows.
func (h *Handler) DeleteSalesByDate(c *fiber.Ctx) error {
	saleDate := c.Query("datetime")
	if saleDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing datetime parameter",
		})
	}

	conn, err := h.connect(c)
	if err != nil {
		return dbError(c, err)
	}
	defer conn.Close(context.Background())

	commandTag, err := conn.Exec(c.Context(),
		"DELETE FROM coffee_sales WHERE sale_date = $1", saleDate,
	)
	if err != nil {
		return dbError(c, err)
	}
	deleted := commandTag.RowsAffected()
	if deleted == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   fmt.Sprintf("No sales found with datetime %s", saleDate),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("%d sale(s) with datetime %s deleted successfully", deleted, saleDate),
	})
}
