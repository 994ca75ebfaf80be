package models

import "time"

type Sale struct {
	ID         int       `json:"id"`
	Datetime   time.Time `json:"datetime"`
	CashType   string    `json:"cash_type"`
	Card       string    `json:"card"`
	Money      float64   `json:"money"`
	CoffeeName string    `json:"coffee_name"`
}

// SaleRecord is a validated payload ready to be written. Datetime stays a
// string because caller-supplied values are passed to the database untouched.
type SaleRecord struct {
	Datetime   string
	CashType   string
	Card       string
	Money      float64
	CoffeeName string
}

type CoffeeStat struct {
	CoffeeName string  `json:"coffee_name"`
	Count      int64   `json:"count"`
	TotalSales float64 `json:"total_sales"`
}

type DailyStat struct {
	SaleDate   string  `json:"sale_date"`
	Count      int64   `json:"count"`
	TotalSales float64 `json:"total_sales"`
}
