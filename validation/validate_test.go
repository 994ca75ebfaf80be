package validation

import (
	"errors"
	"testing"
	"time"
)

func fieldErrs(t *testing.T, err error) FieldErrors {
	t.Helper()
	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	return fe
}

func contains(errs FieldErrors, want string) bool {
	for _, e := range errs {
		if e == want {
			return true
		}
	}
	return false
}

func TestParseSaleValid(t *testing.T) {
	rec, err := ParseSale([]byte(`{"cash_type":"card","card":"ANON-123","money":3.5,"coffee_name":"Latte"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.CashType != "card" || rec.Card != "ANON-123" || rec.CoffeeName != "Latte" {
		t.Fatalf("wrong record: %+v", rec)
	}
	if rec.Money != 3.5 {
		t.Fatalf("money = %v, want 3.5", rec.Money)
	}

	// datetime was omitted, so it must default to "now"
	ts, err := time.Parse(time.RFC3339, rec.Datetime)
	if err != nil {
		t.Fatalf("default datetime %q not RFC3339: %v", rec.Datetime, err)
	}
	if d := time.Since(ts); d < 0 || d > time.Minute {
		t.Fatalf("default datetime %q not recent", rec.Datetime)
	}
}

func TestParseSaleDatetimePassthrough(t *testing.T) {
	// no format validation on caller-supplied timestamps
	rec, err := ParseSale([]byte(`{"datetime":"2024-03-01 09:30:00","cash_type":"cash","card":"","money":2,"coffee_name":"Espresso"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Datetime != "2024-03-01 09:30:00" {
		t.Fatalf("datetime modified: %q", rec.Datetime)
	}
}

func TestParseSaleEmptyCardAllowed(t *testing.T) {
	rec, err := ParseSale([]byte(`{"cash_type":"cash","card":"","money":1,"coffee_name":"Americano"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Card != "" {
		t.Fatalf("card = %q, want empty", rec.Card)
	}
}

func TestParseSaleMissingFieldsAllReported(t *testing.T) {
	_, err := ParseSale([]byte(`{"card":"X"}`))
	errs := fieldErrs(t, err)
	for _, want := range []string{
		"Missing required field: cash_type",
		"Missing required field: money",
		"Missing required field: coffee_name",
	} {
		if !contains(errs, want) {
			t.Errorf("missing %q in %v", want, errs)
		}
	}
	if contains(errs, "Missing required field: card") {
		t.Errorf("card was supplied but reported missing: %v", errs)
	}
}

func TestParseSaleMoneyCoercion(t *testing.T) {
	tests := []struct {
		name  string
		money string
		want  float64
		ok    bool
	}{
		{"float", "4.25", 4.25, true},
		{"integer", "4", 4, true},
		{"numeric string", `"3.5"`, 3.5, true},
		{"integer string", `"7"`, 7, true},
		{"garbage string", `"abc"`, 0, false},
		{"bool", "true", 0, false},
		{"null", "null", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := []byte(`{"cash_type":"card","card":"C","money":` + tt.money + `,"coffee_name":"Mocha"}`)
			rec, err := ParseSale(body)
			if tt.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if rec.Money != tt.want {
					t.Fatalf("money = %v, want %v", rec.Money, tt.want)
				}
				return
			}
			errs := fieldErrs(t, err)
			if tt.money == "null" {
				// a null key counts as missing
				if !contains(errs, "Missing required field: money") && !contains(errs, "Money must be a number") {
					t.Fatalf("null money not rejected: %v", errs)
				}
				return
			}
			if !contains(errs, "Money must be a number") {
				t.Fatalf("want money error, got %v", errs)
			}
		})
	}
}

func TestParseSaleCollectsEverything(t *testing.T) {
	_, err := ParseSale([]byte(`{"cash_type":"card","money":"oops"}`))
	errs := fieldErrs(t, err)
	if !contains(errs, "Missing required field: card") ||
		!contains(errs, "Missing required field: coffee_name") ||
		!contains(errs, "Money must be a number") {
		t.Fatalf("expected all problems in one pass, got %v", errs)
	}
}

func TestParseSaleUnknownFieldFailsClosed(t *testing.T) {
	_, err := ParseSale([]byte(`{"cash_type":"card","card":"C","money":1,"coffee_name":"Flat White","tip":0.5}`))
	errs := fieldErrs(t, err)
	if !contains(errs, "Unknown field: tip") {
		t.Fatalf("unknown field accepted: %v", errs)
	}
}

func TestParseSaleTypeMismatchFailsClosed(t *testing.T) {
	_, err := ParseSale([]byte(`{"cash_type":5,"card":"C","money":1,"coffee_name":"Cortado"}`))
	errs := fieldErrs(t, err)
	if !contains(errs, "Invalid type for field: cash_type") {
		t.Fatalf("type mismatch accepted: %v", errs)
	}
}

func TestParseSaleNotJSON(t *testing.T) {
	for _, body := range []string{"", "not json", "[1,2]"} {
		if _, err := ParseSale([]byte(body)); !errors.Is(err, ErrNotJSON) {
			t.Errorf("body %q: expected ErrNotJSON, got %v", body, err)
		}
	}
}
