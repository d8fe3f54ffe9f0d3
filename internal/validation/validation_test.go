package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"mach-cost/core/types"
	"mach-cost/internal/errors"
)

func TestStructAcceptsValidMetrics(t *testing.T) {
	m := types.BusinessMetrics{
		Size:           types.SizeSMB,
		MonthlyOrders:  5000,
		MonthlyRevenue: decimal.NewFromInt(500000),
	}
	if err := Struct(m); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestStructAcceptsEmptySize(t *testing.T) {
	if err := Struct(types.BusinessMetrics{}); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestStructRejectsNegativeRevenue(t *testing.T) {
	m := types.BusinessMetrics{MonthlyRevenue: decimal.NewFromInt(-1)}

	err := Struct(m)
	if err == nil {
		t.Fatal("Expected error for negative revenue")
	}
	if !errors.IsType(err, errors.TypeValidation) {
		t.Errorf("Expected VALIDATION_ERROR, got %v", errors.TypeOf(err))
	}
}

func TestStructRejectsUnknownSize(t *testing.T) {
	err := Struct(types.BusinessMetrics{Size: "huge", MonthlyOrders: -3})
	if err == nil {
		t.Fatal("Expected error for unknown size")
	}

	msg := err.Error()
	for _, want := range []string{"size must be one of", "monthlyOrders must be >= 0"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected %q in %q", want, msg)
		}
	}
}

func TestStructRecordsFailingFields(t *testing.T) {
	err := Struct(types.BusinessMetrics{MonthlyOrders: -1})

	e, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("Expected *errors.Error, got %T", err)
	}
	fields, _ := e.Context["fields"].([]string)
	if len(fields) != 1 || !strings.HasSuffix(fields[0], "monthlyOrders") {
		t.Errorf("Expected monthlyOrders in context, got %v", e.Context["fields"])
	}
}
