package types

import "github.com/shopspring/decimal"

// BusinessMetrics is the caller-supplied operating snapshot used for one calculation.
// All numeric fields are assumed non-negative.
type BusinessMetrics struct {
	Size           BusinessSize    `json:"size" yaml:"size" validate:"omitempty,oneof=startup smb enterprise"`
	MonthlyOrders  int64           `json:"monthlyOrders" yaml:"monthlyOrders" validate:"gte=0"`
	MonthlyRevenue decimal.Decimal `json:"monthlyRevenue" yaml:"monthlyRevenue" validate:"gte=0"`
	Users          int64           `json:"users" yaml:"users" validate:"gte=0"`
	Products       int64           `json:"products" yaml:"products" validate:"gte=0"`
	Countries      int64           `json:"countries" yaml:"countries" validate:"gte=0"`
}

var (
	startupRevenueCeiling = decimal.NewFromInt(100000)
	smbRevenueCeiling     = decimal.NewFromInt(1000000)
)

// InferBusinessSize derives a size bucket from raw volume
func InferBusinessSize(m BusinessMetrics) BusinessSize {
	switch {
	case m.MonthlyRevenue.LessThan(startupRevenueCeiling) || m.MonthlyOrders < 1000:
		return SizeStartup
	case m.MonthlyRevenue.LessThan(smbRevenueCeiling) || m.MonthlyOrders < 10000:
		return SizeSMB
	default:
		return SizeEnterprise
	}
}

// WithInferredSize returns a copy with Size filled in when it is empty
func (m BusinessMetrics) WithInferredSize() BusinessMetrics {
	if m.Size == "" {
		m.Size = InferBusinessSize(m)
	}
	return m
}
