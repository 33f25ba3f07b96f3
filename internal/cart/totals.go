package cart

import "github.com/shopspring/decimal"

// 税率は15%固定。
var TaxRate = decimal.NewFromFloat(0.15)

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals は小計・税・合計を2桁丸めで計算する。純粋関数。
// 空のカートは全部0.00。
func ComputeTotals(lines []Line) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Product.Cost.Mul(decimal.NewFromInt(l.Quantity)))
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(TaxRate).Round(2)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
