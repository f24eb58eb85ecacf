package domain

import "github.com/shopspring/decimal" // Exact decimal arithmetic

var hundred = decimal.NewFromInt(100)

// PortfolioItem is the share of one asset in the owner's total holdings
type PortfolioItem struct {
	Mnemonic   string  `json:"mnemonic"`   // Asset mnemonic
	Percentage float64 `json:"percentage"` // Share of total value, 0-100
}

// ComputePortfolio returns the percentage of total value (price × shares) held in each asset.
// When the total is zero there is nothing to apportion and the result is empty.
func ComputePortfolio(assets []Asset) []PortfolioItem {
	values := make([]decimal.Decimal, len(assets))
	total := decimal.Zero
	for i, a := range assets {
		values[i] = decimal.NewFromFloat(a.Price).Mul(decimal.NewFromInt(a.Shares))
		total = total.Add(values[i])
	}
	items := []PortfolioItem{}
	if total.IsZero() {
		return items
	}
	for i, a := range assets {
		pct := values[i].Mul(hundred).DivRound(total, 2)
		items = append(items, PortfolioItem{Mnemonic: a.Mnemonic, Percentage: pct.InexactFloat64()})
	}
	return items
}
