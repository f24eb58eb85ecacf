package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePortfolio_EvenSplit(t *testing.T) {
	items := ComputePortfolio([]Asset{
		{Mnemonic: "AAPL", Price: 10, Shares: 2},
		{Mnemonic: "MSFT", Price: 5, Shares: 4},
	})

	assert.Equal(t, []PortfolioItem{
		{Mnemonic: "AAPL", Percentage: 50},
		{Mnemonic: "MSFT", Percentage: 50},
	}, items)
}

func TestComputePortfolio_UnevenSplitSumsToHundred(t *testing.T) {
	items := ComputePortfolio([]Asset{
		{Mnemonic: "A", Price: 1, Shares: 1},
		{Mnemonic: "B", Price: 1, Shares: 1},
		{Mnemonic: "C", Price: 1, Shares: 1},
	})

	var sum float64
	for _, it := range items {
		assert.Equal(t, 33.33, it.Percentage)
		sum += it.Percentage
	}
	assert.InDelta(t, 100, sum, 0.05)
}

func TestComputePortfolio_FractionalPrices(t *testing.T) {
	items := ComputePortfolio([]Asset{
		{Mnemonic: "BTC", Price: 0.1, Shares: 3},
		{Mnemonic: "ETH", Price: 0.2, Shares: 1},
		{Mnemonic: "SOL", Price: 0.5, Shares: 1},
	})

	assert.Equal(t, []PortfolioItem{
		{Mnemonic: "BTC", Percentage: 30},
		{Mnemonic: "ETH", Percentage: 20},
		{Mnemonic: "SOL", Percentage: 50},
	}, items)
}

func TestComputePortfolio_ZeroTotal(t *testing.T) {
	assert.Empty(t, ComputePortfolio(nil))
	assert.NotNil(t, ComputePortfolio(nil))
	assert.Empty(t, ComputePortfolio([]Asset{{Mnemonic: "X", Price: 0, Shares: 10}}))
}

func TestParseID(t *testing.T) {
	id := NewID()
	got, ok := ParseID(id)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = ParseID("not-an-id")
	assert.False(t, ok)

	_, ok = ParseID("")
	assert.False(t, ok)
}
