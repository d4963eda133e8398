package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAfford(t *testing.T) {
	tests := []struct {
		name          string
		total         float64
		balance       float64
		negativeLimit float64
		allowNegative bool
		want          Affordability
	}{
		{
			name:    "Covered by balance",
			total:   80,
			balance: 100,
			want: Affordability{
				CanAfford:        true,
				RemainingBalance: 20,
			},
		},
		{
			name:    "Exactly covered by balance",
			total:   100,
			balance: 100,
			want: Affordability{
				CanAfford:        true,
				RemainingBalance: 0,
			},
		},
		{
			name:          "Covered with negative balance",
			total:         150,
			balance:       100,
			negativeLimit: 100,
			allowNegative: true,
			want: Affordability{
				CanAfford:             true,
				UseNegativeBalance:    true,
				NegativeBalanceAmount: 50,
				RemainingBalance:      -50,
			},
		},
		{
			name:          "Shortfall exceeds negative limit",
			total:         150,
			balance:       100,
			negativeLimit: 30,
			allowNegative: true,
			want: Affordability{
				CanAfford:        false,
				RemainingBalance: -50,
			},
		},
		{
			name:          "Negative balance not allowed",
			total:         150,
			balance:       100,
			negativeLimit: 100,
			allowNegative: false,
			want: Affordability{
				CanAfford:        false,
				RemainingBalance: -50,
			},
		},
		{
			name:          "Shortfall exactly at the limit",
			total:         200,
			balance:       100,
			negativeLimit: 100,
			allowNegative: true,
			want: Affordability{
				CanAfford:             true,
				UseNegativeBalance:    true,
				NegativeBalanceAmount: 100,
				RemainingBalance:      -100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanAfford(tt.total, tt.balance, tt.negativeLimit, tt.allowNegative)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWalletAffordability(t *testing.T) {
	w := &Wallet{
		Balance:              100,
		NegativeBalanceLimit: 100,
		AllowNegativeBalance: true,
	}

	got := w.Affordability(150)
	assert.True(t, got.CanAfford)
	assert.True(t, got.UseNegativeBalance)
	assert.Equal(t, 50.0, got.NegativeBalanceAmount)
	assert.Equal(t, -50.0, got.RemainingBalance)
}
