package wallet

// Affordability is the outcome of checking a price against a wallet. It is a
// pure computation; the actual deduction is a separate store operation
// performed by the caller after a successful check.
type Affordability struct {
	CanAfford             bool    `json:"can_afford"`
	UseNegativeBalance    bool    `json:"use_negative_balance"`
	NegativeBalanceAmount float64 `json:"negative_balance_amount"`
	RemainingBalance      float64 `json:"remaining_balance"`
}

// CanAfford determines whether a booking of the given total is payable from
// the balance, possibly dipping into the negative-balance allowance. When the
// booking is not affordable, RemainingBalance carries the (negative)
// shortfall for diagnostic display.
func CanAfford(total, balance, negativeLimit float64, allowNegative bool) Affordability {
	if total <= balance {
		return Affordability{
			CanAfford:        true,
			RemainingBalance: balance - total,
		}
	}

	shortfall := total - balance
	if allowNegative && shortfall <= negativeLimit {
		return Affordability{
			CanAfford:             true,
			UseNegativeBalance:    true,
			NegativeBalanceAmount: shortfall,
			RemainingBalance:      -shortfall,
		}
	}

	return Affordability{
		CanAfford:        false,
		RemainingBalance: balance - total,
	}
}

// Affordability checks a total against this wallet's balance and policy.
func (w *Wallet) Affordability(total float64) Affordability {
	return CanAfford(total, w.Balance, w.NegativeBalanceLimit, w.AllowNegativeBalance)
}
