package gateway

import (
	"math"

	"github.com/eaglebank/account-grpc/internal/accountpb"
	"github.com/eaglebank/account-grpc/internal/models"
	"github.com/shopspring/decimal"
)

// StatsFunc computes the balance aggregate over a snapshot of accounts.
type StatsFunc func(accounts []models.Account) *accountpb.BalanceStats

// Float32Stats narrows every balance to float32 before adding it to a float32
// running total. Large counts or magnitudes lose precision, and a total past
// the float32 range becomes +Inf or -Inf.
func Float32Stats(accounts []models.Account) *accountpb.BalanceStats {
	count := len(accounts)
	var sum float32
	for _, a := range accounts {
		sum += float32(a.Solde)
	}

	var avg float32
	if count > 0 {
		avg = sum / float32(count)
	}

	return &accountpb.BalanceStats{
		Count:   int32(count),
		Sum:     sum,
		Average: avg,
	}
}

// ExactStats accumulates the stored float64 balances in decimal and narrows to
// float32 only for the wire. NaN and infinite balances cannot be represented
// in decimal; when any is present both sum and average carry the IEEE result
// of adding them (Inf, -Inf or NaN).
func ExactStats(accounts []models.Account) *accountpb.BalanceStats {
	count := len(accounts)
	sum := decimal.Zero
	var nonFinite float64
	for _, a := range accounts {
		if math.IsNaN(a.Solde) || math.IsInf(a.Solde, 0) {
			nonFinite += a.Solde
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(a.Solde))
	}

	if nonFinite != 0 || math.IsNaN(nonFinite) {
		return &accountpb.BalanceStats{
			Count:   int32(count),
			Sum:     float32(nonFinite),
			Average: float32(nonFinite),
		}
	}

	avg := decimal.Zero
	if count > 0 {
		avg = sum.Div(decimal.NewFromInt(int64(count)))
	}

	return &accountpb.BalanceStats{
		Count:   int32(count),
		Sum:     float32(sum.InexactFloat64()),
		Average: float32(avg.InexactFloat64()),
	}
}
