package aggregator

import (
	"context"
	"time"

	"github.com/kostaspanagias/cardano-lens/internal/blockfrost"
	"github.com/kostaspanagias/cardano-lens/internal/normalize"
	"github.com/kostaspanagias/cardano-lens/internal/paginate"
	"github.com/kostaspanagias/cardano-lens/pkg/common/logger"
	"github.com/shopspring/decimal"
)

// StakeAddressAggregator builds the address/balance table of a list of stake
// keys.
type StakeAddressAggregator struct {
	api       blockfrost.API
	pageDelay time.Duration
}

func NewStakeAddressAggregator(api blockfrost.API, pageDelay time.Duration) *StakeAddressAggregator {
	return &StakeAddressAggregator{api: api, pageDelay: pageDelay}
}

// Aggregate walks each stake key's address listing independently, in input
// order, and looks up every address's ADA balance one call at a time. A key
// whose listing fails contributes whatever pages arrived and marks the table
// incomplete; an address whose balance lookup fails is recorded with a zero
// balance.
func (s *StakeAddressAggregator) Aggregate(ctx context.Context, stakeKeys []string) *StakeAddressTable {
	table := &StakeAddressTable{Complete: true}

	for _, stakeKey := range stakeKeys {
		res := paginate.All(ctx, func(ctx context.Context, page int) ([]blockfrost.AccountAddress, error) {
			return s.api.AccountAddresses(ctx, stakeKey, page)
		}, s.pageDelay)
		if !res.Complete {
			table.Complete = false
		}

		for _, addr := range res.Items {
			table.Records = append(table.Records, StakeAddressRecord{
				StakeKey:  stakeKey,
				Address:   addr.Address,
				ADAAmount: s.adaBalance(ctx, addr.Address),
			})
		}

		logger.Info("stake key processed",
			"stake_key", stakeKey, "addresses", len(res.Items), "complete", res.Complete)
	}

	return table
}

// adaBalance fetches the lovelace balance of one address. Failures are
// non-fatal and yield zero.
func (s *StakeAddressAggregator) adaBalance(ctx context.Context, address string) decimal.Decimal {
	info, err := s.api.Address(ctx, address)
	if err != nil {
		logger.Warn("address balance lookup failed, recording 0",
			"address", address, "error", err)
		return decimal.Zero
	}
	if len(info.Amount) == 0 {
		return decimal.Zero
	}
	// The first value entry is always the lovelace amount.
	return normalize.Lovelace(info.Amount[0].Quantity)
}
