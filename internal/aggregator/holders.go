package aggregator

import (
	"context"
	"sort"
	"time"

	"github.com/kostaspanagias/cardano-lens/internal/assets"
	"github.com/kostaspanagias/cardano-lens/internal/blockfrost"
	"github.com/kostaspanagias/cardano-lens/internal/normalize"
	"github.com/kostaspanagias/cardano-lens/internal/paginate"
	"github.com/kostaspanagias/cardano-lens/pkg/common/logger"
)

// HolderAggregator builds the full holder table of one native asset.
type HolderAggregator struct {
	api       blockfrost.API
	resolver  *assets.Resolver
	pageDelay time.Duration
}

func NewHolderAggregator(api blockfrost.API, pageDelay time.Duration) *HolderAggregator {
	return &HolderAggregator{
		api:       api,
		resolver:  assets.NewResolver(api),
		pageDelay: pageDelay,
	}
}

// Aggregate resolves the asset's decimal scale once, walks the holders
// listing to exhaustion and returns the normalized table sorted by quantity
// descending. Ties keep their page-arrival order. Failures degrade: a failed
// listing yields a partial table with Complete=false, and a holder whose
// quantity cannot be parsed is skipped.
func (h *HolderAggregator) Aggregate(ctx context.Context, unit string) *HolderTable {
	md := h.resolver.Resolve(ctx, unit)

	res := paginate.All(ctx, func(ctx context.Context, page int) ([]blockfrost.AssetAddress, error) {
		return h.api.AssetAddresses(ctx, unit, page)
	}, h.pageDelay)

	records := make([]HolderRecord, 0, len(res.Items))
	for _, holder := range res.Items {
		quantity, err := normalize.QuantityString(holder.Quantity, md.Decimals)
		if err != nil {
			logger.Warn("skipping holder with malformed quantity",
				"address", holder.Address, "quantity", holder.Quantity, "error", err)
			continue
		}
		records = append(records, HolderRecord{
			Address:  holder.Address,
			Quantity: quantity,
		})
	}

	// Stable keeps arrival order for equal quantities.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Quantity.GreaterThan(records[j].Quantity)
	})

	logger.Info("holder table assembled",
		"unit", unit, "holders", len(records), "pages", res.Pages, "complete", res.Complete)

	return &HolderTable{
		Asset:    unit,
		Decimals: md.Decimals,
		Records:  records,
		Complete: res.Complete,
	}
}
