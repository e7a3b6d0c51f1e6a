// Package assets resolves native-asset metadata: decimal scale, display name
// and fingerprint. Lookups are memoized per resolver instance; a resolver is
// built per aggregation run, so cached entries never outlive the run.
package assets

import (
	"context"
	"strconv"

	"github.com/patrickmn/go-cache"

	"github.com/kostaspanagias/cardano-lens/internal/blockfrost"
	"github.com/kostaspanagias/cardano-lens/pkg/common/logger"
)

// NameUnknown is the display-name sentinel for assets without usable
// on-chain metadata.
const NameUnknown = "N/A"

// Metadata is the resolved per-asset metadata.
type Metadata struct {
	// Decimals is the minor-unit scale declared by the asset. Always
	// non-negative; anything missing or malformed upstream coerces to 0.
	Decimals    int
	DisplayName string
	Fingerprint string
}

type Resolver struct {
	api  blockfrost.API
	memo *cache.Cache
}

func NewResolver(api blockfrost.API) *Resolver {
	return &Resolver{
		api:  api,
		memo: cache.New(cache.NoExpiration, 0),
	}
}

// Resolve looks up the metadata of an asset unit. It never fails the caller:
// a failed or malformed lookup logs the condition and yields decimals=0 with
// the unit standing in for name and fingerprint. Failed lookups are not
// cached, so a later call within the run may still succeed.
func (r *Resolver) Resolve(ctx context.Context, unit string) Metadata {
	if v, ok := r.memo.Get(unit); ok {
		return v.(Metadata)
	}

	asset, err := r.api.Asset(ctx, unit)
	if err != nil {
		logger.Warn("asset metadata lookup failed, defaulting decimals to 0", "unit", unit, "error", err)
		return Metadata{Decimals: 0, DisplayName: NameUnknown, Fingerprint: unit}
	}

	md := Metadata{
		Decimals:    decimalsOf(asset, unit),
		DisplayName: displayNameOf(asset, unit),
		Fingerprint: asset.Fingerprint,
	}
	if md.Fingerprint == "" {
		md.Fingerprint = unit
	}

	r.memo.Set(unit, md, cache.DefaultExpiration)
	return md
}

// decimalsOf extracts the declared decimal scale. The registry metadata
// container can be absent or null, the nested field can be absent, and the
// value has been observed as number, string and null; every degenerate shape
// coerces to 0.
func decimalsOf(asset *blockfrost.Asset, unit string) int {
	if asset.Metadata == nil {
		logger.Debug("no registry metadata, defaulting decimals to 0", "unit", unit)
		return 0
	}

	var decimals int
	switch v := asset.Metadata.Decimals.(type) {
	case nil:
		return 0
	case float64:
		decimals = int(v)
	case int:
		decimals = v
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			logger.Warn("malformed decimals value, defaulting to 0", "unit", unit, "decimals", v)
			return 0
		}
		decimals = n
	default:
		logger.Warn("malformed decimals value, defaulting to 0", "unit", unit, "decimals", v)
		return 0
	}

	if decimals < 0 {
		logger.Warn("negative decimals value, defaulting to 0", "unit", unit, "decimals", decimals)
		return 0
	}
	return decimals
}

// displayNameOf formats a human-readable token name as "name (<suffix>)"
// where suffix is the last 8 characters of the unit string.
func displayNameOf(asset *blockfrost.Asset, unit string) string {
	name := NameUnknown
	if asset.OnchainMetadata != nil {
		if n, ok := asset.OnchainMetadata["name"].(string); ok && n != "" {
			name = n
		}
	}
	if name == NameUnknown && asset.Metadata != nil && asset.Metadata.Name != "" {
		name = asset.Metadata.Name
	}
	if name == NameUnknown {
		return name
	}

	suffix := unit
	if len(unit) > 8 {
		suffix = unit[len(unit)-8:]
	}
	return name + " (" + suffix + ")"
}
