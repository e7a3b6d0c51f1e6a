package aggregator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kostaspanagias/cardano-lens/internal/blockfrost"
)

func addressInfo(addr, stake, lovelaceAmount string) *blockfrost.AddressInfo {
	return &blockfrost.AddressInfo{
		Address:      addr,
		StakeAddress: stake,
		Amount:       lovelace(lovelaceAmount),
	}
}

func TestStakeAddresses_GroupedByInputOrder(t *testing.T) {
	api := &fakeAPI{
		accountPages: map[string][][]blockfrost.AccountAddress{
			"stake1": {
				{{Address: "addr1a"}, {Address: "addr1b"}},
			},
			"stake2": {
				{{Address: "addr2a"}},
			},
		},
		addresses: map[string]*blockfrost.AddressInfo{
			"addr1a": addressInfo("addr1a", "stake1", "1500000"),
			"addr1b": addressInfo("addr1b", "stake1", "250000"),
			"addr2a": addressInfo("addr2a", "stake2", "3000000"),
		},
	}

	table := NewStakeAddressAggregator(api, 0).Aggregate(context.Background(), []string{"stake2", "stake1"})
	require.True(t, table.Complete)
	require.Len(t, table.Records, 3)

	// input order: stake2 first, then stake1's addresses in page order
	assert.Equal(t, "stake2", table.Records[0].StakeKey)
	assert.Equal(t, "addr2a", table.Records[0].Address)
	assert.Equal(t, "3", table.Records[0].ADAAmount.String())
	assert.Equal(t, "addr1a", table.Records[1].Address)
	assert.Equal(t, "1.5", table.Records[1].ADAAmount.String())
	assert.Equal(t, "addr1b", table.Records[2].Address)
	assert.Equal(t, "0.25", table.Records[2].ADAAmount.String())
}

func TestStakeAddresses_FailingKeyDoesNotStopOthers(t *testing.T) {
	api := &fakeAPI{
		accountPages: map[string][][]blockfrost.AccountAddress{
			"stake_ok": {{{Address: "addr_ok"}}},
		},
		accountErr: map[string]bool{"stake_bad": true},
		addresses: map[string]*blockfrost.AddressInfo{
			"addr_ok": addressInfo("addr_ok", "stake_ok", "1000000"),
		},
	}

	table := NewStakeAddressAggregator(api, 0).Aggregate(context.Background(), []string{"stake_bad", "stake_ok"})
	assert.False(t, table.Complete, "a failed key marks the table partial")
	require.Len(t, table.Records, 1)
	assert.Equal(t, "addr_ok", table.Records[0].Address)
}

func TestStakeAddresses_FailedBalanceLookupRecordsZero(t *testing.T) {
	api := &fakeAPI{
		accountPages: map[string][][]blockfrost.AccountAddress{
			"stake1": {{{Address: "addr_good"}, {Address: "addr_flaky"}}},
		},
		addresses: map[string]*blockfrost.AddressInfo{
			"addr_good": addressInfo("addr_good", "stake1", "2000000"),
		},
		addressErr: map[string]bool{"addr_flaky": true},
	}

	table := NewStakeAddressAggregator(api, 0).Aggregate(context.Background(), []string{"stake1"})
	require.Len(t, table.Records, 2, "the address with the failed lookup is still listed")
	assert.Equal(t, "2", table.Records[0].ADAAmount.String())
	assert.True(t, table.Records[1].ADAAmount.IsZero())
	assert.True(t, table.Complete)
}

func TestStakeAddresses_MultiPageKey(t *testing.T) {
	api := &fakeAPI{
		accountPages: map[string][][]blockfrost.AccountAddress{
			"stake1": {
				{{Address: "a1"}, {Address: "a2"}},
				{{Address: "a3"}},
			},
		},
		addresses: map[string]*blockfrost.AddressInfo{
			"a1": addressInfo("a1", "stake1", "1000000"),
			"a2": addressInfo("a2", "stake1", "1000000"),
			"a3": addressInfo("a3", "stake1", "1000000"),
		},
	}

	table := NewStakeAddressAggregator(api, 0).Aggregate(context.Background(), []string{"stake1"})
	require.Len(t, table.Records, 3)
	assert.Equal(t, []string{"a1", "a2", "a3"}, []string{
		table.Records[0].Address, table.Records[1].Address, table.Records[2].Address,
	})
}

func TestStakeAddresses_EmptyAmountListIsZero(t *testing.T) {
	api := &fakeAPI{
		accountPages: map[string][][]blockfrost.AccountAddress{
			"stake1": {{{Address: "addr_empty"}}},
		},
		addresses: map[string]*blockfrost.AddressInfo{
			"addr_empty": {Address: "addr_empty", StakeAddress: "stake1"},
		},
	}

	table := NewStakeAddressAggregator(api, 0).Aggregate(context.Background(), []string{"stake1"})
	require.Len(t, table.Records, 1)
	assert.True(t, table.Records[0].ADAAmount.IsZero())
}
