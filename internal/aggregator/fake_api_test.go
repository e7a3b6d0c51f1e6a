package aggregator

import (
	"context"
	"fmt"

	"github.com/kostaspanagias/cardano-lens/internal/blockfrost"
)

// fakeAPI implements blockfrost.API from in-memory fixtures. Pagination is
// served from page slices; pages past the fixture come back empty, matching
// the upstream end-of-data behavior.
type fakeAPI struct {
	assets        map[string]*blockfrost.Asset
	holderPages   map[string][][]blockfrost.AssetAddress
	holderErrPage map[string]int // unit -> 1-based page that fails, 0 = none
	accountPages  map[string][][]blockfrost.AccountAddress
	accountErr    map[string]bool // stake key whose listing always fails
	addresses     map[string]*blockfrost.AddressInfo
	addressErr    map[string]bool
	txs           map[string]*blockfrost.Transaction
	utxos         map[string]*blockfrost.TxUTxOs
	blocks        map[string]*blockfrost.Block

	assetCalls   int
	addressCalls int
}

func (f *fakeAPI) Asset(ctx context.Context, unit string) (*blockfrost.Asset, error) {
	f.assetCalls++
	if a, ok := f.assets[unit]; ok {
		return a, nil
	}
	return nil, &blockfrost.HTTPError{Status: 404, URL: "/assets/" + unit}
}

func (f *fakeAPI) AssetAddresses(ctx context.Context, unit string, page int) ([]blockfrost.AssetAddress, error) {
	if errPage, ok := f.holderErrPage[unit]; ok && errPage == page {
		return nil, fmt.Errorf("HTTP 429 from /assets/%s/addresses", unit)
	}
	pages := f.holderPages[unit]
	if page > len(pages) {
		return nil, nil
	}
	return pages[page-1], nil
}

func (f *fakeAPI) AccountAddresses(ctx context.Context, stakeAddress string, page int) ([]blockfrost.AccountAddress, error) {
	if f.accountErr[stakeAddress] {
		return nil, fmt.Errorf("HTTP 500 from /accounts/%s/addresses", stakeAddress)
	}
	pages := f.accountPages[stakeAddress]
	if page > len(pages) {
		return nil, nil
	}
	return pages[page-1], nil
}

func (f *fakeAPI) Address(ctx context.Context, address string) (*blockfrost.AddressInfo, error) {
	f.addressCalls++
	if f.addressErr[address] {
		return nil, fmt.Errorf("HTTP 500 from /addresses/%s", address)
	}
	if info, ok := f.addresses[address]; ok {
		return info, nil
	}
	return nil, &blockfrost.HTTPError{Status: 404, URL: "/addresses/" + address}
}

func (f *fakeAPI) Transaction(ctx context.Context, txHash string) (*blockfrost.Transaction, error) {
	if tx, ok := f.txs[txHash]; ok {
		return tx, nil
	}
	return nil, &blockfrost.HTTPError{Status: 404, URL: "/txs/" + txHash}
}

func (f *fakeAPI) TransactionUTxOs(ctx context.Context, txHash string) (*blockfrost.TxUTxOs, error) {
	if u, ok := f.utxos[txHash]; ok {
		return u, nil
	}
	return nil, &blockfrost.HTTPError{Status: 404, URL: "/txs/" + txHash + "/utxos"}
}

func (f *fakeAPI) Block(ctx context.Context, hashOrNumber string) (*blockfrost.Block, error) {
	if b, ok := f.blocks[hashOrNumber]; ok {
		return b, nil
	}
	return nil, &blockfrost.HTTPError{Status: 404, URL: "/blocks/" + hashOrNumber}
}

var _ blockfrost.API = (*fakeAPI)(nil)

func lovelace(quantity string) []blockfrost.Amount {
	return []blockfrost.Amount{{Unit: "lovelace", Quantity: quantity}}
}
