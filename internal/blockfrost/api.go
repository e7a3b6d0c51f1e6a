package blockfrost

import "context"

// API is the surface of the ledger-indexing service the aggregators consume.
type API interface {
	Asset(ctx context.Context, unit string) (*Asset, error)
	AssetAddresses(ctx context.Context, unit string, page int) ([]AssetAddress, error)
	AccountAddresses(ctx context.Context, stakeAddress string, page int) ([]AccountAddress, error)
	Address(ctx context.Context, address string) (*AddressInfo, error)
	Transaction(ctx context.Context, txHash string) (*Transaction, error)
	TransactionUTxOs(ctx context.Context, txHash string) (*TxUTxOs, error)
	Block(ctx context.Context, hashOrNumber string) (*Block, error)
}

var _ API = (*Client)(nil)
