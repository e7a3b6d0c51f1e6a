package blockfrost

// Amount is a single unit/quantity pair in an address or UTXO value list.
// Quantities arrive as decimal strings and stay strings until normalization.
type Amount struct {
	Unit     string `json:"unit"`
	Quantity string `json:"quantity"`
}

// Asset is the response of the asset metadata lookup.
type Asset struct {
	Asset       string `json:"asset"`
	PolicyID    string `json:"policy_id"`
	AssetName   string `json:"asset_name"`
	Fingerprint string `json:"fingerprint"`
	Quantity    string `json:"quantity"`
	// Metadata is the registry metadata container. It can be absent or
	// explicitly null; decimals nested inside can be absent or malformed.
	Metadata        *AssetTokenMetadata `json:"metadata"`
	OnchainMetadata map[string]any      `json:"onchain_metadata"`
}

// AssetTokenMetadata is the nested registry metadata of an asset.
type AssetTokenMetadata struct {
	Name   string `json:"name"`
	Ticker string `json:"ticker"`
	// Decimals is kept loosely typed: upstream has been observed to emit
	// numbers, strings, and null here.
	Decimals any `json:"decimals"`
}

// AssetAddress is one element of the paginated asset holders listing.
type AssetAddress struct {
	Address  string `json:"address"`
	Quantity string `json:"quantity"`
}

// AccountAddress is one element of the paginated account addresses listing.
type AccountAddress struct {
	Address string `json:"address"`
}

// AddressInfo is the response of the address detail lookup.
type AddressInfo struct {
	Address      string   `json:"address"`
	Amount       []Amount `json:"amount"`
	StakeAddress string   `json:"stake_address"`
	Type         string   `json:"type"`
}

// Transaction is the response of the transaction detail lookup.
type Transaction struct {
	Hash        string `json:"hash"`
	Block       string `json:"block"`
	BlockHeight uint64 `json:"block_height"`
	// BlockTime is present on newer API versions; the dedicated block
	// lookup remains the canonical timestamp source.
	BlockTime int64  `json:"block_time"`
	Slot      uint64 `json:"slot"`
	Fees      string `json:"fees"`
	Size      int    `json:"size"`
}

// Block is the response of the block detail lookup.
type Block struct {
	Hash   string `json:"hash"`
	Time   int64  `json:"time"`
	Height uint64 `json:"height"`
	Slot   uint64 `json:"slot"`
	Epoch  int    `json:"epoch"`
	Size   int    `json:"size"`
}

// UTxO is one input or output of a transaction's UTXO set. The first Amount
// entry is the lovelace value; the rest are native-token movements.
type UTxO struct {
	Address     string   `json:"address"`
	Amount      []Amount `json:"amount"`
	TxHash      string   `json:"tx_hash"`
	OutputIndex uint32   `json:"output_index"`
}

// TxUTxOs is the response of the transaction UTXO lookup.
type TxUTxOs struct {
	Hash    string `json:"hash"`
	Inputs  []UTxO `json:"inputs"`
	Outputs []UTxO `json:"outputs"`
}
