package aggregator

import (
	"context"
	"fmt"
	"time"

	"github.com/kostaspanagias/cardano-lens/internal/assets"
	"github.com/kostaspanagias/cardano-lens/internal/blockfrost"
	"github.com/kostaspanagias/cardano-lens/internal/normalize"
	"github.com/kostaspanagias/cardano-lens/pkg/common/logger"
	"github.com/shopspring/decimal"
)

// DateFormat is the timestamp layout of assembled flows. All dates are UTC.
const DateFormat = "2006.01.02 - 15.04.05"

// FlowAssembler builds the asset-flow record of one transaction.
type FlowAssembler struct {
	api      blockfrost.API
	resolver *assets.Resolver
}

func NewFlowAssembler(api blockfrost.API) *FlowAssembler {
	return &FlowAssembler{
		api:      api,
		resolver: assets.NewResolver(api),
	}
}

// Assemble fetches the transaction, its block (for the canonical timestamp)
// and its UTXO set, and correlates every native-token movement with its
// output. The transaction and UTXO lookups are required: their failure
// short-circuits the whole assembly. Everything else degrades to sentinels.
func (f *FlowAssembler) Assemble(ctx context.Context, txID string) (*Flow, error) {
	tx, err := f.api.Transaction(ctx, txID)
	if err != nil {
		return nil, fmt.Errorf("fetch transaction %s: %w", txID, err)
	}

	flow := &Flow{
		TxID:   txID,
		Fee:    normalize.Lovelace(tx.Fees),
		TxSize: tx.Size,
	}
	flow.Date, flow.Block = f.resolveBlock(ctx, tx)

	utxos, err := f.api.TransactionUTxOs(ctx, txID)
	if err != nil {
		return nil, fmt.Errorf("fetch utxos of %s: %w", txID, err)
	}

	for _, in := range utxos.Inputs {
		flow.Inputs = append(flow.Inputs, f.line(ctx, in, false))
	}
	for _, out := range utxos.Outputs {
		flow.Outputs = append(flow.Outputs, f.line(ctx, out, true))
	}

	flow.Tokens = allocate(flow.Inputs, flow.Outputs)

	logger.Info("transaction flow assembled",
		"tx", txID, "inputs", len(flow.Inputs), "outputs", len(flow.Outputs),
		"token_movements", len(flow.Tokens))
	return flow, nil
}

// resolveBlock establishes the transaction timestamp, preferring the
// dedicated block lookup and falling back to the block_time field on the
// transaction itself.
func (f *FlowAssembler) resolveBlock(ctx context.Context, tx *blockfrost.Transaction) (string, BlockInfo) {
	if tx.Block != "" {
		block, err := f.api.Block(ctx, tx.Block)
		if err == nil {
			return formatUnix(block.Time), BlockInfo{
				Epoch: block.Epoch,
				Slot:  block.Slot,
				Size:  block.Size,
			}
		}
		logger.Warn("block lookup failed, falling back to transaction block_time",
			"block", tx.Block, "error", err)
	}

	info := BlockInfo{Slot: tx.Slot}
	if tx.BlockTime > 0 {
		return formatUnix(tx.BlockTime), info
	}
	return DateUnknown, info
}

// line converts one UTXO into a flow line: stake key resolved per address,
// ADA from the first value entry, and (for outputs) every further value entry
// recorded as a token movement.
func (f *FlowAssembler) line(ctx context.Context, utxo blockfrost.UTxO, withTokens bool) UtxoLine {
	line := UtxoLine{
		Address:   utxo.Address,
		StakeKey:  f.stakeKey(ctx, utxo.Address),
		ADAAmount: decimal.Zero,
	}
	if len(utxo.Amount) > 0 {
		line.ADAAmount = normalize.Lovelace(utxo.Amount[0].Quantity)
	}
	if !withTokens {
		return line
	}

	if len(utxo.Amount) < 2 {
		return line
	}

	// Value entries beyond the first are native-token movements.
	for _, amount := range utxo.Amount[1:] {
		md := f.resolver.Resolve(ctx, amount.Unit)
		quantity, err := normalize.QuantityString(amount.Quantity, md.Decimals)
		if err != nil {
			logger.Warn("skipping token movement with malformed quantity",
				"unit", amount.Unit, "quantity", amount.Quantity, "error", err)
			continue
		}
		line.Tokens = append(line.Tokens, TokenMovement{
			Unit:        amount.Unit,
			Name:        md.DisplayName,
			Fingerprint: md.Fingerprint,
			Quantity:    quantity,
		})
	}
	return line
}

func (f *FlowAssembler) stakeKey(ctx context.Context, address string) string {
	info, err := f.api.Address(ctx, address)
	if err != nil || info.StakeAddress == "" {
		if err != nil {
			logger.Warn("stake key lookup failed", "address", address, "error", err)
		}
		return StakeKeyUnknown
	}
	return info.StakeAddress
}

// allocate turns the output-scoped token movements into flows. With exactly
// one input the attribution is unambiguous; with several, the sending input
// is unknowable from the UTXO set alone and the flow is left unattributed
// instead of silently picking one.
func allocate(inputs, outputs []UtxoLine) []TokenFlow {
	inputIndex := UnattributedInput
	if len(inputs) == 1 {
		inputIndex = 0
	}

	var flows []TokenFlow
	for outIdx, out := range outputs {
		for _, movement := range out.Tokens {
			flows = append(flows, TokenFlow{
				InputIndex:  inputIndex,
				OutputIndex: outIdx,
				Movement:    movement,
			})
		}
	}
	return flows
}

func formatUnix(unix int64) string {
	return time.Unix(unix, 0).UTC().Format(DateFormat)
}
