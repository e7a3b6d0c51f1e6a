// Package export renders assembled records for downstream consumption:
// CSV tables and graph elements. Presentation only; no fetching, no math.
package export

import (
	"fmt"
	"strings"

	"github.com/kostaspanagias/cardano-lens/internal/aggregator"
	"github.com/kostaspanagias/cardano-lens/internal/normalize"
)

// RenderHolders renders a holder table as CSV, quantities fixed to the
// asset's decimal scale.
func RenderHolders(table *aggregator.HolderTable) string {
	var sb strings.Builder

	sb.WriteString("address,quantity\n")
	for _, rec := range table.Records {
		sb.WriteString(fmt.Sprintf("%s,%s\n",
			rec.Address,
			rec.Quantity.StringFixed(int32(table.Decimals)),
		))
	}

	return sb.String()
}

// RenderStakeAddresses renders the stake-key address/balance table as CSV.
func RenderStakeAddresses(table *aggregator.StakeAddressTable) string {
	var sb strings.Builder

	sb.WriteString("stake_pool_address,addresses,ada_amount\n")
	for _, rec := range table.Records {
		sb.WriteString(fmt.Sprintf("%s,%s,%s\n",
			rec.StakeKey,
			rec.Address,
			rec.ADAAmount.StringFixed(normalize.ADADecimals),
		))
	}

	return sb.String()
}

// RenderFlowADA renders the ADA side of a transaction flow: one row per
// input and output line, with the fee and date repeated per row.
func RenderFlowADA(flow *aggregator.Flow) string {
	var sb strings.Builder

	sb.WriteString("type,address,stake_key,ada_amount,transaction_fee,date\n")
	writeLine := func(kind string, line aggregator.UtxoLine) {
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s\n",
			kind,
			line.Address,
			line.StakeKey,
			line.ADAAmount.StringFixed(normalize.ADADecimals),
			flow.Fee.StringFixed(normalize.ADADecimals),
			flow.Date,
		))
	}
	for _, in := range flow.Inputs {
		writeLine("input", in)
	}
	for _, out := range flow.Outputs {
		writeLine("output", out)
	}

	return sb.String()
}

// RenderFlowTokens renders the token side of a transaction flow: one row per
// token movement, carrying both endpoints of the attributed flow. An
// unattributed movement leaves the input columns as "unattributed".
func RenderFlowTokens(flow *aggregator.Flow) string {
	var sb strings.Builder

	sb.WriteString("input_address,input_stake_key,output_address,output_stake_key,token,token_name,quantity\n")
	for _, tf := range flow.Tokens {
		inAddr, inStake := "unattributed", "unattributed"
		if tf.InputIndex != aggregator.UnattributedInput {
			inAddr = flow.Inputs[tf.InputIndex].Address
			inStake = flow.Inputs[tf.InputIndex].StakeKey
		}
		out := flow.Outputs[tf.OutputIndex]
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s,%s\n",
			inAddr,
			inStake,
			out.Address,
			out.StakeKey,
			tf.Movement.Fingerprint,
			csvField(tf.Movement.Name),
			tf.Movement.Quantity.String(),
		))
	}

	return sb.String()
}

// csvField quotes a value that would break the row. Token names are the only
// free-form field in these tables.
func csvField(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
