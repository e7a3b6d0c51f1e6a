package export

import (
	"fmt"
	"strings"

	"github.com/kostaspanagias/cardano-lens/internal/aggregator"
	"github.com/kostaspanagias/cardano-lens/internal/normalize"
)

// Graph-layout constants. Inputs sit on the left column, the transaction in
// the middle, outputs on the right, nodes stacked 100px apart.
const (
	inputX       = 100
	txX          = 300
	outputX      = 500
	startY       = 100
	nodeSpacing  = 100
	txY          = 300
	labelWrapLen = 20
)

// Position is a fixed 2-D coordinate for rendering.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Element is one node or edge of the flow graph, shaped for a
// cytoscape-style renderer. Edges have no position or class.
type Element struct {
	Data     map[string]string `json:"data"`
	Position *Position         `json:"position,omitempty"`
	Classes  string            `json:"classes,omitempty"`
}

// GraphElements lays out a transaction flow as graph elements with
// deterministic node identifiers: the tx id itself, input_<k> and output_<k>.
func GraphElements(flow *aggregator.Flow) []Element {
	elements := []Element{{
		Data: map[string]string{
			"id":    flow.TxID,
			"label": txLabel(flow),
		},
		Position: &Position{X: txX, Y: txY},
		Classes:  "transaction",
	}}

	for idx, in := range flow.Inputs {
		id := fmt.Sprintf("input_%d", idx)
		elements = append(elements,
			Element{
				Data: map[string]string{
					"id":    id,
					"label": lineLabel(in),
				},
				Position: &Position{X: inputX, Y: startY + idx*nodeSpacing},
				Classes:  "input",
			},
			Element{
				Data: map[string]string{
					"source": id,
					"target": flow.TxID,
					"label":  adaLabel(in),
				},
			},
		)
	}

	for idx, out := range flow.Outputs {
		id := fmt.Sprintf("output_%d", idx)
		elements = append(elements,
			Element{
				Data: map[string]string{
					"id":    id,
					"label": lineLabel(out),
				},
				Position: &Position{X: outputX, Y: startY + idx*nodeSpacing},
				Classes:  "output",
			},
			Element{
				Data: map[string]string{
					"source": flow.TxID,
					"target": id,
					"label":  adaLabel(out),
				},
			},
		)
	}

	return elements
}

func txLabel(flow *aggregator.Flow) string {
	return fmt.Sprintf("Transaction ID:\n%s\nDate: %s\nEpoch: %d, Slot: %d\nSize: %d bytes, Fee: %s ADA",
		wrap(flow.TxID, labelWrapLen),
		flow.Date,
		flow.Block.Epoch,
		flow.Block.Slot,
		flow.TxSize,
		flow.Fee.StringFixed(normalize.ADADecimals),
	)
}

func lineLabel(line aggregator.UtxoLine) string {
	return fmt.Sprintf("%s\n(%s ADA)", wrap(line.Address, labelWrapLen), line.ADAAmount.StringFixed(normalize.ADADecimals))
}

func adaLabel(line aggregator.UtxoLine) string {
	return line.ADAAmount.StringFixed(normalize.ADADecimals) + " ADA"
}

// wrap splits a long identifier into fixed-width lines so node labels stay
// readable.
func wrap(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	var parts []string
	for len(s) > width {
		parts = append(parts, s[:width])
		s = s[width:]
	}
	parts = append(parts, s)
	return strings.Join(parts, "\n")
}
