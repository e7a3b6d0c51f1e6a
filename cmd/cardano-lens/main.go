package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kostaspanagias/cardano-lens/internal/aggregator"
	"github.com/kostaspanagias/cardano-lens/internal/blockfrost"
	"github.com/kostaspanagias/cardano-lens/internal/config"
	"github.com/kostaspanagias/cardano-lens/internal/export"
	"github.com/kostaspanagias/cardano-lens/internal/stakefile"
	"github.com/kostaspanagias/cardano-lens/pkg/common/logger"
	"github.com/kostaspanagias/cardano-lens/pkg/ratelimiter"
)

var (
	flagConfig string
	flagOut    string
	flagDebug  bool
	flagGraph  bool
)

func main() {
	root := &cobra.Command{
		Use:           "cardano-lens",
		Short:         "Reconstruct Cardano ledger activity through the Blockfrost API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (defaults apply when omitted)")
	root.PersistentFlags().StringVar(&flagOut, "out", ".", "directory for exported files")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logs")

	holders := &cobra.Command{
		Use:   "holders <asset_unit>",
		Short: "Build the full holder table of a native asset",
		Args:  cobra.ExactArgs(1),
		RunE:  runHolders,
	}

	stakeAddresses := &cobra.Command{
		Use:   "stake-addresses <stake.csv>",
		Short: "List the payment addresses and ADA balances of stake keys",
		Args:  cobra.ExactArgs(1),
		RunE:  runStakeAddresses,
	}

	txFlow := &cobra.Command{
		Use:   "tx-flow <tx_id>",
		Short: "Assemble the asset-flow record of a transaction",
		Args:  cobra.ExactArgs(1),
		RunE:  runTxFlow,
	}
	txFlow.Flags().BoolVar(&flagGraph, "graph", false, "also export graph elements as JSON")

	root.AddCommand(holders, stakeAddresses, txFlow)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// setup loads config, initializes logging and builds the API client.
func setup() (*blockfrost.Client, config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, cfg, err
	}

	level := slog.LevelInfo
	if flagDebug {
		level = slog.LevelDebug
	}
	logger.Init(&logger.Options{Level: level, TimeFormat: time.RFC3339})

	projectID, err := cfg.ProjectID()
	if err != nil {
		return nil, cfg, err
	}

	rl := ratelimiter.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.BurstSize)
	client := blockfrost.NewClient(
		cfg.Blockfrost.BaseURL,
		projectID,
		cfg.Blockfrost.RequestTimeout.Std(),
		rl,
	)
	return client, cfg, nil
}

func runHolders(cmd *cobra.Command, args []string) error {
	client, cfg, err := setup()
	if err != nil {
		return err
	}
	unit := args[0]

	table := aggregator.NewHolderAggregator(client, cfg.PageDelay.Std()).Aggregate(cmd.Context(), unit)
	if !table.Complete {
		logger.Warn("holder table is incomplete, a listing page failed", "unit", unit)
	}

	return writeFile(fileName(unit, "holders", "csv"), export.RenderHolders(table))
}

func runStakeAddresses(cmd *cobra.Command, args []string) error {
	client, cfg, err := setup()
	if err != nil {
		return err
	}

	stakeKeys, err := stakefile.Load(args[0])
	if err != nil {
		return err
	}

	table := aggregator.NewStakeAddressAggregator(client, cfg.PageDelay.Std()).Aggregate(cmd.Context(), stakeKeys)
	if !table.Complete {
		logger.Warn("stake address table is incomplete, a listing page failed")
	}

	return writeFile(filepath.Join(flagOut, "stake_addresses.csv"), export.RenderStakeAddresses(table))
}

func runTxFlow(cmd *cobra.Command, args []string) error {
	client, _, err := setup()
	if err != nil {
		return err
	}
	txID := args[0]

	flow, err := aggregator.NewFlowAssembler(client).Assemble(cmd.Context(), txID)
	if err != nil {
		if blockfrost.IsNotFound(err) {
			return fmt.Errorf("transaction %s not found", txID)
		}
		return err
	}

	if err := writeFile(fileName(txID, "ada", "csv"), export.RenderFlowADA(flow)); err != nil {
		return err
	}
	if err := writeFile(fileName(txID, "tokens", "csv"), export.RenderFlowTokens(flow)); err != nil {
		return err
	}
	if flagGraph {
		elements, err := json.MarshalIndent(export.GraphElements(flow), "", "  ")
		if err != nil {
			return err
		}
		if err := writeFile(fileName(txID, "graph", "json"), string(elements)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func fileName(id, suffix, ext string) string {
	return filepath.Join(flagOut, fmt.Sprintf("%s_%s.%s", id, suffix, ext))
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Info("exported", "file", path)
	return nil
}
