package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vanshika/finnet/internal/config"
	"github.com/vanshika/finnet/internal/graph"
	"github.com/vanshika/finnet/internal/logging"
	"github.com/vanshika/finnet/internal/repository"
	"github.com/vanshika/finnet/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app carries state shared by every subcommand once the root pre-run has
// loaded configuration.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	closeLog func() error

	source  string
	dataset string
	seed    int64
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "finnet",
		Short:         "Explore financial networks of companies and banks",
		Long:          "finnet finds paths and weighted shortest routes through a network of companies and the banks that finance them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closeLog != nil {
				return a.closeLog()
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.source, "source", "", "network source: builtin, file or neo4j (overrides NETWORK_SOURCE)")
	flags.StringVar(&a.dataset, "dataset", "", "dataset file for --source=file (overrides NETWORK_DATASET)")
	flags.Int64Var(&a.seed, "seed", 0, "seed for random edge weights (overrides NETWORK_WEIGHT_SEED)")

	root.AddCommand(
		newPathsCmd(a),
		newShortestCmd(a),
		newAnalyzeCmd(a),
		newServeCmd(a),
		newIngestCmd(a),
		newDatagenCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Network.Source = config.Source(a.source)
	}
	if flags.Changed("dataset") {
		cfg.Network.Dataset = a.dataset
		if !flags.Changed("source") {
			cfg.Network.Source = config.SourceFile
		}
	}
	if flags.Changed("seed") {
		cfg.Network.WeightSeed = a.seed
	}
	if err := cfg.Network.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Logging.File != "" {
		a.logger, a.closeLog = logging.New(cfg.Logging)
	} else {
		// Command output goes to stdout; keep logs on stderr.
		a.logger = logging.NewWithWriter(cfg.Logging, cmd.ErrOrStderr())
	}
	a.logger = a.logger.With("command", cmd.Name())
	return nil
}

// openGraph connects to Neo4j. The caller closes the returned client.
func (a *app) openGraph(ctx context.Context) (graph.Client, error) {
	client, err := graph.NewNeo4jClient(ctx, graph.OptionsFromConfig(a.cfg.Graph))
	if err != nil {
		return nil, fmt.Errorf("connect to graph: %w", err)
	}
	return client, nil
}

// loadService builds the network service for the configured source. The
// returned cleanup closes the graph client, if one was opened.
func (a *app) loadService(ctx context.Context) (*service.NetworkService, graph.Client, func(), error) {
	var (
		client graph.Client
		loader service.NetworkLoader
	)
	cleanup := func() {}
	if a.cfg.Network.Source == config.SourceNeo4j {
		var err error
		client, err = a.openGraph(ctx)
		if err != nil {
			return nil, nil, cleanup, err
		}
		cleanup = func() {
			if err := client.Close(context.Background()); err != nil {
				a.logger.Warn("closing graph client failed", "error", err)
			}
		}
		loader = repository.New(client)
	}

	g, name, err := service.LoadGraph(ctx, a.cfg.Network, loader)
	if err != nil {
		cleanup()
		return nil, nil, func() {}, err
	}
	svc, err := service.NewNetworkService(g, service.Options{
		Name:    name,
		Weights: service.WeightPolicy(a.cfg.Network),
		Workers: a.cfg.Network.Workers,
		Logger:  a.logger,
	})
	if err != nil {
		cleanup()
		return nil, nil, func() {}, err
	}
	return svc, client, cleanup, nil
}
