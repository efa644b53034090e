package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vanshika/finnet/internal/config"
	"github.com/vanshika/finnet/internal/generator"
	"github.com/vanshika/finnet/internal/network"
	"github.com/vanshika/finnet/internal/repository"
	"github.com/vanshika/finnet/internal/service"
)

func newIngestCmd(a *app) *cobra.Command {
	var weighted bool
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Replace the network stored in Neo4j with the builtin or a dataset network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Network.Source == config.SourceNeo4j {
				return fmt.Errorf("ingest reads from builtin or file, not neo4j")
			}
			ctx := cmd.Context()

			g, name, err := service.LoadGraph(ctx, a.cfg.Network, nil)
			if err != nil {
				return err
			}
			if weighted && !g.Weighted() {
				if err := network.AssignWeights(g, service.WeightPolicy(a.cfg.Network)); err != nil {
					return err
				}
			}

			client, err := a.openGraph(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := client.Close(context.Background()); err != nil {
					a.logger.Warn("closing graph client failed", "error", err)
				}
			}()

			start := time.Now()
			repo := repository.New(client)
			if err := repo.EnsureSchema(ctx); err != nil {
				return err
			}
			if err := repo.SeedNetwork(ctx, g); err != nil {
				return err
			}
			nodes, rels, err := repo.Counts(ctx)
			if err != nil {
				return err
			}
			a.logger.Info("network ingested",
				"name", name,
				"institutions", nodes,
				"relationships", rels,
				"duration", time.Since(start).String(),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %s: %s institutions, %s relationships\n",
				name, humanize.Comma(int64(nodes)), humanize.Comma(int64(rels)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&weighted, "weighted", false, "assign random weights to unweighted edges before storing")
	return cmd
}

func newDatagenCmd(a *app) *cobra.Command {
	cfg := generator.DefaultConfig()
	var outDir string
	cmd := &cobra.Command{
		Use:   "datagen",
		Short: "Generate a synthetic company/bank network dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				cfg.Seed = a.seed
			}
			gen, err := generator.New(cfg)
			if err != nil {
				return err
			}

			start := time.Now()
			ds, err := gen.Generate(cmd.Context())
			if err != nil {
				return err
			}
			path, err := generator.WriteDataset(ds, outDir)
			if err != nil {
				return err
			}
			a.logger.Info("dataset generated",
				"path", path,
				"vertices", len(ds.Vertices),
				"edges", len(ds.Edges),
				"duration", time.Since(start).String(),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s vertices, %s edges)\n",
				path, humanize.Comma(int64(len(ds.Vertices))), humanize.Comma(int64(len(ds.Edges))))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&outDir, "out", "./seed-data", "output directory")
	flags.IntVar(&cfg.Companies, "companies", cfg.Companies, "number of companies")
	flags.IntVar(&cfg.Banks, "banks", cfg.Banks, "number of banks")
	flags.IntVar(&cfg.MinBanksPerCompany, "min-banks", cfg.MinBanksPerCompany, "minimum banks per company")
	flags.IntVar(&cfg.MaxBanksPerCompany, "max-banks", cfg.MaxBanksPerCompany, "maximum banks per company")
	flags.Float64Var(&cfg.InterbankChance, "interbank-chance", cfg.InterbankChance, "probability that two banks are linked")
	flags.BoolVar(&cfg.Weighted, "weighted", false, "assign random weights to generated edges")
	flags.IntVar(&cfg.MinWeight, "min-weight", cfg.MinWeight, "minimum edge weight")
	flags.IntVar(&cfg.MaxWeight, "max-weight", cfg.MaxWeight, "maximum edge weight")
	return cmd
}
