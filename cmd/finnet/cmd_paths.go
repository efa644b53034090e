package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanshika/finnet/internal/pathfind"
	"github.com/vanshika/finnet/internal/report"
	"github.com/vanshika/finnet/internal/service"
	"github.com/vanshika/finnet/internal/shortestpath"
)

func newPathsCmd(a *app) *cobra.Command {
	var algorithm string
	cmd := &cobra.Command{
		Use:   "paths FROM TO",
		Short: "Find a path between two institutions with BFS and/or DFS",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var algorithms []pathfind.Algorithm
			if algorithm == "both" {
				algorithms = pathfind.Algorithms()
			} else {
				algo, err := pathfind.ParseAlgorithm(algorithm)
				if err != nil {
					return err
				}
				algorithms = []pathfind.Algorithm{algo}
			}

			svc, _, cleanup, err := a.loadService(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			for _, algo := range algorithms {
				res, err := svc.FindPath(cmd.Context(), service.PathQuery{Algorithm: algo, From: args[0], To: args[1]})
				if err != nil {
					return err
				}
				if err := report.Path(cmd.OutOrStdout(), string(algo), res.From, res.To, res.Path, res.Found); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "both", "bfs, dfs or both")
	return cmd
}

func newShortestCmd(a *app) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "shortest [SOURCE]",
		Short: "Weighted shortest paths from SOURCE, or from every institution",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if target != "" && len(args) == 0 {
				return fmt.Errorf("--target requires a SOURCE")
			}
			svc, _, cleanup, err := a.loadService(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()
			out := cmd.OutOrStdout()

			switch {
			case target != "":
				route, err := svc.ShortestPath(cmd.Context(), args[0], target)
				if err != nil {
					return err
				}
				return report.ShortestPaths(out, route.Source, []shortestpath.Route{route})
			case len(args) == 1:
				paths, err := svc.ShortestPaths(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return report.ShortestPaths(out, paths.Source, paths.Routes)
			default:
				all, err := svc.AllShortestPaths(cmd.Context())
				if err != nil {
					return err
				}
				for i, paths := range all {
					if i > 0 {
						fmt.Fprintln(out)
					}
					if err := report.ShortestPaths(out, paths.Source, paths.Routes); err != nil {
						return err
					}
				}
				return nil
			}
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "only report the route to this institution")
	return cmd
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print degree and betweenness statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, cleanup, err := a.loadService(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			summary, err := svc.Summary(cmd.Context(), top)
			if err != nil {
				return err
			}
			return report.Summary(cmd.OutOrStdout(), summary)
		},
	}
	cmd.Flags().IntVar(&top, "top", 5, "number of most central institutions to list")
	return cmd
}
