// Package report renders path and analysis results as plain text for the
// command line.
package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/vanshika/finnet/internal/analysis"
	"github.com/vanshika/finnet/internal/network"
	"github.com/vanshika/finnet/internal/shortestpath"
)

const unreachable = "unreachable"

// Path writes the outcome of one path query.
func Path(w io.Writer, algorithm, from, to string, path network.Path, found bool) error {
	if !found {
		_, err := fmt.Fprintf(w, "%s path from %s to %s: no path found\n", algorithm, from, to)
		return err
	}
	_, err := fmt.Fprintf(w, "%s path from %s to %s (%s): %s\n",
		algorithm, from, to, hops(path.Hops()), path)
	return err
}

// ShortestPaths writes a table with one row per route from source.
func ShortestPaths(w io.Writer, source string, routes []shortestpath.Route) error {
	if _, err := fmt.Fprintf(w, "Shortest paths from %s:\n", source); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TARGET\tDISTANCE\tPATH")
	for _, route := range routes {
		if !route.Reachable {
			fmt.Fprintf(tw, "%s\t%s\t-\n", route.Target, unreachable)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", route.Target, humanize.Comma(int64(route.Distance)), route.Path)
	}
	return tw.Flush()
}

// Summary writes network counts, the degree table and the centrality ranking.
func Summary(w io.Writer, summary analysis.Summary) error {
	_, err := fmt.Fprintf(w, "Network: %s vertices (%s companies, %s banks), %s edges\n",
		humanize.Comma(int64(summary.Vertices)),
		humanize.Comma(int64(summary.Companies)),
		humanize.Comma(int64(summary.Banks)),
		humanize.Comma(int64(summary.Edges)))
	if err != nil {
		return err
	}

	labels := make([]string, 0, len(summary.Degrees))
	for label := range summary.Degrees {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		di, dj := summary.Degrees[labels[i]], summary.Degrees[labels[j]]
		if di != dj {
			return di > dj
		}
		return labels[i] < labels[j]
	})

	fmt.Fprintln(w, "\nDegrees:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, label := range labels {
		fmt.Fprintf(tw, "  %s\t%d\n", label, summary.Degrees[label])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nMost central (betweenness):")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, c := range summary.MostCentral {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%.4f\n", humanize.Ordinal(i+1), c.Label, c.NodeType, c.Score)
	}
	return tw.Flush()
}

func hops(n int) string {
	if n == 1 {
		return "1 hop"
	}
	return fmt.Sprintf("%s hops", humanize.Comma(int64(n)))
}
