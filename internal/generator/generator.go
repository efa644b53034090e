// Package generator synthesises company/bank networks for load testing and
// demos.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/vanshika/finnet/internal/dataset"
	"github.com/vanshika/finnet/internal/network"
)

// Generator produces synthetic financial networks.
type Generator struct {
	cfg           Config
	rand          *rand.Rand
	nameFragments nameFragments
	used          map[string]struct{}
}

// New validates cfg and returns a Generator.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generator config: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &Generator{
		cfg:           cfg,
		rand:          rand.New(rand.NewSource(cfg.Seed)),
		nameFragments: defaultNameFragments(),
		used:          make(map[string]struct{}),
	}, nil
}

// Generate synthesises a network. Companies come first, then banks. Every
// company borrows from a random set of distinct banks; bank pairs are linked
// with probability InterbankChance. It respects context cancellation.
func (g *Generator) Generate(ctx context.Context) (dataset.Dataset, error) {
	ds := dataset.Dataset{Name: fmt.Sprintf("synthetic-%d", g.cfg.Seed)}

	companies := make([]string, g.cfg.Companies)
	for i := range companies {
		companies[i] = g.unique(g.randomCompanyName)
		ds.Vertices = append(ds.Vertices, dataset.VertexSpec{Label: companies[i], Type: string(network.NodeTypeCompany)})
	}
	banks := make([]string, g.cfg.Banks)
	for i := range banks {
		banks[i] = g.unique(g.randomBankName)
		ds.Vertices = append(ds.Vertices, dataset.VertexSpec{Label: banks[i], Type: string(network.NodeTypeBank)})
	}

	for _, company := range companies {
		if err := ctx.Err(); err != nil {
			return dataset.Dataset{}, err
		}
		count := g.cfg.MinBanksPerCompany
		if span := g.cfg.MaxBanksPerCompany - g.cfg.MinBanksPerCompany; span > 0 {
			count += g.rand.Intn(span + 1)
		}
		if count > len(banks) {
			count = len(banks)
		}
		for _, idx := range g.rand.Perm(len(banks))[:count] {
			ds.Edges = append(ds.Edges, g.edge(company, banks[idx]))
		}
	}

	for i := range banks {
		if err := ctx.Err(); err != nil {
			return dataset.Dataset{}, err
		}
		for j := i + 1; j < len(banks); j++ {
			if g.rand.Float64() < g.cfg.InterbankChance {
				ds.Edges = append(ds.Edges, g.edge(banks[i], banks[j]))
			}
		}
	}
	return ds, nil
}

func (g *Generator) edge(source, target string) dataset.EdgeSpec {
	spec := dataset.EdgeSpec{Source: source, Target: target}
	if g.cfg.Weighted {
		spec.Weight = g.cfg.MinWeight + g.rand.Intn(g.cfg.MaxWeight-g.cfg.MinWeight+1)
	}
	return spec
}

// unique draws names until one is unused, then numbers it if the fragment
// space is exhausted.
func (g *Generator) unique(draw func() string) string {
	for attempt := 0; attempt < 8; attempt++ {
		name := draw()
		if _, taken := g.used[name]; !taken {
			g.used[name] = struct{}{}
			return name
		}
	}
	base := draw()
	for n := 2; ; n++ {
		name := fmt.Sprintf("%s %d", base, n)
		if _, taken := g.used[name]; !taken {
			g.used[name] = struct{}{}
			return name
		}
	}
}

func (g *Generator) randomCompanyName() string {
	return fmt.Sprintf("%s %s %s",
		g.pick(g.nameFragments.prefixes),
		g.pick(g.nameFragments.industries),
		g.pick(g.nameFragments.companySuffix))
}

func (g *Generator) randomBankName() string {
	return fmt.Sprintf("%s %s %s",
		g.pick(g.nameFragments.bankAdjectives),
		g.pick(g.nameFragments.cities),
		g.pick(g.nameFragments.bankSuffix))
}

func (g *Generator) pick(options []string) string {
	return options[g.rand.Intn(len(options))]
}

type nameFragments struct {
	prefixes       []string
	industries     []string
	companySuffix  []string
	bankAdjectives []string
	cities         []string
	bankSuffix     []string
}

func defaultNameFragments() nameFragments {
	return nameFragments{
		prefixes:       []string{"Acme", "Northwind", "Blue Harbor", "Silverline", "Granite", "Evergreen", "Summit", "Redwood", "Atlas", "Bright"},
		industries:     []string{"Robotics", "Logistics", "Foods", "Energy", "Software", "Textiles", "Pharma", "Motors", "Media", "Retail"},
		companySuffix:  []string{"Inc", "Corp", "Group", "Holdings", "Ltd"},
		bankAdjectives: []string{"First", "United", "Federal", "Pacific", "Capital", "Republic", "Continental", "Citizens"},
		cities:         []string{"San Francisco", "New York", "Seattle", "Austin", "Chicago", "Miami", "Denver", "Boston", "Los Angeles"},
		bankSuffix:     []string{"Bank", "Savings", "Trust", "Bancorp", "Financial"},
	}
}
