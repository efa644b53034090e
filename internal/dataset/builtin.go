package dataset

import "github.com/vanshika/finnet/internal/network"

// BuiltinName identifies the compiled-in network.
const BuiltinName = "financial-network"

var (
	builtinCompanies = []string{"Apple", "Microsoft", "Amazon", "Google", "Facebook"}
	builtinBanks     = []string{"JP Morgan", "Bank of America", "Citigroup", "Wells Fargo", "Goldman Sachs"}
	builtinEdges     = [][2]string{
		{"Apple", "JP Morgan"}, {"Apple", "Citigroup"},
		{"Microsoft", "Bank of America"}, {"Microsoft", "Goldman Sachs"},
		{"Amazon", "JP Morgan"}, {"Amazon", "Wells Fargo"},
		{"Google", "Citigroup"}, {"Google", "Goldman Sachs"},
		{"Facebook", "Bank of America"}, {"Facebook", "Wells Fargo"},
		{"JP Morgan", "Bank of America"}, {"Citigroup", "Wells Fargo"},
		{"Goldman Sachs", "JP Morgan"},
	}
)

// Builtin returns the reference network of five companies and five banks.
// Its edges are unweighted.
func Builtin() Dataset {
	ds := Dataset{Name: BuiltinName}
	for _, label := range builtinCompanies {
		ds.Vertices = append(ds.Vertices, VertexSpec{Label: label, Type: string(network.NodeTypeCompany)})
	}
	for _, label := range builtinBanks {
		ds.Vertices = append(ds.Vertices, VertexSpec{Label: label, Type: string(network.NodeTypeBank)})
	}
	for _, pair := range builtinEdges {
		ds.Edges = append(ds.Edges, EdgeSpec{Source: pair[0], Target: pair[1]})
	}
	return ds
}
