package service

import (
	"errors"

	"github.com/vanshika/finnet/internal/network"
	"github.com/vanshika/finnet/internal/pathfind"
	"github.com/vanshika/finnet/internal/shortestpath"
)

// ErrInvalidInput marks a request the caller must fix (missing or malformed
// parameters).
var ErrInvalidInput = errors.New("invalid input")

// PathQuery asks for any path between two vertices.
type PathQuery struct {
	Algorithm pathfind.Algorithm `json:"algorithm"`
	From      string             `json:"from"`
	To        string             `json:"to"`
}

// PathResult is the answer to a PathQuery. Weight is the sum of the edge
// costs along Path.
type PathResult struct {
	Algorithm pathfind.Algorithm `json:"algorithm"`
	From      string             `json:"from"`
	To        string             `json:"to"`
	Found     bool               `json:"found"`
	Path      network.Path       `json:"path,omitempty"`
	Hops      int                `json:"hops"`
	Weight    int                `json:"weight"`
}

// ShortestPaths is every route out of one source.
type ShortestPaths struct {
	Source string               `json:"source"`
	Routes []shortestpath.Route `json:"routes"`
}
