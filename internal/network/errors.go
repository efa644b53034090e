package network

import "errors"

// Sentinel errors returned by Graph operations. Callers match them with
// errors.Is; the returned errors wrap them with the offending labels.
var (
	// ErrUnknownVertex indicates an operation referenced a label that is not
	// part of the graph.
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrDuplicateVertex is returned by AddVertex when the label already exists.
	ErrDuplicateVertex = errors.New("duplicate vertex")

	// ErrDuplicateEdge is returned when the two endpoints are already connected.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrSelfLoop is returned when both edge endpoints are the same vertex.
	ErrSelfLoop = errors.New("self-loop edges are not allowed")

	// ErrEdgeNotFound indicates the two vertices are not connected.
	ErrEdgeNotFound = errors.New("edge not found")

	// ErrInvalidWeight indicates a weight that is not a positive integer.
	ErrInvalidWeight = errors.New("edge weight must be positive")

	// ErrInvalidNodeType indicates a node type other than company or bank.
	ErrInvalidNodeType = errors.New("invalid node type")

	// ErrEmptyLabel is returned by AddVertex for an empty label.
	ErrEmptyLabel = errors.New("vertex label is required")

	// ErrFrozen is returned when the topology is modified after Freeze.
	ErrFrozen = errors.New("graph is frozen")
)
