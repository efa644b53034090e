package graph

import (
	"context"
	"sync"
)

// MemoryClient is an in-memory implementation of Client used to test
// repository logic without a running graph database. Results are registered
// per cypher statement; a statement without a registered result returns an
// empty Result.
type MemoryClient struct {
	mu           sync.Mutex
	writeCalls   []ExecutedQuery
	readCalls    []ExecutedQuery
	results      map[string]Result
	failing      map[string]error
	err          error
	connectivity error
	closed       bool
	committed    int
	rolledBack   int
}

// ExecutedQuery captures a cypher statement and parameters executed against the graph.
type ExecutedQuery struct {
	Query  string
	Params map[string]any
}

// NewMemoryClient instantiates an empty in-memory client.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		results: make(map[string]Result),
		failing: make(map[string]error),
	}
}

// WithError configures the client to return err for every statement.
func (m *MemoryClient) WithError(err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// WithConnectivityError forces VerifyConnectivity to return the supplied error.
func (m *MemoryClient) WithConnectivityError(err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectivity = err
	return m
}

// SetResult registers the records returned whenever cypher runs.
func (m *MemoryClient) SetResult(cypher string, res Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[cypher] = res
}

// FailOn makes every execution of cypher return err.
func (m *MemoryClient) FailOn(cypher string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing[cypher] = err
}

func (m *MemoryClient) ExecuteWrite(_ context.Context, cypher string, params map[string]any) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeCalls = append(m.writeCalls, ExecutedQuery{Query: cypher, Params: cloneMap(params)})
	return m.resultFor(cypher)
}

// ExecuteWriteTx records each statement as a write call and stops at the
// first failure, counting the transaction as rolled back.
func (m *MemoryClient) ExecuteWriteTx(_ context.Context, statements ...Statement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, stmt := range statements {
		m.writeCalls = append(m.writeCalls, ExecutedQuery{Query: stmt.Cypher, Params: cloneMap(stmt.Params)})
		if _, err := m.resultFor(stmt.Cypher); err != nil {
			m.rolledBack++
			return err
		}
	}
	m.committed++
	return nil
}

func (m *MemoryClient) ExecuteRead(_ context.Context, cypher string, params map[string]any) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readCalls = append(m.readCalls, ExecutedQuery{Query: cypher, Params: cloneMap(params)})
	return m.resultFor(cypher)
}

func (m *MemoryClient) resultFor(cypher string) (Result, error) {
	if m.err != nil {
		return Result{}, m.err
	}
	if err, ok := m.failing[cypher]; ok {
		return Result{}, err
	}
	return m.results[cypher], nil
}

func (m *MemoryClient) VerifyConnectivity(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connectivity
}

func (m *MemoryClient) Close(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (m *MemoryClient) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Transactions reports how many ExecuteWriteTx calls committed and how many
// rolled back.
func (m *MemoryClient) Transactions() (committed, rolledBack int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.committed, m.rolledBack
}

// WriteCalls returns a snapshot of executed write queries.
func (m *MemoryClient) WriteCalls() []ExecutedQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ExecutedQuery(nil), m.writeCalls...)
}

// ReadCalls returns a snapshot of executed read queries.
func (m *MemoryClient) ReadCalls() []ExecutedQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ExecutedQuery(nil), m.readCalls...)
}

func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
