// Package graphdb is the thin Cypher access layer used to read seed road
// networks from, and ingest them into, a Neo4j compatible database.
package graphdb

import (
	"context"
	"errors"
)

// Client is the contract the repository needs from a graph database.
type Client interface {
	ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (Result, error)
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Result holds the records of one query.
type Result struct {
	Records []Record
}

// Record maps the keys of a RETURN clause to their values.
type Record map[string]any

// Options configures a Client.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// ErrMissingURI indicates the graph URI is not provided.
var ErrMissingURI = errors.New("graph URI is required")
