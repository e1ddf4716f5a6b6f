package graph

import (
	"context"
	_ "embed"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/josh-kwaku/bank-service/internal/logging"
)

//go:embed schema.graphql
var schemaSDL string

func NewSchema(r *Resolver, maxDepth int) (*graphql.Schema, error) {
	schema, err := graphql.ParseSchema(schemaSDL, r,
		graphql.MaxDepth(maxDepth),
		graphql.Logger(panicLogger{}),
	)
	if err != nil {
		return nil, fmt.Errorf("graph.NewSchema: %w", err)
	}
	return schema, nil
}

type panicLogger struct{}

func (panicLogger) LogPanic(ctx context.Context, value any) {
	logging.FromContext(ctx).Error("graphql resolver panic", "panic", value)
}
