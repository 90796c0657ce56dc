package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestSpanName(t *testing.T) {
	assert.Equal(t, "db SELECT", spanName("  select id FROM jobs"))
	assert.Equal(t, "db INSERT", spanName("\n\tINSERT INTO skills"))
	assert.Equal(t, "db", spanName("   "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "SELECT 1 FROM x", truncate("SELECT 1\n\t FROM   x", 100))
	assert.Len(t, truncate(strings.Repeat("a ", 300), maxStatementAttr), maxStatementAttr)
}

func TestQueryTracer_NoProvider(t *testing.T) {
	var qt queryTracer
	ctx := qt.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	assert.NotPanics(t, func() {
		qt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("SELECT 1")})
		qt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: errors.New("boom")})
	})
}
