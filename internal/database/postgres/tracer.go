package postgres

import (
	"context"
	"strings"

	"staff-match/internal/telemetry"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var dbTracer = telemetry.GetTracer("staff-match/postgres")

const maxStatementAttr = 256

// queryTracer opens one client span per statement. With no tracer provider
// installed the spans are no-ops.
type queryTracer struct{}

func (queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	ctx, _ = dbTracer.Start(ctx, spanName(data.SQL),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.String("db.system", "postgresql"),
			telemetry.String("db.statement", truncate(data.SQL, maxStatementAttr)),
		),
	)
	return ctx
}

func (queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	span := trace.SpanFromContext(ctx)
	defer span.End()
	if data.Err != nil {
		span.RecordError(data.Err)
		span.SetStatus(codes.Error, data.Err.Error())
		return
	}
	span.SetAttributes(telemetry.Int("db.rows_affected", int(data.CommandTag.RowsAffected())))
}

// spanName is the leading SQL keyword, e.g. "db SELECT".
func spanName(sql string) string {
	f := strings.Fields(sql)
	if len(f) == 0 {
		return "db"
	}
	return "db " + strings.ToUpper(f[0])
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= n {
		return s
	}
	return s[:n]
}
