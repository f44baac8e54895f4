package cli

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var cliTracer = otel.Tracer("roto-draft/internal/interfaces/cli")
var noopSpan = trace.SpanFromContext(context.Background())

// startCommandSpan opens the root span of one command invocation.
func startCommandSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return cliTracer.Start(ctx, "cli."+name)
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, noopSpan
	}
	return cliTracer.Start(ctx, name)
}
