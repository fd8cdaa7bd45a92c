package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextFieldsAppearInLogs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &ZapLogger{logger: zap.New(core)}

	ctx := WithTraceID(context.Background(), "trace-1")
	ctx = WithOrderNumber(ctx, "PO1001")
	l.Infof(ctx, "order created")

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "trace-1", fields["trace_id"])
	assert.Equal(t, "PO1001", fields["order_number"])
}

func TestMissingContextFieldsOmitted(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &ZapLogger{logger: zap.New(core)}

	l.Infof(context.Background(), "plain message")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Context)
}
