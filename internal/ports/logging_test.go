package ports

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var uuidV4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestCorrelationIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithCorrelationID(context.Background(), "abc-123")
	require.Equal(t, "abc-123", GetCorrelationID(ctx))
	require.Empty(t, GetCorrelationID(context.Background()))

	require.Equal(t, "abc-123", GetCorrelationID(WithCorrelationID(ctx, "")))
}

func TestGenerateCorrelationID(t *testing.T) {
	t.Parallel()

	first := GenerateCorrelationID()
	second := GenerateCorrelationID()
	require.Regexp(t, uuidV4, first)
	require.Regexp(t, uuidV4, second)
	require.NotEqual(t, first, second)
}
