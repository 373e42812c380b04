package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("theme.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "theme.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "theme.yaml:12")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("components.Table.variants.simple", "styles undeclared part \"tfoot\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "components.Table.variants.simple", validationErr.Field)
	require.Contains(t, validationErr.Message, "undeclared part")
}

func TestTokenNotFoundMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := NewTokenNotFoundError([]string{"colors", "brand", "500"}, "brand")

	require.ErrorIs(t, err, ErrTokenNotFound)
	require.Contains(t, err.Error(), "colors.brand.500")

	wrapped := fmt.Errorf("resolve color: %w", err)
	var notFound *TokenNotFoundError
	require.ErrorAs(t, wrapped, &notFound)
	require.Equal(t, "brand", notFound.Segment)
}

func TestMissingColorModeMatchesSentinel(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, NewMissingColorModeError(""), ErrMissingColorMode)
	require.Contains(t, NewMissingColorModeError("sepia").Error(), "sepia")
	require.False(t, stdErrors.Is(NewMissingColorModeError(""), ErrTokenNotFound))
}

func TestSourceErrorIncludesKind(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("connection refused")
	err := NewSourceError("http", "https://example.com/theme.yaml", underlying)

	var sourceErr *SourceError
	require.ErrorAs(t, err, &sourceErr)
	require.Equal(t, "http", sourceErr.Kind)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "[http]")
}
