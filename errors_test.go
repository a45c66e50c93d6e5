package alfrusco

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type badGateway struct{}

func (badGateway) Error() string { return "bad gateway" }

func (badGateway) ErrorItem() *Item {
	return NewItem("The upstream service is down").Valid(false)
}

func TestErrorItemUsesCustomPresentation(t *testing.T) {
	t.Parallel()

	it := errorItem(badGateway{})
	assert.Equal(t, "The upstream service is down", it.Title)
}

func TestErrorItemDefaultPresentation(t *testing.T) {
	t.Parallel()

	it := errorItem(errors.New("connection refused"))
	assert.Equal(t, "Error: connection refused", it.Title)
	assert.NotEmpty(t, it.Subtitle)
	require.NotNil(t, it.IsValid)
	assert.False(t, *it.IsValid)
}

func TestDefaultErrorUnwraps(t *testing.T) {
	t.Parallel()

	inner := errors.New("root cause")
	wrapped := DefaultError{Err: fmt.Errorf("fetching: %w", inner)}
	assert.True(t, errors.Is(wrapped, inner))
}
