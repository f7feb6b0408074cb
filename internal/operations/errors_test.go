package operations

import (
	"errors"
	"fmt"
	"github.com/litetable/litetable-analytics/internal/schema"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_newError(t *testing.T) {
	req := require.New(t)

	t.Run("test error wrapping", func(t *testing.T) {
		err := newError(ErrEmptyProjection, "test error")
		req.NotNil(err)
		req.Implements((*error)(nil), err)

		req.Equal(ErrEmptyProjection, err.err)
		req.True(errors.Is(err, ErrEmptyProjection))
	})

	t.Run("test error wrapping with context", func(t *testing.T) {
		err := newError(ErrTypeMismatch, "test error: %s", "context")
		req.NotNil(err)
		req.Implements((*error)(nil), err)

		req.Equal(ErrTypeMismatch, err.err)
		req.True(errors.Is(err, ErrTypeMismatch))
		req.Equal("type mismatch: test error: context", err.Error())
	})

	t.Run("empty context", func(t *testing.T) {
		err := &Error{err: ErrMissingRowKey}
		req.Equal("missing row key", err.Error())
	})
}

func TestIsInvalidArgument(t *testing.T) {
	tests := map[string]struct {
		err  error
		want bool
	}{
		"missing row key":        {err: newError(ErrMissingRowKey, "x"), want: true},
		"schema unknown column":  {err: fmt.Errorf("%w: bogus", schema.ErrUnknownColumn), want: true},
		"empty projection":       {err: newError(ErrEmptyProjection, "x"), want: true},
		"column family mismatch": {err: newError(ErrColumnFamilyMismatch, "x"), want: true},
		"non-finite number":      {err: newError(ErrInvalidNumber, "x"), want: true},
		"storage failure":        {err: errors.New("disk on fire")},
		"nil":                    {},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, IsInvalidArgument(tc.err))
		})
	}
}
