package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "catalog-bridge/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapf(t *testing.T) {
	t.Run("NilPassthrough", func(t *testing.T) {
		assert.NoError(t, apperrors.Wrapf(nil, "list brands"))
	})

	t.Run("KeepsChainAndContext", func(t *testing.T) {
		cause := fmt.Errorf("%w: connection refused", apperrors.ErrTransport)

		err := apperrors.Wrapf(cause, "list %s products", "base")
		require.Error(t, err)
		assert.Equal(t, "list base products: transport failure: connection refused", err.Error())
		assert.ErrorIs(t, err, apperrors.ErrTransport)
	})

	t.Run("DualWrapMatchesBothSentinels", func(t *testing.T) {
		cause := errors.New("eof")
		err := fmt.Errorf("action: %w: %w", apperrors.ErrParse, cause)

		assert.ErrorIs(t, err, apperrors.ErrParse)
		assert.ErrorIs(t, err, cause)
	})
}
