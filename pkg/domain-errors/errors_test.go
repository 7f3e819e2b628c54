package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapAndHasCode(t *testing.T) {
	root := errors.New("connection refused")

	t.Run("wrap nil returns nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "ignored"))
	})

	t.Run("finds nested codes", func(t *testing.T) {
		inner := Wrap(root, CodeBadGateway, "core api unavailable")
		outer := Wrap(inner, CodeInternal, "list customers")

		assert.True(t, HasCode(outer, CodeInternal))
		assert.True(t, HasCode(outer, CodeBadGateway))
		assert.False(t, HasCode(outer, CodeNotFound))
		assert.ErrorIs(t, outer, root)
	})

	t.Run("survives fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", New(CodeValidation, "notes are required"))
		assert.True(t, HasCode(err, CodeValidation))
		assert.Equal(t, CodeValidation, CodeOf(err))
		assert.Equal(t, "notes are required", MessageOf(err))
	})

	t.Run("plain errors default to internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(root))
		assert.Equal(t, "connection refused", MessageOf(root))
	})
}

func TestErrorString(t *testing.T) {
	err := Wrap(errors.New("boom"), CodeInternal, "failed")
	require.Error(t, err)
	assert.Equal(t, "internal_error: failed: boom", err.Error())
	assert.Equal(t, "not_found: missing", New(CodeNotFound, "missing").Error())
}
