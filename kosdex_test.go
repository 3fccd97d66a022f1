package kosdex_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kspcapcom/kosdex"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := kosdex.Errorf(kosdex.ENOTFOUND, "page %q not cached", "test")

	assert.Equal(t, kosdex.ENOTFOUND, kosdex.ErrorCode(err))
	assert.Equal(t, "page \"test\" not cached", kosdex.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, kosdex.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, kosdex.ErrorMessage(nil))
}

func TestErrorCode_UnknownError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, kosdex.EINTERNAL, kosdex.ErrorCode(errors.New("boom")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	inner := kosdex.Errorf(kosdex.EINVALID, "empty HTML input")
	wrapped := fmt.Errorf("parse page: %w", inner)

	assert.Equal(t, kosdex.EINVALID, kosdex.ErrorCode(wrapped))
	assert.Equal(t, "empty HTML input", kosdex.ErrorMessage(wrapped))
}
