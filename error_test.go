package geoaudit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kimmoihanus/geoaudit"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := geoaudit.Errorf(geoaudit.EINVALID, "url %q is malformed", "nope")
	assert.Equal(t, geoaudit.EINVALID, geoaudit.ErrorCode(err))
	assert.Equal(t, `url "nope" is malformed`, geoaudit.ErrorMessage(err))
	assert.Equal(t, `geoaudit error: code=invalid message=url "nope" is malformed`, err.Error())
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", geoaudit.ErrorCode(nil))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, geoaudit.EINTERNAL, geoaudit.ErrorCode(errors.New("boom")))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", geoaudit.Errorf(geoaudit.ENOTFOUND, "missing"))
		assert.Equal(t, geoaudit.ENOTFOUND, geoaudit.ErrorCode(err))
		assert.Equal(t, "missing", geoaudit.ErrorMessage(err))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", geoaudit.ErrorMessage(nil))
	})

	t.Run("non-application error is masked", func(t *testing.T) {
		t.Parallel()
		msg := geoaudit.ErrorMessage(errors.New("secret detail"))
		assert.NotContains(t, msg, "secret detail")
	})
}
