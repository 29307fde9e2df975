package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/confmend/confmend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrFileAccess, "cannot read file")
	assert.Equal(t, "[FILE_ACCESS] cannot read file", err.Error())
	assert.Equal(t, errors.ErrFileAccess, errors.GetErrorCode(err))
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := errors.Wrap(cause, errors.ErrFileRemove, "removing variant")

	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "should vanish"))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrConfigParse, "bad value %q", "nope")
	wrapped := fmt.Errorf("loading config: %w", err)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrConfigParse))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrConfigLoad))
	assert.False(t, errors.IsErrorCode(fmt.Errorf("plain"), errors.ErrConfigParse))
}

func TestGetErrorCode_Unknown(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFileReplace, "replace failed").
		WithDetail("target", "/etc/foo.conf").
		WithDetail("source", "/etc/foo.conf.rpmnew")

	assert.Equal(t, "/etc/foo.conf", err.Details["target"])
	assert.Equal(t, "/etc/foo.conf.rpmnew", err.Details["source"])
}
