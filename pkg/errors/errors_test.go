// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/Nusiq/custom-project-filter-src/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "config_load_error",
			code:    errors.ErrConfigLoad,
			message: "unable to read config",
			wantStr: "[CONFIG_LOAD] unable to read config",
		},
		{
			name:    "dir_read_error",
			code:    errors.ErrDirRead,
			message: "failed to read directory",
			wantStr: "[DIR_READ] failed to read directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("wraps_underlying_error", func(t *testing.T) {
		cause := stderrors.New("permission denied")
		err := errors.Wrapf(cause, errors.ErrFileCopy, "failed to copy %q", "foo.lang")

		assert.Equal(t, `[FILE_COPY] failed to copy "foo.lang": permission denied`, err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("nil_error_returns_nil", func(t *testing.T) {
		require.Nil(t, errors.Wrap(nil, errors.ErrFileCopy, "ignored"))
		require.Nil(t, errors.Wrapf(nil, errors.ErrFileCopy, "ignored %d", 1))
	})
}

func TestIs(t *testing.T) {
	err := errors.New(errors.ErrConfigParse, "bad json")
	target := errors.New(errors.ErrConfigParse, "different message")

	assert.ErrorIs(t, err, target)
	assert.NotErrorIs(t, err, errors.New(errors.ErrConfigLoad, "bad json"))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Wrapf(stderrors.New("io"), errors.ErrDirCreate, "mkdir BP/entities")

	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	assert.False(t, errors.IsErrorCode(err, errors.ErrFileCopy))
	assert.False(t, errors.IsErrorCode(stderrors.New("other"), errors.ErrDirCreate))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrConfigValid, errors.GetErrorCode(errors.New(errors.ErrConfigValid, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFileExists, "destination exists").
		WithDetail("target", "RP/textures/foo.png")

	assert.Equal(t, "RP/textures/foo.png", err.Details["target"])
}
