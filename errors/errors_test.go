package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "message only",
			err:      New(ErrUsage, "unexpected argument", ""),
			expected: "✗ unexpected argument\n",
		},
		{
			name:     "message and suggestion",
			err:      New(ErrConfig, "bad timeout", "Use a value like 2s"),
			expected: "✗ bad timeout\n\n  Use a value like 2s\n",
		},
		{
			name:     "cause and suggestion",
			err:      WrapWithCode(fmt.Errorf("statfs: no such file"), ErrProbe, "Storage query failed", "Check TDASH_STORAGE_PATH"),
			expected: "✗ Storage query failed\n\n  statfs: no such file\n\n  Check TDASH_STORAGE_PATH\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestWrapWithCode_Unwraps(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := WrapWithCode(cause, ErrProbe, "memory query failed", "")

	assert.Equal(t, ErrProbe, err.Code)
	assert.True(t, errors.Is(err, cause))
}

func TestIsCode(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", New(ErrRender, "write failed", ""))

	assert.True(t, IsCode(wrapped, ErrRender))
	assert.False(t, IsCode(wrapped, ErrConfig))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrRender))
	assert.False(t, IsCode(nil, ErrRender))
}
