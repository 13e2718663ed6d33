package xerr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	env := New(CodeLengthMismatch, "sequences must have equal length")

	assert.Equal(t, CodeLengthMismatch, env.Code)
	assert.Equal(t, "sequences must have equal length", env.Message)
	assert.NotEmpty(t, env.CorrelationID)
	assert.Equal(t, SeverityMedium, env.Severity)

	_, err := time.Parse(time.RFC3339, env.Timestamp)
	require.NoError(t, err)
}

func TestWithSeverity(t *testing.T) {
	env := New(CodeInvalidWeights, "test").WithSeverity(SeverityHigh)

	assert.Equal(t, SeverityHigh, env.Severity)
	assert.Equal(t, 3, env.SeverityLevel)
}

func TestWithDetails(t *testing.T) {
	env := New(CodeInvalidSlice, "bad slice").WithDetails(map[string]any{"step": 0})

	assert.Equal(t, 0, env.Details["step"])
}

func TestError(t *testing.T) {
	env := New(CodeInvalidEditops, "subsequence not contained")
	assert.Contains(t, env.Error(), string(CodeInvalidEditops))
	assert.Contains(t, env.Error(), "subsequence not contained")
}

func TestNewf(t *testing.T) {
	env := Newf(CodeLengthMismatch, "got %d and %d", 3, 5)
	assert.Equal(t, "got 3 and 5", env.Message)
}
