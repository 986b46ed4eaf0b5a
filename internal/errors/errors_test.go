package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, Wrapf(nil, "ignored %d", 1))
	assert.NoError(t, WithStack(nil))
}

func TestWrap_KeepsChain(t *testing.T) {
	base := &codedError{code: "E1"}
	wrapped := Wrapf(Wrap(base, "inner"), "outer %s", "call")

	assert.Equal(t, "outer call: inner: E1", wrapped.Error())
	assert.True(t, Is(wrapped, base))

	got, ok := AsType[*codedError](wrapped)
	require.True(t, ok)
	assert.Same(t, base, got)
}

func TestStackTrace(t *testing.T) {
	assert.Empty(t, StackTrace(stderrors.New("plain")))
	assert.Empty(t, StackTrace(nil))

	trace := StackTrace(Wrap(New("boom"), "context"))
	assert.Contains(t, trace, "TestStackTrace")
}
