package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct {
	code string
}

func (e *codedError) Error() string { return e.code }

func TestWrapKeepsCause(t *testing.T) {
	base := New("store unavailable")
	wrapped := Wrapf(Wrap(base, "find account"), "verify token %s", "abc")

	assert.True(t, Is(wrapped, base))
	assert.Equal(t, "verify token abc: find account: store unavailable", wrapped.Error())
	assert.True(t, Is(WithStack(base), base))
}

func TestStackIsRecorded(t *testing.T) {
	err := Errorf("unsupported jwt algorithm %q", "none")

	assert.Equal(t, `unsupported jwt algorithm "none"`, err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestStackIsRecorded")
	assert.Contains(t, fmt.Sprintf("%+v", Wrap(New("boom"), "migrate")), "TestStackIsRecorded")
}

func TestAsType(t *testing.T) {
	err := Wrap(&codedError{code: "INVALID_TOKEN"}, "authenticate")

	got, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, "INVALID_TOKEN", got.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}
