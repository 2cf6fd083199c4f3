package errors

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

var _ net.Error = timeoutErr{}

func TestIsTimeout(t *testing.T) {
	assert.False(t, IsTimeout(nil))
	assert.True(t, IsTimeout(context.DeadlineExceeded))
	assert.True(t, IsTimeout(Wrap(context.DeadlineExceeded, "send sms")))
	assert.True(t, IsTimeout(Wrap(timeoutErr{}, "dial")))
	assert.False(t, IsTimeout(New("boom")))
	assert.False(t, IsTimeout(context.Canceled))
}

func TestIsCanceled(t *testing.T) {
	assert.True(t, IsCanceled(Wrap(context.Canceled, "trigger aborted")))
	assert.False(t, IsCanceled(context.DeadlineExceeded))
}
