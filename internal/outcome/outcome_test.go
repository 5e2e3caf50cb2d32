package outcome

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValueIsSuccess(t *testing.T) {
	var o Outcome
	assert.True(t, o.OK())
	assert.Equal(t, "success", o.String())
}

func TestFromError(t *testing.T) {
	assert.Equal(t, Ok(), FromError(nil))

	boom := errors.New("apt-get exited 100")
	got := FromError(boom)
	assert.Equal(t, Fatal, got.Kind)
	assert.ErrorIs(t, got.Err, boom)
	assert.False(t, got.OK())
}

func TestString(t *testing.T) {
	assert.Equal(t, "retryable failure: nmcli timed out", Retry(errors.New("nmcli timed out")).String())
	assert.Equal(t, "fatal failure: no interfaces", Fail(errors.New("no interfaces")).String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
