//go:build !windows

package winsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnsureRunningUnsupported(t *testing.T) {
	state, err := EnsureRunning(t.Context(), "winmgmt", time.Second)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, NotRunning, state)
}
