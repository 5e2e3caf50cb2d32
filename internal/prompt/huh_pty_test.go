//go:build !windows

package prompt

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chooseWithKeys runs a real select form fed with raw key bytes.
func chooseWithKeys(t *testing.T, keyBytes []byte) (int, error) {
	t.Helper()

	inputR, inputW := io.Pipe()
	t.Cleanup(func() { _ = inputR.Close() })
	t.Cleanup(func() { _ = inputW.Close() })

	p := &HuhPrompter{
		isTerminal:  func() bool { return true },
		programOpts: []tea.ProgramOption{tea.WithInput(inputR), tea.WithOutput(io.Discard)},
	}

	go func() {
		// Let the program start before the first key arrives.
		time.Sleep(50 * time.Millisecond)
		_, _ = inputW.Write(keyBytes)
		time.Sleep(350 * time.Millisecond)
		_ = inputW.Close()
	}()

	type result struct {
		index int
		err   error
	}
	ch := make(chan result, 1)
	go func() {
		index, err := p.Choose("Role:", roles)
		ch <- result{index, err}
	}()

	select {
	case r := <-ch:
		return r.index, r.err
	case <-time.After(5 * time.Second):
		t.Fatal("form did not exit within timeout")
		return 0, nil
	}
}

func TestPTYSelectSecondOption(t *testing.T) {
	index, err := chooseWithKeys(t, []byte("j\r"))
	require.NoError(t, err)
	assert.Equal(t, 1, index)
}

func TestPTYCtrlCIsNoAnswer(t *testing.T) {
	_, err := chooseWithKeys(t, []byte{0x03})
	assert.ErrorIs(t, err, ErrNoAnswer)
}
