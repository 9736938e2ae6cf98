package verbose

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEnableDisable tests the verbose logging toggle.
//
// It verifies:
//   - Messages are suppressed while disabled
//   - Messages carry the [DEBUG] prefix while enabled
func TestEnableDisable(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(os.Stderr)
	defer Disable()

	Disable()
	Printf("hidden %d", 1)
	assert.Empty(t, buf.String())
	assert.False(t, IsEnabled())

	Enable()
	assert.True(t, IsEnabled())

	Printf("shown %d", 2)
	Info("plain")
	Infof("formatted %s", "msg")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] shown 2")
	assert.Contains(t, out, "[DEBUG] plain")
	assert.Contains(t, out, "[DEBUG] formatted msg")
	assert.NotContains(t, out, "hidden")
}

// TestSetWriterNil tests that a nil writer is ignored.
//
// It verifies:
//   - Output continues to the previous writer after SetWriter(nil)
func TestSetWriterNil(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer Disable()

	SetWriter(nil)
	Enable()
	Info("still here")

	assert.Contains(t, buf.String(), "still here")
}
