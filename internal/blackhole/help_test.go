package blackhole

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintHelp(t *testing.T) {
	var buf bytes.Buffer
	PrintHelp(&buf)
	out := buf.String()
	assert.Contains(t, out, "controls")
	for _, b := range Bindings {
		assert.Contains(t, out, b.Keys)
		assert.Contains(t, out, b.Action)
	}
	// not a terminal: no escape sequences
	assert.NotContains(t, out, "\x1b[")
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	s := DefaultState()
	s.Jets = true
	PrintStatus(&buf, s)
	out := buf.String()
	assert.Contains(t, out, "Status")
	assert.Contains(t, out, "jets on")
	assert.Equal(t, len(s.Summary())+1, strings.Count(out, "\n"))
}
