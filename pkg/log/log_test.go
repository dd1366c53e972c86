package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf))

	l.Infof("loaded %d bytes", 3)
	l.Errorf("unimplemented opcode 0x%02X", 0xD3)
	l.Debugf("hidden")

	assert.Equal(t, "[INFO]\tloaded 3 bytes\n[ERROR]\tunimplemented opcode 0xD3\n", buf.String())

	buf.Reset()
	l = New(WithWriter(&buf), WithDebug(true))
	l.Debugf("frame %d", 1)
	assert.Equal(t, "[DEBUG]\tframe 1\n", buf.String())
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	l.Infof("nothing")
	l.Errorf("nothing")
	l.Debugf("nothing")
	l.Fatal("nothing")
}
