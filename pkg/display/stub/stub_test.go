package stub

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/display"
	"github.com/thelolagemann/sm83/pkg/log"
)

type host struct {
	*mmu.MMU
	vblanks int
	writes  []uint8
}

func (h *host) RequestVBlank() { h.vblanks++ }

func TestStub_FrameReady(t *testing.T) {
	m := mmu.New()
	h := &host{MMU: m}
	require.NoError(t, m.Hook(types.LY, func(_ uint16, v uint8) uint8 {
		h.writes = append(h.writes, v)
		return v
	}))

	var buf bytes.Buffer
	s := New(log.New(log.WithWriter(&buf), log.WithDebug(true)))
	require.NoError(t, s.Initialize(h))

	s.FrameReady()
	assert.Equal(t, []uint8{0, 148}, h.writes)
	ly, err := m.Read8(types.LY)
	require.NoError(t, err)
	assert.Equal(t, types.LYVBlank, ly)
	assert.Equal(t, 1, h.vblanks)
	assert.Equal(t, uint64(1), s.Frames())
	assert.Equal(t, "[DEBUG]\tDrawing!\n", buf.String())
	assert.NoError(t, s.Err())
	assert.NoError(t, s.Close())
}

func TestStub_OutOfRange(t *testing.T) {
	h := &host{MMU: mmu.New(mmu.WithSize(0x100))}
	s := New(nil)
	require.NoError(t, s.Initialize(h))

	s.FrameReady()
	assert.ErrorIs(t, s.Err(), mmu.ErrOutOfRange)
	assert.Equal(t, 0, h.vblanks)
}

func TestStub_Installed(t *testing.T) {
	assert.NotNil(t, display.GetDriver("stub"))
	assert.Contains(t, display.Names(), "stub")
}
