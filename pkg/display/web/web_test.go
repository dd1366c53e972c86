package web

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/display"
)

type host struct{ *mmu.MMU }

func (host) RequestVBlank() {}

func newTestDriver(t *testing.T, opts ...Opt) (*Driver, *mmu.MMU) {
	t.Helper()
	m := mmu.New()
	d := New(append([]Opt{WithAddr("127.0.0.1:0")}, opts...)...)
	d.InfoInterval = time.Hour
	require.NoError(t, d.Initialize(host{m}))
	t.Cleanup(func() { _ = d.Close() })
	return d, m
}

func dial(t *testing.T, d *Driver) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws://"+d.ListenAddr()+"/", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// next reads the next message that is not a ServerInfo message.
func next(t *testing.T, conn *websocket.Conn) []byte {
	t.Helper()
	for {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		if len(msg) > 0 && msg[0] == ServerInfo {
			continue
		}
		return msg
	}
}

func TestDriver_Stream(t *testing.T) {
	d, m := newTestDriver(t, WithCompression(false, 0))
	conn := dial(t, d)

	assert.Equal(t, []byte{ClientInfo, types.Bit1, 0, 1}, next(t, conn))

	require.NoError(t, m.Write8(types.VRAMStart, 0xAA))
	d.FrameReady()
	msg := next(t, conn)
	require.Len(t, msg, 3+vramSize)
	assert.Equal(t, Frame, msg[0])
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(msg[1:]))
	assert.Equal(t, uint8(0xAA), msg[3])

	// an unchanged frame is only counted
	d.FrameReady()
	require.NoError(t, m.Write8(types.VRAMStart, 0xBB))
	d.FrameReady()
	msg = next(t, conn)
	assert.Equal(t, FrameSkip, msg[0])
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(msg[1:]))
	msg = next(t, conn)
	assert.Equal(t, Frame, msg[0])
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(msg[1:]))
	assert.Equal(t, uint8(0xBB), msg[3])

	// a frame seen before travels as its cache index
	require.NoError(t, m.Write8(types.VRAMStart, 0xAA))
	d.FrameReady()
	assert.Equal(t, []byte{FrameCache, 0, 0}, next(t, conn))

	assert.Equal(t, uint64(3), d.Sent())
}

func TestDriver_FrameSync(t *testing.T) {
	d, m := newTestDriver(t, WithCompression(true, 5))
	first := dial(t, d)
	assert.Equal(t, []byte{ClientInfo, types.Bit0 | types.Bit1, 5, 1}, next(t, first))

	require.NoError(t, m.Write8(types.VRAMEnd, 0x42))
	d.FrameReady()
	frame := next(t, first)
	require.Equal(t, Frame, frame[0])

	second := dial(t, d)
	assert.Equal(t, []byte{ClientInfo, types.Bit0 | types.Bit1, 5, 2}, next(t, second))
	sync := next(t, second)
	assert.Equal(t, FrameSync, sync[0])
	assert.Equal(t, frame[3:], sync[1:])

	vram, err := io.ReadAll(brotli.NewReader(bytes.NewReader(sync[1:])))
	require.NoError(t, err)
	require.Len(t, vram, vramSize)
	assert.Equal(t, uint8(0x42), vram[vramSize-1])
}

func TestDriver_Settings(t *testing.T) {
	d, _ := newTestDriver(t)
	conn := dial(t, d)
	next(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{systemMessage, Compression, 0}))
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{systemMessage, FrameSkipping, 0}))
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{systemMessage, CompressionLevel, 9}))
	assert.Eventually(t, func() bool {
		compression, quality, skipping := d.hub.settings()
		return !compression && quality == 9 && !skipping
	}, 5*time.Second, 10*time.Millisecond)
}

func TestEncode(t *testing.T) {
	frame := bytes.Repeat([]byte{1, 2, 3, 4}, vramSize/4)

	raw, err := encode(frame, false, 0)
	require.NoError(t, err)
	assert.Equal(t, frame, raw)

	compressed, err := encode(frame, true, 11)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(frame))
	out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(compressed)))
	require.NoError(t, err)
	assert.Equal(t, frame, out)
}

func TestCache(t *testing.T) {
	c := newCache(2)
	assert.False(t, c.has(1))
	assert.Equal(t, 0, c.add(1, []byte{1}))
	assert.Equal(t, 1, c.add(2, []byte{2}))
	assert.Equal(t, 1, c.index(2))

	// the oldest entry is evicted
	assert.Equal(t, 0, c.add(3, []byte{3}))
	assert.False(t, c.has(1))
	assert.True(t, c.has(3))

	disabled := newCache(0)
	assert.Equal(t, -1, disabled.add(1, []byte{1}))
	assert.False(t, disabled.has(1))
}

func TestDriver_CloseUninitialized(t *testing.T) {
	assert.NoError(t, New().Close())
}

func TestDriver_Installed(t *testing.T) {
	assert.NotNil(t, display.GetDriver("web"))
}
