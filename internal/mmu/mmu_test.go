package mmu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMMU_ReadWrite(t *testing.T) {
	m := New()
	assert.Equal(t, DefaultSize, m.Size())

	for _, addr := range []uint16{0x0000, 0x0100, 0x8000, 0xC000, 0xFF44, 0xFFFF} {
		require.NoError(t, m.Write8(addr, 0xA5))
		v, err := m.Read8(addr)
		require.NoError(t, err)
		assert.Equal(t, uint8(0xA5), v, "address %04X", addr)
	}
}

func TestMMU_Read8Signed(t *testing.T) {
	m := New()
	table := []struct {
		raw  uint8
		want int8
	}{
		{0x00, 0},
		{0x01, 1},
		{0x7F, 127},
		{0x80, -128},
		{0xFE, -2},
		{0xFF, -1},
	}
	for _, entry := range table {
		require.NoError(t, m.Write8(0xC000, entry.raw))
		v, err := m.Read8Signed(0xC000)
		require.NoError(t, err)
		assert.Equal(t, entry.want, v, "raw %02X", entry.raw)
	}
}

func TestMMU_Read16(t *testing.T) {
	m := New()
	require.NoError(t, m.Write8(0xC000, 0x34))
	require.NoError(t, m.Write8(0xC001, 0x12))

	v, err := m.Read16(0xC000)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v)

	t.Run("top of address space reads scratch", func(t *testing.T) {
		require.NoError(t, m.Write8(0xFFFF, 0xCD))
		v, err := m.Read16(0xFFFF)
		require.NoError(t, err)
		assert.Equal(t, uint16(0x00CD), v)
	})
}

func TestMMU_OutOfRange(t *testing.T) {
	m := New(WithSize(0x100))

	_, err := m.Read8(0x0100)
	assert.ErrorIs(t, err, ErrOutOfRange)

	var oor *OutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, uint32(0x0100), oor.Address)
	assert.Equal(t, 0x100, oor.Size)

	_, err = m.Read8Signed(0x0200)
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.ErrorIs(t, m.Write8(0x8000, 1), ErrOutOfRange)

	// the second byte of a 16-bit read is past the end
	_, err = m.Read16(0x00FF)
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, uint32(0x0100), oor.Address)

	// last byte is still addressable
	assert.NoError(t, m.Write8(0x00FF, 1))
}

func TestMMU_Load(t *testing.T) {
	m := New(WithSize(0x10))
	require.NoError(t, m.Load([]byte{0x3E, 0x05, 0x3C}))

	for i, want := range []uint8{0x3E, 0x05, 0x3C, 0x00} {
		v, err := m.Read8(uint16(i))
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	assert.ErrorIs(t, m.Load(make([]byte, 0x11)), ErrOutOfRange)
	assert.NoError(t, m.Load(nil))
}

func TestMMU_Hook(t *testing.T) {
	m := New()

	var seen []uint8
	require.NoError(t, m.Hook(0xFF0F, func(address uint16, value uint8) uint8 {
		assert.Equal(t, uint16(0xFF0F), address)
		seen = append(seen, value)
		return value | 0xE0
	}))

	require.NoError(t, m.Write8(0xFF0F, 0x01))
	v, _ := m.Read8(0xFF0F)
	assert.Equal(t, uint8(0xE1), v)
	assert.Equal(t, []uint8{0x01}, seen)

	// hooks do not fire on loads
	require.NoError(t, m.Load(make([]byte, 0x10000)))
	assert.Len(t, seen, 1)

	assert.ErrorIs(t, m.Hook(0x8000, nil), ErrNotHookable)
}

func TestMMU_Copy(t *testing.T) {
	m := New()
	for i := 0; i < 4; i++ {
		require.NoError(t, m.Write8(0x8000+uint16(i), uint8(i+1)))
	}

	dst := make([]byte, 4)
	require.NoError(t, m.Copy(dst, 0x8000))
	assert.Equal(t, []byte{1, 2, 3, 4}, dst)

	small := New(WithSize(2))
	assert.ErrorIs(t, small.Copy(dst, 0), ErrOutOfRange)
}
