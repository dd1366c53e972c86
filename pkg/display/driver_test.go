package display

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDriver struct{ noneDriver }

func withDrivers(t *testing.T) {
	saved := InstalledDrivers
	InstalledDrivers = nil
	t.Cleanup(func() { InstalledDrivers = saved })
}

func TestInstall(t *testing.T) {
	withDrivers(t)
	assert.Nil(t, GetDriver("auto"))

	a, b := &fakeDriver{}, &fakeDriver{}
	Install("a", a, nil)
	Install("b", b, nil)

	assert.Same(t, a, GetDriver("a").(*fakeDriver))
	assert.Same(t, b, GetDriver("b").(*fakeDriver))
	assert.Nil(t, GetDriver("c"))
	assert.NotNil(t, GetDriver("auto"))
	assert.Equal(t, []string{"a", "b"}, Names())

	assert.Panics(t, func() { Install("a", a, nil) })
}

func TestRegisterFlags(t *testing.T) {
	withDrivers(t)

	var addrA, addrB, dir string
	var every int
	var quality float64
	var verbose bool
	Install("a", &fakeDriver{}, []DriverOption{
		{Name: "addr", Default: ":8090", Value: &addrA, Description: "listen address", Type: "string"},
		{Name: "every", Default: 60, Value: &every, Description: "frames", Type: "int"},
		{Name: "verbose", Default: false, Value: &verbose, Description: "verbose", Type: "bool"},
	})
	Install("b", &fakeDriver{}, []DriverOption{
		{Name: "addr", Default: ":8090", Value: &addrB, Description: "listen address", Type: "string"},
		{Name: "dir", Default: "out", Value: &dir, Description: "output directory", Type: "string"},
		{Name: "quality", Default: 0.5, Value: &quality, Description: "quality", Type: "float"},
	})

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	RegisterFlags(fs)

	// shared options keep their name and start at the default
	assert.Equal(t, ":8090", addrA)
	assert.Equal(t, ":8090", addrB)
	assert.NotNil(t, fs.Lookup("addr"))
	assert.NotNil(t, fs.Lookup("a-every"))
	assert.NotNil(t, fs.Lookup("b-dir"))

	require.NoError(t, fs.Parse([]string{"-addr", ":9000", "-a-every", "5", "-b-dir", "tmp", "-b-quality", "0.25", "-a-verbose"}))
	assert.Equal(t, ":9000", addrA)
	assert.Equal(t, ":9000", addrB)
	assert.Equal(t, 5, every)
	assert.Equal(t, "tmp", dir)
	assert.Equal(t, 0.25, quality)
	assert.True(t, verbose)
}

func TestMultiValue(t *testing.T) {
	var x, y bool
	m := &multiValue{values: []any{&x, &y}, defaultValue: false}
	assert.True(t, m.IsBoolFlag())
	require.NoError(t, m.Set("true"))
	assert.True(t, x)
	assert.True(t, y)
	assert.Error(t, m.Set("maybe"))

	var i int
	m = &multiValue{values: []any{&i}, defaultValue: 3}
	assert.Equal(t, "3", m.String())
	assert.Error(t, m.Set("three"))
}
