// Package tiles provides a display driver that periodically dumps the
// tile data held in video RAM to PNG images.
package tiles

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/display"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Driver is the tiles display driver.
type Driver struct {
	Dir   string // directory images are written to
	Every int    // frames between images
	Scale int    // pixel size of the written images

	host    display.Host
	log     log.Logger
	frames  uint64
	written []string
	err     error
}

// New returns a Driver writing to dir every 60 frames, doubling the
// size of the sheet.
func New(dir string, l log.Logger) *Driver {
	return &Driver{Dir: dir, Every: 60, Scale: 2, log: l}
}

// SetLogger sets the driver's logger.
func (d *Driver) SetLogger(l log.Logger) {
	d.log = l
}

// Initialize creates the output directory.
func (d *Driver) Initialize(host display.Host) error {
	if d.log == nil {
		d.log = log.NewNullLogger()
	}
	if d.Every < 1 {
		return fmt.Errorf("tiles: invalid frame interval %d", d.Every)
	}
	if d.Scale < 1 {
		return fmt.Errorf("tiles: invalid scale %d", d.Scale)
	}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return err
	}
	d.host = host
	return nil
}

// FrameReady writes an image of the tile data every Every frames.
func (d *Driver) FrameReady() {
	d.frames++
	if d.frames%uint64(d.Every) != 0 {
		return
	}
	if err := d.capture(); err != nil {
		if d.err == nil {
			d.log.Errorf("tiles: %v", err)
		}
		d.err = err
	}
}

func (d *Driver) capture() error {
	data := make([]byte, tileCount*tileBytes)
	if err := d.host.Copy(data, types.VRAMStart); err != nil {
		return err
	}

	var img image.Image = Sheet(data)
	if d.Scale > 1 {
		b := img.Bounds()
		scaled := image.NewGray(image.Rect(0, 0, b.Dx()*d.Scale, b.Dy()*d.Scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
		img = scaled
	}

	name := filepath.Join(d.Dir, fmt.Sprintf("tiles_%06d.png", d.frames))
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	d.written = append(d.written, name)
	d.log.Debugf("tiles: wrote %s", name)
	return nil
}

// Written returns the paths of the images written so far.
func (d *Driver) Written() []string {
	return d.written
}

// Err returns the last error raised while writing an image.
func (d *Driver) Err() error {
	return d.err
}

// Close implements display.Driver.
func (d *Driver) Close() error {
	return nil
}

func init() {
	d := New("tiles", nil)
	display.Install("tiles", d, []display.DriverOption{
		{Name: "dir", Default: "tiles", Value: &d.Dir, Description: "directory tile sheets are written to", Type: "string"},
		{Name: "every", Default: 60, Value: &d.Every, Description: "frames between tile sheets", Type: "int"},
		{Name: "scale", Default: 2, Value: &d.Scale, Description: "tile sheet scale", Type: "int"},
	})
}
