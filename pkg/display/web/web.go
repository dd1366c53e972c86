// Package web provides a display driver that streams video RAM to
// websocket clients. Frames are deduplicated by hash, cached so repeat
// frames travel as an index, and brotli compressed.
package web

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"

	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/display"
	"github.com/thelolagemann/sm83/pkg/log"
)

const vramSize = int(types.VRAMEnd-types.VRAMStart) + 1

// Driver is the web display driver.
type Driver struct {
	Addr         string
	Compression  bool
	Quality      int
	CacheSize    int
	InfoInterval time.Duration

	host     display.Host
	log      log.Logger
	hub      *hub
	server   *http.Server
	listener net.Listener

	frames  chan []byte
	done    chan struct{}
	closed  atomic.Bool
	dropped atomic.Uint64
	sent    atomic.Uint64
	once    sync.Once
}

// Opt configures a Driver.
type Opt func(d *Driver)

// WithAddr sets the address the driver listens on.
func WithAddr(addr string) Opt {
	return func(d *Driver) {
		d.Addr = addr
	}
}

// WithCompression sets whether frames are brotli compressed, and at
// which quality (0-11).
func WithCompression(enabled bool, quality int) Opt {
	return func(d *Driver) {
		d.Compression = enabled
		d.Quality = quality
	}
}

// WithCacheSize sets how many frames are remembered. 0 disables the
// cache.
func WithCacheSize(size int) Opt {
	return func(d *Driver) {
		d.CacheSize = size
	}
}

// WithLogger sets the driver's logger.
func WithLogger(l log.Logger) Opt {
	return func(d *Driver) {
		d.log = l
	}
}

// SetLogger sets the driver's logger.
func (d *Driver) SetLogger(l log.Logger) {
	d.log = l
}

// New returns a Driver listening on :8090.
func New(opts ...Opt) *Driver {
	d := &Driver{
		Addr:         ":8090",
		Compression:  true,
		Quality:      brotli.DefaultCompression,
		CacheSize:    16,
		InfoInterval: time.Second,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Initialize starts the websocket server.
func (d *Driver) Initialize(host display.Host) error {
	if d.log == nil {
		d.log = log.NewNullLogger()
	}
	l, err := net.Listen("tcp", d.Addr)
	if err != nil {
		return err
	}

	d.host = host
	d.listener = l
	d.hub = newHub(d.log, d.Compression, d.Quality)
	d.server = &http.Server{Handler: d.hub, ReadHeaderTimeout: 5 * time.Second}
	d.frames = make(chan []byte, 4)
	d.done = make(chan struct{})

	go d.hub.run(d.InfoInterval)
	go d.stream()
	go func() {
		if err := d.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			d.log.Errorf("web: serving: %v", err)
		}
	}()
	d.log.Infof("web: listening on %s", l.Addr())
	return nil
}

// ListenAddr returns the address the driver is listening on, once
// initialized.
func (d *Driver) ListenAddr() string {
	if d.listener == nil {
		return ""
	}
	return d.listener.Addr().String()
}

// FrameReady copies video RAM and queues it for streaming. The frame is
// dropped when the stream is still busy with earlier frames.
func (d *Driver) FrameReady() {
	if d.closed.Load() {
		return
	}
	buf := make([]byte, vramSize)
	if err := d.host.Copy(buf, types.VRAMStart); err != nil {
		d.log.Errorf("web: copying video RAM: %v", err)
		return
	}
	select {
	case d.frames <- buf:
	default:
		d.dropped.Add(1)
	}
}

// Dropped returns the number of frames dropped because the stream could
// not keep up.
func (d *Driver) Dropped() uint64 {
	return d.dropped.Load()
}

// Sent returns the number of frames handed to the clients.
func (d *Driver) Sent() uint64 {
	return d.sent.Load()
}

func (d *Driver) stream() {
	defer close(d.done)

	c := newCache(d.CacheSize)
	var (
		last    uint64
		first   = true
		skipped uint32
	)
	for buf := range d.frames {
		compression, quality, skipping := d.hub.settings()
		hash := xxhash.Sum64(buf)
		if skipping && !first && hash == last {
			skipped++
			continue
		}
		first, last = false, hash

		if skipped > 0 {
			msg := make([]byte, 5)
			msg[0] = FrameSkip
			binary.LittleEndian.PutUint32(msg[1:], skipped)
			d.hub.send(msg)
			skipped = 0
		}

		payload, err := encode(buf, compression, quality)
		if err != nil {
			d.log.Errorf("web: compressing frame: %v", err)
			continue
		}
		d.hub.setCurrent(payload)
		d.sent.Add(1)

		if c.has(hash) {
			msg := make([]byte, 3)
			msg[0] = FrameCache
			binary.LittleEndian.PutUint16(msg[1:], uint16(c.index(hash)))
			d.hub.send(msg)
			continue
		}

		idx := c.add(hash, payload)
		msg := make([]byte, 3, 3+len(payload))
		msg[0] = Frame
		binary.LittleEndian.PutUint16(msg[1:], uint16(idx))
		d.hub.send(append(msg, payload...))
	}
}

func encode(frame []byte, compression bool, quality int) ([]byte, error) {
	if !compression {
		return frame, nil
	}
	var b bytes.Buffer
	w := brotli.NewWriterLevel(&b, quality)
	if _, err := w.Write(frame); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Close stops the server and the stream, disconnecting every client.
func (d *Driver) Close() error {
	if d.server == nil {
		return nil
	}
	var err error
	d.once.Do(func() {
		d.closed.Store(true)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		err = d.server.Shutdown(ctx)

		close(d.frames)
		<-d.done
		close(d.hub.stop)
		d.log.Debugf("web: sent %d frames, dropped %d", d.Sent(), d.Dropped())
	})
	return err
}

func init() {
	d := New()
	display.Install("web", d, []display.DriverOption{
		{Name: "addr", Default: ":8090", Value: &d.Addr, Description: "address to serve websocket clients on", Type: "string"},
		{Name: "compression", Default: true, Value: &d.Compression, Description: "brotli compress frames", Type: "bool"},
		{Name: "quality", Default: brotli.DefaultCompression, Value: &d.Quality, Description: "brotli quality (0-11)", Type: "int"},
		{Name: "cache", Default: 16, Value: &d.CacheSize, Description: "number of frames remembered by clients", Type: "int"},
	})
}
