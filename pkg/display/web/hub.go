package web

import (
	"encoding/binary"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

type hub struct {
	clients map[*Client]bool

	broadcast            chan []byte
	register, unregister chan *Client
	stop                 chan struct{}

	compression   bool
	quality       int
	frameSkipping bool
	currentID     uint8
	current       []byte // payload of the latest frame, for FrameSync

	log log.Logger
	mu  sync.Mutex
}

func newHub(l log.Logger, compression bool, quality int) *hub {
	return &hub{
		clients:       make(map[*Client]bool),
		broadcast:     make(chan []byte, 16),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		stop:          make(chan struct{}),
		compression:   compression,
		quality:       quality,
		frameSkipping: true,
		log:           l,
	}
}

// ServeHTTP upgrades the connection to a websocket connection and
// registers a client for it.
func (w *hub) ServeHTTP(wr http.ResponseWriter, r *http.Request) {
	wr.Header().Set("Access-Control-Allow-Origin", "*")

	conn, err := upgrader.Upgrade(wr, r, nil)
	if err != nil {
		w.log.Errorf("web: upgrading %s: %v", r.RemoteAddr, err)
		return
	}

	// create new client, queueing its initial data before the run
	// loop can see it
	c := w.newClient(conn, r)
	w.mu.Lock()
	c.Send <- []byte{ClientInfo, w.info(), uint8(w.quality), c.ID}
	if w.current != nil {
		c.Send <- append([]byte{FrameSync}, w.current...)
	}
	w.mu.Unlock()

	select {
	case w.register <- c:
	case <-w.stop:
		conn.Close()
		return
	}

	// spawn read/write pumps
	go c.ReadPump()
	go c.WritePump()
	w.log.Debugf("web: client %d connected from %s", c.ID, c.Metadata.RemoteAddr)
}

// run handles registration and broadcasting until the hub is stopped,
// sending the clients' latencies every interval.
func (w *hub) run(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case c := <-w.register:
			w.clients[c] = true
		case c := <-w.unregister:
			// is this client still registered
			if _, ok := w.clients[c]; ok {
				delete(w.clients, c)
				close(c.Send)

				// notify connected clients that this client has disconnected
				w.sendAll([]byte{ClientClosing, c.ID})
			}
		case msg := <-w.broadcast:
			w.sendAll(msg)
		case <-t.C:
			// build information
			var data []byte
			for c := range w.clients {
				latencyBuf := make([]byte, 2)
				binary.LittleEndian.PutUint16(latencyBuf, uint16(c.avgLatency.Load()))
				data = append(data, c.ID)
				data = append(data, latencyBuf...)
			}
			w.sendAll(append([]byte{ServerInfo}, data...))
		case <-w.stop:
			for c := range w.clients {
				close(c.Send)
				delete(w.clients, c)
			}
			return
		}
	}
}

// sendAll queues msg for every client, dropping clients that cannot
// keep up.
func (w *hub) sendAll(msg []byte) {
	for c := range w.clients {
		select {
		case c.Send <- msg:
		default:
			close(c.Send)
			delete(w.clients, c)
		}
	}
}

// send hands msg to the run loop, unless the hub has stopped.
func (w *hub) send(msg []byte) {
	select {
	case w.broadcast <- msg:
	case <-w.stop:
	}
}

func (w *hub) unregisterClient(c *Client) {
	select {
	case w.unregister <- c:
	case <-w.stop:
	}
}

// info returns a byte of information containing the various
// hub settings. The byte is constructed as follows:
//
//	Bit 0: Compression enabled
//	Bit 1: Frame skipping enabled
func (w *hub) info() byte {
	info := uint8(0)
	if w.compression {
		info |= types.Bit0
	}
	if w.frameSkipping {
		info |= types.Bit1
	}
	return info
}

// settings returns the settings the next frame is encoded with.
func (w *hub) settings() (compression bool, quality int, frameSkipping bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.compression, w.quality, w.frameSkipping
}

func (w *hub) setCurrent(payload []byte) {
	w.mu.Lock()
	w.current = payload
	w.mu.Unlock()
}

// newClient creates a new client for conn.
func (w *hub) newClient(conn *websocket.Conn, r *http.Request) *Client {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.currentID++

	c := &Client{
		hub:         w,
		conn:        conn,
		Send:        make(chan []byte, 256),
		ID:          w.currentID,
		connectedAt: time.Now(),
	}
	c.Metadata.RemoteAddr = r.RemoteAddr
	c.Metadata.UserAgent = r.Header.Get("User-Agent")
	return c
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 16,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
