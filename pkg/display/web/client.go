package web

import (
	"net"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// Client is a websocket connection to a viewer.
type Client struct {
	hub      *hub
	conn     *websocket.Conn
	Send     chan []byte
	ID       uint8
	Metadata struct {
		RemoteAddr string
		UserAgent  string
	}
	avgLatency  atomic.Uint32 // milliseconds
	connectedAt time.Time
}

// ReadPump handles messages from the client until the connection
// closes.
func (c *Client) ReadPump() {
	// deferred function to handle unregistering client
	// and closing connection
	defer func() {
		c.hub.unregisterClient(c)
		c.conn.Close()
	}()

	// read messages from client
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return // connection closed
		}
		if len(message) == 0 {
			continue
		}

		switch message[0] {
		case systemMessage:
			if len(message) < 3 {
				continue
			}
			c.hub.mu.Lock()
			switch message[1] {
			case Compression:
				c.hub.compression = message[2] == 1
			case CompressionLevel:
				c.hub.quality = int(message[2])
			case FrameSkipping:
				c.hub.frameSkipping = message[2] == 1
			}
			c.hub.mu.Unlock()
		case KeepAlive:
		case Closing: // websocket client request close
			return
		}
	}
}

// WritePump writes queued messages to the client until Send is closed
// or a write fails.
func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
		c.conn.Close()
	}()

	for message := range c.Send {
		// try to write message to client
		if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
			return
		}

		// update average latency
		if tcp, ok := c.conn.UnderlyingConn().(*net.TCPConn); ok {
			if rtt, err := roundTrip(tcp); err == nil {
				ms := uint32(rtt / time.Millisecond)
				c.avgLatency.Store((c.avgLatency.Load()*9 + ms) / 10)
			}
		}
	}
}
