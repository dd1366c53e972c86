package web

// Event is the first byte of a system message sent by a client.
type Event = uint8

const (
	_ Event = iota
	Compression
	CompressionLevel
	FrameSkipping
	KeepAlive = 254
	Closing   = 255
)

// systemMessage prefixes a client message that changes a hub setting.
const systemMessage = 10

// Type is the first byte of a message sent to clients.
type Type = uint8

const (
	// Frame carries a cache index (uint16) and the video RAM, brotli
	// compressed when compression is enabled.
	Frame Type = iota
	// FrameSkip carries the number of unchanged frames (uint32) since
	// the last Frame.
	FrameSkip
	// FrameCache carries the cache index (uint16) of a frame the
	// clients have already been sent.
	FrameCache
	// FrameSync carries the current frame to a newly connected client.
	FrameSync
	// ClientInfo carries the hub settings byte, the compression
	// quality and the client's ID.
	ClientInfo
	// ClientClosing carries the ID of a client that disconnected.
	ClientClosing
	// ServerInfo carries an ID and average latency (uint16, ms) pair
	// for every connected client.
	ServerInfo
)
