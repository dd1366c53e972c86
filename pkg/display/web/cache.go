package web

// frameCache is a ring of the frames most recently sent to clients,
// keyed by the xxhash of their video RAM. Clients keep the same ring,
// so a repeated frame is sent as its slot index. It is only used from
// the stream goroutine.
type frameCache struct {
	slots []cacheSlot
	next  int
}

type cacheSlot struct {
	hash    uint64
	payload []byte
}

// newCache returns a cache with size slots. A size of 0 disables it.
func newCache(size int) *frameCache {
	return &frameCache{slots: make([]cacheSlot, size)}
}

func (c *frameCache) has(hash uint64) bool {
	return c.index(hash) != -1
}

// add stores payload under hash in the oldest slot and returns the
// slot's index, or -1 when the cache is disabled.
func (c *frameCache) add(hash uint64, payload []byte) int {
	if len(c.slots) == 0 {
		return -1
	}
	idx := c.next
	c.slots[idx] = cacheSlot{hash: hash, payload: payload}
	c.next = (c.next + 1) % len(c.slots)
	return idx
}

// index returns the slot holding hash, or -1.
func (c *frameCache) index(hash uint64) int {
	for i, s := range c.slots {
		if s.hash == hash && len(s.payload) > 0 {
			return i
		}
	}
	return -1
}
