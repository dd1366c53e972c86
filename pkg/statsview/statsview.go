// Package statsview serves live runtime statistics (heap, goroutines,
// GC pauses) of the running process in the browser.
package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DefaultAddress is where the statistics are served unless another
// address is given.
const DefaultAddress = "localhost:12600"

const path = "/debug/statsview"

// URL returns the page the statistics are available at when served on
// addr.
func URL(addr string) string {
	return "http://" + addr + path
}

// Launch starts serving the statistics on addr in a new goroutine and
// writes the page's URL to output.
func Launch(addr string, output io.Writer) {
	if addr == "" {
		addr = DefaultAddress
	}
	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()
	go mgr.Start()

	fmt.Fprintf(output, "stats server available at %s\n", URL(addr))
}
