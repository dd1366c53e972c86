// Command sm83 runs a program image on the SM83 interpreter until it
// halts or is interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/gameboy"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/rom"
	"github.com/thelolagemann/sm83/pkg/display"
	_ "github.com/thelolagemann/sm83/pkg/display/stub"
	_ "github.com/thelolagemann/sm83/pkg/display/tiles"
	_ "github.com/thelolagemann/sm83/pkg/display/web"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/stats"
	"github.com/thelolagemann/sm83/pkg/statsview"
)

type config struct {
	driver      string
	frameCycles uint
	memorySize  int
	interrupts  bool
	raw         bool
	trace       bool
	plot        string
	statsview   string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.driver, "driver", "stub", "The display driver to use. One of: "+strings.Join(display.Names(), ", "))
	flag.UintVar(&cfg.frameCycles, "frame-cycles", cpu.FrameCycles, "The number of cycles between frames")
	flag.IntVar(&cfg.memorySize, "memory", mmu.DefaultSize, "The size of the address space in bytes")
	flag.BoolVar(&cfg.interrupts, "interrupts", false, "Service interrupts")
	flag.BoolVar(&cfg.raw, "raw", false, "Start with zeroed registers at 0x0000 instead of the post-boot state")
	flag.BoolVar(&cfg.trace, "trace", false, "Log every executed instruction (implies -debug)")
	flag.StringVar(&cfg.plot, "plot", "", "Write a chart of instructions per frame to this file (.png, .svg, .pdf)")
	flag.StringVar(&cfg.statsview, "statsview", "", "Serve runtime statistics on this address (e.g. "+statsview.DefaultAddress+")")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <image>\n", os.Args[0])
		flag.PrintDefaults()
	}
	display.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.New(log.WithDebug(*debug || cfg.trace))

	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	err := run(ctx, flag.Arg(0), cfg, logger, os.Stdout)
	stop()
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

// run loads the image at path and runs it until ctx is done, then
// reports the run's statistics to out. An error from the machine is
// returned without a report.
func run(ctx context.Context, path string, cfg config, logger log.Logger, out io.Writer) error {
	image, err := rom.Load(path)
	if err != nil {
		return err
	}

	driver := display.GetDriver(cfg.driver)
	if driver == nil {
		return fmt.Errorf("invalid display driver %q, installed: %s", cfg.driver, strings.Join(display.Names(), ", "))
	}
	if l, ok := driver.(interface{ SetLogger(log.Logger) }); ok {
		l.SetLogger(logger)
	}

	if cfg.statsview != "" {
		statsview.Launch(cfg.statsview, out)
	}

	g, err := gameboy.New(image,
		gameboy.WithLogger(logger),
		gameboy.WithRenderer(driver),
		gameboy.WithFrameCycles(uint32(cfg.frameCycles)),
		gameboy.WithMemorySize(cfg.memorySize),
		gameboy.WithInterrupts(cfg.interrupts),
		gameboy.WithPostBootState(!cfg.raw),
		gameboy.Trace(cfg.trace),
	)
	if err != nil {
		return err
	}
	defer func() {
		if err := g.Close(); err != nil {
			logger.Errorf("closing display: %v", err)
		}
	}()

	if err := g.Run(ctx); !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	if err := stats.Report(out, stats.NewPrinter(), g.Stats); err != nil {
		return err
	}
	if cfg.plot != "" {
		if err := stats.Plot(g.Stats, cfg.plot); err != nil {
			return fmt.Errorf("plotting: %w", err)
		}
		logger.Infof("Wrote %s", cfg.plot)
	}
	return nil
}
