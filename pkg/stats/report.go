package stats

import (
	"io"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/message"
)

// NewPrinter returns a printer for the first of locales that is
// supported, falling back to the user's locales and then en-US.
func NewPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		locales, _ = locale.GetLocales()
	}
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}
	return message.NewPrinter(message.MatchLanguage(locales...))
}

// Report writes the instruction count, the elapsed time and the
// instruction rate to w, with numbers formatted for p.
func Report(w io.Writer, p *message.Printer, c *Counter) error {
	if _, err := p.Fprintf(w, "Executed %d instructions in %.3f seconds\n", c.Instructions(), c.Elapsed().Seconds()); err != nil {
		return err
	}
	_, err := p.Fprintf(w, "(%.0f/sec)\n", c.Rate())
	return err
}
