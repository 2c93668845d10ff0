package output

import "io"

// Option configures a Printer.
type Option func(*Printer)

// WithStyles colors entries with provider. A nil provider leaves the
// printer plain.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		if provider != nil {
			p.styleProvider = provider
		}
	}
}

// WithWriter sets the destination. The default is os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// WithMode sets the output mode.
func WithMode(mode Mode) Option {
	return func(p *Printer) {
		p.mode = mode
	}
}
