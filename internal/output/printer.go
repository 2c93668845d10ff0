package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"termfolio/internal/typewriter"
	"termfolio/pkg/termtypes"
)

// Printer writes terminal output. Styled output is written at once in the
// provider's colors; plain output of entries is typed out unless the
// printer is in batch mode.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	mu            sync.Mutex
}

// NewPrinter creates a printer writing to os.Stdout in ModeAuto unless
// options say otherwise.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Entry writes the output of one transcript entry followed by a newline.
// Plain output is typed at speed; cancelling ctx writes the rest at once.
// Empty text writes nothing.
func (p *Printer) Entry(ctx context.Context, kind termtypes.OutputKind, text string, speed typewriter.Speed) error {
	if text == "" {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.IsStylable() {
		_, err := fmt.Fprintln(p.writer, p.styleProvider.GetStyle(string(SemanticFor(kind))).Render(text))
		return err
	}
	if p.mode == ModeBatch {
		_, err := fmt.Fprintln(p.writer, text)
		return err
	}
	if err := typewriter.Play(ctx, p.writer, text, speed); err != nil {
		return err
	}
	_, err := io.WriteString(p.writer, "\n")
	return err
}

// Println writes text with the style of semantic and a newline.
func (p *Printer) Println(semantic SemanticType, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.writer, p.render(semantic, text))
}

// Render returns text in the style of semantic, or unchanged when the
// printer is plain.
func (p *Printer) Render(semantic SemanticType, text string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.render(semantic, text)
}

func (p *Printer) render(semantic SemanticType, text string) string {
	if !p.IsStylable() {
		return text
	}
	return p.styleProvider.GetStyle(string(semantic)).Render(text)
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	return p.mode == ModeAuto && p.styleProvider != nil && p.styleProvider.IsAvailable()
}

// String returns a string representation for debugging.
func (p *Printer) String() string {
	hasStyles := "no"
	if p.IsStylable() {
		hasStyles = "yes"
	}
	return fmt.Sprintf("Printer{mode: %v, styles: %s, writer: %T}", p.mode, hasStyles, p.writer)
}
