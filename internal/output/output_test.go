package output

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"termfolio/internal/typewriter"
	"termfolio/pkg/termtypes"
)

// bracketStyles renders "[semantic]text[/semantic]".
type bracketStyles struct {
	unavailable bool
}

func (b *bracketStyles) GetStyle(semantic string) TextStyle { return bracketStyle(semantic) }
func (b *bracketStyles) IsAvailable() bool { return !b.unavailable }

type bracketStyle string

func (s bracketStyle) Render(strs ...string) string {
	return "[" + string(s) + "]" + strings.Join(strs, " ") + "[/" + string(s) + "]"
}

func TestPrinterPlainEntry(t *testing.T) {
	var buffer bytes.Buffer
	printer := NewPrinter(WithWriter(&buffer), WithMode(ModePlain))

	if err := printer.Entry(context.Background(), termtypes.OutputError, "failed", typewriter.SpeedInstant); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := printer.Entry(context.Background(), termtypes.OutputInfo, "", typewriter.SpeedInstant); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := buffer.String(); got != "failed\n" {
		t.Errorf("expected plain entry, got %q", got)
	}
}

func TestPrinterTypesPlainEntries(t *testing.T) {
	var buffer bytes.Buffer
	printer := NewPrinter(WithWriter(&buffer))

	if err := printer.Entry(context.Background(), termtypes.OutputInfo, "abc", typewriter.SpeedFast); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buffer.String(); got != "abc\n" {
		t.Errorf("expected typed line, got %q", got)
	}
}

func TestPrinterBatchEntryIgnoresStylesAndSpeed(t *testing.T) {
	var buffer bytes.Buffer
	printer := NewPrinter(WithWriter(&buffer), WithStyles(&bracketStyles{}), WithMode(ModeBatch))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := printer.Entry(ctx, termtypes.OutputSuccess, "Changed directory to /home/visitor/blog", typewriter.SpeedSlow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buffer.String(); got != "Changed directory to /home/visitor/blog\n" {
		t.Errorf("expected unstyled batch line, got %q", got)
	}
}

func TestPrinterStyledEntry(t *testing.T) {
	var buffer bytes.Buffer
	printer := NewPrinter(WithWriter(&buffer), WithStyles(&bracketStyles{}))

	kinds := []termtypes.OutputKind{termtypes.OutputInfo, termtypes.OutputSuccess, termtypes.OutputError}
	for _, kind := range kinds {
		if err := printer.Entry(context.Background(), kind, "x", typewriter.SpeedSlow); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	expected := "[info]x[/info]\n[success]x[/success]\n[error]x[/error]\n"
	if got := buffer.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestPrinterFallsBackWhenProviderUnavailable(t *testing.T) {
	provider := &bracketStyles{unavailable: true}
	var buffer bytes.Buffer
	printer := NewPrinter(WithWriter(&buffer), WithStyles(provider))

	if printer.IsStylable() {
		t.Error("printer should not be stylable")
	}
	printer.Println(SemanticPrompt, "visitor@portfolio:~$ ")
	if got := buffer.String(); got != "visitor@portfolio:~$ \n" {
		t.Errorf("expected unstyled prompt, got %q", got)
	}

	provider.unavailable = false
	if got := printer.Render(SemanticMuted, "hint"); got != "[muted]hint[/muted]" {
		t.Errorf("expected styled render, got %q", got)
	}
}

func TestPlainModeOverridesStyles(t *testing.T) {
	printer := NewPrinter(WithStyles(&bracketStyles{}), WithMode(ModePlain))
	if printer.IsStylable() {
		t.Error("plain printer should not be stylable")
	}
	if got := printer.Render(SemanticHighlight, "cat"); got != "cat" {
		t.Errorf("expected plain render, got %q", got)
	}
	if got := printer.String(); !strings.Contains(got, "mode: plain") || !strings.Contains(got, "styles: no") {
		t.Errorf("unexpected debug string %q", got)
	}
}

func TestSemanticFor(t *testing.T) {
	cases := map[termtypes.OutputKind]SemanticType{
		termtypes.OutputInfo:    SemanticInfo,
		termtypes.OutputSuccess: SemanticSuccess,
		termtypes.OutputError:   SemanticError,
	}
	for kind, want := range cases {
		if got := SemanticFor(kind); got != want {
			t.Errorf("SemanticFor(%v) = %q, want %q", kind, got, want)
		}
	}
}
