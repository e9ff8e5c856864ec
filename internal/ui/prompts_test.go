package ui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPrompter_Line(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("  hello  \n"), out)

	value, err := p.Line("Say")
	if err != nil {
		t.Fatalf("Line failed: %v", err)
	}
	if value != "hello" {
		t.Fatalf("expected trimmed input, got %q", value)
	}
	if !strings.Contains(out.String(), "Say: ") {
		t.Fatalf("expected the label to be printed, got %q", out.String())
	}

	if _, err := p.Line("Again"); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF on exhausted input, got %v", err)
	}
}

func TestPrompter_LineDefault(t *testing.T) {
	t.Parallel()

	p := NewPrompter(strings.NewReader("\ncustom\n"), &bytes.Buffer{})

	value, err := p.LineDefault("Position", "Engineer")
	if err != nil {
		t.Fatalf("LineDefault failed: %v", err)
	}
	if value != "Engineer" {
		t.Fatalf("expected the fallback for empty input, got %q", value)
	}

	value, err = p.LineDefault("Position", "Engineer")
	if err != nil {
		t.Fatalf("LineDefault failed: %v", err)
	}
	if value != "custom" {
		t.Fatalf("expected the typed answer to win, got %q", value)
	}
}

func TestPrompter_PositiveInt(t *testing.T) {
	t.Parallel()

	t.Run("re-prompts on bad input", func(t *testing.T) {
		t.Parallel()

		out := &bytes.Buffer{}
		p := NewPrompter(strings.NewReader("abc\n-1\n3\n"), out)

		value, err := p.PositiveInt("Quantity")
		if err != nil {
			t.Fatalf("PositiveInt failed: %v", err)
		}
		if value != 3 {
			t.Fatalf("expected 3, got %d", value)
		}
		if strings.Count(out.String(), "Enter a positive whole number.") != 2 {
			t.Fatalf("expected two re-prompt hints, got %q", out.String())
		}
	})

	t.Run("gives up after three attempts", func(t *testing.T) {
		t.Parallel()

		p := NewPrompter(strings.NewReader("a\nb\nc\n"), &bytes.Buffer{})

		if _, err := p.PositiveInt("Quantity"); err == nil {
			t.Fatal("expected an error after three bad answers")
		}
	})
}

func TestPrompter_Confirm(t *testing.T) {
	t.Parallel()

	p := NewPrompter(strings.NewReader("y\nYES\nno\n\n"), &bytes.Buffer{})

	for _, want := range []bool{true, true, false, false} {
		got, err := p.Confirm("Delete?")
		if err != nil {
			t.Fatalf("Confirm failed: %v", err)
		}
		if got != want {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
