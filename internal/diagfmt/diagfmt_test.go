package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"pynext/internal/diag"
	"pynext/internal/source"
)

func TestPrintPlainFormat(t *testing.T) {
	f := source.New("t.next", []byte("var x\n"))
	var buf bytes.Buffer
	p := New(&buf, ColorOff, true)
	p.Print(f, diag.Diagnostic{Severity: diag.SevError, Message: "boom", Primary: source.Span{Start: 4, End: 5}})

	got := buf.String()
	if !strings.HasPrefix(got, "t.next:1:5: error: boom") {
		t.Fatalf("got %q", got)
	}
}

func TestColorAutoRespectsTTYFlag(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, ColorAuto, false)
	if p.colorized {
		t.Fatal("expected no colorization when tty is false and mode is auto")
	}
	p2 := New(&buf, ColorOn, false)
	if !p2.colorized {
		t.Fatal("expected ColorOn to force colorization regardless of tty")
	}
}

func TestPrintAllRendersEveryDiagnostic(t *testing.T) {
	f := source.New("t.next", []byte("x\ny\n"))
	bag := &diag.Bag{}
	bag.Report(diag.Diagnostic{Severity: diag.SevError, Message: "a"})
	bag.Report(diag.Diagnostic{Severity: diag.SevWarning, Message: "b"})

	var buf bytes.Buffer
	New(&buf, ColorOff, false).PrintAll(f, bag)
	got := buf.String()
	if strings.Count(got, "\n") != 2 {
		t.Fatalf("got %q, want two lines", got)
	}
}
