package diag

import "testing"

func TestBagHasErrors(t *testing.T) {
	var b Bag
	if b.HasErrors() {
		t.Fatal("empty bag should not have errors")
	}
	b.Report(Diagnostic{Severity: SevWarning, Code: LexUnknownChar, Message: "warn"})
	if b.HasErrors() {
		t.Fatal("warning-only bag should not have errors")
	}
	b.Report(Diagnostic{Severity: SevError, Code: SemaUndefinedName, Message: "boom"})
	if !b.HasErrors() {
		t.Fatal("expected HasErrors after reporting an error")
	}
	if len(b.Items()) != 2 {
		t.Fatalf("got %d items, want 2", len(b.Items()))
	}
}
