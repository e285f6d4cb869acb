package lexer

import "pynext/internal/diag"

// diagBag is a minimal diag.Reporter for tests that just need to count
// and inspect reported diagnostics.
type diagBag struct {
	reports []diag.Diagnostic
}

func (b *diagBag) Report(d diag.Diagnostic) {
	b.reports = append(b.reports, d)
}
