package codegen

import "strconv"

// parseIntLiteral and parseFloatLiteral convert a lexed literal's text
// into its Go value. The lexer only ever produces well-formed digit runs,
// so a parse failure here indicates an internal inconsistency, not a
// user-facing error; it degrades to the zero value rather than panicking.
func parseIntLiteral(text string) int64 {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseFloatLiteral(text string) float64 {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return f
}
