package rpn

import "strings"

// tokenize splits an expression into raw token fields. The separator is
// exactly the ASCII space (0x20); repeated separators collapse, so the
// result never contains empty fields. Other whitespace is not special
// and stays inside tokens, where it will fail classification later.
func tokenize(expr string) []string {
	parts := strings.Split(expr, " ")
	fields := parts[:0]
	for _, p := range parts {
		if p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}
