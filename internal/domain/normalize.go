package domain

import "strings"

// Truncate returns the first n characters of s. Characters are code points.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// NormalizeFullName truncates a name to MaxFieldLength characters. Shorter names are returned unchanged.
func NormalizeFullName(name string) string {
	return Truncate(name, MaxFieldLength)
}

// NormalizeDescription truncates a description to MaxFieldLength characters
// and right-pads it with spaces so the result is always exactly that long.
func NormalizeDescription(desc string) string {
	out := Truncate(desc, MaxFieldLength)
	if n := CharCount(out); n < MaxFieldLength {
		out += strings.Repeat(" ", MaxFieldLength-n)
	}
	return out
}

// CharCount returns the number of characters in s
func CharCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
