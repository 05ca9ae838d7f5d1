// Package strings holds small string and slice helpers shared across packages
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// Compact trims every element and drops the blank ones; order is kept
func Compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = std.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SplitCSV splits s on commas and compacts the parts
func SplitCSV(s string) []string {
	if std.TrimSpace(s) == "" {
		return nil
	}
	return Compact(std.Split(s, ","))
}

// MustString returns s if it has non whitespace content, otherwise panics naming what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a mount path like /uris: one leading slash, no trailing slash
// panics if nothing is left after trimming
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}
