// Package names loads candidate artist names from a newline-delimited text
// file. Whitespace is trimmed and blank or #-comment lines are skipped; file
// order and duplicates are preserved.
package names
