package textutil

import "strings"

// fieldReplacer collapses the characters that would break a tab-separated row.
var fieldReplacer = strings.NewReplacer(
	"\r\n", " ",
	"\t", " ",
	"\n", " ",
	"\r", " ",
)

// SanitizeField makes value safe to place in a single TSV cell. Tabs and line
// breaks become spaces; everything else is kept as is.
func SanitizeField(value string) string {
	if !strings.ContainsAny(value, "\t\r\n") {
		return value
	}
	return fieldReplacer.Replace(value)
}

// JoinFields sanitizes each value and joins them with tabs.
func JoinFields(values ...string) string {
	cleaned := make([]string, len(values))
	for i, v := range values {
		cleaned[i] = SanitizeField(v)
	}
	return strings.Join(cleaned, "\t")
}
