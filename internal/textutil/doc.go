// Package textutil holds small text helpers shared by the report writer.
//
// Registry responses are free text: names and disambiguation comments can
// carry tabs or line breaks that would shift columns in the debug TSV.
// SanitizeField and JoinFields keep every row at a fixed field count.
package textutil
