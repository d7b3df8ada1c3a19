// Package logtail reads the tail of the client's log file for the activity
// view.
//
// Read keeps only the last N lines in a ring buffer, so memory stays
// O(N) regardless of file size. Each line is parsed into an Entry: the
// "recipes" prefix and standard log timestamp are split off, and lines that
// report a failure are flagged so the UI can highlight them.
//
// A missing file is not an error; it yields no entries.
package logtail
