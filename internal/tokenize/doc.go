// Package tokenize turns one line of ASCII text into signed integers.
//
// Each maximal run of non-whitespace bytes is one token. Runs of whitespace
// separate tokens and never produce empty ones. Parsing is strict: the first
// token that is not decimal integer text stops the scan with a *ParseError.
package tokenize
