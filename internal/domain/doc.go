// Package domain defines the data model shared by the primitives and their
// callers: fixed-size blocks, raw cipher keys, key sizes and the error
// taxonomy. It holds plain types and contracts only.
//
// Every type that can carry secret material renders as [REDACTED] through
// fmt and log/slog.
package domain
