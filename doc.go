// Package tably infers the structural shape of semi-structured text and
// normalizes it into a tabular form.
//
// The package recognizes JSON arrays and objects, JSON Lines, bracket-quoted
// key/value notation (['key']: ['value']), key-value lines, bullet and
// numbered lists, delimited text (comma, tab, pipe, semicolon), and plain
// lines. The central entry points are [Detect], which classifies raw text
// into a [Format], and [Parse], which converts classified text into a
// [Table] with a unified column order.
//
// # Detection
//
// [Detect] runs a fixed priority list of tests and returns the first match:
//
//  1. whole-input JSON (array of objects, array of scalars, or object)
//  2. JSON Lines (every sampled non-blank line is valid JSON)
//  3. bracket-quoted key/value pairs
//  4. key-value lines (key: value or key = value)
//  5. bullet, numbered, or checkbox lists
//  6. delimited text (tab, comma, pipe, semicolon)
//  7. plain lines (the fallback; detection never fails)
//
// Empty or whitespace-only input classifies as [Empty] and parses to a table
// with zero columns and zero records. Passing any format other than [Auto]
// to [Parse] bypasses detection entirely.
//
// # Normalization
//
// Each format has one parser. Nested JSON objects flatten into dot-joined
// column names (a.b.c); list-valued fields serialize to a single string
// rather than expanding into columns. Columns unify across records in
// first-seen order, and records missing a column render it as an empty
// string. Malformed units inside an otherwise valid input (a bad JSON Lines
// line, a delimited row with the wrong field count) are skipped and counted
// on the table, never fatal.
//
// # Output
//
// A [Table] renders as CSV via [WriteCSV], as a row-limited aligned preview
// via [WritePreview] (plain, rounded, ascii, or markdown [Style]), or
// through a Go text/template applied per record via [WriteTemplate]:
//
//	tbl, err := tably.Parse(text, tably.Auto)
//	if err != nil { ... }
//	tably.WriteCSV(os.Stdout, tbl)
//
// # Column extraction
//
// [ExtractColumn] pulls one column out of delimited input and expands
// array-literal cells (JSON arrays, quoted lists, comma-separated text)
// into one record per element, keyed by source row number.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format name
//   - [ErrUnsupportedStyle] — unknown preview style name
//   - [ErrInvalidJSON] — input forced to a JSON format does not parse
//   - [ErrInvalidTemplate] — invalid go-template syntax
//   - [ErrColumnNotFound] — extraction column absent from the header
package tably
