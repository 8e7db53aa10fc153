// Package report turns an in-memory snapshot of repair or purchase records into
// the filtered, ordered views shown to the user and into downloadable CSV and
// PDF exports.
//
// Everything here is a pure function over already validated data: nothing
// performs I/O, nothing mutates its input, and the same arguments always
// produce the same output. The functions are generic over Record so a single
// call always works on one record kind.
//
// Names are ordered with byte-wise UTF-8 comparison (strings.Compare). The
// same ordering is used for the JSON list view and for both export formats.
package report
