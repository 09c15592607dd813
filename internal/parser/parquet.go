package parser

import "bytes"

// parquetMagic is the 4-byte header of a Parquet file.
var parquetMagic = []byte("PAR1")

// HasParquetMagic reports whether body is a Parquet file. Very old
// fetch results were stored as Parquet; the format is recognised so
// render can tell the user to re-fetch, but never parsed in-module
// (Parquet conversion lives in the host's external tooling).
func HasParquetMagic(body []byte) bool {
	return bytes.HasPrefix(body, parquetMagic)
}
