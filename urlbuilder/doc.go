// Package urlbuilder assembles URL strings from a base address, path
// segments, query parameters and fragment parameters.
//
// A Builder is an immutable value. Every append returns a new Builder and
// leaves the receiver untouched, so a partially built URL can be shared
// and extended from several places (and goroutines) at once:
//
//	api := urlbuilder.New("http://127.0.0.1:8081/api/v1")
//	report := api.Path("users", "Toly Pochkin", "report").
//		Query("sort", "firstName").
//		Query("country", "US").
//		Anchor("main")
//	fmt.Println(report)
//	// http://127.0.0.1:8081/api/v1/users/Toly+Pochkin/report?sort=firstName&country=US#main
//
// # Base URL
//
// The base URL is an opaque prefix. It is never parsed, validated or
// encoded. A single "/" is inserted between it and the first path segment
// unless it already ends with one.
//
// # Encoding
//
// Path segments appended with Path are form-encoded (see Encode), so a "/"
// inside a segment becomes "%2F". RawPath appends segments unchanged.
// Query and fragment keys and values are always form-encoded at render
// time, with space rendered as "+".
//
// # Null values
//
// A param whose value is nil is a null-marker: it renders as a bare key
// with no "=". Options control whether such params are dropped:
//
//	ExcludeNullQueryValues    (default true)
//	ExcludeNullFragmentValues (default false)
//
// Options are fixed when the root Builder is created and carried by every
// Builder derived from it. They can be decoded from YAML with ParseOptions.
//
// # Values
//
// Query and fragment values may be any Go value; FormatValue documents
// how each kind is turned into text.
package urlbuilder
