package urlbuilder

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Options control how null-marker params are rendered. They are fixed
// when a root Builder is created.
type Options struct {
	// ExcludeNullQueryValues drops query params whose value is nil.
	// When false they render as a bare key. Default true.
	ExcludeNullQueryValues bool `json:"exclude_null_query_values" yaml:"exclude_null_query_values"`

	// ExcludeNullFragmentValues drops fragment params whose value is nil.
	// Default false.
	ExcludeNullFragmentValues bool `json:"exclude_null_fragment_values" yaml:"exclude_null_fragment_values"`
}

// DefaultOptions returns the options used by New.
func DefaultOptions() Options {
	return Options{
		ExcludeNullQueryValues:    true,
		ExcludeNullFragmentValues: false,
	}
}

// optionsDocument mirrors Options with optional fields so absent keys
// keep their defaults.
type optionsDocument struct {
	ExcludeNullQueryValues    *bool `yaml:"exclude_null_query_values"`
	ExcludeNullFragmentValues *bool `yaml:"exclude_null_fragment_values"`
}

// ParseOptions decodes options from a YAML or JSON document. Keys that
// are absent keep their DefaultOptions value; unknown keys are an error.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()

	var doc optionsDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("urlbuilder: decode options: %w", err)
	}

	if doc.ExcludeNullQueryValues != nil {
		opts.ExcludeNullQueryValues = *doc.ExcludeNullQueryValues
	}
	if doc.ExcludeNullFragmentValues != nil {
		opts.ExcludeNullFragmentValues = *doc.ExcludeNullFragmentValues
	}
	return opts, nil
}
