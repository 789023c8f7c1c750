package urlbuilder

import (
	"slices"
	"strings"
)

// Builder is an immutable URL under construction. The zero value is an
// empty base URL with all Options disabled; use New or NewWithOptions to
// get the defaults.
type Builder struct {
	baseURL   string
	options   Options
	paths     []string
	queries   []Param
	fragments []Param
}

// New returns a Builder for baseURL with DefaultOptions. The base URL is
// used verbatim.
func New(baseURL string) Builder {
	return NewWithOptions(baseURL, DefaultOptions())
}

// NewWithOptions returns a Builder for baseURL with the given options.
func NewWithOptions(baseURL string, opts Options) Builder {
	return Builder{
		baseURL: baseURL,
		options: opts,
	}
}

// BaseURL returns the base URL the builder was created with.
func (b Builder) BaseURL() string {
	return b.baseURL
}

// Options returns the builder options.
func (b Builder) Options() Options {
	return b.options
}

// AppendPath returns a new Builder with segments added to the path.
// When encode is true every segment is form-encoded first, otherwise
// segments are kept as given. Empty segments are kept and render as
// doubled separators.
func (b Builder) AppendPath(encode bool, segments ...string) Builder {
	if len(segments) == 0 {
		return b
	}
	paths := make([]string, len(b.paths), len(b.paths)+len(segments))
	copy(paths, b.paths)
	for _, s := range segments {
		if encode {
			s = Encode(s)
		}
		paths = append(paths, s)
	}
	b.paths = paths
	return b
}

// AppendQuery returns a new Builder with params added to the query.
// Encoding happens on render.
func (b Builder) AppendQuery(params ...Param) Builder {
	if len(params) == 0 {
		return b
	}
	b.queries = slices.Concat(b.queries, params)
	return b
}

// AppendFragment returns a new Builder with params added to the fragment.
func (b Builder) AppendFragment(params ...Param) Builder {
	if len(params) == 0 {
		return b
	}
	b.fragments = slices.Concat(b.fragments, params)
	return b
}

// Path appends form-encoded segments.
func (b Builder) Path(segments ...string) Builder {
	return b.AppendPath(true, segments...)
}

// RawPath appends segments without encoding.
func (b Builder) RawPath(segments ...string) Builder {
	return b.AppendPath(false, segments...)
}

// Query appends a single query param.
func (b Builder) Query(key string, value any) Builder {
	return b.AppendQuery(KV(key, value))
}

// QueryMap appends every entry of m to the query, in ascending key order.
func (b Builder) QueryMap(m map[string]any) Builder {
	return b.AppendQuery(paramsFromMap(m)...)
}

// Fragment appends a single fragment param.
func (b Builder) Fragment(key string, value any) Builder {
	return b.AppendFragment(KV(key, value))
}

// FragmentMap appends every entry of m to the fragment, in ascending key
// order.
func (b Builder) FragmentMap(m map[string]any) Builder {
	return b.AppendFragment(paramsFromMap(m)...)
}

// Anchor appends a fragment key with no value, as in "#main".
func (b Builder) Anchor(key string) Builder {
	return b.AppendFragment(Key(key))
}

// Render assembles the URL as <path>[?<query>][#<fragment>].
func (b Builder) Render() string {
	var sb strings.Builder
	sb.WriteString(b.baseURL)
	if len(b.paths) > 0 {
		if !strings.HasSuffix(b.baseURL, "/") {
			sb.WriteByte('/')
		}
		sb.WriteString(strings.Join(b.paths, "/"))
	}

	if query := encodeParams(b.queries, b.options.ExcludeNullQueryValues); query != "" {
		sb.WriteByte('?')
		sb.WriteString(query)
	}

	if fragment := encodeParams(b.fragments, b.options.ExcludeNullFragmentValues); fragment != "" {
		sb.WriteByte('#')
		sb.WriteString(fragment)
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (b Builder) String() string {
	return b.Render()
}

// MarshalText implements encoding.TextMarshaler so a Builder is encoded
// as its rendered URL.
func (b Builder) MarshalText() ([]byte, error) {
	return []byte(b.Render()), nil
}
