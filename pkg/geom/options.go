package geom

import "github.com/beetlebugorg/lwgeom/internal/lwgeom"

// SimplifyOptions configures geometry simplification, the public surface
// over internal/lwgeom's OptionList parser.
type SimplifyOptions struct {
	// Method selects the simplification algorithm: "linework" simplifies
	// each ring/line independently, "structure" preserves topology across
	// shared boundaries.
	Method string

	// KeepCollapsed controls whether a ring/line that simplifies down to
	// fewer than the minimum valid vertex count is dropped (false) or kept
	// in its collapsed form (true).
	KeepCollapsed bool
}

// DefaultSimplifyOptions returns linework simplification with collapsed
// rings dropped, matching PostGIS's ST_Simplify default.
func DefaultSimplifyOptions() SimplifyOptions {
	return SimplifyOptions{Method: "linework", KeepCollapsed: false}
}

// ParseSimplifyOptions parses a "method=... keepcollapsed=..." option
// string into a SimplifyOptions.
func ParseSimplifyOptions(s string) (SimplifyOptions, error) {
	opts, err := lwgeom.ParseOptionList(s)
	if err != nil {
		return SimplifyOptions{}, err
	}
	return SimplifyOptions{Method: opts.Method, KeepCollapsed: opts.KeepCollapsed}, nil
}

// String reformats opts as "method=... keepcollapsed=...".
func (o SimplifyOptions) String() string {
	return lwgeom.OptionList{Method: o.Method, KeepCollapsed: o.KeepCollapsed, Extra: map[string]string{}}.String()
}
