package lwgeom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GBOX is the double-precision Cartesian or geodetic axis-aligned bounding
// box, spec.md §4.C7. Z/M ranges are only meaningful when Flags says so.
// IsEmpty is this repo's resolution of spec.md §9's open question: an
// empty box is an explicit flag, never an inverted min>max interval.
type GBOX struct {
	Flags              Flags
	Xmin, Xmax         float64
	Ymin, Ymax         float64
	Zmin, Zmax         float64
	Mmin, Mmax         float64
	IsEmpty            bool
}

// NewEmptyGBox returns an empty box carrying the given flags.
func NewEmptyGBox(f Flags) GBOX {
	return GBOX{Flags: f, IsEmpty: true}
}

// dimMismatch reports whether a and b disagree on which of Z/M/geodetic
// they carry — GBOX operations that compare ranges across dimensions must
// refuse to proceed on mismatched flags (spec.md §4.C7).
func dimMismatch(op string, a, b Flags) error {
	if a.HasZ() != b.HasZ() || a.HasM() != b.HasM() || a.Geodetic() != b.Geodetic() {
		return &ErrDimensionMismatch{Op: op, WantZ: a.HasZ(), WantM: a.HasM(), GotZ: b.HasZ(), GotM: b.HasM()}
	}
	return nil
}

// Merge grows b to enclose a, per spec.md's gbox_merge("a","b"): "b grows
// to enclose a". Fails if the dimension flags differ.
func Merge(a GBOX, b *GBOX) error {
	if err := dimMismatch("Merge", a.Flags, b.Flags); err != nil {
		return err
	}
	if a.IsEmpty {
		return nil
	}
	if b.IsEmpty {
		*b = a
		return nil
	}
	b.Xmin, b.Xmax = math.Min(b.Xmin, a.Xmin), math.Max(b.Xmax, a.Xmax)
	b.Ymin, b.Ymax = math.Min(b.Ymin, a.Ymin), math.Max(b.Ymax, a.Ymax)
	if b.Flags.HasZ() || b.Flags.Geodetic() {
		b.Zmin, b.Zmax = math.Min(b.Zmin, a.Zmin), math.Max(b.Zmax, a.Zmax)
	}
	if b.Flags.HasM() {
		b.Mmin, b.Mmax = math.Min(b.Mmin, a.Mmin), math.Max(b.Mmax, a.Mmax)
	}
	return nil
}

// MergePoint3D grows b to include the 3D point p.
func MergePoint3D(p Coord, b *GBOX) {
	if b.IsEmpty {
		b.Xmin, b.Xmax = p.X, p.X
		b.Ymin, b.Ymax = p.Y, p.Y
		b.Zmin, b.Zmax = p.Z, p.Z
		b.IsEmpty = false
		return
	}
	b.Xmin, b.Xmax = math.Min(b.Xmin, p.X), math.Max(b.Xmax, p.X)
	b.Ymin, b.Ymax = math.Min(b.Ymin, p.Y), math.Max(b.Ymax, p.Y)
	b.Zmin, b.Zmax = math.Min(b.Zmin, p.Z), math.Max(b.Zmax, p.Z)
}

// ContainsPoint3D is the half-open inclusive check min <= p <= max on every
// dimension b carries.
func (b GBOX) ContainsPoint3D(p Coord) bool {
	if b.IsEmpty {
		return false
	}
	if p.X < b.Xmin || p.X > b.Xmax || p.Y < b.Ymin || p.Y > b.Ymax {
		return false
	}
	if b.Flags.HasZ() || b.Flags.Geodetic() {
		if p.Z < b.Zmin || p.Z > b.Zmax {
			return false
		}
	}
	return true
}

// Overlaps reports whether a and b's intervals overlap on every dimension
// present in both; errors on mismatched dimension flags.
func Overlaps(a, b GBOX) (bool, error) {
	if err := dimMismatch("Overlaps", a.Flags, b.Flags); err != nil {
		return false, err
	}
	if a.IsEmpty || b.IsEmpty {
		return false, nil
	}
	if a.Xmax < b.Xmin || a.Xmin > b.Xmax {
		return false, nil
	}
	if a.Ymax < b.Ymin || a.Ymin > b.Ymax {
		return false, nil
	}
	if a.Flags.HasZ() || a.Flags.Geodetic() {
		if a.Zmax < b.Zmin || a.Zmin > b.Zmax {
			return false, nil
		}
	}
	if a.Flags.HasM() {
		if a.Mmax < b.Mmin || a.Mmin > b.Mmax {
			return false, nil
		}
	}
	return true, nil
}

// Same reports exact equality on present dimensions.
func Same(a, b GBOX) (bool, error) {
	if err := dimMismatch("Same", a.Flags, b.Flags); err != nil {
		return false, err
	}
	if a.IsEmpty != b.IsEmpty {
		return false, nil
	}
	if a.IsEmpty {
		return true, nil
	}
	if a.Xmin != b.Xmin || a.Xmax != b.Xmax || a.Ymin != b.Ymin || a.Ymax != b.Ymax {
		return false, nil
	}
	if a.Flags.HasZ() || a.Flags.Geodetic() {
		if a.Zmin != b.Zmin || a.Zmax != b.Zmax {
			return false, nil
		}
	}
	if a.Flags.HasM() {
		if a.Mmin != b.Mmin || a.Mmax != b.Mmax {
			return false, nil
		}
	}
	return true, nil
}

// Expand returns a new GBOX with every present dimension's range widened by
// ±d.
func (b GBOX) Expand(d float64) GBOX {
	if b.IsEmpty {
		return b
	}
	out := b
	out.Xmin, out.Xmax = b.Xmin-d, b.Xmax+d
	out.Ymin, out.Ymax = b.Ymin-d, b.Ymax+d
	if b.Flags.HasZ() || b.Flags.Geodetic() {
		out.Zmin, out.Zmax = b.Zmin-d, b.Zmax+d
	}
	if b.Flags.HasM() {
		out.Mmin, out.Mmax = b.Mmin-d, b.Mmax+d
	}
	return out
}

// ToString renders "GBOX((min...),(max...))" with "%.8g"-style formatting
// per ordinate (at most 8 significant digits, see formatG), matching
// spec.md §6's text form.
func (b GBOX) ToString() string {
	if b.IsEmpty {
		return "GBOX(EMPTY)"
	}
	var mins, maxs []string
	mins = append(mins, formatG(b.Xmin), formatG(b.Ymin))
	maxs = append(maxs, formatG(b.Xmax), formatG(b.Ymax))
	if b.Flags.HasZ() || b.Flags.Geodetic() {
		mins = append(mins, formatG(b.Zmin))
		maxs = append(maxs, formatG(b.Zmax))
	}
	if b.Flags.HasM() {
		mins = append(mins, formatG(b.Mmin))
		maxs = append(maxs, formatG(b.Mmax))
	}
	return fmt.Sprintf("GBOX((%s),(%s))", strings.Join(mins, ","), strings.Join(maxs, ","))
}

// formatG mimics printf's "%.8g": up to 8 significant digits, shortest
// representation that round-trips within that precision.
func formatG(f float64) string {
	return strconv.FormatFloat(f, 'g', 8, 64)
}

// GBoxFromString parses the "GBOX((min...),(max...))" text form produced by
// ToString.
func GBoxFromString(s string, f Flags) (GBOX, error) {
	s = strings.TrimSpace(s)
	if s == "GBOX(EMPTY)" {
		return NewEmptyGBox(f), nil
	}
	if !strings.HasPrefix(s, "GBOX((") || !strings.HasSuffix(s, "))") {
		return GBOX{}, &ErrMalformedInput{Reason: "not a GBOX text literal"}
	}
	inner := s[len("GBOX((") : len(s)-2]
	parts := strings.SplitN(inner, "),(", 2)
	if len(parts) != 2 {
		return GBOX{}, &ErrMalformedInput{Reason: "GBOX text literal missing min/max split"}
	}
	minVals, err := parseFloatList(parts[0])
	if err != nil {
		return GBOX{}, err
	}
	maxVals, err := parseFloatList(parts[1])
	if err != nil {
		return GBOX{}, err
	}
	b := GBOX{Flags: f}
	b.Xmin, b.Ymin = minVals[0], minVals[1]
	b.Xmax, b.Ymax = maxVals[0], maxVals[1]
	idx := 2
	if f.HasZ() || f.Geodetic() {
		b.Zmin, b.Zmax = minVals[idx], maxVals[idx]
		idx++
	}
	if f.HasM() {
		b.Mmin, b.Mmax = minVals[idx], maxVals[idx]
	}
	return b, nil
}

func parseFloatList(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, &ErrMalformedInput{Reason: "invalid float in GBOX text literal: " + field}
		}
		out[i] = v
	}
	return out, nil
}

// SerializedSize returns the number of float32 ordinates the wire bbox
// occupies: 6 when geodetic, else 2*ndims.
func SerializedSize(f Flags) int {
	if f.Geodetic() {
		return 6
	}
	return 2 * f.NDims()
}

// NextFloatDown returns the largest float32 value not greater than d,
// used to narrow a double-precision minimum to a conservative float32 wire
// bound (original_source/liblwgeom/g_serialized.c).
func NextFloatDown(d float64) float32 {
	f := float32(d)
	if float64(f) > d {
		f = math.Nextafter32(f, float32(math.Inf(-1)))
	}
	return f
}

// NextFloatUp returns the smallest float32 value not less than d.
func NextFloatUp(d float64) float32 {
	f := float32(d)
	if float64(f) < d {
		f = math.Nextafter32(f, float32(math.Inf(1)))
	}
	return f
}
