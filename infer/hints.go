package infer

// Hints configure how the inferrer interprets particular positions in
// example documents. Each path is an ordered sequence of property names
// from the document root. Traversing into an array or into the members
// of a map-hinted object does not extend the path, because all of those
// positions share one schema node.
type Hints struct {
	// DefaultNumType is used for the first number seen at a position
	// whenever it can represent that number exactly.
	DefaultNumType NumType

	// Enums marks string positions to infer as enums.
	Enums HintSet

	// Values marks object positions to infer as free-form maps. Since
	// members of the map all share the hinted position's path, the hint
	// is recursive: an object member of a hinted map is itself inferred
	// as a map.
	Values HintSet

	// Discriminators marks tag properties of discriminated unions. A
	// path here names the tag property itself; the object one level up
	// becomes the discriminator.
	Discriminators HintSet
}

// HintSet is a set of document paths.
type HintSet [][]string

// NewHintSet builds a hint set from literal paths.
func NewHintSet(paths ...[]string) HintSet {
	return HintSet(paths)
}

// Matches reports whether path is a member of the set. Matching is by
// exact path equality, no prefix or wildcard forms.
func (h HintSet) Matches(path []string) bool {
	for _, p := range h {
		if pathEqual(p, path) {
			return true
		}
	}
	return false
}

// DiscriminatorTag returns the tag property name for an object at path,
// if a discriminator hint applies there. The hint's final segment is
// the tag; the segments before it locate the object.
func (h *Hints) DiscriminatorTag(path []string) (string, bool) {
	for _, p := range h.Discriminators {
		if len(p) > 0 && pathEqual(p[:len(p)-1], path) {
			return p[len(p)-1], true
		}
	}
	return "", false
}

func pathEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
