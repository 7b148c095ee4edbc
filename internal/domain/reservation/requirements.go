package reservation

// Catalog is the fixed, ordered list of special-requirement labels. The
// persisted representation is an array of "true"/"false" strings aligned
// positionally with this list, so the order here is part of the wire
// contract and must not change.
var Catalog = []string{
	"Extra Bed",
	"Crib",
	"Minibar",
	"Freezer",
}

const wireTrue = "true"
const wireFalse = "false"

// Requirements is the canonical in-memory form of the special-requirement
// flags: one boolean per catalog position. Both the create and the edit
// paths produce and consume this shape; string encoding happens only at the
// wire boundary.
type Requirements []bool

func NewRequirements() Requirements {
	return make(Requirements, len(Catalog))
}

// RequirementsFromLabels builds flags from the set of checked catalog
// labels. Labels outside the catalog are ignored.
func RequirementsFromLabels(labels []string) Requirements {
	checked := make(map[string]bool, len(labels))
	for _, l := range labels {
		checked[l] = true
	}
	r := NewRequirements()
	for i, label := range Catalog {
		r[i] = checked[label]
	}
	return r
}

// DecodeRequirements converts the stored string array back to flags. Only
// the exact literal "true" sets a flag; records persisted before a catalog
// addition may be shorter than the catalog, and the missing trailing entries
// decode as false.
func DecodeRequirements(wire []string) Requirements {
	r := NewRequirements()
	for i := range r {
		if i < len(wire) && wire[i] == wireTrue {
			r[i] = true
		}
	}
	return r
}

// Encode produces the fixed-length persisted representation.
func (r Requirements) Encode() []string {
	out := make([]string, len(Catalog))
	for i := range out {
		if i < len(r) && r[i] {
			out[i] = wireTrue
		} else {
			out[i] = wireFalse
		}
	}
	return out
}

// Labels returns the checked catalog labels in catalog order.
func (r Requirements) Labels() []string {
	var out []string
	for i, label := range Catalog {
		if i < len(r) && r[i] {
			out = append(out, label)
		}
	}
	return out
}

func (r Requirements) Any() bool {
	for _, v := range r {
		if v {
			return true
		}
	}
	return false
}
