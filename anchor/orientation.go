package anchor

// Orientation tells which edge of a mobile element an alignment's clip
// evidence is consistent with. Values are produced by MEAnchor.Tag and by
// the read-level aggregation in package chimeric.
type Orientation uint8

const (
	None Orientation = iota
	Upstream
	Downstream
	// Palindromic marks a read with as much upstream as downstream
	// evidence. It is never assigned to a single alignment.
	Palindromic
)

var orientationNames = [...]string{
	None:        "none",
	Upstream:    "upstream",
	Downstream:  "downstream",
	Palindromic: "palindromic",
}

func (o Orientation) String() string {
	if int(o) < len(orientationNames) {
		return orientationNames[o]
	}
	return "invalid"
}

// legacyOrientations maps the string tags written by earlier pipeline
// versions. Those versions wrote an empty string for untagged alignments.
var legacyOrientations = map[string]Orientation{
	"":            None,
	"none":        None,
	"upstream":    Upstream,
	"downstream":  Downstream,
	"palindromic": Palindromic,
}

// ParseOrientation converts a string tag back to an Orientation. It returns
// false for unknown tags.
func ParseOrientation(s string) (Orientation, bool) {
	o, ok := legacyOrientations[s]
	return o, ok
}
