package textgrid

// Attr names a single cell attribute
type Attr int

// Attr constants. AttrNone never matches: testing a cell for AttrNone is
// always false, which lets scans treat every cell as a candidate.
const (
	AttrNone Attr = iota
	AttrInverted
	AttrHidden
	AttrLocked
	AttrMarked
	AttrTransparent
)

// String returns the string representation of an attribute
func (a Attr) String() string {
	switch a {
	case AttrInverted:
		return "inverted"
	case AttrHidden:
		return "hidden"
	case AttrLocked:
		return "locked"
	case AttrMarked:
		return "marked"
	case AttrTransparent:
		return "transparent"
	default:
		return "none"
	}
}

// Attrs is the set of attributes carried by one character cell
type Attrs struct {
	Inverted    bool
	Hidden      bool
	Locked      bool
	Marked      bool
	Transparent bool
}

// LockedAttrs is the attribute set given to locked (black) cells: they are
// either transparent or drawn inverted and hidden.
func LockedAttrs(wildTransparent bool) Attrs {
	if wildTransparent {
		return Attrs{Locked: true, Transparent: true}
	}
	return Attrs{Locked: true, Inverted: true, Hidden: true}
}

// Has reports whether the attribute is set
func (a Attrs) Has(attr Attr) bool {
	switch attr {
	case AttrInverted:
		return a.Inverted
	case AttrHidden:
		return a.Hidden
	case AttrLocked:
		return a.Locked
	case AttrMarked:
		return a.Marked
	case AttrTransparent:
		return a.Transparent
	default:
		return false
	}
}

// Set turns one attribute on or off
func (a *Attrs) Set(attr Attr, on bool) {
	switch attr {
	case AttrInverted:
		a.Inverted = on
	case AttrHidden:
		a.Hidden = on
	case AttrLocked:
		a.Locked = on
	case AttrMarked:
		a.Marked = on
	case AttrTransparent:
		a.Transparent = on
	}
}

// IsNormal returns true if no attribute is set
func (a Attrs) IsNormal() bool {
	return a == Attrs{}
}
