// Package content describes what a cell shows: a piece of text, an image, a
// media clip or a combination of them. Units are created once when a content
// description is loaded and are read-only afterwards; cells keep references
// to them, never copies.
package content

import (
	"fmt"
	"strings"
)

// Kind is the kind of payload carried by a Unit
type Kind int

// Kind constants
const (
	KindText Kind = iota
	KindImage
	KindMedia
	KindComposite
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindMedia:
		return "media"
	case KindComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// Ref is an opaque handle to an asset owned by a rendering or media
// collaborator. Two refs are the same asset iff they are equal.
type Ref string

// Unit is one piece of displayable or playable content
type Unit struct {
	ID       int
	Kind     Kind
	Text     string
	ImageRef Ref
	MediaRef Ref

	// CaseSensitive is a hint carried from the content description. Judging
	// code decides the mode explicitly; the hint is only a default.
	CaseSensitive bool
}

// Text creates a text unit
func Text(id int, s string) *Unit {
	return &Unit{ID: id, Kind: KindText, Text: s}
}

// Image creates an image unit
func Image(id int, ref Ref) *Unit {
	return &Unit{ID: id, Kind: KindImage, ImageRef: ref}
}

// Media creates a media unit
func Media(id int, ref Ref) *Unit {
	return &Unit{ID: id, Kind: KindMedia, MediaRef: ref}
}

// Blank returns the filler used when a bag is too short for its grid
func Blank() *Unit {
	return &Unit{ID: -1, Kind: KindText}
}

// IsEmpty returns true if the unit carries no payload at all
func (u *Unit) IsEmpty() bool {
	if u == nil {
		return true
	}
	return u.Text == "" && u.ImageRef == "" && u.MediaRef == ""
}

// HasMedia returns true if the unit references something playable
func (u *Unit) HasMedia() bool {
	return u != nil && u.MediaRef != ""
}

// Description returns a short human-readable label, used in progress reports
func (u *Unit) Description() string {
	if u == nil {
		return ""
	}
	var parts []string
	if u.Text != "" {
		parts = append(parts, u.Text)
	}
	if u.ImageRef != "" {
		parts = append(parts, fmt.Sprintf("image:%s", u.ImageRef))
	}
	if u.MediaRef != "" {
		parts = append(parts, fmt.Sprintf("media:%s", u.MediaRef))
	}
	return strings.Join(parts, " ")
}

// String implements fmt.Stringer
func (u *Unit) String() string {
	if u.IsEmpty() {
		return "-"
	}
	return u.Description()
}

// IsEquivalent reports whether a and b show the same thing. Text is compared
// by value (folding case unless caseSensitive), images and media by asset
// identity. Units of different kinds are never equivalent.
func IsEquivalent(a, b *Unit, caseSensitive bool) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindText:
		return sameText(a.Text, b.Text, caseSensitive)
	case KindImage:
		return a.ImageRef == b.ImageRef
	case KindMedia:
		return a.MediaRef == b.MediaRef
	case KindComposite:
		return sameText(a.Text, b.Text, caseSensitive) &&
			a.ImageRef == b.ImageRef &&
			a.MediaRef == b.MediaRef
	default:
		return false
	}
}

// IsEquivalent is the method form of the package-level IsEquivalent
func (u *Unit) IsEquivalent(other *Unit, caseSensitive bool) bool {
	return IsEquivalent(u, other, caseSensitive)
}

func sameText(a, b string, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}
