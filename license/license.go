// Package license implements a compact 32-byte wire format for font
// usage rights: per-title licensing, platform restrictions, and seat
// limits.
//
// Parametric fonts are license-free: they are generated from a
// 40-byte parameter buffer rather than loaded from a copyrighted font
// file. TypeParametric makes that distinction
// explicit: such licenses validate against only the parameter hash.
package license

import "github.com/gogpu/metafont/param"

// Rights is a usage rights bit field.
type Rights uint16

const (
	RightCommercial     Rights = 0x01
	RightModification   Rights = 0x02
	RightRedistribution Rights = 0x04
	RightEmbedding      Rights = 0x08
	RightDerivative     Rights = 0x10
	RightServerUse      Rights = 0x20
	RightBroadcast      Rights = 0x40
	RightPrint          Rights = 0x80
	RightGameBundle     Rights = 0x100
	RightCJKExtended    Rights = 0x200

	// RightsGameStandard covers standard game distribution.
	RightsGameStandard = RightCommercial | RightEmbedding | RightGameBundle | RightModification

	// RightsAll grants every defined right.
	RightsAll Rights = 0x03FF
)

// Has reports whether all bits of flag are set.
func (r Rights) Has(flag Rights) bool {
	return r&flag == flag
}

// With returns r with flag set.
func (r Rights) With(flag Rights) Rights {
	return r | flag
}

// Without returns r with flag cleared.
func (r Rights) Without(flag Rights) Rights {
	return r &^ flag
}

// Platform is a platform restriction bit field.
type Platform uint8

const (
	PlatformPC      Platform = 0x01
	PlatformConsole Platform = 0x02
	PlatformMobile  Platform = 0x04
	PlatformWeb     Platform = 0x08
	PlatformVR      Platform = 0x10
	PlatformArcade  Platform = 0x20

	// PlatformAll allows every defined platform.
	PlatformAll Platform = 0x3F
)

// Has reports whether all bits of flag are set.
func (p Platform) Has(flag Platform) bool {
	return p&flag == flag
}

// With returns p with flag set.
func (p Platform) With(flag Platform) Platform {
	return p | flag
}

// Type identifies the kind of license.
type Type uint8

const (
	TypeOpenSource Type = iota
	TypeCommercial
	TypeTrial
	TypeInternal
	// TypeParametric marks fonts generated from parameters, which are
	// inherently free.
	TypeParametric

	typeMax
)

func (t Type) String() string {
	switch t {
	case TypeOpenSource:
		return "open-source"
	case TypeCommercial:
		return "commercial"
	case TypeTrial:
		return "trial"
	case TypeInternal:
		return "internal"
	case TypeParametric:
		return "parametric"
	}
	return "unknown"
}

// License is font license metadata with a fixed 32-byte wire form.
type License struct {
	// ContentHash is the FNV-1a hash of the deterministic fields.
	ContentHash uint64
	// ParamsHash binds the license to a specific parameter encoding.
	ParamsHash uint64
	// TitleID restricts use to one game title. 0 means unrestricted.
	TitleID uint32
	// Expires is the expiration in epoch seconds. 0 means permanent.
	Expires uint32
	Rights  Rights
	// MaxSeats limits concurrent seats. 0 means unlimited.
	MaxSeats uint16
	Type     Type
	Platform Platform
}

// ParametricFree creates a free license for a parametric font: all
// rights, all platforms, permanent.
func ParametricFree(params param.ParamSet) License {
	enc := params.Encode()
	l := License{
		ParamsHash: fnv1a(enc[:]),
		Rights:     RightsAll,
		Type:       TypeParametric,
		Platform:   PlatformAll,
	}
	l.ContentHash = l.computeHash()
	return l
}

// ForGameTitle creates a commercial license bound to a game title.
func ForGameTitle(params param.ParamSet, titleID uint32, platform Platform) License {
	enc := params.Encode()
	l := License{
		ParamsHash: fnv1a(enc[:]),
		TitleID:    titleID,
		Rights:     RightsGameStandard,
		Type:       TypeCommercial,
		Platform:   platform,
	}
	l.ContentHash = l.computeHash()
	return l
}

// IsParametricFree reports whether the license is an unrestricted
// parametric font license.
func (l *License) IsParametricFree() bool {
	return l.Type == TypeParametric && l.Rights == RightsAll && l.Platform == PlatformAll
}

// computeHash derives the content hash from the deterministic fields.
func (l *License) computeHash() uint64 {
	var key [20]byte
	key[0] = byte(l.Type)
	key[1] = byte(l.Platform)
	key[2] = byte(l.Rights)
	key[3] = byte(l.Rights >> 8)
	key[4] = byte(l.TitleID)
	key[5] = byte(l.TitleID >> 8)
	key[6] = byte(l.TitleID >> 16)
	key[7] = byte(l.TitleID >> 24)
	key[8] = byte(l.MaxSeats)
	key[9] = byte(l.MaxSeats >> 8)
	key[10] = byte(l.Expires)
	key[11] = byte(l.Expires >> 8)
	key[12] = byte(l.Expires >> 16)
	key[13] = byte(l.Expires >> 24)
	for i := 0; i < 6; i++ {
		key[14+i] = byte(l.ParamsHash >> (8 * i))
	}
	return fnv1a(key[:])
}

func fnv1a(data []byte) uint64 {
	h := uint64(0xcbf29ce484222325)
	for _, b := range data {
		h ^= uint64(b)
		h *= 0x100000001b3
	}
	return h
}
