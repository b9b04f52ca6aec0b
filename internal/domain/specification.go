package domain

import "strings"

// Door type values recognized by the distributor matchers
const (
	DoorTypeInterior      = "interior"
	DoorTypeExteriorEntry = "exterior-entry"
	DoorTypeExteriorPatio = "exterior-patio"
	DoorTypeCloset        = "closet"
	DoorTypeBarn          = "barn"
	DoorTypePocket        = "pocket"
	DoorTypeBifold        = "bifold"
	DoorTypeCommercial    = "commercial"
)

// Material values
const (
	MaterialWood       = "wood"
	MaterialSteel      = "steel"
	MaterialFiberglass = "fiberglass"
	MaterialAluminum   = "aluminum"
	MaterialComposite  = "composite"
	MaterialStainless  = "stainless"
)

// FireRatingNone marks a door that is not fire rated
const FireRatingNone = "none"

// Prep types that change which product line a matcher selects
const (
	PrepTypeSingleBore   = "single-bore"
	PrepTypeMortise      = "mortise"
	PrepTypeHighSecurity = "high-security"
)

// Canonical hardware tokens. Caller input goes through
// NormalizeHardwareToken first, so "Electric Strike", "electric_strike"
// and "electricstrike" all compare equal to HardwareElectricStrike.
const (
	HardwareDoorCloser     = "doorcloser"
	HardwareLockset        = "lockset"
	HardwareHandle         = "handle"
	HardwareHinges         = "hinges"
	HardwareDeadbolt       = "deadbolt"
	HardwarePanic          = "panic"
	HardwareElectricStrike = "electricstrike"
	HardwareMaglock        = "maglock"
	HardwareKeypad         = "keypad"
	HardwareAutoOperator   = "autooperator"
	HardwareICCore         = "iccore"
)

// DoorSpecification is a fully defaulted, typed description of a door.
// It is produced by the specification normalizer, consumed by the
// distributor matchers and the price estimator, and discarded after use.
type DoorSpecification struct {
	Width      float64
	Height     float64
	Thickness  string
	DoorType   string
	Material   string
	Hardware   []string // canonical tokens, see NormalizeHardwareToken
	FireRating string
	HasGlass   bool
	GlassType  string
	PrepType   string
	HingeCount int

	// Specialty door requirements (ASSA ABLOY DSS catalog)
	SpecialtyType      string
	Acoustical         bool
	BulletResistant    bool
	BlastResistant     bool
	HurricaneResistant bool
	AttackResistant    bool
	FloodResistant     bool
	LeadLined          bool
	EMIShielding       bool
	Aesthetic          bool
}

// IsFireRated reports whether the door carries any fire rating.
func (s *DoorSpecification) IsFireRated() bool {
	return s.FireRating != FireRatingNone && s.FireRating != ""
}

// IsCommercial reports whether the door is a commercial or
// exterior-entry opening. Several matchers key off this grouping.
func (s *DoorSpecification) IsCommercial() bool {
	return s.DoorType == DoorTypeCommercial || s.DoorType == DoorTypeExteriorEntry
}

// IsExterior reports whether the door faces the outside.
func (s *DoorSpecification) IsExterior() bool {
	return s.DoorType == DoorTypeExteriorEntry || s.DoorType == DoorTypeExteriorPatio
}

// HasHardware reports whether the hardware list contains the canonical token.
func (s *DoorSpecification) HasHardware(token string) bool {
	for _, h := range s.Hardware {
		if h == token {
			return true
		}
	}
	return false
}

// NormalizeHardwareToken lower-cases a caller-supplied hardware name and
// strips internal whitespace, underscores, and hyphens so membership tests
// are insensitive to formatting variance in caller input.
func NormalizeHardwareToken(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToLower(raw) {
		switch r {
		case ' ', '\t', '_', '-':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
