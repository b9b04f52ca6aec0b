package usecase

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/TimSpecFlow/door-builder-app/internal/domain"
)

// Defaults applied by the normalizer. Every recognized attribute has one,
// so a specification is always fully populated before matching.
const (
	defaultWidth      = 36.0
	defaultHeight     = 80.0
	defaultThickness  = "1-3/4"
	defaultHingeCount = 3
)

// NormalizeSpecification turns arbitrary caller-supplied attributes into a
// complete, defaulted door specification. Absent or null fields take their
// defaults; numeric fields accept numbers or numeric strings. A non-numeric
// width or height fails with ErrInvalidSpecification and no partial
// specification is returned. For any syntactically acceptable input there
// is exactly one normalized output.
func NormalizeSpecification(raw map[string]interface{}) (*domain.DoorSpecification, error) {
	width, err := floatField(raw, "width", defaultWidth)
	if err != nil {
		return nil, err
	}
	height, err := floatField(raw, "height", defaultHeight)
	if err != nil {
		return nil, err
	}

	spec := &domain.DoorSpecification{
		Width:      width,
		Height:     height,
		Thickness:  stringField(raw, "thickness", defaultThickness),
		DoorType:   stringField(raw, "doorType", domain.DoorTypeInterior),
		Material:   strings.ToLower(stringField(raw, "material", domain.MaterialWood)),
		Hardware:   hardwareField(raw),
		FireRating: stringField(raw, "fireRating", domain.FireRatingNone),
		HasGlass:   boolField(raw, "hasGlass"),
		GlassType:  stringField(raw, "glassType", ""),
		PrepType:   stringField(raw, "prepType", domain.PrepTypeSingleBore),
		HingeCount: intField(raw, "hingeCount", defaultHingeCount),

		SpecialtyType:      stringField(raw, "specialtyType", ""),
		Acoustical:         boolField(raw, "acoustical"),
		BulletResistant:    boolField(raw, "bulletResistant"),
		BlastResistant:     boolField(raw, "blastResistant"),
		HurricaneResistant: boolField(raw, "hurricaneResistant"),
		AttackResistant:    boolField(raw, "attackResistant"),
		FloodResistant:     boolField(raw, "floodResistant"),
		LeadLined:          boolField(raw, "leadLined"),
		EMIShielding:       boolField(raw, "emiShielding"),
		Aesthetic:          boolField(raw, "aesthetic"),
	}
	return spec, nil
}

// floatField coerces a numeric or numeric-string value, failing with
// ErrInvalidSpecification when the value is present but not coercible.
func floatField(raw map[string]interface{}, key string, def float64) (float64, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be numeric, got %q", domain.ErrInvalidSpecification, key, n.String())
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be numeric, got %q", domain.ErrInvalidSpecification, key, n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %s must be numeric, got %T", domain.ErrInvalidSpecification, key, v)
	}
}

// intField coerces like floatField but falls back to the default instead of
// failing; only width and height are hard requirements.
func intField(raw map[string]interface{}, key string, def int) int {
	f, err := floatField(raw, key, float64(def))
	if err != nil {
		return def
	}
	return int(f)
}

func stringField(raw map[string]interface{}, key, def string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return def
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return def
	}
	return s
}

func boolField(raw map[string]interface{}, key string) bool {
	v, ok := raw[key]
	if !ok || v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// hardwareField reads the hardware list and canonicalizes each token.
func hardwareField(raw map[string]interface{}) []string {
	v, ok := raw["hardware"]
	if !ok || v == nil {
		return nil
	}

	var items []string
	switch list := v.(type) {
	case []string:
		items = list
	case []interface{}:
		for _, it := range list {
			if s, ok := it.(string); ok {
				items = append(items, s)
			}
		}
	default:
		return nil
	}

	var tokens []string
	for _, item := range items {
		if t := domain.NormalizeHardwareToken(item); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
