package usecase

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/TimSpecFlow/door-builder-app/internal/domain"
)

func TestNormalizeSpecification(t *testing.T) {
	t.Run("applies defaults to an empty payload", func(t *testing.T) {
		spec, err := NormalizeSpecification(map[string]interface{}{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spec.Width != 36 {
			t.Errorf("Width = %v, want 36", spec.Width)
		}
		if spec.Height != 80 {
			t.Errorf("Height = %v, want 80", spec.Height)
		}
		if spec.Thickness != "1-3/4" {
			t.Errorf("Thickness = %s, want 1-3/4", spec.Thickness)
		}
		if spec.DoorType != domain.DoorTypeInterior {
			t.Errorf("DoorType = %s, want interior", spec.DoorType)
		}
		if spec.Material != domain.MaterialWood {
			t.Errorf("Material = %s, want wood", spec.Material)
		}
		if spec.FireRating != domain.FireRatingNone {
			t.Errorf("FireRating = %s, want none", spec.FireRating)
		}
		if spec.PrepType != domain.PrepTypeSingleBore {
			t.Errorf("PrepType = %s, want single-bore", spec.PrepType)
		}
		if spec.HingeCount != 3 {
			t.Errorf("HingeCount = %d, want 3", spec.HingeCount)
		}
		if spec.HasGlass {
			t.Error("HasGlass = true, want false")
		}
	})

	t.Run("null fields fall back to defaults", func(t *testing.T) {
		spec, err := NormalizeSpecification(map[string]interface{}{
			"width":    nil,
			"doorType": nil,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spec.Width != 36 {
			t.Errorf("Width = %v, want 36", spec.Width)
		}
		if spec.DoorType != domain.DoorTypeInterior {
			t.Errorf("DoorType = %s, want interior", spec.DoorType)
		}
	})

	t.Run("accepts numeric strings for dimensions", func(t *testing.T) {
		spec, err := NormalizeSpecification(map[string]interface{}{
			"width":  "34.5",
			"height": " 82 ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spec.Width != 34.5 {
			t.Errorf("Width = %v, want 34.5", spec.Width)
		}
		if spec.Height != 82 {
			t.Errorf("Height = %v, want 82", spec.Height)
		}
	})

	t.Run("accepts json.Number dimensions", func(t *testing.T) {
		spec, err := NormalizeSpecification(map[string]interface{}{
			"width": json.Number("35.75"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spec.Width != 35.75 {
			t.Errorf("Width = %v, want 35.75", spec.Width)
		}
	})

	t.Run("rejects non-numeric width", func(t *testing.T) {
		_, err := NormalizeSpecification(map[string]interface{}{"width": "wide"})
		if !errors.Is(err, domain.ErrInvalidSpecification) {
			t.Errorf("error = %v, want ErrInvalidSpecification", err)
		}
	})

	t.Run("rejects non-numeric height", func(t *testing.T) {
		_, err := NormalizeSpecification(map[string]interface{}{"height": true})
		if !errors.Is(err, domain.ErrInvalidSpecification) {
			t.Errorf("error = %v, want ErrInvalidSpecification", err)
		}
	})

	t.Run("canonicalizes hardware tokens", func(t *testing.T) {
		spec, err := NormalizeSpecification(map[string]interface{}{
			"hardware": []interface{}{"Electric Strike", "door_closer", "LOCKSET"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"electricstrike", "doorcloser", "lockset"}
		if len(spec.Hardware) != len(want) {
			t.Fatalf("Hardware = %v, want %v", spec.Hardware, want)
		}
		for i := range want {
			if spec.Hardware[i] != want[i] {
				t.Errorf("Hardware[%d] = %s, want %s", i, spec.Hardware[i], want[i])
			}
		}
	})

	t.Run("accepts a plain string slice for hardware", func(t *testing.T) {
		spec, err := NormalizeSpecification(map[string]interface{}{
			"hardware": []string{"deadbolt"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !spec.HasHardware(domain.HardwareDeadbolt) {
			t.Errorf("Hardware = %v, want deadbolt present", spec.Hardware)
		}
	})

	t.Run("lowercases material", func(t *testing.T) {
		spec, err := NormalizeSpecification(map[string]interface{}{"material": "Steel"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spec.Material != domain.MaterialSteel {
			t.Errorf("Material = %s, want steel", spec.Material)
		}
	})

	t.Run("bad hinge count falls back to default", func(t *testing.T) {
		spec, err := NormalizeSpecification(map[string]interface{}{"hingeCount": "many"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spec.HingeCount != 3 {
			t.Errorf("HingeCount = %d, want 3", spec.HingeCount)
		}
	})

	t.Run("reads specialty flags", func(t *testing.T) {
		spec, err := NormalizeSpecification(map[string]interface{}{
			"specialtyType":   "lead_lined",
			"bulletResistant": true,
			"aesthetic":       true,
			"acoustical":      "yes", // non-bool values read as false
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if spec.SpecialtyType != "lead_lined" {
			t.Errorf("SpecialtyType = %s, want lead_lined", spec.SpecialtyType)
		}
		if !spec.BulletResistant || !spec.Aesthetic {
			t.Error("BulletResistant/Aesthetic not set from payload")
		}
		if spec.Acoustical {
			t.Error("Acoustical = true for a non-bool value, want false")
		}
	})

	t.Run("is deterministic for identical input", func(t *testing.T) {
		raw := map[string]interface{}{
			"width":    34.0,
			"doorType": "commercial",
			"hardware": []interface{}{"lockset"},
		}
		a, err := NormalizeSpecification(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := NormalizeSpecification(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Width != b.Width || a.DoorType != b.DoorType || a.Hardware[0] != b.Hardware[0] {
			t.Error("identical input produced different specifications")
		}
	})
}
