package distributor

import (
	"testing"

	"github.com/TimSpecFlow/door-builder-app/internal/domain"
)

func TestSecLockInfo(t *testing.T) {
	d := NewSecLock()
	if d.ID() != "seclock" {
		t.Errorf("ID = %s, want seclock", d.ID())
	}
	if d.Info().Name != "SecLock" {
		t.Errorf("Name = %s, want SecLock", d.Info().Name)
	}
}

func TestSecLockMatch(t *testing.T) {
	d := NewSecLock()

	t.Run("heavy door gets the heavy duty closer", func(t *testing.T) {
		s := commercialSpec()
		s.Width = 44
		names := namesInCategory(d.Match(s), "Door Closers")
		if len(names) != 1 || names[0] != "LCN 4040XP Series Heavy Duty Door Closer" {
			t.Errorf("Door Closers = %v, want the LCN 4040XP only", names)
		}
	})

	t.Run("standard door gets the standard closer", func(t *testing.T) {
		names := namesInCategory(d.Match(commercialSpec()), "Door Closers")
		if len(names) != 1 || names[0] != "Norton 7500 Series Door Closer" {
			t.Errorf("Door Closers = %v, want the Norton 7500 only", names)
		}
	})

	t.Run("steel material routes to heavy tier", func(t *testing.T) {
		s := commercialSpec()
		s.Material = domain.MaterialSteel
		names := namesInCategory(d.Match(s), "Door Closers")
		if len(names) != 1 || names[0] != "LCN 4040XP Series Heavy Duty Door Closer" {
			t.Errorf("Door Closers = %v, want the LCN 4040XP only", names)
		}
	})

	t.Run("commercial door gets one lock per premium brand", func(t *testing.T) {
		names := namesInCategory(d.Match(commercialSpec()), "Commercial Locks")
		want := []string{"Schlage ND Series Cylindrical Lock", "Corbin Russwin CL3300 Series Cylindrical Lock"}
		if len(names) != 2 || names[0] != want[0] || names[1] != want[1] {
			t.Errorf("Commercial Locks = %v, want %v", names, want)
		}
	})

	t.Run("non-commercial door with lockset gets the mid-range line", func(t *testing.T) {
		s := interiorSpec()
		s.Hardware = []string{domain.HardwareLockset}
		recs := d.Match(s)
		names := namesInCategory(recs, "Cylindrical Locks")
		if len(names) != 1 || names[0] != "Schlage ALX Series Cylindrical Lock" {
			t.Errorf("Cylindrical Locks = %v, want the ALX series only", names)
		}
		if n := countCategory(recs, "Commercial Locks"); n != 0 {
			t.Errorf("Commercial Locks = %d for interior door, want 0", n)
		}
	})

	t.Run("deadbolt tier follows the prep type", func(t *testing.T) {
		s := interiorSpec()
		s.Hardware = []string{domain.HardwareDeadbolt}

		recs := d.Match(s)
		if n := countCategory(recs, "Commercial Deadbolts"); n != 1 {
			t.Errorf("Commercial Deadbolts = %d, want 1", n)
		}
		if n := countCategory(recs, "High-Security Deadbolts"); n != 0 {
			t.Errorf("High-Security Deadbolts = %d, want 0", n)
		}

		s.PrepType = domain.PrepTypeHighSecurity
		recs = d.Match(s)
		if n := countCategory(recs, "High-Security Deadbolts"); n != 1 {
			t.Errorf("High-Security Deadbolts = %d, want 1", n)
		}
		if n := countCategory(recs, "Commercial Deadbolts"); n != 0 {
			t.Errorf("Commercial Deadbolts = %d, want 0", n)
		}
	})

	t.Run("high security prep adds cylinders and cores", func(t *testing.T) {
		s := interiorSpec()
		s.PrepType = domain.PrepTypeHighSecurity
		recs := d.Match(s)
		if n := countCategory(recs, "High Security Cylinders"); n != 1 {
			t.Errorf("High Security Cylinders = %d, want 1", n)
		}
		if n := countCategory(recs, "Interchangeable Cores"); n != 1 {
			t.Errorf("Interchangeable Cores = %d, want 1", n)
		}
	})

	t.Run("ic core hardware adds cylinders and cores", func(t *testing.T) {
		s := interiorSpec()
		s.Hardware = []string{domain.HardwareICCore}
		recs := d.Match(s)
		if n := countCategory(recs, "Interchangeable Cores"); n != 1 {
			t.Errorf("Interchangeable Cores = %d, want 1", n)
		}
	})

	t.Run("panic hardware triggers exit devices on any door", func(t *testing.T) {
		s := interiorSpec()
		s.Hardware = []string{domain.HardwarePanic}
		names := namesInCategory(d.Match(s), "Exit Devices")
		if len(names) != 2 {
			t.Fatalf("Exit Devices = %v, want one Von Duprin and one Falcon", names)
		}
		if names[0] != "Von Duprin 99 Series Exit Device" {
			t.Errorf("first exit device = %s, want the Von Duprin 99", names[0])
		}
	})

	t.Run("every door gets exactly one hinge recommendation", func(t *testing.T) {
		specs := []*domain.DoorSpecification{
			interiorSpec(),
			commercialSpec(),
			{Width: 48, Height: 96, DoorType: domain.DoorTypeCommercial, Material: domain.MaterialSteel},
		}
		for _, s := range specs {
			if n := countCategory(d.Match(s), "Hinges"); n != 1 {
				t.Errorf("Hinges = %d for %s %vx%v, want 1", n, s.DoorType, s.Width, s.Height)
			}
		}
	})

	t.Run("tall door gets heavy weight hinges", func(t *testing.T) {
		s := interiorSpec()
		s.Height = 96
		names := namesInCategory(d.Match(s), "Hinges")
		if len(names) != 1 || names[0] != "McKinney TA2714 Heavy Weight Hinge" {
			t.Errorf("Hinges = %v, want the McKinney TA2714 only", names)
		}
	})

	t.Run("electric strike adds strike and electric hinge", func(t *testing.T) {
		s := commercialSpec()
		s.Hardware = []string{domain.HardwareElectricStrike}
		recs := d.Match(s)
		names := namesInCategory(recs, "Electric Strikes")
		if len(names) != 1 || names[0] != "HES 1006 Electric Strike" {
			t.Errorf("Electric Strikes = %v, want the HES 1006 only", names)
		}
		hinges := namesInCategory(recs, "Electric Hinges")
		if len(hinges) != 1 || hinges[0] != "McKinney T4A3786 Electric Hinge" {
			t.Errorf("Electric Hinges = %v, want the T4A3786 only", hinges)
		}
	})

	t.Run("maglock adds electromagnetic lock and electric hinge", func(t *testing.T) {
		s := commercialSpec()
		s.Hardware = []string{domain.HardwareMaglock}
		recs := d.Match(s)
		if n := countCategory(recs, "Electromagnetic Locks"); n != 1 {
			t.Errorf("Electromagnetic Locks = %d, want 1", n)
		}
		if n := countCategory(recs, "Electric Hinges"); n != 1 {
			t.Errorf("Electric Hinges = %d, want 1", n)
		}
	})

	t.Run("keypad adds keypad lock and access control", func(t *testing.T) {
		s := interiorSpec()
		s.Hardware = []string{domain.HardwareKeypad}
		recs := d.Match(s)
		if n := countCategory(recs, "Electronic Keypad Locks"); n != 1 {
			t.Errorf("Electronic Keypad Locks = %d, want 1", n)
		}
		if n := countCategory(recs, "Electronic Access Control"); n != 1 {
			t.Errorf("Electronic Access Control = %d, want 1", n)
		}
	})

	t.Run("commercial door gets protection and plates", func(t *testing.T) {
		recs := d.Match(commercialSpec())
		if n := countCategory(recs, "Door Protection"); n != 1 {
			t.Errorf("Door Protection = %d, want 1", n)
		}
		if n := countCategory(recs, "Push/Pull Plates"); n != 1 {
			t.Errorf("Push/Pull Plates = %d, want 1", n)
		}
	})

	t.Run("fire rated door gets fire hardware and seals", func(t *testing.T) {
		s := interiorSpec()
		s.FireRating = "45-min"
		recs := d.Match(s)
		if n := countCategory(recs, "Fire Door Hardware"); n != 1 {
			t.Errorf("Fire Door Hardware = %d, want 1", n)
		}
		if n := countCategory(recs, "Fire Door Seals"); n != 1 {
			t.Errorf("Fire Door Seals = %d, want 1", n)
		}
		// A fire rating alone also gates the closer tier.
		if n := countCategory(recs, "Door Closers"); n != 1 {
			t.Errorf("Door Closers = %d for fire rated interior door, want 1", n)
		}
	})

	t.Run("exterior door gets weatherstripping", func(t *testing.T) {
		s := interiorSpec()
		s.DoorType = domain.DoorTypeExteriorPatio
		if n := countCategory(d.Match(s), "Weatherstripping"); n != 2 {
			t.Errorf("Weatherstripping = %d, want 2", n)
		}
		if n := countCategory(d.Match(interiorSpec()), "Weatherstripping"); n != 0 {
			t.Errorf("Weatherstripping = %d for interior door, want 0", n)
		}
	})

	t.Run("auto operator hardware adds operators", func(t *testing.T) {
		s := commercialSpec()
		s.Hardware = []string{domain.HardwareAutoOperator}
		names := namesInCategory(d.Match(s), "Automatic Door Operators")
		if len(names) != 1 || names[0] != "Norton 5600 ADAEZ PRO Operator" {
			t.Errorf("Automatic Door Operators = %v, want the Norton 5600 only", names)
		}
	})

	t.Run("label carries the manufacturer", func(t *testing.T) {
		recs := d.Match(commercialSpec())
		if len(recs) == 0 {
			t.Fatal("no recommendations")
		}
		if recs[0].Distributor != "SecLock (Norton)" {
			t.Errorf("Distributor = %s, want SecLock (Norton)", recs[0].Distributor)
		}
	})
}
