package distributor

import "github.com/TimSpecFlow/door-builder-app/internal/domain"

// Dormakaba encodes its matching criteria declaratively on the catalog
// entries (door-type allow-lists, width bounds); rules consult the width
// bounds when narrowing candidates.
type dormakabaCatalog struct {
	SurfaceClosers     []domain.CatalogEntry
	ConcealedClosers   []domain.CatalogEntry
	MortiseLocks       []domain.CatalogEntry
	CylindricalLocks   []domain.CatalogEntry
	Deadbolts          []domain.CatalogEntry
	RimExitDevices     []domain.CatalogEntry
	NarrowStileExits   []domain.CatalogEntry
	LowEnergyOperators []domain.CatalogEntry
	FireLifeSafety     []domain.CatalogEntry
	SimplexLocks       []domain.CatalogEntry
	ElectronicAccess   []domain.CatalogEntry
}

const dormakabaHardwareURL = "https://www.dormakaba.com/us-en/offering/products/door-hardware"

var dormakabaProducts = dormakabaCatalog{
	SurfaceClosers: []domain.CatalogEntry{
		{
			Name:         "8600 Series Surface Door Closer",
			Description:  "Heavy-duty surface mounted closer for high-traffic commercial applications. Features adjustable closing and latching speeds.",
			URL:          dormakabaHardwareURL + "/door-closers",
			ModelNumbers: []string{"8616", "8626", "8646"},
			Features:     []string{"Adjustable backcheck", "Delayed action option", "Hold-open arm available"},
			PriceRange:   "$150-300",
			Constraints: &domain.MatchConstraints{
				DoorTypes: []string{domain.DoorTypeCommercial, domain.DoorTypeExteriorEntry},
				FireRated: true,
				MaxWidth:  48,
			},
		},
		{
			Name:         "7400 Series Surface Door Closer",
			Description:  "Standard duty surface closer ideal for interior and light commercial doors.",
			URL:          dormakabaHardwareURL + "/door-closers",
			ModelNumbers: []string{"7416", "7426"},
			Features:     []string{"Tri-pack installation", "Adjustable spring power"},
			PriceRange:   "$100-200",
			Constraints: &domain.MatchConstraints{
				DoorTypes: []string{domain.DoorTypeInterior, domain.DoorTypeCommercial},
				FireRated: true,
				MaxWidth:  42,
			},
		},
	},
	ConcealedClosers: []domain.CatalogEntry{
		{
			Name:         "RTS88 Concealed Overhead Closer",
			Description:  "Concealed in-frame closer for a clean architectural appearance. Ideal for aluminum and glass doors.",
			URL:          dormakabaHardwareURL + "/door-closers",
			ModelNumbers: []string{"RTS88"},
			Features:     []string{"Concealed installation", "Adjustable backcheck", "Hold-open function"},
			PriceRange:   "$300-500",
			Constraints: &domain.MatchConstraints{
				DoorTypes: []string{domain.DoorTypeCommercial, domain.DoorTypeExteriorEntry, domain.DoorTypeInterior},
				FireRated: true,
				MaxWidth:  48,
			},
		},
	},
	MortiseLocks: []domain.CatalogEntry{
		{
			Name:         "8200 Series Mortise Lock",
			Description:  "Heavy-duty mortise lock for commercial applications. Multiple function options available.",
			URL:          dormakabaHardwareURL + "/mechanical-door-locks",
			ModelNumbers: []string{"8215", "8217", "8225", "8243"},
			Features:     []string{"Grade 1 certified", "Fire rated", "Multiple lever styles"},
			PriceRange:   "$300-600",
			Constraints: &domain.MatchConstraints{
				DoorTypes:    []string{domain.DoorTypeCommercial, domain.DoorTypeExteriorEntry},
				FireRated:    true,
				MinThickness: "1-3/4",
			},
		},
	},
	CylindricalLocks: []domain.CatalogEntry{
		{
			Name:         "W Series Cylindrical Lock",
			Description:  "Heavy-duty cylindrical lock for commercial and institutional applications.",
			URL:          dormakabaHardwareURL + "/mechanical-door-locks",
			ModelNumbers: []string{"W101", "W301", "W501"},
			Features:     []string{"Grade 1 certified", "Large variety of lever designs", "IC core compatible"},
			PriceRange:   "$150-350",
			Constraints: &domain.MatchConstraints{
				DoorTypes:    []string{domain.DoorTypeCommercial, domain.DoorTypeInterior},
				FireRated:    true,
				MinThickness: "1-3/8",
			},
		},
		{
			Name:         "QCL Series Cylindrical Lock",
			Description:  "QuickConnect technology for easy installation. Ideal for educational and healthcare facilities.",
			URL:          dormakabaHardwareURL + "/mechanical-door-locks",
			ModelNumbers: []string{"QCL150", "QCL170", "QCL230"},
			Features:     []string{"Tool-free installation", "Grade 2 certified", "Classroom function available"},
			PriceRange:   "$100-250",
			Constraints: &domain.MatchConstraints{
				DoorTypes:    []string{domain.DoorTypeInterior, domain.DoorTypeCommercial},
				FireRated:    true,
				MinThickness: "1-3/8",
			},
		},
	},
	Deadbolts: []domain.CatalogEntry{
		{
			Name:         "DB Series Deadbolt",
			Description:  "Heavy-duty deadbolt for maximum security. Available in single and double cylinder options.",
			URL:          dormakabaHardwareURL + "/mechanical-door-locks",
			ModelNumbers: []string{"DB1000", "DB2000"},
			Features:     []string{"Grade 1 certified", "1\" throw bolt", "IC core compatible"},
			PriceRange:   "$80-200",
			Constraints: &domain.MatchConstraints{
				DoorTypes: []string{domain.DoorTypeExteriorEntry, domain.DoorTypeCommercial},
			},
		},
	},
	RimExitDevices: []domain.CatalogEntry{
		{
			Name:         "9000 Series Rim Exit Device",
			Description:  "Heavy-duty rim exit device for high-traffic emergency egress. Touch bar or cross bar options.",
			URL:          dormakabaHardwareURL + "/door-hardware-exit-devices",
			ModelNumbers: []string{"9100", "9200", "9300"},
			Features:     []string{"Grade 1 certified", "Fire rated up to 3 hours", "Dogging function"},
			PriceRange:   "$400-800",
			Constraints: &domain.MatchConstraints{
				DoorTypes: []string{domain.DoorTypeCommercial, domain.DoorTypeExteriorEntry},
				FireRated: true,
				MinWidth:  30,
				MaxWidth:  48,
			},
		},
	},
	NarrowStileExits: []domain.CatalogEntry{
		{
			Name:         "9000NS Narrow Stile Exit Device",
			Description:  "Designed for aluminum and glass storefront doors with narrow stile profiles.",
			URL:          dormakabaHardwareURL + "/door-hardware-exit-devices",
			ModelNumbers: []string{"9100NS", "9200NS"},
			Features:     []string{"Fits 1-3/4\" to 2\" stiles", "Touch bar operation", "Field reversible"},
			PriceRange:   "$500-900",
			Constraints: &domain.MatchConstraints{
				DoorTypes:     []string{domain.DoorTypeCommercial},
				RequiresGlass: true,
			},
		},
	},
	LowEnergyOperators: []domain.CatalogEntry{
		{
			Name:         "ED900 Low Energy Swing Door Operator",
			Description:  "Electromechanical operator for ADA-compliant automatic door opening. Push-and-go activation.",
			URL:          dormakabaHardwareURL + "/low-energy-swing-door-operators",
			ModelNumbers: []string{"ED900", "ED910", "ED920"},
			Features:     []string{"ADA compliant", "Push-and-go", "Obstacle detection", "Battery backup option"},
			PriceRange:   "$1,500-3,000",
			Constraints: &domain.MatchConstraints{
				DoorTypes: []string{domain.DoorTypeCommercial, domain.DoorTypeExteriorEntry, domain.DoorTypeInterior},
				FireRated: true,
				MaxWidth:  48,
			},
		},
		{
			Name:         "ED700 Electrified Door Operator",
			Description:  "Full-featured automatic operator for high-traffic entrances and ADA accessibility.",
			URL:          dormakabaHardwareURL + "/low-energy-swing-door-operators",
			ModelNumbers: []string{"ED700"},
			Features:     []string{"Touchless activation", "Integration with access control", "Hold-open function"},
			PriceRange:   "$2,000-4,000",
			Constraints: &domain.MatchConstraints{
				DoorTypes: []string{domain.DoorTypeCommercial, domain.DoorTypeExteriorEntry},
			},
		},
	},
	FireLifeSafety: []domain.CatalogEntry{
		{
			Name:         "Electromagnetic Door Holder",
			Description:  "Holds fire doors open and releases on fire alarm signal. Wall or floor mounted options.",
			URL:          dormakabaHardwareURL + "/firelife-safety-devices",
			ModelNumbers: []string{"EM200", "EM500"},
			Features:     []string{"24V DC operation", "Manual release", "Floor or wall mount"},
			PriceRange:   "$100-300",
			Constraints: &domain.MatchConstraints{
				DoorTypes: []string{domain.DoorTypeCommercial, domain.DoorTypeInterior},
				FireRated: true,
			},
		},
		{
			Name:         "Closer/Holder Combination",
			Description:  "Combined door closer with electromagnetic hold-open function. Releases on fire alarm.",
			URL:          dormakabaHardwareURL + "/firelife-safety-devices",
			ModelNumbers: []string{"8916", "8926"},
			Features:     []string{"Integrated closer and holder", "Smoke detector compatible", "Fire rated"},
			PriceRange:   "$400-700",
			Constraints: &domain.MatchConstraints{
				DoorTypes: []string{domain.DoorTypeCommercial},
				FireRated: true,
			},
		},
	},
	SimplexLocks: []domain.CatalogEntry{
		{
			Name:         "Simplex 5000 Series Pushbutton Lock",
			Description:  "Mechanical pushbutton lock requiring no power or batteries. Keyless convenience.",
			URL:          dormakabaHardwareURL + "/simplex-mechanical-pushbutton-locks",
			ModelNumbers: []string{"5021", "5041", "5051"},
			Features:     []string{"No batteries required", "Up to 1,000 combinations", "Key override option"},
			PriceRange:   "$300-600",
			Constraints: &domain.MatchConstraints{
				DoorTypes: []string{domain.DoorTypeInterior, domain.DoorTypeCommercial},
			},
		},
		{
			Name:         "Simplex L1000 Series",
			Description:  "Light-duty mechanical pushbutton lock for interior doors with privacy function.",
			URL:          dormakabaHardwareURL + "/simplex-mechanical-pushbutton-locks",
			ModelNumbers: []string{"L1011", "L1021", "L1031"},
			Features:     []string{"Compact design", "Passage function", "Easy code change"},
			PriceRange:   "$200-400",
			Constraints: &domain.MatchConstraints{
				DoorTypes: []string{domain.DoorTypeInterior},
			},
		},
	},
	ElectronicAccess: []domain.CatalogEntry{
		{
			Name:         "Kaba E-Plex 5x00 Series",
			Description:  "Electronic pushbutton lock with audit trail capability. Ideal for access control applications.",
			URL:          "https://www.dormakaba.com/us-en/offering/products/electronic-access-data",
			ModelNumbers: []string{"E5031", "E5051", "E5071"},
			Features:     []string{"100 user codes", "Audit trail", "Time zone scheduling", "Key override"},
			PriceRange:   "$500-900",
			Constraints: &domain.MatchConstraints{
				DoorTypes: []string{domain.DoorTypeInterior, domain.DoorTypeCommercial},
			},
		},
		{
			Name:         "Kaba X-10 Standalone Electronic Lock",
			Description:  "Multi-technology reader with keypad. Supports cards, fobs, and PIN codes.",
			URL:          "https://www.dormakaba.com/us-en/offering/products/electronic-access-data",
			ModelNumbers: []string{"X-10"},
			Features:     []string{"Multi-credential support", "Weatherproof option", "Audit trail"},
			PriceRange:   "$800-1,200",
			Constraints: &domain.MatchConstraints{
				DoorTypes: []string{domain.DoorTypeExteriorEntry, domain.DoorTypeCommercial},
			},
		},
	},
}

// Dormakaba recommends commercial door hardware: closers, mechanical and
// electronic locks, exit devices, operators, and fire/life safety devices.
type Dormakaba struct {
	info  domain.DistributorInfo
	rules []Rule
}

// NewDormakaba builds the Dormakaba matcher over its static catalog.
func NewDormakaba() *Dormakaba {
	c := dormakabaProducts
	d := &Dormakaba{
		info: domain.DistributorInfo{
			ID:      "dormakaba",
			Name:    "Dormakaba",
			Website: "https://www.dormakaba.com/us-en",
			LogoURL: "https://www.dormakaba.com/resource/image/27440/landscape_ratio16x9/1920/1080/bb5bad74bf8ad14ec6969bb6c6a0d6c/uD/dormakaba-logo-sharing.jpg",
		},
	}

	// Exit devices are gated on commercial openings, or exterior-entry
	// doors wide enough for egress hardware.
	exitGate := func(s *domain.DoorSpecification) bool {
		return s.DoorType == domain.DoorTypeCommercial ||
			(s.DoorType == domain.DoorTypeExteriorEntry && s.Width >= 30)
	}
	keylessGate := func(s *domain.DoorSpecification) bool {
		return s.DoorType == domain.DoorTypeCommercial || s.DoorType == domain.DoorTypeInterior
	}

	d.rules = []Rule{
		{
			Category: "Door Closers",
			When: func(s *domain.DoorSpecification) bool {
				return s.HasHardware(domain.HardwareDoorCloser) || s.IsCommercial()
			},
			// Surface closers are width-bounded and only offered on
			// commercial openings; the concealed closer is always included.
			Select: func(s *domain.DoorSpecification) []domain.CatalogEntry {
				var out []domain.CatalogEntry
				if s.IsCommercial() {
					for _, e := range c.SurfaceClosers {
						if s.Width <= e.MaxWidthOr(48) {
							out = append(out, e)
						}
					}
				}
				return append(out, c.ConcealedClosers[0])
			},
		},
		{
			Category: "Mechanical Locks",
			When: func(s *domain.DoorSpecification) bool {
				wantsLock := s.HasHardware(domain.HardwareLockset) || s.HasHardware(domain.HardwareHandle)
				return wantsLock && (s.PrepType == domain.PrepTypeMortise || s.IsCommercial())
			},
			Select: selectAll(c.MortiseLocks),
		},
		{
			Category: "Mechanical Locks",
			When: func(s *domain.DoorSpecification) bool {
				return s.HasHardware(domain.HardwareLockset) || s.HasHardware(domain.HardwareHandle)
			},
			Select: selectAll(c.CylindricalLocks),
		},
		{
			Category: "Mechanical Locks",
			When:     hasHardware(domain.HardwareDeadbolt),
			Select:   selectAll(c.Deadbolts),
		},
		{
			Category: "Exit Devices",
			When: func(s *domain.DoorSpecification) bool {
				return exitGate(s) && s.HasGlass
			},
			Select: selectAll(c.NarrowStileExits),
		},
		{
			// Rim devices are mutually exclusive with narrow-stile devices:
			// glazed doors get narrow-stile hardware only.
			Category: "Exit Devices",
			When: func(s *domain.DoorSpecification) bool {
				return exitGate(s) && !s.HasGlass
			},
			Select: func(s *domain.DoorSpecification) []domain.CatalogEntry {
				var out []domain.CatalogEntry
				for _, e := range c.RimExitDevices {
					if s.Width >= e.MinWidthOr(30) && s.Width <= e.MaxWidthOr(48) {
						out = append(out, e)
					}
				}
				return out
			},
		},
		{
			Category: "Door Operators",
			When:     func(s *domain.DoorSpecification) bool { return s.IsCommercial() },
			Select:   selectAll(c.LowEnergyOperators),
		},
		{
			Category: "Fire/Life Safety",
			When:     func(s *domain.DoorSpecification) bool { return s.IsFireRated() },
			Select:   selectAll(c.FireLifeSafety),
		},
		{
			Category: "Keyless Entry",
			When:     keylessGate,
			Select:   selectAll(c.SimplexLocks),
			Limit:    1,
		},
		{
			Category: "Electronic Access",
			When:     keylessGate,
			Select:   selectAll(c.ElectronicAccess),
			Limit:    1,
		},
	}
	return d
}

// ID implements domain.Distributor.
func (d *Dormakaba) ID() string { return d.info.ID }

// Info implements domain.Distributor.
func (d *Dormakaba) Info() domain.DistributorInfo { return d.info }

// Match implements domain.Distributor.
func (d *Dormakaba) Match(spec *domain.DoorSpecification) []domain.RecommendationEntry {
	return evalRules(d.rules, spec, func(domain.CatalogEntry) string { return d.info.Name })
}
