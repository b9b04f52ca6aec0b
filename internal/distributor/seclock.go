package distributor

import "github.com/TimSpecFlow/door-builder-app/internal/domain"

// SecLock carries products from many manufacturers; selection is encoded in
// the rule flow rather than on the entries, so catalog entries here have no
// embedded constraints. The source label composes the distributor name with
// the entry's manufacturer, e.g. "SecLock (LCN)".
type seclockCatalog struct {
	ClosersLCN     []domain.CatalogEntry
	ClosersNorton  []domain.CatalogEntry
	ClosersSargent []domain.CatalogEntry

	LocksSchlage       []domain.CatalogEntry
	LocksCorbinRusswin []domain.CatalogEntry
	LocksSargent       []domain.CatalogEntry
	LocksYale          []domain.CatalogEntry

	ExitsVonDuprin []domain.CatalogEntry
	ExitsFalcon    []domain.CatalogEntry
	ExitsSargent   []domain.CatalogEntry
	ExitsDetex     []domain.CatalogEntry

	HingesMcKinney []domain.CatalogEntry
	HingesHager    []domain.CatalogEntry
	HingesIves     []domain.CatalogEntry

	AccessHES                []domain.CatalogEntry
	AccessSecuritron         []domain.CatalogEntry
	AccessAlarmLock          []domain.CatalogEntry
	AccessSchlageElectronics []domain.CatalogEntry

	DeadboltsSchlage []domain.CatalogEntry
	DeadboltsMedeco  []domain.CatalogEntry

	AccessoriesDonJo    []domain.CatalogEntry
	AccessoriesRockwood []domain.CatalogEntry
	AccessoriesIves     []domain.CatalogEntry

	FireSafetyLCN    []domain.CatalogEntry
	FireSafetyNorton []domain.CatalogEntry

	WeatherPemko []domain.CatalogEntry
	WeatherNGP   []domain.CatalogEntry

	OperatorsLCN    []domain.CatalogEntry
	OperatorsNorton []domain.CatalogEntry

	CylindersMedeco []domain.CatalogEntry
	CylindersBEST   []domain.CatalogEntry
}

const seclockCatalogURL = "https://www.seclock.com/catalog/price-books"

var seclockProducts = seclockCatalog{
	ClosersLCN: []domain.CatalogEntry{
		{
			Name:         "LCN 4040XP Series Heavy Duty Door Closer",
			Description:  "Extra heavy-duty cast iron door closer with adjustable backcheck, sweep speed, and latch speed. Ideal for high-traffic openings.",
			URL:          seclockCatalogURL + "/lcn",
			ModelNumbers: []string{"4040XP", "4040XP-RW/PA", "4040XP-CUSH", "4040XP-EDA"},
			Features:     []string{"Cast iron construction", "Adjustable closing speeds", "Optional hold-open arm", "ADA compliant options"},
			PriceRange:   "$280-$550",
			Manufacturer: "LCN",
		},
		{
			Name:         "LCN 1461 Series Surface Mounted Closer",
			Description:  "Standard duty surface mounted door closer for interior openings. Smooth, quiet operation with full rack-and-pinion design.",
			URL:          seclockCatalogURL + "/lcn",
			ModelNumbers: []string{"1461", "1461T", "1461-H"},
			Features:     []string{"Aluminum body", "Adjustable spring power", "Delayed action available", "Non-handed"},
			PriceRange:   "$150-$280",
			Manufacturer: "LCN",
		},
	},
	ClosersNorton: []domain.CatalogEntry{
		{
			Name:         "Norton 7500 Series Door Closer",
			Description:  "Architectural grade surface door closer with precision-machined components for reliable, long-lasting performance.",
			URL:          seclockCatalogURL + "/norton",
			ModelNumbers: []string{"7500", "7500H", "7500-689"},
			Features:     []string{"Tri-style mounting", "Full cover included", "Adjustable closing speeds", "10-year warranty"},
			PriceRange:   "$200-$400",
			Manufacturer: "Norton",
		},
	},
	ClosersSargent: []domain.CatalogEntry{
		{
			Name:         "Sargent 1431 Series Surface Closer",
			Description:  "Versatile surface-mounted closer designed for high-frequency applications with durable construction.",
			URL:          seclockCatalogURL + "/sargent",
			ModelNumbers: []string{"1431", "1431-CPS", "1431-H"},
			Features:     []string{"Multi-size spring", "Optional PowerGlide arm", "Hold-open available", "Barrier-free option"},
			PriceRange:   "$175-$350",
			Manufacturer: "Sargent",
		},
	},
	LocksSchlage: []domain.CatalogEntry{
		{
			Name:         "Schlage ND Series Cylindrical Lock",
			Description:  "Heavy-duty cylindrical lever lock designed for high-traffic commercial applications. BHMA Grade 1 certified.",
			URL:          seclockCatalogURL + "/schlage",
			ModelNumbers: []string{"ND50PD", "ND80PD", "ND53PD", "ND70PD"},
			Features:     []string{"Grade 1 certified", "2M cycle tested", "Vandal resistant", "UL listed for 3-hour fire doors"},
			PriceRange:   "$180-$400",
			Manufacturer: "Schlage",
		},
		{
			Name:         "Schlage L Series Mortise Lock",
			Description:  "Premier mortise lock with modular construction for maximum flexibility and security in institutional and commercial settings.",
			URL:          seclockCatalogURL + "/schlage",
			ModelNumbers: []string{"L9453", "L9456", "L9480", "L9010"},
			Features:     []string{"BHMA Grade 1", "Modular design", "Field reversible", "Anti-friction latchbolt"},
			PriceRange:   "$400-$800",
			Manufacturer: "Schlage",
		},
		{
			Name:         "Schlage ALX Series Cylindrical Lock",
			Description:  "Commercial-grade cylindrical lock with improved security features and modern aesthetics for mid-range applications.",
			URL:          seclockCatalogURL + "/schlage",
			ModelNumbers: []string{"ALX50P", "ALX70P", "ALX80P"},
			Features:     []string{"ANSI/BHMA Grade 2", "Snap-on rose design", "Easy rekeying", "Interchangeable core option"},
			PriceRange:   "$120-$250",
			Manufacturer: "Schlage",
		},
	},
	LocksCorbinRusswin: []domain.CatalogEntry{
		{
			Name:         "Corbin Russwin CL3300 Series Cylindrical Lock",
			Description:  "Extra heavy-duty cylindrical lever lock designed for healthcare, education, and high-abuse environments.",
			URL:          seclockCatalogURL + "/corbin",
			ModelNumbers: []string{"CL3351", "CL3357", "CL3355"},
			Features:     []string{"BHMA Grade 1", "Clutching lever", "Anti-microbial option", "6-pin solid brass cylinder"},
			PriceRange:   "$250-$500",
			Manufacturer: "Corbin Russwin",
		},
		{
			Name:         "Corbin Russwin ML2000 Series Mortise Lock",
			Description:  "High-security mortise lock with exceptional durability for demanding commercial and institutional applications.",
			URL:          seclockCatalogURL + "/corbin",
			ModelNumbers: []string{"ML2010", "ML2051", "ML2055", "ML2067"},
			Features:     []string{"BHMA Grade 1", "Modular cylinder design", "Fire rated to 3 hours", "Electrified options"},
			PriceRange:   "$450-$900",
			Manufacturer: "Corbin Russwin",
		},
	},
	LocksSargent: []domain.CatalogEntry{
		{
			Name:         "Sargent 10 Line Cylindrical Lock",
			Description:  "Standard duty bored lock for commercial applications with reliable performance and variety of functions.",
			URL:          seclockCatalogURL + "/sargent",
			ModelNumbers: []string{"10U15", "10U65", "10U94"},
			Features:     []string{"ANSI Grade 1", "6-pin cylinder", "ADA compliant levers", "UL fire rated"},
			PriceRange:   "$200-$380",
			Manufacturer: "Sargent",
		},
		{
			Name:         "Sargent 8200 Series Mortise Lock",
			Description:  "Heavy-duty mortise lock engineered for high-traffic commercial and institutional environments.",
			URL:          seclockCatalogURL + "/sargent",
			ModelNumbers: []string{"8204", "8205", "8265", "8270"},
			Features:     []string{"BHMA Grade 1", "Sectional trim", "Anti-friction bolt", "Optional security rose"},
			PriceRange:   "$400-$750",
			Manufacturer: "Sargent",
		},
	},
	LocksYale: []domain.CatalogEntry{
		{
			Name:         "Yale 8800FL Series Mortise Lock",
			Description:  "Premium mortise lock with electromechanical options for access control integration.",
			URL:          seclockCatalogURL + "/yale",
			ModelNumbers: []string{"8802FL", "8822FL", "8891FL"},
			Features:     []string{"BHMA Grade 1", "Fail-safe/fail-secure options", "Monitoring switches", "Request-to-exit"},
			PriceRange:   "$500-$1200",
			Manufacturer: "Yale",
		},
	},
	ExitsVonDuprin: []domain.CatalogEntry{
		{
			Name:         "Von Duprin 99 Series Exit Device",
			Description:  "Industry-leading rim exit device for heavy-duty commercial applications. Smooth, quiet operation with maximum security.",
			URL:          seclockCatalogURL + "/vonduprin",
			ModelNumbers: []string{"99L", "99L-06", "99NL", "99EO"},
			Features:     []string{"Hex-key dogging", "LBR option", "UL listed", "Fire exit hardware"},
			PriceRange:   "$450-$900",
			Manufacturer: "Von Duprin",
		},
		{
			Name:         "Von Duprin 98/99 Series Vertical Rod",
			Description:  "Heavy-duty vertical rod exit device for double doors requiring top and bottom latching.",
			URL:          seclockCatalogURL + "/vonduprin",
			ModelNumbers: []string{"9827", "9927", "9847", "9947"},
			Features:     []string{"Less bottom rod option", "Concealed vertical rod", "Fire rated", "Electric options"},
			PriceRange:   "$800-$1500",
			Manufacturer: "Von Duprin",
		},
	},
	ExitsFalcon: []domain.CatalogEntry{
		{
			Name:         "Falcon 24/25 Series Exit Device",
			Description:  "Heavy-duty wide stile exit device with smooth touchbar operation and durable construction.",
			URL:          seclockCatalogURL + "/falcon",
			ModelNumbers: []string{"24-R-EO", "25-R-EO", "24-V-EO"},
			Features:     []string{"Non-handed", "UL listed", "Modular design", "Electric latch retraction"},
			PriceRange:   "$380-$750",
			Manufacturer: "Falcon",
		},
	},
	ExitsSargent: []domain.CatalogEntry{
		{
			Name:         "Sargent 80 Series Exit Device",
			Description:  "Premium exit device with patented Powerglide mechanism for smooth, quiet operation under heavy use.",
			URL:          seclockCatalogURL + "/sargent",
			ModelNumbers: []string{"8804", "8810", "8813", "8888"},
			Features:     []string{"Powerglide mechanism", "Modular design", "Delayed egress option", "Heavy-duty construction"},
			PriceRange:   "$500-$1000",
			Manufacturer: "Sargent",
		},
	},
	ExitsDetex: []domain.CatalogEntry{
		{
			Name:         "Detex ECL-230X Exit Control Lock",
			Description:  "Battery-powered alarmed exit device for emergency exits that require security monitoring.",
			URL:          seclockCatalogURL + "/detex",
			ModelNumbers: []string{"ECL-230X", "ECL-230X-W"},
			Features:     []string{"95dB alarm", "Battery powered", "LED status indicator", "Delayed egress option"},
			PriceRange:   "$350-$600",
			Manufacturer: "Detex",
		},
	},
	HingesMcKinney: []domain.CatalogEntry{
		{
			Name:         "McKinney TA2714 Heavy Weight Hinge",
			Description:  "Five-knuckle architectural hinge designed for heavy doors in high-frequency applications.",
			URL:          seclockCatalogURL + "/mckinney",
			ModelNumbers: []string{"TA2714", "TA2714-4.5x4.5", "TA2714-5x5"},
			Features:     []string{"Heavy weight bearing", "Non-removable pin option", "Ball bearing", "NRP available"},
			PriceRange:   "$25-$60 each",
			Manufacturer: "McKinney",
		},
		{
			Name:         "McKinney T4A3786 Electric Hinge",
			Description:  "Electrified hinge for transferring power to door-mounted hardware without surface wiring.",
			URL:          seclockCatalogURL + "/mckinney",
			ModelNumbers: []string{"T4A3786", "T4A3386"},
			Features:     []string{"Concealed wiring", "Multiple wire options", "Fire rated", "Ball bearing"},
			PriceRange:   "$120-$250 each",
			Manufacturer: "McKinney",
		},
	},
	HingesHager: []domain.CatalogEntry{
		{
			Name:         "Hager BB1279 Full Mortise Hinge",
			Description:  "Standard weight ball bearing hinge for commercial interior doors with high cycle life.",
			URL:          seclockCatalogURL + "/hager",
			ModelNumbers: []string{"BB1279", "BB1279-4.5x4.5"},
			Features:     []string{"Ball bearing", "Template production", "Multiple finishes", "Lifetime warranty"},
			PriceRange:   "$15-$40 each",
			Manufacturer: "Hager",
		},
	},
	HingesIves: []domain.CatalogEntry{
		{
			Name:         "Ives 5BB1 Ball Bearing Hinge",
			Description:  "Five-knuckle ball bearing hinge for standard commercial applications with reliable performance.",
			URL:          seclockCatalogURL + "/ives",
			ModelNumbers: []string{"5BB1", "5BB1-4.5x4.5", "5BB1HW"},
			Features:     []string{"Ball bearing", "Template drilled", "Steel or stainless", "NRP option"},
			PriceRange:   "$18-$45 each",
			Manufacturer: "Ives",
		},
	},
	AccessHES: []domain.CatalogEntry{
		{
			Name:         "HES 1006 Electric Strike",
			Description:  "Heavy-duty electric strike for cylindrical locksets with adjustable keeper for precise fit.",
			URL:          seclockCatalogURL + "/hes",
			ModelNumbers: []string{"1006", "1006-12/24D-630", "1006CLB"},
			Features:     []string{"Fail-safe/fail-secure", "Adjustable keeper", "Dual voltage", "Latchbolt monitor"},
			PriceRange:   "$150-$350",
			Manufacturer: "HES",
		},
		{
			Name:         "HES 9600 Series Electric Strike",
			Description:  "Surface-mounted electric strike for rim exit devices with rugged construction.",
			URL:          seclockCatalogURL + "/hes",
			ModelNumbers: []string{"9600", "9600-12/24D-630"},
			Features:     []string{"Surface mounted", "1500 lb holding force", "Dual voltage", "Fire rated"},
			PriceRange:   "$200-$400",
			Manufacturer: "HES",
		},
	},
	AccessSecuritron: []domain.CatalogEntry{
		{
			Name:         "Securitron M62 Magnalock",
			Description:  "Heavy-duty electromagnetic lock with 1200 lb holding force for high-security applications.",
			URL:          seclockCatalogURL + "/securitron",
			ModelNumbers: []string{"M62", "M62D", "M62DGB"},
			Features:     []string{"1200 lb holding force", "LED status indicator", "Bond sensor option", "UL294 listed"},
			PriceRange:   "$250-$450",
			Manufacturer: "Securitron",
		},
	},
	AccessAlarmLock: []domain.CatalogEntry{
		{
			Name:         "Alarm Lock Trilogy T2 Digital Lock",
			Description:  "Standalone digital keypad lock with audit trail and multiple user codes.",
			URL:          seclockCatalogURL + "/alarmlock",
			ModelNumbers: []string{"DL2700", "DL2800", "DL3000"},
			Features:     []string{"100 user codes", "Audit trail", "Weatherproof option", "BHMA Grade 1"},
			PriceRange:   "$400-$700",
			Manufacturer: "Alarm Lock",
		},
	},
	AccessSchlageElectronics: []domain.CatalogEntry{
		{
			Name:         "Schlage CO-100 Cylindrical Electronic Lock",
			Description:  "Battery-powered standalone access control lock with keypad or card reader options.",
			URL:          seclockCatalogURL + "/schlageele",
			ModelNumbers: []string{"CO-100", "CO-200", "CO-250"},
			Features:     []string{"Standalone or networked", "Up to 500 users", "Audit trail", "BHMA Grade 1"},
			PriceRange:   "$500-$1000",
			Manufacturer: "Schlage Electronics",
		},
	},
	DeadboltsSchlage: []domain.CatalogEntry{
		{
			Name:         "Schlage B Series Commercial Deadbolt",
			Description:  "Heavy-duty commercial deadbolt with Grade 1 security for maximum protection.",
			URL:          seclockCatalogURL + "/schlage",
			ModelNumbers: []string{"B560P", "B562P", "B563P", "B580P"},
			Features:     []string{"ANSI Grade 1", "1\" throw bolt", "Anti-saw pins", "Hardened steel insert"},
			PriceRange:   "$100-$250",
			Manufacturer: "Schlage",
		},
	},
	DeadboltsMedeco: []domain.CatalogEntry{
		{
			Name:         "Medeco Maxum Commercial Deadbolt",
			Description:  "High-security deadbolt with patented key control and pick-resistant design.",
			URL:          seclockCatalogURL + "/medeco",
			ModelNumbers: []string{"11-0102", "11-0202", "11-0602"},
			Features:     []string{"UL437 listed", "Bump resistant", "Drill resistant", "Patented key control"},
			PriceRange:   "$350-$600",
			Manufacturer: "Medeco",
		},
	},
	AccessoriesDonJo: []domain.CatalogEntry{
		{
			Name:         "Don-Jo Wrap Around Plate",
			Description:  "Door reinforcement plate to protect and strengthen lock installation area.",
			URL:          seclockCatalogURL + "/donjo",
			ModelNumbers: []string{"504-CW", "504-S-CW", "942-CW"},
			Features:     []string{"Steel construction", "Multiple finishes", "Easy installation", "Custom sizes"},
			PriceRange:   "$25-$80",
			Manufacturer: "Don-Jo",
		},
		{
			Name:         "Don-Jo Latch Protector",
			Description:  "Security plate to prevent forced entry through latch manipulation.",
			URL:          seclockCatalogURL + "/donjo",
			ModelNumbers: []string{"LP-107", "LP-207", "OSLP-107"},
			Features:     []string{"14 gauge steel", "Pin and barrel hinge protection", "Multiple sizes", "Stainless available"},
			PriceRange:   "$20-$60",
			Manufacturer: "Don-Jo",
		},
	},
	AccessoriesRockwood: []domain.CatalogEntry{
		{
			Name:         "Rockwood 85 Push/Pull Plate",
			Description:  "Architectural push and pull plates for commercial door aesthetics and protection.",
			URL:          seclockCatalogURL + "/rockwood",
			ModelNumbers: []string{"85", "85-4x16", "85-6x16"},
			Features:     []string{"Multiple materials", "Custom sizing", "Beveled edges", "Fastener concealment"},
			PriceRange:   "$40-$150",
			Manufacturer: "Rockwood",
		},
		{
			Name:         "Rockwood RM3 Door Stop",
			Description:  "Heavy-duty floor-mounted door stop with solid construction.",
			URL:          seclockCatalogURL + "/rockwood",
			ModelNumbers: []string{"RM3", "RM3-HT", "RM2"},
			Features:     []string{"Cast brass/bronze", "Concealed mounting", "Rubber bumper", "Multiple finishes"},
			PriceRange:   "$15-$50",
			Manufacturer: "Rockwood",
		},
	},
	AccessoriesIves: []domain.CatalogEntry{
		{
			Name:         "Ives FB61 Flush Bolt",
			Description:  "Automatic flush bolt for securing inactive leaf of double doors.",
			URL:          seclockCatalogURL + "/ives",
			ModelNumbers: []string{"FB61", "FB61P", "FB61T"},
			Features:     []string{"Automatic operation", "UL listed", "Fire rated", "Concealed design"},
			PriceRange:   "$80-$200",
			Manufacturer: "Ives",
		},
	},
	FireSafetyLCN: []domain.CatalogEntry{
		{
			Name:         "LCN 4640 Series Electromagnetic Holder",
			Description:  "Fire-rated electromagnetic door holder with wall or floor mounting options.",
			URL:          seclockCatalogURL + "/lcn",
			ModelNumbers: []string{"4640", "4640-3049"},
			Features:     []string{"UL/cUL listed", "25-35 lb holding force", "Wall or floor mount", "Releases on alarm"},
			PriceRange:   "$100-$200",
			Manufacturer: "LCN",
		},
	},
	FireSafetyNorton: []domain.CatalogEntry{
		{
			Name:         "Norton 6000 Series Fire Door Holder",
			Description:  "Electromagnetic hold-open device for fire door applications with reliable release.",
			URL:          seclockCatalogURL + "/norton",
			ModelNumbers: []string{"6000", "6000-689"},
			Features:     []string{"UL listed", "Tie-in to fire alarm", "Adjustable holding force", "Surface mount"},
			PriceRange:   "$90-$180",
			Manufacturer: "Norton",
		},
	},
	WeatherPemko: []domain.CatalogEntry{
		{
			Name:         "Pemko S88 Door Bottom Seal",
			Description:  "Heavy-duty aluminum door bottom with silicone seal for weather and sound protection.",
			URL:          seclockCatalogURL + "/pemko",
			ModelNumbers: []string{"S88D", "S88BL", "S88SL"},
			Features:     []string{"Silicone insert", "Aluminum housing", "Easy installation", "Sound reduction"},
			PriceRange:   "$30-$80",
			Manufacturer: "Pemko",
		},
		{
			Name:         "Pemko 303 Threshold",
			Description:  "Aluminum saddle threshold for commercial door openings.",
			URL:          seclockCatalogURL + "/pemko",
			ModelNumbers: []string{"303AS", "303AV", "303ANB"},
			Features:     []string{"Aluminum construction", "ADA compliant heights", "Thermal break option", "Multiple widths"},
			PriceRange:   "$25-$100",
			Manufacturer: "Pemko",
		},
	},
	WeatherNGP: []domain.CatalogEntry{
		{
			Name:         "NGP Door Smoke Seal",
			Description:  "Intumescent smoke seal for fire-rated door assemblies.",
			URL:          seclockCatalogURL + "/ngp",
			ModelNumbers: []string{"970", "970N"},
			Features:     []string{"UL listed", "Expands with heat", "Smoke and draft seal", "Meets positive pressure"},
			PriceRange:   "$20-$60",
			Manufacturer: "NGP",
		},
	},
	OperatorsLCN: []domain.CatalogEntry{
		{
			Name:         "LCN 4640 SENIOR SWING Low Energy Operator",
			Description:  "ADA-compliant low energy automatic door operator for accessibility applications.",
			URL:          seclockCatalogURL + "/lcn",
			ModelNumbers: []string{"4640-3049T", "4640-3077T"},
			Features:     []string{"ADA compliant", "Low energy operation", "Push button activation", "Safety sensors"},
			PriceRange:   "$1500-$2500",
			Manufacturer: "LCN",
		},
	},
	OperatorsNorton: []domain.CatalogEntry{
		{
			Name:         "Norton 5600 ADAEZ PRO Operator",
			Description:  "Integrated automatic door operator designed for ADA accessibility retrofits.",
			URL:          seclockCatalogURL + "/norton",
			ModelNumbers: []string{"5600", "5610", "5620"},
			Features:     []string{"Easy retrofit", "No header needed", "ADA compliant", "Power open/close"},
			PriceRange:   "$1800-$3000",
			Manufacturer: "Norton",
		},
	},
	CylindersMedeco: []domain.CatalogEntry{
		{
			Name:         "Medeco M3 High Security Cylinder",
			Description:  "Patented high-security cylinder with anti-pick, anti-drill, and bump-resistant features.",
			URL:          seclockCatalogURL + "/medeco",
			ModelNumbers: []string{"20-0100", "20-0200", "20-0300"},
			Features:     []string{"UL437 listed", "Key control", "Bump resistant", "Retrofit compatible"},
			PriceRange:   "$100-$250",
			Manufacturer: "Medeco",
		},
	},
	CylindersBEST: []domain.CatalogEntry{
		{
			Name:         "BEST 1E Series Interchangeable Core",
			Description:  "Small format interchangeable core cylinder for easy rekeying without removing hardware.",
			URL:          seclockCatalogURL + "/best",
			ModelNumbers: []string{"1E74", "1E76", "1E7"},
			Features:     []string{"Tool-free removal", "6 or 7 pin options", "Master keying", "High security options"},
			PriceRange:   "$40-$120",
			Manufacturer: "BEST",
		},
	},
}

// SecLock is a wholesale commercial door hardware distributor carrying all
// major manufacturer brands.
type SecLock struct {
	info  domain.DistributorInfo
	rules []Rule
}

// NewSecLock builds the SecLock matcher over its static catalog.
func NewSecLock() *SecLock {
	c := seclockProducts
	d := &SecLock{
		info: domain.DistributorInfo{
			ID:      "seclock",
			Name:    "SecLock",
			Website: "https://www.seclock.com",
			LogoURL: "https://www.seclock.com/logo.png",
		},
	}

	// Large or steel/fiberglass doors route to the heavy-duty product tier.
	isHeavy := func(s *domain.DoorSpecification) bool {
		return s.Width > 42 || s.Height > 84 ||
			s.Material == domain.MaterialSteel || s.Material == domain.MaterialFiberglass
	}
	closerGate := func(s *domain.DoorSpecification) bool {
		return s.IsCommercial() || s.IsFireRated()
	}
	lockGate := func(s *domain.DoorSpecification) bool {
		return s.HasHardware(domain.HardwareLockset) || s.HasHardware(domain.HardwareDeadbolt) || s.IsCommercial()
	}
	exitGate := func(s *domain.DoorSpecification) bool {
		return s.IsCommercial() || s.HasHardware(domain.HardwarePanic)
	}
	electrified := func(s *domain.DoorSpecification) bool {
		return s.HasHardware(domain.HardwareElectricStrike) || s.HasHardware(domain.HardwareMaglock)
	}
	highSecurity := func(s *domain.DoorSpecification) bool {
		return s.PrepType == domain.PrepTypeHighSecurity || s.HasHardware(domain.HardwareICCore)
	}

	d.rules = []Rule{
		{
			Category: "Door Closers",
			When:     func(s *domain.DoorSpecification) bool { return closerGate(s) && isHeavy(s) },
			Select:   selectAll(c.ClosersLCN),
			Limit:    1,
		},
		{
			Category: "Door Closers",
			When:     func(s *domain.DoorSpecification) bool { return closerGate(s) && !isHeavy(s) },
			Select:   selectAll(c.ClosersNorton),
			Limit:    1,
		},
		{
			Category: "Commercial Locks",
			When:     func(s *domain.DoorSpecification) bool { return lockGate(s) && s.IsCommercial() },
			Select:   selectAll(c.LocksSchlage),
			Limit:    1,
		},
		{
			Category: "Commercial Locks",
			When:     func(s *domain.DoorSpecification) bool { return lockGate(s) && s.IsCommercial() },
			Select:   selectAll(c.LocksCorbinRusswin),
			Limit:    1,
		},
		{
			// Non-commercial doors get the mid-range ALX series.
			Category: "Cylindrical Locks",
			When:     func(s *domain.DoorSpecification) bool { return lockGate(s) && !s.IsCommercial() },
			Select:   selectAll(c.LocksSchlage[2:3]),
		},
		{
			Category: "High-Security Deadbolts",
			When: func(s *domain.DoorSpecification) bool {
				return s.HasHardware(domain.HardwareDeadbolt) && s.PrepType == domain.PrepTypeHighSecurity
			},
			Select: selectAll(c.DeadboltsMedeco),
		},
		{
			Category: "Commercial Deadbolts",
			When: func(s *domain.DoorSpecification) bool {
				return s.HasHardware(domain.HardwareDeadbolt) && s.PrepType != domain.PrepTypeHighSecurity
			},
			Select: selectAll(c.DeadboltsSchlage),
		},
		{
			Category: "Exit Devices",
			When:     exitGate,
			Select:   selectAll(c.ExitsVonDuprin),
			Limit:    1,
		},
		{
			Category: "Exit Devices",
			When:     exitGate,
			Select:   selectAll(c.ExitsFalcon),
			Limit:    1,
		},
		{
			// Hinges are always recommended; weight class picks the line.
			Category: "Hinges",
			When:     func(s *domain.DoorSpecification) bool { return isHeavy(s) || s.Height > 84 },
			Select:   selectAll(c.HingesMcKinney),
			Limit:    1,
		},
		{
			Category: "Hinges",
			When:     func(s *domain.DoorSpecification) bool { return !(isHeavy(s) || s.Height > 84) },
			Select:   selectAll(c.HingesHager),
			Limit:    1,
		},
		{
			Category: "Electric Hinges",
			When:     electrified,
			Select:   selectAll(c.HingesMcKinney[1:2]),
		},
		{
			Category: "Electric Strikes",
			When:     hasHardware(domain.HardwareElectricStrike),
			Select:   selectAll(c.AccessHES),
			Limit:    1,
		},
		{
			Category: "Electromagnetic Locks",
			When:     hasHardware(domain.HardwareMaglock),
			Select:   selectAll(c.AccessSecuritron),
		},
		{
			Category: "Electronic Keypad Locks",
			When:     hasHardware(domain.HardwareKeypad),
			Select:   selectAll(c.AccessAlarmLock),
		},
		{
			Category: "Electronic Access Control",
			When:     hasHardware(domain.HardwareKeypad),
			Select:   selectAll(c.AccessSchlageElectronics),
		},
		{
			Category: "Door Protection",
			When:     func(s *domain.DoorSpecification) bool { return s.IsCommercial() },
			Select:   selectAll(c.AccessoriesDonJo),
			Limit:    1,
		},
		{
			Category: "Push/Pull Plates",
			When:     func(s *domain.DoorSpecification) bool { return s.IsCommercial() },
			Select:   selectAll(c.AccessoriesRockwood),
			Limit:    1,
		},
		{
			Category: "Fire Door Hardware",
			When:     func(s *domain.DoorSpecification) bool { return s.IsFireRated() },
			Select:   selectAll(c.FireSafetyLCN),
		},
		{
			Category: "Fire Door Seals",
			When:     func(s *domain.DoorSpecification) bool { return s.IsFireRated() },
			Select:   selectAll(c.WeatherNGP),
		},
		{
			Category: "Weatherstripping",
			When:     func(s *domain.DoorSpecification) bool { return s.IsExterior() },
			Select:   selectAll(c.WeatherPemko),
		},
		{
			Category: "Automatic Door Operators",
			When:     hasHardware(domain.HardwareAutoOperator),
			Select:   selectAll(c.OperatorsNorton),
		},
		{
			Category: "High Security Cylinders",
			When:     highSecurity,
			Select:   selectAll(c.CylindersMedeco),
		},
		{
			Category: "Interchangeable Cores",
			When:     highSecurity,
			Select:   selectAll(c.CylindersBEST),
		},
	}
	return d
}

// ID implements domain.Distributor.
func (d *SecLock) ID() string { return d.info.ID }

// Info implements domain.Distributor.
func (d *SecLock) Info() domain.DistributorInfo { return d.info }

// Match implements domain.Distributor.
func (d *SecLock) Match(spec *domain.DoorSpecification) []domain.RecommendationEntry {
	return evalRules(d.rules, spec, func(e domain.CatalogEntry) string {
		return d.info.Name + " (" + e.Manufacturer + ")"
	})
}
