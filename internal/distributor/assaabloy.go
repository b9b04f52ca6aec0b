package distributor

import "github.com/TimSpecFlow/door-builder-app/internal/domain"

// ASSA ABLOY DSS supplies steel doors, hollow metal frames and specialty
// openings from its group brands (Ceco Door, Curries, Baron, RITE Door).
// Like SecLock, its selection logic lives in the rule flow; entries carry
// no embedded constraints.
type assaAbloyCatalog struct {
	DoorsCeco     []domain.CatalogEntry
	DoorsCurries  []domain.CatalogEntry
	DoorsBaron    []domain.CatalogEntry
	DoorsRiteDoor []domain.CatalogEntry

	FramesCeco    []domain.CatalogEntry
	FramesCurries []domain.CatalogEntry
	FramesBaron   []domain.CatalogEntry

	Acoustical         []domain.CatalogEntry
	BulletResistant    []domain.CatalogEntry
	BlastResistant     []domain.CatalogEntry
	HurricaneResistant []domain.CatalogEntry
	AttackResistant    []domain.CatalogEntry
	FloodResistant     []domain.CatalogEntry
	LeadLined          []domain.CatalogEntry
	StainlessSteel     []domain.CatalogEntry
	EMIShielding       []domain.CatalogEntry
	WaterResistant     []domain.CatalogEntry
}

const assaAbloySpecialtyURL = "https://www.assaabloydss.com/en/products/doors-and-frames/specialty-doors"

var assaAbloyProducts = assaAbloyCatalog{
	DoorsCeco: []domain.CatalogEntry{
		{
			Name:         "Ceco Standard Steel Door",
			Description:  "Strong and secure steel doors designed to meet a full range of safety, security, and aesthetic requirements. Available in various gauges and configurations.",
			URL:          "https://www.cecodoor.com/en/products/",
			ModelNumbers: []string{"Series 18", "Series 16", "Series 14"},
			Features:     []string{"18, 16, or 14 gauge steel", "Flush or embossed face", "Fire rated options", "Multiple core options"},
			PriceRange:   "$350-$800",
			Manufacturer: "Ceco Door",
		},
		{
			Name:         "Ceco Fire-Rated Steel Door",
			Description:  "UL labeled fire-rated hollow metal doors for commercial and industrial applications requiring fire protection up to 3 hours.",
			URL:          "https://www.cecodoor.com/en/products/",
			ModelNumbers: []string{"FR-20", "FR-45", "FR-60", "FR-90", "FR-180"},
			Features:     []string{"20-minute to 3-hour ratings", "Positive pressure tested", "Temperature rise options", "Smoke and draft control"},
			PriceRange:   "$500-$1,500",
			Manufacturer: "Ceco Door",
		},
	},
	DoorsCurries: []domain.CatalogEntry{
		{
			Name:         "Curries Commercial Steel Door",
			Description:  "Full line of custom and standard hollow metal doors for new and retrofit construction projects. Ideal for healthcare, commercial, and educational markets.",
			URL:          "https://www.curries.com/en/products/",
			ModelNumbers: []string{"707", "747", "757", "767"},
			Features:     []string{"Custom sizes available", "Multiple gauge options", "Insulated core options", "Sound dampening"},
			PriceRange:   "$400-$900",
			Manufacturer: "Curries",
		},
		{
			Name:         "Curries Stile & Rail Door",
			Description:  "Architectural stile and rail doors with glass lite options for aesthetically demanding applications.",
			URL:          "https://www.curries.com/en/products/",
			ModelNumbers: []string{"SR-1", "SR-2", "SR-3"},
			Features:     []string{"Glass lite options", "Architectural finishes", "Vision panel configurations", "ADA compliant"},
			PriceRange:   "$600-$1,400",
			Manufacturer: "Curries",
		},
	},
	DoorsBaron: []domain.CatalogEntry{
		{
			Name:         "Baron Embossed Steel Door",
			Description:  "Embossed or standard hollow metal doors in 14-, 16-, 18- and 20-gauge options for commercial applications.",
			URL:          "https://www.baronmetal.com/en/products/",
			ModelNumbers: []string{"BE-18", "BE-16", "BE-14", "BS-18"},
			Features:     []string{"Embossed or smooth face", "Multiple gauges", "Honeycomb or polystyrene core", "Primed finish"},
			PriceRange:   "$300-$700",
			Manufacturer: "Baron",
		},
	},
	DoorsRiteDoor: []domain.CatalogEntry{
		{
			Name:         "RITE Door Designer Series",
			Description:  "Unique aesthetic door finishes and designer options with preassembled hardware devices for upscale commercial applications.",
			URL:          "https://www.ritedoor.com/en/",
			ModelNumbers: []string{"RD-100", "RD-200", "RD-300"},
			Features:     []string{"Wood grain finishes", "Stainless steel options", "Factory-installed hardware", "Custom colors"},
			PriceRange:   "$800-$2,000",
			Manufacturer: "RITE Door",
		},
	},
	FramesCeco: []domain.CatalogEntry{
		{
			Name:         "Ceco Welded Frame",
			Description:  "Heavy-duty welded hollow metal frames for masonry or drywall construction. Superior strength for commercial applications.",
			URL:          "https://www.cecodoor.com/en/products/",
			ModelNumbers: []string{"WF-16", "WF-14", "WF-12"},
			Features:     []string{"Welded corners", "16, 14, or 12 gauge", "Masonry or drywall anchors", "Multiple throat sizes"},
			PriceRange:   "$200-$500",
			Manufacturer: "Ceco Door",
		},
		{
			Name:         "Ceco Knock-Down Frame",
			Description:  "Field-assembled knocked down frames for easy shipping and installation in retrofit applications.",
			URL:          "https://www.cecodoor.com/en/products/",
			ModelNumbers: []string{"KD-16", "KD-14"},
			Features:     []string{"Easy field assembly", "No welding required", "Adjustable for out-of-square openings", "Standard or fire rated"},
			PriceRange:   "$150-$350",
			Manufacturer: "Ceco Door",
		},
	},
	FramesCurries: []domain.CatalogEntry{
		{
			Name:         "Curries Drywall Frame",
			Description:  "Hollow metal frames designed specifically for drywall construction with concealed anchoring systems.",
			URL:          "https://www.curries.com/en/products/",
			ModelNumbers: []string{"DW-S", "DW-D", "DW-B"},
			Features:     []string{"Drywall anchor system", "Single or double rabbet", "Adjustable base anchors", "Fire rated options"},
			PriceRange:   "$175-$400",
			Manufacturer: "Curries",
		},
	},
	FramesBaron: []domain.CatalogEntry{
		{
			Name:         "Baron Masonry Frame",
			Description:  "14-, 16- and 18-gauge masonry or drywall frames for standard commercial door openings.",
			URL:          "https://www.baronmetal.com/en/products/",
			ModelNumbers: []string{"MF-16", "MF-14", "MF-18"},
			Features:     []string{"Masonry anchors included", "Multiple gauges", "Standard throat sizes", "Primed finish"},
			PriceRange:   "$150-$350",
			Manufacturer: "Baron",
		},
	},
	Acoustical: []domain.CatalogEntry{
		{
			Name:         "Acoustical Door Opening - STC Rated",
			Description:  "STC-rated doors for offices, schools, hotels, and anywhere noise transference could be problematic. Available in various STC ratings.",
			URL:          assaAbloySpecialtyURL + "/product-details.aehpdp-acoustical-openings-dss_assa_abloy_dss_99370",
			ModelNumbers: []string{"STC-35", "STC-40", "STC-45", "STC-50"},
			Features:     []string{"STC ratings 35-55", "Gasketed perimeter", "Automatic door bottom", "Vision panel options"},
			PriceRange:   "$1,500-$4,000",
			Manufacturer: "ASSA ABLOY DSS",
		},
	},
	BulletResistant: []domain.CatalogEntry{
		{
			Name:         "Bullet Resistant Door Opening",
			Description:  "Multiple levels of protection against ballistic threats, tested and certified to strict UL 752 standards.",
			URL:          assaAbloySpecialtyURL + "/product-details.aehpdp-bullet-resistant-openings-dss_assa_abloy_dss_99369",
			ModelNumbers: []string{"BR-1", "BR-3", "BR-4", "BR-8"},
			Features:     []string{"UL 752 Levels 1-8", "Steel and composite construction", "Matching bullet-resistant frames", "Vision panel options"},
			PriceRange:   "$3,000-$15,000",
			Manufacturer: "ASSA ABLOY DSS",
		},
	},
	BlastResistant: []domain.CatalogEntry{
		{
			Name:         "Blast Resistant Door Opening",
			Description:  "Protection against explosions and excessive force. Designed for critical infrastructure and government facilities.",
			URL:          assaAbloySpecialtyURL + "/product-details.aehpdp-blast-resistant-openings-dss_assa_abloy_dss_227316",
			ModelNumbers: []string{"BR-GSA", "BR-DOD", "BR-ISC"},
			Features:     []string{"GSA/ISC compliant", "DoD certified", "Blast tested", "Hazard mitigation"},
			PriceRange:   "$5,000-$25,000",
			Manufacturer: "ASSA ABLOY DSS",
		},
	},
	HurricaneResistant: []domain.CatalogEntry{
		{
			Name:         "Hurricane Resistant Door Opening",
			Description:  "Essential in storm zones, ensuring safety and property protection. Florida Building Code and Miami-Dade approved.",
			URL:          assaAbloySpecialtyURL + "/product-details.aehpdp-hurricane-resistant-openings-dss_assa_abloy_dss_227321",
			ModelNumbers: []string{"HC-S", "HC-M", "HC-L"},
			Features:     []string{"Florida Building Code approved", "Miami-Dade NOA", "Large/small missile impact", "HVHZ rated"},
			PriceRange:   "$2,000-$8,000",
			Manufacturer: "ASSA ABLOY DSS",
		},
		{
			Name:         "StormPro Hurricane and Tornado Resistant Opening",
			Description:  "Designed to protect against missile penetration from wind-borne debris for hurricane and tornado shelters.",
			URL:          assaAbloySpecialtyURL + "/product-details.aehpdp-stormpro-hurricane-and-tornado-resistant-openings-dss_assa_abloy_dss_824814",
			ModelNumbers: []string{"SP-FEMA", "SP-ICC"},
			Features:     []string{"FEMA P-361 compliant", "ICC 500 certified", "EF5 tornado rated", "Shelter door approved"},
			PriceRange:   "$4,000-$12,000",
			Manufacturer: "ASSA ABLOY DSS",
		},
	},
	AttackResistant: []domain.CatalogEntry{
		{
			Name:         "Attack Resistant Door Opening",
			Description:  "Forced entry resistant openings that prioritize safety and security with cutting-edge materials.",
			URL:          assaAbloySpecialtyURL + "/product-details.aehpdp-attack-resistant-openings-dss_assa_abloy_dss_227315",
			ModelNumbers: []string{"FE-5", "FE-10", "FE-15"},
			Features:     []string{"Forced entry rated", "5-15 minute attack ratings", "Reinforced construction", "High-security hardware"},
			PriceRange:   "$2,500-$10,000",
			Manufacturer: "ASSA ABLOY DSS",
		},
		{
			Name:         "Forced Entry Bullet Resistant Opening",
			Description:  "Combines ballistic and forced-entry resistance with cutting-edge materials for unparalleled protection.",
			URL:          assaAbloySpecialtyURL + "/product-details.aehpdp-forced-entry-bullet-resistant-openings-dss_assa_abloy_dss_227320",
			ModelNumbers: []string{"FEBR-3", "FEBR-5", "FEBR-8"},
			Features:     []string{"Combined FE + BR rating", "UL 752 ballistic", "ASTM forced entry", "Embassy-grade protection"},
			PriceRange:   "$8,000-$30,000",
			Manufacturer: "ASSA ABLOY DSS",
		},
	},
	FloodResistant: []domain.CatalogEntry{
		{
			Name:         "Flood Resistant Door Opening",
			Description:  "Specially designed doorways that keep out water up to a depth of 36 inches for flood-prone facilities.",
			URL:          assaAbloySpecialtyURL + "/product-details.aehpdp-flood-resistant-openings-dss_assa_abloy_dss_227319",
			ModelNumbers: []string{"FL-24", "FL-36"},
			Features:     []string{"24\" or 36\" water depth", "FM Approved", "Watertight gaskets", "Manual or automatic"},
			PriceRange:   "$3,000-$8,000",
			Manufacturer: "ASSA ABLOY DSS",
		},
	},
	LeadLined: []domain.CatalogEntry{
		{
			Name:         "Lead-Lined Door Opening",
			Description:  "High-quality lead-lined door openings for radiation protection in medical and industrial applications.",
			URL:          assaAbloySpecialtyURL + "/product-details.aehpdp-lead-lined-openings-dss_assa_abloy_dss_227322",
			ModelNumbers: []string{"LL-1/16", "LL-1/8", "LL-1/4"},
			Features:     []string{"1/16\" to 1/2\" lead equivalent", "Radiation shielding", "Healthcare compliant", "X-ray room rated"},
			PriceRange:   "$2,000-$6,000",
			Manufacturer: "ASSA ABLOY DSS",
		},
	},
	StainlessSteel: []domain.CatalogEntry{
		{
			Name:         "Stainless Steel Door Opening",
			Description:  "Sleek stainless steel doors and frames offering corrosion resistance and enhanced aesthetic appeal.",
			URL:          assaAbloySpecialtyURL + "/product-details.aehpdp-stainless-steel-openings-dss_assa_abloy_dss_223738",
			ModelNumbers: []string{"SS-304", "SS-316"},
			Features:     []string{"304 or 316 stainless", "Corrosion resistant", "Hygienic", "Multiple finishes"},
			PriceRange:   "$1,500-$4,500",
			Manufacturer: "ASSA ABLOY DSS",
		},
	},
	EMIShielding: []domain.CatalogEntry{
		{
			Name:         "EMI-RFI/STC Shielding Door Assembly",
			Description:  "Protects sensitive communications and electronics from electromagnetic interference. For data centers, SCIF, and military applications.",
			URL:          assaAbloySpecialtyURL + "/product-details.aehpdp-emi-rfistc-shielding-assembly-with-split-frame-and-adjustable-seals-dss_assa_abloy_dss_959145",
			ModelNumbers: []string{"EMI-40", "EMI-60", "EMI-100"},
			Features:     []string{"40-100 dB shielding", "TEMPEST compliant", "SCIF requirements", "Combined STC rating"},
			PriceRange:   "$8,000-$25,000",
			Manufacturer: "ASSA ABLOY DSS",
		},
	},
	WaterResistant: []domain.CatalogEntry{
		{
			Name:         "Water Resistant Door Opening",
			Description:  "Sanitary and watertight solution for clean rooms, laboratories, or chemical storage areas.",
			URL:          assaAbloySpecialtyURL + "/product-details.aehpdp-water-resistant-openings-dss_assa_abloy_dss_227324",
			ModelNumbers: []string{"WR-S", "WR-L"},
			Features:     []string{"Watertight seal", "Cleanroom compatible", "Chemical resistant", "Stainless steel option"},
			PriceRange:   "$2,500-$6,000",
			Manufacturer: "ASSA ABLOY DSS",
		},
	},
}

// AssaAbloyDSS recommends doors and frames rather than hardware.
type AssaAbloyDSS struct {
	info  domain.DistributorInfo
	rules []Rule
}

// NewAssaAbloyDSS builds the ASSA ABLOY DSS matcher over its static catalog.
func NewAssaAbloyDSS() *AssaAbloyDSS {
	c := assaAbloyProducts
	d := &AssaAbloyDSS{
		info: domain.DistributorInfo{
			ID:      "assaabloy_dss",
			Name:    "ASSA ABLOY Door Security Solutions",
			Website: "https://www.assaabloydss.com",
			LogoURL: "https://www.assaabloydss.com/content/dam/assa-abloy/americas/dss/assa-abloy-dss/logos/assa-abloy-logo.svg",
		},
	}

	// Hollow metal is appropriate for steel/fiberglass doors, commercial
	// openings, and anything fire rated.
	needsSteel := func(s *domain.DoorSpecification) bool {
		return s.Material == domain.MaterialSteel || s.Material == domain.MaterialFiberglass ||
			s.IsCommercial() || s.IsFireRated()
	}
	specialty := func(kind string, flag func(*domain.DoorSpecification) bool) func(*domain.DoorSpecification) bool {
		return func(s *domain.DoorSpecification) bool {
			return s.SpecialtyType == kind || flag(s)
		}
	}

	d.rules = []Rule{
		{
			// The fire-rated line replaces the standard doors, never both.
			Category: "Fire-Rated Steel Doors",
			When:     func(s *domain.DoorSpecification) bool { return needsSteel(s) && s.IsFireRated() },
			Select:   selectAll(c.DoorsCeco[1:2]),
		},
		{
			Category: "Commercial Steel Doors",
			When:     func(s *domain.DoorSpecification) bool { return needsSteel(s) && !s.IsFireRated() },
			Select:   selectAll(c.DoorsCeco[:1]),
		},
		{
			Category: "Commercial Steel Doors",
			When:     func(s *domain.DoorSpecification) bool { return needsSteel(s) && !s.IsFireRated() },
			Select:   selectAll(c.DoorsCurries),
			Limit:    1,
		},
		{
			// A frame always accompanies a steel door selection.
			Category: "Hollow Metal Frames",
			When:     needsSteel,
			Select:   selectAll(c.FramesCeco),
			Limit:    1,
		},
		{
			Category: "Acoustical Doors",
			When:     specialty("acoustical", func(s *domain.DoorSpecification) bool { return s.Acoustical }),
			Select:   selectAll(c.Acoustical),
		},
		{
			Category: "Bullet Resistant Doors",
			When:     specialty("bullet_resistant", func(s *domain.DoorSpecification) bool { return s.BulletResistant }),
			Select:   selectAll(c.BulletResistant),
		},
		{
			Category: "Blast Resistant Doors",
			When:     specialty("blast_resistant", func(s *domain.DoorSpecification) bool { return s.BlastResistant }),
			Select:   selectAll(c.BlastResistant),
		},
		{
			Category: "Hurricane Resistant Doors",
			When:     specialty("hurricane_resistant", func(s *domain.DoorSpecification) bool { return s.HurricaneResistant }),
			Select:   selectAll(c.HurricaneResistant),
		},
		{
			Category: "Attack Resistant Doors",
			When:     specialty("attack_resistant", func(s *domain.DoorSpecification) bool { return s.AttackResistant }),
			Select:   selectAll(c.AttackResistant),
		},
		{
			Category: "Flood Resistant Doors",
			When:     specialty("flood_resistant", func(s *domain.DoorSpecification) bool { return s.FloodResistant }),
			Select:   selectAll(c.FloodResistant),
		},
		{
			Category: "Lead-Lined Doors",
			When:     specialty("lead_lined", func(s *domain.DoorSpecification) bool { return s.LeadLined }),
			Select:   selectAll(c.LeadLined),
		},
		{
			Category: "Stainless Steel Doors",
			When:     specialty("stainless_steel", func(s *domain.DoorSpecification) bool { return s.Material == domain.MaterialStainless }),
			Select:   selectAll(c.StainlessSteel),
		},
		{
			Category: "EMI/RFI Shielding Doors",
			When:     specialty("emi_shielding", func(s *domain.DoorSpecification) bool { return s.EMIShielding }),
			Select:   selectAll(c.EMIShielding),
		},
		{
			Category: "Designer Steel Doors",
			When:     func(s *domain.DoorSpecification) bool { return s.IsCommercial() && s.Aesthetic },
			Select:   selectAll(c.DoorsRiteDoor),
		},
	}
	return d
}

// ID implements domain.Distributor.
func (d *AssaAbloyDSS) ID() string { return d.info.ID }

// Info implements domain.Distributor.
func (d *AssaAbloyDSS) Info() domain.DistributorInfo { return d.info }

// Match implements domain.Distributor.
func (d *AssaAbloyDSS) Match(spec *domain.DoorSpecification) []domain.RecommendationEntry {
	return evalRules(d.rules, spec, func(e domain.CatalogEntry) string {
		return d.info.Name + " (" + e.Manufacturer + ")"
	})
}
