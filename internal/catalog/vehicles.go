package catalog

// vehicles is the document catalog for vehicles. Same algorithms as the
// driver catalog, different entries.
var vehicles = mustNew([]Definition{
	{
		Key:      "registration_certificate",
		Name:     "Registration Certificate",
		Category: "legal",
		Icon:     "file-badge",
		Required: true,
		OneTime:  true,
	},
	{
		Key:                   "rca_insurance",
		Name:                  "Third-Party Liability Insurance (RCA)",
		Category:              "insurance",
		Icon:                  "shield",
		Required:              true,
		Expires:               true,
		DefaultValidityMonths: 12,
		AlertDaysBefore:       30,
	},
	{
		Key:                   "itp_inspection",
		Name:                  "Periodic Technical Inspection (ITP)",
		Category:              "technical",
		Icon:                  "wrench",
		Required:              true,
		Expires:               true,
		DefaultValidityMonths: 12,
		AlertDaysBefore:       30,
	},
	{
		Key:                   "road_vignette",
		Name:                  "Road Vignette",
		Category:              "legal",
		Icon:                  "ticket",
		Required:              true,
		Expires:               true,
		DefaultValidityMonths: 12,
		AlertDaysBefore:       14,
	},
	{
		Key:                   "transport_license_copy",
		Name:                  "Certified Copy of Transport License",
		Category:              "legal",
		Icon:                  "files",
		Required:              true,
		Expires:               true,
		DefaultValidityMonths: 120,
		AlertDaysBefore:       60,
	},
	{
		Key:                   "tachograph_calibration",
		Name:                  "Tachograph Calibration",
		Category:              "technical",
		Icon:                  "gauge",
		Required:              true,
		Expires:               true,
		DefaultValidityMonths: 24,
		AlertDaysBefore:       60,
	},
	{
		Key:                   "cmr_insurance",
		Name:                  "CMR Cargo Insurance",
		Category:              "insurance",
		Icon:                  "package",
		ConditionalRequired:   true,
		RequiredCondition:     ConditionInternational,
		Expires:               true,
		DefaultValidityMonths: 12,
		AlertDaysBefore:       30,
		Description:           "Required for vehicles operating international routes.",
	},
	{
		Key:                   "adr_approval",
		Name:                  "ADR Vehicle Approval",
		Category:              "technical",
		Icon:                  "flame",
		ConditionalRequired:   true,
		RequiredCondition:     ConditionADR,
		Expires:               true,
		DefaultValidityMonths: 12,
		AlertDaysBefore:       60,
		Description:           "Required for vehicles carrying dangerous goods.",
	},
	{
		Key:                   "atp_certificate",
		Name:                  "ATP Certificate (Refrigerated Transport)",
		Category:              "technical",
		Icon:                  "snowflake",
		ConditionalRequired:   true,
		RequiredCondition:     ConditionFrigo,
		Expires:               true,
		DefaultValidityMonths: 36,
		AlertDaysBefore:       60,
		Description:           "Required for vehicles with refrigerated cargo units.",
	},
	{
		Key:                   "casco_insurance",
		Name:                  "CASCO Insurance",
		Category:              "insurance",
		Icon:                  "shield-plus",
		Recommended:           true,
		Expires:               true,
		DefaultValidityMonths: 12,
		AlertDaysBefore:       30,
	},
	{
		Key:                   "fire_extinguisher_check",
		Name:                  "Fire Extinguisher Check",
		Category:              "safety",
		Icon:                  "fire-extinguisher",
		Recommended:           true,
		Expires:               true,
		DefaultValidityMonths: 12,
		AlertDaysBefore:       30,
	},
})

// Vehicles returns the vehicle document catalog.
func Vehicles() *Catalog {
	return vehicles
}
