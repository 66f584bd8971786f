package catalog

// drivers is the document catalog for drivers. Declaration order drives the
// ordering of missing-document reports and selector options.
var drivers = mustNew([]Definition{
	{
		Key:      "contract",
		Name:     "Employment Contract",
		Category: "hr",
		Icon:     "file-signature",
		Required: true,
		OneTime:  true,
	},
	{
		Key:                   "id_card",
		Name:                  "Identity Card",
		Category:              "identity",
		Icon:                  "id-card",
		Required:              true,
		Expires:               true,
		DefaultValidityMonths: 120,
		AlertDaysBefore:       60,
	},
	{
		Key:                   "driving_license",
		Name:                  "Driving License",
		Category:              "qualification",
		Icon:                  "car",
		Required:              true,
		Expires:               true,
		DefaultValidityMonths: 60,
		AlertDaysBefore:       90,
	},
	{
		Key:                   "cpc_card",
		Name:                  "Professional Competence Certificate (CPC)",
		Category:              "qualification",
		Icon:                  "graduation-cap",
		Required:              true,
		Expires:               true,
		DefaultValidityMonths: 60,
		AlertDaysBefore:       90,
	},
	{
		Key:                   "tachograph_card",
		Name:                  "Driver Tachograph Card",
		Category:              "qualification",
		Icon:                  "gauge",
		Required:              true,
		Expires:               true,
		DefaultValidityMonths: 60,
		AlertDaysBefore:       60,
	},
	{
		Key:                   "medical_check",
		Name:                  "Medical Examination",
		Category:              "medical",
		Icon:                  "stethoscope",
		Required:              true,
		Expires:               true,
		DefaultValidityMonths: 12,
		AlertDaysBefore:       30,
	},
	{
		Key:                   "psychological_check",
		Name:                  "Psychological Evaluation",
		Category:              "medical",
		Icon:                  "brain",
		Required:              true,
		Expires:               true,
		DefaultValidityMonths: 12,
		AlertDaysBefore:       30,
	},
	{
		Key:                  "criminal_record",
		Name:                 "Criminal Record Check",
		Category:             "hr",
		Icon:                 "shield-check",
		Required:             true,
		PeriodicReview:       true,
		ReviewIntervalMonths: 12,
	},
	{
		Key:                   "passport",
		Name:                  "Passport",
		Category:              "identity",
		Icon:                  "globe",
		ConditionalRequired:   true,
		RequiredCondition:     ConditionInternational,
		Expires:               true,
		DefaultValidityMonths: 120,
		AlertDaysBefore:       180,
		Description:           "Required for drivers assigned to international routes.",
	},
	{
		Key:                   "adr_certificate",
		Name:                  "ADR Certificate",
		Category:              "qualification",
		Icon:                  "flame",
		ConditionalRequired:   true,
		RequiredCondition:     ConditionADR,
		Expires:               true,
		DefaultValidityMonths: 60,
		AlertDaysBefore:       60,
		Description:           "Required for drivers transporting dangerous goods.",
	},
	{
		Key:                   "first_aid_training",
		Name:                  "First Aid Training",
		Category:              "training",
		Icon:                  "heart-pulse",
		Recommended:           true,
		Expires:               true,
		DefaultValidityMonths: 24,
		AlertDaysBefore:       30,
	},
})

// Drivers returns the driver document catalog.
func Drivers() *Catalog {
	return drivers
}
