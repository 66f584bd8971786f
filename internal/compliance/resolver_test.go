package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jamaalx/transfabilog-sub001/internal/catalog"
)

// resolverCatalog mixes all three requirement gates, in a deliberate
// declaration order so tie-break behavior is observable.
func resolverCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Definition{
		{Key: "license", Name: "Driving License", Required: true, Expires: true},
		{Key: "medical", Name: "Medical Examination", Required: true, Expires: true},
		{Key: "adr_cert", Name: "ADR Certificate", ConditionalRequired: true, RequiredCondition: catalog.ConditionADR, Expires: true},
		{Key: "passport", Name: "Passport", ConditionalRequired: true, RequiredCondition: catalog.ConditionInternational, Expires: true},
		{Key: "atp_cert", Name: "ATP Certificate", ConditionalRequired: true, RequiredCondition: catalog.ConditionFrigo, Expires: true},
		{Key: "first_aid", Name: "First Aid Training", Recommended: true, Expires: true},
		{Key: "archive_note", Name: "Archive Note"}, // no gate at all
	})
	require.NoError(t, err)
	return cat
}

func missingKeys(items []MissingItem) []string {
	keys := make([]string, 0, len(items))
	for _, m := range items {
		keys = append(keys, m.DocType)
	}
	return keys
}

func TestResolveMissingSkipsExistingTypes(t *testing.T) {
	cat := resolverCatalog(t)
	existing := map[string]bool{"license": true, "medical": true, "first_aid": true}

	missing := ResolveMissing(cat, existing, Profile{})
	assert.NotContains(t, missingKeys(missing), "license")
	assert.NotContains(t, missingKeys(missing), "medical")
	assert.NotContains(t, missingKeys(missing), "first_aid")
}

func TestResolveMissingConditionalInactiveIsInvisible(t *testing.T) {
	cat := resolverCatalog(t)

	// No flags: conditional entries vanish entirely, they are not demoted
	// to recommended.
	missing := ResolveMissing(cat, map[string]bool{}, Profile{})
	keys := missingKeys(missing)
	assert.NotContains(t, keys, "adr_cert")
	assert.NotContains(t, keys, "passport")
	assert.NotContains(t, keys, "atp_cert")
	assert.NotContains(t, keys, "archive_note")
	assert.Equal(t, []string{"license", "medical", "first_aid"}, keys)
}

func TestResolveMissingConditionalActive(t *testing.T) {
	cat := resolverCatalog(t)

	missing := ResolveMissing(cat, map[string]bool{}, Profile{HasADR: true, HasFrigo: true})
	keys := missingKeys(missing)
	assert.Equal(t, []string{"license", "medical", "adr_cert", "atp_cert", "first_aid"}, keys)

	byKey := map[string]MissingItem{}
	for _, m := range missing {
		byKey[m.DocType] = m
	}
	assert.Equal(t, PriorityHigh, byKey["license"].Priority)
	assert.True(t, byKey["license"].Required)
	assert.Equal(t, PriorityMedium, byKey["adr_cert"].Priority)
	assert.True(t, byKey["adr_cert"].Required)
	assert.True(t, byKey["adr_cert"].ConditionalRequired)
	assert.Equal(t, catalog.ConditionADR, byKey["adr_cert"].RequiredCondition)
	assert.Equal(t, PriorityLow, byKey["first_aid"].Priority)
	assert.False(t, byKey["first_aid"].Required)
	assert.True(t, byKey["first_aid"].Recommended)
}

func TestResolveMissingEqualPriorityKeepsCatalogOrder(t *testing.T) {
	cat := resolverCatalog(t)

	// license and medical are both high priority; declaration order must
	// survive the sort even though "medical" < "license" alphabetically.
	missing := ResolveMissing(cat, map[string]bool{}, Profile{HasInternationalRoutes: true, HasADR: true})
	keys := missingKeys(missing)
	assert.Equal(t, []string{"license", "medical", "adr_cert", "passport", "first_aid"}, keys)
}

func TestConditionApplies(t *testing.T) {
	full := Profile{HasInternationalRoutes: true, HasADR: true, HasFrigo: true}

	assert.True(t, conditionApplies(catalog.ConditionInternational, full))
	assert.True(t, conditionApplies(catalog.ConditionADR, full))
	assert.True(t, conditionApplies(catalog.ConditionFrigo, full))
	assert.False(t, conditionApplies(catalog.ConditionADR, Profile{}))

	// An unrecognized condition can never make a document mandatory.
	assert.False(t, conditionApplies(catalog.Condition("tanker"), full))
}
