package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hanaplokal/pkg/i18n"
)

func TestProfileTypeInfoKnown(t *testing.T) {
	pt := ProfileTypeInfo("freelancer")
	assert.Equal(t, "freelancer", pt.ID)
	assert.Contains(t, pt.ListingKinds, "portfolio")
}

func TestProfileTypeInfoUnknownFallsBack(t *testing.T) {
	pt := ProfileTypeInfo("unknown-id")
	assert.Equal(t, "other", pt.ID)
}

func TestCategoryInfoUnknownFallsBack(t *testing.T) {
	c := CategoryInfo("unknown-id")
	assert.Equal(t, "other", c.ID)
}

func TestCategoryInfoKnown(t *testing.T) {
	c := CategoryInfo("sari-sari")
	assert.Equal(t, "Sari-sari Store", c.Label)
}

func TestCategoriesForProfileTypeIncludesOther(t *testing.T) {
	cats := CategoriesForProfileType("informal-worker")
	ids := make(map[string]bool)
	for _, c := range cats {
		ids[c.ID] = true
	}
	assert.True(t, ids["other"], "universal categories should always apply")
	assert.True(t, ids["construction"])
	assert.False(t, ids["bakery"])
}

func TestListingKindsForProfileType(t *testing.T) {
	assert.Equal(t, []string{"labor"}, ListingKindsForProfileType("informal-worker"))
	// Unknown ids get the fallback entry's kinds, never nil.
	assert.NotEmpty(t, ListingKindsForProfileType("does-not-exist"))
}

func TestProfileTypeIDsHaveTranslations(t *testing.T) {
	for _, pt := range ProfileTypes() {
		for _, lang := range i18n.Languages() {
			key := "profile_type." + pt.ID
			assert.NotEqual(t, key, i18n.T(lang, key), "missing %s translation for %s", lang, pt.ID)
		}
	}
}
