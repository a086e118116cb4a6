package i18n

// Translations for user-facing strings the server produces, keyed by language
// code. The mobile clients keep their own UI string tables; the server only
// needs the subset used in push notification titles/bodies and a handful of
// shared labels.

const DefaultLanguage = "en"

var translations = map[string]map[string]string{
	"en": {
		"notification.message.title":    "New message",
		"notification.message.body":     "%s sent you a message",
		"notification.review.title":     "New review",
		"notification.review.body":      "%s reviewed your store",
		"notification.favorite.title":   "New favorite",
		"notification.favorite.body":    "%s added your store to their favorites",
		"notification.listing.title":    "New listing",
		"notification.listing.body":     "%s posted a new listing",
		"notification.report.title":     "Report update",
		"notification.report.body":      "Your report has been reviewed",
		"category.other":                "Other",
		"profile_type.store":            "Store",
		"profile_type.service-provider": "Service Provider",
		"profile_type.freelancer":       "Freelancer",
		"profile_type.producer":         "Producer",
		"profile_type.home-seller":      "Home Seller",
		"profile_type.student":          "Student Entrepreneur",
		"profile_type.informal-worker":  "Informal Worker",
		"profile_type.other":            "Other",
	},
	"fil": {
		"notification.message.title":    "Bagong mensahe",
		"notification.message.body":     "May pinadalang mensahe si %s",
		"notification.review.title":     "Bagong review",
		"notification.review.body":      "Nag-review si %s sa tindahan mo",
		"notification.favorite.title":   "Bagong paborito",
		"notification.favorite.body":    "Idinagdag ni %s ang tindahan mo sa mga paborito",
		"notification.listing.title":    "Bagong paninda",
		"notification.listing.body":     "May bagong paninda si %s",
		"notification.report.title":     "Update sa report",
		"notification.report.body":      "Nasuri na ang iyong report",
		"category.other":                "Iba pa",
		"profile_type.store":            "Tindahan",
		"profile_type.service-provider": "Serbisyo",
		"profile_type.freelancer":       "Freelancer",
		"profile_type.producer":         "Prodyuser",
		"profile_type.home-seller":      "Nagtitinda sa Bahay",
		"profile_type.student":          "Estudyanteng Negosyante",
		"profile_type.informal-worker":  "Impormal na Manggagawa",
		"profile_type.other":            "Iba pa",
	},
}

// T resolves key in the given language, falling back to English and finally
// to the key itself so a missing entry never produces an empty string.
func T(lang, key string) string {
	if table, ok := translations[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations[DefaultLanguage][key]; ok {
		return s
	}
	return key
}

// Supported reports whether a language code has a translation table.
func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}

// Languages returns the list of supported language codes.
func Languages() []string {
	langs := make([]string, 0, len(translations))
	for code := range translations {
		langs = append(langs, code)
	}
	return langs
}
