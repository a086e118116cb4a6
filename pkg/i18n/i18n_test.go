package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslationLookup(t *testing.T) {
	assert.Equal(t, "New message", T("en", "notification.message.title"))
	assert.Equal(t, "Bagong mensahe", T("fil", "notification.message.title"))
}

func TestTranslationFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "New message", T("ja", "notification.message.title"))
}

func TestTranslationFallsBackToKey(t *testing.T) {
	assert.Equal(t, "no.such.key", T("en", "no.such.key"))
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("en"))
	assert.True(t, Supported("fil"))
	assert.False(t, Supported("es"))
}
