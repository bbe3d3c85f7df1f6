package extensions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildShareLinkPrefixesCountryCode(t *testing.T) {
	link := BuildShareLink("9970378011", "")
	assert.Equal(t, "https://wa.me/919970378011", link)
}

func TestBuildShareLinkKeepsFullNumbers(t *testing.T) {
	assert.Equal(t, "https://wa.me/919970378011", BuildShareLink("919970378011", ""))
	assert.Equal(t, "https://wa.me/919970378011", BuildShareLink("+919970378011", ""))
}

func TestBuildShareLinkEscapesMessage(t *testing.T) {
	link := BuildShareLink("9970378011", "Hello Ravi, about your Tomato supply")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/919970378011?text="))
	assert.NotContains(t, link, " ")
	assert.Contains(t, link, "Tomato")
}

func TestFollowUpMessageUsesRequestedLanguage(t *testing.T) {
	message := FollowUpMessage("Ravi", "Tomato", "hi")

	assert.Contains(t, message, "Ravi")
	assert.Contains(t, message, "Tomato")
	assert.NotEqual(t, FollowUpMessage("Ravi", "Tomato", "en"), message)
}

func TestFollowUpMessageFallsBackToEnglish(t *testing.T) {
	fallback := FollowUpMessage("Ravi", "Tomato", "fr")
	assert.Equal(t, FollowUpMessage("Ravi", "Tomato", "en"), fallback)
}
