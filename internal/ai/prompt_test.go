package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adspark/adspark-backend/internal/model"
)

func TestPersonaPromptKnownOccupationAndLanguage(t *testing.T) {
	p := model.Persona{Age: 24, Location: "Delhi", Occupation: "Trekker", Language: "Hindi"}
	prompt := PersonaPrompt("Steel bottle", "SALE", p)

	assert.Contains(t, prompt, "Product Context: Steel bottle")
	assert.Contains(t, prompt, "Image Details: SALE")
	assert.Contains(t, prompt, "Age: 24")
	assert.Contains(t, prompt, "Location: Delhi")
	// Occupation lookup is case-insensitive.
	assert.Contains(t, prompt, "trekking enthusiast")
	assert.Contains(t, prompt, "हिंदी:")
}

func TestPersonaPromptFallbacks(t *testing.T) {
	p := model.Persona{Age: 40, Location: "Berlin", Occupation: "astronaut", Language: "Klingon"}
	prompt := PersonaPrompt("bottle", "", p)

	assert.Contains(t, prompt, genericOccupationPrompt)
	assert.Contains(t, prompt, "Generate engaging marketing text in English")
}

func TestPersonaPromptEmptyDefaults(t *testing.T) {
	prompt := PersonaPrompt("bottle", "", model.Persona{Age: 20})
	assert.Contains(t, prompt, "Occupation: customer")
	assert.Contains(t, prompt, "Generate engaging marketing text in English")
}

func TestCampaignPromptIncludesAudience(t *testing.T) {
	c := &model.Campaign{
		Title:       "Gear Sale",
		Description: "durable packs",
		LowerAge:    18,
		UpperAge:    35,
		Gender:      "F",
		Location:    []string{"Delhi", "Mumbai"},
		Occupation:  []string{"student"},
	}
	prompt := CampaignPrompt(c)

	assert.Contains(t, prompt, `"Gear Sale"`)
	assert.Contains(t, prompt, "durable packs")
	assert.Contains(t, prompt, "ages 18-35")
	assert.Contains(t, prompt, "gender F")
	assert.Contains(t, prompt, "Delhi, Mumbai")
	assert.Contains(t, prompt, "student")
}

func TestCampaignPromptOmitsEmptyFilters(t *testing.T) {
	prompt := CampaignPrompt(&model.Campaign{Title: "T", Description: "D", LowerAge: 20, UpperAge: 30})
	assert.False(t, strings.Contains(prompt, "gender"))
	assert.False(t, strings.Contains(prompt, "located in"))
}
