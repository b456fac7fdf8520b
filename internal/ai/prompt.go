// internal/ai/prompt.go
package ai

import (
	"fmt"
	"strings"

	"github.com/adspark/adspark-backend/internal/model"
)

const genericOccupationPrompt = "Create personalized marketing text for this customer."

var occupationPrompts = map[string]string{
	"trekker":      "Create marketing text for a trekking enthusiast who needs reliable gear for their adventures.",
	"student":      "Create marketing text for a student who needs practical solutions for their daily college life.",
	"professional": "Create marketing text for a working professional who needs reliable business accessories.",
	"athlete":      "Create marketing text for an athlete who needs durable gear for their training and competitions.",
}

var languageInstructions = map[string]string{
	"Hindi":     "Generate marketing text in Hindi. Use culturally relevant Hindi expressions and format as:\nहिंदी: [Hindi marketing text with emojis in regional script]",
	"Bengali":   "Generate marketing text in Bengali. Use culturally relevant Bengali expressions and format as:\nবাংলা: [Bengali marketing text with emojis in regional script]",
	"Telugu":    "Generate marketing text in Telugu. Use culturally relevant Telugu expressions and format as:\nతెలుగు: [Telugu marketing text with emojis in regional script]",
	"Marathi":   "Generate marketing text in Marathi. Use culturally relevant Marathi expressions and format as:\nमराठी: [Marathi marketing text with emojis in regional script]",
	"Tamil":     "Generate marketing text in Tamil. Use culturally relevant Tamil expressions and format as:\nதமிழ்: [Tamil marketing text with emojis in regional script]",
	"Urdu":      "Generate marketing text in Urdu. Use culturally relevant Urdu expressions and format as:\nاردو: [Urdu marketing text with emojis in regional script]",
	"Gujarati":  "Generate marketing text in Gujarati. Use culturally relevant Gujarati expressions and format as:\nગુજરાતી: [Gujarati marketing text with emojis in regional script]",
	"Malayalam": "Generate marketing text in Malayalam. Use culturally relevant Malayalam expressions and format as:\nമലയാളം: [Malayalam marketing text with emojis in regional script]",
	"Kannada":   "Generate marketing text in Kannada. Use culturally relevant Kannada expressions and format as:\nಕನ್ನಡ: [Kannada marketing text with emojis in regional script]",
	"Odia":      "Generate marketing text in Odia. Use culturally relevant Odia expressions and format as:\nଓଡ଼ିଆ: [Odia marketing text with emojis in regional script]",
	"Punjabi":   "Generate marketing text in Punjabi. Use culturally relevant Punjabi expressions and format as:\nਪੰਜਾਬੀ: [Punjabi marketing text with emojis in regional script]",
	"English":   "Generate engaging marketing text in English with relevant emojis.",
}

// PersonaPrompt composes the per-persona generation prompt from the product
// description, the text extracted from the campaign image and the persona's
// demographics. Unknown occupations and languages fall back to generic
// framing.
func PersonaPrompt(productInfo, extractedText string, persona model.Persona) string {
	occupation := persona.Occupation
	if occupation == "" {
		occupation = "customer"
	}
	language := persona.Language
	if language == "" {
		language = "English"
	}

	occupationPrompt, ok := occupationPrompts[strings.ToLower(occupation)]
	if !ok {
		occupationPrompt = genericOccupationPrompt
	}
	languageInstruction, ok := languageInstructions[language]
	if !ok {
		languageInstruction = languageInstructions["English"]
	}

	return fmt.Sprintf(`Product Context: %s
Image Details: %s

Target Audience Profile:
- Age: %d
- Location: %s
- Occupation: %s

%s
%s

Requirements:
1. Make it personal and relatable to their specific lifestyle.
2. Reference how the product solves their specific needs.
3. Use occupation-specific scenarios and pain points.
4. Include relevant emojis.
5. Keep the tone friendly but professional.
6. Make cultural references relevant to their location.
7. Maximum length: 3-4 sentences.
`, productInfo, extractedText, persona.Age, persona.Location, occupation, occupationPrompt, languageInstruction)
}

// CampaignPrompt derives the stored-post prompt from a campaign's own fields.
func CampaignPrompt(c *model.Campaign) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a short social media marketing post for the campaign %q.\n", c.Title)
	fmt.Fprintf(&b, "Product description: %s\n", c.Description)
	fmt.Fprintf(&b, "Target audience: ages %d-%d", c.LowerAge, c.UpperAge)
	if c.Gender != "" {
		fmt.Fprintf(&b, ", gender %s", c.Gender)
	}
	if len(c.Location) > 0 {
		fmt.Fprintf(&b, ", located in %s", strings.Join(c.Location, ", "))
	}
	if len(c.Occupation) > 0 {
		fmt.Fprintf(&b, ", working as %s", strings.Join(c.Occupation, ", "))
	}
	b.WriteString(".\n")
	b.WriteString("Keep it friendly but professional, include relevant emojis and keep it to 3-4 sentences.")
	return b.String()
}
