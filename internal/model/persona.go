// internal/model/persona.go
package model

// Persona describes one audience segment the content generator personalizes
// marketing copy for.
type Persona struct {
	Age        int    `json:"age"`
	Location   string `json:"location"`
	Occupation string `json:"occupation"`
	Language   string `json:"language"`
}

// PersonaContent is the generated copy for a single persona.
type PersonaContent struct {
	Text       string `json:"text"`
	Language   string `json:"language"`
	Occupation string `json:"occupation"`
}
