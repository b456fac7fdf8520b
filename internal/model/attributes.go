// internal/model/attributes.go
package model

// AttributeValues holds the distinct demographic values known across the
// user population, used to populate audience pickers.
type AttributeValues struct {
	Languages   []string `json:"languages"`
	Genders     []string `json:"genders"`
	Locations   []string `json:"locations"`
	Occupations []string `json:"occupations"`
}
