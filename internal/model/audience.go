// internal/model/audience.go
package model

// AudienceCriteria is a set of filters over the user population. Zero-valued
// fields are inactive: an empty Gender skips the gender filter and an empty
// slice skips its membership filter. Age bounds are always applied.
type AudienceCriteria struct {
	LowerAge    int
	UpperAge    int
	Gender      string
	Locations   []string
	Occupations []string
	Languages   []string
}

// Matches reports whether a user satisfies every active filter. This is the
// reference semantics for audience matching; the SQL the user repository
// builds must agree with it.
func (c AudienceCriteria) Matches(u *User) bool {
	if u.Age < c.LowerAge || u.Age > c.UpperAge {
		return false
	}
	if c.Gender != "" && u.Gender != c.Gender {
		return false
	}
	if len(c.Locations) > 0 && !contains(c.Locations, u.Location) {
		return false
	}
	if len(c.Occupations) > 0 && !contains(c.Occupations, u.Occupation) {
		return false
	}
	if len(c.Languages) > 0 && !contains(c.Languages, u.Language) {
		return false
	}
	return true
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
