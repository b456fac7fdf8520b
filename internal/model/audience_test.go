package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAudienceCriteriaMatches(t *testing.T) {
	users := []*User{
		{Age: 20, Location: "Delhi", Occupation: "student", Gender: "F", Language: "Hindi"},
		{Age: 40, Location: "Delhi", Occupation: "student", Gender: "F", Language: "Hindi"},
		{Age: 22, Location: "Pune", Occupation: "student", Gender: "F", Language: "Marathi"},
	}

	criteria := AudienceCriteria{
		LowerAge:    18,
		UpperAge:    35,
		Gender:      "F",
		Locations:   []string{"Delhi", "Mumbai"},
		Occupations: []string{"student"},
	}

	count := 0
	for _, u := range users {
		if criteria.Matches(u) {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestAudienceCriteriaInactiveFilters(t *testing.T) {
	u := &User{Age: 25, Location: "Delhi", Occupation: "student", Gender: "M", Language: "Hindi"}

	// Only age bounds active: everything else empty means no filtering.
	assert.True(t, AudienceCriteria{LowerAge: 18, UpperAge: 30}.Matches(u))

	// Each filter rejects independently of the others.
	assert.False(t, AudienceCriteria{LowerAge: 26, UpperAge: 30}.Matches(u))
	assert.False(t, AudienceCriteria{LowerAge: 18, UpperAge: 30, Gender: "F"}.Matches(u))
	assert.False(t, AudienceCriteria{LowerAge: 18, UpperAge: 30, Locations: []string{"Mumbai"}}.Matches(u))
	assert.False(t, AudienceCriteria{LowerAge: 18, UpperAge: 30, Occupations: []string{"athlete"}}.Matches(u))
	assert.False(t, AudienceCriteria{LowerAge: 18, UpperAge: 30, Languages: []string{"Tamil"}}.Matches(u))
}

func TestAudienceCriteriaAgeBoundsInclusive(t *testing.T) {
	c := AudienceCriteria{LowerAge: 18, UpperAge: 35}
	assert.True(t, c.Matches(&User{Age: 18}))
	assert.True(t, c.Matches(&User{Age: 35}))
	assert.False(t, c.Matches(&User{Age: 17}))
	assert.False(t, c.Matches(&User{Age: 36}))
}

func TestCampaignCriteriaOmitsLanguage(t *testing.T) {
	c := &Campaign{
		LowerAge:   18,
		UpperAge:   35,
		Gender:     "F",
		Location:   []string{"Delhi"},
		Occupation: []string{"student"},
		Language:   []string{"Hindi"},
	}

	criteria := c.Criteria()
	assert.Empty(t, criteria.Languages)
	assert.Equal(t, "F", criteria.Gender)

	// A user with a different language still matches campaign-bound criteria.
	assert.True(t, criteria.Matches(&User{Age: 20, Gender: "F", Location: "Delhi", Occupation: "student", Language: "Tamil"}))
}
