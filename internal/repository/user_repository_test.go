package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adspark/adspark-backend/internal/model"
)

func TestBuildCountQueryAgeOnly(t *testing.T) {
	query, args := BuildCountQuery(model.AudienceCriteria{LowerAge: 18, UpperAge: 35})

	assert.Equal(t, `SELECT COUNT(*) FROM users WHERE age >= $1 AND age <= $2`, query)
	assert.Len(t, args, 2)
	assert.Equal(t, 18, args[0])
	assert.Equal(t, 35, args[1])
}

func TestBuildCountQueryAllFilters(t *testing.T) {
	query, args := BuildCountQuery(model.AudienceCriteria{
		LowerAge:    18,
		UpperAge:    35,
		Gender:      "F",
		Locations:   []string{"Delhi", "Mumbai"},
		Occupations: []string{"student"},
		Languages:   []string{"Hindi"},
	})

	assert.Equal(t,
		`SELECT COUNT(*) FROM users WHERE age >= $1 AND age <= $2`+
			` AND gender=$3 AND location = ANY($4) AND occupation = ANY($5) AND language = ANY($6)`,
		query)
	assert.Len(t, args, 6)
}

func TestBuildCountQuerySkipsInactiveFilters(t *testing.T) {
	// Languages active, gender inactive: placeholders must stay contiguous.
	query, args := BuildCountQuery(model.AudienceCriteria{
		LowerAge:  18,
		UpperAge:  35,
		Languages: []string{"Hindi", "Tamil"},
	})

	assert.Equal(t,
		`SELECT COUNT(*) FROM users WHERE age >= $1 AND age <= $2 AND language = ANY($3)`,
		query)
	assert.Len(t, args, 3)
}

func TestBuildCountQueryCampaignShape(t *testing.T) {
	// The campaign-bound matcher filters gender but never language.
	c := &model.Campaign{
		LowerAge:   18,
		UpperAge:   35,
		Gender:     "F",
		Location:   []string{"Delhi"},
		Occupation: []string{"student"},
		Language:   []string{"Hindi"},
	}
	query, args := BuildCountQuery(c.Criteria())

	assert.NotContains(t, query, "language")
	assert.Contains(t, query, "gender=$3")
	assert.Len(t, args, 5)
}
