// internal/model/campaign.go
package model

import "time"

type Campaign struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	LowerAge    int       `db:"lower_age" json:"lower_age"`
	UpperAge    int       `db:"upper_age" json:"upper_age"`
	Location    []string  `db:"location" json:"location"`
	Gender      string    `db:"gender" json:"gender,omitempty"`
	Occupation  []string  `db:"occupation" json:"occupation"`
	Language    []string  `db:"language" json:"language"`
	FileName    string    `db:"file_name" json:"file_name"`
	FilePath    string    `db:"file_path" json:"file_path"`
	Status      string    `db:"status" json:"status"`
	AdminID     int       `db:"admin_id" json:"admin_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Criteria returns the audience definition the campaign was created with.
// Campaign-bound matching filters on gender but not language; the standalone
// target-size query does the opposite.
func (c *Campaign) Criteria() AudienceCriteria {
	return AudienceCriteria{
		LowerAge:    c.LowerAge,
		UpperAge:    c.UpperAge,
		Gender:      c.Gender,
		Locations:   c.Location,
		Occupations: c.Occupation,
	}
}
