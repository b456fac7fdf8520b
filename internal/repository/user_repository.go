package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/adspark/adspark-backend/internal/model"
)

type UserRepositoryInterface interface {
	GetByID(id int) (*model.User, error)
	CountMatching(c model.AudienceCriteria) (int, error)
	DistinctValues() (*model.AttributeValues, error)
	UpdateProfile(u *model.User) error
}

type UserRepository struct {
	DB *sql.DB
}

// BuildCountQuery translates audience criteria into a parameterized count
// query. Age bounds are always applied; gender and each membership set only
// when present. Kept as a pure function so the translation can be tested
// without a database and must stay in agreement with AudienceCriteria.Matches.
func BuildCountQuery(c model.AudienceCriteria) (string, []interface{}) {
	query := `SELECT COUNT(*) FROM users WHERE age >= $1 AND age <= $2`
	args := []interface{}{c.LowerAge, c.UpperAge}
	argPos := 3

	if c.Gender != "" {
		query += fmt.Sprintf(" AND gender=$%d", argPos)
		args = append(args, c.Gender)
		argPos++
	}
	if len(c.Locations) > 0 {
		query += fmt.Sprintf(" AND location = ANY($%d)", argPos)
		args = append(args, pq.Array(c.Locations))
		argPos++
	}
	if len(c.Occupations) > 0 {
		query += fmt.Sprintf(" AND occupation = ANY($%d)", argPos)
		args = append(args, pq.Array(c.Occupations))
		argPos++
	}
	if len(c.Languages) > 0 {
		query += fmt.Sprintf(" AND language = ANY($%d)", argPos)
		args = append(args, pq.Array(c.Languages))
	}

	return query, args
}

func (r *UserRepository) CountMatching(c model.AudienceCriteria) (int, error) {
	query, args := BuildCountQuery(c)
	var count int
	if err := r.DB.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) GetByID(id int) (*model.User, error) {
	query := `
        SELECT id, name, age, gender, location, occupation, language,
               COALESCE(ig_handle, ''), COALESCE(fb_handle, ''), COALESCE(twitter_handle, '')
        FROM users WHERE id=$1
    `
	var u model.User
	err := r.DB.QueryRow(query, id).Scan(
		&u.ID, &u.Name, &u.Age, &u.Gender, &u.Location, &u.Occupation,
		&u.Language, &u.IgHandle, &u.FbHandle, &u.TwitterHandle,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &u, nil
}

// UpdateProfile overwrites the mutable demographic fields of a user.
func (r *UserRepository) UpdateProfile(u *model.User) error {
	query := `
        UPDATE users
        SET gender=$1, location=$2, occupation=$3, ig_handle=$4, fb_handle=$5, twitter_handle=$6
        WHERE id=$7
    `
	_, err := r.DB.Exec(query, u.Gender, u.Location, u.Occupation, u.IgHandle, u.FbHandle, u.TwitterHandle, u.ID)
	return err
}

// DistinctValues collects the known non-empty attribute values across users.
func (r *UserRepository) DistinctValues() (*model.AttributeValues, error) {
	vals := &model.AttributeValues{}
	for _, col := range []struct {
		name string
		dst  *[]string
	}{
		{"language", &vals.Languages},
		{"gender", &vals.Genders},
		{"location", &vals.Locations},
		{"occupation", &vals.Occupations},
	} {
		query := fmt.Sprintf(`SELECT DISTINCT %s FROM users WHERE %s IS NOT NULL AND %s <> ''`, col.name, col.name, col.name)
		rows, err := r.DB.Query(query)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				rows.Close()
				return nil, err
			}
			*col.dst = append(*col.dst, v)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}
	return vals, nil
}

var _ UserRepositoryInterface = (*UserRepository)(nil)
