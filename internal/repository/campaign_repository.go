package repository

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	appErrors "github.com/adspark/adspark-backend/internal/errors"
	"github.com/adspark/adspark-backend/internal/model"
)

type CampaignRepositoryInterface interface {
	Create(c *model.Campaign) error
	GetByID(id int) (*model.Campaign, error)
	ListByAdmin(adminID int) ([]*model.Campaign, error)
	Delete(id int) error
}

type CampaignRepository struct {
	DB *sql.DB
}

const campaignColumns = `id, name, title, description, lower_age, upper_age,
        location, gender, occupation, language, file_name, file_path,
        status, admin_id, created_at`

func (r *CampaignRepository) Create(c *model.Campaign) error {
	c.CreatedAt = time.Now()
	if c.Status == "" {
		c.Status = "draft"
	}
	query := `
        INSERT INTO campaigns (name, title, description, lower_age, upper_age,
                               location, gender, occupation, language,
                               file_name, file_path, status, admin_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id
    `
	return r.DB.QueryRow(query,
		c.Name, c.Title, c.Description, c.LowerAge, c.UpperAge,
		pq.Array(c.Location), nullable(c.Gender), pq.Array(c.Occupation), pq.Array(c.Language),
		c.FileName, c.FilePath, c.Status, c.AdminID, c.CreatedAt,
	).Scan(&c.ID)
}

func (r *CampaignRepository) GetByID(id int) (*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id=$1`
	c, err := scanCampaign(r.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return c, nil
}

func (r *CampaignRepository) ListByAdmin(adminID int) ([]*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE admin_id=$1 ORDER BY id DESC`
	rows, err := r.DB.Query(query, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []*model.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

// Delete removes a campaign; its posts go with it via the FK cascade.
func (r *CampaignRepository) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM campaigns WHERE id=$1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErrors.NewCampaignNotFound(id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row rowScanner) (*model.Campaign, error) {
	var c model.Campaign
	var location, occupation, language pq.StringArray
	var gender sql.NullString
	err := row.Scan(
		&c.ID, &c.Name, &c.Title, &c.Description, &c.LowerAge, &c.UpperAge,
		&location, &gender, &occupation, &language,
		&c.FileName, &c.FilePath, &c.Status, &c.AdminID, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Location = []string(location)
	c.Occupation = []string(occupation)
	c.Language = []string(language)
	c.Gender = gender.String
	return &c, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
