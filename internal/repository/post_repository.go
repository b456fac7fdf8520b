package repository

import (
	"database/sql"
	"time"

	"github.com/adspark/adspark-backend/internal/model"
)

type PostRepositoryInterface interface {
	Create(p *model.Post) error
	ListByCampaign(campaignID int) ([]*model.Post, error)
}

type PostRepository struct {
	DB *sql.DB
}

func (r *PostRepository) Create(p *model.Post) error {
	p.CreatedAt = time.Now()
	if p.Status == "" {
		p.Status = "draft"
	}
	query := `
        INSERT INTO posts (campaign_id, content, ai_generated, status, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	return r.DB.QueryRow(query, p.CampaignID, p.Content, p.AIGenerated, p.Status, p.CreatedAt).Scan(&p.ID)
}

func (r *PostRepository) ListByCampaign(campaignID int) ([]*model.Post, error) {
	query := `
        SELECT id, campaign_id, content, ai_generated, status, created_at
        FROM posts WHERE campaign_id=$1 ORDER BY id DESC
    `
	rows, err := r.DB.Query(query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []*model.Post{}
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.CampaignID, &p.Content, &p.AIGenerated, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

var _ PostRepositoryInterface = (*PostRepository)(nil)
