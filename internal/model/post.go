// internal/model/post.go
package model

import "time"

type Post struct {
	ID          int       `db:"id" json:"id"`
	CampaignID  int       `db:"campaign_id" json:"campaign_id"`
	Content     string    `db:"content" json:"content"`
	AIGenerated bool      `db:"ai_generated" json:"ai_generated"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
