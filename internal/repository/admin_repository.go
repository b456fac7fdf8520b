package repository

import (
	"database/sql"
	"time"

	"github.com/adspark/adspark-backend/internal/model"
)

type AdminRepositoryInterface interface {
	Create(a *model.Admin) error
	GetByID(id int) (*model.Admin, error)
	GetByEmail(email string) (*model.Admin, error)
	GetByUsername(username string) (*model.Admin, error)
}

type AdminRepository struct {
	DB *sql.DB
}

func (r *AdminRepository) Create(a *model.Admin) error {
	a.CreatedAt = time.Now()
	a.IsActive = true
	query := `
        INSERT INTO admins (email, username, password_hash, is_active, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	return r.DB.QueryRow(query, a.Email, a.Username, a.PasswordHash, a.IsActive, a.CreatedAt).Scan(&a.ID)
}

func (r *AdminRepository) GetByID(id int) (*model.Admin, error) {
	return r.get(`WHERE id=$1`, id)
}

func (r *AdminRepository) GetByEmail(email string) (*model.Admin, error) {
	return r.get(`WHERE email=$1`, email)
}

func (r *AdminRepository) GetByUsername(username string) (*model.Admin, error) {
	return r.get(`WHERE username=$1`, username)
}

func (r *AdminRepository) get(where string, arg interface{}) (*model.Admin, error) {
	query := `SELECT id, email, username, password_hash, is_active, created_at FROM admins ` + where
	var a model.Admin
	err := r.DB.QueryRow(query, arg).Scan(&a.ID, &a.Email, &a.Username, &a.PasswordHash, &a.IsActive, &a.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &a, nil
}

var _ AdminRepositoryInterface = (*AdminRepository)(nil)
