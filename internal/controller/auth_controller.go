// internal/controller/auth_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/adspark/adspark-backend/internal/service"
)

type AuthController struct {
	AuthService *service.AuthService
	Logger      *zap.Logger
}

// List returns the distinct known demographic values across users.
func (c *AuthController) List(w http.ResponseWriter, r *http.Request) {
	values, err := c.AuthService.ListAttributes()
	if err != nil {
		c.Logger.Error("failed to list attribute values", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, values)
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	if _, err := c.AuthService.Register(body.Email, body.Username, body.Password); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Admin registered successfully"})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	token, admin, err := c.AuthService.Login(body.Email, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": token,
		"admin": map[string]interface{}{
			"id":       admin.ID,
			"email":    admin.Email,
			"username": admin.Username,
		},
	})
}
