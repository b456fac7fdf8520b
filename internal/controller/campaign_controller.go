// internal/controller/campaign_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/adspark/adspark-backend/internal/auth"
	appErrors "github.com/adspark/adspark-backend/internal/errors"
	"github.com/adspark/adspark-backend/internal/service"
	"github.com/adspark/adspark-backend/internal/storage"
)

type CampaignController struct {
	CampaignService *service.CampaignService
	Store           *storage.ImageStore
	Logger          *zap.Logger
}

// Target handles the standalone audience-size estimate. The set parameters
// arrive as JSON-encoded arrays in the query string.
func (c *CampaignController) Target(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	for _, field := range []string{"lower_age", "upper_age"} {
		if q.Get(field) == "" {
			writeError(w, appErrors.NewValidation(field))
			return
		}
	}
	lowerAge, err := strconv.Atoi(q.Get("lower_age"))
	if err != nil {
		writeError(w, appErrors.NewInvalidArgument("lower_age must be an integer"))
		return
	}
	upperAge, err := strconv.Atoi(q.Get("upper_age"))
	if err != nil {
		writeError(w, appErrors.NewInvalidArgument("upper_age must be an integer"))
		return
	}

	locations, err1 := decodeStringArray(q.Get("location"))
	occupations, err2 := decodeStringArray(q.Get("occupation"))
	languages, err3 := decodeStringArray(q.Get("language"))
	if err1 != nil || err2 != nil || err3 != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid JSON format for location, language, or occupation",
		})
		return
	}

	count, err := c.CampaignService.CountTarget(lowerAge, upperAge, locations, occupations, languages)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"matching_users_count": count})
}

// Create handles the admin-only multipart campaign creation form.
func (c *CampaignController) Create(w http.ResponseWriter, r *http.Request) {
	adminID, ok := auth.AdminID(r.Context())
	if !ok {
		writeError(w, appErrors.NewUnauthorized("missing admin identity"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, storage.MaxImageBytes+1<<20)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, appErrors.NewInvalidArgument("invalid multipart form: %v", err))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, appErrors.NewValidation("image"))
		return
	}
	defer file.Close()
	if header.Filename == "" {
		writeError(w, appErrors.NewValidation("image"))
		return
	}

	in := service.CreateCampaignInput{
		Name:          r.FormValue("name"),
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		Gender:        r.FormValue("gender"),
		IgHandle:      r.FormValue("ig_handle"),
		FbHandle:      r.FormValue("fb_handle"),
		TwitterHandle: r.FormValue("twitter_handle"),
		ImageName:     header.Filename,
		Image:         file,
		ImageSize:     header.Size,
	}

	for _, field := range []string{"lower_age", "upper_age"} {
		if r.FormValue(field) == "" {
			writeError(w, appErrors.NewValidation(field))
			return
		}
	}
	if in.LowerAge, err = strconv.Atoi(r.FormValue("lower_age")); err != nil {
		writeError(w, appErrors.NewInvalidArgument("lower_age must be an integer"))
		return
	}
	if in.UpperAge, err = strconv.Atoi(r.FormValue("upper_age")); err != nil {
		writeError(w, appErrors.NewInvalidArgument("upper_age must be an integer"))
		return
	}

	var err1, err2, err3 error
	in.Location, err1 = decodeStringArray(r.FormValue("location"))
	in.Occupation, err2 = decodeStringArray(r.FormValue("occupation"))
	in.Language, err3 = decodeStringArray(r.FormValue("language"))
	if err1 != nil || err2 != nil || err3 != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid JSON format for location, language, or occupation",
		})
		return
	}

	result, err := c.CampaignService.Create(adminID, in)
	if err != nil {
		c.Logger.Error("campaign creation failed", zap.Int("admin_id", adminID), zap.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":             result.CampaignID,
		"matching_users": result.MatchingUsers,
		"message":        "Campaign created successfully",
		"file_name":      result.FileName,
	})
}

// List returns the caller's campaigns.
func (c *CampaignController) List(w http.ResponseWriter, r *http.Request) {
	adminID, ok := auth.AdminID(r.Context())
	if !ok {
		writeError(w, appErrors.NewUnauthorized("missing admin identity"))
		return
	}

	summaries, err := c.CampaignService.ListForAdmin(adminID)
	if err != nil {
		c.Logger.Error("failed to list campaigns", zap.Int("admin_id", adminID), zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

// Image streams a stored campaign image by filename.
func (c *CampaignController) Image(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	path, err := c.Store.Path(filename)
	if err != nil {
		writeError(w, err)
		return
	}
	http.ServeFile(w, r, path)
}

// Delete removes one of the caller's campaigns along with its posts and
// stored image.
func (c *CampaignController) Delete(w http.ResponseWriter, r *http.Request) {
	adminID, ok := auth.AdminID(r.Context())
	if !ok {
		writeError(w, appErrors.NewUnauthorized("missing admin identity"))
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, appErrors.NewInvalidArgument("invalid campaign id"))
		return
	}

	if err := c.CampaignService.Delete(adminID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Campaign deleted successfully"})
}

// decodeStringArray parses a JSON-encoded string array, treating an absent
// value as empty.
func decodeStringArray(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}
