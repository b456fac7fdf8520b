// internal/controller/content_controller.go
package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	appErrors "github.com/adspark/adspark-backend/internal/errors"
	"github.com/adspark/adspark-backend/internal/model"
	"github.com/adspark/adspark-backend/internal/service"
	"github.com/adspark/adspark-backend/internal/storage"
)

type ContentController struct {
	ContentService  *service.ContentService
	CampaignService *service.CampaignService
	Logger          *zap.Logger
}

// GeneratePost creates and stores AI marketing copy for a campaign.
func (c *ContentController) GeneratePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, appErrors.NewInvalidArgument("invalid campaign id"))
		return
	}

	post, err := c.ContentService.GeneratePost(r.Context(), id)
	if err != nil {
		c.Logger.Error("post generation failed", zap.Int("campaign_id", id), zap.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      post.ID,
		"content": post.Content,
		"message": "Post generated successfully",
	})
}

// Generate runs the multi-persona content pipeline: image text extraction
// plus one localized variant per submitted persona.
func (c *ContentController) Generate(w http.ResponseWriter, r *http.Request) {
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

	image, err := io.ReadAll(io.LimitReader(file, storage.MaxImageBytes))
	if err != nil {
		writeError(w, fmt.Errorf("failed to read image: %w", err))
		return
	}

	mimeType := mime.TypeByExtension(filepath.Ext(header.Filename))
	if mimeType == "" {
		mimeType = header.Header.Get("Content-Type")
	}

	// Personas arrive as person1, person2, ... JSON fields; collection stops
	// at the first absent key. A key that is present but empty or unparsable
	// is a client error, not the end of the list.
	personas := []model.Persona{}
	for index := 1; ; index++ {
		values, ok := r.MultipartForm.Value[fmt.Sprintf("person%d", index)]
		if !ok || len(values) == 0 {
			break
		}
		var p model.Persona
		if err := json.Unmarshal([]byte(values[0]), &p); err != nil {
			writeError(w, appErrors.NewInvalidArgument("invalid JSON format for person%d", index))
			return
		}
		personas = append(personas, p)
	}

	content, err := c.ContentService.GenerateCampaignContent(r.Context(), image, mimeType, r.FormValue("product_info"), personas)
	if err != nil {
		c.Logger.Error("persona content generation failed", zap.Int("personas", len(personas)), zap.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"extracted_text":    content.ExtractedText,
		"marketing_content": content.MarketingContent,
		"status":            "success",
	})
}

// CampaignSummary returns the stored campaign fields the generation UI
// works from.
func (c *ContentController) CampaignSummary(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "campaignID"))
	if err != nil {
		writeError(w, appErrors.NewInvalidArgument("invalid campaign id"))
		return
	}

	campaign, err := c.CampaignService.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":          campaign.ID,
		"title":       campaign.Title,
		"description": campaign.Description,
		"status":      campaign.Status,
		"created_at":  campaign.CreatedAt.Format("2006-01-02 15:04:05"),
	})
}
