// internal/service/content_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/adspark/adspark-backend/internal/ai"
	appErrors "github.com/adspark/adspark-backend/internal/errors"
	"github.com/adspark/adspark-backend/internal/model"
	"github.com/adspark/adspark-backend/internal/repository"
)

type ContentService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	PostRepo     repository.PostRepositoryInterface
	Generator    ai.Generator
	Timeout      time.Duration
	Logger       *zap.Logger
}

// CampaignContent is the outcome of a multi-persona generation run.
type CampaignContent struct {
	ExtractedText    string                           `json:"extracted_text"`
	MarketingContent map[string]model.PersonaContent `json:"marketing_content"`
}

// GeneratePost produces marketing copy for a stored campaign and persists it
// as a Post. The Post is only written after generation succeeds.
func (s *ContentService) GeneratePost(ctx context.Context, campaignID int) (*model.Post, error) {
	campaign, err := s.CampaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, err
	}

	genCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	content, err := s.Generator.GenerateText(genCtx, ai.CampaignPrompt(campaign))
	if err != nil {
		return nil, appErrors.NewGenerationFailed(err)
	}

	post := &model.Post{
		CampaignID:  campaignID,
		Content:     content,
		AIGenerated: true,
	}
	if err := s.PostRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to store generated post: %w", err)
	}
	return post, nil
}

// GenerateCampaignContent extracts text from the supplied image (best effort)
// and generates localized copy per persona. One failed persona aborts the
// whole run; the partial-result policy lives behind the Generator seam.
func (s *ContentService) GenerateCampaignContent(ctx context.Context, image []byte, mimeType, productInfo string, personas []model.Persona) (*CampaignContent, error) {
	extractCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	extracted, err := s.Generator.ExtractImageText(extractCtx, image, mimeType)
	cancel()
	if err != nil {
		s.Logger.Warn("image text extraction failed, continuing without it", zap.Error(err))
		extracted = ""
	}

	content := &CampaignContent{
		ExtractedText:    extracted,
		MarketingContent: make(map[string]model.PersonaContent, len(personas)),
	}

	for i, persona := range personas {
		prompt := ai.PersonaPrompt(productInfo, extracted, persona)

		genCtx, cancel := context.WithTimeout(ctx, s.Timeout)
		text, err := s.Generator.GenerateText(genCtx, prompt)
		cancel()
		if err != nil {
			return nil, appErrors.NewGenerationFailed(err)
		}

		language := persona.Language
		if language == "" {
			language = "English"
		}
		occupation := persona.Occupation
		if occupation == "" {
			occupation = "customer"
		}
		content.MarketingContent[fmt.Sprintf("persona_%d", i+1)] = model.PersonaContent{
			Text:       text,
			Language:   language,
			Occupation: occupation,
		}
	}

	return content, nil
}
