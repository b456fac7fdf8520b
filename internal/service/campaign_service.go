// internal/service/campaign_service.go
package service

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	appErrors "github.com/adspark/adspark-backend/internal/errors"
	"github.com/adspark/adspark-backend/internal/model"
	"github.com/adspark/adspark-backend/internal/repository"
	"github.com/adspark/adspark-backend/internal/storage"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	UserRepo     repository.UserRepositoryInterface
	Store        *storage.ImageStore
	Logger       *zap.Logger
}

// CreateCampaignInput carries the validated-at-the-edge form fields of a
// campaign creation request.
type CreateCampaignInput struct {
	Name        string
	Title       string
	Description string
	LowerAge    int
	UpperAge    int
	Location    []string
	Gender      string
	Occupation  []string
	Language    []string

	IgHandle      string
	FbHandle      string
	TwitterHandle string

	ImageName string
	Image     io.Reader
	ImageSize int64
}

type CreateCampaignResult struct {
	CampaignID    int    `json:"id"`
	MatchingUsers int    `json:"matching_users"`
	FileName      string `json:"file_name"`
}

// CampaignSummary is the listing shape with the derived image URL.
type CampaignSummary struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Status     string   `json:"status"`
	Location   []string `json:"location"`
	Occupation []string `json:"occupation"`
	Language   []string `json:"language"`
	FileName   string   `json:"file_name"`
	FileURL    string   `json:"file_url,omitempty"`
	CreatedAt  string   `json:"created_at"`
}

func (in *CreateCampaignInput) validate() error {
	// lower_age and upper_age presence is enforced at the HTTP edge, before
	// they are parsed to ints.
	for _, f := range []struct {
		name    string
		missing bool
	}{
		{"name", in.Name == ""},
		{"location", len(in.Location) == 0},
		{"occupation", len(in.Occupation) == 0},
		{"language", len(in.Language) == 0},
		{"title", in.Title == ""},
		{"description", in.Description == ""},
	} {
		if f.missing {
			return appErrors.NewValidation(f.name)
		}
	}
	if in.Image == nil || in.ImageSize == 0 {
		return appErrors.NewValidation("image")
	}
	if in.LowerAge < 0 || in.UpperAge < 0 {
		return appErrors.NewInvalidArgument("age bounds must be non-negative")
	}
	if in.LowerAge > in.UpperAge {
		return appErrors.NewInvalidArgument("lower_age must not exceed upper_age")
	}
	return nil
}

// Create validates the input, stores the image, persists the campaign,
// applies the admin-profile side effect and counts the matching audience.
// Any failure after the image write removes the stored file again.
func (s *CampaignService) Create(adminID int, in CreateCampaignInput) (*CreateCampaignResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.ImageSize > storage.MaxImageBytes {
		return nil, appErrors.NewInvalidArgument("image exceeds maximum size of %d bytes", storage.MaxImageBytes)
	}
	if !storage.AllowedFile(in.ImageName) {
		return nil, appErrors.NewInvalidArgument("invalid file type")
	}

	fileName, filePath, err := s.Store.Save(in.ImageName, io.LimitReader(in.Image, storage.MaxImageBytes))
	if err != nil {
		return nil, err
	}

	campaign := &model.Campaign{
		Name:        in.Name,
		Title:       in.Title,
		Description: in.Description,
		LowerAge:    in.LowerAge,
		UpperAge:    in.UpperAge,
		Location:    in.Location,
		Gender:      in.Gender,
		Occupation:  in.Occupation,
		Language:    in.Language,
		FileName:    fileName,
		FilePath:    filePath,
		Status:      "draft",
		AdminID:     adminID,
	}
	if err := s.CampaignRepo.Create(campaign); err != nil {
		s.removeOrphan(filePath)
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	if err := s.applyProfileSideEffect(adminID, in); err != nil {
		s.compensate(campaign.ID, filePath)
		return nil, fmt.Errorf("failed to update admin profile: %w", err)
	}

	matching, err := s.UserRepo.CountMatching(campaign.Criteria())
	if err != nil {
		s.compensate(campaign.ID, filePath)
		return nil, fmt.Errorf("failed to count matching users: %w", err)
	}

	return &CreateCampaignResult{
		CampaignID:    campaign.ID,
		MatchingUsers: matching,
		FileName:      fileName,
	}, nil
}

// applyProfileSideEffect overwrites the acting admin's linked user profile
// with the submitted audience fields. The linkage reuses the admin ID as the
// user ID; absent rows are skipped rather than created.
func (s *CampaignService) applyProfileSideEffect(adminID int, in CreateCampaignInput) error {
	user, err := s.UserRepo.GetByID(adminID)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	if in.Gender != "" {
		user.Gender = in.Gender
	}
	user.Location = strings.Join(in.Location, ",")
	user.Occupation = strings.Join(in.Occupation, ",")
	if in.IgHandle != "" {
		user.IgHandle = in.IgHandle
	}
	if in.FbHandle != "" {
		user.FbHandle = in.FbHandle
	}
	if in.TwitterHandle != "" {
		user.TwitterHandle = in.TwitterHandle
	}

	return s.UserRepo.UpdateProfile(user)
}

// CountTarget backs the standalone target-size query: language is filtered,
// gender is not.
func (s *CampaignService) CountTarget(lowerAge, upperAge int, locations, occupations, languages []string) (int, error) {
	if lowerAge > upperAge {
		return 0, appErrors.NewInvalidArgument("lower_age must not exceed upper_age")
	}
	return s.UserRepo.CountMatching(model.AudienceCriteria{
		LowerAge:    lowerAge,
		UpperAge:    upperAge,
		Locations:   locations,
		Occupations: occupations,
		Languages:   languages,
	})
}

// ListForAdmin returns the caller's campaigns with derived image URLs.
func (s *CampaignService) ListForAdmin(adminID int) ([]CampaignSummary, error) {
	campaigns, err := s.CampaignRepo.ListByAdmin(adminID)
	if err != nil {
		return nil, err
	}

	summaries := make([]CampaignSummary, 0, len(campaigns))
	for _, c := range campaigns {
		summary := CampaignSummary{
			ID:         c.ID,
			Name:       c.Name,
			Status:     c.Status,
			Location:   c.Location,
			Occupation: c.Occupation,
			Language:   c.Language,
			FileName:   c.FileName,
			CreatedAt:  c.CreatedAt.Format("2006-01-02T15:04:05"),
		}
		if c.FileName != "" {
			summary.FileURL = "/api/campaigns/images/" + c.FileName
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetByID fetches a single campaign.
func (s *CampaignService) GetByID(id int) (*model.Campaign, error) {
	return s.CampaignRepo.GetByID(id)
}

// Delete removes a campaign the admin owns, its posts (FK cascade) and its
// stored image.
func (s *CampaignService) Delete(adminID, campaignID int) error {
	campaign, err := s.CampaignRepo.GetByID(campaignID)
	if err != nil {
		return err
	}
	if campaign.AdminID != adminID {
		return appErrors.NewCampaignNotFound(campaignID)
	}
	if err := s.CampaignRepo.Delete(campaignID); err != nil {
		return err
	}
	s.removeOrphan(campaign.FilePath)
	return nil
}

// compensate undoes a partially created campaign: the row and its stored
// image must not outlive a failed creation.
func (s *CampaignService) compensate(campaignID int, filePath string) {
	if err := s.CampaignRepo.Delete(campaignID); err != nil {
		s.Logger.Warn("failed to roll back campaign row", zap.Int("campaign_id", campaignID), zap.Error(err))
	}
	s.removeOrphan(filePath)
}

func (s *CampaignService) removeOrphan(path string) {
	if err := s.Store.Remove(path); err != nil {
		s.Logger.Warn("failed to remove stored image", zap.String("path", path), zap.Error(err))
	}
}
