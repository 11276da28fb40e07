// internal/service/merchant.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sirecovip/backend/internal/auth"
	"github.com/sirecovip/backend/internal/domain"
	"github.com/sirecovip/backend/internal/email"
	"github.com/sirecovip/backend/internal/metrics"
	"github.com/sirecovip/backend/internal/model"
	"github.com/sirecovip/backend/internal/repository"
	"github.com/sirecovip/backend/internal/storage"
	"github.com/sirecovip/backend/internal/upload"
)

// listLimit caps the merchant listing at the most recent registrations.
const listLimit = 20

type MerchantService struct {
	repo      repository.MerchantRepositoryIface
	orgRepo   repository.OrganizationRepositoryIface
	userRepo  repository.UserRepositoryIface
	blobStore storage.BlobStoreIface
	mailer    email.MailerIface
	validate  *validator.Validate
}

func NewMerchantService(
	repo repository.MerchantRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	userRepo repository.UserRepositoryIface,
	blobStore storage.BlobStoreIface,
	mailer email.MailerIface,
) *MerchantService {
	return &MerchantService{
		repo:      repo,
		orgRepo:   orgRepo,
		userRepo:  userRepo,
		blobStore: blobStore,
		mailer:    mailer,
		validate:  validator.New(),
	}
}

// RegisterMerchantInput carries the caller-supplied registration fields.
// Status, stand type and registered_by are server-owned: any client-supplied
// value for them is ignored, which is why they do not appear here.
type RegisterMerchantInput struct {
	Name           string  `json:"name" validate:"required"`
	Business       string  `json:"business" validate:"required"`
	Address        string  `json:"address"`
	Delegation     string  `json:"delegation" validate:"required"`
	Latitude       float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude      float64 `json:"longitude" validate:"gte=-180,lte=180"`
	OrganizationID *string `json:"organization_id"`
	ScheduleStart  string  `json:"schedule_start"`
	ScheduleEnd    string  `json:"schedule_end"`
}

// RegisterMerchant stores the optional evidence file and inserts the merchant
// row. The upload must be acknowledged before the insert runs; an upload
// failure aborts the whole operation. If the insert fails after a successful
// upload, the blob is removed again so no orphan is left behind.
func (s *MerchantService) RegisterMerchant(ctx context.Context, principal auth.Principal, input RegisterMerchantInput, file *upload.File) (*model.Merchant, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	var photoURL *string
	var objectKey string

	if file != nil {
		objectKey = evidenceKey(file.Ext)

		url, err := s.blobStore.Upload(ctx, objectKey, file.ContentType, file.Data)
		if err != nil {
			metrics.RecordEvidenceUpload("error")
			return nil, fmt.Errorf("subiendo imagen: %w", err)
		}
		metrics.RecordEvidenceUpload("ok")
		photoURL = &url
	}

	merchant := &model.Merchant{
		ID:             uuid.NewString(),
		Name:           input.Name,
		Business:       input.Business,
		Address:        input.Address,
		Delegation:     input.Delegation,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		OrganizationID: input.OrganizationID,
		ScheduleStart:  input.ScheduleStart,
		ScheduleEnd:    input.ScheduleEnd,
		Status:         model.InitialStatus,
		StandType:      model.StandSemifijo,
		RegisteredBy:   principal.UserID,
		StallPhotoURL:  photoURL,
	}

	if err := s.repo.Create(ctx, merchant); err != nil {
		if objectKey != "" {
			if removeErr := s.blobStore.Remove(ctx, objectKey); removeErr != nil {
				slog.Error("removing orphaned evidence blob", "key", objectKey, "error", removeErr)
			}
		}
		return nil, err
	}

	metrics.RecordRegistration(merchant.Delegation)
	s.attachOrganization(ctx, merchant)

	return merchant, nil
}

// ListMerchants returns the most recent registrations, newest first.
func (s *MerchantService) ListMerchants(ctx context.Context) ([]*model.Merchant, error) {
	return s.repo.FindRecent(ctx, listLimit)
}

func (s *MerchantService) GetMerchant(ctx context.Context, id string) (*model.Merchant, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateMerchantInput carries optional field updates. Stand type and
// registered_by are immutable.
type UpdateMerchantInput struct {
	Name           *string  `json:"name"`
	Business       *string  `json:"business"`
	Address        *string  `json:"address"`
	Delegation     *string  `json:"delegation"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	OrganizationID *string  `json:"organization_id"`
	ScheduleStart  *string  `json:"schedule_start"`
	ScheduleEnd    *string  `json:"schedule_end"`
	Status         *string  `json:"status"`
}

// UpdateMerchant applies the supplied fields. A status outside the closed
// enumeration is rejected. A transition into prioritario notifies the
// coordinators by email, best-effort.
func (s *MerchantService) UpdateMerchant(ctx context.Context, id string, input UpdateMerchantInput, file *upload.File) (*model.Merchant, error) {
	merchant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousStatus := merchant.Status

	if input.Name != nil {
		merchant.Name = *input.Name
	}
	if input.Business != nil {
		merchant.Business = *input.Business
	}
	if input.Address != nil {
		merchant.Address = *input.Address
	}
	if input.Delegation != nil {
		merchant.Delegation = *input.Delegation
	}
	if input.Latitude != nil {
		merchant.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		merchant.Longitude = *input.Longitude
	}
	if input.OrganizationID != nil {
		merchant.OrganizationID = input.OrganizationID
		// Drop the preloaded association so enrichment reloads the new one.
		merchant.Organization = nil
	}
	if input.ScheduleStart != nil {
		merchant.ScheduleStart = *input.ScheduleStart
	}
	if input.ScheduleEnd != nil {
		merchant.ScheduleEnd = *input.ScheduleEnd
	}
	if input.Status != nil {
		status := model.MerchantStatus(*input.Status)
		if !status.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
		merchant.Status = status
	}

	var objectKey string
	if file != nil {
		objectKey = evidenceKey(file.Ext)

		url, err := s.blobStore.Upload(ctx, objectKey, file.ContentType, file.Data)
		if err != nil {
			metrics.RecordEvidenceUpload("error")
			return nil, fmt.Errorf("subiendo imagen: %w", err)
		}
		metrics.RecordEvidenceUpload("ok")
		merchant.StallPhotoURL = &url
	}

	if err := s.repo.Update(ctx, merchant); err != nil {
		if objectKey != "" {
			if removeErr := s.blobStore.Remove(ctx, objectKey); removeErr != nil {
				slog.Error("removing orphaned evidence blob", "key", objectKey, "error", removeErr)
			}
		}
		return nil, err
	}

	if merchant.Status == model.StatusPrioritario && previousStatus != model.StatusPrioritario {
		s.notifyCoordinators(ctx, merchant)
	}

	s.attachOrganization(ctx, merchant)

	return merchant, nil
}

// attachOrganization loads the referenced organization for display-name
// enrichment. A missing organization leaves the association empty.
func (s *MerchantService) attachOrganization(ctx context.Context, merchant *model.Merchant) {
	if merchant.Organization != nil || merchant.OrganizationID == nil {
		return
	}

	org, err := s.orgRepo.FindByID(ctx, *merchant.OrganizationID)
	if err != nil {
		if !errors.Is(err, domain.ErrOrganizationNotFound) {
			slog.Error("loading merchant organization", "organization_id", *merchant.OrganizationID, "error", err)
		}
		return
	}
	merchant.Organization = org
}

func (s *MerchantService) notifyCoordinators(ctx context.Context, merchant *model.Merchant) {
	if s.mailer == nil {
		return
	}

	coordinators, err := s.userRepo.FindByRole(ctx, model.RoleCoordinator)
	if err != nil {
		slog.Error("loading coordinators for priority alert", "error", err)
		return
	}

	recipients := make([]string, 0, len(coordinators))
	for _, coordinator := range coordinators {
		recipients = append(recipients, coordinator.Email)
	}
	if len(recipients) == 0 {
		return
	}

	if err := s.mailer.SendPriorityAlert(ctx, recipients, merchant); err != nil {
		slog.Error("sending priority alert", "merchant_id", merchant.ID, "error", err)
	}
}

// evidenceKey builds a collision-resistant object key preserving the original
// file extension.
func evidenceKey(ext string) string {
	return fmt.Sprintf("puestos/%d_%d%s", time.Now().UnixMilli(), rand.IntN(1000), ext)
}
