package service_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sirecovip/backend/internal/auth"
	"github.com/sirecovip/backend/internal/domain"
	"github.com/sirecovip/backend/internal/metrics"
	"github.com/sirecovip/backend/internal/mocks"
	"github.com/sirecovip/backend/internal/model"
	"github.com/sirecovip/backend/internal/service"
	"github.com/sirecovip/backend/internal/upload"
)

func TestMain(m *testing.M) {
	metrics.Init("test")
	os.Exit(m.Run())
}

func inspectorPrincipal() auth.Principal {
	return auth.Principal{
		UserID: "user-1",
		Email:  "inspector@example.com",
		Role:   model.RoleInspector,
	}
}

func validInput() service.RegisterMerchantInput {
	orgID := "org-1"
	return service.RegisterMerchantInput{
		Name:           "Bodega El Sol",
		Business:       "Abarrotes",
		Delegation:     "Centro",
		Latitude:       20.59,
		Longitude:      -100.39,
		OrganizationID: &orgID,
	}
}

func evidenceFile() *upload.File {
	return &upload.File{
		Name:        "puesto.jpg",
		Ext:         ".jpg",
		ContentType: "image/jpeg",
		Data:        []byte("fake image bytes"),
	}
}

func TestRegisterMerchant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("assigns server-owned fields regardless of client input", func(t *testing.T) {
		repo := mocks.NewMockMerchantRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		blobStore := mocks.NewMockBlobStoreIface(ctrl)

		var created *model.Merchant
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, merchant *model.Merchant) {
				created = merchant
			}).
			Return(nil)

		orgRepo.EXPECT().
			FindByID(gomock.Any(), "org-1").
			Return(&model.Organization{ID: "org-1", Name: "Unión Centro"}, nil)

		svc := service.NewMerchantService(repo, orgRepo, nil, blobStore, nil)

		merchant, err := svc.RegisterMerchant(context.Background(), inspectorPrincipal(), validInput(), nil)

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, model.StatusEnObservacion, merchant.Status)
		assert.Equal(t, model.StandSemifijo, merchant.StandType)
		assert.Equal(t, "user-1", merchant.RegisteredBy)
		assert.NotEmpty(t, merchant.ID)
		assert.Nil(t, merchant.StallPhotoURL, "no attachment means no photo URL")
		assert.Equal(t, "Unión Centro", merchant.Organization.Name)
	})

	t.Run("upload is acknowledged before the insert", func(t *testing.T) {
		repo := mocks.NewMockMerchantRepositoryIface(ctrl)
		blobStore := mocks.NewMockBlobStoreIface(ctrl)

		gomock.InOrder(
			blobStore.EXPECT().
				Upload(gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any()).
				Do(func(_ context.Context, key, _ string, _ []byte) {
					assert.True(t, strings.HasPrefix(key, "puestos/"))
					assert.True(t, strings.HasSuffix(key, ".jpg"))
				}).
				Return("https://cdn.example.com/evidence/puestos/1_1.jpg", nil),

			repo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				Return(nil),
		)

		input := validInput()
		input.OrganizationID = nil

		svc := service.NewMerchantService(repo, nil, nil, blobStore, nil)

		merchant, err := svc.RegisterMerchant(context.Background(), inspectorPrincipal(), input, evidenceFile())

		assert.NoError(t, err)
		assert.NotNil(t, merchant.StallPhotoURL)
		assert.Equal(t, "https://cdn.example.com/evidence/puestos/1_1.jpg", *merchant.StallPhotoURL)
	})

	t.Run("upload failure aborts the whole registration", func(t *testing.T) {
		repo := mocks.NewMockMerchantRepositoryIface(ctrl)
		blobStore := mocks.NewMockBlobStoreIface(ctrl)

		blobStore.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("bucket unavailable"))

		// No Create expectation: zero rows may be written.
		svc := service.NewMerchantService(repo, nil, nil, blobStore, nil)

		input := validInput()
		input.OrganizationID = nil

		merchant, err := svc.RegisterMerchant(context.Background(), inspectorPrincipal(), input, evidenceFile())

		assert.Error(t, err)
		assert.Nil(t, merchant)
		assert.Contains(t, err.Error(), "bucket unavailable")
	})

	t.Run("insert failure removes the uploaded blob", func(t *testing.T) {
		repo := mocks.NewMockMerchantRepositoryIface(ctrl)
		blobStore := mocks.NewMockBlobStoreIface(ctrl)

		var uploadedKey string
		gomock.InOrder(
			blobStore.EXPECT().
				Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Do(func(_ context.Context, key, _ string, _ []byte) {
					uploadedKey = key
				}).
				Return("https://cdn.example.com/evidence/x.jpg", nil),

			repo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				Return(errors.New("insert failed")),

			blobStore.EXPECT().
				Remove(gomock.Any(), gomock.Any()).
				Do(func(_ context.Context, key string) {
					assert.Equal(t, uploadedKey, key)
				}).
				Return(nil),
		)

		input := validInput()
		input.OrganizationID = nil

		svc := service.NewMerchantService(repo, nil, nil, blobStore, nil)

		merchant, err := svc.RegisterMerchant(context.Background(), inspectorPrincipal(), input, evidenceFile())

		assert.Error(t, err)
		assert.Nil(t, merchant)
	})

	t.Run("rejects input without required fields", func(t *testing.T) {
		repo := mocks.NewMockMerchantRepositoryIface(ctrl)
		blobStore := mocks.NewMockBlobStoreIface(ctrl)

		svc := service.NewMerchantService(repo, nil, nil, blobStore, nil)

		input := validInput()
		input.Name = ""

		_, err := svc.RegisterMerchant(context.Background(), inspectorPrincipal(), input, nil)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		repo := mocks.NewMockMerchantRepositoryIface(ctrl)
		blobStore := mocks.NewMockBlobStoreIface(ctrl)

		svc := service.NewMerchantService(repo, nil, nil, blobStore, nil)

		input := validInput()
		input.Latitude = 120

		_, err := svc.RegisterMerchant(context.Background(), inspectorPrincipal(), input, nil)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestListMerchants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMerchantRepositoryIface(ctrl)

	repo.EXPECT().
		FindRecent(gomock.Any(), 20).
		Return([]*model.Merchant{{ID: "m-1"}, {ID: "m-2"}}, nil)

	svc := service.NewMerchantService(repo, nil, nil, nil, nil)

	merchants, err := svc.ListMerchants(context.Background())

	assert.NoError(t, err)
	assert.Len(t, merchants, 2)
}

func TestUpdateMerchant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := func() *model.Merchant {
		return &model.Merchant{
			ID:           "m-1",
			Name:         "Bodega El Sol",
			Business:     "Abarrotes",
			Delegation:   "Centro",
			Status:       model.StatusEnObservacion,
			StandType:    model.StandSemifijo,
			RegisteredBy: "user-1",
		}
	}

	t.Run("rejects a status outside the enumeration", func(t *testing.T) {
		repo := mocks.NewMockMerchantRepositoryIface(ctrl)

		repo.EXPECT().
			FindByID(gomock.Any(), "m-1").
			Return(existing(), nil)

		svc := service.NewMerchantService(repo, nil, nil, nil, nil)

		status := "whatever"
		_, err := svc.UpdateMerchant(context.Background(), "m-1", service.UpdateMerchantInput{Status: &status}, nil)

		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("transition to prioritario alerts coordinators", func(t *testing.T) {
		repo := mocks.NewMockMerchantRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		mailer := mocks.NewMockMailerIface(ctrl)

		gomock.InOrder(
			repo.EXPECT().
				FindByID(gomock.Any(), "m-1").
				Return(existing(), nil),

			repo.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				Return(nil),

			userRepo.EXPECT().
				FindByRole(gomock.Any(), model.RoleCoordinator).
				Return([]*model.User{{ID: "coord-1", Email: "coord@example.com"}}, nil),

			mailer.EXPECT().
				SendPriorityAlert(gomock.Any(), []string{"coord@example.com"}, gomock.Any()).
				Return(nil),
		)

		svc := service.NewMerchantService(repo, nil, userRepo, nil, mailer)

		status := string(model.StatusPrioritario)
		merchant, err := svc.UpdateMerchant(context.Background(), "m-1", service.UpdateMerchantInput{Status: &status}, nil)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPrioritario, merchant.Status)
	})

	t.Run("organization change reloads the association", func(t *testing.T) {
		repo := mocks.NewMockMerchantRepositoryIface(ctrl)
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)

		oldOrg := "org-1"
		stored := existing()
		stored.OrganizationID = &oldOrg
		stored.Organization = &model.Organization{ID: "org-1", Name: "Unión Centro"}

		repo.EXPECT().
			FindByID(gomock.Any(), "m-1").
			Return(stored, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, merchant *model.Merchant) {
				assert.Nil(t, merchant.Organization, "stale association must not reach the store")
				assert.Equal(t, "org-2", *merchant.OrganizationID)
			}).
			Return(nil)
		orgRepo.EXPECT().
			FindByID(gomock.Any(), "org-2").
			Return(&model.Organization{ID: "org-2", Name: "Unión Norte"}, nil)

		svc := service.NewMerchantService(repo, orgRepo, nil, nil, nil)

		newOrg := "org-2"
		merchant, err := svc.UpdateMerchant(context.Background(), "m-1", service.UpdateMerchantInput{OrganizationID: &newOrg}, nil)

		assert.NoError(t, err)
		assert.Equal(t, "org-2", *merchant.OrganizationID)
		assert.Equal(t, "Unión Norte", merchant.Organization.Name)
	})

	t.Run("no alert when status does not change", func(t *testing.T) {
		repo := mocks.NewMockMerchantRepositoryIface(ctrl)

		repo.EXPECT().
			FindByID(gomock.Any(), "m-1").
			Return(existing(), nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := service.NewMerchantService(repo, nil, nil, nil, nil)

		name := "Bodega La Luna"
		merchant, err := svc.UpdateMerchant(context.Background(), "m-1", service.UpdateMerchantInput{Name: &name}, nil)

		assert.NoError(t, err)
		assert.Equal(t, "Bodega La Luna", merchant.Name)
		assert.Equal(t, model.StandSemifijo, merchant.StandType, "stand type stays immutable")
	})

	t.Run("unknown merchant is not found", func(t *testing.T) {
		repo := mocks.NewMockMerchantRepositoryIface(ctrl)

		repo.EXPECT().
			FindByID(gomock.Any(), "missing").
			Return(nil, domain.ErrMerchantNotFound)

		svc := service.NewMerchantService(repo, nil, nil, nil, nil)

		_, err := svc.UpdateMerchant(context.Background(), "missing", service.UpdateMerchantInput{}, nil)

		assert.ErrorIs(t, err, domain.ErrMerchantNotFound)
	})
}
