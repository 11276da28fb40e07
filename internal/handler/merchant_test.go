package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sirecovip/backend/internal/auth"
	"github.com/sirecovip/backend/internal/domain"
	"github.com/sirecovip/backend/internal/handler"
	"github.com/sirecovip/backend/internal/metrics"
	"github.com/sirecovip/backend/internal/middleware"
	"github.com/sirecovip/backend/internal/mocks"
	"github.com/sirecovip/backend/internal/model"
	"github.com/sirecovip/backend/internal/service"
)

func TestMain(m *testing.M) {
	metrics.Init("handlertest")
	os.Exit(m.Run())
}

// withPrincipal stands in for the auth middleware in tests.
func withPrincipal(principal auth.Principal) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithPrincipal(r.Context(), principal)))
		})
	}
}

func merchantRouter(h *handler.MerchantHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(withPrincipal(auth.Principal{UserID: "user-1", Role: model.RoleInspector}))
	r.Post("/api/merchants", h.CreateMerchant)
	r.Get("/api/merchants", h.ListMerchants)
	r.Get("/api/merchants/{id}", h.GetMerchant)
	r.Put("/api/merchants/{id}", h.UpdateMerchant)
	return r
}

func TestCreateMerchantJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMerchantRepositoryIface(ctrl)
	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	blobStore := mocks.NewMockBlobStoreIface(ctrl)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)
	orgRepo.EXPECT().
		FindByID(gomock.Any(), "org-1").
		Return(&model.Organization{ID: "org-1", Name: "Unión Centro"}, nil)

	svc := service.NewMerchantService(repo, orgRepo, nil, blobStore, nil)
	router := merchantRouter(handler.NewMerchantHandler(svc))

	body := `{
		"name": "Bodega El Sol",
		"business": "Abarrotes",
		"delegation": "Centro",
		"organization_id": "org-1",
		"latitude": 20.59,
		"longitude": -100.39
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/merchants", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message  string `json:"message"`
		Merchant struct {
			Status        string  `json:"status"`
			StandType     string  `json:"stand_type"`
			StallPhotoURL *string `json:"stall_photo_url"`
			RegisteredBy  string  `json:"registered_by"`
			Organizations *struct {
				Name string `json:"name"`
			} `json:"organizations"`
		} `json:"merchant"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
	assert.Equal(t, "en-observacion", resp.Merchant.Status)
	assert.Equal(t, "semifijo", resp.Merchant.StandType)
	assert.Nil(t, resp.Merchant.StallPhotoURL)
	assert.Equal(t, "user-1", resp.Merchant.RegisteredBy)
	assert.Equal(t, "Unión Centro", resp.Merchant.Organizations.Name)
}

func TestCreateMerchantMultipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMerchantRepositoryIface(ctrl)
	blobStore := mocks.NewMockBlobStoreIface(ctrl)

	gomock.InOrder(
		blobStore.EXPECT().
			Upload(gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any()).
			Return("https://cdn.example.com/evidence/puestos/1_1.jpg", nil),
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil),
	)

	svc := service.NewMerchantService(repo, nil, nil, blobStore, nil)
	router := merchantRouter(handler.NewMerchantHandler(svc))

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("name", "Taquería La Esquina")
	writer.WriteField("business", "Alimentos")
	writer.WriteField("delegation", "Norte")
	writer.WriteField("latitude", "20.61")
	writer.WriteField("longitude", "-100.41")

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="puesto.jpg"`)
	header.Set("Content-Type", "image/jpeg")
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	part.Write([]byte("fake image bytes"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/merchants", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Merchant struct {
			StallPhotoURL *string `json:"stall_photo_url"`
		} `json:"merchant"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Merchant.StallPhotoURL)
	assert.NotEmpty(t, *resp.Merchant.StallPhotoURL)
}

func TestCreateMerchantRejectsUnsupportedFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMerchantRepositoryIface(ctrl)
	blobStore := mocks.NewMockBlobStoreIface(ctrl)

	svc := service.NewMerchantService(repo, nil, nil, blobStore, nil)
	router := merchantRouter(handler.NewMerchantHandler(svc))

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("name", "Puesto X")
	writer.WriteField("business", "Ropa")
	writer.WriteField("delegation", "Sur")

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="script.exe"`)
	header.Set("Content-Type", "application/octet-stream")
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	part.Write([]byte("not an image"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/merchants", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListMerchants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMerchantRepositoryIface(ctrl)

	orgName := "Unión Centro"
	repo.EXPECT().
		FindRecent(gomock.Any(), 20).
		Return([]*model.Merchant{
			{ID: "m-1", Name: "Bodega El Sol", Organization: &model.Organization{Name: orgName}},
			{ID: "m-2", Name: "Taquería La Esquina"},
		}, nil)

	svc := service.NewMerchantService(repo, nil, nil, nil, nil)
	router := merchantRouter(handler.NewMerchantHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/merchants", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []struct {
		ID            string `json:"id"`
		Organizations *struct {
			Name string `json:"name"`
		} `json:"organizations"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, orgName, resp[0].Organizations.Name)
	assert.Nil(t, resp[1].Organizations)
}

func TestGetMerchantNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMerchantRepositoryIface(ctrl)

	repo.EXPECT().
		FindByID(gomock.Any(), "missing").
		Return(nil, domain.ErrMerchantNotFound)

	svc := service.NewMerchantService(repo, nil, nil, nil, nil)
	router := merchantRouter(handler.NewMerchantHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/merchants/missing", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Comerciante no encontrado"}`, rec.Body.String())
}

func TestUpdateMerchantInvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockMerchantRepositoryIface(ctrl)

	repo.EXPECT().
		FindByID(gomock.Any(), "m-1").
		Return(&model.Merchant{ID: "m-1", Status: model.StatusEnObservacion}, nil)

	svc := service.NewMerchantService(repo, nil, nil, nil, nil)
	router := merchantRouter(handler.NewMerchantHandler(svc))

	req := httptest.NewRequest(http.MethodPut, "/api/merchants/m-1", strings.NewReader(`{"status":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
