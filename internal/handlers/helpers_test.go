package handlers_test

import (
	"MachCatalog/internal/auth"
	"MachCatalog/internal/config"
	"MachCatalog/internal/handlers"
	"MachCatalog/internal/mailer"
	"MachCatalog/internal/model"
	"MachCatalog/internal/repo"
	"MachCatalog/internal/service"
	"MachCatalog/internal/storage"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Local light mocks
type hMockUserRepo struct{ mock.Mock }

func (m *hMockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hMockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*hMockUserRepo)(nil)

type hMockMachineRepo struct{ mock.Mock }

func (m *hMockMachineRepo) List(ctx context.Context) ([]model.Machine, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Machine); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hMockMachineRepo) GetByID(ctx context.Context, id int64) (*model.Machine, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Machine); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hMockMachineRepo) Create(ctx context.Context, mm *model.Machine) error {
	return m.Called(ctx, mm).Error(0)
}

func (m *hMockMachineRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *hMockMachineRepo) DeleteWithImages(ctx context.Context, id int64) ([]model.Image, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).([]model.Image); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.MachineRepository = (*hMockMachineRepo)(nil)

type hMockImageRepo struct{ mock.Mock }

func (m *hMockImageRepo) Create(ctx context.Context, img *model.Image) error {
	return m.Called(ctx, img).Error(0)
}

func (m *hMockImageRepo) ListByMachine(ctx context.Context, machineID int64) ([]model.Image, error) {
	args := m.Called(ctx, machineID)
	if v, ok := args.Get(0).([]model.Image); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hMockImageRepo) GetByID(ctx context.Context, machineID, id int64) (*model.Image, error) {
	args := m.Called(ctx, machineID, id)
	if v, ok := args.Get(0).(*model.Image); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hMockImageRepo) Delete(ctx context.Context, machineID, id int64) error {
	return m.Called(ctx, machineID, id).Error(0)
}

var _ repo.ImageRepository = (*hMockImageRepo)(nil)

type hMockImageStore struct{ mock.Mock }

func (m *hMockImageStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}

func (m *hMockImageStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

var _ storage.ImageStore = (*hMockImageStore)(nil)

type hMockMailer struct{ mock.Mock }

func (m *hMockMailer) Send(ctx context.Context, subject, body string) error {
	return m.Called(ctx, subject, body).Error(0)
}

var _ mailer.Mailer = (*hMockMailer)(nil)

// testEnv собирает роутер на моках для сквозных тестов хендлеров.
type testEnv struct {
	router http.Handler
	cfg    *config.Config
	users  *hMockUserRepo
	repo   *hMockMachineRepo
	images *hMockImageRepo
	store  *hMockImageStore
	mailer *hMockMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", TokenTTL: time.Hour, UploadMaxSizeMB: 1}
	logger := zap.NewNop().Sugar()

	env := &testEnv{
		cfg:    cfg,
		users:  &hMockUserRepo{},
		repo:   &hMockMachineRepo{},
		images: &hMockImageRepo{},
		store:  &hMockImageStore{},
		mailer: &hMockMailer{},
	}

	authSvc := service.NewAuthService(env.users, cfg.AuthSecret, cfg.TokenTTL)
	catalogSvc := service.NewCatalogService(env.repo, env.images, env.store, logger)
	imageSvc := service.NewImageService(env.repo, env.images, env.store, logger)
	contactSvc := service.NewContactService(env.mailer, logger)

	h := handlers.NewHandler(authSvc, catalogSvc, imageSvc, contactSvc, logger, cfg)
	env.router = h.Router
	return env
}

// addAuth подставляет валидный bearer-токен администратора.
func addAuth(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	token, err := auth.GenerateToken(userID, []byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func do(env *testEnv, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}
