package service

import (
	"MachCatalog/internal/mailer"
	"MachCatalog/internal/model"
	"MachCatalog/internal/repo"
	"MachCatalog/internal/storage"
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// моки репозиториев и внешних коллабораторов для тестов сервисного слоя

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockMachineRepo struct{ mock.Mock }

func (m *mockMachineRepo) List(ctx context.Context) ([]model.Machine, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Machine); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMachineRepo) GetByID(ctx context.Context, id int64) (*model.Machine, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Machine); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMachineRepo) Create(ctx context.Context, mm *model.Machine) error {
	return m.Called(ctx, mm).Error(0)
}

func (m *mockMachineRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	return m.Called(ctx, id, updates).Error(0)
}

func (m *mockMachineRepo) DeleteWithImages(ctx context.Context, id int64) ([]model.Image, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).([]model.Image); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.MachineRepository = (*mockMachineRepo)(nil)

type mockImageRepo struct{ mock.Mock }

func (m *mockImageRepo) Create(ctx context.Context, img *model.Image) error {
	return m.Called(ctx, img).Error(0)
}

func (m *mockImageRepo) ListByMachine(ctx context.Context, machineID int64) ([]model.Image, error) {
	args := m.Called(ctx, machineID)
	if v, ok := args.Get(0).([]model.Image); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockImageRepo) GetByID(ctx context.Context, machineID, id int64) (*model.Image, error) {
	args := m.Called(ctx, machineID, id)
	if v, ok := args.Get(0).(*model.Image); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockImageRepo) Delete(ctx context.Context, machineID, id int64) error {
	return m.Called(ctx, machineID, id).Error(0)
}

var _ repo.ImageRepository = (*mockImageRepo)(nil)

type mockImageStore struct{ mock.Mock }

func (m *mockImageStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}

func (m *mockImageStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

var _ storage.ImageStore = (*mockImageStore)(nil)

type mockMailer struct{ mock.Mock }

func (m *mockMailer) Send(ctx context.Context, subject, body string) error {
	return m.Called(ctx, subject, body).Error(0)
}

var _ mailer.Mailer = (*mockMailer)(nil)
