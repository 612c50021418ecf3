package http

import (
	"context"
	"net/http"

	"github.com/itemkeeper/itemkeeper/internal/logger"
	"github.com/itemkeeper/itemkeeper/internal/service"
	"github.com/itemkeeper/itemkeeper/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case; a nil field makes the
// method return zero values.
type mockAuthService struct {
	registerFn   func(ctx context.Context, creds models.Credentials) (models.UserSummary, error)
	loginFn      func(ctx context.Context, creds models.Credentials) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, creds models.Credentials) (models.UserSummary, error) {
	if m.registerFn == nil {
		return models.UserSummary{}, nil
	}
	return m.registerFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	if m.loginFn == nil {
		return models.Token{}, nil
	}
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{}, nil
	}
	return m.parseTokenFn(ctx, tokenString)
}

// mockItemService implements service.ItemService for unit tests.
type mockItemService struct {
	createFn func(ctx context.Context, req models.ItemRequest) (models.Item, error)
	getFn    func(ctx context.Context, id int64) (models.Item, error)
	getAllFn func(ctx context.Context) ([]models.Item, error)
	updateFn func(ctx context.Context, id int64, req models.ItemRequest) (models.Item, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockItemService) CreateItem(ctx context.Context, req models.ItemRequest) (models.Item, error) {
	if m.createFn == nil {
		return models.Item{}, nil
	}
	return m.createFn(ctx, req)
}

func (m *mockItemService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	if m.getFn == nil {
		return models.Item{}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockItemService) GetAllItems(ctx context.Context) ([]models.Item, error) {
	if m.getAllFn == nil {
		return nil, nil
	}
	return m.getAllFn(ctx)
}

func (m *mockItemService) UpdateItem(ctx context.Context, id int64, req models.ItemRequest) (models.Item, error) {
	if m.updateFn == nil {
		return models.Item{}, nil
	}
	return m.updateFn(ctx, id, req)
}

func (m *mockItemService) DeleteItem(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	getAllFn  func(ctx context.Context) ([]models.UserSummary, error)
	profileFn func(ctx context.Context, userID int64) (models.UserSummary, error)
}

func (m *mockUserService) GetAllUsers(ctx context.Context) ([]models.UserSummary, error) {
	if m.getAllFn == nil {
		return nil, nil
	}
	return m.getAllFn(ctx)
}

func (m *mockUserService) Profile(ctx context.Context, userID int64) (models.UserSummary, error) {
	if m.profileFn == nil {
		return models.UserSummary{}, nil
	}
	return m.profileFn(ctx, userID)
}

// newTestHandler builds a Handler around the given mocks. Nil mocks are
// replaced with empty ones so the handler never dereferences a nil service.
func newTestHandler(auth *mockAuthService, items *mockItemService, users *mockUserService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if items == nil {
		items = &mockItemService{}
	}
	if users == nil {
		users = &mockUserService{}
	}
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: auth,
			ItemService: items,
			UserService: users,
		},
	}
}

// injectNopLogger puts a nop logger into the request context so that
// logger.FromRequest does not fall back to the global logger during tests.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
