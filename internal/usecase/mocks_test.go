package usecase

import (
	"context"
	"sync"

	"github.com/huntermobile/hunter-go/internal/domain"
)

// mockHunterAPI records every call so tests can assert both the forwarded
// token and that gated operations never reach the network.
type mockHunterAPI struct {
	calls     int
	lastToken string

	searchResp   *domain.ProductSearchResponse
	searchErr    error
	loginResp    *domain.LoginResponse
	loginErr     error
	messageResp  *domain.MessageResponse
	messageErr   error
	alerts       []domain.AlertEntry
	alertsErr    error
	feedbacks    []domain.FeedbackEntry
	feedbacksErr error
}

func (m *mockHunterAPI) SearchProducts(ctx context.Context, name string) (*domain.ProductSearchResponse, error) {
	m.calls++
	return m.searchResp, m.searchErr
}

func (m *mockHunterAPI) Register(ctx context.Context, req domain.RegisterRequest) (*domain.MessageResponse, error) {
	m.calls++
	return m.messageResp, m.messageErr
}

func (m *mockHunterAPI) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	m.calls++
	return m.loginResp, m.loginErr
}

func (m *mockHunterAPI) CreateAlert(ctx context.Context, token string, req domain.AlertRequest) (*domain.MessageResponse, error) {
	m.calls++
	m.lastToken = token
	return m.messageResp, m.messageErr
}

func (m *mockHunterAPI) ListAlerts(ctx context.Context, token string) ([]domain.AlertEntry, error) {
	m.calls++
	m.lastToken = token
	return m.alerts, m.alertsErr
}

func (m *mockHunterAPI) UpdateAlert(ctx context.Context, token string, id int64, req domain.AlertUpdateRequest) (*domain.MessageResponse, error) {
	m.calls++
	m.lastToken = token
	return m.messageResp, m.messageErr
}

func (m *mockHunterAPI) DeleteAlert(ctx context.Context, token string, id int64) (*domain.MessageResponse, error) {
	m.calls++
	m.lastToken = token
	return m.messageResp, m.messageErr
}

func (m *mockHunterAPI) SendFeedback(ctx context.Context, token string, req domain.FeedbackRequest) (*domain.MessageResponse, error) {
	m.calls++
	m.lastToken = token
	return m.messageResp, m.messageErr
}

func (m *mockHunterAPI) ListFeedbacks(ctx context.Context, token string) ([]domain.FeedbackEntry, error) {
	m.calls++
	m.lastToken = token
	return m.feedbacks, m.feedbacksErr
}

func (m *mockHunterAPI) UpdateFeedback(ctx context.Context, token string, id int64, req domain.FeedbackUpdateRequest) (*domain.MessageResponse, error) {
	m.calls++
	m.lastToken = token
	return m.messageResp, m.messageErr
}

func (m *mockHunterAPI) DeleteFeedback(ctx context.Context, token string, id int64) (*domain.MessageResponse, error) {
	m.calls++
	m.lastToken = token
	return m.messageResp, m.messageErr
}

func (m *mockHunterAPI) UpdateUser(ctx context.Context, token string, req domain.UserUpdateRequest) (*domain.MessageResponse, error) {
	m.calls++
	m.lastToken = token
	return m.messageResp, m.messageErr
}

func (m *mockHunterAPI) DeleteUser(ctx context.Context, token string) (*domain.MessageResponse, error) {
	m.calls++
	m.lastToken = token
	return m.messageResp, m.messageErr
}

// mockSessionStore is an in-memory SessionStore with injectable failures.
type mockSessionStore struct {
	token      string
	getErr     error
	setErr     error
	clearErr   error
	setCalls   int
	clearCalls int
}

func (m *mockSessionStore) Get() (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	return m.token, nil
}

func (m *mockSessionStore) Set(token string) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.token = token
	return nil
}

func (m *mockSessionStore) Clear() error {
	m.clearCalls++
	if m.clearErr != nil {
		return m.clearErr
	}
	m.token = ""
	return nil
}

// mockProductSource serves canned partition contents keyed by collection.
// Browse fetches partitions from concurrent goroutines, so the call
// counter is mutex-guarded.
type mockProductSource struct {
	byCollection map[string][]domain.Product
	errs         map[string]error

	mu    sync.Mutex
	calls int
}

func (m *mockProductSource) FetchCollection(ctx context.Context, collection, origin string) ([]domain.Product, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if err := m.errs[collection]; err != nil {
		return nil, err
	}
	return m.byCollection[collection], nil
}

func (m *mockProductSource) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
