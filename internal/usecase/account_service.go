package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/huntermobile/hunter-go/internal/domain"
)

// Fallback messages, used when the backend's success envelope carries no
// message of its own.
const (
	msgRegistered      = "Cadastro realizado com sucesso"
	msgAlertCreated    = "Alerta criado com sucesso"
	msgAlertUpdated    = "Alerta atualizado com sucesso"
	msgAlertDeleted    = "Alerta deletado com sucesso"
	msgFeedbackSent    = "Feedback enviado com sucesso"
	msgFeedbackUpdated = "Feedback atualizado com sucesso"
	msgFeedbackDeleted = "Feedback deletado com sucesso"
	msgUserUpdated     = "Dados atualizados com sucesso"
	msgUserDeleted     = "Conta deletada com sucesso"
)

// AccountService wraps the auth-related API operations and owns the
// session token lifecycle: set on login, cleared on logout or account
// deletion, read before every authenticated call.
type AccountService struct {
	api      domain.HunterAPI
	sessions domain.SessionStore
	logger   *slog.Logger
}

// NewAccountService creates an account service over the given API client
// and session store.
func NewAccountService(api domain.HunterAPI, sessions domain.SessionStore, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountService{api: api, sessions: sessions, logger: logger}
}

// Register creates a new account. It never touches the session.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (string, error) {
	resp, err := s.api.Register(ctx, domain.RegisterRequest{Nome: name, Email: email, Senha: password})
	if err != nil {
		return "", err
	}
	return messageOr(resp, msgRegistered), nil
}

// Login authenticates and stores the composed bearer value. The stored
// string is exactly "{token_type} {access_token}"; it is forwarded
// verbatim as the Authorization header by every authenticated call, so the
// composition must not change.
func (s *AccountService) Login(ctx context.Context, email, password string) error {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.sessions.Set(resp.TokenType + " " + resp.AccessToken)
}

// Logout drops the local session. Nothing is sent to the backend.
func (s *AccountService) Logout() error {
	return s.sessions.Clear()
}

// Authenticated reports whether a session token is currently stored.
func (s *AccountService) Authenticated() bool {
	token, err := s.sessions.Get()
	return err == nil && strings.TrimSpace(token) != ""
}

// authHeader gates authenticated operations: with no stored session it
// fails immediately, before any network call. A session store read error
// is treated the same way, after a warning.
func (s *AccountService) authHeader() (string, error) {
	token, err := s.sessions.Get()
	if err != nil {
		s.logger.Warn("session read failed", "error", err)
		return "", domain.ErrUnauthenticated
	}
	if strings.TrimSpace(token) == "" {
		return "", domain.ErrUnauthenticated
	}
	return token, nil
}

// CreateAlert registers a price alert for the current user.
func (s *AccountService) CreateAlert(ctx context.Context, product string, price float64) (string, error) {
	token, err := s.authHeader()
	if err != nil {
		return "", err
	}
	resp, err := s.api.CreateAlert(ctx, token, domain.AlertRequest{Produto: product, Preco: price})
	if err != nil {
		return "", err
	}
	return messageOr(resp, msgAlertCreated), nil
}

// ListAlerts returns the current user's price alerts.
func (s *AccountService) ListAlerts(ctx context.Context) ([]domain.AlertEntry, error) {
	token, err := s.authHeader()
	if err != nil {
		return nil, err
	}
	return s.api.ListAlerts(ctx, token)
}

// UpdateAlert updates the product and/or target price of one alert. Nil
// fields are left untouched server-side.
func (s *AccountService) UpdateAlert(ctx context.Context, id int64, product *string, price *float64) (string, error) {
	token, err := s.authHeader()
	if err != nil {
		return "", err
	}
	resp, err := s.api.UpdateAlert(ctx, token, id, domain.AlertUpdateRequest{Produto: product, Preco: price})
	if err != nil {
		return "", err
	}
	return messageOr(resp, msgAlertUpdated), nil
}

// DeleteAlert removes one alert.
func (s *AccountService) DeleteAlert(ctx context.Context, id int64) (string, error) {
	token, err := s.authHeader()
	if err != nil {
		return "", err
	}
	resp, err := s.api.DeleteAlert(ctx, token, id)
	if err != nil {
		return "", err
	}
	return messageOr(resp, msgAlertDeleted), nil
}

// SendFeedback submits a feedback message.
func (s *AccountService) SendFeedback(ctx context.Context, name, email, message string) (string, error) {
	token, err := s.authHeader()
	if err != nil {
		return "", err
	}
	resp, err := s.api.SendFeedback(ctx, token, domain.FeedbackRequest{Nome: name, Email: email, Feedback: message})
	if err != nil {
		return "", err
	}
	return messageOr(resp, msgFeedbackSent), nil
}

// ListFeedbacks returns the current user's feedback entries.
func (s *AccountService) ListFeedbacks(ctx context.Context) ([]domain.FeedbackEntry, error) {
	token, err := s.authHeader()
	if err != nil {
		return nil, err
	}
	return s.api.ListFeedbacks(ctx, token)
}

// UpdateFeedback rewrites the text of one feedback entry.
func (s *AccountService) UpdateFeedback(ctx context.Context, id int64, message string) (string, error) {
	token, err := s.authHeader()
	if err != nil {
		return "", err
	}
	resp, err := s.api.UpdateFeedback(ctx, token, id, domain.FeedbackUpdateRequest{Feedback: message})
	if err != nil {
		return "", err
	}
	return messageOr(resp, msgFeedbackUpdated), nil
}

// DeleteFeedback removes one feedback entry.
func (s *AccountService) DeleteFeedback(ctx context.Context, id int64) (string, error) {
	token, err := s.authHeader()
	if err != nil {
		return "", err
	}
	resp, err := s.api.DeleteFeedback(ctx, token, id)
	if err != nil {
		return "", err
	}
	return messageOr(resp, msgFeedbackDeleted), nil
}

// UpdateUser partially updates the profile. Nil fields are left untouched.
func (s *AccountService) UpdateUser(ctx context.Context, name, email, password *string) (string, error) {
	token, err := s.authHeader()
	if err != nil {
		return "", err
	}
	resp, err := s.api.UpdateUser(ctx, token, domain.UserUpdateRequest{Nome: name, Email: email, Senha: password})
	if err != nil {
		return "", err
	}
	return messageOr(resp, msgUserUpdated), nil
}

// DeleteUser removes the account and, on success, clears the session
// before returning: subsequent authenticated calls fail as
// unauthenticated.
func (s *AccountService) DeleteUser(ctx context.Context) (string, error) {
	token, err := s.authHeader()
	if err != nil {
		return "", err
	}
	resp, err := s.api.DeleteUser(ctx, token)
	if err != nil {
		return "", err
	}
	if err := s.sessions.Clear(); err != nil {
		s.logger.Warn("failed to clear session after account deletion", "error", err)
	}
	return messageOr(resp, msgUserDeleted), nil
}

func messageOr(resp *domain.MessageResponse, fallback string) string {
	if resp != nil && resp.Message != "" {
		return resp.Message
	}
	return fallback
}
