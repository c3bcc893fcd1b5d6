package domain

import "context"

// SessionStore persists the opaque bearer token across process restarts.
// An empty string means anonymous. Individual operations must be atomic,
// but no cross-operation transaction is required.
type SessionStore interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}

// ProductSource reads one document-store partition. Implementations drop
// records with no name field and substitute documented defaults for every
// other missing field.
type ProductSource interface {
	FetchCollection(ctx context.Context, collection, origin string) ([]Product, error)
}

// DocumentWriter stores catalog documents into a partition.
type DocumentWriter interface {
	Upsert(ctx context.Context, collection string, docs []Document) error
}

// HunterAPI is the typed surface of the Hunter REST backend. Authenticated
// operations take the full Authorization header value; session handling is
// the caller's responsibility.
type HunterAPI interface {
	SearchProducts(ctx context.Context, name string) (*ProductSearchResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error)
	Login(ctx context.Context, email, password string) (*LoginResponse, error)

	CreateAlert(ctx context.Context, token string, req AlertRequest) (*MessageResponse, error)
	ListAlerts(ctx context.Context, token string) ([]AlertEntry, error)
	UpdateAlert(ctx context.Context, token string, id int64, req AlertUpdateRequest) (*MessageResponse, error)
	DeleteAlert(ctx context.Context, token string, id int64) (*MessageResponse, error)

	SendFeedback(ctx context.Context, token string, req FeedbackRequest) (*MessageResponse, error)
	ListFeedbacks(ctx context.Context, token string) ([]FeedbackEntry, error)
	UpdateFeedback(ctx context.Context, token string, id int64, req FeedbackUpdateRequest) (*MessageResponse, error)
	DeleteFeedback(ctx context.Context, token string, id int64) (*MessageResponse, error)

	UpdateUser(ctx context.Context, token string, req UserUpdateRequest) (*MessageResponse, error)
	DeleteUser(ctx context.Context, token string) (*MessageResponse, error)
}
