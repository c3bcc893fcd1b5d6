package domain

// Wire types for the Hunter REST API. Field names follow the backend's
// Portuguese JSON contract, so these stay distinct from the normalized
// Product record.

// ProductSearchResponse is the payload of GET /buscar-produtos.
type ProductSearchResponse struct {
	Produtos []ProductDTO `json:"produtos"`
}

// ProductDTO is one listing as the search API serializes it.
type ProductDTO struct {
	ID        string  `json:"id,omitempty"`
	Nome      string  `json:"nome"`
	Preco     float64 `json:"preco"`
	Link      string  `json:"link"`
	ImagemURL string  `json:"imagem_url,omitempty"`
	Origem    string  `json:"origem,omitempty"`
}

// RegisterRequest is the body of POST /cadastrar.
type RegisterRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse carries the token pair returned by POST /login. The bearer
// header value is the concatenation "{token_type} {access_token}".
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse is the generic success envelope most write endpoints
// answer with.
type MessageResponse struct {
	Message string `json:"message"`
}

// AlertRequest is the body of POST /alerta-preco.
type AlertRequest struct {
	Produto string  `json:"produto"`
	Preco   float64 `json:"preco"`
}

// AlertUpdateRequest is the partial-update body of PUT /alerta/{id}.
type AlertUpdateRequest struct {
	Produto *string  `json:"produto,omitempty"`
	Preco   *float64 `json:"preco,omitempty"`
}

// AlertEntry is one row of GET /alertas.
type AlertEntry struct {
	ID      int64   `json:"id"`
	Produto string  `json:"produto"`
	Preco   float64 `json:"preco"`
	Data    string  `json:"data,omitempty"`
}

// FeedbackRequest is the body of POST /feedback.
type FeedbackRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Feedback string `json:"feedback"`
}

// FeedbackUpdateRequest is the body of PUT /feedback/{id}.
type FeedbackUpdateRequest struct {
	Feedback string `json:"feedback"`
}

// FeedbackEntry is one row of GET /feedbacks.
type FeedbackEntry struct {
	ID        int64  `json:"id"`
	Feedback  string `json:"feedback"`
	DataEnvio string `json:"data_envio,omitempty"`
}

// UserUpdateRequest is the all-optional body of PUT /usuario. Nil fields
// are omitted so the backend only touches what was sent.
type UserUpdateRequest struct {
	Nome  *string `json:"nome,omitempty"`
	Email *string `json:"email,omitempty"`
	Senha *string `json:"senha,omitempty"`
}
