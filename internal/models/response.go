package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Cache    string `json:"cache,omitempty"`
}

type PlaceBidResponse struct {
	Bid           Bid     `json:"bid"`
	CurrentPrice  float64 `json:"current_price"`
	AuctionClosed bool    `json:"auction_closed"`
}

type DeleteAuctionResponse struct {
	Message string  `json:"message"`
	Data    Auction `json:"data"`
}

type AuthUser struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
}

type AuthSession struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
	ExpiresAt    int64    `json:"expires_at"`
	User         AuthUser `json:"user"`
}

type SignupResponse struct {
	Message                string   `json:"message"`
	User                   AuthUser `json:"user"`
	NeedsEmailConfirmation bool     `json:"needsEmailConfirmation"`
}

type LoginResponse struct {
	Session AuthSession `json:"session"`
	User    AuthUser    `json:"user"`
	Profile Profile     `json:"profile"`
}
