package auth

type RegisterRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required" example:"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"`
}

// LoginRequest accepts the wallet under either key; older clients send "address".
type LoginRequest struct {
	WalletAddress string `json:"wallet_address" example:"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"`
	Address       string `json:"address,omitempty" example:"alice.eth"`
}

func (r LoginRequest) wallet() string {
	if r.WalletAddress != "" {
		return r.WalletAddress
	}
	return r.Address
}

type SessionUser struct {
	ID            uint   `json:"id" example:"1"`
	WalletAddress string `json:"wallet_address" example:"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message" example:"User created successfully"`
}
