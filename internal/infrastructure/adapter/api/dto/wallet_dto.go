package dto

// RechargeRequest represents the API request for recharging a wallet.
// Amount is a string with at most two decimal places.
type RechargeRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// WalletResponse represents the API response for a wallet mutation
type WalletResponse struct {
	AccountID uint64 `json:"accountId"`
	Balance   string `json:"balance"`
}

// NavDetailsResponse represents the lightweight account header data
type NavDetailsResponse struct {
	Name    string `json:"name"`
	Balance string `json:"balance"`
}
