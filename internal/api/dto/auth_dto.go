package dto

// LoginRequest payload for POST /api/login. Fields are loosely typed so that
// presence is judged on the raw JSON value.
type LoginRequest struct {
	Username any `json:"username"`
	Password any `json:"password"`
}
