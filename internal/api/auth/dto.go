package auth

type SuccessResponse struct {
	Success bool `json:"success"`
}

// CookieConfig holds the token cookie attributes that differ per environment.
type CookieConfig struct {
	Secure   bool
	SameSite string
}
