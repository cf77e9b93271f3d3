package dto

// SessionUser is the identity carried by the session cookie
type SessionUser struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type SessionResponse struct {
	User      SessionUser `json:"user"`
	ExpiresAt int64       `json:"expiresAt"`
}

type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
