package dto

// UserInfo contains the public-facing user fields returned after login.
// The password hash is never part of any response.
type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// LoginRes represents the response for a successful login.
type LoginRes struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// ProfileUser contains the fields returned by the /api/auth/me endpoint.
type ProfileUser struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// ProfileRes represents the response for the /api/auth/me endpoint.
type ProfileRes struct {
	User ProfileUser `json:"user"`
}
