package domain

import "time"

// Session represents a login session cached in Redis alongside the JWT.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Session) IsExpired(reference time.Time) bool {
	if s == nil {
		return true
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return !s.ExpiresAt.After(reference)
}
