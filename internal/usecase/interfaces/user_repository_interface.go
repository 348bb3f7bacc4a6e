package interfaces

import "context"

// IUserRepository resolves push device tokens from the users table.
type IUserRepository interface {
	// GetFCMToken returns users/{id}.fcmToken, or "" when the user or the token
	// is missing.
	GetFCMToken(ctx context.Context, userID string) (string, error)
}
