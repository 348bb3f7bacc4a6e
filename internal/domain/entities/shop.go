package entities

import "time"

// Shop is the owner-scoped tenant record. Orders and revenue are always scoped
// by shop id; OwnerID links the shop to the authenticated principal.
type Shop struct {
	ID        string
	OwnerID   string
	Name      string
	Phone     string
	Address   string
	IsActive  bool
	CreatedAt time.Time
}
