package domain

// Store handles the local cache (BoltDB + memory). Reads return
// (value, ok) where ok=false means the key was never written; a stored
// empty collection comes back as (empty, true). Read and write failures
// degrade to absent / dropped and are logged by the implementation, so
// callers never see a storage error on the read path.
type Store interface {
	// === Catalog cache ===
	GetCards() ([]Card, bool)
	SaveCards(cards []Card) error
	InvalidateCards()

	// === User profile ===
	GetUser() (*User, bool)
	SaveUser(user *User) error
	DeleteUser()

	Close() error
}
