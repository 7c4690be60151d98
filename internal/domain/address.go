package domain

// Address CRUD belongs to the excluded profile service; the marketplace
// only needs ownership checks and display lines at checkout.
type Address struct {
	ID     string
	UserID string
	Line   string
}

type AddressRepository interface {
	// GetUserAddress returns the address only when it belongs to the user;
	// nil without error otherwise.
	GetUserAddress(userID, addressID string) (*Address, error)
}
