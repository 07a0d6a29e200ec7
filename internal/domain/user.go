package domain

// User represents a rider in the system.
type User struct {
	ID int64
}

// GetID returns the user identifier.
func (u *User) GetID() int64 { return u.ID }

// SetID sets the store-assigned identifier.
func (u *User) SetID(id int64) { u.ID = id }
