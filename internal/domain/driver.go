package domain

// Driver represents a driver in the system.
// Many rides may reference the same driver.
type Driver struct {
	ID int64
}

// GetID returns the driver identifier.
func (d *Driver) GetID() int64 { return d.ID }

// SetID sets the store-assigned identifier.
func (d *Driver) SetID(id int64) { d.ID = id }
