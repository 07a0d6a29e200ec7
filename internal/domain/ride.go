package domain

// Ride represents a trip booked by a user with a driver.
type Ride struct {
	ID       int64
	UserID   int64 // 0 = no user
	DriverID int64 // 0 = no driver
	Time     float64
	From     string
	To       string

	// PaymentID is the payment that references this ride, if any.
	// Payments own the ride reference, so this field is read-only.
	PaymentID int64
}

// GetID returns the ride identifier.
func (r *Ride) GetID() int64 { return r.ID }

// SetID sets the store-assigned identifier.
func (r *Ride) SetID(id int64) { r.ID = id }
