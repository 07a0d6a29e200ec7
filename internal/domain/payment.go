package domain

// PaymentState represents the current state of a payment.
type PaymentState string

const (
	PaymentStatePending   PaymentState = "PENDING"
	PaymentStateCompleted PaymentState = "COMPLETED"
	PaymentStateFailed    PaymentState = "FAILED"
	PaymentStateRefunded  PaymentState = "REFUNDED"
)

// PaymentStates lists every known payment state.
var PaymentStates = []PaymentState{
	PaymentStatePending,
	PaymentStateCompleted,
	PaymentStateFailed,
	PaymentStateRefunded,
}

// Valid reports whether s is a known state. The empty state means unset
// and is also accepted.
func (s PaymentState) Valid() bool {
	if s == "" {
		return true
	}
	for _, known := range PaymentStates {
		if s == known {
			return true
		}
	}
	return false
}

// Payment represents the payment for a ride.
type Payment struct {
	ID     int64
	Price  float64
	RideID int64 // 0 = no ride
	State  PaymentState
}

// GetID returns the payment identifier.
func (p *Payment) GetID() int64 { return p.ID }

// SetID sets the store-assigned identifier.
func (p *Payment) SetID(id int64) { p.ID = id }
