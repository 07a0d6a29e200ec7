package handler

import (
	"fmt"

	"ridehail/internal/domain"
	"ridehail/internal/service"
)

// PaymentBody is the JSON shape of a payment.
type PaymentBody struct {
	ID    int64   `json:"id"`
	Price float64 `json:"price"`
	Ride  *Ref    `json:"ride"`
	State *string `json:"state"`
}

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	*resource[domain.Payment, *domain.Payment, PaymentBody]
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{&resource[domain.Payment, *domain.Payment, PaymentBody]{
		name:    "payment",
		service: paymentService,
		encode: func(p *domain.Payment) PaymentBody {
			return PaymentBody{
				ID:    p.ID,
				Price: p.Price,
				Ride:  refOf(p.RideID),
				State: stateOf(p.State),
			}
		},
		decode: func(b *PaymentBody) (*domain.Payment, error) {
			var state domain.PaymentState
			if b.State != nil {
				state = domain.PaymentState(*b.State)
			}
			if !state.Valid() {
				return nil, fmt.Errorf("%w: %q", errInvalidPayment, state)
			}
			return &domain.Payment{
				ID:     b.ID,
				Price:  b.Price,
				RideID: b.Ride.id(),
				State:  state,
			}, nil
		},
	}}
}

// stateOf returns nil for an unset state so it serializes as null.
func stateOf(s domain.PaymentState) *string {
	if s == "" {
		return nil
	}
	state := string(s)
	return &state
}
