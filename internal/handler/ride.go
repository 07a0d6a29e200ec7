package handler

import (
	"ridehail/internal/domain"
	"ridehail/internal/service"
)

// RideBody is the JSON shape of a ride. Payment is output-only: the
// payment owns the link, so it is set through PATCH /payment.
type RideBody struct {
	ID      int64   `json:"id"`
	User    *Ref    `json:"user"`
	Driver  *Ref    `json:"driver"`
	Time    float64 `json:"time"`
	From    string  `json:"from"`
	To      string  `json:"to"`
	Payment *Ref    `json:"payment"`
}

// RideHandler handles HTTP requests for rides.
type RideHandler struct {
	*resource[domain.Ride, *domain.Ride, RideBody]
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(rideService service.RideService) *RideHandler {
	return &RideHandler{&resource[domain.Ride, *domain.Ride, RideBody]{
		name:    "ride",
		service: rideService,
		encode: func(r *domain.Ride) RideBody {
			return RideBody{
				ID:      r.ID,
				User:    refOf(r.UserID),
				Driver:  refOf(r.DriverID),
				Time:    r.Time,
				From:    r.From,
				To:      r.To,
				Payment: refOf(r.PaymentID),
			}
		},
		decode: func(b *RideBody) (*domain.Ride, error) {
			return &domain.Ride{
				ID:       b.ID,
				UserID:   b.User.id(),
				DriverID: b.Driver.id(),
				Time:     b.Time,
				From:     b.From,
				To:       b.To,
			}, nil
		},
	}}
}
