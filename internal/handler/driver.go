package handler

import (
	"ridehail/internal/domain"
	"ridehail/internal/service"
)

// DriverBody is the JSON shape of a driver.
type DriverBody struct {
	ID int64 `json:"id"`
}

// DriverHandler handles HTTP requests for drivers.
type DriverHandler struct {
	*resource[domain.Driver, *domain.Driver, DriverBody]
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(driverService service.DriverService) *DriverHandler {
	return &DriverHandler{&resource[domain.Driver, *domain.Driver, DriverBody]{
		name:    "driver",
		service: driverService,
		encode: func(d *domain.Driver) DriverBody {
			return DriverBody{ID: d.ID}
		},
		decode: func(b *DriverBody) (*domain.Driver, error) {
			return &domain.Driver{ID: b.ID}, nil
		},
	}}
}
