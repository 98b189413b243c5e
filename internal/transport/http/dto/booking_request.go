package dto

import (
	"strings"

	"github.com/baechuer/grandveggie/internal/application/catalog"
)

type BookingRequest struct {
	Date            string `json:"date" validate:"required,isodate"`
	Time            string `json:"time" validate:"required"`
	Guests          int    `json:"guests" validate:"required,min=1"`
	Name            string `json:"name" validate:"required,notblank,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,notblank,max=32"`
	SpecialRequests string `json:"specialRequests,omitempty" validate:"max=500"`
}

func (r *BookingRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	return Validate(r)
}

func (r *BookingRequest) ToCatalog() catalog.BookingRequest {
	return catalog.BookingRequest{
		Date:            r.Date,
		Time:            r.Time,
		Guests:          r.Guests,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		SpecialRequests: r.SpecialRequests,
	}
}
