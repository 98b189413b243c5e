package dto

import (
	"strings"

	"github.com/baechuer/grandveggie/internal/domain"
)

// -------- Core auth --------

// Credentials are passed through byte for byte. Lookup is exact, so a
// malformed or padded email is just a pair that matches nothing.

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	return Validate(r)
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=100"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return Validate(r)
}

// -------- Profile --------

// UpdateMeRequest patches the signed-in user. Absent fields are left alone.
type UpdateMeRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitnil,notblank,max=100"`
	Email  *string `json:"email,omitempty" validate:"omitnil,email"`
	Avatar *string `json:"avatar,omitempty" validate:"omitnil,urlorempty"`
}

func (r *UpdateMeRequest) Validate() error {
	if r.Name == nil && r.Email == nil && r.Avatar == nil {
		return domain.ErrMissingField("name/email/avatar")
	}
	if r.Email != nil {
		e := strings.TrimSpace(*r.Email)
		r.Email = &e
	}
	return Validate(r)
}

func (r *UpdateMeRequest) Patch() domain.UserPatch {
	return domain.UserPatch{
		Name:   r.Name,
		Email:  r.Email,
		Avatar: r.Avatar,
	}
}

// -------- Access --------

type AccessQuery struct {
	Role string `json:"role"`
}

func (q *AccessQuery) Validate() error {
	if q.Role != "" && !domain.IsValidRole(q.Role) {
		return domain.ErrInvalidRole(q.Role)
	}
	return nil
}
