package api

import (
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/sanitize"
)

// Request DTOs

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Fullname string `json:"fullname" validate:"required"`
}

// Sanitize leaves the password untouched, it is only ever hashed.
func (r *RegisterRequest) Sanitize() {
	r.Fullname = sanitize.Text(r.Fullname)
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type AddedUserData struct {
	AddedUser domain.AddedUser `json:"addedUser"`
}

type LoginData struct {
	AccessToken string `json:"accessToken"`
}
