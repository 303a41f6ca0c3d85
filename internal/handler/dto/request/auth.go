package request

import (
	"leadgate/internal/domain/business"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (business.Email, business.Password, error) {
	email, err := business.NewEmail(r.Email)
	if err != nil {
		return business.Email{}, business.Password{}, err
	}
	pass, err := business.NewPassword(r.Password)
	if err != nil {
		return business.Email{}, business.Password{}, err
	}
	return email, pass, nil
}
