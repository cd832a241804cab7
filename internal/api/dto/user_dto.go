package dto

import (
	"github.com/rafaelmelo2/maonamassa/internal/domain"
)

// UpdateProfileRequest is a partial profile update; absent fields stay as-is.
type UpdateProfileRequest struct {
	Name        *string             `json:"name" validate:"omitempty,min=2,max=120"`
	Phone       *string             `json:"phone" validate:"omitempty,min=8,max=20"`
	Avatar      *string             `json:"avatar" validate:"omitempty,url"`
	Address     *domain.Address     `json:"address"`
	Preferences *domain.Preferences `json:"preferences"`
}

// ToPatch converts the request to the domain patch.
func (r UpdateProfileRequest) ToPatch() domain.UserProfilePatch {
	return domain.UserProfilePatch{
		Name:        r.Name,
		Phone:       r.Phone,
		Avatar:      r.Avatar,
		Address:     r.Address,
		Preferences: r.Preferences,
	}
}
