package profile

import (
	"github.com/m04kA/SMC-BarbershopService/internal/service/profiles/models"
)

// ProfileView страница профиля: данные и форма редактирования.
// Email показывается, но не редактируется.
type ProfileView struct {
	Profile *models.ProfileResponse     `json:"profile"`
	Form    models.UpdateContactRequest `json:"form"`
}

// FromServiceResponse заполняет форму текущими значениями
func FromServiceResponse(p *models.ProfileResponse) *ProfileView {
	return &ProfileView{
		Profile: p,
		Form: models.UpdateContactRequest{
			FullName: p.FullName,
			Phone:    p.Phone,
		},
	}
}
