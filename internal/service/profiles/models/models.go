package models

import (
	"strings"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/format"
	"github.com/m04kA/SMC-BarbershopService/pkg/ptr"
)

// Request модели

// UpdateContactRequest запрос на изменение контактных данных.
// Email менять нельзя: он принадлежит identity сервису.
type UpdateContactRequest struct {
	FullName string `json:"fullName" validate:"maxrunes=120"`
	Phone    string `json:"phone" validate:"maxrunes=30"`
}

// ToDomain конвертирует запрос; пустые значения сохраняются как NULL
func (r *UpdateContactRequest) ToDomain() domain.ContactUpdate {
	return domain.ContactUpdate{
		FullName: ptr.NilIfEmpty(strings.TrimSpace(r.FullName)),
		Phone:    ptr.NilIfEmpty(strings.TrimSpace(r.Phone)),
	}
}

// Response модели

// ProfileResponse профиль текущего пользователя
type ProfileResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	DisplayName string `json:"displayName"`
	IsAdmin     bool   `json:"isAdmin"`
	MemberSince string `json:"memberSince"`
}

// CustomerResponse клиент в списке администратора
type CustomerResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// FromDomainProfile конвертирует domain.Profile в response
func FromDomainProfile(p *domain.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:          p.ID.String(),
		Email:       p.Email,
		FullName:    ptr.Deref(p.FullName),
		Phone:       ptr.Deref(p.Phone),
		DisplayName: p.DisplayName(),
		IsAdmin:     p.IsAdmin,
		MemberSince: format.Date(p.CreatedAt),
	}
}

// FromDomainCustomers конвертирует список профилей клиентов
func FromDomainCustomers(list []*domain.Profile) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(list))
	for _, p := range list {
		out = append(out, CustomerResponse{
			ID:        p.ID.String(),
			Name:      p.DisplayName(),
			Email:     p.Email,
			Phone:     p.Phone,
			CreatedAt: format.Date(p.CreatedAt),
		})
	}
	return out
}
