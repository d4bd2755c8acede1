package models

import (
	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/format"
	"github.com/m04kA/SMC-BarbershopService/pkg/ptr"
)

// ShopInfo контакты и часы работы барбершопа
type ShopInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Hours       []string `json:"hours"`
}

// ServiceResponse услуга в каталоге
type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
}

// HomeResponse данные главной страницы
type HomeResponse struct {
	Shop     ShopInfo          `json:"shop"`
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices конвертирует список услуг
func FromDomainServices(list []*domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ServiceResponse{
			ID:          s.ID.String(),
			Name:        s.Name,
			Description: ptr.Deref(s.Description),
			Duration:    format.Duration(s.Duration),
			Price:       format.BRL(s.Price),
		})
	}
	return out
}
