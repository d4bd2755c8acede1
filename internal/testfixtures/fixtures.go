package testfixtures

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/ptr"
)

// Fixed identifiers used across tests.
var (
	CustomerID = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	AdminID    = uuid.MustParse("22222222-2222-4222-8222-222222222222")
	HaircutID  = uuid.MustParse("33333333-3333-4333-8333-333333333333")
	BeardID    = uuid.MustParse("44444444-4444-4444-8444-444444444444")
)

// Customer returns a regular profile.
func Customer() *domain.Profile {
	return &domain.Profile{
		ID:        CustomerID,
		Email:     "cliente@example.com",
		FullName:  ptr.Ptr("João Silva"),
		Phone:     ptr.Ptr("(11) 98888-7777"),
		CreatedAt: ReferenceTime().Add(-48 * time.Hour),
		UpdatedAt: ReferenceTime().Add(-48 * time.Hour),
	}
}

// Admin returns an administrator profile.
func Admin() *domain.Profile {
	return &domain.Profile{
		ID:        AdminID,
		Email:     "admin@barbeariatop.com",
		FullName:  ptr.Ptr("Administrador"),
		IsAdmin:   true,
		CreatedAt: ReferenceTime().Add(-72 * time.Hour),
		UpdatedAt: ReferenceTime().Add(-72 * time.Hour),
	}
}

// Haircut returns the "Corte Masculino" service.
func Haircut() *domain.Service {
	return &domain.Service{
		ID:          HaircutID,
		Name:        "Corte Masculino",
		Description: ptr.Ptr("Corte de cabelo masculino tradicional"),
		Duration:    30,
		Price:       decimal.RequireFromString("25.00"),
		Active:      true,
		CreatedAt:   ReferenceTime().Add(-720 * time.Hour),
	}
}

// Beard returns the "Barba" service.
func Beard() *domain.Service {
	return &domain.Service{
		ID:          BeardID,
		Name:        "Barba",
		Description: ptr.Ptr("Aparar e modelar barba"),
		Duration:    20,
		Price:       decimal.RequireFromString("15.00"),
		Active:      true,
		CreatedAt:   ReferenceTime().Add(-720 * time.Hour),
	}
}

// CallerFor builds a request caller for a profile.
func CallerFor(p *domain.Profile) domain.Caller {
	return domain.Caller{ID: p.ID, Email: p.Email, AccessToken: "token-" + p.ID.String()}
}
