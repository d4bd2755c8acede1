package update_profile

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/service/profiles/models"
)

type ProfileService interface {
	UpdateContact(ctx context.Context, caller domain.Caller, req *models.UpdateContactRequest) (*models.ProfileResponse, error)
}

type FormValidator interface {
	Validate(form interface{}) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
