package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BarbershopService/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	shop        models.ShopInfo
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, shop models.ShopInfo, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		shop:        shop,
		logger:      logger,
	}
}

// ListActive получает активные услуги, отсортированные по названию
func (s *Service) ListActive(ctx context.Context) ([]models.ServiceResponse, error) {
	list, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServices(list), nil
}

// Home собирает данные главной страницы: контакты и услуги
func (s *Service) Home(ctx context.Context) (*models.HomeResponse, error) {
	services, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return &models.HomeResponse{
		Shop:     s.shop,
		Services: services,
	}, nil
}
