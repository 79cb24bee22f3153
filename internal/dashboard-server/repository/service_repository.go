package repository

import (
	apperrors "NYA_Service_Dashboard/internal/dashboard-server/errors"
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"NYA_Service_Dashboard/pkg/filestore"
	"context"
	"fmt"
	"strconv"

	"github.com/juju/clock"
)

type ServiceRepository interface {
	GetServices(ctx context.Context) ([]model.Service, error)
	GetServiceByID(ctx context.Context, id string) (model.Service, error)
	CreateService(ctx context.Context, patch model.ServicePatch) (model.Service, error)
	UpdateService(ctx context.Context, id string, patch model.ServicePatch) (model.Service, error)
	DeleteService(ctx context.Context, id string) error
}

type serviceRepository struct {
	file  *filestore.File[[]model.Service]
	clock clock.Clock
}

func (s *serviceRepository) GetServices(ctx context.Context) ([]model.Service, error) {
	services, err := s.file.Read()
	if err != nil {
		return nil, fmt.Errorf("serviceRepository.GetServices: %w", err)
	}
	if services == nil {
		services = []model.Service{}
	}
	return services, nil
}

func (s *serviceRepository) GetServiceByID(ctx context.Context, id string) (model.Service, error) {
	services, err := s.file.Read()
	if err != nil {
		return model.Service{}, fmt.Errorf("serviceRepository.GetServiceByID: %w", err)
	}
	for _, service := range services {
		if service.ID == id {
			return service, nil
		}
	}
	return model.Service{}, fmt.Errorf("serviceRepository.GetServiceByID: %w", apperrors.ErrServiceNotFound)
}

// nextID derives an id from the current time in milliseconds, bumped past every numeric id
// already stored so two creations in the same millisecond never collide.
func (s *serviceRepository) nextID(services []model.Service) string {
	next := s.clock.Now().UnixMilli()
	for _, service := range services {
		n, err := strconv.ParseInt(service.ID, 10, 64)
		if err == nil && n >= next {
			next = n + 1
		}
	}
	return strconv.FormatInt(next, 10)
}

func (s *serviceRepository) CreateService(ctx context.Context, patch model.ServicePatch) (model.Service, error) {
	var created model.Service
	_, err := s.file.Update(func(services []model.Service) ([]model.Service, error) {
		created = model.NewService(s.nextID(services), patch)
		return append(services, created), nil
	})
	if err != nil {
		return model.Service{}, fmt.Errorf("serviceRepository.CreateService: %w", err)
	}
	return created, nil
}

func (s *serviceRepository) UpdateService(ctx context.Context, id string, patch model.ServicePatch) (model.Service, error) {
	var updated model.Service
	_, err := s.file.Update(func(services []model.Service) ([]model.Service, error) {
		for i := range services {
			if services[i].ID == id {
				updated = patch.Apply(services[i])
				services[i] = updated
				return services, nil
			}
		}
		return nil, apperrors.ErrServiceNotFound
	})
	if err != nil {
		return model.Service{}, fmt.Errorf("serviceRepository.UpdateService: %w", err)
	}
	return updated, nil
}

func (s *serviceRepository) DeleteService(ctx context.Context, id string) error {
	_, err := s.file.Update(func(services []model.Service) ([]model.Service, error) {
		remaining := make([]model.Service, 0, len(services))
		for _, service := range services {
			if service.ID != id {
				remaining = append(remaining, service)
			}
		}
		if len(remaining) == len(services) {
			return nil, apperrors.ErrServiceNotFound
		}
		return remaining, nil
	})
	if err != nil {
		return fmt.Errorf("serviceRepository.DeleteService: %w", err)
	}
	return nil
}

func NewServiceRepository(file *filestore.File[[]model.Service], clk clock.Clock) ServiceRepository {
	return &serviceRepository{
		file:  file,
		clock: clk,
	}
}
