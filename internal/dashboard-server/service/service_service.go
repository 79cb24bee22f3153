package service

import (
	"NYA_Service_Dashboard/internal/dashboard-server/event"
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"NYA_Service_Dashboard/internal/dashboard-server/repository"
	"context"
	"fmt"

	"github.com/juju/clock"
	"go.uber.org/zap"
)

type ServiceService interface {
	GetServices(ctx context.Context) ([]model.Service, error)
	CreateService(ctx context.Context, patch model.ServicePatch) (model.Service, error)
	UpdateService(ctx context.Context, id string, patch model.ServicePatch) (model.Service, error)
	DeleteService(ctx context.Context, id string) error
}

type serviceService struct {
	serviceRepo repository.ServiceRepository
	publisher   event.Publisher
	clock       clock.Clock
	logger      *zap.Logger
}

// publish never fails the caller: the JSON file is already updated when it runs.
func (s *serviceService) publish(ctx context.Context, eventType, id string, service *model.Service) {
	evt := event.ServiceEvent{
		Type:      eventType,
		ServiceID: id,
		Service:   service,
		Timestamp: s.clock.Now().UTC(),
	}
	if err := s.publisher.PublishServiceEvent(ctx, evt); err != nil {
		s.logger.Warn("failed to publish service event", zap.Error(err), zap.String("event_type", eventType), zap.String("service_id", id))
	}
}

func (s *serviceService) GetServices(ctx context.Context) ([]model.Service, error) {
	services, err := s.serviceRepo.GetServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("serviceService.GetServices: %w", err)
	}
	return services, nil
}

func (s *serviceService) CreateService(ctx context.Context, patch model.ServicePatch) (model.Service, error) {
	created, err := s.serviceRepo.CreateService(ctx, patch)
	if err != nil {
		return model.Service{}, fmt.Errorf("serviceService.CreateService: %w", err)
	}
	s.publish(ctx, event.ServiceCreated, created.ID, &created)
	return created, nil
}

// UpdateService with an empty patch returns the stored service without rewriting the file or publishing an event.
func (s *serviceService) UpdateService(ctx context.Context, id string, patch model.ServicePatch) (model.Service, error) {
	if patch.IsEmpty() {
		current, err := s.serviceRepo.GetServiceByID(ctx, id)
		if err != nil {
			return model.Service{}, fmt.Errorf("serviceService.UpdateService: %w", err)
		}
		return current, nil
	}
	updated, err := s.serviceRepo.UpdateService(ctx, id, patch)
	if err != nil {
		return model.Service{}, fmt.Errorf("serviceService.UpdateService: %w", err)
	}
	s.publish(ctx, event.ServiceUpdated, updated.ID, &updated)
	return updated, nil
}

func (s *serviceService) DeleteService(ctx context.Context, id string) error {
	if err := s.serviceRepo.DeleteService(ctx, id); err != nil {
		return fmt.Errorf("serviceService.DeleteService: %w", err)
	}
	s.publish(ctx, event.ServiceDeleted, id, nil)
	return nil
}

func NewServiceService(serviceRepo repository.ServiceRepository, publisher event.Publisher, clk clock.Clock, logger *zap.Logger) ServiceService {
	return &serviceService{
		serviceRepo: serviceRepo,
		publisher:   publisher,
		clock:       clk,
		logger:      logger,
	}
}
