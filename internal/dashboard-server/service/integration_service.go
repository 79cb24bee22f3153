package service

import (
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"NYA_Service_Dashboard/internal/dashboard-server/repository"
	"context"
	"fmt"
)

type IntegrationService interface {
	GetIntegrations(ctx context.Context) (model.Integrations, error)
	SaveIntegrations(ctx context.Context, integrations model.Integrations) (model.Integrations, error)
}

type integrationService struct {
	integrationRepo repository.IntegrationRepository
}

func (i *integrationService) GetIntegrations(ctx context.Context) (model.Integrations, error) {
	integrations, err := i.integrationRepo.GetIntegrations(ctx)
	if err != nil {
		return model.Integrations{}, fmt.Errorf("integrationService.GetIntegrations: %w", err)
	}
	return integrations, nil
}

// SaveIntegrations replaces the whole document.
func (i *integrationService) SaveIntegrations(ctx context.Context, integrations model.Integrations) (model.Integrations, error) {
	if err := i.integrationRepo.SaveIntegrations(ctx, integrations); err != nil {
		return model.Integrations{}, fmt.Errorf("integrationService.SaveIntegrations: %w", err)
	}
	return integrations, nil
}

func NewIntegrationService(integrationRepo repository.IntegrationRepository) IntegrationService {
	return &integrationService{integrationRepo: integrationRepo}
}
