package repository

import (
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"NYA_Service_Dashboard/pkg/filestore"
	"context"
	"fmt"
)

type IntegrationRepository interface {
	GetIntegrations(ctx context.Context) (model.Integrations, error)
	SaveIntegrations(ctx context.Context, integrations model.Integrations) error
}

type integrationRepository struct {
	file *filestore.File[model.Integrations]
}

func (i *integrationRepository) GetIntegrations(ctx context.Context) (model.Integrations, error) {
	integrations, err := i.file.Read()
	if err != nil {
		return model.Integrations{}, fmt.Errorf("integrationRepository.GetIntegrations: %w", err)
	}
	return integrations, nil
}

func (i *integrationRepository) SaveIntegrations(ctx context.Context, integrations model.Integrations) error {
	if err := i.file.Write(integrations); err != nil {
		return fmt.Errorf("integrationRepository.SaveIntegrations: %w", err)
	}
	return nil
}

func NewIntegrationRepository(file *filestore.File[model.Integrations]) IntegrationRepository {
	return &integrationRepository{file: file}
}
