package request

import "NYA_Service_Dashboard/internal/dashboard-server/model"

type CreateServiceRequest struct {
	Name             string             `json:"name" binding:"required"`
	URL              string             `json:"url" binding:"required"`
	Description      *string            `json:"description"`
	Logo             *string            `json:"logo"`
	Status           *string            `json:"status" binding:"omitempty,oneof=up down degraded unknown"`
	UptimePercentage *float64           `json:"uptimePercentage" binding:"omitempty,gte=0,lte=100"`
	IsActive         *bool              `json:"isActive"`
	IsMonitored      *bool              `json:"isMonitored"`
	MonitorID        *model.MonitorID   `json:"monitorId"`
	AdminPanel       *string            `json:"adminPanel"`
	Info             *model.ServiceInfo `json:"info"`
}

func (r CreateServiceRequest) ToPatch() model.ServicePatch {
	return model.ServicePatch{
		Name:             &r.Name,
		URL:              &r.URL,
		Description:      r.Description,
		Logo:             r.Logo,
		Status:           r.Status,
		UptimePercentage: r.UptimePercentage,
		IsActive:         r.IsActive,
		IsMonitored:      r.IsMonitored,
		MonitorID:        r.MonitorID,
		AdminPanel:       r.AdminPanel,
		Info:             r.Info,
	}
}

// UpdateServiceRequest is a partial service. The id is taken from the path only.
type UpdateServiceRequest struct {
	Name             *string            `json:"name" binding:"omitempty,min=1"`
	URL              *string            `json:"url" binding:"omitempty,min=1"`
	Description      *string            `json:"description"`
	Logo             *string            `json:"logo"`
	Status           *string            `json:"status" binding:"omitempty,oneof=up down degraded unknown"`
	UptimePercentage *float64           `json:"uptimePercentage" binding:"omitempty,gte=0,lte=100"`
	IsActive         *bool              `json:"isActive"`
	IsMonitored      *bool              `json:"isMonitored"`
	MonitorID        *model.MonitorID   `json:"monitorId"`
	AdminPanel       *string            `json:"adminPanel"`
	Info             *model.ServiceInfo `json:"info"`
}

func (r UpdateServiceRequest) ToPatch() model.ServicePatch {
	return model.ServicePatch{
		Name:             r.Name,
		URL:              r.URL,
		Description:      r.Description,
		Logo:             r.Logo,
		Status:           r.Status,
		UptimePercentage: r.UptimePercentage,
		IsActive:         r.IsActive,
		IsMonitored:      r.IsMonitored,
		MonitorID:        r.MonitorID,
		AdminPanel:       r.AdminPanel,
		Info:             r.Info,
	}
}
