package model

import (
	"bytes"
	"encoding/json"
	"math"
)

const (
	ServiceStatusUp       = "up"
	ServiceStatusDown     = "down"
	ServiceStatusDegraded = "degraded"
	ServiceStatusUnknown  = "unknown"
)

type ServiceInfo struct {
	Description   string `json:"description,omitempty"`
	Documentation string `json:"documentation,omitempty"`
	Version       string `json:"version,omitempty"`
	Maintainer    string `json:"maintainer,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// MonitorID is an Uptime Kuma monitor id. Stored files may hold it as a number or a string.
type MonitorID string

func (m *MonitorID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*m = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*m = MonitorID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*m = MonitorID(n.String())
	return nil
}

type Service struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Logo             string       `json:"logo"`
	URL              string       `json:"url"`
	Status           string       `json:"status"`
	UptimePercentage float64      `json:"uptimePercentage"`
	IsActive         *bool        `json:"isActive,omitempty"`
	IsMonitored      bool         `json:"isMonitored"`
	MonitorID        MonitorID    `json:"monitorId,omitempty"`
	AdminPanel       string       `json:"adminPanel,omitempty"`
	Info             *ServiceInfo `json:"info,omitempty"`
}

// Active reports whether the service is shown on the dashboard. A missing flag means active.
func (s Service) Active() bool {
	return s.IsActive == nil || *s.IsActive
}

// ServicePatch is a partial service: nil fields are left untouched by Apply.
type ServicePatch struct {
	Name             *string      `json:"name,omitempty"`
	Description      *string      `json:"description,omitempty"`
	Logo             *string      `json:"logo,omitempty"`
	URL              *string      `json:"url,omitempty"`
	Status           *string      `json:"status,omitempty"`
	UptimePercentage *float64     `json:"uptimePercentage,omitempty"`
	IsActive         *bool        `json:"isActive,omitempty"`
	IsMonitored      *bool        `json:"isMonitored,omitempty"`
	MonitorID        *MonitorID   `json:"monitorId,omitempty"`
	AdminPanel       *string      `json:"adminPanel,omitempty"`
	Info             *ServiceInfo `json:"info,omitempty"`
}

func (p ServicePatch) IsEmpty() bool {
	return p == ServicePatch{}
}

// Apply returns s with every field set in p copied over. The id never changes.
func (p ServicePatch) Apply(s Service) Service {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Logo != nil {
		s.Logo = *p.Logo
	}
	if p.URL != nil {
		s.URL = *p.URL
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.UptimePercentage != nil {
		s.UptimePercentage = ClampUptime(*p.UptimePercentage)
	}
	if p.IsActive != nil {
		active := *p.IsActive
		s.IsActive = &active
	}
	if p.IsMonitored != nil {
		s.IsMonitored = *p.IsMonitored
	}
	if p.MonitorID != nil {
		s.MonitorID = *p.MonitorID
	}
	if p.AdminPanel != nil {
		s.AdminPanel = *p.AdminPanel
	}
	if p.Info != nil {
		info := *p.Info
		s.Info = &info
	}
	return s
}

// NewService fills the creation defaults and then applies p on top.
func NewService(id string, p ServicePatch) Service {
	active := true
	s := Service{
		ID:               id,
		Status:           ServiceStatusUnknown,
		UptimePercentage: 0,
		IsActive:         &active,
		IsMonitored:      false,
	}
	return p.Apply(s)
}

func ClampUptime(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// VisibleServices returns the services shown on the dashboard, in their original order.
func VisibleServices(all []Service) []Service {
	visible := make([]Service, 0, len(all))
	for _, s := range all {
		if s.Active() {
			visible = append(visible, s)
		}
	}
	return visible
}
