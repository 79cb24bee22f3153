package service_manager

import (
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

//go:generate mockgen -source=uptime_kuma.go -destination=mock_uptime_kuma.go -package=service_manager

const monitorStatusMetric = "monitor_status"

type Monitor struct {
	ID     string
	Name   string
	URL    string
	Status string
}

type UptimeKumaClient interface {
	GetMonitors(ctx context.Context) ([]Monitor, error)
}

type uptimeKumaClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// GetMonitors reads the current state of every monitor from the Uptime Kuma metrics endpoint.
func (u *uptimeKumaClient) GetMonitors(ctx context.Context) ([]Monitor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.baseURL+"/metrics", nil)
	if err != nil {
		return nil, fmt.Errorf("UptimeKumaClient.GetMonitors creating request: %w", err)
	}
	req.SetBasicAuth("", u.apiKey)
	req.Header.Set("Accept", "text/plain")

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("UptimeKumaClient.GetMonitors: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("UptimeKumaClient.GetMonitors: unexpected status %d", resp.StatusCode)
	}

	var parser expfmt.TextParser
	families, err := parser.TextToMetricFamilies(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("UptimeKumaClient.GetMonitors parsing metrics: %w", err)
	}
	family, ok := families[monitorStatusMetric]
	if !ok {
		return []Monitor{}, nil
	}
	monitors := make([]Monitor, 0, len(family.GetMetric()))
	for _, m := range family.GetMetric() {
		monitors = append(monitors, monitorFromMetric(m))
	}
	return monitors, nil
}

func monitorFromMetric(m *dto.Metric) Monitor {
	var monitor Monitor
	for _, l := range m.GetLabel() {
		value := l.GetValue()
		if value == "null" {
			value = ""
		}
		switch l.GetName() {
		case "monitor_id":
			monitor.ID = value
		case "monitor_name":
			monitor.Name = value
		case "monitor_url":
			monitor.URL = value
		}
	}
	var v float64
	switch {
	case m.GetGauge() != nil:
		v = m.GetGauge().GetValue()
	case m.GetUntyped() != nil:
		v = m.GetUntyped().GetValue()
	}
	monitor.Status = kumaStatus(v)
	return monitor
}

func kumaStatus(v float64) string {
	switch v {
	case 1:
		return model.ServiceStatusUp
	case 0:
		return model.ServiceStatusDown
	case 2:
		return model.ServiceStatusDegraded
	default:
		return model.ServiceStatusUnknown
	}
}

// MatchMonitor finds the monitor of a service by monitor id, then url, then name.
func MatchMonitor(s model.Service, monitors []Monitor) (Monitor, bool) {
	if s.MonitorID != "" {
		for _, m := range monitors {
			if m.ID == string(s.MonitorID) {
				return m, true
			}
		}
	}
	if u := normalizeURL(s.URL); u != "" {
		for _, m := range monitors {
			if normalizeURL(m.URL) == u {
				return m, true
			}
		}
	}
	if s.Name != "" {
		for _, m := range monitors {
			if strings.EqualFold(strings.TrimSpace(m.Name), strings.TrimSpace(s.Name)) {
				return m, true
			}
		}
	}
	return Monitor{}, false
}

func normalizeURL(u string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(u), "/"))
}

func NewUptimeKumaClient(baseURL, apiKey string, requestTimeout time.Duration) UptimeKumaClient {
	return &uptimeKumaClient{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}
