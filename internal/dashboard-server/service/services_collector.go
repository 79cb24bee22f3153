package service

import (
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"NYA_Service_Dashboard/internal/dashboard-server/repository"
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const metricsNamespace = "nya_dashboard"

// ServicesCollector reports the stored services on every scrape.
type ServicesCollector struct {
	serviceRepo repository.ServiceRepository
	logger      *zap.Logger

	servicesDesc *prometheus.Desc
	uptimeDesc   *prometheus.Desc
}

func NewServicesCollector(serviceRepo repository.ServiceRepository, logger *zap.Logger) *ServicesCollector {
	return &ServicesCollector{
		serviceRepo: serviceRepo,
		logger:      logger,
		servicesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "", "services"),
			"The number of services by status. Inactive services are reported with status inactive.",
			[]string{"status"}, nil,
		),
		uptimeDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "", "service_uptime_percentage"),
			"The uptime percentage of each service.",
			[]string{"service_id", "name"}, nil,
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *ServicesCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.servicesDesc
	ch <- c.uptimeDesc
}

// Collect is part of the prometheus.Collector interface.
func (c *ServicesCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	services, err := c.serviceRepo.GetServices(ctx)
	if err != nil {
		c.logger.Warn("failed to collect services metrics", zap.Error(err))
		return
	}
	sum := Summarize(services)
	for status, n := range map[string]int{
		model.ServiceStatusUp:       sum.Up,
		model.ServiceStatusDegraded: sum.Degraded,
		model.ServiceStatusDown:     sum.Down,
		model.ServiceStatusUnknown:  sum.Unknown,
		"inactive":                  sum.Inactive,
	} {
		ch <- prometheus.MustNewConstMetric(c.servicesDesc, prometheus.GaugeValue, float64(n), status)
	}
	for _, s := range services {
		ch <- prometheus.MustNewConstMetric(c.uptimeDesc, prometheus.GaugeValue, s.UptimePercentage, s.ID, s.Name)
	}
}
