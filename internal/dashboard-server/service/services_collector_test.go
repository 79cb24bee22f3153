package service

import (
	mockrepository "NYA_Service_Dashboard/internal/dashboard-server/mocks/repository"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestServicesCollector_Collect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mockrepository.NewMockServiceRepository(ctrl)
	c := NewServicesCollector(mockRepo, zap.NewNop())

	mockRepo.EXPECT().GetServices(gomock.Any()).Return(reportServices(), nil).AnyTimes()
	expected := `
# HELP nya_dashboard_services The number of services by status. Inactive services are reported with status inactive.
# TYPE nya_dashboard_services gauge
nya_dashboard_services{status="degraded"} 1
nya_dashboard_services{status="down"} 0
nya_dashboard_services{status="inactive"} 1
nya_dashboard_services{status="unknown"} 0
nya_dashboard_services{status="up"} 1
`
	assert.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "nya_dashboard_services"))
}

func TestServicesCollector_CollectReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mockrepository.NewMockServiceRepository(ctrl)
	c := NewServicesCollector(mockRepo, zap.NewNop())

	mockRepo.EXPECT().GetServices(gomock.Any()).Return(nil, errors.New("corrupt")).AnyTimes()
	assert.Equal(t, 0, testutil.CollectAndCount(c))
}
