package service

import (
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"NYA_Service_Dashboard/internal/dashboard-server/repository"
	"NYA_Service_Dashboard/pkg/mail"
	"bytes"
	"context"
	"fmt"
	"math"

	"github.com/juju/clock"
	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Services"

type ServicesSummary struct {
	Total         int
	Up            int
	Degraded      int
	Down          int
	Unknown       int
	Inactive      int
	AverageUptime float64
}

// Summarize counts services by status. Inactive services are counted apart and left out of the status counts.
func Summarize(services []model.Service) ServicesSummary {
	var sum ServicesSummary
	var uptimeTotal float64
	for _, s := range services {
		sum.Total++
		uptimeTotal += s.UptimePercentage
		if !s.Active() {
			sum.Inactive++
			continue
		}
		switch s.Status {
		case model.ServiceStatusUp:
			sum.Up++
		case model.ServiceStatusDegraded:
			sum.Degraded++
		case model.ServiceStatusDown:
			sum.Down++
		default:
			sum.Unknown++
		}
	}
	if sum.Total > 0 {
		sum.AverageUptime = math.Round(uptimeTotal/float64(sum.Total)*100) / 100
	}
	return sum
}

type ReportService interface {
	ExportServices(ctx context.Context) (*excelize.File, error)
	SendDailyReport(ctx context.Context, to string) error
}

type reportService struct {
	serviceRepo repository.ServiceRepository
	mailSender  mail.Sender
	clock       clock.Clock
}

func generateExcelFile(services []model.Service) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), exportSheetName); err != nil {
		return nil, err
	}
	headers := []interface{}{"id", "name", "url", "status", "uptime_percentage", "is_active", "is_monitored", "monitor_id", "admin_panel"}
	if err := f.SetSheetRow(exportSheetName, "A1", &headers); err != nil {
		return nil, err
	}
	for i, s := range services {
		row := []interface{}{
			s.ID,
			s.Name,
			s.URL,
			s.Status,
			s.UptimePercentage,
			s.Active(),
			s.IsMonitored,
			string(s.MonitorID),
			s.AdminPanel,
		}
		if err := f.SetSheetRow(exportSheetName, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (r *reportService) ExportServices(ctx context.Context) (*excelize.File, error) {
	services, err := r.serviceRepo.GetServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("reportService.ExportServices: %w", err)
	}
	f, err := generateExcelFile(services)
	if err != nil {
		return nil, fmt.Errorf("reportService.ExportServices: %w", err)
	}
	return f, nil
}

func (r *reportService) SendDailyReport(ctx context.Context, to string) error {
	services, err := r.serviceRepo.GetServices(ctx)
	if err != nil {
		return fmt.Errorf("reportService.SendDailyReport: %w", err)
	}
	f, err := generateExcelFile(services)
	if err != nil {
		return fmt.Errorf("reportService.SendDailyReport: %w", err)
	}
	defer f.Close()
	attachment, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("reportService.SendDailyReport: %w", err)
	}

	summary := Summarize(services)
	day := r.clock.Now().Format("2006-01-02")
	err = r.mailSender.Send(mail.Message{
		To:       []string{to},
		Subject:  fmt.Sprintf("Service Status Report %s", day),
		HTMLBody: generateHTMLBody(summary),
		TextBody: generateTextMailBody(summary),
		Attachments: []mail.Attachment{
			{Name: fmt.Sprintf("services-%s.xlsx", day), Content: bytes.NewReader(attachment.Bytes())},
		},
	})
	if err != nil {
		return fmt.Errorf("reportService.SendDailyReport: %w", err)
	}
	return nil
}

func generateTextMailBody(sum ServicesSummary) string {
	return fmt.Sprintf(
		"--- SUMMARY ---\n"+
			"Total Services: %d\n"+
			"Up: %d\n"+
			"Degraded: %d\n"+
			"Down: %d\n"+
			"Unknown: %d\n"+
			"Inactive: %d\n\n"+
			"Average Uptime Across All Services: %.2f%%",
		sum.Total, sum.Up, sum.Degraded, sum.Down, sum.Unknown, sum.Inactive, sum.AverageUptime,
	)
}

func generateHTMLBody(sum ServicesSummary) string {
	row := `
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">%s</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
        </tr>`
	var rows bytes.Buffer
	for _, r := range [][2]string{
		{"Total Services:", fmt.Sprint(sum.Total)},
		{"Up:", fmt.Sprint(sum.Up)},
		{"Degraded:", fmt.Sprint(sum.Degraded)},
		{"Down:", fmt.Sprint(sum.Down)},
		{"Unknown:", fmt.Sprint(sum.Unknown)},
		{"Inactive:", fmt.Sprint(sum.Inactive)},
		{"Average Uptime Percentage:", fmt.Sprintf("%.2f%%", sum.AverageUptime)},
	} {
		fmt.Fprintf(&rows, row, r[0], r[1])
	}
	return fmt.Sprintf("\n<body>\n    <table style=\"width:100%%; border-collapse: collapse;\">%s\n    </table>\n</body>", rows.String())
}

func NewReportService(serviceRepo repository.ServiceRepository, mailSender mail.Sender, clk clock.Clock) ReportService {
	return &reportService{
		serviceRepo: serviceRepo,
		mailSender:  mailSender,
		clock:       clk,
	}
}
