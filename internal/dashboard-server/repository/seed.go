package repository

import (
	"NYA_Service_Dashboard/internal/dashboard-server/model"

	"golang.org/x/crypto/bcrypt"
)

const (
	ServicesFile     = "services.json"
	UsersFile        = "users.json"
	TicketsFile      = "tickets.json"
	IntegrationsFile = "integrations.json"
)

func DefaultServices() []model.Service {
	return []model.Service{
		{
			ID:               "1",
			Name:             "Jellyfin",
			Description:      "Media streaming service",
			Logo:             "/uploads/jellyfin.png",
			URL:              "https://jellyfin.example.com",
			Status:           model.ServiceStatusUp,
			UptimePercentage: 99.8,
			AdminPanel:       "https://jellyfin-admin.example.com",
		},
		{
			ID:               "2",
			Name:             "Nextcloud",
			Description:      "File storage and collaboration",
			Logo:             "https://nextcloud.com/media/nextcloud-logo.png",
			URL:              "https://nextcloud.example.com",
			Status:           model.ServiceStatusUp,
			UptimePercentage: 99.5,
			AdminPanel:       "https://nextcloud-admin.example.com",
		},
	}
}

func mustHash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hashed)
}

func DefaultUsers() []model.User {
	return []model.User{
		{
			ID:       1,
			Username: "admin",
			Password: mustHash("nyaservices2025"),
			Name:     "Administrator",
			Email:    "admin@example.com",
			Role:     model.RoleAdmin,
			Status:   model.UserStatusActive,
		},
		{
			ID:       2,
			Username: "demo",
			Password: mustHash("password"),
			Name:     "Demo User",
			Email:    "demo@example.com",
			Role:     model.RoleUser,
			Status:   model.UserStatusActive,
		},
	}
}

func DefaultTickets() []model.Ticket {
	return []model.Ticket{
		{
			ID:          "TKT-001",
			Subject:     "Jellyfin Buffering Issue",
			Status:      model.TicketStatusOpen,
			Priority:    "High",
			AssignedTo:  "admin",
			Date:        "2025-05-01",
			Description: "I'm experiencing constant buffering when watching 4K content on Jellyfin.",
			Messages: []model.TicketMessage{
				{Sender: model.MessageSenderUser, Text: "The buffering happens every 10-15 seconds.", Timestamp: "2025-05-01 10:30"},
			},
			UserID: 1,
		},
	}
}

func DefaultIntegrations() model.Integrations {
	return model.Integrations{}
}
