package service

import (
	apperrors "NYA_Service_Dashboard/internal/dashboard-server/errors"
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"NYA_Service_Dashboard/internal/dashboard-server/repository"
	"context"
	"fmt"

	"github.com/juju/clock"
)

type TicketService interface {
	// GetTickets returns every ticket to admins and only their own tickets to other users.
	GetTickets(ctx context.Context, caller model.User) ([]model.Ticket, error)
	CreateTicket(ctx context.Context, caller model.User, ticket model.Ticket) (model.Ticket, error)
	UpdateTicket(ctx context.Context, caller model.User, id string, patch model.TicketPatch) (model.Ticket, error)
	AddMessage(ctx context.Context, caller model.User, id string, text string) (model.TicketMessage, error)
}

type ticketService struct {
	ticketRepo repository.TicketRepository
	clock      clock.Clock
}

func canAccessTicket(caller model.User, ticket model.Ticket) bool {
	return caller.IsAdmin() || ticket.UserID == caller.ID
}

func (t *ticketService) GetTickets(ctx context.Context, caller model.User) ([]model.Ticket, error) {
	tickets, err := t.ticketRepo.GetTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("ticketService.GetTickets: %w", err)
	}
	visible := make([]model.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		if canAccessTicket(caller, ticket) {
			visible = append(visible, ticket)
		}
	}
	return visible, nil
}

func (t *ticketService) CreateTicket(ctx context.Context, caller model.User, ticket model.Ticket) (model.Ticket, error) {
	if ticket.Status == "" {
		ticket.Status = model.TicketStatusOpen
	}
	ticket.Date = t.clock.Now().Format("2006-01-02")
	ticket.UserID = caller.ID
	ticket.Messages = []model.TicketMessage{}
	created, err := t.ticketRepo.CreateTicket(ctx, ticket)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("ticketService.CreateTicket: %w", err)
	}
	return created, nil
}

func (t *ticketService) checkAccess(ctx context.Context, caller model.User, id string) error {
	ticket, err := t.ticketRepo.GetTicketByID(ctx, id)
	if err != nil {
		return err
	}
	if !canAccessTicket(caller, ticket) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

func (t *ticketService) UpdateTicket(ctx context.Context, caller model.User, id string, patch model.TicketPatch) (model.Ticket, error) {
	if err := t.checkAccess(ctx, caller, id); err != nil {
		return model.Ticket{}, fmt.Errorf("ticketService.UpdateTicket: %w", err)
	}
	updated, err := t.ticketRepo.UpdateTicket(ctx, id, patch)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("ticketService.UpdateTicket: %w", err)
	}
	return updated, nil
}

func (t *ticketService) AddMessage(ctx context.Context, caller model.User, id string, text string) (model.TicketMessage, error) {
	if err := t.checkAccess(ctx, caller, id); err != nil {
		return model.TicketMessage{}, fmt.Errorf("ticketService.AddMessage: %w", err)
	}
	sender := model.MessageSenderUser
	if caller.IsAdmin() {
		sender = model.MessageSenderAdmin
	}
	msg := model.TicketMessage{
		Sender:    sender,
		Text:      text,
		Timestamp: t.clock.Now().Format("2006-01-02 15:04"),
	}
	if err := t.ticketRepo.AddMessage(ctx, id, msg); err != nil {
		return model.TicketMessage{}, fmt.Errorf("ticketService.AddMessage: %w", err)
	}
	return msg, nil
}

func NewTicketService(ticketRepo repository.TicketRepository, clk clock.Clock) TicketService {
	return &ticketService{
		ticketRepo: ticketRepo,
		clock:      clk,
	}
}
