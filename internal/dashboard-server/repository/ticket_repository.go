package repository

import (
	apperrors "NYA_Service_Dashboard/internal/dashboard-server/errors"
	"NYA_Service_Dashboard/internal/dashboard-server/model"
	"NYA_Service_Dashboard/pkg/filestore"
	"context"
	"fmt"
	"strconv"
	"strings"
)

const ticketIDPrefix = "TKT-"

type TicketRepository interface {
	GetTickets(ctx context.Context) ([]model.Ticket, error)
	GetTicketByID(ctx context.Context, id string) (model.Ticket, error)
	CreateTicket(ctx context.Context, ticket model.Ticket) (model.Ticket, error)
	UpdateTicket(ctx context.Context, id string, patch model.TicketPatch) (model.Ticket, error)
	AddMessage(ctx context.Context, id string, msg model.TicketMessage) error
}

type ticketRepository struct {
	file *filestore.File[[]model.Ticket]
}

func (t *ticketRepository) GetTickets(ctx context.Context) ([]model.Ticket, error) {
	tickets, err := t.file.Read()
	if err != nil {
		return nil, fmt.Errorf("ticketRepository.GetTickets: %w", err)
	}
	return tickets, nil
}

func (t *ticketRepository) GetTicketByID(ctx context.Context, id string) (model.Ticket, error) {
	tickets, err := t.file.Read()
	if err != nil {
		return model.Ticket{}, fmt.Errorf("ticketRepository.GetTicketByID: %w", err)
	}
	for _, ticket := range tickets {
		if ticket.ID == id {
			return ticket, nil
		}
	}
	return model.Ticket{}, fmt.Errorf("ticketRepository.GetTicketByID: %w", apperrors.ErrTicketNotFound)
}

func nextTicketID(tickets []model.Ticket) string {
	maxSeq := 0
	for _, ticket := range tickets {
		n, err := strconv.Atoi(strings.TrimPrefix(ticket.ID, ticketIDPrefix))
		if err == nil {
			maxSeq = max(maxSeq, n)
		}
	}
	return fmt.Sprintf("%s%03d", ticketIDPrefix, maxSeq+1)
}

func (t *ticketRepository) CreateTicket(ctx context.Context, ticket model.Ticket) (model.Ticket, error) {
	_, err := t.file.Update(func(tickets []model.Ticket) ([]model.Ticket, error) {
		ticket.ID = nextTicketID(tickets)
		if ticket.Messages == nil {
			ticket.Messages = []model.TicketMessage{}
		}
		return append(tickets, ticket), nil
	})
	if err != nil {
		return model.Ticket{}, fmt.Errorf("ticketRepository.CreateTicket: %w", err)
	}
	return ticket, nil
}

func (t *ticketRepository) UpdateTicket(ctx context.Context, id string, patch model.TicketPatch) (model.Ticket, error) {
	var updated model.Ticket
	_, err := t.file.Update(func(tickets []model.Ticket) ([]model.Ticket, error) {
		for i := range tickets {
			if tickets[i].ID == id {
				updated = patch.Apply(tickets[i])
				tickets[i] = updated
				return tickets, nil
			}
		}
		return nil, apperrors.ErrTicketNotFound
	})
	if err != nil {
		return model.Ticket{}, fmt.Errorf("ticketRepository.UpdateTicket: %w", err)
	}
	return updated, nil
}

func (t *ticketRepository) AddMessage(ctx context.Context, id string, msg model.TicketMessage) error {
	_, err := t.file.Update(func(tickets []model.Ticket) ([]model.Ticket, error) {
		for i := range tickets {
			if tickets[i].ID == id {
				tickets[i].Messages = append(tickets[i].Messages, msg)
				return tickets, nil
			}
		}
		return nil, apperrors.ErrTicketNotFound
	})
	if err != nil {
		return fmt.Errorf("ticketRepository.AddMessage: %w", err)
	}
	return nil
}

func NewTicketRepository(file *filestore.File[[]model.Ticket]) TicketRepository {
	return &ticketRepository{file: file}
}
