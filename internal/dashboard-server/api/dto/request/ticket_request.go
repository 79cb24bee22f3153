package request

import "NYA_Service_Dashboard/internal/dashboard-server/model"

type CreateTicketRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Priority    string `json:"priority"`
	AssignedTo  string `json:"assignedTo"`
	Description string `json:"description"`
}

type UpdateTicketRequest struct {
	Subject     *string `json:"subject" binding:"omitempty,min=1"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	AssignedTo  *string `json:"assignedTo"`
	Description *string `json:"description"`
}

func (r UpdateTicketRequest) ToPatch() model.TicketPatch {
	return model.TicketPatch{
		Subject:     r.Subject,
		Status:      r.Status,
		Priority:    r.Priority,
		AssignedTo:  r.AssignedTo,
		Description: r.Description,
	}
}

type TicketMessageRequest struct {
	Text string `json:"text" binding:"required"`
}
