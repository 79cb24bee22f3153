package model

const (
	TicketStatusOpen = "Open"

	MessageSenderAdmin = "admin"
	MessageSenderUser  = "user"
)

type TicketMessage struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type Ticket struct {
	ID          string          `json:"id"`
	Subject     string          `json:"subject"`
	Status      string          `json:"status"`
	Priority    string          `json:"priority,omitempty"`
	AssignedTo  string          `json:"assignedTo,omitempty"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	Messages    []TicketMessage `json:"messages"`
	UserID      int             `json:"userId"`
}

type TicketPatch struct {
	Subject     *string
	Status      *string
	Priority    *string
	AssignedTo  *string
	Description *string
}

func (p TicketPatch) Apply(t Ticket) Ticket {
	if p.Subject != nil {
		t.Subject = *p.Subject
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.AssignedTo != nil {
		t.AssignedTo = *p.AssignedTo
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	return t
}
