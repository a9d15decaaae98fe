package models

type Ticket struct {
	ID          string         `json:"id"`
	Email       string         `json:"email"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      TicketStatus   `json:"status"`
	Priority    TicketPriority `json:"priority"`
}
