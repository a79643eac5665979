package domain

type Event struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Date    string   `json:"date"`
	Venue   string   `json:"venue"`
	Tickets []Ticket `json:"tickets"`
	IsOpen  bool     `json:"isOpen"`
}

type CreateEventInput struct {
	Name  string
	Date  string
	Venue string
}

// WithTicket returns a copy of e whose ticket list has t appended.
// The receiver's slice is never written to.
func (e Event) WithTicket(t Ticket) Event {
	tickets := make([]Ticket, 0, len(e.Tickets)+1)
	tickets = append(tickets, e.Tickets...)
	e.Tickets = append(tickets, t)
	return e
}

// WithReplacedTicket returns a copy of e where every entry with t.ID is
// replaced by t. Other entries keep their position and value.
func (e Event) WithReplacedTicket(t Ticket) Event {
	tickets := make([]Ticket, len(e.Tickets))
	for i, existing := range e.Tickets {
		if existing.ID == t.ID {
			tickets[i] = t
			continue
		}
		tickets[i] = existing
	}
	e.Tickets = tickets
	return e
}
