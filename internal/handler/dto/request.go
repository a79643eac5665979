package dto

type CreateEventRequest struct {
	Name  string `json:"name"`
	Date  string `json:"date"`
	Venue string `json:"venue"`
}

type IssueTicketRequest struct {
	Owner string `json:"owner"`
}
