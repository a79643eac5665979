package router

import (
	"net/http"

	"github.com/stpnv0/TicketHub/internal/auth"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	IssueTicket(c *ginext.Context)
	RedeemTicket(c *ginext.Context)
	GetTicket(c *ginext.Context)
}

type Guard struct {
	Policy      auth.Policy
	RequireAuth ginext.HandlerFunc
}

// chain prepends the identity check when the policy protects op.
func (g Guard) chain(op auth.Operation, h ginext.HandlerFunc) []ginext.HandlerFunc {
	if g.RequireAuth != nil && g.Policy.Protects(op) {
		return []ginext.HandlerFunc{g.RequireAuth, h}
	}
	return []ginext.HandlerFunc{h}
}

func InitRouter(mode string, h Handler, guard Guard, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// Events
	router.POST("/events", guard.chain(auth.OpCreateEvent, h.CreateEvent)...)
	router.GET("/events", h.ListEvents)
	router.GET("/events/:eventId", h.GetEvent)

	// Tickets
	router.POST("/events/:eventId/tickets", guard.chain(auth.OpIssueTicket, h.IssueTicket)...)
	router.GET("/tickets/:ticketId", h.GetTicket)
	router.PUT("/tickets/:ticketId/use", guard.chain(auth.OpRedeemTicket, h.RedeemTicket)...)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
