package auth

import (
	"fmt"
	"strings"

	"github.com/stpnv0/TicketHub/internal/domain"
)

type Operation string

const (
	OpCreateEvent  Operation = "create_event"
	OpIssueTicket  Operation = "issue_ticket"
	OpRedeemTicket Operation = "redeem_ticket"
)

var knownOperations = map[Operation]struct{}{
	OpCreateEvent:  {},
	OpIssueTicket:  {},
	OpRedeemTicket: {},
}

// Policy is the set of operations that require owner credentials.
type Policy struct {
	protected map[Operation]struct{}
}

// NewPolicy builds a policy from operation names. Blank names are skipped,
// unknown names are rejected.
func NewPolicy(names []string) (Policy, error) {
	p := Policy{protected: make(map[Operation]struct{}, len(names))}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		op := Operation(name)
		if _, ok := knownOperations[op]; !ok {
			return Policy{}, fmt.Errorf("%w: %q", domain.ErrInvalidOperation, name)
		}
		p.protected[op] = struct{}{}
	}
	return p, nil
}

func (p Policy) Protects(op Operation) bool {
	_, ok := p.protected[op]
	return ok
}
