// Package auth checks owner credentials and decides which operations
// require them.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/TicketHub/internal/domain"
	"github.com/stpnv0/TicketHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the username is unknown so the
// response time does not reveal which usernames exist.
var dummyHash = mustHash("tickethub-dummy-password")

type IdentityGate struct {
	owners ports.OwnerStore
	cost   int
	logger logger.Logger
}

func NewIdentityGate(owners ports.OwnerStore, logger logger.Logger) *IdentityGate {
	return &IdentityGate{
		owners: owners,
		cost:   bcrypt.DefaultCost,
		logger: logger,
	}
}

// Authorize returns nil for a known owner with a matching password and
// domain.ErrUnauthorized for anything else. Unknown user and wrong password
// produce the same error.
func (g *IdentityGate) Authorize(ctx context.Context, username, password string) error {
	owner, ok, err := g.owners.Get(ctx, username)
	if err != nil {
		return fmt.Errorf("get owner: %w", err)
	}

	hash := dummyHash
	if ok {
		hash = []byte(owner.PasswordHash)
	}

	err = bcrypt.CompareHashAndPassword(hash, []byte(password))
	if !ok || err != nil {
		g.logger.Debug("identity check failed", logger.String("username", username))
		return domain.ErrUnauthorized
	}

	return nil
}

// Provision stores an owner with a bcrypt hash of password, replacing any
// existing owner with the same username.
func (g *IdentityGate) Provision(ctx context.Context, username, password string) error {
	if username == "" {
		return errors.New("provision owner: empty username")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), g.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	owner := domain.Owner{Username: username, PasswordHash: string(hash)}
	if err = g.owners.Insert(ctx, username, owner); err != nil {
		return fmt.Errorf("insert owner: %w", err)
	}

	g.logger.Info("owner provisioned", logger.String("username", username))
	return nil
}

func mustHash(password string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic("auth: " + err.Error())
	}
	return hash
}
