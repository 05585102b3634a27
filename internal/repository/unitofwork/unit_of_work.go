package unitofwork

import (
	"context"

	"wiccapedia-api/internal/repository/contract"
)

// UnitOfWork scopes repository access to one request. Repositories obtained
// after Begin share the transaction until Commit or Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NotebookRepository() contract.NotebookRepository
	CoverRepository() contract.CoverRepository
	DecorationRepository() contract.DecorationRepository
	GemRepository() contract.GemRepository
	EntityEventRepository() contract.EntityEventRepository
}
