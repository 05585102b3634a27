package unitofwork

import (
	"context"
	"fmt"

	"wiccapedia-api/internal/pkg/apperror"
	"wiccapedia-api/internal/repository/contract"
	"wiccapedia-api/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return apperror.Storage(tx.Error)
	}
	u.tx = tx
	return nil
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return apperror.FromStorage(err)
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) NotebookRepository() contract.NotebookRepository {
	return implementation.NewNotebookRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CoverRepository() contract.CoverRepository {
	return implementation.NewCoverRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DecorationRepository() contract.DecorationRepository {
	return implementation.NewDecorationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GemRepository() contract.GemRepository {
	return implementation.NewGemRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EntityEventRepository() contract.EntityEventRepository {
	return implementation.NewEntityEventRepository(u.getDB())
}
