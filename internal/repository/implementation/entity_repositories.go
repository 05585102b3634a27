package implementation

import (
	"wiccapedia-api/internal/entity"
	"wiccapedia-api/internal/mapper"
	"wiccapedia-api/internal/model"
	"wiccapedia-api/internal/repository/contract"

	"gorm.io/gorm"
)

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return NewGormRepository[entity.User, model.User, int64](db, "user", mapper.NewUserMapper())
}

func NewNotebookRepository(db *gorm.DB) contract.NotebookRepository {
	return NewGormRepository[entity.Notebook, model.Notebook, int64](db, "notebook", mapper.NewNotebookMapper())
}

func NewCoverRepository(db *gorm.DB) contract.CoverRepository {
	return NewGormRepository[entity.Cover, model.Cover, int64](db, "cover", mapper.NewCoverMapper())
}

func NewDecorationRepository(db *gorm.DB) contract.DecorationRepository {
	return NewGormRepository[entity.Decoration, model.Decoration, int64](db, "decoration", mapper.NewDecorationMapper())
}
