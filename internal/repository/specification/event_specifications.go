package specification

import "gorm.io/gorm"

type ByEntity struct {
	Entity string
}

func (s ByEntity) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entity = ?", s.Entity)
}
