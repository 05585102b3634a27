package model

import (
	"time"

	"github.com/google/uuid"
)

// Gem keeps accent-folded copies of its searchable columns so filtering can
// run in SQL on every driver.
type Gem struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Image              string    `gorm:"type:varchar(512);not null"`
	MagicalDescription string    `gorm:"type:text;not null"`
	Category           string    `gorm:"type:varchar(255);not null"`
	Color              string    `gorm:"type:varchar(255);not null"`
	ChemicalFormula    string    `gorm:"type:varchar(255);not null"`
	CategoryKey        string    `gorm:"type:varchar(255);not null;index"`
	ColorKey           string    `gorm:"type:varchar(255);not null;index"`
	FormulaKey         string    `gorm:"type:varchar(255);not null;index"`
	SearchText         string    `gorm:"type:text;not null"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (Gem) TableName() string {
	return "gems"
}
