package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FreightBand -> delivery fee for distances between KmStart and KmEnd (inclusive).
type FreightBand struct {
	ID        string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	KmStart   float64    `gorm:"column:km_inicial;not null" json:"km_start"`
	KmEnd     float64    `gorm:"column:km_final;not null" json:"km_end"`
	Fee       float64    `gorm:"column:valor;type:decimal(10,2);not null" json:"fee"`
	CreatedAt *time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (FreightBand) TableName() string { return "faixas_frete" }

func (f *FreightBand) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
