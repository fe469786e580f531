package models

import "time"

// CompanyInfo is the single row describing the pizzeria itself.
type CompanyInfo struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         *string   `gorm:"column:nome_empresa;type:varchar(255)" json:"name"`
	Phone        *string   `gorm:"column:telefone_empresa;type:varchar(30)" json:"phone"`
	WhatsApp     *string   `gorm:"column:whatsapp_empresa;type:varchar(30)" json:"whatsapp"`
	PostalCode   *string   `gorm:"column:cep_empresa;type:varchar(10)" json:"postal_code"`
	Street       *string   `gorm:"column:rua_empresa;type:varchar(255)" json:"street"`
	Number       *string   `gorm:"column:numero_empresa;type:varchar(20)" json:"number"`
	Neighborhood *string   `gorm:"column:bairro_empresa;type:varchar(120)" json:"neighborhood"`
	City         *string   `gorm:"column:cidade_empresa;type:varchar(120)" json:"city"`
	Token        *string   `gorm:"column:token;type:varchar(255)" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func (CompanyInfo) TableName() string { return "empresa_info" }
