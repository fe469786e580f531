package models

import "time"

// CustomersTable can be pointed at a per-tenant copy of the customers table.
var CustomersTable = "clientes"

type Customer struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          *string    `gorm:"column:nome;type:varchar(255)" json:"name"`
	WhatsApp      *string    `gorm:"column:whatsapp;type:varchar(30)" json:"whatsapp"`
	Code          *string    `gorm:"column:codigo;type:varchar(50)" json:"code"`
	PostalCode    *string    `gorm:"column:cep;type:varchar(10)" json:"postal_code"`
	Street        *string    `gorm:"column:rua;type:varchar(255)" json:"street"`
	Number        *string    `gorm:"column:numero;type:varchar(20)" json:"number"`
	Complement    *string    `gorm:"column:complemento;type:varchar(255)" json:"complement"`
	Neighborhood  *string    `gorm:"column:bairro;type:varchar(120)" json:"neighborhood"`
	City          *string    `gorm:"column:cidade;type:varchar(120)" json:"city"`
	State         *string    `gorm:"column:estado;type:varchar(30)" json:"state"`
	Birthday      *string    `gorm:"column:aniversario;type:varchar(20)" json:"birthday"`
	Purchases     *int       `gorm:"column:compras" json:"purchases"`
	TotalSpent    *float64   `gorm:"column:total_gasto" json:"total_spent"`
	LastPurchase  *string    `gorm:"column:ultima_compra;type:varchar(40)" json:"last_purchase"`
	LastOrder     *string    `gorm:"column:ultimo_pedido;type:text" json:"last_order"`
	Status        *string    `gorm:"column:status;type:varchar(20)" json:"status"`
	DistanceKm    *float64   `gorm:"column:distancia" json:"distance_km"`
	DeliveryFee   *float64   `gorm:"column:valor_frete" json:"delivery_fee"`
	LastUpdatedAt *time.Time `gorm:"column:ultima_atualizacao" json:"last_updated_at"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
}

func (Customer) TableName() string { return CustomersTable }
