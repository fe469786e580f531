package models

import "time"

// Order is an order placed through the WhatsApp bot. Items and Total are the
// free text the bot wrote, e.g. "2x Pizza Calabresa R$ 90,00" and "R$ 95,00".
type Order struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Code       string    `gorm:"column:codigo_pedido;type:varchar(50);not null" json:"code"`
	Name       string    `gorm:"column:nome;type:varchar(255);not null" json:"name"`
	WhatsApp   string    `gorm:"column:whatsapp;type:varchar(30);not null" json:"whatsapp"`
	Address    string    `gorm:"column:endereco;type:text;not null" json:"address"`
	PostalCode *string   `gorm:"column:cep;type:varchar(10)" json:"postal_code"`
	Items      string    `gorm:"column:pedido;type:text;not null" json:"items"`
	Notes      *string   `gorm:"column:observacoes;type:text" json:"notes"`
	Payment    *string   `gorm:"column:pagamento;type:varchar(100)" json:"payment"`
	Total      string    `gorm:"column:total;type:varchar(50);not null" json:"total"`
	Company    *string   `gorm:"column:empresa;type:varchar(255)" json:"company"`
	Session    string    `gorm:"column:sessao;type:varchar(255)" json:"-"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
}

func (Order) TableName() string { return "pedidos_goodzap" }
