package models

import "time"

// Pizza is a row of the menu ("cardapio"), one price per size.
type Pizza struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        *string   `gorm:"column:nome;type:varchar(255)" json:"name"`
	Ingredients *string   `gorm:"column:ingredientes;type:text" json:"ingredients"`
	PriceSmall  *float64  `gorm:"column:valor_pizza_broto_4_fatias;type:decimal(10,2)" json:"price_small"`
	PriceMedium *float64  `gorm:"column:valor_pizza_media_6_fatias;type:decimal(10,2)" json:"price_medium"`
	PriceLarge  *float64  `gorm:"column:valor_pizza_grande_8_fatias;type:decimal(10,2)" json:"price_large"`
	PriceGiant  *float64  `gorm:"column:valor_pizza_gigante_12_fatias;type:decimal(10,2)" json:"price_giant"`
	Available   bool      `gorm:"column:disponivel;not null;default:true" json:"available"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (Pizza) TableName() string { return "cardapio" }

type Drink struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      *string   `gorm:"column:nome;type:varchar(255)" json:"name"`
	Kind      *string   `gorm:"column:tipo;type:varchar(100)" json:"kind"`
	Size      *string   `gorm:"column:tamanho;type:varchar(50)" json:"size"`
	Price     *float64  `gorm:"column:valor;type:decimal(10,2)" json:"price"`
	Available bool      `gorm:"column:disponivel;not null;default:true" json:"available"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Drink) TableName() string { return "bebidas" }

// StuffedCrust -> extra charge for a stuffed crust, per pizza size.
type StuffedCrust struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PizzaSize *string   `gorm:"column:tamanho_pizza;type:varchar(50)" json:"pizza_size"`
	Price     *float64  `gorm:"column:valor_borda_recheada;type:decimal(10,2)" json:"price"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (StuffedCrust) TableName() string { return "borda_recheada" }
