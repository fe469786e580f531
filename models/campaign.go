package models

import "time"

type Promotion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"column:promocao;type:varchar(255);not null" json:"title"`
	Rules     *string   `gorm:"column:regras;type:text" json:"rules"`
	Active    *bool     `gorm:"column:ativa" json:"active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Promotion) TableName() string { return "promocoes_goodzap" }

// BirthdayCampaign -> up to three messages sent to customers on their birthday.
type BirthdayCampaign struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Message1     *string   `gorm:"column:mensagem_1;type:text" json:"message_1"`
	Message2     *string   `gorm:"column:mensagem_2;type:text" json:"message_2"`
	Message3     *string   `gorm:"column:mensagem_3;type:text" json:"message_3"`
	MessageCount *int      `gorm:"column:quant_msg" json:"message_count"`
	Status       *string   `gorm:"column:status;type:varchar(20)" json:"status"`
	Sent         *string   `gorm:"column:enviado;type:varchar(20)" json:"sent"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func (BirthdayCampaign) TableName() string { return "promocao_aniversario" }

// RecoveryCampaign -> win-back message for customers who stopped ordering.
type RecoveryCampaign struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Message         *string    `gorm:"column:mensagem;type:text" json:"message"`
	Promotion       *string    `gorm:"column:promocao;type:text" json:"promotion"`
	StartDate       *time.Time `gorm:"column:data_inicio" json:"start_date"`
	EndDate         *time.Time `gorm:"column:data_final" json:"end_date"`
	Status          *string    `gorm:"column:status;type:varchar(20)" json:"status"`
	PromotionActive *string    `gorm:"column:ativa_promocao;type:varchar(5)" json:"promotion_active"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
}

func (RecoveryCampaign) TableName() string { return "recuperacao_clientes" }
