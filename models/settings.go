package models

import "time"

// BotSettings -> knobs of the WhatsApp ordering bot, single row.
type BotSettings struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	DeliveryMinutes *int      `gorm:"column:tempo_entrega_minutos" json:"delivery_minutes"`
	DelayMinutes    *int      `gorm:"column:tempo_atraso_minutos" json:"delay_minutes"`
	MaxDistanceKm   *float64  `gorm:"column:distancia_maxima" json:"max_distance_km"`
	ResponseMinutes int       `gorm:"column:tempo_resposta_minutos;not null;default:5" json:"response_minutes"`
	Status          *string   `gorm:"column:goodzap_status;type:varchar(20)" json:"status"`
	Session         *string   `gorm:"column:session;type:varchar(255)" json:"session"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
}

func (BotSettings) TableName() string { return "configuracoes_goodzap" }

type Greeting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"column:saudacao;type:text;not null" json:"text"`
	Active    *bool     `gorm:"column:ativa" json:"active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Greeting) TableName() string { return "saudacoes_goodzap" }

type AdminPhone struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	AttendantPhone *string   `gorm:"column:numero_atendente;type:varchar(30)" json:"attendant_phone"`
	ManagerPhone   *string   `gorm:"column:numero_gerente;type:varchar(30)" json:"manager_phone"`
	Active         *bool     `gorm:"column:ativa" json:"active"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
}

func (AdminPhone) TableName() string { return "telefones_admin_goodzap" }

// SpecialNumber -> contacts the bot must never answer automatically.
type SpecialNumber struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"column:nome;type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"column:telefone;type:varchar(30);not null" json:"phone"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (SpecialNumber) TableName() string { return "numeros_especiais" }
