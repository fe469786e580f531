package models

import "time"

// BusinessHour -> one row per weekday, keyed by weekday id (0 = Sunday).
type BusinessHour struct {
	WeekdayID   int       `gorm:"column:dia_semana_id;primaryKey;autoIncrement:false" json:"weekday_id"`
	WeekdayName string    `gorm:"column:dia_semana_nome;type:varchar(30);not null" json:"weekday_name"`
	OpensAt     string    `gorm:"column:abre_as;type:varchar(5);not null" json:"opens_at"`
	ClosesAt    string    `gorm:"column:fecha_as;type:varchar(5);not null" json:"closes_at"`
	Active      bool      `gorm:"column:ativo;not null;default:true" json:"active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (BusinessHour) TableName() string { return "horario_empresa_goodzap" }

// ExtraHour -> free-form schedule notes (holidays, special openings).
type ExtraHour struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Schedule  string    `gorm:"column:horario;type:varchar(255);not null" json:"schedule"`
	Details   *string   `gorm:"column:detalhes;type:text" json:"details"`
	Active    *bool     `gorm:"column:ativa" json:"active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (ExtraHour) TableName() string { return "horarios_goodzap" }

// Weekdays in the order the bot expects them.
var Weekdays = []struct {
	ID   int
	Name string
}{
	{0, "Domingo"},
	{1, "Segunda-feira"},
	{2, "Terça-feira"},
	{3, "Quarta-feira"},
	{4, "Quinta-feira"},
	{5, "Sexta-feira"},
	{6, "Sábado"},
}
