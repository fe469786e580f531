package models

// All lists every model, in migration order.
func All() []interface{} {
	return []interface{}{
		&CompanyInfo{},
		&BusinessHour{},
		&ExtraHour{},
		&Pizza{},
		&Drink{},
		&StuffedCrust{},
		&Promotion{},
		&BirthdayCampaign{},
		&RecoveryCampaign{},
		&BotSettings{},
		&Greeting{},
		&AdminPhone{},
		&SpecialNumber{},
		&FreightBand{},
		&Customer{},
		&Order{},
	}
}

// Ptr is a small helper for optional columns.
func Ptr[T any](v T) *T { return &v }
