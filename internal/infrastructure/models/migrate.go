package models

// All lists every table model, in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Case{},
		&Client{},
		&Fee{},
		&OTP{},
		&File{},
	}
}
