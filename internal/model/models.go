package model

// All lists every table in migration order (parents before children)
func All() []interface{} {
	return []interface{}{
		&Platform{},
		&Feature{},
		&Comparison{},
	}
}
