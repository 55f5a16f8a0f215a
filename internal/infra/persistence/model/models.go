// Package model holds the GORM table mappings for the persistence layer.
package model

// All lists every table model in migration order.
func All() []any {
	return []any{
		&AdminModel{},
		&StudentModel{},
		&ExperienceModel{},
		&StudentDocumentsModel{},
	}
}
