package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	baseMixin "github.com/pacsflow/pacsflow/ent/schema/mixin"
)

// BondCompany holds the schema definition for the shared catalog lookup of
// security bond companies.
type BondCompany struct {
	ent.Schema
}

// Mixin of the BondCompany.
func (BondCompany) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the BondCompany.
func (BondCompany) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Unique().
			Immutable(),
		field.String("code").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			NotEmpty().
			Unique(),
		field.String("name").
			NotEmpty(),
		field.String("address").
			Optional(),
		field.String("phone").
			Optional(),
	}
}
