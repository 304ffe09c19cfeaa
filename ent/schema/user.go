package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	baseMixin "github.com/pacsflow/pacsflow/ent/schema/mixin"
	"github.com/pacsflow/pacsflow/internal/types"
)

// User holds the schema definition for users of a tenant's admin console.
// Rows live in the tenant's isolated database.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Unique().
			Immutable(),
		field.String("email").
			NotEmpty(),
		field.String("name").
			Optional(),
		field.String("role").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Default(string(types.UserRoleStaff)).
			GoType(types.UserRole("")),
		field.Bool("enabled").
			Default(true),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}
