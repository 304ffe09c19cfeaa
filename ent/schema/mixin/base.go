package mixin

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
	"github.com/pacsflow/pacsflow/internal/types"
)

// BaseMixin holds the common columns shared by all entities: owning tenant,
// soft-delete status and audit fields. tenant_id is empty for global catalog
// rows such as plans and bond companies.
type BaseMixin struct {
	mixin.Schema
}

// Fields of the BaseMixin.
func (BaseMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("tenant_id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Optional().
			Immutable(),
		field.String("status").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Default(string(types.StatusPublished)),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("created_by").
			Optional(),
		field.String("updated_by").
			Optional(),
	}
}

// Indexes of the BaseMixin.
func (BaseMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "status"),
	}
}
