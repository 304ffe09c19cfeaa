package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	baseMixin "github.com/pacsflow/pacsflow/ent/schema/mixin"
)

// Page holds the schema definition for a tenant's public storefront pages.
// Rows live in the tenant's isolated database.
type Page struct {
	ent.Schema
}

// Mixin of the Page.
func (Page) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the Page.
func (Page) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Unique().
			Immutable(),
		field.String("slug").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.Text("body").
			Optional(),
		field.Bool("published").
			Default(false),
	}
}

// Indexes of the Page.
func (Page) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug").Unique(),
	}
}
