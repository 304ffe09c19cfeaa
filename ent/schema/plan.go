package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	baseMixin "github.com/pacsflow/pacsflow/ent/schema/mixin"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/shopspring/decimal"
)

// Plan holds the schema definition for the Plan entity.
type Plan struct {
	ent.Schema
}

// Mixin of the Plan.
func (Plan) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the Plan.
func (Plan) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Unique().
			Immutable(),
		field.String("lookup_key").
			Optional(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Other("price", decimal.Decimal{}).
			Default(decimal.Zero).
			SchemaType(map[string]string{
				"postgres": "decimal(20,6)",
			}),
		field.String("currency").
			SchemaType(map[string]string{
				"postgres": "varchar(10)",
			}).
			NotEmpty(),
		field.String("billing_period").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Default(string(types.BillingPeriodMonthly)).
			GoType(types.BillingPeriod("")),
		field.Int("trial_days").
			Default(0),
		field.JSON("features", map[string]interface{}{}).
			Optional().
			SchemaType(map[string]string{
				"postgres": "jsonb",
			}),
	}
}
