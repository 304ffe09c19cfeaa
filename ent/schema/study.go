package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	baseMixin "github.com/pacsflow/pacsflow/ent/schema/mixin"
)

// Study holds the schema definition for the DICOM study registry.
// Rows live in the tenant's isolated database; pixel data stays in the
// external archive.
type Study struct {
	ent.Schema
}

// Mixin of the Study.
func (Study) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the Study.
func (Study) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Unique().
			Immutable(),
		field.String("study_uid").
			SchemaType(map[string]string{
				"postgres": "varchar(64)",
			}).
			NotEmpty().
			Immutable(),
		field.String("patient_name").
			Optional(),
		field.String("patient_id").
			Optional(),
		field.String("modality").
			SchemaType(map[string]string{
				"postgres": "varchar(16)",
			}).
			Optional(),
		field.String("accession_number").
			Optional(),
		field.Time("study_date").
			Default(time.Now),
		field.String("description").
			Optional(),
	}
}

// Indexes of the Study.
func (Study) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("study_uid").Unique(),
		index.Fields("patient_id"),
	}
}
