// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pacsflow/pacsflow/ent/predicate"
	"github.com/pacsflow/pacsflow/ent/study"
)

// StudyUpdate is the builder for updating Study entities.
type StudyUpdate struct {
	config
	hooks    []Hook
	mutation *StudyMutation
}

// Where appends a list predicates to the StudyUpdate builder.
func (su *StudyUpdate) Where(ps ...predicate.Study) *StudyUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetStatus sets the "status" field.
func (su *StudyUpdate) SetStatus(s string) *StudyUpdate {
	su.mutation.SetStatus(s)
	return su
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (su *StudyUpdate) SetNillableStatus(s *string) *StudyUpdate {
	if s != nil {
		su.SetStatus(*s)
	}
	return su
}

// SetUpdatedAt sets the "updated_at" field.
func (su *StudyUpdate) SetUpdatedAt(t time.Time) *StudyUpdate {
	su.mutation.SetUpdatedAt(t)
	return su
}

// SetCreatedBy sets the "created_by" field.
func (su *StudyUpdate) SetCreatedBy(s string) *StudyUpdate {
	su.mutation.SetCreatedBy(s)
	return su
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (su *StudyUpdate) SetNillableCreatedBy(s *string) *StudyUpdate {
	if s != nil {
		su.SetCreatedBy(*s)
	}
	return su
}

// ClearCreatedBy clears the value of the "created_by" field.
func (su *StudyUpdate) ClearCreatedBy() *StudyUpdate {
	su.mutation.ClearCreatedBy()
	return su
}

// SetUpdatedBy sets the "updated_by" field.
func (su *StudyUpdate) SetUpdatedBy(s string) *StudyUpdate {
	su.mutation.SetUpdatedBy(s)
	return su
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (su *StudyUpdate) SetNillableUpdatedBy(s *string) *StudyUpdate {
	if s != nil {
		su.SetUpdatedBy(*s)
	}
	return su
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (su *StudyUpdate) ClearUpdatedBy() *StudyUpdate {
	su.mutation.ClearUpdatedBy()
	return su
}

// SetPatientName sets the "patient_name" field.
func (su *StudyUpdate) SetPatientName(s string) *StudyUpdate {
	su.mutation.SetPatientName(s)
	return su
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (su *StudyUpdate) SetNillablePatientName(s *string) *StudyUpdate {
	if s != nil {
		su.SetPatientName(*s)
	}
	return su
}

// ClearPatientName clears the value of the "patient_name" field.
func (su *StudyUpdate) ClearPatientName() *StudyUpdate {
	su.mutation.ClearPatientName()
	return su
}

// SetPatientID sets the "patient_id" field.
func (su *StudyUpdate) SetPatientID(s string) *StudyUpdate {
	su.mutation.SetPatientID(s)
	return su
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (su *StudyUpdate) SetNillablePatientID(s *string) *StudyUpdate {
	if s != nil {
		su.SetPatientID(*s)
	}
	return su
}

// ClearPatientID clears the value of the "patient_id" field.
func (su *StudyUpdate) ClearPatientID() *StudyUpdate {
	su.mutation.ClearPatientID()
	return su
}

// SetModality sets the "modality" field.
func (su *StudyUpdate) SetModality(s string) *StudyUpdate {
	su.mutation.SetModality(s)
	return su
}

// SetNillableModality sets the "modality" field if the given value is not nil.
func (su *StudyUpdate) SetNillableModality(s *string) *StudyUpdate {
	if s != nil {
		su.SetModality(*s)
	}
	return su
}

// ClearModality clears the value of the "modality" field.
func (su *StudyUpdate) ClearModality() *StudyUpdate {
	su.mutation.ClearModality()
	return su
}

// SetAccessionNumber sets the "accession_number" field.
func (su *StudyUpdate) SetAccessionNumber(s string) *StudyUpdate {
	su.mutation.SetAccessionNumber(s)
	return su
}

// SetNillableAccessionNumber sets the "accession_number" field if the given value is not nil.
func (su *StudyUpdate) SetNillableAccessionNumber(s *string) *StudyUpdate {
	if s != nil {
		su.SetAccessionNumber(*s)
	}
	return su
}

// ClearAccessionNumber clears the value of the "accession_number" field.
func (su *StudyUpdate) ClearAccessionNumber() *StudyUpdate {
	su.mutation.ClearAccessionNumber()
	return su
}

// SetStudyDate sets the "study_date" field.
func (su *StudyUpdate) SetStudyDate(t time.Time) *StudyUpdate {
	su.mutation.SetStudyDate(t)
	return su
}

// SetNillableStudyDate sets the "study_date" field if the given value is not nil.
func (su *StudyUpdate) SetNillableStudyDate(t *time.Time) *StudyUpdate {
	if t != nil {
		su.SetStudyDate(*t)
	}
	return su
}

// SetDescription sets the "description" field.
func (su *StudyUpdate) SetDescription(s string) *StudyUpdate {
	su.mutation.SetDescription(s)
	return su
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (su *StudyUpdate) SetNillableDescription(s *string) *StudyUpdate {
	if s != nil {
		su.SetDescription(*s)
	}
	return su
}

// ClearDescription clears the value of the "description" field.
func (su *StudyUpdate) ClearDescription() *StudyUpdate {
	su.mutation.ClearDescription()
	return su
}

// Mutation returns the StudyMutation object of the builder.
func (su *StudyUpdate) Mutation() *StudyMutation {
	return su.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *StudyUpdate) Save(ctx context.Context) (int, error) {
	su.defaults()
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *StudyUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *StudyUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *StudyUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (su *StudyUpdate) defaults() {
	if _, ok := su.mutation.UpdatedAt(); !ok {
		v := study.UpdateDefaultUpdatedAt()
		su.mutation.SetUpdatedAt(v)
	}
}

func (su *StudyUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(study.Table, study.Columns, sqlgraph.NewFieldSpec(study.FieldID, field.TypeString))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if su.mutation.TenantIDCleared() {
		_spec.ClearField(study.FieldTenantID, field.TypeString)
	}
	if value, ok := su.mutation.Status(); ok {
		_spec.SetField(study.FieldStatus, field.TypeString, value)
	}
	if value, ok := su.mutation.UpdatedAt(); ok {
		_spec.SetField(study.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := su.mutation.CreatedBy(); ok {
		_spec.SetField(study.FieldCreatedBy, field.TypeString, value)
	}
	if su.mutation.CreatedByCleared() {
		_spec.ClearField(study.FieldCreatedBy, field.TypeString)
	}
	if value, ok := su.mutation.UpdatedBy(); ok {
		_spec.SetField(study.FieldUpdatedBy, field.TypeString, value)
	}
	if su.mutation.UpdatedByCleared() {
		_spec.ClearField(study.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := su.mutation.PatientName(); ok {
		_spec.SetField(study.FieldPatientName, field.TypeString, value)
	}
	if su.mutation.PatientNameCleared() {
		_spec.ClearField(study.FieldPatientName, field.TypeString)
	}
	if value, ok := su.mutation.PatientID(); ok {
		_spec.SetField(study.FieldPatientID, field.TypeString, value)
	}
	if su.mutation.PatientIDCleared() {
		_spec.ClearField(study.FieldPatientID, field.TypeString)
	}
	if value, ok := su.mutation.Modality(); ok {
		_spec.SetField(study.FieldModality, field.TypeString, value)
	}
	if su.mutation.ModalityCleared() {
		_spec.ClearField(study.FieldModality, field.TypeString)
	}
	if value, ok := su.mutation.AccessionNumber(); ok {
		_spec.SetField(study.FieldAccessionNumber, field.TypeString, value)
	}
	if su.mutation.AccessionNumberCleared() {
		_spec.ClearField(study.FieldAccessionNumber, field.TypeString)
	}
	if value, ok := su.mutation.StudyDate(); ok {
		_spec.SetField(study.FieldStudyDate, field.TypeTime, value)
	}
	if value, ok := su.mutation.Description(); ok {
		_spec.SetField(study.FieldDescription, field.TypeString, value)
	}
	if su.mutation.DescriptionCleared() {
		_spec.ClearField(study.FieldDescription, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{study.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// StudyUpdateOne is the builder for updating a single Study entity.
type StudyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyMutation
}

// SetStatus sets the "status" field.
func (suo *StudyUpdateOne) SetStatus(s string) *StudyUpdateOne {
	suo.mutation.SetStatus(s)
	return suo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (suo *StudyUpdateOne) SetNillableStatus(s *string) *StudyUpdateOne {
	if s != nil {
		suo.SetStatus(*s)
	}
	return suo
}

// SetUpdatedAt sets the "updated_at" field.
func (suo *StudyUpdateOne) SetUpdatedAt(t time.Time) *StudyUpdateOne {
	suo.mutation.SetUpdatedAt(t)
	return suo
}

// SetCreatedBy sets the "created_by" field.
func (suo *StudyUpdateOne) SetCreatedBy(s string) *StudyUpdateOne {
	suo.mutation.SetCreatedBy(s)
	return suo
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (suo *StudyUpdateOne) SetNillableCreatedBy(s *string) *StudyUpdateOne {
	if s != nil {
		suo.SetCreatedBy(*s)
	}
	return suo
}

// ClearCreatedBy clears the value of the "created_by" field.
func (suo *StudyUpdateOne) ClearCreatedBy() *StudyUpdateOne {
	suo.mutation.ClearCreatedBy()
	return suo
}

// SetUpdatedBy sets the "updated_by" field.
func (suo *StudyUpdateOne) SetUpdatedBy(s string) *StudyUpdateOne {
	suo.mutation.SetUpdatedBy(s)
	return suo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (suo *StudyUpdateOne) SetNillableUpdatedBy(s *string) *StudyUpdateOne {
	if s != nil {
		suo.SetUpdatedBy(*s)
	}
	return suo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (suo *StudyUpdateOne) ClearUpdatedBy() *StudyUpdateOne {
	suo.mutation.ClearUpdatedBy()
	return suo
}

// SetPatientName sets the "patient_name" field.
func (suo *StudyUpdateOne) SetPatientName(s string) *StudyUpdateOne {
	suo.mutation.SetPatientName(s)
	return suo
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (suo *StudyUpdateOne) SetNillablePatientName(s *string) *StudyUpdateOne {
	if s != nil {
		suo.SetPatientName(*s)
	}
	return suo
}

// ClearPatientName clears the value of the "patient_name" field.
func (suo *StudyUpdateOne) ClearPatientName() *StudyUpdateOne {
	suo.mutation.ClearPatientName()
	return suo
}

// SetPatientID sets the "patient_id" field.
func (suo *StudyUpdateOne) SetPatientID(s string) *StudyUpdateOne {
	suo.mutation.SetPatientID(s)
	return suo
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (suo *StudyUpdateOne) SetNillablePatientID(s *string) *StudyUpdateOne {
	if s != nil {
		suo.SetPatientID(*s)
	}
	return suo
}

// ClearPatientID clears the value of the "patient_id" field.
func (suo *StudyUpdateOne) ClearPatientID() *StudyUpdateOne {
	suo.mutation.ClearPatientID()
	return suo
}

// SetModality sets the "modality" field.
func (suo *StudyUpdateOne) SetModality(s string) *StudyUpdateOne {
	suo.mutation.SetModality(s)
	return suo
}

// SetNillableModality sets the "modality" field if the given value is not nil.
func (suo *StudyUpdateOne) SetNillableModality(s *string) *StudyUpdateOne {
	if s != nil {
		suo.SetModality(*s)
	}
	return suo
}

// ClearModality clears the value of the "modality" field.
func (suo *StudyUpdateOne) ClearModality() *StudyUpdateOne {
	suo.mutation.ClearModality()
	return suo
}

// SetAccessionNumber sets the "accession_number" field.
func (suo *StudyUpdateOne) SetAccessionNumber(s string) *StudyUpdateOne {
	suo.mutation.SetAccessionNumber(s)
	return suo
}

// SetNillableAccessionNumber sets the "accession_number" field if the given value is not nil.
func (suo *StudyUpdateOne) SetNillableAccessionNumber(s *string) *StudyUpdateOne {
	if s != nil {
		suo.SetAccessionNumber(*s)
	}
	return suo
}

// ClearAccessionNumber clears the value of the "accession_number" field.
func (suo *StudyUpdateOne) ClearAccessionNumber() *StudyUpdateOne {
	suo.mutation.ClearAccessionNumber()
	return suo
}

// SetStudyDate sets the "study_date" field.
func (suo *StudyUpdateOne) SetStudyDate(t time.Time) *StudyUpdateOne {
	suo.mutation.SetStudyDate(t)
	return suo
}

// SetNillableStudyDate sets the "study_date" field if the given value is not nil.
func (suo *StudyUpdateOne) SetNillableStudyDate(t *time.Time) *StudyUpdateOne {
	if t != nil {
		suo.SetStudyDate(*t)
	}
	return suo
}

// SetDescription sets the "description" field.
func (suo *StudyUpdateOne) SetDescription(s string) *StudyUpdateOne {
	suo.mutation.SetDescription(s)
	return suo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (suo *StudyUpdateOne) SetNillableDescription(s *string) *StudyUpdateOne {
	if s != nil {
		suo.SetDescription(*s)
	}
	return suo
}

// ClearDescription clears the value of the "description" field.
func (suo *StudyUpdateOne) ClearDescription() *StudyUpdateOne {
	suo.mutation.ClearDescription()
	return suo
}

// Mutation returns the StudyMutation object of the builder.
func (suo *StudyUpdateOne) Mutation() *StudyMutation {
	return suo.mutation
}

// Where appends a list predicates to the StudyUpdate builder.
func (suo *StudyUpdateOne) Where(ps ...predicate.Study) *StudyUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *StudyUpdateOne) Select(field string, fields ...string) *StudyUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Study entity.
func (suo *StudyUpdateOne) Save(ctx context.Context) (*Study, error) {
	suo.defaults()
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *StudyUpdateOne) SaveX(ctx context.Context) *Study {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *StudyUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *StudyUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (suo *StudyUpdateOne) defaults() {
	if _, ok := suo.mutation.UpdatedAt(); !ok {
		v := study.UpdateDefaultUpdatedAt()
		suo.mutation.SetUpdatedAt(v)
	}
}

func (suo *StudyUpdateOne) sqlSave(ctx context.Context) (_node *Study, err error) {
	_spec := sqlgraph.NewUpdateSpec(study.Table, study.Columns, sqlgraph.NewFieldSpec(study.FieldID, field.TypeString))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Study.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, study.FieldID)
		for _, f := range fields {
			if !study.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != study.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if suo.mutation.TenantIDCleared() {
		_spec.ClearField(study.FieldTenantID, field.TypeString)
	}
	if value, ok := suo.mutation.Status(); ok {
		_spec.SetField(study.FieldStatus, field.TypeString, value)
	}
	if value, ok := suo.mutation.UpdatedAt(); ok {
		_spec.SetField(study.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := suo.mutation.CreatedBy(); ok {
		_spec.SetField(study.FieldCreatedBy, field.TypeString, value)
	}
	if suo.mutation.CreatedByCleared() {
		_spec.ClearField(study.FieldCreatedBy, field.TypeString)
	}
	if value, ok := suo.mutation.UpdatedBy(); ok {
		_spec.SetField(study.FieldUpdatedBy, field.TypeString, value)
	}
	if suo.mutation.UpdatedByCleared() {
		_spec.ClearField(study.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := suo.mutation.PatientName(); ok {
		_spec.SetField(study.FieldPatientName, field.TypeString, value)
	}
	if suo.mutation.PatientNameCleared() {
		_spec.ClearField(study.FieldPatientName, field.TypeString)
	}
	if value, ok := suo.mutation.PatientID(); ok {
		_spec.SetField(study.FieldPatientID, field.TypeString, value)
	}
	if suo.mutation.PatientIDCleared() {
		_spec.ClearField(study.FieldPatientID, field.TypeString)
	}
	if value, ok := suo.mutation.Modality(); ok {
		_spec.SetField(study.FieldModality, field.TypeString, value)
	}
	if suo.mutation.ModalityCleared() {
		_spec.ClearField(study.FieldModality, field.TypeString)
	}
	if value, ok := suo.mutation.AccessionNumber(); ok {
		_spec.SetField(study.FieldAccessionNumber, field.TypeString, value)
	}
	if suo.mutation.AccessionNumberCleared() {
		_spec.ClearField(study.FieldAccessionNumber, field.TypeString)
	}
	if value, ok := suo.mutation.StudyDate(); ok {
		_spec.SetField(study.FieldStudyDate, field.TypeTime, value)
	}
	if value, ok := suo.mutation.Description(); ok {
		_spec.SetField(study.FieldDescription, field.TypeString, value)
	}
	if suo.mutation.DescriptionCleared() {
		_spec.ClearField(study.FieldDescription, field.TypeString)
	}
	_node = &Study{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{study.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}
