// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pacsflow/pacsflow/ent/study"
)

// StudyCreate is the builder for creating a Study entity.
type StudyCreate struct {
	config
	mutation *StudyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (sc *StudyCreate) SetTenantID(s string) *StudyCreate {
	sc.mutation.SetTenantID(s)
	return sc
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (sc *StudyCreate) SetNillableTenantID(s *string) *StudyCreate {
	if s != nil {
		sc.SetTenantID(*s)
	}
	return sc
}

// SetStatus sets the "status" field.
func (sc *StudyCreate) SetStatus(s string) *StudyCreate {
	sc.mutation.SetStatus(s)
	return sc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (sc *StudyCreate) SetNillableStatus(s *string) *StudyCreate {
	if s != nil {
		sc.SetStatus(*s)
	}
	return sc
}

// SetCreatedAt sets the "created_at" field.
func (sc *StudyCreate) SetCreatedAt(t time.Time) *StudyCreate {
	sc.mutation.SetCreatedAt(t)
	return sc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (sc *StudyCreate) SetNillableCreatedAt(t *time.Time) *StudyCreate {
	if t != nil {
		sc.SetCreatedAt(*t)
	}
	return sc
}

// SetUpdatedAt sets the "updated_at" field.
func (sc *StudyCreate) SetUpdatedAt(t time.Time) *StudyCreate {
	sc.mutation.SetUpdatedAt(t)
	return sc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (sc *StudyCreate) SetNillableUpdatedAt(t *time.Time) *StudyCreate {
	if t != nil {
		sc.SetUpdatedAt(*t)
	}
	return sc
}

// SetCreatedBy sets the "created_by" field.
func (sc *StudyCreate) SetCreatedBy(s string) *StudyCreate {
	sc.mutation.SetCreatedBy(s)
	return sc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (sc *StudyCreate) SetNillableCreatedBy(s *string) *StudyCreate {
	if s != nil {
		sc.SetCreatedBy(*s)
	}
	return sc
}

// SetUpdatedBy sets the "updated_by" field.
func (sc *StudyCreate) SetUpdatedBy(s string) *StudyCreate {
	sc.mutation.SetUpdatedBy(s)
	return sc
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (sc *StudyCreate) SetNillableUpdatedBy(s *string) *StudyCreate {
	if s != nil {
		sc.SetUpdatedBy(*s)
	}
	return sc
}

// SetStudyUID sets the "study_uid" field.
func (sc *StudyCreate) SetStudyUID(s string) *StudyCreate {
	sc.mutation.SetStudyUID(s)
	return sc
}

// SetPatientName sets the "patient_name" field.
func (sc *StudyCreate) SetPatientName(s string) *StudyCreate {
	sc.mutation.SetPatientName(s)
	return sc
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (sc *StudyCreate) SetNillablePatientName(s *string) *StudyCreate {
	if s != nil {
		sc.SetPatientName(*s)
	}
	return sc
}

// SetPatientID sets the "patient_id" field.
func (sc *StudyCreate) SetPatientID(s string) *StudyCreate {
	sc.mutation.SetPatientID(s)
	return sc
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (sc *StudyCreate) SetNillablePatientID(s *string) *StudyCreate {
	if s != nil {
		sc.SetPatientID(*s)
	}
	return sc
}

// SetModality sets the "modality" field.
func (sc *StudyCreate) SetModality(s string) *StudyCreate {
	sc.mutation.SetModality(s)
	return sc
}

// SetNillableModality sets the "modality" field if the given value is not nil.
func (sc *StudyCreate) SetNillableModality(s *string) *StudyCreate {
	if s != nil {
		sc.SetModality(*s)
	}
	return sc
}

// SetAccessionNumber sets the "accession_number" field.
func (sc *StudyCreate) SetAccessionNumber(s string) *StudyCreate {
	sc.mutation.SetAccessionNumber(s)
	return sc
}

// SetNillableAccessionNumber sets the "accession_number" field if the given value is not nil.
func (sc *StudyCreate) SetNillableAccessionNumber(s *string) *StudyCreate {
	if s != nil {
		sc.SetAccessionNumber(*s)
	}
	return sc
}

// SetStudyDate sets the "study_date" field.
func (sc *StudyCreate) SetStudyDate(t time.Time) *StudyCreate {
	sc.mutation.SetStudyDate(t)
	return sc
}

// SetNillableStudyDate sets the "study_date" field if the given value is not nil.
func (sc *StudyCreate) SetNillableStudyDate(t *time.Time) *StudyCreate {
	if t != nil {
		sc.SetStudyDate(*t)
	}
	return sc
}

// SetDescription sets the "description" field.
func (sc *StudyCreate) SetDescription(s string) *StudyCreate {
	sc.mutation.SetDescription(s)
	return sc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (sc *StudyCreate) SetNillableDescription(s *string) *StudyCreate {
	if s != nil {
		sc.SetDescription(*s)
	}
	return sc
}

// SetID sets the "id" field.
func (sc *StudyCreate) SetID(s string) *StudyCreate {
	sc.mutation.SetID(s)
	return sc
}

// Mutation returns the StudyMutation object of the builder.
func (sc *StudyCreate) Mutation() *StudyMutation {
	return sc.mutation
}

// Save creates the Study in the database.
func (sc *StudyCreate) Save(ctx context.Context) (*Study, error) {
	sc.defaults()
	return withHooks(ctx, sc.sqlSave, sc.mutation, sc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sc *StudyCreate) SaveX(ctx context.Context) *Study {
	v, err := sc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sc *StudyCreate) Exec(ctx context.Context) error {
	_, err := sc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sc *StudyCreate) ExecX(ctx context.Context) {
	if err := sc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sc *StudyCreate) defaults() {
	if _, ok := sc.mutation.Status(); !ok {
		v := study.DefaultStatus
		sc.mutation.SetStatus(v)
	}
	if _, ok := sc.mutation.CreatedAt(); !ok {
		v := study.DefaultCreatedAt()
		sc.mutation.SetCreatedAt(v)
	}
	if _, ok := sc.mutation.UpdatedAt(); !ok {
		v := study.DefaultUpdatedAt()
		sc.mutation.SetUpdatedAt(v)
	}
	if _, ok := sc.mutation.StudyDate(); !ok {
		v := study.DefaultStudyDate()
		sc.mutation.SetStudyDate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sc *StudyCreate) check() error {
	if _, ok := sc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Study.status"`)}
	}
	if _, ok := sc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Study.created_at"`)}
	}
	if _, ok := sc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Study.updated_at"`)}
	}
	if _, ok := sc.mutation.StudyUID(); !ok {
		return &ValidationError{Name: "study_uid", err: errors.New(`ent: missing required field "Study.study_uid"`)}
	}
	if v, ok := sc.mutation.StudyUID(); ok {
		if err := study.StudyUIDValidator(v); err != nil {
			return &ValidationError{Name: "study_uid", err: fmt.Errorf(`ent: validator failed for field "Study.study_uid": %w`, err)}
		}
	}
	if _, ok := sc.mutation.StudyDate(); !ok {
		return &ValidationError{Name: "study_date", err: errors.New(`ent: missing required field "Study.study_date"`)}
	}
	return nil
}

func (sc *StudyCreate) sqlSave(ctx context.Context) (*Study, error) {
	if err := sc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Study.ID type: %T", _spec.ID.Value)
		}
	}
	sc.mutation.id = &_node.ID
	sc.mutation.done = true
	return _node, nil
}

func (sc *StudyCreate) createSpec() (*Study, *sqlgraph.CreateSpec) {
	var (
		_node = &Study{config: sc.config}
		_spec = sqlgraph.NewCreateSpec(study.Table, sqlgraph.NewFieldSpec(study.FieldID, field.TypeString))
	)
	_spec.OnConflict = sc.conflict
	if id, ok := sc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := sc.mutation.TenantID(); ok {
		_spec.SetField(study.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := sc.mutation.Status(); ok {
		_spec.SetField(study.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := sc.mutation.CreatedAt(); ok {
		_spec.SetField(study.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := sc.mutation.UpdatedAt(); ok {
		_spec.SetField(study.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := sc.mutation.CreatedBy(); ok {
		_spec.SetField(study.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := sc.mutation.UpdatedBy(); ok {
		_spec.SetField(study.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := sc.mutation.StudyUID(); ok {
		_spec.SetField(study.FieldStudyUID, field.TypeString, value)
		_node.StudyUID = value
	}
	if value, ok := sc.mutation.PatientName(); ok {
		_spec.SetField(study.FieldPatientName, field.TypeString, value)
		_node.PatientName = value
	}
	if value, ok := sc.mutation.PatientID(); ok {
		_spec.SetField(study.FieldPatientID, field.TypeString, value)
		_node.PatientID = value
	}
	if value, ok := sc.mutation.Modality(); ok {
		_spec.SetField(study.FieldModality, field.TypeString, value)
		_node.Modality = value
	}
	if value, ok := sc.mutation.AccessionNumber(); ok {
		_spec.SetField(study.FieldAccessionNumber, field.TypeString, value)
		_node.AccessionNumber = value
	}
	if value, ok := sc.mutation.StudyDate(); ok {
		_spec.SetField(study.FieldStudyDate, field.TypeTime, value)
		_node.StudyDate = value
	}
	if value, ok := sc.mutation.Description(); ok {
		_spec.SetField(study.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Study.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudyUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (sc *StudyCreate) OnConflict(opts ...sql.ConflictOption) *StudyUpsertOne {
	sc.conflict = opts
	return &StudyUpsertOne{
		create: sc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Study.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (sc *StudyCreate) OnConflictColumns(columns ...string) *StudyUpsertOne {
	sc.conflict = append(sc.conflict, sql.ConflictColumns(columns...))
	return &StudyUpsertOne{
		create: sc,
	}
}

type (
	// StudyUpsertOne is the builder for "upsert"-ing
	//  one Study node.
	StudyUpsertOne struct {
		create *StudyCreate
	}

	// StudyUpsert is the "OnConflict" setter.
	StudyUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *StudyUpsert) SetStatus(v string) *StudyUpsert {
	u.Set(study.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudyUpsert) UpdateStatus() *StudyUpsert {
	u.SetExcluded(study.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudyUpsert) SetUpdatedAt(v time.Time) *StudyUpsert {
	u.Set(study.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudyUpsert) UpdateUpdatedAt() *StudyUpsert {
	u.SetExcluded(study.FieldUpdatedAt)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *StudyUpsert) SetCreatedBy(v string) *StudyUpsert {
	u.Set(study.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *StudyUpsert) UpdateCreatedBy() *StudyUpsert {
	u.SetExcluded(study.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *StudyUpsert) ClearCreatedBy() *StudyUpsert {
	u.SetNull(study.FieldCreatedBy)
	return u
}

// SetUpdatedBy sets the "updated_by" field.
func (u *StudyUpsert) SetUpdatedBy(v string) *StudyUpsert {
	u.Set(study.FieldUpdatedBy, v)
	return u
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *StudyUpsert) UpdateUpdatedBy() *StudyUpsert {
	u.SetExcluded(study.FieldUpdatedBy)
	return u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *StudyUpsert) ClearUpdatedBy() *StudyUpsert {
	u.SetNull(study.FieldUpdatedBy)
	return u
}

// SetPatientName sets the "patient_name" field.
func (u *StudyUpsert) SetPatientName(v string) *StudyUpsert {
	u.Set(study.FieldPatientName, v)
	return u
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *StudyUpsert) UpdatePatientName() *StudyUpsert {
	u.SetExcluded(study.FieldPatientName)
	return u
}

// ClearPatientName clears the value of the "patient_name" field.
func (u *StudyUpsert) ClearPatientName() *StudyUpsert {
	u.SetNull(study.FieldPatientName)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *StudyUpsert) SetPatientID(v string) *StudyUpsert {
	u.Set(study.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *StudyUpsert) UpdatePatientID() *StudyUpsert {
	u.SetExcluded(study.FieldPatientID)
	return u
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *StudyUpsert) ClearPatientID() *StudyUpsert {
	u.SetNull(study.FieldPatientID)
	return u
}

// SetModality sets the "modality" field.
func (u *StudyUpsert) SetModality(v string) *StudyUpsert {
	u.Set(study.FieldModality, v)
	return u
}

// UpdateModality sets the "modality" field to the value that was provided on create.
func (u *StudyUpsert) UpdateModality() *StudyUpsert {
	u.SetExcluded(study.FieldModality)
	return u
}

// ClearModality clears the value of the "modality" field.
func (u *StudyUpsert) ClearModality() *StudyUpsert {
	u.SetNull(study.FieldModality)
	return u
}

// SetAccessionNumber sets the "accession_number" field.
func (u *StudyUpsert) SetAccessionNumber(v string) *StudyUpsert {
	u.Set(study.FieldAccessionNumber, v)
	return u
}

// UpdateAccessionNumber sets the "accession_number" field to the value that was provided on create.
func (u *StudyUpsert) UpdateAccessionNumber() *StudyUpsert {
	u.SetExcluded(study.FieldAccessionNumber)
	return u
}

// ClearAccessionNumber clears the value of the "accession_number" field.
func (u *StudyUpsert) ClearAccessionNumber() *StudyUpsert {
	u.SetNull(study.FieldAccessionNumber)
	return u
}

// SetStudyDate sets the "study_date" field.
func (u *StudyUpsert) SetStudyDate(v time.Time) *StudyUpsert {
	u.Set(study.FieldStudyDate, v)
	return u
}

// UpdateStudyDate sets the "study_date" field to the value that was provided on create.
func (u *StudyUpsert) UpdateStudyDate() *StudyUpsert {
	u.SetExcluded(study.FieldStudyDate)
	return u
}

// SetDescription sets the "description" field.
func (u *StudyUpsert) SetDescription(v string) *StudyUpsert {
	u.Set(study.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *StudyUpsert) UpdateDescription() *StudyUpsert {
	u.SetExcluded(study.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *StudyUpsert) ClearDescription() *StudyUpsert {
	u.SetNull(study.FieldDescription)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Study.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(study.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudyUpsertOne) UpdateNewValues() *StudyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(study.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(study.FieldTenantID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(study.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.StudyUID(); exists {
			s.SetIgnore(study.FieldStudyUID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Study.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StudyUpsertOne) Ignore() *StudyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudyUpsertOne) DoNothing() *StudyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudyCreate.OnConflict
// documentation for more info.
func (u *StudyUpsertOne) Update(set func(*StudyUpsert)) *StudyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudyUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *StudyUpsertOne) SetStatus(v string) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateStatus() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudyUpsertOne) SetUpdatedAt(v time.Time) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateUpdatedAt() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *StudyUpsertOne) SetCreatedBy(v string) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateCreatedBy() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *StudyUpsertOne) ClearCreatedBy() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *StudyUpsertOne) SetUpdatedBy(v string) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateUpdatedBy() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *StudyUpsertOne) ClearUpdatedBy() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *StudyUpsertOne) SetPatientName(v string) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdatePatientName() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdatePatientName()
	})
}

// ClearPatientName clears the value of the "patient_name" field.
func (u *StudyUpsertOne) ClearPatientName() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.ClearPatientName()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *StudyUpsertOne) SetPatientID(v string) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdatePatientID() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdatePatientID()
	})
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *StudyUpsertOne) ClearPatientID() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.ClearPatientID()
	})
}

// SetModality sets the "modality" field.
func (u *StudyUpsertOne) SetModality(v string) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetModality(v)
	})
}

// UpdateModality sets the "modality" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateModality() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateModality()
	})
}

// ClearModality clears the value of the "modality" field.
func (u *StudyUpsertOne) ClearModality() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.ClearModality()
	})
}

// SetAccessionNumber sets the "accession_number" field.
func (u *StudyUpsertOne) SetAccessionNumber(v string) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetAccessionNumber(v)
	})
}

// UpdateAccessionNumber sets the "accession_number" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateAccessionNumber() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateAccessionNumber()
	})
}

// ClearAccessionNumber clears the value of the "accession_number" field.
func (u *StudyUpsertOne) ClearAccessionNumber() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.ClearAccessionNumber()
	})
}

// SetStudyDate sets the "study_date" field.
func (u *StudyUpsertOne) SetStudyDate(v time.Time) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetStudyDate(v)
	})
}

// UpdateStudyDate sets the "study_date" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateStudyDate() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateStudyDate()
	})
}

// SetDescription sets the "description" field.
func (u *StudyUpsertOne) SetDescription(v string) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateDescription() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *StudyUpsertOne) ClearDescription() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *StudyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StudyUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StudyUpsertOne.ID is not supported by MySQL driver. Use StudyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StudyUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StudyCreateBulk is the builder for creating many Study entities in bulk.
type StudyCreateBulk struct {
	config
	err      error
	builders []*StudyCreate
	conflict []sql.ConflictOption
}

// Save creates the Study entities in the database.
func (scb *StudyCreateBulk) Save(ctx context.Context) ([]*Study, error) {
	if scb.err != nil {
		return nil, scb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(scb.builders))
	nodes := make([]*Study, len(scb.builders))
	mutators := make([]Mutator, len(scb.builders))
	for i := range scb.builders {
		func(i int, root context.Context) {
			builder := scb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, scb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = scb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, scb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, scb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (scb *StudyCreateBulk) SaveX(ctx context.Context) []*Study {
	v, err := scb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scb *StudyCreateBulk) Exec(ctx context.Context) error {
	_, err := scb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scb *StudyCreateBulk) ExecX(ctx context.Context) {
	if err := scb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Study.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudyUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (scb *StudyCreateBulk) OnConflict(opts ...sql.ConflictOption) *StudyUpsertBulk {
	scb.conflict = opts
	return &StudyUpsertBulk{
		create: scb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Study.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (scb *StudyCreateBulk) OnConflictColumns(columns ...string) *StudyUpsertBulk {
	scb.conflict = append(scb.conflict, sql.ConflictColumns(columns...))
	return &StudyUpsertBulk{
		create: scb,
	}
}

// StudyUpsertBulk is the builder for "upsert"-ing
// a bulk of Study nodes.
type StudyUpsertBulk struct {
	create *StudyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Study.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(study.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudyUpsertBulk) UpdateNewValues() *StudyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(study.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(study.FieldTenantID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(study.FieldCreatedAt)
			}
			if _, exists := b.mutation.StudyUID(); exists {
				s.SetIgnore(study.FieldStudyUID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Study.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StudyUpsertBulk) Ignore() *StudyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudyUpsertBulk) DoNothing() *StudyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudyCreateBulk.OnConflict
// documentation for more info.
func (u *StudyUpsertBulk) Update(set func(*StudyUpsert)) *StudyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudyUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *StudyUpsertBulk) SetStatus(v string) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateStatus() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudyUpsertBulk) SetUpdatedAt(v time.Time) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateUpdatedAt() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *StudyUpsertBulk) SetCreatedBy(v string) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateCreatedBy() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *StudyUpsertBulk) ClearCreatedBy() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *StudyUpsertBulk) SetUpdatedBy(v string) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateUpdatedBy() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *StudyUpsertBulk) ClearUpdatedBy() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *StudyUpsertBulk) SetPatientName(v string) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdatePatientName() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdatePatientName()
	})
}

// ClearPatientName clears the value of the "patient_name" field.
func (u *StudyUpsertBulk) ClearPatientName() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.ClearPatientName()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *StudyUpsertBulk) SetPatientID(v string) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdatePatientID() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdatePatientID()
	})
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *StudyUpsertBulk) ClearPatientID() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.ClearPatientID()
	})
}

// SetModality sets the "modality" field.
func (u *StudyUpsertBulk) SetModality(v string) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetModality(v)
	})
}

// UpdateModality sets the "modality" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateModality() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateModality()
	})
}

// ClearModality clears the value of the "modality" field.
func (u *StudyUpsertBulk) ClearModality() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.ClearModality()
	})
}

// SetAccessionNumber sets the "accession_number" field.
func (u *StudyUpsertBulk) SetAccessionNumber(v string) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetAccessionNumber(v)
	})
}

// UpdateAccessionNumber sets the "accession_number" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateAccessionNumber() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateAccessionNumber()
	})
}

// ClearAccessionNumber clears the value of the "accession_number" field.
func (u *StudyUpsertBulk) ClearAccessionNumber() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.ClearAccessionNumber()
	})
}

// SetStudyDate sets the "study_date" field.
func (u *StudyUpsertBulk) SetStudyDate(v time.Time) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetStudyDate(v)
	})
}

// UpdateStudyDate sets the "study_date" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateStudyDate() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateStudyDate()
	})
}

// SetDescription sets the "description" field.
func (u *StudyUpsertBulk) SetDescription(v string) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateDescription() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *StudyUpsertBulk) ClearDescription() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *StudyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StudyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
