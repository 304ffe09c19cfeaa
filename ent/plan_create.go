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
	"github.com/pacsflow/pacsflow/ent/plan"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/shopspring/decimal"
)

// PlanCreate is the builder for creating a Plan entity.
type PlanCreate struct {
	config
	mutation *PlanMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (pc *PlanCreate) SetTenantID(s string) *PlanCreate {
	pc.mutation.SetTenantID(s)
	return pc
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (pc *PlanCreate) SetNillableTenantID(s *string) *PlanCreate {
	if s != nil {
		pc.SetTenantID(*s)
	}
	return pc
}

// SetStatus sets the "status" field.
func (pc *PlanCreate) SetStatus(s string) *PlanCreate {
	pc.mutation.SetStatus(s)
	return pc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (pc *PlanCreate) SetNillableStatus(s *string) *PlanCreate {
	if s != nil {
		pc.SetStatus(*s)
	}
	return pc
}

// SetCreatedAt sets the "created_at" field.
func (pc *PlanCreate) SetCreatedAt(t time.Time) *PlanCreate {
	pc.mutation.SetCreatedAt(t)
	return pc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (pc *PlanCreate) SetNillableCreatedAt(t *time.Time) *PlanCreate {
	if t != nil {
		pc.SetCreatedAt(*t)
	}
	return pc
}

// SetUpdatedAt sets the "updated_at" field.
func (pc *PlanCreate) SetUpdatedAt(t time.Time) *PlanCreate {
	pc.mutation.SetUpdatedAt(t)
	return pc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (pc *PlanCreate) SetNillableUpdatedAt(t *time.Time) *PlanCreate {
	if t != nil {
		pc.SetUpdatedAt(*t)
	}
	return pc
}

// SetCreatedBy sets the "created_by" field.
func (pc *PlanCreate) SetCreatedBy(s string) *PlanCreate {
	pc.mutation.SetCreatedBy(s)
	return pc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (pc *PlanCreate) SetNillableCreatedBy(s *string) *PlanCreate {
	if s != nil {
		pc.SetCreatedBy(*s)
	}
	return pc
}

// SetUpdatedBy sets the "updated_by" field.
func (pc *PlanCreate) SetUpdatedBy(s string) *PlanCreate {
	pc.mutation.SetUpdatedBy(s)
	return pc
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (pc *PlanCreate) SetNillableUpdatedBy(s *string) *PlanCreate {
	if s != nil {
		pc.SetUpdatedBy(*s)
	}
	return pc
}

// SetLookupKey sets the "lookup_key" field.
func (pc *PlanCreate) SetLookupKey(s string) *PlanCreate {
	pc.mutation.SetLookupKey(s)
	return pc
}

// SetNillableLookupKey sets the "lookup_key" field if the given value is not nil.
func (pc *PlanCreate) SetNillableLookupKey(s *string) *PlanCreate {
	if s != nil {
		pc.SetLookupKey(*s)
	}
	return pc
}

// SetName sets the "name" field.
func (pc *PlanCreate) SetName(s string) *PlanCreate {
	pc.mutation.SetName(s)
	return pc
}

// SetDescription sets the "description" field.
func (pc *PlanCreate) SetDescription(s string) *PlanCreate {
	pc.mutation.SetDescription(s)
	return pc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (pc *PlanCreate) SetNillableDescription(s *string) *PlanCreate {
	if s != nil {
		pc.SetDescription(*s)
	}
	return pc
}

// SetPrice sets the "price" field.
func (pc *PlanCreate) SetPrice(d decimal.Decimal) *PlanCreate {
	pc.mutation.SetPrice(d)
	return pc
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (pc *PlanCreate) SetNillablePrice(d *decimal.Decimal) *PlanCreate {
	if d != nil {
		pc.SetPrice(*d)
	}
	return pc
}

// SetCurrency sets the "currency" field.
func (pc *PlanCreate) SetCurrency(s string) *PlanCreate {
	pc.mutation.SetCurrency(s)
	return pc
}

// SetBillingPeriod sets the "billing_period" field.
func (pc *PlanCreate) SetBillingPeriod(tp types.BillingPeriod) *PlanCreate {
	pc.mutation.SetBillingPeriod(tp)
	return pc
}

// SetNillableBillingPeriod sets the "billing_period" field if the given value is not nil.
func (pc *PlanCreate) SetNillableBillingPeriod(tp *types.BillingPeriod) *PlanCreate {
	if tp != nil {
		pc.SetBillingPeriod(*tp)
	}
	return pc
}

// SetTrialDays sets the "trial_days" field.
func (pc *PlanCreate) SetTrialDays(i int) *PlanCreate {
	pc.mutation.SetTrialDays(i)
	return pc
}

// SetNillableTrialDays sets the "trial_days" field if the given value is not nil.
func (pc *PlanCreate) SetNillableTrialDays(i *int) *PlanCreate {
	if i != nil {
		pc.SetTrialDays(*i)
	}
	return pc
}

// SetFeatures sets the "features" field.
func (pc *PlanCreate) SetFeatures(m map[string]interface{}) *PlanCreate {
	pc.mutation.SetFeatures(m)
	return pc
}

// SetID sets the "id" field.
func (pc *PlanCreate) SetID(s string) *PlanCreate {
	pc.mutation.SetID(s)
	return pc
}

// Mutation returns the PlanMutation object of the builder.
func (pc *PlanCreate) Mutation() *PlanMutation {
	return pc.mutation
}

// Save creates the Plan in the database.
func (pc *PlanCreate) Save(ctx context.Context) (*Plan, error) {
	pc.defaults()
	return withHooks(ctx, pc.sqlSave, pc.mutation, pc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pc *PlanCreate) SaveX(ctx context.Context) *Plan {
	v, err := pc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pc *PlanCreate) Exec(ctx context.Context) error {
	_, err := pc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pc *PlanCreate) ExecX(ctx context.Context) {
	if err := pc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pc *PlanCreate) defaults() {
	if _, ok := pc.mutation.Status(); !ok {
		v := plan.DefaultStatus
		pc.mutation.SetStatus(v)
	}
	if _, ok := pc.mutation.CreatedAt(); !ok {
		v := plan.DefaultCreatedAt()
		pc.mutation.SetCreatedAt(v)
	}
	if _, ok := pc.mutation.UpdatedAt(); !ok {
		v := plan.DefaultUpdatedAt()
		pc.mutation.SetUpdatedAt(v)
	}
	if _, ok := pc.mutation.Price(); !ok {
		v := plan.DefaultPrice
		pc.mutation.SetPrice(v)
	}
	if _, ok := pc.mutation.BillingPeriod(); !ok {
		v := plan.DefaultBillingPeriod
		pc.mutation.SetBillingPeriod(v)
	}
	if _, ok := pc.mutation.TrialDays(); !ok {
		v := plan.DefaultTrialDays
		pc.mutation.SetTrialDays(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pc *PlanCreate) check() error {
	if _, ok := pc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Plan.status"`)}
	}
	if _, ok := pc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Plan.created_at"`)}
	}
	if _, ok := pc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Plan.updated_at"`)}
	}
	if _, ok := pc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Plan.name"`)}
	}
	if v, ok := pc.mutation.Name(); ok {
		if err := plan.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Plan.name": %w`, err)}
		}
	}
	if _, ok := pc.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Plan.price"`)}
	}
	if _, ok := pc.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Plan.currency"`)}
	}
	if v, ok := pc.mutation.Currency(); ok {
		if err := plan.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Plan.currency": %w`, err)}
		}
	}
	if _, ok := pc.mutation.BillingPeriod(); !ok {
		return &ValidationError{Name: "billing_period", err: errors.New(`ent: missing required field "Plan.billing_period"`)}
	}
	if v, ok := pc.mutation.BillingPeriod(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "billing_period", err: fmt.Errorf(`ent: validator failed for field "Plan.billing_period": %w`, err)}
		}
	}
	if _, ok := pc.mutation.TrialDays(); !ok {
		return &ValidationError{Name: "trial_days", err: errors.New(`ent: missing required field "Plan.trial_days"`)}
	}
	return nil
}

func (pc *PlanCreate) sqlSave(ctx context.Context) (*Plan, error) {
	if err := pc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Plan.ID type: %T", _spec.ID.Value)
		}
	}
	pc.mutation.id = &_node.ID
	pc.mutation.done = true
	return _node, nil
}

func (pc *PlanCreate) createSpec() (*Plan, *sqlgraph.CreateSpec) {
	var (
		_node = &Plan{config: pc.config}
		_spec = sqlgraph.NewCreateSpec(plan.Table, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString))
	)
	_spec.OnConflict = pc.conflict
	if id, ok := pc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := pc.mutation.TenantID(); ok {
		_spec.SetField(plan.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := pc.mutation.Status(); ok {
		_spec.SetField(plan.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := pc.mutation.CreatedAt(); ok {
		_spec.SetField(plan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := pc.mutation.UpdatedAt(); ok {
		_spec.SetField(plan.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := pc.mutation.CreatedBy(); ok {
		_spec.SetField(plan.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := pc.mutation.UpdatedBy(); ok {
		_spec.SetField(plan.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := pc.mutation.LookupKey(); ok {
		_spec.SetField(plan.FieldLookupKey, field.TypeString, value)
		_node.LookupKey = value
	}
	if value, ok := pc.mutation.Name(); ok {
		_spec.SetField(plan.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := pc.mutation.Description(); ok {
		_spec.SetField(plan.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := pc.mutation.Price(); ok {
		_spec.SetField(plan.FieldPrice, field.TypeOther, value)
		_node.Price = value
	}
	if value, ok := pc.mutation.Currency(); ok {
		_spec.SetField(plan.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := pc.mutation.BillingPeriod(); ok {
		_spec.SetField(plan.FieldBillingPeriod, field.TypeString, value)
		_node.BillingPeriod = value
	}
	if value, ok := pc.mutation.TrialDays(); ok {
		_spec.SetField(plan.FieldTrialDays, field.TypeInt, value)
		_node.TrialDays = value
	}
	if value, ok := pc.mutation.Features(); ok {
		_spec.SetField(plan.FieldFeatures, field.TypeJSON, value)
		_node.Features = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Plan.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlanUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (pc *PlanCreate) OnConflict(opts ...sql.ConflictOption) *PlanUpsertOne {
	pc.conflict = opts
	return &PlanUpsertOne{
		create: pc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (pc *PlanCreate) OnConflictColumns(columns ...string) *PlanUpsertOne {
	pc.conflict = append(pc.conflict, sql.ConflictColumns(columns...))
	return &PlanUpsertOne{
		create: pc,
	}
}

type (
	// PlanUpsertOne is the builder for "upsert"-ing
	//  one Plan node.
	PlanUpsertOne struct {
		create *PlanCreate
	}

	// PlanUpsert is the "OnConflict" setter.
	PlanUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *PlanUpsert) SetStatus(v string) *PlanUpsert {
	u.Set(plan.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlanUpsert) UpdateStatus() *PlanUpsert {
	u.SetExcluded(plan.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlanUpsert) SetUpdatedAt(v time.Time) *PlanUpsert {
	u.Set(plan.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlanUpsert) UpdateUpdatedAt() *PlanUpsert {
	u.SetExcluded(plan.FieldUpdatedAt)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *PlanUpsert) SetCreatedBy(v string) *PlanUpsert {
	u.Set(plan.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PlanUpsert) UpdateCreatedBy() *PlanUpsert {
	u.SetExcluded(plan.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *PlanUpsert) ClearCreatedBy() *PlanUpsert {
	u.SetNull(plan.FieldCreatedBy)
	return u
}

// SetUpdatedBy sets the "updated_by" field.
func (u *PlanUpsert) SetUpdatedBy(v string) *PlanUpsert {
	u.Set(plan.FieldUpdatedBy, v)
	return u
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *PlanUpsert) UpdateUpdatedBy() *PlanUpsert {
	u.SetExcluded(plan.FieldUpdatedBy)
	return u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *PlanUpsert) ClearUpdatedBy() *PlanUpsert {
	u.SetNull(plan.FieldUpdatedBy)
	return u
}

// SetLookupKey sets the "lookup_key" field.
func (u *PlanUpsert) SetLookupKey(v string) *PlanUpsert {
	u.Set(plan.FieldLookupKey, v)
	return u
}

// UpdateLookupKey sets the "lookup_key" field to the value that was provided on create.
func (u *PlanUpsert) UpdateLookupKey() *PlanUpsert {
	u.SetExcluded(plan.FieldLookupKey)
	return u
}

// ClearLookupKey clears the value of the "lookup_key" field.
func (u *PlanUpsert) ClearLookupKey() *PlanUpsert {
	u.SetNull(plan.FieldLookupKey)
	return u
}

// SetName sets the "name" field.
func (u *PlanUpsert) SetName(v string) *PlanUpsert {
	u.Set(plan.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PlanUpsert) UpdateName() *PlanUpsert {
	u.SetExcluded(plan.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *PlanUpsert) SetDescription(v string) *PlanUpsert {
	u.Set(plan.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PlanUpsert) UpdateDescription() *PlanUpsert {
	u.SetExcluded(plan.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *PlanUpsert) ClearDescription() *PlanUpsert {
	u.SetNull(plan.FieldDescription)
	return u
}

// SetPrice sets the "price" field.
func (u *PlanUpsert) SetPrice(v decimal.Decimal) *PlanUpsert {
	u.Set(plan.FieldPrice, v)
	return u
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *PlanUpsert) UpdatePrice() *PlanUpsert {
	u.SetExcluded(plan.FieldPrice)
	return u
}

// SetCurrency sets the "currency" field.
func (u *PlanUpsert) SetCurrency(v string) *PlanUpsert {
	u.Set(plan.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *PlanUpsert) UpdateCurrency() *PlanUpsert {
	u.SetExcluded(plan.FieldCurrency)
	return u
}

// SetBillingPeriod sets the "billing_period" field.
func (u *PlanUpsert) SetBillingPeriod(v types.BillingPeriod) *PlanUpsert {
	u.Set(plan.FieldBillingPeriod, v)
	return u
}

// UpdateBillingPeriod sets the "billing_period" field to the value that was provided on create.
func (u *PlanUpsert) UpdateBillingPeriod() *PlanUpsert {
	u.SetExcluded(plan.FieldBillingPeriod)
	return u
}

// SetTrialDays sets the "trial_days" field.
func (u *PlanUpsert) SetTrialDays(v int) *PlanUpsert {
	u.Set(plan.FieldTrialDays, v)
	return u
}

// UpdateTrialDays sets the "trial_days" field to the value that was provided on create.
func (u *PlanUpsert) UpdateTrialDays() *PlanUpsert {
	u.SetExcluded(plan.FieldTrialDays)
	return u
}

// AddTrialDays adds v to the "trial_days" field.
func (u *PlanUpsert) AddTrialDays(v int) *PlanUpsert {
	u.Add(plan.FieldTrialDays, v)
	return u
}

// SetFeatures sets the "features" field.
func (u *PlanUpsert) SetFeatures(v map[string]interface{}) *PlanUpsert {
	u.Set(plan.FieldFeatures, v)
	return u
}

// UpdateFeatures sets the "features" field to the value that was provided on create.
func (u *PlanUpsert) UpdateFeatures() *PlanUpsert {
	u.SetExcluded(plan.FieldFeatures)
	return u
}

// ClearFeatures clears the value of the "features" field.
func (u *PlanUpsert) ClearFeatures() *PlanUpsert {
	u.SetNull(plan.FieldFeatures)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(plan.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlanUpsertOne) UpdateNewValues() *PlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(plan.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(plan.FieldTenantID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(plan.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Plan.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlanUpsertOne) Ignore() *PlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlanUpsertOne) DoNothing() *PlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlanCreate.OnConflict
// documentation for more info.
func (u *PlanUpsertOne) Update(set func(*PlanUpsert)) *PlanUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *PlanUpsertOne) SetStatus(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateStatus() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlanUpsertOne) SetUpdatedAt(v time.Time) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateUpdatedAt() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *PlanUpsertOne) SetCreatedBy(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateCreatedBy() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *PlanUpsertOne) ClearCreatedBy() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *PlanUpsertOne) SetUpdatedBy(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateUpdatedBy() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *PlanUpsertOne) ClearUpdatedBy() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetLookupKey sets the "lookup_key" field.
func (u *PlanUpsertOne) SetLookupKey(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetLookupKey(v)
	})
}

// UpdateLookupKey sets the "lookup_key" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateLookupKey() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateLookupKey()
	})
}

// ClearLookupKey clears the value of the "lookup_key" field.
func (u *PlanUpsertOne) ClearLookupKey() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearLookupKey()
	})
}

// SetName sets the "name" field.
func (u *PlanUpsertOne) SetName(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateName() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *PlanUpsertOne) SetDescription(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateDescription() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *PlanUpsertOne) ClearDescription() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearDescription()
	})
}

// SetPrice sets the "price" field.
func (u *PlanUpsertOne) SetPrice(v decimal.Decimal) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdatePrice() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdatePrice()
	})
}

// SetCurrency sets the "currency" field.
func (u *PlanUpsertOne) SetCurrency(v string) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateCurrency() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateCurrency()
	})
}

// SetBillingPeriod sets the "billing_period" field.
func (u *PlanUpsertOne) SetBillingPeriod(v types.BillingPeriod) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetBillingPeriod(v)
	})
}

// UpdateBillingPeriod sets the "billing_period" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateBillingPeriod() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateBillingPeriod()
	})
}

// SetTrialDays sets the "trial_days" field.
func (u *PlanUpsertOne) SetTrialDays(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetTrialDays(v)
	})
}

// AddTrialDays adds v to the "trial_days" field.
func (u *PlanUpsertOne) AddTrialDays(v int) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.AddTrialDays(v)
	})
}

// UpdateTrialDays sets the "trial_days" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateTrialDays() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateTrialDays()
	})
}

// SetFeatures sets the "features" field.
func (u *PlanUpsertOne) SetFeatures(v map[string]interface{}) *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.SetFeatures(v)
	})
}

// UpdateFeatures sets the "features" field to the value that was provided on create.
func (u *PlanUpsertOne) UpdateFeatures() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateFeatures()
	})
}

// ClearFeatures clears the value of the "features" field.
func (u *PlanUpsertOne) ClearFeatures() *PlanUpsertOne {
	return u.Update(func(s *PlanUpsert) {
		s.ClearFeatures()
	})
}

// Exec executes the query.
func (u *PlanUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlanCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlanUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlanUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PlanUpsertOne.ID is not supported by MySQL driver. Use PlanUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlanUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlanCreateBulk is the builder for creating many Plan entities in bulk.
type PlanCreateBulk struct {
	config
	err      error
	builders []*PlanCreate
	conflict []sql.ConflictOption
}

// Save creates the Plan entities in the database.
func (pcb *PlanCreateBulk) Save(ctx context.Context) ([]*Plan, error) {
	if pcb.err != nil {
		return nil, pcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pcb.builders))
	nodes := make([]*Plan, len(pcb.builders))
	mutators := make([]Mutator, len(pcb.builders))
	for i := range pcb.builders {
		func(i int, root context.Context) {
			builder := pcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanMutation)
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
					_, err = mutators[i+1].Mutate(root, pcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = pcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pcb *PlanCreateBulk) SaveX(ctx context.Context) []*Plan {
	v, err := pcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pcb *PlanCreateBulk) Exec(ctx context.Context) error {
	_, err := pcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcb *PlanCreateBulk) ExecX(ctx context.Context) {
	if err := pcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Plan.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlanUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (pcb *PlanCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlanUpsertBulk {
	pcb.conflict = opts
	return &PlanUpsertBulk{
		create: pcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (pcb *PlanCreateBulk) OnConflictColumns(columns ...string) *PlanUpsertBulk {
	pcb.conflict = append(pcb.conflict, sql.ConflictColumns(columns...))
	return &PlanUpsertBulk{
		create: pcb,
	}
}

// PlanUpsertBulk is the builder for "upsert"-ing
// a bulk of Plan nodes.
type PlanUpsertBulk struct {
	create *PlanCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(plan.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlanUpsertBulk) UpdateNewValues() *PlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(plan.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(plan.FieldTenantID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(plan.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Plan.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlanUpsertBulk) Ignore() *PlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlanUpsertBulk) DoNothing() *PlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlanCreateBulk.OnConflict
// documentation for more info.
func (u *PlanUpsertBulk) Update(set func(*PlanUpsert)) *PlanUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlanUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *PlanUpsertBulk) SetStatus(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateStatus() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlanUpsertBulk) SetUpdatedAt(v time.Time) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateUpdatedAt() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *PlanUpsertBulk) SetCreatedBy(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateCreatedBy() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *PlanUpsertBulk) ClearCreatedBy() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *PlanUpsertBulk) SetUpdatedBy(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateUpdatedBy() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *PlanUpsertBulk) ClearUpdatedBy() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetLookupKey sets the "lookup_key" field.
func (u *PlanUpsertBulk) SetLookupKey(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetLookupKey(v)
	})
}

// UpdateLookupKey sets the "lookup_key" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateLookupKey() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateLookupKey()
	})
}

// ClearLookupKey clears the value of the "lookup_key" field.
func (u *PlanUpsertBulk) ClearLookupKey() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearLookupKey()
	})
}

// SetName sets the "name" field.
func (u *PlanUpsertBulk) SetName(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateName() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *PlanUpsertBulk) SetDescription(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateDescription() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *PlanUpsertBulk) ClearDescription() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearDescription()
	})
}

// SetPrice sets the "price" field.
func (u *PlanUpsertBulk) SetPrice(v decimal.Decimal) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdatePrice() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdatePrice()
	})
}

// SetCurrency sets the "currency" field.
func (u *PlanUpsertBulk) SetCurrency(v string) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateCurrency() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateCurrency()
	})
}

// SetBillingPeriod sets the "billing_period" field.
func (u *PlanUpsertBulk) SetBillingPeriod(v types.BillingPeriod) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetBillingPeriod(v)
	})
}

// UpdateBillingPeriod sets the "billing_period" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateBillingPeriod() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateBillingPeriod()
	})
}

// SetTrialDays sets the "trial_days" field.
func (u *PlanUpsertBulk) SetTrialDays(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetTrialDays(v)
	})
}

// AddTrialDays adds v to the "trial_days" field.
func (u *PlanUpsertBulk) AddTrialDays(v int) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.AddTrialDays(v)
	})
}

// UpdateTrialDays sets the "trial_days" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateTrialDays() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateTrialDays()
	})
}

// SetFeatures sets the "features" field.
func (u *PlanUpsertBulk) SetFeatures(v map[string]interface{}) *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.SetFeatures(v)
	})
}

// UpdateFeatures sets the "features" field to the value that was provided on create.
func (u *PlanUpsertBulk) UpdateFeatures() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.UpdateFeatures()
	})
}

// ClearFeatures clears the value of the "features" field.
func (u *PlanUpsertBulk) ClearFeatures() *PlanUpsertBulk {
	return u.Update(func(s *PlanUpsert) {
		s.ClearFeatures()
	})
}

// Exec executes the query.
func (u *PlanUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlanCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlanCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlanUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
