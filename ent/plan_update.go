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
	"github.com/pacsflow/pacsflow/ent/plan"
	"github.com/pacsflow/pacsflow/ent/predicate"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/shopspring/decimal"
)

// PlanUpdate is the builder for updating Plan entities.
type PlanUpdate struct {
	config
	hooks    []Hook
	mutation *PlanMutation
}

// Where appends a list predicates to the PlanUpdate builder.
func (pu *PlanUpdate) Where(ps ...predicate.Plan) *PlanUpdate {
	pu.mutation.Where(ps...)
	return pu
}

// SetStatus sets the "status" field.
func (pu *PlanUpdate) SetStatus(s string) *PlanUpdate {
	pu.mutation.SetStatus(s)
	return pu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (pu *PlanUpdate) SetNillableStatus(s *string) *PlanUpdate {
	if s != nil {
		pu.SetStatus(*s)
	}
	return pu
}

// SetUpdatedAt sets the "updated_at" field.
func (pu *PlanUpdate) SetUpdatedAt(t time.Time) *PlanUpdate {
	pu.mutation.SetUpdatedAt(t)
	return pu
}

// SetCreatedBy sets the "created_by" field.
func (pu *PlanUpdate) SetCreatedBy(s string) *PlanUpdate {
	pu.mutation.SetCreatedBy(s)
	return pu
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (pu *PlanUpdate) SetNillableCreatedBy(s *string) *PlanUpdate {
	if s != nil {
		pu.SetCreatedBy(*s)
	}
	return pu
}

// ClearCreatedBy clears the value of the "created_by" field.
func (pu *PlanUpdate) ClearCreatedBy() *PlanUpdate {
	pu.mutation.ClearCreatedBy()
	return pu
}

// SetUpdatedBy sets the "updated_by" field.
func (pu *PlanUpdate) SetUpdatedBy(s string) *PlanUpdate {
	pu.mutation.SetUpdatedBy(s)
	return pu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (pu *PlanUpdate) SetNillableUpdatedBy(s *string) *PlanUpdate {
	if s != nil {
		pu.SetUpdatedBy(*s)
	}
	return pu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (pu *PlanUpdate) ClearUpdatedBy() *PlanUpdate {
	pu.mutation.ClearUpdatedBy()
	return pu
}

// SetLookupKey sets the "lookup_key" field.
func (pu *PlanUpdate) SetLookupKey(s string) *PlanUpdate {
	pu.mutation.SetLookupKey(s)
	return pu
}

// SetNillableLookupKey sets the "lookup_key" field if the given value is not nil.
func (pu *PlanUpdate) SetNillableLookupKey(s *string) *PlanUpdate {
	if s != nil {
		pu.SetLookupKey(*s)
	}
	return pu
}

// ClearLookupKey clears the value of the "lookup_key" field.
func (pu *PlanUpdate) ClearLookupKey() *PlanUpdate {
	pu.mutation.ClearLookupKey()
	return pu
}

// SetName sets the "name" field.
func (pu *PlanUpdate) SetName(s string) *PlanUpdate {
	pu.mutation.SetName(s)
	return pu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (pu *PlanUpdate) SetNillableName(s *string) *PlanUpdate {
	if s != nil {
		pu.SetName(*s)
	}
	return pu
}

// SetDescription sets the "description" field.
func (pu *PlanUpdate) SetDescription(s string) *PlanUpdate {
	pu.mutation.SetDescription(s)
	return pu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (pu *PlanUpdate) SetNillableDescription(s *string) *PlanUpdate {
	if s != nil {
		pu.SetDescription(*s)
	}
	return pu
}

// ClearDescription clears the value of the "description" field.
func (pu *PlanUpdate) ClearDescription() *PlanUpdate {
	pu.mutation.ClearDescription()
	return pu
}

// SetPrice sets the "price" field.
func (pu *PlanUpdate) SetPrice(d decimal.Decimal) *PlanUpdate {
	pu.mutation.SetPrice(d)
	return pu
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (pu *PlanUpdate) SetNillablePrice(d *decimal.Decimal) *PlanUpdate {
	if d != nil {
		pu.SetPrice(*d)
	}
	return pu
}

// SetCurrency sets the "currency" field.
func (pu *PlanUpdate) SetCurrency(s string) *PlanUpdate {
	pu.mutation.SetCurrency(s)
	return pu
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (pu *PlanUpdate) SetNillableCurrency(s *string) *PlanUpdate {
	if s != nil {
		pu.SetCurrency(*s)
	}
	return pu
}

// SetBillingPeriod sets the "billing_period" field.
func (pu *PlanUpdate) SetBillingPeriod(tp types.BillingPeriod) *PlanUpdate {
	pu.mutation.SetBillingPeriod(tp)
	return pu
}

// SetNillableBillingPeriod sets the "billing_period" field if the given value is not nil.
func (pu *PlanUpdate) SetNillableBillingPeriod(tp *types.BillingPeriod) *PlanUpdate {
	if tp != nil {
		pu.SetBillingPeriod(*tp)
	}
	return pu
}

// SetTrialDays sets the "trial_days" field.
func (pu *PlanUpdate) SetTrialDays(i int) *PlanUpdate {
	pu.mutation.ResetTrialDays()
	pu.mutation.SetTrialDays(i)
	return pu
}

// SetNillableTrialDays sets the "trial_days" field if the given value is not nil.
func (pu *PlanUpdate) SetNillableTrialDays(i *int) *PlanUpdate {
	if i != nil {
		pu.SetTrialDays(*i)
	}
	return pu
}

// AddTrialDays adds i to the "trial_days" field.
func (pu *PlanUpdate) AddTrialDays(i int) *PlanUpdate {
	pu.mutation.AddTrialDays(i)
	return pu
}

// SetFeatures sets the "features" field.
func (pu *PlanUpdate) SetFeatures(m map[string]interface{}) *PlanUpdate {
	pu.mutation.SetFeatures(m)
	return pu
}

// ClearFeatures clears the value of the "features" field.
func (pu *PlanUpdate) ClearFeatures() *PlanUpdate {
	pu.mutation.ClearFeatures()
	return pu
}

// Mutation returns the PlanMutation object of the builder.
func (pu *PlanUpdate) Mutation() *PlanMutation {
	return pu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pu *PlanUpdate) Save(ctx context.Context) (int, error) {
	pu.defaults()
	return withHooks(ctx, pu.sqlSave, pu.mutation, pu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pu *PlanUpdate) SaveX(ctx context.Context) int {
	affected, err := pu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pu *PlanUpdate) Exec(ctx context.Context) error {
	_, err := pu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pu *PlanUpdate) ExecX(ctx context.Context) {
	if err := pu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pu *PlanUpdate) defaults() {
	if _, ok := pu.mutation.UpdatedAt(); !ok {
		v := plan.UpdateDefaultUpdatedAt()
		pu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pu *PlanUpdate) check() error {
	if v, ok := pu.mutation.Name(); ok {
		if err := plan.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Plan.name": %w`, err)}
		}
	}
	if v, ok := pu.mutation.Currency(); ok {
		if err := plan.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Plan.currency": %w`, err)}
		}
	}
	if v, ok := pu.mutation.BillingPeriod(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "billing_period", err: fmt.Errorf(`ent: validator failed for field "Plan.billing_period": %w`, err)}
		}
	}
	return nil
}

func (pu *PlanUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString))
	if ps := pu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if pu.mutation.TenantIDCleared() {
		_spec.ClearField(plan.FieldTenantID, field.TypeString)
	}
	if value, ok := pu.mutation.Status(); ok {
		_spec.SetField(plan.FieldStatus, field.TypeString, value)
	}
	if value, ok := pu.mutation.UpdatedAt(); ok {
		_spec.SetField(plan.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := pu.mutation.CreatedBy(); ok {
		_spec.SetField(plan.FieldCreatedBy, field.TypeString, value)
	}
	if pu.mutation.CreatedByCleared() {
		_spec.ClearField(plan.FieldCreatedBy, field.TypeString)
	}
	if value, ok := pu.mutation.UpdatedBy(); ok {
		_spec.SetField(plan.FieldUpdatedBy, field.TypeString, value)
	}
	if pu.mutation.UpdatedByCleared() {
		_spec.ClearField(plan.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := pu.mutation.LookupKey(); ok {
		_spec.SetField(plan.FieldLookupKey, field.TypeString, value)
	}
	if pu.mutation.LookupKeyCleared() {
		_spec.ClearField(plan.FieldLookupKey, field.TypeString)
	}
	if value, ok := pu.mutation.Name(); ok {
		_spec.SetField(plan.FieldName, field.TypeString, value)
	}
	if value, ok := pu.mutation.Description(); ok {
		_spec.SetField(plan.FieldDescription, field.TypeString, value)
	}
	if pu.mutation.DescriptionCleared() {
		_spec.ClearField(plan.FieldDescription, field.TypeString)
	}
	if value, ok := pu.mutation.Price(); ok {
		_spec.SetField(plan.FieldPrice, field.TypeOther, value)
	}
	if value, ok := pu.mutation.Currency(); ok {
		_spec.SetField(plan.FieldCurrency, field.TypeString, value)
	}
	if value, ok := pu.mutation.BillingPeriod(); ok {
		_spec.SetField(plan.FieldBillingPeriod, field.TypeString, value)
	}
	if value, ok := pu.mutation.TrialDays(); ok {
		_spec.SetField(plan.FieldTrialDays, field.TypeInt, value)
	}
	if value, ok := pu.mutation.AddedTrialDays(); ok {
		_spec.AddField(plan.FieldTrialDays, field.TypeInt, value)
	}
	if value, ok := pu.mutation.Features(); ok {
		_spec.SetField(plan.FieldFeatures, field.TypeJSON, value)
	}
	if pu.mutation.FeaturesCleared() {
		_spec.ClearField(plan.FieldFeatures, field.TypeJSON)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pu.mutation.done = true
	return n, nil
}

// PlanUpdateOne is the builder for updating a single Plan entity.
type PlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanMutation
}

// SetStatus sets the "status" field.
func (puo *PlanUpdateOne) SetStatus(s string) *PlanUpdateOne {
	puo.mutation.SetStatus(s)
	return puo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (puo *PlanUpdateOne) SetNillableStatus(s *string) *PlanUpdateOne {
	if s != nil {
		puo.SetStatus(*s)
	}
	return puo
}

// SetUpdatedAt sets the "updated_at" field.
func (puo *PlanUpdateOne) SetUpdatedAt(t time.Time) *PlanUpdateOne {
	puo.mutation.SetUpdatedAt(t)
	return puo
}

// SetCreatedBy sets the "created_by" field.
func (puo *PlanUpdateOne) SetCreatedBy(s string) *PlanUpdateOne {
	puo.mutation.SetCreatedBy(s)
	return puo
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (puo *PlanUpdateOne) SetNillableCreatedBy(s *string) *PlanUpdateOne {
	if s != nil {
		puo.SetCreatedBy(*s)
	}
	return puo
}

// ClearCreatedBy clears the value of the "created_by" field.
func (puo *PlanUpdateOne) ClearCreatedBy() *PlanUpdateOne {
	puo.mutation.ClearCreatedBy()
	return puo
}

// SetUpdatedBy sets the "updated_by" field.
func (puo *PlanUpdateOne) SetUpdatedBy(s string) *PlanUpdateOne {
	puo.mutation.SetUpdatedBy(s)
	return puo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (puo *PlanUpdateOne) SetNillableUpdatedBy(s *string) *PlanUpdateOne {
	if s != nil {
		puo.SetUpdatedBy(*s)
	}
	return puo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (puo *PlanUpdateOne) ClearUpdatedBy() *PlanUpdateOne {
	puo.mutation.ClearUpdatedBy()
	return puo
}

// SetLookupKey sets the "lookup_key" field.
func (puo *PlanUpdateOne) SetLookupKey(s string) *PlanUpdateOne {
	puo.mutation.SetLookupKey(s)
	return puo
}

// SetNillableLookupKey sets the "lookup_key" field if the given value is not nil.
func (puo *PlanUpdateOne) SetNillableLookupKey(s *string) *PlanUpdateOne {
	if s != nil {
		puo.SetLookupKey(*s)
	}
	return puo
}

// ClearLookupKey clears the value of the "lookup_key" field.
func (puo *PlanUpdateOne) ClearLookupKey() *PlanUpdateOne {
	puo.mutation.ClearLookupKey()
	return puo
}

// SetName sets the "name" field.
func (puo *PlanUpdateOne) SetName(s string) *PlanUpdateOne {
	puo.mutation.SetName(s)
	return puo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (puo *PlanUpdateOne) SetNillableName(s *string) *PlanUpdateOne {
	if s != nil {
		puo.SetName(*s)
	}
	return puo
}

// SetDescription sets the "description" field.
func (puo *PlanUpdateOne) SetDescription(s string) *PlanUpdateOne {
	puo.mutation.SetDescription(s)
	return puo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (puo *PlanUpdateOne) SetNillableDescription(s *string) *PlanUpdateOne {
	if s != nil {
		puo.SetDescription(*s)
	}
	return puo
}

// ClearDescription clears the value of the "description" field.
func (puo *PlanUpdateOne) ClearDescription() *PlanUpdateOne {
	puo.mutation.ClearDescription()
	return puo
}

// SetPrice sets the "price" field.
func (puo *PlanUpdateOne) SetPrice(d decimal.Decimal) *PlanUpdateOne {
	puo.mutation.SetPrice(d)
	return puo
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (puo *PlanUpdateOne) SetNillablePrice(d *decimal.Decimal) *PlanUpdateOne {
	if d != nil {
		puo.SetPrice(*d)
	}
	return puo
}

// SetCurrency sets the "currency" field.
func (puo *PlanUpdateOne) SetCurrency(s string) *PlanUpdateOne {
	puo.mutation.SetCurrency(s)
	return puo
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (puo *PlanUpdateOne) SetNillableCurrency(s *string) *PlanUpdateOne {
	if s != nil {
		puo.SetCurrency(*s)
	}
	return puo
}

// SetBillingPeriod sets the "billing_period" field.
func (puo *PlanUpdateOne) SetBillingPeriod(tp types.BillingPeriod) *PlanUpdateOne {
	puo.mutation.SetBillingPeriod(tp)
	return puo
}

// SetNillableBillingPeriod sets the "billing_period" field if the given value is not nil.
func (puo *PlanUpdateOne) SetNillableBillingPeriod(tp *types.BillingPeriod) *PlanUpdateOne {
	if tp != nil {
		puo.SetBillingPeriod(*tp)
	}
	return puo
}

// SetTrialDays sets the "trial_days" field.
func (puo *PlanUpdateOne) SetTrialDays(i int) *PlanUpdateOne {
	puo.mutation.ResetTrialDays()
	puo.mutation.SetTrialDays(i)
	return puo
}

// SetNillableTrialDays sets the "trial_days" field if the given value is not nil.
func (puo *PlanUpdateOne) SetNillableTrialDays(i *int) *PlanUpdateOne {
	if i != nil {
		puo.SetTrialDays(*i)
	}
	return puo
}

// AddTrialDays adds i to the "trial_days" field.
func (puo *PlanUpdateOne) AddTrialDays(i int) *PlanUpdateOne {
	puo.mutation.AddTrialDays(i)
	return puo
}

// SetFeatures sets the "features" field.
func (puo *PlanUpdateOne) SetFeatures(m map[string]interface{}) *PlanUpdateOne {
	puo.mutation.SetFeatures(m)
	return puo
}

// ClearFeatures clears the value of the "features" field.
func (puo *PlanUpdateOne) ClearFeatures() *PlanUpdateOne {
	puo.mutation.ClearFeatures()
	return puo
}

// Mutation returns the PlanMutation object of the builder.
func (puo *PlanUpdateOne) Mutation() *PlanMutation {
	return puo.mutation
}

// Where appends a list predicates to the PlanUpdate builder.
func (puo *PlanUpdateOne) Where(ps ...predicate.Plan) *PlanUpdateOne {
	puo.mutation.Where(ps...)
	return puo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (puo *PlanUpdateOne) Select(field string, fields ...string) *PlanUpdateOne {
	puo.fields = append([]string{field}, fields...)
	return puo
}

// Save executes the query and returns the updated Plan entity.
func (puo *PlanUpdateOne) Save(ctx context.Context) (*Plan, error) {
	puo.defaults()
	return withHooks(ctx, puo.sqlSave, puo.mutation, puo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (puo *PlanUpdateOne) SaveX(ctx context.Context) *Plan {
	node, err := puo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (puo *PlanUpdateOne) Exec(ctx context.Context) error {
	_, err := puo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (puo *PlanUpdateOne) ExecX(ctx context.Context) {
	if err := puo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (puo *PlanUpdateOne) defaults() {
	if _, ok := puo.mutation.UpdatedAt(); !ok {
		v := plan.UpdateDefaultUpdatedAt()
		puo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (puo *PlanUpdateOne) check() error {
	if v, ok := puo.mutation.Name(); ok {
		if err := plan.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Plan.name": %w`, err)}
		}
	}
	if v, ok := puo.mutation.Currency(); ok {
		if err := plan.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Plan.currency": %w`, err)}
		}
	}
	if v, ok := puo.mutation.BillingPeriod(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "billing_period", err: fmt.Errorf(`ent: validator failed for field "Plan.billing_period": %w`, err)}
		}
	}
	return nil
}

func (puo *PlanUpdateOne) sqlSave(ctx context.Context) (_node *Plan, err error) {
	if err := puo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString))
	id, ok := puo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Plan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := puo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plan.FieldID)
		for _, f := range fields {
			if !plan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plan.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := puo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if puo.mutation.TenantIDCleared() {
		_spec.ClearField(plan.FieldTenantID, field.TypeString)
	}
	if value, ok := puo.mutation.Status(); ok {
		_spec.SetField(plan.FieldStatus, field.TypeString, value)
	}
	if value, ok := puo.mutation.UpdatedAt(); ok {
		_spec.SetField(plan.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := puo.mutation.CreatedBy(); ok {
		_spec.SetField(plan.FieldCreatedBy, field.TypeString, value)
	}
	if puo.mutation.CreatedByCleared() {
		_spec.ClearField(plan.FieldCreatedBy, field.TypeString)
	}
	if value, ok := puo.mutation.UpdatedBy(); ok {
		_spec.SetField(plan.FieldUpdatedBy, field.TypeString, value)
	}
	if puo.mutation.UpdatedByCleared() {
		_spec.ClearField(plan.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := puo.mutation.LookupKey(); ok {
		_spec.SetField(plan.FieldLookupKey, field.TypeString, value)
	}
	if puo.mutation.LookupKeyCleared() {
		_spec.ClearField(plan.FieldLookupKey, field.TypeString)
	}
	if value, ok := puo.mutation.Name(); ok {
		_spec.SetField(plan.FieldName, field.TypeString, value)
	}
	if value, ok := puo.mutation.Description(); ok {
		_spec.SetField(plan.FieldDescription, field.TypeString, value)
	}
	if puo.mutation.DescriptionCleared() {
		_spec.ClearField(plan.FieldDescription, field.TypeString)
	}
	if value, ok := puo.mutation.Price(); ok {
		_spec.SetField(plan.FieldPrice, field.TypeOther, value)
	}
	if value, ok := puo.mutation.Currency(); ok {
		_spec.SetField(plan.FieldCurrency, field.TypeString, value)
	}
	if value, ok := puo.mutation.BillingPeriod(); ok {
		_spec.SetField(plan.FieldBillingPeriod, field.TypeString, value)
	}
	if value, ok := puo.mutation.TrialDays(); ok {
		_spec.SetField(plan.FieldTrialDays, field.TypeInt, value)
	}
	if value, ok := puo.mutation.AddedTrialDays(); ok {
		_spec.AddField(plan.FieldTrialDays, field.TypeInt, value)
	}
	if value, ok := puo.mutation.Features(); ok {
		_spec.SetField(plan.FieldFeatures, field.TypeJSON, value)
	}
	if puo.mutation.FeaturesCleared() {
		_spec.ClearField(plan.FieldFeatures, field.TypeJSON)
	}
	_node = &Plan{config: puo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, puo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	puo.mutation.done = true
	return _node, nil
}
