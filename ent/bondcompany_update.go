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
	"github.com/pacsflow/pacsflow/ent/bondcompany"
	"github.com/pacsflow/pacsflow/ent/predicate"
)

// BondCompanyUpdate is the builder for updating BondCompany entities.
type BondCompanyUpdate struct {
	config
	hooks    []Hook
	mutation *BondCompanyMutation
}

// Where appends a list predicates to the BondCompanyUpdate builder.
func (bcu *BondCompanyUpdate) Where(ps ...predicate.BondCompany) *BondCompanyUpdate {
	bcu.mutation.Where(ps...)
	return bcu
}

// SetStatus sets the "status" field.
func (bcu *BondCompanyUpdate) SetStatus(s string) *BondCompanyUpdate {
	bcu.mutation.SetStatus(s)
	return bcu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (bcu *BondCompanyUpdate) SetNillableStatus(s *string) *BondCompanyUpdate {
	if s != nil {
		bcu.SetStatus(*s)
	}
	return bcu
}

// SetUpdatedAt sets the "updated_at" field.
func (bcu *BondCompanyUpdate) SetUpdatedAt(t time.Time) *BondCompanyUpdate {
	bcu.mutation.SetUpdatedAt(t)
	return bcu
}

// SetCreatedBy sets the "created_by" field.
func (bcu *BondCompanyUpdate) SetCreatedBy(s string) *BondCompanyUpdate {
	bcu.mutation.SetCreatedBy(s)
	return bcu
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (bcu *BondCompanyUpdate) SetNillableCreatedBy(s *string) *BondCompanyUpdate {
	if s != nil {
		bcu.SetCreatedBy(*s)
	}
	return bcu
}

// ClearCreatedBy clears the value of the "created_by" field.
func (bcu *BondCompanyUpdate) ClearCreatedBy() *BondCompanyUpdate {
	bcu.mutation.ClearCreatedBy()
	return bcu
}

// SetUpdatedBy sets the "updated_by" field.
func (bcu *BondCompanyUpdate) SetUpdatedBy(s string) *BondCompanyUpdate {
	bcu.mutation.SetUpdatedBy(s)
	return bcu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (bcu *BondCompanyUpdate) SetNillableUpdatedBy(s *string) *BondCompanyUpdate {
	if s != nil {
		bcu.SetUpdatedBy(*s)
	}
	return bcu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (bcu *BondCompanyUpdate) ClearUpdatedBy() *BondCompanyUpdate {
	bcu.mutation.ClearUpdatedBy()
	return bcu
}

// SetCode sets the "code" field.
func (bcu *BondCompanyUpdate) SetCode(s string) *BondCompanyUpdate {
	bcu.mutation.SetCode(s)
	return bcu
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (bcu *BondCompanyUpdate) SetNillableCode(s *string) *BondCompanyUpdate {
	if s != nil {
		bcu.SetCode(*s)
	}
	return bcu
}

// SetName sets the "name" field.
func (bcu *BondCompanyUpdate) SetName(s string) *BondCompanyUpdate {
	bcu.mutation.SetName(s)
	return bcu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (bcu *BondCompanyUpdate) SetNillableName(s *string) *BondCompanyUpdate {
	if s != nil {
		bcu.SetName(*s)
	}
	return bcu
}

// SetAddress sets the "address" field.
func (bcu *BondCompanyUpdate) SetAddress(s string) *BondCompanyUpdate {
	bcu.mutation.SetAddress(s)
	return bcu
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (bcu *BondCompanyUpdate) SetNillableAddress(s *string) *BondCompanyUpdate {
	if s != nil {
		bcu.SetAddress(*s)
	}
	return bcu
}

// ClearAddress clears the value of the "address" field.
func (bcu *BondCompanyUpdate) ClearAddress() *BondCompanyUpdate {
	bcu.mutation.ClearAddress()
	return bcu
}

// SetPhone sets the "phone" field.
func (bcu *BondCompanyUpdate) SetPhone(s string) *BondCompanyUpdate {
	bcu.mutation.SetPhone(s)
	return bcu
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (bcu *BondCompanyUpdate) SetNillablePhone(s *string) *BondCompanyUpdate {
	if s != nil {
		bcu.SetPhone(*s)
	}
	return bcu
}

// ClearPhone clears the value of the "phone" field.
func (bcu *BondCompanyUpdate) ClearPhone() *BondCompanyUpdate {
	bcu.mutation.ClearPhone()
	return bcu
}

// Mutation returns the BondCompanyMutation object of the builder.
func (bcu *BondCompanyUpdate) Mutation() *BondCompanyMutation {
	return bcu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (bcu *BondCompanyUpdate) Save(ctx context.Context) (int, error) {
	bcu.defaults()
	return withHooks(ctx, bcu.sqlSave, bcu.mutation, bcu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bcu *BondCompanyUpdate) SaveX(ctx context.Context) int {
	affected, err := bcu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (bcu *BondCompanyUpdate) Exec(ctx context.Context) error {
	_, err := bcu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bcu *BondCompanyUpdate) ExecX(ctx context.Context) {
	if err := bcu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bcu *BondCompanyUpdate) defaults() {
	if _, ok := bcu.mutation.UpdatedAt(); !ok {
		v := bondcompany.UpdateDefaultUpdatedAt()
		bcu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bcu *BondCompanyUpdate) check() error {
	if v, ok := bcu.mutation.Code(); ok {
		if err := bondcompany.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "BondCompany.code": %w`, err)}
		}
	}
	if v, ok := bcu.mutation.Name(); ok {
		if err := bondcompany.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BondCompany.name": %w`, err)}
		}
	}
	return nil
}

func (bcu *BondCompanyUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := bcu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(bondcompany.Table, bondcompany.Columns, sqlgraph.NewFieldSpec(bondcompany.FieldID, field.TypeString))
	if ps := bcu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if bcu.mutation.TenantIDCleared() {
		_spec.ClearField(bondcompany.FieldTenantID, field.TypeString)
	}
	if value, ok := bcu.mutation.Status(); ok {
		_spec.SetField(bondcompany.FieldStatus, field.TypeString, value)
	}
	if value, ok := bcu.mutation.UpdatedAt(); ok {
		_spec.SetField(bondcompany.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := bcu.mutation.CreatedBy(); ok {
		_spec.SetField(bondcompany.FieldCreatedBy, field.TypeString, value)
	}
	if bcu.mutation.CreatedByCleared() {
		_spec.ClearField(bondcompany.FieldCreatedBy, field.TypeString)
	}
	if value, ok := bcu.mutation.UpdatedBy(); ok {
		_spec.SetField(bondcompany.FieldUpdatedBy, field.TypeString, value)
	}
	if bcu.mutation.UpdatedByCleared() {
		_spec.ClearField(bondcompany.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := bcu.mutation.Code(); ok {
		_spec.SetField(bondcompany.FieldCode, field.TypeString, value)
	}
	if value, ok := bcu.mutation.Name(); ok {
		_spec.SetField(bondcompany.FieldName, field.TypeString, value)
	}
	if value, ok := bcu.mutation.Address(); ok {
		_spec.SetField(bondcompany.FieldAddress, field.TypeString, value)
	}
	if bcu.mutation.AddressCleared() {
		_spec.ClearField(bondcompany.FieldAddress, field.TypeString)
	}
	if value, ok := bcu.mutation.Phone(); ok {
		_spec.SetField(bondcompany.FieldPhone, field.TypeString, value)
	}
	if bcu.mutation.PhoneCleared() {
		_spec.ClearField(bondcompany.FieldPhone, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, bcu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bondcompany.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	bcu.mutation.done = true
	return n, nil
}

// BondCompanyUpdateOne is the builder for updating a single BondCompany entity.
type BondCompanyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BondCompanyMutation
}

// SetStatus sets the "status" field.
func (bcuo *BondCompanyUpdateOne) SetStatus(s string) *BondCompanyUpdateOne {
	bcuo.mutation.SetStatus(s)
	return bcuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (bcuo *BondCompanyUpdateOne) SetNillableStatus(s *string) *BondCompanyUpdateOne {
	if s != nil {
		bcuo.SetStatus(*s)
	}
	return bcuo
}

// SetUpdatedAt sets the "updated_at" field.
func (bcuo *BondCompanyUpdateOne) SetUpdatedAt(t time.Time) *BondCompanyUpdateOne {
	bcuo.mutation.SetUpdatedAt(t)
	return bcuo
}

// SetCreatedBy sets the "created_by" field.
func (bcuo *BondCompanyUpdateOne) SetCreatedBy(s string) *BondCompanyUpdateOne {
	bcuo.mutation.SetCreatedBy(s)
	return bcuo
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (bcuo *BondCompanyUpdateOne) SetNillableCreatedBy(s *string) *BondCompanyUpdateOne {
	if s != nil {
		bcuo.SetCreatedBy(*s)
	}
	return bcuo
}

// ClearCreatedBy clears the value of the "created_by" field.
func (bcuo *BondCompanyUpdateOne) ClearCreatedBy() *BondCompanyUpdateOne {
	bcuo.mutation.ClearCreatedBy()
	return bcuo
}

// SetUpdatedBy sets the "updated_by" field.
func (bcuo *BondCompanyUpdateOne) SetUpdatedBy(s string) *BondCompanyUpdateOne {
	bcuo.mutation.SetUpdatedBy(s)
	return bcuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (bcuo *BondCompanyUpdateOne) SetNillableUpdatedBy(s *string) *BondCompanyUpdateOne {
	if s != nil {
		bcuo.SetUpdatedBy(*s)
	}
	return bcuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (bcuo *BondCompanyUpdateOne) ClearUpdatedBy() *BondCompanyUpdateOne {
	bcuo.mutation.ClearUpdatedBy()
	return bcuo
}

// SetCode sets the "code" field.
func (bcuo *BondCompanyUpdateOne) SetCode(s string) *BondCompanyUpdateOne {
	bcuo.mutation.SetCode(s)
	return bcuo
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (bcuo *BondCompanyUpdateOne) SetNillableCode(s *string) *BondCompanyUpdateOne {
	if s != nil {
		bcuo.SetCode(*s)
	}
	return bcuo
}

// SetName sets the "name" field.
func (bcuo *BondCompanyUpdateOne) SetName(s string) *BondCompanyUpdateOne {
	bcuo.mutation.SetName(s)
	return bcuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (bcuo *BondCompanyUpdateOne) SetNillableName(s *string) *BondCompanyUpdateOne {
	if s != nil {
		bcuo.SetName(*s)
	}
	return bcuo
}

// SetAddress sets the "address" field.
func (bcuo *BondCompanyUpdateOne) SetAddress(s string) *BondCompanyUpdateOne {
	bcuo.mutation.SetAddress(s)
	return bcuo
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (bcuo *BondCompanyUpdateOne) SetNillableAddress(s *string) *BondCompanyUpdateOne {
	if s != nil {
		bcuo.SetAddress(*s)
	}
	return bcuo
}

// ClearAddress clears the value of the "address" field.
func (bcuo *BondCompanyUpdateOne) ClearAddress() *BondCompanyUpdateOne {
	bcuo.mutation.ClearAddress()
	return bcuo
}

// SetPhone sets the "phone" field.
func (bcuo *BondCompanyUpdateOne) SetPhone(s string) *BondCompanyUpdateOne {
	bcuo.mutation.SetPhone(s)
	return bcuo
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (bcuo *BondCompanyUpdateOne) SetNillablePhone(s *string) *BondCompanyUpdateOne {
	if s != nil {
		bcuo.SetPhone(*s)
	}
	return bcuo
}

// ClearPhone clears the value of the "phone" field.
func (bcuo *BondCompanyUpdateOne) ClearPhone() *BondCompanyUpdateOne {
	bcuo.mutation.ClearPhone()
	return bcuo
}

// Mutation returns the BondCompanyMutation object of the builder.
func (bcuo *BondCompanyUpdateOne) Mutation() *BondCompanyMutation {
	return bcuo.mutation
}

// Where appends a list predicates to the BondCompanyUpdate builder.
func (bcuo *BondCompanyUpdateOne) Where(ps ...predicate.BondCompany) *BondCompanyUpdateOne {
	bcuo.mutation.Where(ps...)
	return bcuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (bcuo *BondCompanyUpdateOne) Select(field string, fields ...string) *BondCompanyUpdateOne {
	bcuo.fields = append([]string{field}, fields...)
	return bcuo
}

// Save executes the query and returns the updated BondCompany entity.
func (bcuo *BondCompanyUpdateOne) Save(ctx context.Context) (*BondCompany, error) {
	bcuo.defaults()
	return withHooks(ctx, bcuo.sqlSave, bcuo.mutation, bcuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bcuo *BondCompanyUpdateOne) SaveX(ctx context.Context) *BondCompany {
	node, err := bcuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (bcuo *BondCompanyUpdateOne) Exec(ctx context.Context) error {
	_, err := bcuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bcuo *BondCompanyUpdateOne) ExecX(ctx context.Context) {
	if err := bcuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bcuo *BondCompanyUpdateOne) defaults() {
	if _, ok := bcuo.mutation.UpdatedAt(); !ok {
		v := bondcompany.UpdateDefaultUpdatedAt()
		bcuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bcuo *BondCompanyUpdateOne) check() error {
	if v, ok := bcuo.mutation.Code(); ok {
		if err := bondcompany.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "BondCompany.code": %w`, err)}
		}
	}
	if v, ok := bcuo.mutation.Name(); ok {
		if err := bondcompany.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BondCompany.name": %w`, err)}
		}
	}
	return nil
}

func (bcuo *BondCompanyUpdateOne) sqlSave(ctx context.Context) (_node *BondCompany, err error) {
	if err := bcuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bondcompany.Table, bondcompany.Columns, sqlgraph.NewFieldSpec(bondcompany.FieldID, field.TypeString))
	id, ok := bcuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BondCompany.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := bcuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bondcompany.FieldID)
		for _, f := range fields {
			if !bondcompany.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bondcompany.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := bcuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if bcuo.mutation.TenantIDCleared() {
		_spec.ClearField(bondcompany.FieldTenantID, field.TypeString)
	}
	if value, ok := bcuo.mutation.Status(); ok {
		_spec.SetField(bondcompany.FieldStatus, field.TypeString, value)
	}
	if value, ok := bcuo.mutation.UpdatedAt(); ok {
		_spec.SetField(bondcompany.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := bcuo.mutation.CreatedBy(); ok {
		_spec.SetField(bondcompany.FieldCreatedBy, field.TypeString, value)
	}
	if bcuo.mutation.CreatedByCleared() {
		_spec.ClearField(bondcompany.FieldCreatedBy, field.TypeString)
	}
	if value, ok := bcuo.mutation.UpdatedBy(); ok {
		_spec.SetField(bondcompany.FieldUpdatedBy, field.TypeString, value)
	}
	if bcuo.mutation.UpdatedByCleared() {
		_spec.ClearField(bondcompany.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := bcuo.mutation.Code(); ok {
		_spec.SetField(bondcompany.FieldCode, field.TypeString, value)
	}
	if value, ok := bcuo.mutation.Name(); ok {
		_spec.SetField(bondcompany.FieldName, field.TypeString, value)
	}
	if value, ok := bcuo.mutation.Address(); ok {
		_spec.SetField(bondcompany.FieldAddress, field.TypeString, value)
	}
	if bcuo.mutation.AddressCleared() {
		_spec.ClearField(bondcompany.FieldAddress, field.TypeString)
	}
	if value, ok := bcuo.mutation.Phone(); ok {
		_spec.SetField(bondcompany.FieldPhone, field.TypeString, value)
	}
	if bcuo.mutation.PhoneCleared() {
		_spec.ClearField(bondcompany.FieldPhone, field.TypeString)
	}
	_node = &BondCompany{config: bcuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, bcuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bondcompany.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	bcuo.mutation.done = true
	return _node, nil
}
