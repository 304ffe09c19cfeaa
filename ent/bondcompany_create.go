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
	"github.com/pacsflow/pacsflow/ent/bondcompany"
)

// BondCompanyCreate is the builder for creating a BondCompany entity.
type BondCompanyCreate struct {
	config
	mutation *BondCompanyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (bcc *BondCompanyCreate) SetTenantID(s string) *BondCompanyCreate {
	bcc.mutation.SetTenantID(s)
	return bcc
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (bcc *BondCompanyCreate) SetNillableTenantID(s *string) *BondCompanyCreate {
	if s != nil {
		bcc.SetTenantID(*s)
	}
	return bcc
}

// SetStatus sets the "status" field.
func (bcc *BondCompanyCreate) SetStatus(s string) *BondCompanyCreate {
	bcc.mutation.SetStatus(s)
	return bcc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (bcc *BondCompanyCreate) SetNillableStatus(s *string) *BondCompanyCreate {
	if s != nil {
		bcc.SetStatus(*s)
	}
	return bcc
}

// SetCreatedAt sets the "created_at" field.
func (bcc *BondCompanyCreate) SetCreatedAt(t time.Time) *BondCompanyCreate {
	bcc.mutation.SetCreatedAt(t)
	return bcc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (bcc *BondCompanyCreate) SetNillableCreatedAt(t *time.Time) *BondCompanyCreate {
	if t != nil {
		bcc.SetCreatedAt(*t)
	}
	return bcc
}

// SetUpdatedAt sets the "updated_at" field.
func (bcc *BondCompanyCreate) SetUpdatedAt(t time.Time) *BondCompanyCreate {
	bcc.mutation.SetUpdatedAt(t)
	return bcc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (bcc *BondCompanyCreate) SetNillableUpdatedAt(t *time.Time) *BondCompanyCreate {
	if t != nil {
		bcc.SetUpdatedAt(*t)
	}
	return bcc
}

// SetCreatedBy sets the "created_by" field.
func (bcc *BondCompanyCreate) SetCreatedBy(s string) *BondCompanyCreate {
	bcc.mutation.SetCreatedBy(s)
	return bcc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (bcc *BondCompanyCreate) SetNillableCreatedBy(s *string) *BondCompanyCreate {
	if s != nil {
		bcc.SetCreatedBy(*s)
	}
	return bcc
}

// SetUpdatedBy sets the "updated_by" field.
func (bcc *BondCompanyCreate) SetUpdatedBy(s string) *BondCompanyCreate {
	bcc.mutation.SetUpdatedBy(s)
	return bcc
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (bcc *BondCompanyCreate) SetNillableUpdatedBy(s *string) *BondCompanyCreate {
	if s != nil {
		bcc.SetUpdatedBy(*s)
	}
	return bcc
}

// SetCode sets the "code" field.
func (bcc *BondCompanyCreate) SetCode(s string) *BondCompanyCreate {
	bcc.mutation.SetCode(s)
	return bcc
}

// SetName sets the "name" field.
func (bcc *BondCompanyCreate) SetName(s string) *BondCompanyCreate {
	bcc.mutation.SetName(s)
	return bcc
}

// SetAddress sets the "address" field.
func (bcc *BondCompanyCreate) SetAddress(s string) *BondCompanyCreate {
	bcc.mutation.SetAddress(s)
	return bcc
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (bcc *BondCompanyCreate) SetNillableAddress(s *string) *BondCompanyCreate {
	if s != nil {
		bcc.SetAddress(*s)
	}
	return bcc
}

// SetPhone sets the "phone" field.
func (bcc *BondCompanyCreate) SetPhone(s string) *BondCompanyCreate {
	bcc.mutation.SetPhone(s)
	return bcc
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (bcc *BondCompanyCreate) SetNillablePhone(s *string) *BondCompanyCreate {
	if s != nil {
		bcc.SetPhone(*s)
	}
	return bcc
}

// SetID sets the "id" field.
func (bcc *BondCompanyCreate) SetID(s string) *BondCompanyCreate {
	bcc.mutation.SetID(s)
	return bcc
}

// Mutation returns the BondCompanyMutation object of the builder.
func (bcc *BondCompanyCreate) Mutation() *BondCompanyMutation {
	return bcc.mutation
}

// Save creates the BondCompany in the database.
func (bcc *BondCompanyCreate) Save(ctx context.Context) (*BondCompany, error) {
	bcc.defaults()
	return withHooks(ctx, bcc.sqlSave, bcc.mutation, bcc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (bcc *BondCompanyCreate) SaveX(ctx context.Context) *BondCompany {
	v, err := bcc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bcc *BondCompanyCreate) Exec(ctx context.Context) error {
	_, err := bcc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bcc *BondCompanyCreate) ExecX(ctx context.Context) {
	if err := bcc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bcc *BondCompanyCreate) defaults() {
	if _, ok := bcc.mutation.Status(); !ok {
		v := bondcompany.DefaultStatus
		bcc.mutation.SetStatus(v)
	}
	if _, ok := bcc.mutation.CreatedAt(); !ok {
		v := bondcompany.DefaultCreatedAt()
		bcc.mutation.SetCreatedAt(v)
	}
	if _, ok := bcc.mutation.UpdatedAt(); !ok {
		v := bondcompany.DefaultUpdatedAt()
		bcc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bcc *BondCompanyCreate) check() error {
	if _, ok := bcc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BondCompany.status"`)}
	}
	if _, ok := bcc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BondCompany.created_at"`)}
	}
	if _, ok := bcc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BondCompany.updated_at"`)}
	}
	if _, ok := bcc.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "BondCompany.code"`)}
	}
	if v, ok := bcc.mutation.Code(); ok {
		if err := bondcompany.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "BondCompany.code": %w`, err)}
		}
	}
	if _, ok := bcc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "BondCompany.name"`)}
	}
	if v, ok := bcc.mutation.Name(); ok {
		if err := bondcompany.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BondCompany.name": %w`, err)}
		}
	}
	return nil
}

func (bcc *BondCompanyCreate) sqlSave(ctx context.Context) (*BondCompany, error) {
	if err := bcc.check(); err != nil {
		return nil, err
	}
	_node, _spec := bcc.createSpec()
	if err := sqlgraph.CreateNode(ctx, bcc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected BondCompany.ID type: %T", _spec.ID.Value)
		}
	}
	bcc.mutation.id = &_node.ID
	bcc.mutation.done = true
	return _node, nil
}

func (bcc *BondCompanyCreate) createSpec() (*BondCompany, *sqlgraph.CreateSpec) {
	var (
		_node = &BondCompany{config: bcc.config}
		_spec = sqlgraph.NewCreateSpec(bondcompany.Table, sqlgraph.NewFieldSpec(bondcompany.FieldID, field.TypeString))
	)
	_spec.OnConflict = bcc.conflict
	if id, ok := bcc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := bcc.mutation.TenantID(); ok {
		_spec.SetField(bondcompany.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := bcc.mutation.Status(); ok {
		_spec.SetField(bondcompany.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := bcc.mutation.CreatedAt(); ok {
		_spec.SetField(bondcompany.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := bcc.mutation.UpdatedAt(); ok {
		_spec.SetField(bondcompany.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := bcc.mutation.CreatedBy(); ok {
		_spec.SetField(bondcompany.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := bcc.mutation.UpdatedBy(); ok {
		_spec.SetField(bondcompany.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := bcc.mutation.Code(); ok {
		_spec.SetField(bondcompany.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := bcc.mutation.Name(); ok {
		_spec.SetField(bondcompany.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := bcc.mutation.Address(); ok {
		_spec.SetField(bondcompany.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := bcc.mutation.Phone(); ok {
		_spec.SetField(bondcompany.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BondCompany.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BondCompanyUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (bcc *BondCompanyCreate) OnConflict(opts ...sql.ConflictOption) *BondCompanyUpsertOne {
	bcc.conflict = opts
	return &BondCompanyUpsertOne{
		create: bcc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BondCompany.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (bcc *BondCompanyCreate) OnConflictColumns(columns ...string) *BondCompanyUpsertOne {
	bcc.conflict = append(bcc.conflict, sql.ConflictColumns(columns...))
	return &BondCompanyUpsertOne{
		create: bcc,
	}
}

type (
	// BondCompanyUpsertOne is the builder for "upsert"-ing
	//  one BondCompany node.
	BondCompanyUpsertOne struct {
		create *BondCompanyCreate
	}

	// BondCompanyUpsert is the "OnConflict" setter.
	BondCompanyUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *BondCompanyUpsert) SetStatus(v string) *BondCompanyUpsert {
	u.Set(bondcompany.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BondCompanyUpsert) UpdateStatus() *BondCompanyUpsert {
	u.SetExcluded(bondcompany.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BondCompanyUpsert) SetUpdatedAt(v time.Time) *BondCompanyUpsert {
	u.Set(bondcompany.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BondCompanyUpsert) UpdateUpdatedAt() *BondCompanyUpsert {
	u.SetExcluded(bondcompany.FieldUpdatedAt)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *BondCompanyUpsert) SetCreatedBy(v string) *BondCompanyUpsert {
	u.Set(bondcompany.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *BondCompanyUpsert) UpdateCreatedBy() *BondCompanyUpsert {
	u.SetExcluded(bondcompany.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *BondCompanyUpsert) ClearCreatedBy() *BondCompanyUpsert {
	u.SetNull(bondcompany.FieldCreatedBy)
	return u
}

// SetUpdatedBy sets the "updated_by" field.
func (u *BondCompanyUpsert) SetUpdatedBy(v string) *BondCompanyUpsert {
	u.Set(bondcompany.FieldUpdatedBy, v)
	return u
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *BondCompanyUpsert) UpdateUpdatedBy() *BondCompanyUpsert {
	u.SetExcluded(bondcompany.FieldUpdatedBy)
	return u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *BondCompanyUpsert) ClearUpdatedBy() *BondCompanyUpsert {
	u.SetNull(bondcompany.FieldUpdatedBy)
	return u
}

// SetCode sets the "code" field.
func (u *BondCompanyUpsert) SetCode(v string) *BondCompanyUpsert {
	u.Set(bondcompany.FieldCode, v)
	return u
}

// UpdateCode sets the "code" field to the value that was provided on create.
func (u *BondCompanyUpsert) UpdateCode() *BondCompanyUpsert {
	u.SetExcluded(bondcompany.FieldCode)
	return u
}

// SetName sets the "name" field.
func (u *BondCompanyUpsert) SetName(v string) *BondCompanyUpsert {
	u.Set(bondcompany.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BondCompanyUpsert) UpdateName() *BondCompanyUpsert {
	u.SetExcluded(bondcompany.FieldName)
	return u
}

// SetAddress sets the "address" field.
func (u *BondCompanyUpsert) SetAddress(v string) *BondCompanyUpsert {
	u.Set(bondcompany.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *BondCompanyUpsert) UpdateAddress() *BondCompanyUpsert {
	u.SetExcluded(bondcompany.FieldAddress)
	return u
}

// ClearAddress clears the value of the "address" field.
func (u *BondCompanyUpsert) ClearAddress() *BondCompanyUpsert {
	u.SetNull(bondcompany.FieldAddress)
	return u
}

// SetPhone sets the "phone" field.
func (u *BondCompanyUpsert) SetPhone(v string) *BondCompanyUpsert {
	u.Set(bondcompany.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *BondCompanyUpsert) UpdatePhone() *BondCompanyUpsert {
	u.SetExcluded(bondcompany.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *BondCompanyUpsert) ClearPhone() *BondCompanyUpsert {
	u.SetNull(bondcompany.FieldPhone)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.BondCompany.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(bondcompany.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BondCompanyUpsertOne) UpdateNewValues() *BondCompanyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(bondcompany.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(bondcompany.FieldTenantID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(bondcompany.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BondCompany.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BondCompanyUpsertOne) Ignore() *BondCompanyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BondCompanyUpsertOne) DoNothing() *BondCompanyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BondCompanyCreate.OnConflict
// documentation for more info.
func (u *BondCompanyUpsertOne) Update(set func(*BondCompanyUpsert)) *BondCompanyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BondCompanyUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *BondCompanyUpsertOne) SetStatus(v string) *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BondCompanyUpsertOne) UpdateStatus() *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BondCompanyUpsertOne) SetUpdatedAt(v time.Time) *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BondCompanyUpsertOne) UpdateUpdatedAt() *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *BondCompanyUpsertOne) SetCreatedBy(v string) *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *BondCompanyUpsertOne) UpdateCreatedBy() *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *BondCompanyUpsertOne) ClearCreatedBy() *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *BondCompanyUpsertOne) SetUpdatedBy(v string) *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *BondCompanyUpsertOne) UpdateUpdatedBy() *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *BondCompanyUpsertOne) ClearUpdatedBy() *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetCode sets the "code" field.
func (u *BondCompanyUpsertOne) SetCode(v string) *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.SetCode(v)
	})
}

// UpdateCode sets the "code" field to the value that was provided on create.
func (u *BondCompanyUpsertOne) UpdateCode() *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.UpdateCode()
	})
}

// SetName sets the "name" field.
func (u *BondCompanyUpsertOne) SetName(v string) *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BondCompanyUpsertOne) UpdateName() *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.UpdateName()
	})
}

// SetAddress sets the "address" field.
func (u *BondCompanyUpsertOne) SetAddress(v string) *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *BondCompanyUpsertOne) UpdateAddress() *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *BondCompanyUpsertOne) ClearAddress() *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.ClearAddress()
	})
}

// SetPhone sets the "phone" field.
func (u *BondCompanyUpsertOne) SetPhone(v string) *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *BondCompanyUpsertOne) UpdatePhone() *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *BondCompanyUpsertOne) ClearPhone() *BondCompanyUpsertOne {
	return u.Update(func(s *BondCompanyUpsert) {
		s.ClearPhone()
	})
}

// Exec executes the query.
func (u *BondCompanyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BondCompanyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BondCompanyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BondCompanyUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BondCompanyUpsertOne.ID is not supported by MySQL driver. Use BondCompanyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BondCompanyUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BondCompanyCreateBulk is the builder for creating many BondCompany entities in bulk.
type BondCompanyCreateBulk struct {
	config
	err      error
	builders []*BondCompanyCreate
	conflict []sql.ConflictOption
}

// Save creates the BondCompany entities in the database.
func (bccb *BondCompanyCreateBulk) Save(ctx context.Context) ([]*BondCompany, error) {
	if bccb.err != nil {
		return nil, bccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(bccb.builders))
	nodes := make([]*BondCompany, len(bccb.builders))
	mutators := make([]Mutator, len(bccb.builders))
	for i := range bccb.builders {
		func(i int, root context.Context) {
			builder := bccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BondCompanyMutation)
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
					_, err = mutators[i+1].Mutate(root, bccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = bccb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, bccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, bccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (bccb *BondCompanyCreateBulk) SaveX(ctx context.Context) []*BondCompany {
	v, err := bccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bccb *BondCompanyCreateBulk) Exec(ctx context.Context) error {
	_, err := bccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bccb *BondCompanyCreateBulk) ExecX(ctx context.Context) {
	if err := bccb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BondCompany.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BondCompanyUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (bccb *BondCompanyCreateBulk) OnConflict(opts ...sql.ConflictOption) *BondCompanyUpsertBulk {
	bccb.conflict = opts
	return &BondCompanyUpsertBulk{
		create: bccb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BondCompany.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (bccb *BondCompanyCreateBulk) OnConflictColumns(columns ...string) *BondCompanyUpsertBulk {
	bccb.conflict = append(bccb.conflict, sql.ConflictColumns(columns...))
	return &BondCompanyUpsertBulk{
		create: bccb,
	}
}

// BondCompanyUpsertBulk is the builder for "upsert"-ing
// a bulk of BondCompany nodes.
type BondCompanyUpsertBulk struct {
	create *BondCompanyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BondCompany.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(bondcompany.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BondCompanyUpsertBulk) UpdateNewValues() *BondCompanyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(bondcompany.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(bondcompany.FieldTenantID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(bondcompany.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BondCompany.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BondCompanyUpsertBulk) Ignore() *BondCompanyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BondCompanyUpsertBulk) DoNothing() *BondCompanyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BondCompanyCreateBulk.OnConflict
// documentation for more info.
func (u *BondCompanyUpsertBulk) Update(set func(*BondCompanyUpsert)) *BondCompanyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BondCompanyUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *BondCompanyUpsertBulk) SetStatus(v string) *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BondCompanyUpsertBulk) UpdateStatus() *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BondCompanyUpsertBulk) SetUpdatedAt(v time.Time) *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BondCompanyUpsertBulk) UpdateUpdatedAt() *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *BondCompanyUpsertBulk) SetCreatedBy(v string) *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *BondCompanyUpsertBulk) UpdateCreatedBy() *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *BondCompanyUpsertBulk) ClearCreatedBy() *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *BondCompanyUpsertBulk) SetUpdatedBy(v string) *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *BondCompanyUpsertBulk) UpdateUpdatedBy() *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *BondCompanyUpsertBulk) ClearUpdatedBy() *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetCode sets the "code" field.
func (u *BondCompanyUpsertBulk) SetCode(v string) *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.SetCode(v)
	})
}

// UpdateCode sets the "code" field to the value that was provided on create.
func (u *BondCompanyUpsertBulk) UpdateCode() *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.UpdateCode()
	})
}

// SetName sets the "name" field.
func (u *BondCompanyUpsertBulk) SetName(v string) *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *BondCompanyUpsertBulk) UpdateName() *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.UpdateName()
	})
}

// SetAddress sets the "address" field.
func (u *BondCompanyUpsertBulk) SetAddress(v string) *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *BondCompanyUpsertBulk) UpdateAddress() *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *BondCompanyUpsertBulk) ClearAddress() *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.ClearAddress()
	})
}

// SetPhone sets the "phone" field.
func (u *BondCompanyUpsertBulk) SetPhone(v string) *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *BondCompanyUpsertBulk) UpdatePhone() *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *BondCompanyUpsertBulk) ClearPhone() *BondCompanyUpsertBulk {
	return u.Update(func(s *BondCompanyUpsert) {
		s.ClearPhone()
	})
}

// Exec executes the query.
func (u *BondCompanyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BondCompanyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BondCompanyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BondCompanyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
