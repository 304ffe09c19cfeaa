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
	"github.com/pacsflow/pacsflow/ent/tenant"
)

// TenantCreate is the builder for creating a Tenant entity.
type TenantCreate struct {
	config
	mutation *TenantMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (tc *TenantCreate) SetTenantID(s string) *TenantCreate {
	tc.mutation.SetTenantID(s)
	return tc
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (tc *TenantCreate) SetNillableTenantID(s *string) *TenantCreate {
	if s != nil {
		tc.SetTenantID(*s)
	}
	return tc
}

// SetStatus sets the "status" field.
func (tc *TenantCreate) SetStatus(s string) *TenantCreate {
	tc.mutation.SetStatus(s)
	return tc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tc *TenantCreate) SetNillableStatus(s *string) *TenantCreate {
	if s != nil {
		tc.SetStatus(*s)
	}
	return tc
}

// SetCreatedAt sets the "created_at" field.
func (tc *TenantCreate) SetCreatedAt(t time.Time) *TenantCreate {
	tc.mutation.SetCreatedAt(t)
	return tc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (tc *TenantCreate) SetNillableCreatedAt(t *time.Time) *TenantCreate {
	if t != nil {
		tc.SetCreatedAt(*t)
	}
	return tc
}

// SetUpdatedAt sets the "updated_at" field.
func (tc *TenantCreate) SetUpdatedAt(t time.Time) *TenantCreate {
	tc.mutation.SetUpdatedAt(t)
	return tc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (tc *TenantCreate) SetNillableUpdatedAt(t *time.Time) *TenantCreate {
	if t != nil {
		tc.SetUpdatedAt(*t)
	}
	return tc
}

// SetCreatedBy sets the "created_by" field.
func (tc *TenantCreate) SetCreatedBy(s string) *TenantCreate {
	tc.mutation.SetCreatedBy(s)
	return tc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (tc *TenantCreate) SetNillableCreatedBy(s *string) *TenantCreate {
	if s != nil {
		tc.SetCreatedBy(*s)
	}
	return tc
}

// SetUpdatedBy sets the "updated_by" field.
func (tc *TenantCreate) SetUpdatedBy(s string) *TenantCreate {
	tc.mutation.SetUpdatedBy(s)
	return tc
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (tc *TenantCreate) SetNillableUpdatedBy(s *string) *TenantCreate {
	if s != nil {
		tc.SetUpdatedBy(*s)
	}
	return tc
}

// SetName sets the "name" field.
func (tc *TenantCreate) SetName(s string) *TenantCreate {
	tc.mutation.SetName(s)
	return tc
}

// SetSubdomain sets the "subdomain" field.
func (tc *TenantCreate) SetSubdomain(s string) *TenantCreate {
	tc.mutation.SetSubdomain(s)
	return tc
}

// SetAdminEmail sets the "admin_email" field.
func (tc *TenantCreate) SetAdminEmail(s string) *TenantCreate {
	tc.mutation.SetAdminEmail(s)
	return tc
}

// SetPlanID sets the "plan_id" field.
func (tc *TenantCreate) SetPlanID(s string) *TenantCreate {
	tc.mutation.SetPlanID(s)
	return tc
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (tc *TenantCreate) SetNillablePlanID(s *string) *TenantCreate {
	if s != nil {
		tc.SetPlanID(*s)
	}
	return tc
}

// SetEnabled sets the "enabled" field.
func (tc *TenantCreate) SetEnabled(b bool) *TenantCreate {
	tc.mutation.SetEnabled(b)
	return tc
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (tc *TenantCreate) SetNillableEnabled(b *bool) *TenantCreate {
	if b != nil {
		tc.SetEnabled(*b)
	}
	return tc
}

// SetAeTitle sets the "ae_title" field.
func (tc *TenantCreate) SetAeTitle(s string) *TenantCreate {
	tc.mutation.SetAeTitle(s)
	return tc
}

// SetNillableAeTitle sets the "ae_title" field if the given value is not nil.
func (tc *TenantCreate) SetNillableAeTitle(s *string) *TenantCreate {
	if s != nil {
		tc.SetAeTitle(*s)
	}
	return tc
}

// SetServiceAddress sets the "service_address" field.
func (tc *TenantCreate) SetServiceAddress(s string) *TenantCreate {
	tc.mutation.SetServiceAddress(s)
	return tc
}

// SetNillableServiceAddress sets the "service_address" field if the given value is not nil.
func (tc *TenantCreate) SetNillableServiceAddress(s *string) *TenantCreate {
	if s != nil {
		tc.SetServiceAddress(*s)
	}
	return tc
}

// SetMetadata sets the "metadata" field.
func (tc *TenantCreate) SetMetadata(m map[string]string) *TenantCreate {
	tc.mutation.SetMetadata(m)
	return tc
}

// SetID sets the "id" field.
func (tc *TenantCreate) SetID(s string) *TenantCreate {
	tc.mutation.SetID(s)
	return tc
}

// Mutation returns the TenantMutation object of the builder.
func (tc *TenantCreate) Mutation() *TenantMutation {
	return tc.mutation
}

// Save creates the Tenant in the database.
func (tc *TenantCreate) Save(ctx context.Context) (*Tenant, error) {
	tc.defaults()
	return withHooks(ctx, tc.sqlSave, tc.mutation, tc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tc *TenantCreate) SaveX(ctx context.Context) *Tenant {
	v, err := tc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tc *TenantCreate) Exec(ctx context.Context) error {
	_, err := tc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tc *TenantCreate) ExecX(ctx context.Context) {
	if err := tc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tc *TenantCreate) defaults() {
	if _, ok := tc.mutation.Status(); !ok {
		v := tenant.DefaultStatus
		tc.mutation.SetStatus(v)
	}
	if _, ok := tc.mutation.CreatedAt(); !ok {
		v := tenant.DefaultCreatedAt()
		tc.mutation.SetCreatedAt(v)
	}
	if _, ok := tc.mutation.UpdatedAt(); !ok {
		v := tenant.DefaultUpdatedAt()
		tc.mutation.SetUpdatedAt(v)
	}
	if _, ok := tc.mutation.Enabled(); !ok {
		v := tenant.DefaultEnabled
		tc.mutation.SetEnabled(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tc *TenantCreate) check() error {
	if _, ok := tc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Tenant.status"`)}
	}
	if _, ok := tc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Tenant.created_at"`)}
	}
	if _, ok := tc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Tenant.updated_at"`)}
	}
	if _, ok := tc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Tenant.name"`)}
	}
	if v, ok := tc.mutation.Name(); ok {
		if err := tenant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Tenant.name": %w`, err)}
		}
	}
	if _, ok := tc.mutation.Subdomain(); !ok {
		return &ValidationError{Name: "subdomain", err: errors.New(`ent: missing required field "Tenant.subdomain"`)}
	}
	if v, ok := tc.mutation.Subdomain(); ok {
		if err := tenant.SubdomainValidator(v); err != nil {
			return &ValidationError{Name: "subdomain", err: fmt.Errorf(`ent: validator failed for field "Tenant.subdomain": %w`, err)}
		}
	}
	if _, ok := tc.mutation.AdminEmail(); !ok {
		return &ValidationError{Name: "admin_email", err: errors.New(`ent: missing required field "Tenant.admin_email"`)}
	}
	if v, ok := tc.mutation.AdminEmail(); ok {
		if err := tenant.AdminEmailValidator(v); err != nil {
			return &ValidationError{Name: "admin_email", err: fmt.Errorf(`ent: validator failed for field "Tenant.admin_email": %w`, err)}
		}
	}
	if _, ok := tc.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Tenant.enabled"`)}
	}
	return nil
}

func (tc *TenantCreate) sqlSave(ctx context.Context) (*Tenant, error) {
	if err := tc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Tenant.ID type: %T", _spec.ID.Value)
		}
	}
	tc.mutation.id = &_node.ID
	tc.mutation.done = true
	return _node, nil
}

func (tc *TenantCreate) createSpec() (*Tenant, *sqlgraph.CreateSpec) {
	var (
		_node = &Tenant{config: tc.config}
		_spec = sqlgraph.NewCreateSpec(tenant.Table, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString))
	)
	_spec.OnConflict = tc.conflict
	if id, ok := tc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := tc.mutation.TenantID(); ok {
		_spec.SetField(tenant.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := tc.mutation.Status(); ok {
		_spec.SetField(tenant.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := tc.mutation.CreatedAt(); ok {
		_spec.SetField(tenant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := tc.mutation.UpdatedAt(); ok {
		_spec.SetField(tenant.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := tc.mutation.CreatedBy(); ok {
		_spec.SetField(tenant.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := tc.mutation.UpdatedBy(); ok {
		_spec.SetField(tenant.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := tc.mutation.Name(); ok {
		_spec.SetField(tenant.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := tc.mutation.Subdomain(); ok {
		_spec.SetField(tenant.FieldSubdomain, field.TypeString, value)
		_node.Subdomain = value
	}
	if value, ok := tc.mutation.AdminEmail(); ok {
		_spec.SetField(tenant.FieldAdminEmail, field.TypeString, value)
		_node.AdminEmail = value
	}
	if value, ok := tc.mutation.PlanID(); ok {
		_spec.SetField(tenant.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := tc.mutation.Enabled(); ok {
		_spec.SetField(tenant.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := tc.mutation.AeTitle(); ok {
		_spec.SetField(tenant.FieldAeTitle, field.TypeString, value)
		_node.AeTitle = &value
	}
	if value, ok := tc.mutation.ServiceAddress(); ok {
		_spec.SetField(tenant.FieldServiceAddress, field.TypeString, value)
		_node.ServiceAddress = &value
	}
	if value, ok := tc.mutation.Metadata(); ok {
		_spec.SetField(tenant.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Tenant.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TenantUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (tc *TenantCreate) OnConflict(opts ...sql.ConflictOption) *TenantUpsertOne {
	tc.conflict = opts
	return &TenantUpsertOne{
		create: tc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Tenant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (tc *TenantCreate) OnConflictColumns(columns ...string) *TenantUpsertOne {
	tc.conflict = append(tc.conflict, sql.ConflictColumns(columns...))
	return &TenantUpsertOne{
		create: tc,
	}
}

type (
	// TenantUpsertOne is the builder for "upsert"-ing
	//  one Tenant node.
	TenantUpsertOne struct {
		create *TenantCreate
	}

	// TenantUpsert is the "OnConflict" setter.
	TenantUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *TenantUpsert) SetStatus(v string) *TenantUpsert {
	u.Set(tenant.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TenantUpsert) UpdateStatus() *TenantUpsert {
	u.SetExcluded(tenant.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TenantUpsert) SetUpdatedAt(v time.Time) *TenantUpsert {
	u.Set(tenant.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TenantUpsert) UpdateUpdatedAt() *TenantUpsert {
	u.SetExcluded(tenant.FieldUpdatedAt)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *TenantUpsert) SetCreatedBy(v string) *TenantUpsert {
	u.Set(tenant.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *TenantUpsert) UpdateCreatedBy() *TenantUpsert {
	u.SetExcluded(tenant.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *TenantUpsert) ClearCreatedBy() *TenantUpsert {
	u.SetNull(tenant.FieldCreatedBy)
	return u
}

// SetUpdatedBy sets the "updated_by" field.
func (u *TenantUpsert) SetUpdatedBy(v string) *TenantUpsert {
	u.Set(tenant.FieldUpdatedBy, v)
	return u
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *TenantUpsert) UpdateUpdatedBy() *TenantUpsert {
	u.SetExcluded(tenant.FieldUpdatedBy)
	return u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *TenantUpsert) ClearUpdatedBy() *TenantUpsert {
	u.SetNull(tenant.FieldUpdatedBy)
	return u
}

// SetName sets the "name" field.
func (u *TenantUpsert) SetName(v string) *TenantUpsert {
	u.Set(tenant.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TenantUpsert) UpdateName() *TenantUpsert {
	u.SetExcluded(tenant.FieldName)
	return u
}

// SetAdminEmail sets the "admin_email" field.
func (u *TenantUpsert) SetAdminEmail(v string) *TenantUpsert {
	u.Set(tenant.FieldAdminEmail, v)
	return u
}

// UpdateAdminEmail sets the "admin_email" field to the value that was provided on create.
func (u *TenantUpsert) UpdateAdminEmail() *TenantUpsert {
	u.SetExcluded(tenant.FieldAdminEmail)
	return u
}

// SetPlanID sets the "plan_id" field.
func (u *TenantUpsert) SetPlanID(v string) *TenantUpsert {
	u.Set(tenant.FieldPlanID, v)
	return u
}

// UpdatePlanID sets the "plan_id" field to the value that was provided on create.
func (u *TenantUpsert) UpdatePlanID() *TenantUpsert {
	u.SetExcluded(tenant.FieldPlanID)
	return u
}

// ClearPlanID clears the value of the "plan_id" field.
func (u *TenantUpsert) ClearPlanID() *TenantUpsert {
	u.SetNull(tenant.FieldPlanID)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *TenantUpsert) SetEnabled(v bool) *TenantUpsert {
	u.Set(tenant.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *TenantUpsert) UpdateEnabled() *TenantUpsert {
	u.SetExcluded(tenant.FieldEnabled)
	return u
}

// SetAeTitle sets the "ae_title" field.
func (u *TenantUpsert) SetAeTitle(v string) *TenantUpsert {
	u.Set(tenant.FieldAeTitle, v)
	return u
}

// UpdateAeTitle sets the "ae_title" field to the value that was provided on create.
func (u *TenantUpsert) UpdateAeTitle() *TenantUpsert {
	u.SetExcluded(tenant.FieldAeTitle)
	return u
}

// ClearAeTitle clears the value of the "ae_title" field.
func (u *TenantUpsert) ClearAeTitle() *TenantUpsert {
	u.SetNull(tenant.FieldAeTitle)
	return u
}

// SetServiceAddress sets the "service_address" field.
func (u *TenantUpsert) SetServiceAddress(v string) *TenantUpsert {
	u.Set(tenant.FieldServiceAddress, v)
	return u
}

// UpdateServiceAddress sets the "service_address" field to the value that was provided on create.
func (u *TenantUpsert) UpdateServiceAddress() *TenantUpsert {
	u.SetExcluded(tenant.FieldServiceAddress)
	return u
}

// ClearServiceAddress clears the value of the "service_address" field.
func (u *TenantUpsert) ClearServiceAddress() *TenantUpsert {
	u.SetNull(tenant.FieldServiceAddress)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *TenantUpsert) SetMetadata(v map[string]string) *TenantUpsert {
	u.Set(tenant.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *TenantUpsert) UpdateMetadata() *TenantUpsert {
	u.SetExcluded(tenant.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *TenantUpsert) ClearMetadata() *TenantUpsert {
	u.SetNull(tenant.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Tenant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tenant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TenantUpsertOne) UpdateNewValues() *TenantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(tenant.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(tenant.FieldTenantID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(tenant.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.Subdomain(); exists {
			s.SetIgnore(tenant.FieldSubdomain)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Tenant.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TenantUpsertOne) Ignore() *TenantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TenantUpsertOne) DoNothing() *TenantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TenantCreate.OnConflict
// documentation for more info.
func (u *TenantUpsertOne) Update(set func(*TenantUpsert)) *TenantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TenantUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *TenantUpsertOne) SetStatus(v string) *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TenantUpsertOne) UpdateStatus() *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TenantUpsertOne) SetUpdatedAt(v time.Time) *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TenantUpsertOne) UpdateUpdatedAt() *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *TenantUpsertOne) SetCreatedBy(v string) *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *TenantUpsertOne) UpdateCreatedBy() *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *TenantUpsertOne) ClearCreatedBy() *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *TenantUpsertOne) SetUpdatedBy(v string) *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *TenantUpsertOne) UpdateUpdatedBy() *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *TenantUpsertOne) ClearUpdatedBy() *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetName sets the "name" field.
func (u *TenantUpsertOne) SetName(v string) *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TenantUpsertOne) UpdateName() *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateName()
	})
}

// SetAdminEmail sets the "admin_email" field.
func (u *TenantUpsertOne) SetAdminEmail(v string) *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.SetAdminEmail(v)
	})
}

// UpdateAdminEmail sets the "admin_email" field to the value that was provided on create.
func (u *TenantUpsertOne) UpdateAdminEmail() *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateAdminEmail()
	})
}

// SetPlanID sets the "plan_id" field.
func (u *TenantUpsertOne) SetPlanID(v string) *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.SetPlanID(v)
	})
}

// UpdatePlanID sets the "plan_id" field to the value that was provided on create.
func (u *TenantUpsertOne) UpdatePlanID() *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.UpdatePlanID()
	})
}

// ClearPlanID clears the value of the "plan_id" field.
func (u *TenantUpsertOne) ClearPlanID() *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.ClearPlanID()
	})
}

// SetEnabled sets the "enabled" field.
func (u *TenantUpsertOne) SetEnabled(v bool) *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *TenantUpsertOne) UpdateEnabled() *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateEnabled()
	})
}

// SetAeTitle sets the "ae_title" field.
func (u *TenantUpsertOne) SetAeTitle(v string) *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.SetAeTitle(v)
	})
}

// UpdateAeTitle sets the "ae_title" field to the value that was provided on create.
func (u *TenantUpsertOne) UpdateAeTitle() *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateAeTitle()
	})
}

// ClearAeTitle clears the value of the "ae_title" field.
func (u *TenantUpsertOne) ClearAeTitle() *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.ClearAeTitle()
	})
}

// SetServiceAddress sets the "service_address" field.
func (u *TenantUpsertOne) SetServiceAddress(v string) *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.SetServiceAddress(v)
	})
}

// UpdateServiceAddress sets the "service_address" field to the value that was provided on create.
func (u *TenantUpsertOne) UpdateServiceAddress() *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateServiceAddress()
	})
}

// ClearServiceAddress clears the value of the "service_address" field.
func (u *TenantUpsertOne) ClearServiceAddress() *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.ClearServiceAddress()
	})
}

// SetMetadata sets the "metadata" field.
func (u *TenantUpsertOne) SetMetadata(v map[string]string) *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *TenantUpsertOne) UpdateMetadata() *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *TenantUpsertOne) ClearMetadata() *TenantUpsertOne {
	return u.Update(func(s *TenantUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *TenantUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TenantCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TenantUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TenantUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TenantUpsertOne.ID is not supported by MySQL driver. Use TenantUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TenantUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TenantCreateBulk is the builder for creating many Tenant entities in bulk.
type TenantCreateBulk struct {
	config
	err      error
	builders []*TenantCreate
	conflict []sql.ConflictOption
}

// Save creates the Tenant entities in the database.
func (tcb *TenantCreateBulk) Save(ctx context.Context) ([]*Tenant, error) {
	if tcb.err != nil {
		return nil, tcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tcb.builders))
	nodes := make([]*Tenant, len(tcb.builders))
	mutators := make([]Mutator, len(tcb.builders))
	for i := range tcb.builders {
		func(i int, root context.Context) {
			builder := tcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TenantMutation)
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
					_, err = mutators[i+1].Mutate(root, tcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = tcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, tcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tcb *TenantCreateBulk) SaveX(ctx context.Context) []*Tenant {
	v, err := tcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tcb *TenantCreateBulk) Exec(ctx context.Context) error {
	_, err := tcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tcb *TenantCreateBulk) ExecX(ctx context.Context) {
	if err := tcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Tenant.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TenantUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (tcb *TenantCreateBulk) OnConflict(opts ...sql.ConflictOption) *TenantUpsertBulk {
	tcb.conflict = opts
	return &TenantUpsertBulk{
		create: tcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Tenant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (tcb *TenantCreateBulk) OnConflictColumns(columns ...string) *TenantUpsertBulk {
	tcb.conflict = append(tcb.conflict, sql.ConflictColumns(columns...))
	return &TenantUpsertBulk{
		create: tcb,
	}
}

// TenantUpsertBulk is the builder for "upsert"-ing
// a bulk of Tenant nodes.
type TenantUpsertBulk struct {
	create *TenantCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Tenant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tenant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TenantUpsertBulk) UpdateNewValues() *TenantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(tenant.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(tenant.FieldTenantID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(tenant.FieldCreatedAt)
			}
			if _, exists := b.mutation.Subdomain(); exists {
				s.SetIgnore(tenant.FieldSubdomain)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Tenant.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TenantUpsertBulk) Ignore() *TenantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TenantUpsertBulk) DoNothing() *TenantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TenantCreateBulk.OnConflict
// documentation for more info.
func (u *TenantUpsertBulk) Update(set func(*TenantUpsert)) *TenantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TenantUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *TenantUpsertBulk) SetStatus(v string) *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TenantUpsertBulk) UpdateStatus() *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TenantUpsertBulk) SetUpdatedAt(v time.Time) *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TenantUpsertBulk) UpdateUpdatedAt() *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *TenantUpsertBulk) SetCreatedBy(v string) *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *TenantUpsertBulk) UpdateCreatedBy() *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *TenantUpsertBulk) ClearCreatedBy() *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedBy sets the "updated_by" field.
func (u *TenantUpsertBulk) SetUpdatedBy(v string) *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.SetUpdatedBy(v)
	})
}

// UpdateUpdatedBy sets the "updated_by" field to the value that was provided on create.
func (u *TenantUpsertBulk) UpdateUpdatedBy() *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateUpdatedBy()
	})
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (u *TenantUpsertBulk) ClearUpdatedBy() *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.ClearUpdatedBy()
	})
}

// SetName sets the "name" field.
func (u *TenantUpsertBulk) SetName(v string) *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TenantUpsertBulk) UpdateName() *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateName()
	})
}

// SetAdminEmail sets the "admin_email" field.
func (u *TenantUpsertBulk) SetAdminEmail(v string) *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.SetAdminEmail(v)
	})
}

// UpdateAdminEmail sets the "admin_email" field to the value that was provided on create.
func (u *TenantUpsertBulk) UpdateAdminEmail() *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateAdminEmail()
	})
}

// SetPlanID sets the "plan_id" field.
func (u *TenantUpsertBulk) SetPlanID(v string) *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.SetPlanID(v)
	})
}

// UpdatePlanID sets the "plan_id" field to the value that was provided on create.
func (u *TenantUpsertBulk) UpdatePlanID() *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.UpdatePlanID()
	})
}

// ClearPlanID clears the value of the "plan_id" field.
func (u *TenantUpsertBulk) ClearPlanID() *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.ClearPlanID()
	})
}

// SetEnabled sets the "enabled" field.
func (u *TenantUpsertBulk) SetEnabled(v bool) *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *TenantUpsertBulk) UpdateEnabled() *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateEnabled()
	})
}

// SetAeTitle sets the "ae_title" field.
func (u *TenantUpsertBulk) SetAeTitle(v string) *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.SetAeTitle(v)
	})
}

// UpdateAeTitle sets the "ae_title" field to the value that was provided on create.
func (u *TenantUpsertBulk) UpdateAeTitle() *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateAeTitle()
	})
}

// ClearAeTitle clears the value of the "ae_title" field.
func (u *TenantUpsertBulk) ClearAeTitle() *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.ClearAeTitle()
	})
}

// SetServiceAddress sets the "service_address" field.
func (u *TenantUpsertBulk) SetServiceAddress(v string) *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.SetServiceAddress(v)
	})
}

// UpdateServiceAddress sets the "service_address" field to the value that was provided on create.
func (u *TenantUpsertBulk) UpdateServiceAddress() *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateServiceAddress()
	})
}

// ClearServiceAddress clears the value of the "service_address" field.
func (u *TenantUpsertBulk) ClearServiceAddress() *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.ClearServiceAddress()
	})
}

// SetMetadata sets the "metadata" field.
func (u *TenantUpsertBulk) SetMetadata(v map[string]string) *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *TenantUpsertBulk) UpdateMetadata() *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *TenantUpsertBulk) ClearMetadata() *TenantUpsertBulk {
	return u.Update(func(s *TenantUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *TenantUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TenantCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TenantCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TenantUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
