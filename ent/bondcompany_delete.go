// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pacsflow/pacsflow/ent/bondcompany"
	"github.com/pacsflow/pacsflow/ent/predicate"
)

// BondCompanyDelete is the builder for deleting a BondCompany entity.
type BondCompanyDelete struct {
	config
	hooks    []Hook
	mutation *BondCompanyMutation
}

// Where appends a list predicates to the BondCompanyDelete builder.
func (bcd *BondCompanyDelete) Where(ps ...predicate.BondCompany) *BondCompanyDelete {
	bcd.mutation.Where(ps...)
	return bcd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (bcd *BondCompanyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, bcd.sqlExec, bcd.mutation, bcd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (bcd *BondCompanyDelete) ExecX(ctx context.Context) int {
	n, err := bcd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (bcd *BondCompanyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(bondcompany.Table, sqlgraph.NewFieldSpec(bondcompany.FieldID, field.TypeString))
	if ps := bcd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, bcd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	bcd.mutation.done = true
	return affected, err
}

// BondCompanyDeleteOne is the builder for deleting a single BondCompany entity.
type BondCompanyDeleteOne struct {
	bcd *BondCompanyDelete
}

// Where appends a list predicates to the BondCompanyDelete builder.
func (bcdo *BondCompanyDeleteOne) Where(ps ...predicate.BondCompany) *BondCompanyDeleteOne {
	bcdo.bcd.mutation.Where(ps...)
	return bcdo
}

// Exec executes the deletion query.
func (bcdo *BondCompanyDeleteOne) Exec(ctx context.Context) error {
	n, err := bcdo.bcd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{bondcompany.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (bcdo *BondCompanyDeleteOne) ExecX(ctx context.Context) {
	if err := bcdo.Exec(ctx); err != nil {
		panic(err)
	}
}
