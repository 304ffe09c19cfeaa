// Code generated by ent, DO NOT EDIT.

package tenant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/pacsflow/pacsflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldTenantID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldUpdatedBy, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldName, v))
}

// Subdomain applies equality check predicate on the "subdomain" field. It's identical to SubdomainEQ.
func Subdomain(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldSubdomain, v))
}

// AdminEmail applies equality check predicate on the "admin_email" field. It's identical to AdminEmailEQ.
func AdminEmail(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldAdminEmail, v))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldPlanID, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldEnabled, v))
}

// AeTitle applies equality check predicate on the "ae_title" field. It's identical to AeTitleEQ.
func AeTitle(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldAeTitle, v))
}

// ServiceAddress applies equality check predicate on the "service_address" field. It's identical to ServiceAddressEQ.
func ServiceAddress(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldServiceAddress, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDIsNil applies the IsNil predicate on the "tenant_id" field.
func TenantIDIsNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldIsNull(FieldTenantID))
}

// TenantIDNotNil applies the NotNil predicate on the "tenant_id" field.
func TenantIDNotNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldNotNull(FieldTenantID))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldTenantID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldCreatedBy, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldName, v))
}

// SubdomainEQ applies the EQ predicate on the "subdomain" field.
func SubdomainEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldSubdomain, v))
}

// SubdomainNEQ applies the NEQ predicate on the "subdomain" field.
func SubdomainNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldSubdomain, v))
}

// SubdomainIn applies the In predicate on the "subdomain" field.
func SubdomainIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldSubdomain, vs...))
}

// SubdomainNotIn applies the NotIn predicate on the "subdomain" field.
func SubdomainNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldSubdomain, vs...))
}

// SubdomainGT applies the GT predicate on the "subdomain" field.
func SubdomainGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldSubdomain, v))
}

// SubdomainGTE applies the GTE predicate on the "subdomain" field.
func SubdomainGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldSubdomain, v))
}

// SubdomainLT applies the LT predicate on the "subdomain" field.
func SubdomainLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldSubdomain, v))
}

// SubdomainLTE applies the LTE predicate on the "subdomain" field.
func SubdomainLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldSubdomain, v))
}

// SubdomainContains applies the Contains predicate on the "subdomain" field.
func SubdomainContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldSubdomain, v))
}

// SubdomainHasPrefix applies the HasPrefix predicate on the "subdomain" field.
func SubdomainHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldSubdomain, v))
}

// SubdomainHasSuffix applies the HasSuffix predicate on the "subdomain" field.
func SubdomainHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldSubdomain, v))
}

// SubdomainEqualFold applies the EqualFold predicate on the "subdomain" field.
func SubdomainEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldSubdomain, v))
}

// SubdomainContainsFold applies the ContainsFold predicate on the "subdomain" field.
func SubdomainContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldSubdomain, v))
}

// AdminEmailEQ applies the EQ predicate on the "admin_email" field.
func AdminEmailEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldAdminEmail, v))
}

// AdminEmailNEQ applies the NEQ predicate on the "admin_email" field.
func AdminEmailNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldAdminEmail, v))
}

// AdminEmailIn applies the In predicate on the "admin_email" field.
func AdminEmailIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldAdminEmail, vs...))
}

// AdminEmailNotIn applies the NotIn predicate on the "admin_email" field.
func AdminEmailNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldAdminEmail, vs...))
}

// AdminEmailGT applies the GT predicate on the "admin_email" field.
func AdminEmailGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldAdminEmail, v))
}

// AdminEmailGTE applies the GTE predicate on the "admin_email" field.
func AdminEmailGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldAdminEmail, v))
}

// AdminEmailLT applies the LT predicate on the "admin_email" field.
func AdminEmailLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldAdminEmail, v))
}

// AdminEmailLTE applies the LTE predicate on the "admin_email" field.
func AdminEmailLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldAdminEmail, v))
}

// AdminEmailContains applies the Contains predicate on the "admin_email" field.
func AdminEmailContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldAdminEmail, v))
}

// AdminEmailHasPrefix applies the HasPrefix predicate on the "admin_email" field.
func AdminEmailHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldAdminEmail, v))
}

// AdminEmailHasSuffix applies the HasSuffix predicate on the "admin_email" field.
func AdminEmailHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldAdminEmail, v))
}

// AdminEmailEqualFold applies the EqualFold predicate on the "admin_email" field.
func AdminEmailEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldAdminEmail, v))
}

// AdminEmailContainsFold applies the ContainsFold predicate on the "admin_email" field.
func AdminEmailContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldAdminEmail, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDIsNil applies the IsNil predicate on the "plan_id" field.
func PlanIDIsNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldIsNull(FieldPlanID))
}

// PlanIDNotNil applies the NotNil predicate on the "plan_id" field.
func PlanIDNotNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldNotNull(FieldPlanID))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldPlanID, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldEnabled, v))
}

// AeTitleEQ applies the EQ predicate on the "ae_title" field.
func AeTitleEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldAeTitle, v))
}

// AeTitleNEQ applies the NEQ predicate on the "ae_title" field.
func AeTitleNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldAeTitle, v))
}

// AeTitleIn applies the In predicate on the "ae_title" field.
func AeTitleIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldAeTitle, vs...))
}

// AeTitleNotIn applies the NotIn predicate on the "ae_title" field.
func AeTitleNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldAeTitle, vs...))
}

// AeTitleGT applies the GT predicate on the "ae_title" field.
func AeTitleGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldAeTitle, v))
}

// AeTitleGTE applies the GTE predicate on the "ae_title" field.
func AeTitleGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldAeTitle, v))
}

// AeTitleLT applies the LT predicate on the "ae_title" field.
func AeTitleLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldAeTitle, v))
}

// AeTitleLTE applies the LTE predicate on the "ae_title" field.
func AeTitleLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldAeTitle, v))
}

// AeTitleContains applies the Contains predicate on the "ae_title" field.
func AeTitleContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldAeTitle, v))
}

// AeTitleHasPrefix applies the HasPrefix predicate on the "ae_title" field.
func AeTitleHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldAeTitle, v))
}

// AeTitleHasSuffix applies the HasSuffix predicate on the "ae_title" field.
func AeTitleHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldAeTitle, v))
}

// AeTitleIsNil applies the IsNil predicate on the "ae_title" field.
func AeTitleIsNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldIsNull(FieldAeTitle))
}

// AeTitleNotNil applies the NotNil predicate on the "ae_title" field.
func AeTitleNotNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldNotNull(FieldAeTitle))
}

// AeTitleEqualFold applies the EqualFold predicate on the "ae_title" field.
func AeTitleEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldAeTitle, v))
}

// AeTitleContainsFold applies the ContainsFold predicate on the "ae_title" field.
func AeTitleContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldAeTitle, v))
}

// ServiceAddressEQ applies the EQ predicate on the "service_address" field.
func ServiceAddressEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldServiceAddress, v))
}

// ServiceAddressNEQ applies the NEQ predicate on the "service_address" field.
func ServiceAddressNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldServiceAddress, v))
}

// ServiceAddressIn applies the In predicate on the "service_address" field.
func ServiceAddressIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldServiceAddress, vs...))
}

// ServiceAddressNotIn applies the NotIn predicate on the "service_address" field.
func ServiceAddressNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldServiceAddress, vs...))
}

// ServiceAddressGT applies the GT predicate on the "service_address" field.
func ServiceAddressGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldServiceAddress, v))
}

// ServiceAddressGTE applies the GTE predicate on the "service_address" field.
func ServiceAddressGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldServiceAddress, v))
}

// ServiceAddressLT applies the LT predicate on the "service_address" field.
func ServiceAddressLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldServiceAddress, v))
}

// ServiceAddressLTE applies the LTE predicate on the "service_address" field.
func ServiceAddressLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldServiceAddress, v))
}

// ServiceAddressContains applies the Contains predicate on the "service_address" field.
func ServiceAddressContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldServiceAddress, v))
}

// ServiceAddressHasPrefix applies the HasPrefix predicate on the "service_address" field.
func ServiceAddressHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldServiceAddress, v))
}

// ServiceAddressHasSuffix applies the HasSuffix predicate on the "service_address" field.
func ServiceAddressHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldServiceAddress, v))
}

// ServiceAddressIsNil applies the IsNil predicate on the "service_address" field.
func ServiceAddressIsNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldIsNull(FieldServiceAddress))
}

// ServiceAddressNotNil applies the NotNil predicate on the "service_address" field.
func ServiceAddressNotNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldNotNull(FieldServiceAddress))
}

// ServiceAddressEqualFold applies the EqualFold predicate on the "service_address" field.
func ServiceAddressEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldServiceAddress, v))
}

// ServiceAddressContainsFold applies the ContainsFold predicate on the "service_address" field.
func ServiceAddressContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldServiceAddress, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Tenant) predicate.Tenant {
	return predicate.Tenant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Tenant) predicate.Tenant {
	return predicate.Tenant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Tenant) predicate.Tenant {
	return predicate.Tenant(sql.NotPredicates(p))
}
