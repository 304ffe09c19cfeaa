// Code generated by ent, DO NOT EDIT.

package study

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/pacsflow/pacsflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Study {
	return predicate.Study(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Study {
	return predicate.Study(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldTenantID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldUpdatedBy, v))
}

// StudyUID applies equality check predicate on the "study_uid" field. It's identical to StudyUIDEQ.
func StudyUID(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldStudyUID, v))
}

// PatientName applies equality check predicate on the "patient_name" field. It's identical to PatientNameEQ.
func PatientName(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldPatientName, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldPatientID, v))
}

// Modality applies equality check predicate on the "modality" field. It's identical to ModalityEQ.
func Modality(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldModality, v))
}

// AccessionNumber applies equality check predicate on the "accession_number" field. It's identical to AccessionNumberEQ.
func AccessionNumber(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldAccessionNumber, v))
}

// StudyDate applies equality check predicate on the "study_date" field. It's identical to StudyDateEQ.
func StudyDate(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldStudyDate, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldDescription, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Study {
	return predicate.Study(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDIsNil applies the IsNil predicate on the "tenant_id" field.
func TenantIDIsNil() predicate.Study {
	return predicate.Study(sql.FieldIsNull(FieldTenantID))
}

// TenantIDNotNil applies the NotNil predicate on the "tenant_id" field.
func TenantIDNotNil() predicate.Study {
	return predicate.Study(sql.FieldNotNull(FieldTenantID))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Study {
	return predicate.Study(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Study {
	return predicate.Study(sql.FieldContainsFold(FieldTenantID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Study {
	return predicate.Study(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Study {
	return predicate.Study(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Study {
	return predicate.Study(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Study {
	return predicate.Study(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Study {
	return predicate.Study(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Study {
	return predicate.Study(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Study {
	return predicate.Study(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Study {
	return predicate.Study(sql.FieldContainsFold(FieldCreatedBy, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.Study {
	return predicate.Study(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.Study {
	return predicate.Study(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.Study {
	return predicate.Study(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.Study {
	return predicate.Study(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.Study {
	return predicate.Study(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// StudyUIDEQ applies the EQ predicate on the "study_uid" field.
func StudyUIDEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldStudyUID, v))
}

// StudyUIDNEQ applies the NEQ predicate on the "study_uid" field.
func StudyUIDNEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldStudyUID, v))
}

// StudyUIDIn applies the In predicate on the "study_uid" field.
func StudyUIDIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldStudyUID, vs...))
}

// StudyUIDNotIn applies the NotIn predicate on the "study_uid" field.
func StudyUIDNotIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldStudyUID, vs...))
}

// StudyUIDGT applies the GT predicate on the "study_uid" field.
func StudyUIDGT(v string) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldStudyUID, v))
}

// StudyUIDGTE applies the GTE predicate on the "study_uid" field.
func StudyUIDGTE(v string) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldStudyUID, v))
}

// StudyUIDLT applies the LT predicate on the "study_uid" field.
func StudyUIDLT(v string) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldStudyUID, v))
}

// StudyUIDLTE applies the LTE predicate on the "study_uid" field.
func StudyUIDLTE(v string) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldStudyUID, v))
}

// StudyUIDContains applies the Contains predicate on the "study_uid" field.
func StudyUIDContains(v string) predicate.Study {
	return predicate.Study(sql.FieldContains(FieldStudyUID, v))
}

// StudyUIDHasPrefix applies the HasPrefix predicate on the "study_uid" field.
func StudyUIDHasPrefix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasPrefix(FieldStudyUID, v))
}

// StudyUIDHasSuffix applies the HasSuffix predicate on the "study_uid" field.
func StudyUIDHasSuffix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasSuffix(FieldStudyUID, v))
}

// StudyUIDEqualFold applies the EqualFold predicate on the "study_uid" field.
func StudyUIDEqualFold(v string) predicate.Study {
	return predicate.Study(sql.FieldEqualFold(FieldStudyUID, v))
}

// StudyUIDContainsFold applies the ContainsFold predicate on the "study_uid" field.
func StudyUIDContainsFold(v string) predicate.Study {
	return predicate.Study(sql.FieldContainsFold(FieldStudyUID, v))
}

// PatientNameEQ applies the EQ predicate on the "patient_name" field.
func PatientNameEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldPatientName, v))
}

// PatientNameNEQ applies the NEQ predicate on the "patient_name" field.
func PatientNameNEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldPatientName, v))
}

// PatientNameIn applies the In predicate on the "patient_name" field.
func PatientNameIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldPatientName, vs...))
}

// PatientNameNotIn applies the NotIn predicate on the "patient_name" field.
func PatientNameNotIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldPatientName, vs...))
}

// PatientNameGT applies the GT predicate on the "patient_name" field.
func PatientNameGT(v string) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldPatientName, v))
}

// PatientNameGTE applies the GTE predicate on the "patient_name" field.
func PatientNameGTE(v string) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldPatientName, v))
}

// PatientNameLT applies the LT predicate on the "patient_name" field.
func PatientNameLT(v string) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldPatientName, v))
}

// PatientNameLTE applies the LTE predicate on the "patient_name" field.
func PatientNameLTE(v string) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldPatientName, v))
}

// PatientNameContains applies the Contains predicate on the "patient_name" field.
func PatientNameContains(v string) predicate.Study {
	return predicate.Study(sql.FieldContains(FieldPatientName, v))
}

// PatientNameHasPrefix applies the HasPrefix predicate on the "patient_name" field.
func PatientNameHasPrefix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasPrefix(FieldPatientName, v))
}

// PatientNameHasSuffix applies the HasSuffix predicate on the "patient_name" field.
func PatientNameHasSuffix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasSuffix(FieldPatientName, v))
}

// PatientNameIsNil applies the IsNil predicate on the "patient_name" field.
func PatientNameIsNil() predicate.Study {
	return predicate.Study(sql.FieldIsNull(FieldPatientName))
}

// PatientNameNotNil applies the NotNil predicate on the "patient_name" field.
func PatientNameNotNil() predicate.Study {
	return predicate.Study(sql.FieldNotNull(FieldPatientName))
}

// PatientNameEqualFold applies the EqualFold predicate on the "patient_name" field.
func PatientNameEqualFold(v string) predicate.Study {
	return predicate.Study(sql.FieldEqualFold(FieldPatientName, v))
}

// PatientNameContainsFold applies the ContainsFold predicate on the "patient_name" field.
func PatientNameContainsFold(v string) predicate.Study {
	return predicate.Study(sql.FieldContainsFold(FieldPatientName, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v string) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v string) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v string) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v string) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldPatientID, v))
}

// PatientIDContains applies the Contains predicate on the "patient_id" field.
func PatientIDContains(v string) predicate.Study {
	return predicate.Study(sql.FieldContains(FieldPatientID, v))
}

// PatientIDHasPrefix applies the HasPrefix predicate on the "patient_id" field.
func PatientIDHasPrefix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasPrefix(FieldPatientID, v))
}

// PatientIDHasSuffix applies the HasSuffix predicate on the "patient_id" field.
func PatientIDHasSuffix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasSuffix(FieldPatientID, v))
}

// PatientIDIsNil applies the IsNil predicate on the "patient_id" field.
func PatientIDIsNil() predicate.Study {
	return predicate.Study(sql.FieldIsNull(FieldPatientID))
}

// PatientIDNotNil applies the NotNil predicate on the "patient_id" field.
func PatientIDNotNil() predicate.Study {
	return predicate.Study(sql.FieldNotNull(FieldPatientID))
}

// PatientIDEqualFold applies the EqualFold predicate on the "patient_id" field.
func PatientIDEqualFold(v string) predicate.Study {
	return predicate.Study(sql.FieldEqualFold(FieldPatientID, v))
}

// PatientIDContainsFold applies the ContainsFold predicate on the "patient_id" field.
func PatientIDContainsFold(v string) predicate.Study {
	return predicate.Study(sql.FieldContainsFold(FieldPatientID, v))
}

// ModalityEQ applies the EQ predicate on the "modality" field.
func ModalityEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldModality, v))
}

// ModalityNEQ applies the NEQ predicate on the "modality" field.
func ModalityNEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldModality, v))
}

// ModalityIn applies the In predicate on the "modality" field.
func ModalityIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldModality, vs...))
}

// ModalityNotIn applies the NotIn predicate on the "modality" field.
func ModalityNotIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldModality, vs...))
}

// ModalityGT applies the GT predicate on the "modality" field.
func ModalityGT(v string) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldModality, v))
}

// ModalityGTE applies the GTE predicate on the "modality" field.
func ModalityGTE(v string) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldModality, v))
}

// ModalityLT applies the LT predicate on the "modality" field.
func ModalityLT(v string) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldModality, v))
}

// ModalityLTE applies the LTE predicate on the "modality" field.
func ModalityLTE(v string) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldModality, v))
}

// ModalityContains applies the Contains predicate on the "modality" field.
func ModalityContains(v string) predicate.Study {
	return predicate.Study(sql.FieldContains(FieldModality, v))
}

// ModalityHasPrefix applies the HasPrefix predicate on the "modality" field.
func ModalityHasPrefix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasPrefix(FieldModality, v))
}

// ModalityHasSuffix applies the HasSuffix predicate on the "modality" field.
func ModalityHasSuffix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasSuffix(FieldModality, v))
}

// ModalityIsNil applies the IsNil predicate on the "modality" field.
func ModalityIsNil() predicate.Study {
	return predicate.Study(sql.FieldIsNull(FieldModality))
}

// ModalityNotNil applies the NotNil predicate on the "modality" field.
func ModalityNotNil() predicate.Study {
	return predicate.Study(sql.FieldNotNull(FieldModality))
}

// ModalityEqualFold applies the EqualFold predicate on the "modality" field.
func ModalityEqualFold(v string) predicate.Study {
	return predicate.Study(sql.FieldEqualFold(FieldModality, v))
}

// ModalityContainsFold applies the ContainsFold predicate on the "modality" field.
func ModalityContainsFold(v string) predicate.Study {
	return predicate.Study(sql.FieldContainsFold(FieldModality, v))
}

// AccessionNumberEQ applies the EQ predicate on the "accession_number" field.
func AccessionNumberEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldAccessionNumber, v))
}

// AccessionNumberNEQ applies the NEQ predicate on the "accession_number" field.
func AccessionNumberNEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldAccessionNumber, v))
}

// AccessionNumberIn applies the In predicate on the "accession_number" field.
func AccessionNumberIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldAccessionNumber, vs...))
}

// AccessionNumberNotIn applies the NotIn predicate on the "accession_number" field.
func AccessionNumberNotIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldAccessionNumber, vs...))
}

// AccessionNumberGT applies the GT predicate on the "accession_number" field.
func AccessionNumberGT(v string) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldAccessionNumber, v))
}

// AccessionNumberGTE applies the GTE predicate on the "accession_number" field.
func AccessionNumberGTE(v string) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldAccessionNumber, v))
}

// AccessionNumberLT applies the LT predicate on the "accession_number" field.
func AccessionNumberLT(v string) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldAccessionNumber, v))
}

// AccessionNumberLTE applies the LTE predicate on the "accession_number" field.
func AccessionNumberLTE(v string) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldAccessionNumber, v))
}

// AccessionNumberContains applies the Contains predicate on the "accession_number" field.
func AccessionNumberContains(v string) predicate.Study {
	return predicate.Study(sql.FieldContains(FieldAccessionNumber, v))
}

// AccessionNumberHasPrefix applies the HasPrefix predicate on the "accession_number" field.
func AccessionNumberHasPrefix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasPrefix(FieldAccessionNumber, v))
}

// AccessionNumberHasSuffix applies the HasSuffix predicate on the "accession_number" field.
func AccessionNumberHasSuffix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasSuffix(FieldAccessionNumber, v))
}

// AccessionNumberIsNil applies the IsNil predicate on the "accession_number" field.
func AccessionNumberIsNil() predicate.Study {
	return predicate.Study(sql.FieldIsNull(FieldAccessionNumber))
}

// AccessionNumberNotNil applies the NotNil predicate on the "accession_number" field.
func AccessionNumberNotNil() predicate.Study {
	return predicate.Study(sql.FieldNotNull(FieldAccessionNumber))
}

// AccessionNumberEqualFold applies the EqualFold predicate on the "accession_number" field.
func AccessionNumberEqualFold(v string) predicate.Study {
	return predicate.Study(sql.FieldEqualFold(FieldAccessionNumber, v))
}

// AccessionNumberContainsFold applies the ContainsFold predicate on the "accession_number" field.
func AccessionNumberContainsFold(v string) predicate.Study {
	return predicate.Study(sql.FieldContainsFold(FieldAccessionNumber, v))
}

// StudyDateEQ applies the EQ predicate on the "study_date" field.
func StudyDateEQ(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldStudyDate, v))
}

// StudyDateNEQ applies the NEQ predicate on the "study_date" field.
func StudyDateNEQ(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldStudyDate, v))
}

// StudyDateIn applies the In predicate on the "study_date" field.
func StudyDateIn(vs ...time.Time) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldStudyDate, vs...))
}

// StudyDateNotIn applies the NotIn predicate on the "study_date" field.
func StudyDateNotIn(vs ...time.Time) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldStudyDate, vs...))
}

// StudyDateGT applies the GT predicate on the "study_date" field.
func StudyDateGT(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldStudyDate, v))
}

// StudyDateGTE applies the GTE predicate on the "study_date" field.
func StudyDateGTE(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldStudyDate, v))
}

// StudyDateLT applies the LT predicate on the "study_date" field.
func StudyDateLT(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldStudyDate, v))
}

// StudyDateLTE applies the LTE predicate on the "study_date" field.
func StudyDateLTE(v time.Time) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldStudyDate, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Study {
	return predicate.Study(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Study {
	return predicate.Study(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Study {
	return predicate.Study(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Study {
	return predicate.Study(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Study {
	return predicate.Study(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Study {
	return predicate.Study(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Study {
	return predicate.Study(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Study {
	return predicate.Study(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Study {
	return predicate.Study(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Study {
	return predicate.Study(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Study {
	return predicate.Study(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Study {
	return predicate.Study(sql.FieldContainsFold(FieldDescription, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Study) predicate.Study {
	return predicate.Study(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Study) predicate.Study {
	return predicate.Study(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Study) predicate.Study {
	return predicate.Study(sql.NotPredicates(p))
}
