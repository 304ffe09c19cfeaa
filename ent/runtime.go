// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/pacsflow/pacsflow/ent/bondcompany"
	"github.com/pacsflow/pacsflow/ent/page"
	"github.com/pacsflow/pacsflow/ent/plan"
	"github.com/pacsflow/pacsflow/ent/schema"
	"github.com/pacsflow/pacsflow/ent/study"
	"github.com/pacsflow/pacsflow/ent/subscription"
	"github.com/pacsflow/pacsflow/ent/tenant"
	"github.com/pacsflow/pacsflow/ent/user"
	"github.com/pacsflow/pacsflow/internal/types"
	"github.com/shopspring/decimal"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bondcompanyMixin := schema.BondCompany{}.Mixin()
	bondcompanyMixinFields0 := bondcompanyMixin[0].Fields()
	_ = bondcompanyMixinFields0
	bondcompanyFields := schema.BondCompany{}.Fields()
	_ = bondcompanyFields
	// bondcompanyDescStatus is the schema descriptor for status field.
	bondcompanyDescStatus := bondcompanyMixinFields0[1].Descriptor()
	// bondcompany.DefaultStatus holds the default value on creation for the status field.
	bondcompany.DefaultStatus = bondcompanyDescStatus.Default.(string)
	// bondcompanyDescCreatedAt is the schema descriptor for created_at field.
	bondcompanyDescCreatedAt := bondcompanyMixinFields0[2].Descriptor()
	// bondcompany.DefaultCreatedAt holds the default value on creation for the created_at field.
	bondcompany.DefaultCreatedAt = bondcompanyDescCreatedAt.Default.(func() time.Time)
	// bondcompanyDescUpdatedAt is the schema descriptor for updated_at field.
	bondcompanyDescUpdatedAt := bondcompanyMixinFields0[3].Descriptor()
	// bondcompany.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bondcompany.DefaultUpdatedAt = bondcompanyDescUpdatedAt.Default.(func() time.Time)
	// bondcompany.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bondcompany.UpdateDefaultUpdatedAt = bondcompanyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// bondcompanyDescCode is the schema descriptor for code field.
	bondcompanyDescCode := bondcompanyFields[1].Descriptor()
	// bondcompany.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	bondcompany.CodeValidator = bondcompanyDescCode.Validators[0].(func(string) error)
	// bondcompanyDescName is the schema descriptor for name field.
	bondcompanyDescName := bondcompanyFields[2].Descriptor()
	// bondcompany.NameValidator is a validator for the "name" field. It is called by the builders before save.
	bondcompany.NameValidator = bondcompanyDescName.Validators[0].(func(string) error)
	pageMixin := schema.Page{}.Mixin()
	pageMixinFields0 := pageMixin[0].Fields()
	_ = pageMixinFields0
	pageFields := schema.Page{}.Fields()
	_ = pageFields
	// pageDescStatus is the schema descriptor for status field.
	pageDescStatus := pageMixinFields0[1].Descriptor()
	// page.DefaultStatus holds the default value on creation for the status field.
	page.DefaultStatus = pageDescStatus.Default.(string)
	// pageDescCreatedAt is the schema descriptor for created_at field.
	pageDescCreatedAt := pageMixinFields0[2].Descriptor()
	// page.DefaultCreatedAt holds the default value on creation for the created_at field.
	page.DefaultCreatedAt = pageDescCreatedAt.Default.(func() time.Time)
	// pageDescUpdatedAt is the schema descriptor for updated_at field.
	pageDescUpdatedAt := pageMixinFields0[3].Descriptor()
	// page.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	page.DefaultUpdatedAt = pageDescUpdatedAt.Default.(func() time.Time)
	// page.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	page.UpdateDefaultUpdatedAt = pageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// pageDescSlug is the schema descriptor for slug field.
	pageDescSlug := pageFields[1].Descriptor()
	// page.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	page.SlugValidator = pageDescSlug.Validators[0].(func(string) error)
	// pageDescTitle is the schema descriptor for title field.
	pageDescTitle := pageFields[2].Descriptor()
	// page.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	page.TitleValidator = pageDescTitle.Validators[0].(func(string) error)
	// pageDescPublished is the schema descriptor for published field.
	pageDescPublished := pageFields[4].Descriptor()
	// page.DefaultPublished holds the default value on creation for the published field.
	page.DefaultPublished = pageDescPublished.Default.(bool)
	planMixin := schema.Plan{}.Mixin()
	planMixinFields0 := planMixin[0].Fields()
	_ = planMixinFields0
	planFields := schema.Plan{}.Fields()
	_ = planFields
	// planDescStatus is the schema descriptor for status field.
	planDescStatus := planMixinFields0[1].Descriptor()
	// plan.DefaultStatus holds the default value on creation for the status field.
	plan.DefaultStatus = planDescStatus.Default.(string)
	// planDescCreatedAt is the schema descriptor for created_at field.
	planDescCreatedAt := planMixinFields0[2].Descriptor()
	// plan.DefaultCreatedAt holds the default value on creation for the created_at field.
	plan.DefaultCreatedAt = planDescCreatedAt.Default.(func() time.Time)
	// planDescUpdatedAt is the schema descriptor for updated_at field.
	planDescUpdatedAt := planMixinFields0[3].Descriptor()
	// plan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	plan.DefaultUpdatedAt = planDescUpdatedAt.Default.(func() time.Time)
	// plan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	plan.UpdateDefaultUpdatedAt = planDescUpdatedAt.UpdateDefault.(func() time.Time)
	// planDescName is the schema descriptor for name field.
	planDescName := planFields[2].Descriptor()
	// plan.NameValidator is a validator for the "name" field. It is called by the builders before save.
	plan.NameValidator = planDescName.Validators[0].(func(string) error)
	// planDescPrice is the schema descriptor for price field.
	planDescPrice := planFields[4].Descriptor()
	// plan.DefaultPrice holds the default value on creation for the price field.
	plan.DefaultPrice = planDescPrice.Default.(decimal.Decimal)
	// planDescCurrency is the schema descriptor for currency field.
	planDescCurrency := planFields[5].Descriptor()
	// plan.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	plan.CurrencyValidator = planDescCurrency.Validators[0].(func(string) error)
	// planDescBillingPeriod is the schema descriptor for billing_period field.
	planDescBillingPeriod := planFields[6].Descriptor()
	// plan.DefaultBillingPeriod holds the default value on creation for the billing_period field.
	plan.DefaultBillingPeriod = types.BillingPeriod(planDescBillingPeriod.Default.(string))
	// planDescTrialDays is the schema descriptor for trial_days field.
	planDescTrialDays := planFields[7].Descriptor()
	// plan.DefaultTrialDays holds the default value on creation for the trial_days field.
	plan.DefaultTrialDays = planDescTrialDays.Default.(int)
	studyMixin := schema.Study{}.Mixin()
	studyMixinFields0 := studyMixin[0].Fields()
	_ = studyMixinFields0
	studyFields := schema.Study{}.Fields()
	_ = studyFields
	// studyDescStatus is the schema descriptor for status field.
	studyDescStatus := studyMixinFields0[1].Descriptor()
	// study.DefaultStatus holds the default value on creation for the status field.
	study.DefaultStatus = studyDescStatus.Default.(string)
	// studyDescCreatedAt is the schema descriptor for created_at field.
	studyDescCreatedAt := studyMixinFields0[2].Descriptor()
	// study.DefaultCreatedAt holds the default value on creation for the created_at field.
	study.DefaultCreatedAt = studyDescCreatedAt.Default.(func() time.Time)
	// studyDescUpdatedAt is the schema descriptor for updated_at field.
	studyDescUpdatedAt := studyMixinFields0[3].Descriptor()
	// study.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	study.DefaultUpdatedAt = studyDescUpdatedAt.Default.(func() time.Time)
	// study.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	study.UpdateDefaultUpdatedAt = studyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// studyDescStudyUID is the schema descriptor for study_uid field.
	studyDescStudyUID := studyFields[1].Descriptor()
	// study.StudyUIDValidator is a validator for the "study_uid" field. It is called by the builders before save.
	study.StudyUIDValidator = studyDescStudyUID.Validators[0].(func(string) error)
	// studyDescStudyDate is the schema descriptor for study_date field.
	studyDescStudyDate := studyFields[6].Descriptor()
	// study.DefaultStudyDate holds the default value on creation for the study_date field.
	study.DefaultStudyDate = studyDescStudyDate.Default.(func() time.Time)
	subscriptionMixin := schema.Subscription{}.Mixin()
	subscriptionMixinFields0 := subscriptionMixin[0].Fields()
	_ = subscriptionMixinFields0
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescStatus is the schema descriptor for status field.
	subscriptionDescStatus := subscriptionMixinFields0[1].Descriptor()
	// subscription.DefaultStatus holds the default value on creation for the status field.
	subscription.DefaultStatus = subscriptionDescStatus.Default.(string)
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionMixinFields0[2].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	// subscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	subscriptionDescUpdatedAt := subscriptionMixinFields0[3].Descriptor()
	// subscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subscription.DefaultUpdatedAt = subscriptionDescUpdatedAt.Default.(func() time.Time)
	// subscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subscription.UpdateDefaultUpdatedAt = subscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// subscriptionDescPlanID is the schema descriptor for plan_id field.
	subscriptionDescPlanID := subscriptionFields[1].Descriptor()
	// subscription.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	subscription.PlanIDValidator = subscriptionDescPlanID.Validators[0].(func(string) error)
	// subscriptionDescSubscriptionStatus is the schema descriptor for subscription_status field.
	subscriptionDescSubscriptionStatus := subscriptionFields[2].Descriptor()
	// subscription.DefaultSubscriptionStatus holds the default value on creation for the subscription_status field.
	subscription.DefaultSubscriptionStatus = types.SubscriptionStatus(subscriptionDescSubscriptionStatus.Default.(string))
	// subscriptionDescStartDate is the schema descriptor for start_date field.
	subscriptionDescStartDate := subscriptionFields[3].Descriptor()
	// subscription.DefaultStartDate holds the default value on creation for the start_date field.
	subscription.DefaultStartDate = subscriptionDescStartDate.Default.(func() time.Time)
	tenantMixin := schema.Tenant{}.Mixin()
	tenantMixinFields0 := tenantMixin[0].Fields()
	_ = tenantMixinFields0
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescStatus is the schema descriptor for status field.
	tenantDescStatus := tenantMixinFields0[1].Descriptor()
	// tenant.DefaultStatus holds the default value on creation for the status field.
	tenant.DefaultStatus = tenantDescStatus.Default.(string)
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantMixinFields0[2].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	// tenantDescUpdatedAt is the schema descriptor for updated_at field.
	tenantDescUpdatedAt := tenantMixinFields0[3].Descriptor()
	// tenant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenant.DefaultUpdatedAt = tenantDescUpdatedAt.Default.(func() time.Time)
	// tenant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenant.UpdateDefaultUpdatedAt = tenantDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tenantDescName is the schema descriptor for name field.
	tenantDescName := tenantFields[1].Descriptor()
	// tenant.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tenant.NameValidator = tenantDescName.Validators[0].(func(string) error)
	// tenantDescSubdomain is the schema descriptor for subdomain field.
	tenantDescSubdomain := tenantFields[2].Descriptor()
	// tenant.SubdomainValidator is a validator for the "subdomain" field. It is called by the builders before save.
	tenant.SubdomainValidator = tenantDescSubdomain.Validators[0].(func(string) error)
	// tenantDescAdminEmail is the schema descriptor for admin_email field.
	tenantDescAdminEmail := tenantFields[3].Descriptor()
	// tenant.AdminEmailValidator is a validator for the "admin_email" field. It is called by the builders before save.
	tenant.AdminEmailValidator = tenantDescAdminEmail.Validators[0].(func(string) error)
	// tenantDescEnabled is the schema descriptor for enabled field.
	tenantDescEnabled := tenantFields[5].Descriptor()
	// tenant.DefaultEnabled holds the default value on creation for the enabled field.
	tenant.DefaultEnabled = tenantDescEnabled.Default.(bool)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescStatus is the schema descriptor for status field.
	userDescStatus := userMixinFields0[1].Descriptor()
	// user.DefaultStatus holds the default value on creation for the status field.
	user.DefaultStatus = userDescStatus.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[2].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[3].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[3].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = types.UserRole(userDescRole.Default.(string))
	// userDescEnabled is the schema descriptor for enabled field.
	userDescEnabled := userFields[4].Descriptor()
	// user.DefaultEnabled holds the default value on creation for the enabled field.
	user.DefaultEnabled = userDescEnabled.Default.(bool)
}
