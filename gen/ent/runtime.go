// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/santescan/santescan/db/ent/schema"
	"github.com/santescan/santescan/gen/ent/account"
	"github.com/santescan/santescan/gen/ent/analysis"
	"github.com/santescan/santescan/gen/ent/analysisdetail"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescEmail is the schema descriptor for email field.
	accountDescEmail := accountFields[1].Descriptor()
	// account.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	account.EmailValidator = accountDescEmail.Validators[0].(func(string) error)
	// accountDescPasswordHash is the schema descriptor for password_hash field.
	accountDescPasswordHash := accountFields[2].Descriptor()
	// account.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	account.PasswordHashValidator = accountDescPasswordHash.Validators[0].(func(string) error)
	// accountDescAge is the schema descriptor for age field.
	accountDescAge := accountFields[3].Descriptor()
	// account.DefaultAge holds the default value on creation for the age field.
	account.DefaultAge = accountDescAge.Default.(int)
	// account.AgeValidator is a validator for the "age" field. It is called by the builders before save.
	account.AgeValidator = accountDescAge.Validators[0].(func(int) error)
	// accountDescGender is the schema descriptor for gender field.
	accountDescGender := accountFields[4].Descriptor()
	// account.DefaultGender holds the default value on creation for the gender field.
	account.DefaultGender = accountDescGender.Default.(string)
	// accountDescIsGuest is the schema descriptor for is_guest field.
	accountDescIsGuest := accountFields[5].Descriptor()
	// account.DefaultIsGuest holds the default value on creation for the is_guest field.
	account.DefaultIsGuest = accountDescIsGuest.Default.(bool)
	// accountDescSessionToken is the schema descriptor for session_token field.
	accountDescSessionToken := accountFields[6].Descriptor()
	// account.SessionTokenValidator is a validator for the "session_token" field. It is called by the builders before save.
	account.SessionTokenValidator = accountDescSessionToken.Validators[0].(func(string) error)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[7].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescID is the schema descriptor for id field.
	accountDescID := accountFields[0].Descriptor()
	// account.DefaultID holds the default value on creation for the id field.
	account.DefaultID = accountDescID.Default.(func() uuid.UUID)
	analysisFields := schema.Analysis{}.Fields()
	_ = analysisFields
	// analysisDescSessionToken is the schema descriptor for session_token field.
	analysisDescSessionToken := analysisFields[2].Descriptor()
	// analysis.SessionTokenValidator is a validator for the "session_token" field. It is called by the builders before save.
	analysis.SessionTokenValidator = analysisDescSessionToken.Validators[0].(func(string) error)
	// analysisDescUploadedAt is the schema descriptor for uploaded_at field.
	analysisDescUploadedAt := analysisFields[3].Descriptor()
	// analysis.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	analysis.DefaultUploadedAt = analysisDescUploadedAt.Default.(func() time.Time)
	// analysisDescRawText is the schema descriptor for raw_text field.
	analysisDescRawText := analysisFields[4].Descriptor()
	// analysis.RawTextValidator is a validator for the "raw_text" field. It is called by the builders before save.
	analysis.RawTextValidator = analysisDescRawText.Validators[0].(func(string) error)
	// analysisDescStatus is the schema descriptor for status field.
	analysisDescStatus := analysisFields[6].Descriptor()
	// analysis.DefaultStatus holds the default value on creation for the status field.
	analysis.DefaultStatus = analysisDescStatus.Default.(string)
	// analysis.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	analysis.StatusValidator = analysisDescStatus.Validators[0].(func(string) error)
	// analysisDescDisclaimer is the schema descriptor for disclaimer field.
	analysisDescDisclaimer := analysisFields[7].Descriptor()
	// analysis.DefaultDisclaimer holds the default value on creation for the disclaimer field.
	analysis.DefaultDisclaimer = analysisDescDisclaimer.Default.(string)
	// analysisDescID is the schema descriptor for id field.
	analysisDescID := analysisFields[0].Descriptor()
	// analysis.DefaultID holds the default value on creation for the id field.
	analysis.DefaultID = analysisDescID.Default.(func() uuid.UUID)
	analysisdetailFields := schema.AnalysisDetail{}.Fields()
	_ = analysisdetailFields
	// analysisdetailDescParameterName is the schema descriptor for parameter_name field.
	analysisdetailDescParameterName := analysisdetailFields[2].Descriptor()
	// analysisdetail.ParameterNameValidator is a validator for the "parameter_name" field. It is called by the builders before save.
	analysisdetail.ParameterNameValidator = func() func(string) error {
		validators := analysisdetailDescParameterName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(parameter_name string) error {
			for _, fn := range fns {
				if err := fn(parameter_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// analysisdetailDescUnit is the schema descriptor for unit field.
	analysisdetailDescUnit := analysisdetailFields[4].Descriptor()
	// analysisdetail.UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	analysisdetail.UnitValidator = analysisdetailDescUnit.Validators[0].(func(string) error)
	// analysisdetailDescReferenceRange is the schema descriptor for reference_range field.
	analysisdetailDescReferenceRange := analysisdetailFields[5].Descriptor()
	// analysisdetail.DefaultReferenceRange holds the default value on creation for the reference_range field.
	analysisdetail.DefaultReferenceRange = analysisdetailDescReferenceRange.Default.(string)
	// analysisdetail.ReferenceRangeValidator is a validator for the "reference_range" field. It is called by the builders before save.
	analysisdetail.ReferenceRangeValidator = analysisdetailDescReferenceRange.Validators[0].(func(string) error)
	// analysisdetailDescStatus is the schema descriptor for status field.
	analysisdetailDescStatus := analysisdetailFields[6].Descriptor()
	// analysisdetail.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	analysisdetail.StatusValidator = analysisdetailDescStatus.Validators[0].(func(string) error)
	// analysisdetailDescCreatedAt is the schema descriptor for created_at field.
	analysisdetailDescCreatedAt := analysisdetailFields[7].Descriptor()
	// analysisdetail.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysisdetail.DefaultCreatedAt = analysisdetailDescCreatedAt.Default.(func() time.Time)
	// analysisdetailDescID is the schema descriptor for id field.
	analysisdetailDescID := analysisdetailFields[0].Descriptor()
	// analysisdetail.DefaultID holds the default value on creation for the id field.
	analysisdetail.DefaultID = analysisdetailDescID.Default.(func() uuid.UUID)
}
