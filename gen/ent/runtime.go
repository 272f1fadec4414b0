// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/autohub/automation-hub/db/ent/schema"
	entfield "github.com/autohub/automation-hub/gen/ent/field"
	"github.com/autohub/automation-hub/gen/ent/job"
	"github.com/autohub/automation-hub/gen/ent/template"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	entfieldFields := schema.Field{}.Fields()
	_ = entfieldFields
	// entfieldDescName is the schema descriptor for name field.
	entfieldDescName := entfieldFields[2].Descriptor()
	// entfield.NameValidator is a validator for the "name" field. It is called by the builders before save.
	entfield.NameValidator = entfieldDescName.Validators[0].(func(string) error)
	// entfieldDescWidth is the schema descriptor for width field.
	entfieldDescWidth := entfieldFields[5].Descriptor()
	// entfield.WidthValidator is a validator for the "width" field. It is called by the builders before save.
	entfield.WidthValidator = entfieldDescWidth.Validators[0].(func(float64) error)
	// entfieldDescHeight is the schema descriptor for height field.
	entfieldDescHeight := entfieldFields[6].Descriptor()
	// entfield.HeightValidator is a validator for the "height" field. It is called by the builders before save.
	entfield.HeightValidator = entfieldDescHeight.Validators[0].(func(float64) error)
	// entfieldDescPosition is the schema descriptor for position field.
	entfieldDescPosition := entfieldFields[7].Descriptor()
	// entfield.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	entfield.PositionValidator = entfieldDescPosition.Validators[0].(func(int) error)
	// entfieldDescID is the schema descriptor for id field.
	entfieldDescID := entfieldFields[0].Descriptor()
	// entfield.DefaultID holds the default value on creation for the id field.
	entfield.DefaultID = entfieldDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescName is the schema descriptor for name field.
	jobDescName := jobFields[1].Descriptor()
	// job.NameValidator is a validator for the "name" field. It is called by the builders before save.
	job.NameValidator = jobDescName.Validators[0].(func(string) error)
	// jobDescScript is the schema descriptor for script field.
	jobDescScript := jobFields[2].Descriptor()
	// job.ScriptValidator is a validator for the "script" field. It is called by the builders before save.
	job.ScriptValidator = jobDescScript.Validators[0].(func(string) error)
	// jobDescJobType is the schema descriptor for job_type field.
	jobDescJobType := jobFields[3].Descriptor()
	// job.JobTypeValidator is a validator for the "job_type" field. It is called by the builders before save.
	job.JobTypeValidator = func() func(string) error {
		validators := jobDescJobType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(job_type string) error {
			for _, fn := range fns {
				if err := fn(job_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// jobDescRecurrenceKind is the schema descriptor for recurrence_kind field.
	jobDescRecurrenceKind := jobFields[5].Descriptor()
	// job.RecurrenceKindValidator is a validator for the "recurrence_kind" field. It is called by the builders before save.
	job.RecurrenceKindValidator = jobDescRecurrenceKind.Validators[0].(func(string) error)
	// jobDescEnabled is the schema descriptor for enabled field.
	jobDescEnabled := jobFields[10].Descriptor()
	// job.DefaultEnabled holds the default value on creation for the enabled field.
	job.DefaultEnabled = jobDescEnabled.Default.(bool)
	// jobDescMisfireGraceSeconds is the schema descriptor for misfire_grace_seconds field.
	jobDescMisfireGraceSeconds := jobFields[13].Descriptor()
	// job.DefaultMisfireGraceSeconds holds the default value on creation for the misfire_grace_seconds field.
	job.DefaultMisfireGraceSeconds = jobDescMisfireGraceSeconds.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[16].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[17].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	templateFields := schema.Template{}.Fields()
	_ = templateFields
	// templateDescName is the schema descriptor for name field.
	templateDescName := templateFields[1].Descriptor()
	// template.NameValidator is a validator for the "name" field. It is called by the builders before save.
	template.NameValidator = templateDescName.Validators[0].(func(string) error)
	// templateDescBaseWidth is the schema descriptor for base_width field.
	templateDescBaseWidth := templateFields[2].Descriptor()
	// template.BaseWidthValidator is a validator for the "base_width" field. It is called by the builders before save.
	template.BaseWidthValidator = templateDescBaseWidth.Validators[0].(func(float64) error)
	// templateDescBaseHeight is the schema descriptor for base_height field.
	templateDescBaseHeight := templateFields[3].Descriptor()
	// template.BaseHeightValidator is a validator for the "base_height" field. It is called by the builders before save.
	template.BaseHeightValidator = templateDescBaseHeight.Validators[0].(func(float64) error)
	// templateDescCreatedAt is the schema descriptor for created_at field.
	templateDescCreatedAt := templateFields[4].Descriptor()
	// template.DefaultCreatedAt holds the default value on creation for the created_at field.
	template.DefaultCreatedAt = templateDescCreatedAt.Default.(func() time.Time)
	// templateDescID is the schema descriptor for id field.
	templateDescID := templateFields[0].Descriptor()
	// template.DefaultID holds the default value on creation for the id field.
	template.DefaultID = templateDescID.Default.(func() uuid.UUID)
}
