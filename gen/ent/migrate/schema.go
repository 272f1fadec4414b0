// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FieldsColumns holds the columns for the "fields" table.
	FieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "x", Type: field.TypeFloat64},
		{Name: "y", Type: field.TypeFloat64},
		{Name: "width", Type: field.TypeFloat64},
		{Name: "height", Type: field.TypeFloat64},
		{Name: "position", Type: field.TypeInt},
		{Name: "template_id", Type: field.TypeUUID},
	}
	// FieldsTable holds the schema information for the "fields" table.
	FieldsTable = &schema.Table{
		Name:       "fields",
		Columns:    FieldsColumns,
		PrimaryKey: []*schema.Column{FieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "fields_templates_fields",
				Columns:    []*schema.Column{FieldsColumns[7]},
				RefColumns: []*schema.Column{TemplatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "field_template_id_position",
				Unique:  false,
				Columns: []*schema.Column{FieldsColumns[7], FieldsColumns[6]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "script", Type: field.TypeString},
		{Name: "job_type", Type: field.TypeString},
		{Name: "run_date", Type: field.TypeTime, Nullable: true},
		{Name: "recurrence_kind", Type: field.TypeString, Nullable: true},
		{Name: "interval_seconds", Type: field.TypeInt, Nullable: true},
		{Name: "recurrence_time", Type: field.TypeString, Nullable: true},
		{Name: "days_of_week", Type: field.TypeString, Nullable: true},
		{Name: "day_of_month", Type: field.TypeInt, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_run", Type: field.TypeTime, Nullable: true},
		{Name: "next_run", Type: field.TypeTime, Nullable: true},
		{Name: "misfire_grace_seconds", Type: field.TypeInt, Default: 300},
		{Name: "last_exit_code", Type: field.TypeInt, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_enabled_next_run",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[10], JobsColumns[12]},
			},
		},
	}
	// TemplatesColumns holds the columns for the "templates" table.
	TemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "base_width", Type: field.TypeFloat64},
		{Name: "base_height", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TemplatesTable holds the schema information for the "templates" table.
	TemplatesTable = &schema.Table{
		Name:       "templates",
		Columns:    TemplatesColumns,
		PrimaryKey: []*schema.Column{TemplatesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FieldsTable,
		JobsTable,
		TemplatesTable,
	}
)

func init() {
	FieldsTable.ForeignKeys[0].RefTable = TemplatesTable
	FieldsTable.Annotation = &entsql.Annotation{
		Table: "fields",
	}
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	TemplatesTable.Annotation = &entsql.Annotation{
		Table: "templates",
	}
}
