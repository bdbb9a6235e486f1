// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DraftsColumns holds the columns for the "drafts" table.
	DraftsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "message_id", Type: field.TypeString},
		{Name: "recipient", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "draft_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"generated", "saved", "failed"}, Default: "generated"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// DraftsTable holds the schema information for the "drafts" table.
	DraftsTable = &schema.Table{
		Name:       "drafts",
		Columns:    DraftsColumns,
		PrimaryKey: []*schema.Column{DraftsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "draft_message_id",
				Unique:  true,
				Columns: []*schema.Column{DraftsColumns[3]},
			},
		},
	}
	// SummaryCachesColumns holds the columns for the "summary_caches" table.
	SummaryCachesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "message_id", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "had_attachments", Type: field.TypeBool, Default: false},
		{Name: "attachment_errors", Type: field.TypeJSON, Nullable: true},
	}
	// SummaryCachesTable holds the schema information for the "summary_caches" table.
	SummaryCachesTable = &schema.Table{
		Name:       "summary_caches",
		Columns:    SummaryCachesColumns,
		PrimaryKey: []*schema.Column{SummaryCachesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "summarycache_message_id",
				Unique:  true,
				Columns: []*schema.Column{SummaryCachesColumns[3]},
			},
		},
	}
	// TriageRunsColumns holds the columns for the "triage_runs" table.
	TriageRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed"}, Default: "in_progress"},
		{Name: "report_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// TriageRunsTable holds the schema information for the "triage_runs" table.
	TriageRunsTable = &schema.Table{
		Name:       "triage_runs",
		Columns:    TriageRunsColumns,
		PrimaryKey: []*schema.Column{TriageRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "triagerun_start_time_end_time",
				Unique:  true,
				Columns: []*schema.Column{TriageRunsColumns[3], TriageRunsColumns[4]},
			},
			{
				Name:    "triagerun_status",
				Unique:  false,
				Columns: []*schema.Column{TriageRunsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DraftsTable,
		SummaryCachesTable,
		TriageRunsTable,
	}
)

func init() {
}
