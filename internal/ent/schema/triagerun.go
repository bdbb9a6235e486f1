package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// TriageRun holds the schema definition for the TriageRun entity.
type TriageRun struct {
	ent.Schema
}

func (TriageRun) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the TriageRun.
func (TriageRun) Fields() []ent.Field {
	return []ent.Field{
		field.Time("start_time").Comment("start of the triage time window"),
		field.Time("end_time").Comment("end of the triage time window"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed").
			Default("in_progress").
			Comment("run status"),
		field.Text("report_content").Optional().Comment("rendered report, persisted before delivery"),
		field.String("error_message").Optional().Comment("failure reason"),
	}
}

// Indexes of the TriageRun.
func (TriageRun) Indexes() []ent.Index {
	return []ent.Index{
		// a time window is triaged at most once
		index.Fields("start_time", "end_time").Unique(),
		// startup recovery queries by status
		index.Fields("status"),
	}
}
