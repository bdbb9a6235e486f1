package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// SummaryCache holds the schema definition for the SummaryCache entity.
type SummaryCache struct {
	ent.Schema
}

func (SummaryCache) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the SummaryCache.
func (SummaryCache) Fields() []ent.Field {
	return []ent.Field{
		field.String("message_id").Comment("provider message id"),
		field.Text("content").Comment("summary text"),
		field.Bool("had_attachments").Default(false).Comment("whether attachments contributed to the summary"),
		field.Strings("attachment_errors").Optional().Comment("per-attachment failure notes"),
	}
}

// Indexes of the SummaryCache.
func (SummaryCache) Indexes() []ent.Index {
	return []ent.Index{
		// one cached summary per message
		index.Fields("message_id").Unique(),
	}
}
