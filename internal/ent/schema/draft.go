package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// Draft holds the schema definition for the Draft entity.
type Draft struct {
	ent.Schema
}

func (Draft) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the Draft.
func (Draft) Fields() []ent.Field {
	return []ent.Field{
		field.String("message_id").Comment("provider id of the message being replied to"),
		field.String("recipient").Comment("reply recipient"),
		field.String("subject").Comment("reply subject"),
		field.Text("content").Comment("generated reply text"),
		field.String("draft_id").Optional().Comment("provider draft id once saved"),
		field.Enum("status").
			Values("generated", "saved", "failed").
			Default("generated").
			Comment("draft lifecycle status"),
		field.String("error_message").Optional().Comment("failure reason"),
	}
}

// Indexes of the Draft.
func (Draft) Indexes() []ent.Index {
	return []ent.Index{
		// the latest draft per message wins
		index.Fields("message_id").Unique(),
	}
}
