// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fachebot/inbox-hero/internal/ent/draft"
	"github.com/fachebot/inbox-hero/internal/ent/schema"
	"github.com/fachebot/inbox-hero/internal/ent/summarycache"
	"github.com/fachebot/inbox-hero/internal/ent/triagerun"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	draftMixin := schema.Draft{}.Mixin()
	draftMixinFields0 := draftMixin[0].Fields()
	_ = draftMixinFields0
	draftFields := schema.Draft{}.Fields()
	_ = draftFields
	// draftDescCreateTime is the schema descriptor for create_time field.
	draftDescCreateTime := draftMixinFields0[0].Descriptor()
	// draft.DefaultCreateTime holds the default value on creation for the create_time field.
	draft.DefaultCreateTime = draftDescCreateTime.Default.(func() time.Time)
	// draftDescUpdateTime is the schema descriptor for update_time field.
	draftDescUpdateTime := draftMixinFields0[1].Descriptor()
	// draft.DefaultUpdateTime holds the default value on creation for the update_time field.
	draft.DefaultUpdateTime = draftDescUpdateTime.Default.(func() time.Time)
	// draft.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	draft.UpdateDefaultUpdateTime = draftDescUpdateTime.UpdateDefault.(func() time.Time)
	summarycacheMixin := schema.SummaryCache{}.Mixin()
	summarycacheMixinFields0 := summarycacheMixin[0].Fields()
	_ = summarycacheMixinFields0
	summarycacheFields := schema.SummaryCache{}.Fields()
	_ = summarycacheFields
	// summarycacheDescCreateTime is the schema descriptor for create_time field.
	summarycacheDescCreateTime := summarycacheMixinFields0[0].Descriptor()
	// summarycache.DefaultCreateTime holds the default value on creation for the create_time field.
	summarycache.DefaultCreateTime = summarycacheDescCreateTime.Default.(func() time.Time)
	// summarycacheDescUpdateTime is the schema descriptor for update_time field.
	summarycacheDescUpdateTime := summarycacheMixinFields0[1].Descriptor()
	// summarycache.DefaultUpdateTime holds the default value on creation for the update_time field.
	summarycache.DefaultUpdateTime = summarycacheDescUpdateTime.Default.(func() time.Time)
	// summarycache.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	summarycache.UpdateDefaultUpdateTime = summarycacheDescUpdateTime.UpdateDefault.(func() time.Time)
	// summarycacheDescHadAttachments is the schema descriptor for had_attachments field.
	summarycacheDescHadAttachments := summarycacheFields[2].Descriptor()
	// summarycache.DefaultHadAttachments holds the default value on creation for the had_attachments field.
	summarycache.DefaultHadAttachments = summarycacheDescHadAttachments.Default.(bool)
	triagerunMixin := schema.TriageRun{}.Mixin()
	triagerunMixinFields0 := triagerunMixin[0].Fields()
	_ = triagerunMixinFields0
	triagerunFields := schema.TriageRun{}.Fields()
	_ = triagerunFields
	// triagerunDescCreateTime is the schema descriptor for create_time field.
	triagerunDescCreateTime := triagerunMixinFields0[0].Descriptor()
	// triagerun.DefaultCreateTime holds the default value on creation for the create_time field.
	triagerun.DefaultCreateTime = triagerunDescCreateTime.Default.(func() time.Time)
	// triagerunDescUpdateTime is the schema descriptor for update_time field.
	triagerunDescUpdateTime := triagerunMixinFields0[1].Descriptor()
	// triagerun.DefaultUpdateTime holds the default value on creation for the update_time field.
	triagerun.DefaultUpdateTime = triagerunDescUpdateTime.Default.(func() time.Time)
	// triagerun.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	triagerun.UpdateDefaultUpdateTime = triagerunDescUpdateTime.UpdateDefault.(func() time.Time)
}
