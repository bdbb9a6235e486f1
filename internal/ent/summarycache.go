// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/inbox-hero/internal/ent/summarycache"
)

// SummaryCache is the model entity for the SummaryCache schema.
type SummaryCache struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// provider message id
	MessageID string `json:"message_id,omitempty"`
	// summary text
	Content string `json:"content,omitempty"`
	// whether attachments contributed to the summary
	HadAttachments bool `json:"had_attachments,omitempty"`
	// per-attachment failure notes
	AttachmentErrors []string `json:"attachment_errors,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SummaryCache) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case summarycache.FieldAttachmentErrors:
			values[i] = new([]byte)
		case summarycache.FieldHadAttachments:
			values[i] = new(sql.NullBool)
		case summarycache.FieldID:
			values[i] = new(sql.NullInt64)
		case summarycache.FieldMessageID, summarycache.FieldContent:
			values[i] = new(sql.NullString)
		case summarycache.FieldCreateTime, summarycache.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SummaryCache fields.
func (_m *SummaryCache) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case summarycache.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case summarycache.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case summarycache.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case summarycache.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case summarycache.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case summarycache.FieldHadAttachments:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field had_attachments", values[i])
			} else if value.Valid {
				_m.HadAttachments = value.Bool
			}
		case summarycache.FieldAttachmentErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attachment_errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AttachmentErrors); err != nil {
					return fmt.Errorf("unmarshal field attachment_errors: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SummaryCache.
// This includes values selected through modifiers, order, etc.
func (_m *SummaryCache) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SummaryCache.
// Note that you need to call SummaryCache.Unwrap() before calling this method if this SummaryCache
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SummaryCache) Update() *SummaryCacheUpdateOne {
	return NewSummaryCacheClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SummaryCache entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SummaryCache) Unwrap() *SummaryCache {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SummaryCache is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SummaryCache) String() string {
	var builder strings.Builder
	builder.WriteString("SummaryCache(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("create_time=")
	builder.WriteString(_m.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(_m.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("had_attachments=")
	builder.WriteString(fmt.Sprintf("%v", _m.HadAttachments))
	builder.WriteString(", ")
	builder.WriteString("attachment_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttachmentErrors))
	builder.WriteByte(')')
	return builder.String()
}

// SummaryCaches is a parsable slice of SummaryCache.
type SummaryCaches []*SummaryCache
