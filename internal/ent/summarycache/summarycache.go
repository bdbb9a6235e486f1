// Code generated by ent, DO NOT EDIT.

package summarycache

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the summarycache type in the database.
	Label = "summary_cache"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreateTime holds the string denoting the create_time field in the database.
	FieldCreateTime = "create_time"
	// FieldUpdateTime holds the string denoting the update_time field in the database.
	FieldUpdateTime = "update_time"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldHadAttachments holds the string denoting the had_attachments field in the database.
	FieldHadAttachments = "had_attachments"
	// FieldAttachmentErrors holds the string denoting the attachment_errors field in the database.
	FieldAttachmentErrors = "attachment_errors"
	// Table holds the table name of the summarycache in the database.
	Table = "summary_caches"
)

// Columns holds all SQL columns for summarycache fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldMessageID,
	FieldContent,
	FieldHadAttachments,
	FieldAttachmentErrors,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreateTime holds the default value on creation for the "create_time" field.
	DefaultCreateTime func() time.Time
	// DefaultUpdateTime holds the default value on creation for the "update_time" field.
	DefaultUpdateTime func() time.Time
	// UpdateDefaultUpdateTime holds the default value on update for the "update_time" field.
	UpdateDefaultUpdateTime func() time.Time
	// DefaultHadAttachments holds the default value on creation for the "had_attachments" field.
	DefaultHadAttachments bool
)

// OrderOption defines the ordering options for the SummaryCache queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreateTime orders the results by the create_time field.
func ByCreateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreateTime, opts...).ToFunc()
}

// ByUpdateTime orders the results by the update_time field.
func ByUpdateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdateTime, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByHadAttachments orders the results by the had_attachments field.
func ByHadAttachments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHadAttachments, opts...).ToFunc()
}
