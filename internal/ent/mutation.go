// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/inbox-hero/internal/ent/draft"
	"github.com/fachebot/inbox-hero/internal/ent/predicate"
	"github.com/fachebot/inbox-hero/internal/ent/summarycache"
	"github.com/fachebot/inbox-hero/internal/ent/triagerun"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDraft        = "Draft"
	TypeSummaryCache = "SummaryCache"
	TypeTriageRun    = "TriageRun"
)

// DraftMutation represents an operation that mutates the Draft nodes in the graph.
type DraftMutation struct {
	config
	op            Op
	typ           string
	id            *int
	create_time   *time.Time
	update_time   *time.Time
	message_id    *string
	recipient     *string
	subject       *string
	content       *string
	draft_id      *string
	status        *draft.Status
	error_message *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Draft, error)
	predicates    []predicate.Draft
}

var _ ent.Mutation = (*DraftMutation)(nil)

// draftOption allows management of the mutation configuration using functional options.
type draftOption func(*DraftMutation)

// newDraftMutation creates new mutation for the Draft entity.
func newDraftMutation(c config, op Op, opts ...draftOption) *DraftMutation {
	m := &DraftMutation{
		config:        c,
		op:            op,
		typ:           TypeDraft,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDraftID sets the ID field of the mutation.
func withDraftID(id int) draftOption {
	return func(m *DraftMutation) {
		var (
			err   error
			once  sync.Once
			value *Draft
		)
		m.oldValue = func(ctx context.Context) (*Draft, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Draft.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDraft sets the old Draft of the mutation.
func withDraft(node *Draft) draftOption {
	return func(m *DraftMutation) {
		m.oldValue = func(context.Context) (*Draft, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DraftMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DraftMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DraftMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DraftMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Draft.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *DraftMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *DraftMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the Draft entity.
// If the Draft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *DraftMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *DraftMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *DraftMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the Draft entity.
// If the Draft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *DraftMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetMessageID sets the "message_id" field.
func (m *DraftMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *DraftMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the Draft entity.
// If the Draft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *DraftMutation) ResetMessageID() {
	m.message_id = nil
}

// SetRecipient sets the "recipient" field.
func (m *DraftMutation) SetRecipient(s string) {
	m.recipient = &s
}

// Recipient returns the value of the "recipient" field in the mutation.
func (m *DraftMutation) Recipient() (r string, exists bool) {
	v := m.recipient
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipient returns the old "recipient" field's value of the Draft entity.
// If the Draft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftMutation) OldRecipient(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipient is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipient requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipient: %w", err)
	}
	return oldValue.Recipient, nil
}

// ResetRecipient resets all changes to the "recipient" field.
func (m *DraftMutation) ResetRecipient() {
	m.recipient = nil
}

// SetSubject sets the "subject" field.
func (m *DraftMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *DraftMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Draft entity.
// If the Draft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *DraftMutation) ResetSubject() {
	m.subject = nil
}

// SetContent sets the "content" field.
func (m *DraftMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *DraftMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Draft entity.
// If the Draft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *DraftMutation) ResetContent() {
	m.content = nil
}

// SetDraftID sets the "draft_id" field.
func (m *DraftMutation) SetDraftID(s string) {
	m.draft_id = &s
}

// DraftID returns the value of the "draft_id" field in the mutation.
func (m *DraftMutation) DraftID() (r string, exists bool) {
	v := m.draft_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDraftID returns the old "draft_id" field's value of the Draft entity.
// If the Draft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftMutation) OldDraftID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDraftID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDraftID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDraftID: %w", err)
	}
	return oldValue.DraftID, nil
}

// ClearDraftID clears the value of the "draft_id" field.
func (m *DraftMutation) ClearDraftID() {
	m.draft_id = nil
	m.clearedFields[draft.FieldDraftID] = struct{}{}
}

// DraftIDCleared returns if the "draft_id" field was cleared in this mutation.
func (m *DraftMutation) DraftIDCleared() bool {
	_, ok := m.clearedFields[draft.FieldDraftID]
	return ok
}

// ResetDraftID resets all changes to the "draft_id" field.
func (m *DraftMutation) ResetDraftID() {
	m.draft_id = nil
	delete(m.clearedFields, draft.FieldDraftID)
}

// SetStatus sets the "status" field.
func (m *DraftMutation) SetStatus(d draft.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DraftMutation) Status() (r draft.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Draft entity.
// If the Draft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftMutation) OldStatus(ctx context.Context) (v draft.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DraftMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DraftMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DraftMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Draft entity.
// If the Draft object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DraftMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[draft.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DraftMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[draft.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DraftMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, draft.FieldErrorMessage)
}

// Where appends a list predicates to the DraftMutation builder.
func (m *DraftMutation) Where(ps ...predicate.Draft) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DraftMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DraftMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Draft, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DraftMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DraftMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Draft).
func (m *DraftMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DraftMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.create_time != nil {
		fields = append(fields, draft.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, draft.FieldUpdateTime)
	}
	if m.message_id != nil {
		fields = append(fields, draft.FieldMessageID)
	}
	if m.recipient != nil {
		fields = append(fields, draft.FieldRecipient)
	}
	if m.subject != nil {
		fields = append(fields, draft.FieldSubject)
	}
	if m.content != nil {
		fields = append(fields, draft.FieldContent)
	}
	if m.draft_id != nil {
		fields = append(fields, draft.FieldDraftID)
	}
	if m.status != nil {
		fields = append(fields, draft.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, draft.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DraftMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case draft.FieldCreateTime:
		return m.CreateTime()
	case draft.FieldUpdateTime:
		return m.UpdateTime()
	case draft.FieldMessageID:
		return m.MessageID()
	case draft.FieldRecipient:
		return m.Recipient()
	case draft.FieldSubject:
		return m.Subject()
	case draft.FieldContent:
		return m.Content()
	case draft.FieldDraftID:
		return m.DraftID()
	case draft.FieldStatus:
		return m.Status()
	case draft.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DraftMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case draft.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case draft.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case draft.FieldMessageID:
		return m.OldMessageID(ctx)
	case draft.FieldRecipient:
		return m.OldRecipient(ctx)
	case draft.FieldSubject:
		return m.OldSubject(ctx)
	case draft.FieldContent:
		return m.OldContent(ctx)
	case draft.FieldDraftID:
		return m.OldDraftID(ctx)
	case draft.FieldStatus:
		return m.OldStatus(ctx)
	case draft.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown Draft field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DraftMutation) SetField(name string, value ent.Value) error {
	switch name {
	case draft.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case draft.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case draft.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case draft.FieldRecipient:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipient(v)
		return nil
	case draft.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case draft.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case draft.FieldDraftID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDraftID(v)
		return nil
	case draft.FieldStatus:
		v, ok := value.(draft.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case draft.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown Draft field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DraftMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DraftMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DraftMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Draft numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DraftMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(draft.FieldDraftID) {
		fields = append(fields, draft.FieldDraftID)
	}
	if m.FieldCleared(draft.FieldErrorMessage) {
		fields = append(fields, draft.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DraftMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DraftMutation) ClearField(name string) error {
	switch name {
	case draft.FieldDraftID:
		m.ClearDraftID()
		return nil
	case draft.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Draft nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DraftMutation) ResetField(name string) error {
	switch name {
	case draft.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case draft.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case draft.FieldMessageID:
		m.ResetMessageID()
		return nil
	case draft.FieldRecipient:
		m.ResetRecipient()
		return nil
	case draft.FieldSubject:
		m.ResetSubject()
		return nil
	case draft.FieldContent:
		m.ResetContent()
		return nil
	case draft.FieldDraftID:
		m.ResetDraftID()
		return nil
	case draft.FieldStatus:
		m.ResetStatus()
		return nil
	case draft.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Draft field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DraftMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DraftMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DraftMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DraftMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DraftMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DraftMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DraftMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Draft unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DraftMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Draft edge %s", name)
}

// SummaryCacheMutation represents an operation that mutates the SummaryCache nodes in the graph.
type SummaryCacheMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	create_time             *time.Time
	update_time             *time.Time
	message_id              *string
	content                 *string
	had_attachments         *bool
	attachment_errors       *[]string
	appendattachment_errors []string
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*SummaryCache, error)
	predicates              []predicate.SummaryCache
}

var _ ent.Mutation = (*SummaryCacheMutation)(nil)

// summarycacheOption allows management of the mutation configuration using functional options.
type summarycacheOption func(*SummaryCacheMutation)

// newSummaryCacheMutation creates new mutation for the SummaryCache entity.
func newSummaryCacheMutation(c config, op Op, opts ...summarycacheOption) *SummaryCacheMutation {
	m := &SummaryCacheMutation{
		config:        c,
		op:            op,
		typ:           TypeSummaryCache,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSummaryCacheID sets the ID field of the mutation.
func withSummaryCacheID(id int) summarycacheOption {
	return func(m *SummaryCacheMutation) {
		var (
			err   error
			once  sync.Once
			value *SummaryCache
		)
		m.oldValue = func(ctx context.Context) (*SummaryCache, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SummaryCache.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSummaryCache sets the old SummaryCache of the mutation.
func withSummaryCache(node *SummaryCache) summarycacheOption {
	return func(m *SummaryCacheMutation) {
		m.oldValue = func(context.Context) (*SummaryCache, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SummaryCacheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SummaryCacheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SummaryCacheMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SummaryCacheMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SummaryCache.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *SummaryCacheMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *SummaryCacheMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the SummaryCache entity.
// If the SummaryCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryCacheMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *SummaryCacheMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *SummaryCacheMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *SummaryCacheMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the SummaryCache entity.
// If the SummaryCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryCacheMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *SummaryCacheMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetMessageID sets the "message_id" field.
func (m *SummaryCacheMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *SummaryCacheMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the SummaryCache entity.
// If the SummaryCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryCacheMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *SummaryCacheMutation) ResetMessageID() {
	m.message_id = nil
}

// SetContent sets the "content" field.
func (m *SummaryCacheMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *SummaryCacheMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the SummaryCache entity.
// If the SummaryCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryCacheMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *SummaryCacheMutation) ResetContent() {
	m.content = nil
}

// SetHadAttachments sets the "had_attachments" field.
func (m *SummaryCacheMutation) SetHadAttachments(b bool) {
	m.had_attachments = &b
}

// HadAttachments returns the value of the "had_attachments" field in the mutation.
func (m *SummaryCacheMutation) HadAttachments() (r bool, exists bool) {
	v := m.had_attachments
	if v == nil {
		return
	}
	return *v, true
}

// OldHadAttachments returns the old "had_attachments" field's value of the SummaryCache entity.
// If the SummaryCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryCacheMutation) OldHadAttachments(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHadAttachments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHadAttachments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHadAttachments: %w", err)
	}
	return oldValue.HadAttachments, nil
}

// ResetHadAttachments resets all changes to the "had_attachments" field.
func (m *SummaryCacheMutation) ResetHadAttachments() {
	m.had_attachments = nil
}

// SetAttachmentErrors sets the "attachment_errors" field.
func (m *SummaryCacheMutation) SetAttachmentErrors(s []string) {
	m.attachment_errors = &s
	m.appendattachment_errors = nil
}

// AttachmentErrors returns the value of the "attachment_errors" field in the mutation.
func (m *SummaryCacheMutation) AttachmentErrors() (r []string, exists bool) {
	v := m.attachment_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldAttachmentErrors returns the old "attachment_errors" field's value of the SummaryCache entity.
// If the SummaryCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryCacheMutation) OldAttachmentErrors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttachmentErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttachmentErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttachmentErrors: %w", err)
	}
	return oldValue.AttachmentErrors, nil
}

// AppendAttachmentErrors adds s to the "attachment_errors" field.
func (m *SummaryCacheMutation) AppendAttachmentErrors(s []string) {
	m.appendattachment_errors = append(m.appendattachment_errors, s...)
}

// AppendedAttachmentErrors returns the list of values that were appended to the "attachment_errors" field in this mutation.
func (m *SummaryCacheMutation) AppendedAttachmentErrors() ([]string, bool) {
	if len(m.appendattachment_errors) == 0 {
		return nil, false
	}
	return m.appendattachment_errors, true
}

// ClearAttachmentErrors clears the value of the "attachment_errors" field.
func (m *SummaryCacheMutation) ClearAttachmentErrors() {
	m.attachment_errors = nil
	m.appendattachment_errors = nil
	m.clearedFields[summarycache.FieldAttachmentErrors] = struct{}{}
}

// AttachmentErrorsCleared returns if the "attachment_errors" field was cleared in this mutation.
func (m *SummaryCacheMutation) AttachmentErrorsCleared() bool {
	_, ok := m.clearedFields[summarycache.FieldAttachmentErrors]
	return ok
}

// ResetAttachmentErrors resets all changes to the "attachment_errors" field.
func (m *SummaryCacheMutation) ResetAttachmentErrors() {
	m.attachment_errors = nil
	m.appendattachment_errors = nil
	delete(m.clearedFields, summarycache.FieldAttachmentErrors)
}

// Where appends a list predicates to the SummaryCacheMutation builder.
func (m *SummaryCacheMutation) Where(ps ...predicate.SummaryCache) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SummaryCacheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SummaryCacheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SummaryCache, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SummaryCacheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SummaryCacheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SummaryCache).
func (m *SummaryCacheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SummaryCacheMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.create_time != nil {
		fields = append(fields, summarycache.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, summarycache.FieldUpdateTime)
	}
	if m.message_id != nil {
		fields = append(fields, summarycache.FieldMessageID)
	}
	if m.content != nil {
		fields = append(fields, summarycache.FieldContent)
	}
	if m.had_attachments != nil {
		fields = append(fields, summarycache.FieldHadAttachments)
	}
	if m.attachment_errors != nil {
		fields = append(fields, summarycache.FieldAttachmentErrors)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SummaryCacheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case summarycache.FieldCreateTime:
		return m.CreateTime()
	case summarycache.FieldUpdateTime:
		return m.UpdateTime()
	case summarycache.FieldMessageID:
		return m.MessageID()
	case summarycache.FieldContent:
		return m.Content()
	case summarycache.FieldHadAttachments:
		return m.HadAttachments()
	case summarycache.FieldAttachmentErrors:
		return m.AttachmentErrors()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SummaryCacheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case summarycache.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case summarycache.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case summarycache.FieldMessageID:
		return m.OldMessageID(ctx)
	case summarycache.FieldContent:
		return m.OldContent(ctx)
	case summarycache.FieldHadAttachments:
		return m.OldHadAttachments(ctx)
	case summarycache.FieldAttachmentErrors:
		return m.OldAttachmentErrors(ctx)
	}
	return nil, fmt.Errorf("unknown SummaryCache field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryCacheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case summarycache.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case summarycache.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case summarycache.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case summarycache.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case summarycache.FieldHadAttachments:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHadAttachments(v)
		return nil
	case summarycache.FieldAttachmentErrors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttachmentErrors(v)
		return nil
	}
	return fmt.Errorf("unknown SummaryCache field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SummaryCacheMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SummaryCacheMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryCacheMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SummaryCache numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SummaryCacheMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(summarycache.FieldAttachmentErrors) {
		fields = append(fields, summarycache.FieldAttachmentErrors)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SummaryCacheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SummaryCacheMutation) ClearField(name string) error {
	switch name {
	case summarycache.FieldAttachmentErrors:
		m.ClearAttachmentErrors()
		return nil
	}
	return fmt.Errorf("unknown SummaryCache nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SummaryCacheMutation) ResetField(name string) error {
	switch name {
	case summarycache.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case summarycache.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case summarycache.FieldMessageID:
		m.ResetMessageID()
		return nil
	case summarycache.FieldContent:
		m.ResetContent()
		return nil
	case summarycache.FieldHadAttachments:
		m.ResetHadAttachments()
		return nil
	case summarycache.FieldAttachmentErrors:
		m.ResetAttachmentErrors()
		return nil
	}
	return fmt.Errorf("unknown SummaryCache field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SummaryCacheMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SummaryCacheMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SummaryCacheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SummaryCacheMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SummaryCacheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SummaryCacheMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SummaryCacheMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SummaryCache unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SummaryCacheMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SummaryCache edge %s", name)
}

// TriageRunMutation represents an operation that mutates the TriageRun nodes in the graph.
type TriageRunMutation struct {
	config
	op             Op
	typ            string
	id             *int
	create_time    *time.Time
	update_time    *time.Time
	start_time     *time.Time
	end_time       *time.Time
	status         *triagerun.Status
	report_content *string
	error_message  *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*TriageRun, error)
	predicates     []predicate.TriageRun
}

var _ ent.Mutation = (*TriageRunMutation)(nil)

// triagerunOption allows management of the mutation configuration using functional options.
type triagerunOption func(*TriageRunMutation)

// newTriageRunMutation creates new mutation for the TriageRun entity.
func newTriageRunMutation(c config, op Op, opts ...triagerunOption) *TriageRunMutation {
	m := &TriageRunMutation{
		config:        c,
		op:            op,
		typ:           TypeTriageRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTriageRunID sets the ID field of the mutation.
func withTriageRunID(id int) triagerunOption {
	return func(m *TriageRunMutation) {
		var (
			err   error
			once  sync.Once
			value *TriageRun
		)
		m.oldValue = func(ctx context.Context) (*TriageRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TriageRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTriageRun sets the old TriageRun of the mutation.
func withTriageRun(node *TriageRun) triagerunOption {
	return func(m *TriageRunMutation) {
		m.oldValue = func(context.Context) (*TriageRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TriageRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TriageRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TriageRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TriageRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TriageRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *TriageRunMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *TriageRunMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the TriageRun entity.
// If the TriageRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageRunMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *TriageRunMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *TriageRunMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *TriageRunMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the TriageRun entity.
// If the TriageRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageRunMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *TriageRunMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetStartTime sets the "start_time" field.
func (m *TriageRunMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *TriageRunMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the TriageRun entity.
// If the TriageRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageRunMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *TriageRunMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *TriageRunMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *TriageRunMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the TriageRun entity.
// If the TriageRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageRunMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *TriageRunMutation) ResetEndTime() {
	m.end_time = nil
}

// SetStatus sets the "status" field.
func (m *TriageRunMutation) SetStatus(t triagerun.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TriageRunMutation) Status() (r triagerun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TriageRun entity.
// If the TriageRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageRunMutation) OldStatus(ctx context.Context) (v triagerun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TriageRunMutation) ResetStatus() {
	m.status = nil
}

// SetReportContent sets the "report_content" field.
func (m *TriageRunMutation) SetReportContent(s string) {
	m.report_content = &s
}

// ReportContent returns the value of the "report_content" field in the mutation.
func (m *TriageRunMutation) ReportContent() (r string, exists bool) {
	v := m.report_content
	if v == nil {
		return
	}
	return *v, true
}

// OldReportContent returns the old "report_content" field's value of the TriageRun entity.
// If the TriageRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageRunMutation) OldReportContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportContent: %w", err)
	}
	return oldValue.ReportContent, nil
}

// ClearReportContent clears the value of the "report_content" field.
func (m *TriageRunMutation) ClearReportContent() {
	m.report_content = nil
	m.clearedFields[triagerun.FieldReportContent] = struct{}{}
}

// ReportContentCleared returns if the "report_content" field was cleared in this mutation.
func (m *TriageRunMutation) ReportContentCleared() bool {
	_, ok := m.clearedFields[triagerun.FieldReportContent]
	return ok
}

// ResetReportContent resets all changes to the "report_content" field.
func (m *TriageRunMutation) ResetReportContent() {
	m.report_content = nil
	delete(m.clearedFields, triagerun.FieldReportContent)
}

// SetErrorMessage sets the "error_message" field.
func (m *TriageRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TriageRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the TriageRun entity.
// If the TriageRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageRunMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TriageRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[triagerun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TriageRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[triagerun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TriageRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, triagerun.FieldErrorMessage)
}

// Where appends a list predicates to the TriageRunMutation builder.
func (m *TriageRunMutation) Where(ps ...predicate.TriageRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TriageRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TriageRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TriageRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TriageRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TriageRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TriageRun).
func (m *TriageRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TriageRunMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.create_time != nil {
		fields = append(fields, triagerun.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, triagerun.FieldUpdateTime)
	}
	if m.start_time != nil {
		fields = append(fields, triagerun.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, triagerun.FieldEndTime)
	}
	if m.status != nil {
		fields = append(fields, triagerun.FieldStatus)
	}
	if m.report_content != nil {
		fields = append(fields, triagerun.FieldReportContent)
	}
	if m.error_message != nil {
		fields = append(fields, triagerun.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TriageRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case triagerun.FieldCreateTime:
		return m.CreateTime()
	case triagerun.FieldUpdateTime:
		return m.UpdateTime()
	case triagerun.FieldStartTime:
		return m.StartTime()
	case triagerun.FieldEndTime:
		return m.EndTime()
	case triagerun.FieldStatus:
		return m.Status()
	case triagerun.FieldReportContent:
		return m.ReportContent()
	case triagerun.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TriageRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case triagerun.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case triagerun.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case triagerun.FieldStartTime:
		return m.OldStartTime(ctx)
	case triagerun.FieldEndTime:
		return m.OldEndTime(ctx)
	case triagerun.FieldStatus:
		return m.OldStatus(ctx)
	case triagerun.FieldReportContent:
		return m.OldReportContent(ctx)
	case triagerun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown TriageRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriageRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case triagerun.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case triagerun.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case triagerun.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case triagerun.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case triagerun.FieldStatus:
		v, ok := value.(triagerun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case triagerun.FieldReportContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportContent(v)
		return nil
	case triagerun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown TriageRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TriageRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TriageRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriageRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TriageRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TriageRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(triagerun.FieldReportContent) {
		fields = append(fields, triagerun.FieldReportContent)
	}
	if m.FieldCleared(triagerun.FieldErrorMessage) {
		fields = append(fields, triagerun.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TriageRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TriageRunMutation) ClearField(name string) error {
	switch name {
	case triagerun.FieldReportContent:
		m.ClearReportContent()
		return nil
	case triagerun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown TriageRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TriageRunMutation) ResetField(name string) error {
	switch name {
	case triagerun.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case triagerun.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case triagerun.FieldStartTime:
		m.ResetStartTime()
		return nil
	case triagerun.FieldEndTime:
		m.ResetEndTime()
		return nil
	case triagerun.FieldStatus:
		m.ResetStatus()
		return nil
	case triagerun.FieldReportContent:
		m.ResetReportContent()
		return nil
	case triagerun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown TriageRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TriageRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TriageRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TriageRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TriageRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TriageRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TriageRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TriageRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TriageRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TriageRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TriageRun edge %s", name)
}
