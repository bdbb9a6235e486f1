package gmail

import "time"

// Message is the read-only snapshot of one inbox message used by a triage
// run. ReceivedAt is the zero value when the Date header could not be parsed.
type Message struct {
	ID          string
	ThreadID    string
	Sender      string
	Subject     string
	ReceivedAt  time.Time
	Snippet     string
	BodyText    string
	Attachments []Attachment
}

// Body returns the plain-text body, falling back to the provider snippet.
func (m *Message) Body() string {
	if m.BodyText != "" {
		return m.BodyText
	}
	return m.Snippet
}

// Attachment references attachment content without holding it; bytes are
// fetched lazily through Client.AttachmentData.
type Attachment struct {
	MessageID    string
	AttachmentID string
	Filename     string
}
