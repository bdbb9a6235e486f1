package gmail

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmailapi "google.golang.org/api/gmail/v1"
)

func TestBuildInboxQuery(t *testing.T) {
	after := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	got := BuildInboxQuery(after)
	assert.Equal(t, "in:inbox -category:promotions after:2026/08/28", got)
}

func TestParseDateHeader(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{
			"rfc1123z",
			"Fri, 29 Aug 2026 10:15:00 +0200",
			time.Date(2026, 8, 29, 10, 15, 0, 0, time.FixedZone("", 2*60*60)),
		},
		{
			"single digit day",
			"Mon, 3 Aug 2026 08:00:00 -0700",
			time.Date(2026, 8, 3, 8, 0, 0, 0, time.FixedZone("", -7*60*60)),
		},
		{
			"trailing timezone comment",
			"Fri, 29 Aug 2026 10:15:00 +0000 (UTC)",
			time.Date(2026, 8, 29, 10, 15, 0, 0, time.UTC),
		},
		{
			"no weekday",
			"29 Aug 2026 10:15:00 +0000",
			time.Date(2026, 8, 29, 10, 15, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDateHeader(tt.value)
			require.False(t, got.IsZero())
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseDateHeader_Unparsable(t *testing.T) {
	assert.True(t, parseDateHeader("not a date").IsZero())
	assert.True(t, parseDateHeader("").IsZero())
}

func encodePart(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}

func TestExtractPlainText(t *testing.T) {
	payload := &gmailapi.MessagePart{
		MimeType: "multipart/alternative",
		Parts: []*gmailapi.MessagePart{
			{
				MimeType: "text/html",
				Body:     &gmailapi.MessagePartBody{Data: encodePart("<p>hello</p>")},
			},
			{
				MimeType: "text/plain",
				Body:     &gmailapi.MessagePartBody{Data: encodePart("hello")},
			},
		},
	}
	assert.Equal(t, "hello", extractPlainText(payload))
}

func TestExtractPlainText_Nested(t *testing.T) {
	payload := &gmailapi.MessagePart{
		MimeType: "multipart/mixed",
		Parts: []*gmailapi.MessagePart{
			{
				MimeType: "multipart/alternative",
				Parts: []*gmailapi.MessagePart{
					{
						MimeType: "text/plain",
						Body:     &gmailapi.MessagePartBody{Data: encodePart("nested body")},
					},
				},
			},
			{
				MimeType: "application/pdf",
				Filename: "report.pdf",
				Body:     &gmailapi.MessagePartBody{AttachmentId: "a1"},
			},
		},
	}
	assert.Equal(t, "nested body", extractPlainText(payload))
}

func TestExtractPlainText_NoPlainPart(t *testing.T) {
	payload := &gmailapi.MessagePart{
		MimeType: "text/html",
		Body:     &gmailapi.MessagePartBody{Data: encodePart("<p>only html</p>")},
	}
	assert.Empty(t, extractPlainText(payload))
}

func TestCollectAttachments(t *testing.T) {
	payload := &gmailapi.MessagePart{
		MimeType: "multipart/mixed",
		Parts: []*gmailapi.MessagePart{
			{
				MimeType: "text/plain",
				Body:     &gmailapi.MessagePartBody{Data: encodePart("body")},
			},
			{
				MimeType: "application/pdf",
				Filename: "report.pdf",
				Body:     &gmailapi.MessagePartBody{AttachmentId: "a1"},
			},
			{
				MimeType: "multipart/mixed",
				Parts: []*gmailapi.MessagePart{
					{
						MimeType: "text/csv",
						Filename: "data.csv",
						Body:     &gmailapi.MessagePartBody{Data: encodePart("a,b,c")},
					},
				},
			},
		},
	}

	atts := collectAttachments("m1", payload)
	require.Len(t, atts, 2)
	assert.Equal(t, Attachment{MessageID: "m1", AttachmentID: "a1", Filename: "report.pdf"}, atts[0])
	assert.Equal(t, Attachment{MessageID: "m1", Filename: "data.csv"}, atts[1])
}

func TestFindInlinePartData(t *testing.T) {
	payload := &gmailapi.MessagePart{
		MimeType: "multipart/mixed",
		Parts: []*gmailapi.MessagePart{
			{
				MimeType: "text/csv",
				Filename: "data.csv",
				Body:     &gmailapi.MessagePartBody{Data: encodePart("a,b,c")},
			},
		},
	}
	assert.Equal(t, []byte("a,b,c"), findInlinePartData(payload, "data.csv"))
	assert.Nil(t, findInlinePartData(payload, "missing.csv"))
}

func TestParseMessage(t *testing.T) {
	msg := &gmailapi.Message{
		Id:       "m1",
		ThreadId: "t1",
		Snippet:  "snippet text",
		Payload: &gmailapi.MessagePart{
			MimeType: "text/plain",
			Headers: []*gmailapi.MessagePartHeader{
				{Name: "Subject", Value: "Hello"},
				{Name: "From", Value: "alice@example.com"},
				{Name: "Date", Value: "Fri, 29 Aug 2026 10:15:00 +0000"},
			},
			Body: &gmailapi.MessagePartBody{Data: encodePart("plain body")},
		},
	}

	got := parseMessage(msg)
	assert.Equal(t, "m1", got.ID)
	assert.Equal(t, "t1", got.ThreadID)
	assert.Equal(t, "Hello", got.Subject)
	assert.Equal(t, "alice@example.com", got.Sender)
	assert.Equal(t, "plain body", got.BodyText)
	assert.Equal(t, "snippet text", got.Snippet)
	assert.False(t, got.ReceivedAt.IsZero())
}

func TestMessageBody_SnippetFallback(t *testing.T) {
	msg := Message{BodyText: "full body", Snippet: "snippet"}
	assert.Equal(t, "full body", msg.Body())

	msg = Message{Snippet: "snippet"}
	assert.Equal(t, "snippet", msg.Body())
}

func TestBuildRawMIME(t *testing.T) {
	raw := buildRawMIME("me@example.com", "you@example.com", "Re: Hello", "reply body")
	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)

	text := string(decoded)
	assert.Contains(t, text, "From: me@example.com\r\n")
	assert.Contains(t, text, "To: you@example.com\r\n")
	assert.Contains(t, text, "Subject: Re: Hello\r\n")
	assert.Contains(t, text, "\r\n\r\nreply body")
}
