package gmail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fachebot/inbox-hero/internal/config"
	"github.com/fachebot/inbox-hero/internal/logger"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const (
	user = "me"

	// fetchPageSize bounds a single Messages.List page.
	fetchPageSize = 100
)

type Client struct {
	srv          *gmailapi.Service
	accountEmail string
}

// NewClient authenticates against Gmail with the configured client secret and
// token file. On the first run the user is prompted to complete the browser
// authorization flow; the token is cached afterwards.
func NewClient(ctx context.Context, cfg *config.Gmail) (*Client, error) {
	b, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file: %w", err)
	}
	oauthConfig, err := google.ConfigFromJSON(b, gmailapi.GmailModifyScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file: %w", err)
	}

	httpClient, err := oauthClient(ctx, oauthConfig, cfg.TokenFile)
	if err != nil {
		return nil, err
	}
	srv, err := gmailapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail service: %w", err)
	}

	return &Client{srv: srv, accountEmail: cfg.AccountEmail}, nil
}

func oauthClient(ctx context.Context, oauthConfig *oauth2.Config, tokenFile string) (*http.Client, error) {
	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		tok, err = tokenFromWeb(ctx, oauthConfig)
		if err != nil {
			return nil, err
		}
		if err := saveToken(tokenFile, tok); err != nil {
			logger.Warnf("[Gmail] unable to cache oauth token: %v", err)
		}
	}
	return oauthConfig.Client(ctx, tok), nil
}

func tokenFromWeb(ctx context.Context, oauthConfig *oauth2.Config) (*oauth2.Token, error) {
	authURL := oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the authorization code:\n%v\n", authURL)

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		return nil, fmt.Errorf("unable to read authorization code: %w", err)
	}
	tok, err := oauthConfig.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("unable to exchange authorization code: %w", err)
	}
	return tok, nil
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

// AccountEmail returns the configured account owner address.
func (c *Client) AccountEmail() string {
	return c.accountEmail
}

// FetchMessages lists all messages matching the query and fetches each in
// full, preserving the provider's listing order. A message that cannot be
// fetched individually is logged and skipped rather than failing the whole
// fetch.
func (c *Client) FetchMessages(ctx context.Context, query string) ([]Message, error) {
	var ids []string
	pageToken := ""
	for {
		call := c.srv.Users.Messages.List(user).Q(query).MaxResults(fetchPageSize).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		list, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("listing messages: %w", err)
		}
		for _, m := range list.Messages {
			ids = append(ids, m.Id)
		}
		if list.NextPageToken == "" {
			break
		}
		pageToken = list.NextPageToken
	}

	messages := make([]Message, 0, len(ids))
	for _, id := range ids {
		full, err := c.srv.Users.Messages.Get(user, id).Format("full").Context(ctx).Do()
		if err != nil {
			logger.Warnf("[Gmail] unable to retrieve message %s: %v", id, err)
			continue
		}
		messages = append(messages, parseMessage(full))
	}
	return messages, nil
}

// GetMessage fetches a single message in full.
func (c *Client) GetMessage(ctx context.Context, id string) (*Message, error) {
	full, err := c.srv.Users.Messages.Get(user, id).Format("full").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("retrieving message %s: %w", id, err)
	}
	msg := parseMessage(full)
	return &msg, nil
}

// AttachmentData fetches attachment content. The attachment endpoint is tried
// first; when it yields no data the message payload is re-fetched and scanned
// for an inline part with the same filename.
func (c *Client) AttachmentData(ctx context.Context, att Attachment) ([]byte, error) {
	if att.AttachmentID != "" {
		body, err := c.srv.Users.Messages.Attachments.Get(user, att.MessageID, att.AttachmentID).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("downloading attachment %s: %w", att.Filename, err)
		}
		if body.Data != "" {
			data, err := base64.URLEncoding.DecodeString(body.Data)
			if err != nil {
				return nil, fmt.Errorf("decoding attachment %s: %w", att.Filename, err)
			}
			return data, nil
		}
		logger.Debugf("[Gmail] attachment %s returned no data, falling back to inline part", att.Filename)
	}

	full, err := c.srv.Users.Messages.Get(user, att.MessageID).Format("full").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("re-fetching message for attachment %s: %w", att.Filename, err)
	}
	data := findInlinePartData(full.Payload, att.Filename)
	if len(data) == 0 {
		return nil, fmt.Errorf("attachment %s content could not be retrieved", att.Filename)
	}
	return data, nil
}

// CreateDraft builds a MIME text message, base64url-encodes it and stores it
// as a Gmail draft. Returns the draft id.
func (c *Client) CreateDraft(ctx context.Context, to, subject, body string) (string, error) {
	raw := buildRawMIME(c.accountEmail, to, subject, body)
	draft := &gmailapi.Draft{
		Message: &gmailapi.Message{Raw: raw},
	}
	created, err := c.srv.Users.Drafts.Create(user, draft).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("creating draft: %w", err)
	}
	return created.Id, nil
}

// SendMessage sends a plain-text message from the account owner.
func (c *Client) SendMessage(ctx context.Context, to, subject, body string) (string, error) {
	raw := buildRawMIME(c.accountEmail, to, subject, body)
	sent, err := c.srv.Users.Messages.Send(user, &gmailapi.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("sending message: %w", err)
	}
	return sent.Id, nil
}

// buildRawMIME assembles a base64url-encoded RFC 2822 text message.
func buildRawMIME(from, to, subject, body string) string {
	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)
	return base64.URLEncoding.EncodeToString([]byte(sb.String()))
}

func parseMessage(msg *gmailapi.Message) Message {
	out := Message{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
		Snippet:  msg.Snippet,
	}
	if msg.Payload == nil {
		return out
	}
	for _, header := range msg.Payload.Headers {
		switch header.Name {
		case "Subject":
			out.Subject = header.Value
		case "From":
			out.Sender = header.Value
		case "Date":
			out.ReceivedAt = parseDateHeader(header.Value)
		}
	}
	out.BodyText = extractPlainText(msg.Payload)
	out.Attachments = collectAttachments(msg.Id, msg.Payload)
	return out
}

// dateLayouts covers the Date header formats seen in the wild.
var dateLayouts = []string{
	time.RFC1123Z,
	"Mon, 2 Jan 2006 15:04:05 -0700 (MST)",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 -0700",
	time.RFC1123,
	time.RFC822,
}

// parseDateHeader parses an RFC 2822 Date header, tolerating the trailing
// comment form "... (MST)". Returns the zero time when no layout matches.
func parseDateHeader(value string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}

	// strip a trailing parenthesized timezone comment and retry
	stripped := value
	if open := strings.LastIndex(stripped, " ("); open != -1 {
		if end := strings.LastIndex(stripped, ")"); end > open {
			stripped = strings.TrimSpace(stripped[:open] + stripped[end+1:])
		}
	}
	if stripped != value {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, stripped); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

// extractPlainText walks the MIME tree depth-first and returns the first
// text/plain part body.
func extractPlainText(payload *gmailapi.MessagePart) string {
	if payload == nil {
		return ""
	}
	if payload.MimeType == "text/plain" && payload.Body != nil && payload.Body.Data != "" {
		data, err := base64.URLEncoding.DecodeString(payload.Body.Data)
		if err == nil {
			return string(data)
		}
		logger.Warnf("[Gmail] unable to decode text/plain part: %v", err)
	}
	for _, part := range payload.Parts {
		mimeType := strings.ToLower(part.MimeType)
		if strings.HasPrefix(mimeType, "text/") || strings.HasPrefix(mimeType, "multipart/") {
			if body := extractPlainText(part); body != "" {
				return body
			}
		}
	}
	return ""
}

// collectAttachments walks the MIME tree and returns references for every
// named part, preserving part order.
func collectAttachments(messageID string, payload *gmailapi.MessagePart) []Attachment {
	if payload == nil {
		return nil
	}
	var out []Attachment
	var walk func(part *gmailapi.MessagePart)
	walk = func(part *gmailapi.MessagePart) {
		if part == nil {
			return
		}
		if part.Filename != "" && part.Body != nil {
			out = append(out, Attachment{
				MessageID:    messageID,
				AttachmentID: part.Body.AttachmentId,
				Filename:     part.Filename,
			})
		}
		for _, child := range part.Parts {
			walk(child)
		}
	}
	for _, part := range payload.Parts {
		walk(part)
	}
	return out
}

// findInlinePartData returns decoded inline body data for the named part.
func findInlinePartData(payload *gmailapi.MessagePart, filename string) []byte {
	if payload == nil {
		return nil
	}
	var found []byte
	var walk func(part *gmailapi.MessagePart)
	walk = func(part *gmailapi.MessagePart) {
		if part == nil || found != nil {
			return
		}
		if part.Filename == filename && part.Body != nil && part.Body.Data != "" {
			if data, err := base64.URLEncoding.DecodeString(part.Body.Data); err == nil {
				found = data
				return
			}
		}
		for _, child := range part.Parts {
			walk(child)
		}
	}
	walk(payload)
	return found
}
