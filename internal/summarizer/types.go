package summarizer

// SummaryResult is the outcome of summarizing one message, attachments
// included. AttachmentErrors keeps one entry per failed attachment, in
// attachment order; failures never remove the entries of succeeding siblings.
type SummaryResult struct {
	Text             string
	HadAttachments   bool
	AttachmentErrors []string
}
