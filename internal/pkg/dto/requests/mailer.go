package requests

type EmailPayload struct {
	Subject  string            `json:"subject"`
	From     string            `json:"from"`
	To       []string          `json:"to"`
	HTMLCode string            `json:"html_code"`
	Encoded  bool              `json:"encoded"`
	Metadata map[string]string `json:"metadata,omitempty"`
}
