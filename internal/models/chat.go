package models

// ChatRole tags who sent a message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMode selects the assistant's personality. Exactly one of the two
// values is sent with every chat request.
type ChatMode string

const (
	ModeBestie ChatMode = "bestie"
	ModeGuru   ChatMode = "guru"
)

func (m ChatMode) Valid() bool {
	return m == ModeBestie || m == ModeGuru
}

// ChatMessage is one entry in the append-only conversation log. The log is
// session-local and never persisted across runs.
type ChatMessage struct {
	ID   string   `json:"id"`
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}
