package chat

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ContextEntry is one role-tagged turn as sent to the backend.
type ContextEntry struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeImage MessageType = "image"
	MessageTypeAudio MessageType = "audio"
	MessageTypeError MessageType = "error"
)

type Message struct {
	Content    string      `json:"content"`
	IsBot      bool        `json:"isBot"`
	Timestamp  time.Time   `json:"timestamp"`
	Type       MessageType `json:"type"`
	ImageURI   string      `json:"imageUri,omitempty"`
	Confidence *float64    `json:"confidence,omitempty"`
}

// Preferences are the profile hints forwarded to the assistant.
type Preferences struct {
	// ResponseStyle defaults to "concise".
	ResponseStyle string `json:"responseStyle,omitempty"`
	// Jurisdiction defaults to "" (unspecified).
	Jurisdiction string `json:"jurisdiction,omitempty"`
	// IncludeNextSteps defaults to true.
	IncludeNextSteps *bool `json:"includeNextSteps,omitempty"`
}

type UserInfo struct {
	// PreferredLanguage defaults to "en".
	PreferredLanguage string `json:"preferredLanguage,omitempty"`
	// TravelHistory defaults to empty.
	TravelHistory []string    `json:"travelHistory,omitempty"`
	Preferences   Preferences `json:"preferences"`
}

const (
	DefaultLanguage      = "en"
	DefaultResponseStyle = "concise"
)

// WithDefaults returns a copy with every unset field filled in.
func (u UserInfo) WithDefaults() UserInfo {
	out := u
	if out.PreferredLanguage == "" {
		out.PreferredLanguage = DefaultLanguage
	}
	if out.TravelHistory == nil {
		out.TravelHistory = []string{}
	} else {
		out.TravelHistory = append([]string(nil), u.TravelHistory...)
	}
	if out.Preferences.ResponseStyle == "" {
		out.Preferences.ResponseStyle = DefaultResponseStyle
	}
	if out.Preferences.IncludeNextSteps == nil {
		yes := true
		out.Preferences.IncludeNextSteps = &yes
	}
	return out
}

type SendRequest struct {
	Message  string
	Context  []ContextEntry
	UserInfo UserInfo
	// Image is an optional base64 JPEG payload.
	Image string
}

type Reply struct {
	Text       string
	Confidence *float64
	// Timestamp is the server's clock, never the client's.
	Timestamp time.Time
}
