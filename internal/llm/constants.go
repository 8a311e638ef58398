package llm

const (
	DefaultMaxTokens = 300
	DefaultModel     = "claude-sonnet-4-20250514"
)

const (
	// DefaultBaseURL is the Anthropic API root; the messages path is appended.
	DefaultBaseURL   = "https://api.anthropic.com"
	messagesPath     = "/v1/messages"
	AnthropicVersion = "2023-06-01"
)

const (
	RoleUser         = "user"
	ContentTypeText  = "text"
	errTypeRateLimit = "rate_limit_error"
)
