package llm

// Provider identifies an upstream LLM vendor or the aggregator. It is a
// closed enumeration: every switch over it must handle all four values,
// and anything outside the enumeration is a programming error surfaced by
// Registry.For rather than a silent fallthrough.
type Provider string

const (
	ProviderOpenAI     Provider = "openai"
	ProviderAnthropic  Provider = "anthropic"
	ProviderGoogle     Provider = "google"
	ProviderOpenRouter Provider = "openrouter"
)

// CredentialSet holds the secrets a user has configured, one per provider.
// Values are already normalized by the resolver: a missing or
// whitespace-only secret is the empty string.
type CredentialSet struct {
	OpenAI     string
	Anthropic  string
	Google     string
	OpenRouter string
}

// Direct returns the user's own key for a direct provider, or "" when none
// is configured. The aggregator has no direct key by definition.
func (c CredentialSet) Direct(p Provider) string {
	switch p {
	case ProviderOpenAI:
		return c.OpenAI
	case ProviderAnthropic:
		return c.Anthropic
	case ProviderGoogle:
		return c.Google
	case ProviderOpenRouter:
		return ""
	}
	return ""
}

// RouteDecision is the output of route selection: which provider to call,
// whether with the user's own key or through the aggregator, and the key
// to authenticate with. APIKey may be empty on the aggregator path; the
// orchestrator turns that into a user-actionable error.
type RouteDecision struct {
	Provider     Provider
	UseDirectAPI bool
	APIKey       string
}
