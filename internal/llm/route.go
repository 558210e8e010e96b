package llm

import "strings"

// ProviderFor maps a model identifier to the provider that serves it.
// Namespaced ids ("openai/gpt-4.1") are resolved by the tag before the
// first slash; legacy ids without a slash are matched by prefix. Anything
// unrecognized belongs to the aggregator.
func ProviderFor(modelID string) Provider {
	if tag, _, ok := strings.Cut(modelID, "/"); ok {
		switch Provider(tag) {
		case ProviderOpenAI, ProviderAnthropic, ProviderGoogle:
			return Provider(tag)
		}
		return ProviderOpenRouter
	}

	switch {
	case strings.HasPrefix(modelID, "gpt-"):
		return ProviderOpenAI
	case strings.HasPrefix(modelID, "claude-"):
		return ProviderAnthropic
	case strings.HasPrefix(modelID, "gemini-"):
		return ProviderGoogle
	}
	return ProviderOpenRouter
}

// Route decides how to reach the given model with the given credentials.
// Pure and deterministic: a present direct key for the model's provider
// always wins over the aggregator; everything else routes through the
// aggregator with whatever aggregator key exists. There is no way to force
// aggregator routing while a direct key is configured.
func Route(modelID string, creds CredentialSet) RouteDecision {
	p := ProviderFor(modelID)
	if p != ProviderOpenRouter {
		if key := creds.Direct(p); key != "" {
			return RouteDecision{Provider: p, UseDirectAPI: true, APIKey: key}
		}
	}
	return RouteDecision{Provider: ProviderOpenRouter, UseDirectAPI: false, APIKey: creds.OpenRouter}
}

// bareModelName strips the provider namespace from an id, e.g.
// "openai/gpt-4.1" -> "gpt-4.1". Direct provider APIs expect the bare
// name; the aggregator expects the full namespaced id unchanged.
func bareModelName(modelID string) string {
	if _, rest, ok := strings.Cut(modelID, "/"); ok {
		return rest
	}
	return modelID
}
