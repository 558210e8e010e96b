package llm

import "slices"

// Model describes one entry of the fixed model catalog offered to users.
type Model struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Provider Provider `json:"provider"`
}

var catalog = []Model{
	{ID: "openai/gpt-4.1", Name: "GPT-4.1", Provider: ProviderOpenAI},
	{ID: "openai/gpt-4o", Name: "GPT-4o", Provider: ProviderOpenAI},
	{ID: "openai/gpt-4o-mini", Name: "GPT-4o mini", Provider: ProviderOpenAI},
	{ID: "anthropic/claude-3.5-sonnet", Name: "Claude 3.5 Sonnet", Provider: ProviderAnthropic},
	{ID: "anthropic/claude-3-haiku", Name: "Claude 3 Haiku", Provider: ProviderAnthropic},
	{ID: "google/gemini-2.0-flash", Name: "Gemini 2.0 Flash", Provider: ProviderGoogle},
	{ID: "google/gemini-1.5-pro", Name: "Gemini 1.5 Pro", Provider: ProviderGoogle},
	{ID: "meta-llama/llama-3.1-70b-instruct", Name: "Llama 3.1 70B", Provider: ProviderOpenRouter},
	{ID: "deepseek/deepseek-chat", Name: "DeepSeek V3", Provider: ProviderOpenRouter},
	{ID: "mistralai/mistral-large", Name: "Mistral Large", Provider: ProviderOpenRouter},
}

// Catalog returns the fixed list of selectable models.
func Catalog() []Model {
	return slices.Clone(catalog)
}

// InCatalog reports whether the given model id is offered.
func InCatalog(modelID string) bool {
	return slices.ContainsFunc(catalog, func(m Model) bool { return m.ID == modelID })
}
