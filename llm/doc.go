// Package llm wraps the chat-completion API used for alert classification
// and summarization. The Chat interface keeps the pipeline testable with a
// stub; OpenAIChat is the Azure OpenAI-backed implementation.
package llm
