package config

import "time"

const (
	// Context window sent to the backend with each request
	HistoryWindow = 8

	// Request cooldown between chat turns
	Cooldown = 5 * time.Second

	// Backend request timeout
	RequestTimeout = 120 * time.Second

	// Backend health check cache duration
	StatusCacheDuration = 30 * time.Second

	// Rate limit (messages per minute per chat)
	RateLimitPerMinute = 10

	// Fallback reply when the backend returns no text
	FallbackResponse = "I wasn't able to put together an answer for that. Try rephrasing your question."

	// Shown alongside any failed turn
	BackendErrorNotice = "Something went wrong while reaching the intelligence backend. Please check that it is running and try again."
)
