// Package models provides the core data structures for handling webhook requests and responses.
package models

// Request represents an incoming client request containing a body and associated headers.
type Request struct {
	Body    string
	Headers map[string]string
}

// Response defines the structure for an HTTP response containing a body, headers, and a status code.
type Response struct {
	Body       string
	Headers    map[string]string
	StatusCode int
}

// Result is the outcome of a single processing step.
// Status codes are informational and never become the transport status.
type Result struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Combined is the envelope returned for every invocation.
type Combined struct {
	VerifyGitHubWebhook Result `json:"verify_github_webhook_result"`
	CreateJiraTicket    Result `json:"create_jira_ticket_result"`
}
