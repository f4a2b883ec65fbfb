// Package ticket derives Jira ticket requests from GitHub webhook payloads.
package ticket

import (
	"encoding/json"
	"fmt"

	"github.com/isometry/gh-jira-bridge/internal/helpers"
)

const (
	// IssueType is the Jira issue type of every ticket.
	IssueType = "Task"
	// Placeholder is substituted for payload fields that are absent or null.
	Placeholder = "None"
)

// Request is the ticket submitted to Jira.
type Request struct {
	ProjectKey  string
	Summary     string
	Description string
	IssueType   string
}

// Fields are the payload values copied into the ticket. Nil means absent or null.
type Fields struct {
	RepositoryName *string
	Action         *string
	IssueTitle     *string
	IssueURL       *string
}

// ParsePayload reads the fields of interest from body by key.
// Other members of the payload are never decoded, so their shape cannot affect the result.
// A malformed or empty body yields empty Fields.
func ParsePayload(body string) Fields {
	root := json.RawMessage(body)
	return Fields{
		RepositoryName: lookupString(root, "repository", "name"),
		Action:         lookupString(root, "action"),
		IssueTitle:     lookupString(root, "issue", "title"),
		IssueURL:       lookupString(root, "issue", "html_url"),
	}
}

// lookupString follows path through nested JSON objects. It returns nil when
// a step is missing, null or not an object, or when the leaf is not a string.
func lookupString(raw json.RawMessage, path ...string) *string {
	for _, key := range path {
		var object map[string]json.RawMessage
		if err := json.Unmarshal(raw, &object); err != nil {
			return nil
		}
		next, found := object[key]
		if !found {
			return nil
		}
		raw = next
	}
	var value *string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	return value
}

// Summary renders the ticket summary.
func (f Fields) Summary() string {
	return fmt.Sprintf("GitHub Update for %s - %s: %s",
		helpers.StringOr(f.RepositoryName, Placeholder),
		helpers.StringOr(f.Action, Placeholder),
		helpers.StringOr(f.IssueTitle, Placeholder))
}

// Description renders the ticket description.
func (f Fields) Description() string {
	return fmt.Sprintf("GitHub Issue URL: %s", helpers.StringOr(f.IssueURL, Placeholder))
}

// NewRequest builds the ticket for body in projectKey.
func NewRequest(projectKey, body string) Request {
	fields := ParsePayload(body)
	return Request{
		ProjectKey:  projectKey,
		Summary:     fields.Summary(),
		Description: fields.Description(),
		IssueType:   IssueType,
	}
}
