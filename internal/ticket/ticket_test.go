package ticket_test

import (
	"testing"

	"github.com/isometry/gh-jira-bridge/internal/ticket"
	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	testCases := []struct {
		Name                string
		Body                string
		ExpectedSummary     string
		ExpectedDescription string
	}{
		{
			Name:                "issue_opened",
			Body:                `{"repository":{"name":"foo"},"action":"opened","issue":{"title":"Bug X","html_url":"http://x/1"}}`,
			ExpectedSummary:     "GitHub Update for foo - opened: Bug X",
			ExpectedDescription: "GitHub Issue URL: http://x/1",
		},
		{
			Name:                "extra_fields_ignored",
			Body:                `{"action":"closed","issue":{"number":7,"title":"Crash","html_url":"https://github.com/o/r/issues/7","state":"closed"},"repository":{"name":"r","full_name":"o/r"},"sender":{"login":"octocat"}}`,
			ExpectedSummary:     "GitHub Update for r - closed: Crash",
			ExpectedDescription: "GitHub Issue URL: https://github.com/o/r/issues/7",
		},
		{
			Name:                "unrelated_fields_mistyped",
			Body:                `{"repository":{"name":"foo","id":"R_kgDO"},"action":"opened","issue":{"title":"Bug X","html_url":"http://x/1","number":"7"},"sender":42}`,
			ExpectedSummary:     "GitHub Update for foo - opened: Bug X",
			ExpectedDescription: "GitHub Issue URL: http://x/1",
		},
		{
			Name:                "field_of_interest_mistyped",
			Body:                `{"repository":"foo","action":5,"issue":{"title":"Bug X","html_url":["http://x/1"]}}`,
			ExpectedSummary:     "GitHub Update for None - None: Bug X",
			ExpectedDescription: "GitHub Issue URL: None",
		},
		{
			Name:                "missing_issue",
			Body:                `{"repository":{"name":"foo"},"action":"created"}`,
			ExpectedSummary:     "GitHub Update for foo - created: None",
			ExpectedDescription: "GitHub Issue URL: None",
		},
		{
			Name:                "null_fields",
			Body:                `{"repository":{"name":null},"action":null,"issue":null}`,
			ExpectedSummary:     "GitHub Update for None - None: None",
			ExpectedDescription: "GitHub Issue URL: None",
		},
		{
			Name:                "empty_strings_kept",
			Body:                `{"repository":{"name":""},"action":"","issue":{"title":"","html_url":""}}`,
			ExpectedSummary:     "GitHub Update for  - : ",
			ExpectedDescription: "GitHub Issue URL: ",
		},
		{
			Name:                "empty_object",
			Body:                `{}`,
			ExpectedSummary:     "GitHub Update for None - None: None",
			ExpectedDescription: "GitHub Issue URL: None",
		},
		{
			Name:                "empty_body",
			Body:                ``,
			ExpectedSummary:     "GitHub Update for None - None: None",
			ExpectedDescription: "GitHub Issue URL: None",
		},
		{
			Name:                "malformed_body",
			Body:                `{"repository":`,
			ExpectedSummary:     "GitHub Update for None - None: None",
			ExpectedDescription: "GitHub Issue URL: None",
		},
		{
			Name:                "json_null",
			Body:                `null`,
			ExpectedSummary:     "GitHub Update for None - None: None",
			ExpectedDescription: "GitHub Issue URL: None",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := ticket.NewRequest("OPS", tc.Body)

			assert.Equal(t, "OPS", req.ProjectKey)
			assert.Equal(t, ticket.IssueType, req.IssueType)
			assert.Equal(t, tc.ExpectedSummary, req.Summary)
			assert.Equal(t, tc.ExpectedDescription, req.Description)
		})
	}
}

func TestParsePayload(t *testing.T) {
	f := ticket.ParsePayload(`{"action":"labeled","issue":{"title":"T","user":{"id":"x"}}}`)

	assert.Nil(t, f.RepositoryName)
	assert.Nil(t, f.IssueURL)
	if assert.NotNil(t, f.Action) {
		assert.Equal(t, "labeled", *f.Action)
	}
	if assert.NotNil(t, f.IssueTitle) {
		assert.Equal(t, "T", *f.IssueTitle)
	}

	assert.Equal(t, ticket.Fields{}, ticket.ParsePayload(`not json`))
}
