package anagram

import (
	"encoding/json"
	"strings"
)

// Request is the JSON body sent to the generate endpoint.
type Request struct {
	UserName  string `json:"user_name"`
	InputText string `json:"input_text"`
}

// Response is the decoded success body of the generate endpoint.
// Anagrams keep the order the server returned them in.
type Response struct {
	Status   string   `json:"status,omitempty"`
	Anagrams []string `json:"anagrams"`
}

// rawResponse distinguishes a missing "anagrams" field from an empty list.
type rawResponse struct {
	Status   string    `json:"status"`
	Anagrams *[]string `json:"anagrams"`
}

// healthResponse is the body returned by GET /health
type healthResponse struct {
	Status string `json:"status"`
}

// errorBody is the optional error payload of non-2xx responses.
// Detail is either a string or a list of validation issues.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// validationIssue is one entry of a list-style detail payload
type validationIssue struct {
	Msg string `json:"msg"`
}

// parseDetail extracts a human-readable detail message from an error body.
// Returns "" when the body has no usable detail.
func parseDetail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(eb.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var issues []validationIssue
	if err := json.Unmarshal(eb.Detail, &issues); err == nil {
		msgs := make([]string, 0, len(issues))
		for _, issue := range issues {
			if m := strings.TrimSpace(issue.Msg); m != "" {
				msgs = append(msgs, m)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}
