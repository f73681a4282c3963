package httpapi

import (
	"net/http"

	"github.com/wcc-platform/contentschema/cms"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Details string      `json:"details"`
	Issues  []IssueView `json:"issues,omitempty"`
}

// IssueView is one validation issue in an error response.
type IssueView struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string, issues []IssueView) {
	writeJSON(w, status, ErrorResponse{
		Status:  status,
		Message: msg,
		Details: "uri=" + r.URL.Path,
		Issues:  issues,
	})
}

func issueViews(e *cms.ValidationError) []IssueView {
	out := make([]IssueView, 0, len(e.Issues))
	for _, it := range e.Issues {
		out = append(out, IssueView{Path: it.Path, Code: it.Code, Message: it.Message})
	}
	return out
}
