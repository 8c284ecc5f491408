package transport

import (
	"fmt"
	"net/http"

	"github.com/transitkit/opendata-go/pkg/http/client"
)

// Result is the single terminal outcome of a call. Exactly one of Body and Err
// is set.
type Result struct {
	Resource Resource
	URL      string
	Body     []byte
	Err      error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// classify applies the rules in order: no response or non-200 status, then a
// transport error, then a missing body. A non-200 body is never surfaced.
func classify(resource Resource, reqURL string, resp *client.Response, err error) Result {
	result := Result{Resource: resource, URL: reqURL}

	switch {
	case resp == nil:
		result.Err = NewNetworkError(resource, 0, "no response", err)
	case resp.StatusCode != http.StatusOK:
		result.Err = NewNetworkError(resource, resp.StatusCode, fmt.Sprintf("unexpected status code: %d", resp.StatusCode), err)
	case err != nil:
		result.Err = NewNetworkError(resource, resp.StatusCode, "transport error", err)
	case len(resp.Body) == 0:
		result.Err = NewNetworkError(resource, resp.StatusCode, "empty response body", nil)
	default:
		result.Body = resp.Body
	}

	return result
}

func statusOf(resp *client.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
