package fetch

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// HTTPFetch implements a generic HTTP fetcher.
type HTTPFetch struct {
	client *http.Client
}

// NewHTTP creates a new HTTPFetch instance.
func NewHTTP() *HTTPFetch {
	c := &http.Client{Timeout: 10 * time.Second}
	return &HTTPFetch{client: c}
}

// JSON gets 'url' and decodes the response body into 'target'. A non-2xx
// status fails before any decode attempt.
func (h HTTPFetch) JSON(url string, target interface{}) error {
	r, err := h.client.Get(url)
	if err != nil {
		return err
	}
	defer r.Body.Close()

	if r.StatusCode < http.StatusOK || r.StatusCode > 299 {
		return errors.Errorf("server returned %s", r.Status)
	}

	return errors.Wrap(json.NewDecoder(r.Body).Decode(target), "decoding response")
}
