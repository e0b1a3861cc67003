package getprice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// contains http utils to deal with remote price services

// loggingTransport logs every round trip. Nothing is cached: each run sees
// live prices.
type loggingTransport struct {
	base http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		log.Printf("%v %v%v failed: %v", req.Method, req.URL.Host, req.URL.Path, err)
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	return resp, nil
}

// newHTTPClient returns a client without timeout that logs its traffic.
func newHTTPClient() *http.Client {
	return &http.Client{Transport: &loggingTransport{base: http.DefaultTransport}}
}

// jwget performs an HTTP GET request and decodes the JSON response into a
// generic value suitable for jsonpath queries.
func jwget(ctx context.Context, client *http.Client, addr string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, &TransportError{URL: addr, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: addr, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{URL: addr, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, &TransportError{URL: addr, Err: err}
	}

	var data any
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		return nil, &MalformedResponseError{URL: addr, Err: err}
	}
	return data, nil
}

// lookup evaluates a JSONPath expression against a decoded response.
func lookup(doc any, path string) (any, error) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, &MissingFieldError{Path: path, Err: err}
	}
	return v, nil
}

// lookupNumber evaluates path and reads the result as a number. Providers
// quote prices either as JSON numbers or as numeric strings.
func lookupNumber(doc any, path string) (float64, error) {
	v, err := lookup(doc, path)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, &NonNumericFieldError{Path: path, Value: n}
		}
		return f, nil
	}
	return 0, &NonNumericFieldError{Path: path, Value: v}
}

// lookupPrice is lookupNumber for prices and rates, which are strictly positive.
func lookupPrice(doc any, path string) (float64, error) {
	v, err := lookupNumber(doc, path)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, &NonNumericFieldError{Path: path, Value: v}
	}
	return v, nil
}
