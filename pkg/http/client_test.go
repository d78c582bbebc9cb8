package http

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type echoBody struct {
	Days int `json:"days"`
}

type recordingLogger struct {
	mu        sync.Mutex
	requests  int
	successes int
	failures  []int
}

func (l *recordingLogger) LogRequest(method, url string, headers map[string]string, body string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests++
}

func (l *recordingLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.successes++
}

func (l *recordingLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures = append(l.failures, httpStatus)
}

func newTestServer(t *testing.T, handler nethttp.HandlerFunc) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestPostJSONRoundTrip(t *testing.T) {
	srv := newTestServer(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != nethttp.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/base/items/echo" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected json content type, got %s", got)
		}
		var in echoBody
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode([]echoBody{in, in})
	})

	logger := &recordingLogger{}
	client := NewHttpClient(srv.URL+"/base/", ClientOptions{Logger: logger})

	resp, _, status, err := client.Request().
		WithMethod(POST).
		WithPath("items/echo").
		WithBody(echoBody{Days: 2}).
		WithSuccessResp(&[]echoBody{}).
		Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != nethttp.StatusOK {
		t.Errorf("expected 200, got %d", status)
	}

	got := *resp.(*[]echoBody)
	if len(got) != 2 || got[0].Days != 2 {
		t.Errorf("unexpected body %+v", got)
	}
	if logger.requests != 1 || logger.successes != 1 {
		t.Errorf("expected one logged request and success, got %d/%d", logger.requests, logger.successes)
	}
}

func TestEmptySuccessBodyIsNotDecoded(t *testing.T) {
	srv := newTestServer(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
	})

	target := &[]echoBody{}
	resp, _, _, err := NewHttpClient(srv.URL, ClientOptions{}).Post(context.Background(), "/x", nil, nil, nil, target, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != target || len(*target) != 0 {
		t.Errorf("expected untouched target, got %+v", resp)
	}
}

func TestNonSuccessReturnsStatusErrorWithoutDecoding(t *testing.T) {
	srv := newTestServer(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusBadRequest)
	})

	logger := &recordingLogger{}
	_, errResp, status, err := NewHttpClient(srv.URL, ClientOptions{Logger: logger}).Request().
		WithMethod(POST).
		WithPath("/x").
		WithBody(echoBody{}).
		WithSuccessResp(&[]echoBody{}).
		Execute()

	statusErr, ok := AsStatusError(err)
	if !ok {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.StatusCode != nethttp.StatusBadRequest || status != nethttp.StatusBadRequest {
		t.Errorf("expected 400, got %d/%d", statusErr.StatusCode, status)
	}
	if errResp != nil {
		t.Errorf("expected no error response, got %+v", errResp)
	}
	if len(logger.failures) != 1 || logger.failures[0] != nethttp.StatusBadRequest {
		t.Errorf("expected one logged failure with 400, got %v", logger.failures)
	}
}

func TestErrorBodyDecodedWhenRequested(t *testing.T) {
	type apiError struct {
		Message string `json:"message"`
	}
	srv := newTestServer(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"message":"nope"}`)
	})

	_, errResp, _, err := NewHttpClient(srv.URL, ClientOptions{}).Get(context.Background(), "/x", nil, nil, nil, &apiError{})
	if _, ok := AsStatusError(err); !ok {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if got := errResp.(*apiError).Message; got != "nope" {
		t.Errorf("expected decoded error message, got %q", got)
	}
}

func TestNotFoundIsStatusError(t *testing.T) {
	srv := newTestServer(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		nethttp.NotFound(w, r)
	})

	resp, _, status, err := NewHttpClient(srv.URL, ClientOptions{}).Get(context.Background(), "/x", nil, nil, &echoBody{}, nil)
	statusErr, ok := AsStatusError(err)
	if !ok || statusErr.StatusCode != nethttp.StatusNotFound || status != nethttp.StatusNotFound {
		t.Fatalf("expected 404 status error, got %d %v", status, err)
	}
	if resp != nil {
		t.Errorf("expected no success response, got %+v", resp)
	}
}

func TestXMLResponseWithLegacyCharset(t *testing.T) {
	type city struct {
		XMLName xml.Name `xml:"city"`
		Name    string   `xml:"name"`
	}
	srv := newTestServer(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><city><name>S\xe3o Paulo</name></city>"))
	})

	resp, _, _, err := NewHttpClient(srv.URL, ClientOptions{}).Get(context.Background(), "/city", nil, nil, &city{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resp.(*city).Name; got != "São Paulo" {
		t.Errorf("expected charset-decoded name, got %q", got)
	}
}

func TestQueryParamsAreEscaped(t *testing.T) {
	srv := newTestServer(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if got := r.URL.Query().Get("name"); got != "a b&c" {
			t.Errorf("unexpected query value %q", got)
		}
	})

	_, _, _, err := NewHttpClient(srv.URL, ClientOptions{}).Get(context.Background(), "/q", map[string]string{"name": "a b&c"}, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestContextCancellationAbortsRequest(t *testing.T) {
	release := make(chan struct{})
	srv := newTestServer(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	resp, _, _, err := NewHttpClient(srv.URL, ClientOptions{}).Request().
		WithContext(ctx).
		WithMethod(POST).
		WithPath("/slow").
		WithSuccessResp(&[]echoBody{}).
		Execute()
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if resp != nil {
		t.Errorf("expected no partial result, got %+v", resp)
	}
}
