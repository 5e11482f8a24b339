package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/clemensw/pagemap/config"
	"github.com/clemensw/pagemap/pkg/analyzer"
	"github.com/clemensw/pagemap/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	layout bool

	result *analyzer.Result
	err    error
}

func (s *stubAnalyzer) Analyze(ctx context.Context, input analyzer.Input, options *analyzer.AnalyzeOptions) (*analyzer.Result, error) {
	if options != nil {
		s.layout = options.Layout
	}

	if s.err != nil {
		return nil, s.err
	}

	return s.result, nil
}

func newTestHandler(t *testing.T, p analyzer.Provider) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.RegisterAnalyzer("azure", p)

	h, err := api.New(cfg)
	require.NoError(t, err)

	r := chi.NewRouter()
	h.Attach(r)

	return r
}

func postForm(handler http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	return w
}

func TestHandleAnalyze(t *testing.T) {
	stub := &stubAnalyzer{
		result: &analyzer.Result{
			Model: "prebuilt-layout",

			Pages: []analyzer.PageRecord{
				{Number: 0, Offset: 0, Text: "Hello World "},
				{Number: 1, Offset: 12, Text: "<h1>Title</h1> "},
			},
		},
	}

	handler := newTestHandler(t, stub)

	w := postForm(handler, url.Values{
		"url":    {"https://example.com/report.pdf"},
		"layout": {"true"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, stub.layout)

	var result api.AnalyzeResult

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	require.NotEmpty(t, result.ID)
	require.Equal(t, "prebuilt-layout", result.Model)

	require.Len(t, result.Pages, 2)
	require.Equal(t, 0, result.Pages[0].Number)
	require.Equal(t, "Hello World ", result.Pages[0].Text)
	require.Equal(t, 12, result.Pages[1].Offset)

	// markup must survive encoding untouched
	require.Contains(t, w.Body.String(), "<h1>Title</h1>")
}

func TestHandleAnalyzeUnknownModel(t *testing.T) {
	handler := newTestHandler(t, &stubAnalyzer{result: &analyzer.Result{}})

	w := postForm(handler, url.Values{
		"url":   {"https://example.com/report.pdf"},
		"model": {"missing"},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAnalyzeMissingInput(t *testing.T) {
	handler := newTestHandler(t, &stubAnalyzer{result: &analyzer.Result{}})

	w := postForm(handler, url.Values{})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAnalyzeUnsupported(t *testing.T) {
	handler := newTestHandler(t, &stubAnalyzer{err: analyzer.ErrUnsupported})

	w := postForm(handler, url.Values{
		"url": {"https://example.com/archive.zip"},
	})

	require.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestHandleAnalyzeUpstreamFailure(t *testing.T) {
	handler := newTestHandler(t, &stubAnalyzer{err: analyzer.WrapError(errors.New("operation failed"))})

	w := postForm(handler, url.Values{
		"url": {"https://example.com/report.pdf"},
	})

	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Contains(t, w.Body.String(), "operation failed")
}
