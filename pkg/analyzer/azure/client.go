package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/clemensw/pagemap/pkg/analyzer"
)

var _ analyzer.Provider = &Client{}

type Client struct {
	client *http.Client

	url   string
	token string

	interval time.Duration
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	c := &Client{
		client: http.DefaultClient,

		url: url,

		interval: 5 * time.Second,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Analyze(ctx context.Context, input analyzer.Input, options *analyzer.AnalyzeOptions) (result *analyzer.Result, err error) {
	if options == nil {
		options = new(analyzer.AnalyzeOptions)
	}

	if input.URL == "" && input.File == nil {
		return nil, analyzer.WrapError(errors.New("invalid input"))
	}

	if input.File != nil && !isSupported(*input.File) {
		return nil, analyzer.ErrUnsupported
	}

	// malformed span data is not validated up front. an out-of-range span
	// surfaces here as the same wrapped error a transport failure would
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = analyzer.WrapError(fmt.Errorf("%v", r))
		}
	}()

	model := "prebuilt-read"

	if options.Layout {
		model = "prebuilt-layout"
	}

	slog.DebugContext(ctx, "analyze document", "model", model)

	operationURL, err := c.submit(ctx, model, input)

	if err != nil {
		return nil, analyzer.WrapError(err)
	}

	analysis, err := c.poll(ctx, operationURL)

	if err != nil {
		return nil, analyzer.WrapError(err)
	}

	return &analyzer.Result{
		Model: analysis.ModelID,

		Pages: reconstructPages(*analysis, options.Layout),
	}, nil
}

func (c *Client) submit(ctx context.Context, model string, input analyzer.Input) (string, error) {
	u, _ := url.Parse(strings.TrimRight(c.url, "/") + "/documentintelligence/documentModels/" + model + ":analyze")

	query := u.Query()
	query.Set("api-version", "2024-11-30")

	u.RawQuery = query.Encode()

	var body io.Reader

	contentType := "application/octet-stream"

	if input.URL != "" {
		data, _ := json.Marshal(AnalyzeRequest{URLSource: input.URL})

		body = bytes.NewReader(data)
		contentType = "application/json"
	} else {
		body = bytes.NewReader(input.File.Content)
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-ms-useragent", "pagemap/1.0.0")

	if c.token != "" {
		req.Header.Set("Ocp-Apim-Subscription-Key", c.token)
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return "", convertError(resp)
	}

	operationURL := resp.Header.Get("Operation-Location")

	if operationURL == "" {
		return "", errors.New("missing operation location")
	}

	return operationURL, nil
}

func (c *Client) poll(ctx context.Context, operationURL string) (*AnalyzeResult, error) {
	for {
		operation, err := c.operation(ctx, operationURL)

		if err != nil {
			return nil, err
		}

		if operation.Status == OperationStatusRunning || operation.Status == OperationStatusNotStarted {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()

			case <-time.After(c.interval):
			}

			continue
		}

		if operation.Status != OperationStatusSucceeded {
			return nil, errors.New("operation " + string(operation.Status))
		}

		return &operation.Result, nil
	}
}

func (c *Client) operation(ctx context.Context, operationURL string) (*AnalyzeOperation, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, operationURL, nil)

	if c.token != "" {
		req.Header.Set("Ocp-Apim-Subscription-Key", c.token)
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var operation AnalyzeOperation

	if err := json.NewDecoder(resp.Body).Decode(&operation); err != nil {
		return nil, err
	}

	return &operation, nil
}

func isSupported(file analyzer.File) bool {
	if file.Name != "" {
		ext := strings.ToLower(path.Ext(file.Name))

		if slices.Contains(SupportedExtensions, ext) {
			return true
		}
	}

	if file.ContentType != "" {
		if slices.Contains(SupportedMimeTypes, file.ContentType) {
			return true
		}
	}

	return false
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return errors.New(string(data))
}
