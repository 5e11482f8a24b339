package api

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/clemensw/pagemap/pkg/analyzer"
)

func valueURL(r *http.Request) string {
	if val := r.FormValue("url"); val != "" {
		return val
	}

	return ""
}

func valueModel(r *http.Request) string {
	if val := r.FormValue("model"); val != "" {
		return val
	}

	return ""
}

func valueLayout(r *http.Request) bool {
	if val := r.FormValue("layout"); val != "" {
		if layout, err := strconv.ParseBool(val); err == nil {
			return layout
		}
	}

	return false
}

func (h *Handler) readFile(r *http.Request) (*analyzer.File, error) {
	if file, header, err := r.FormFile("file"); err == nil {
		data, err := io.ReadAll(file)

		if err != nil {
			return nil, err
		}

		return &analyzer.File{
			Name: header.Filename,

			Content:     data,
			ContentType: header.Header.Get("Content-Type"),
		}, nil
	}

	contentType := r.Header.Get("Content-Type")
	contentDisposition := r.Header.Get("Content-Disposition")

	_, params, _ := mime.ParseMediaType(contentDisposition)

	filename := params["filename*"]
	filename = strings.TrimPrefix(filename, "UTF-8''")
	filename = strings.TrimPrefix(filename, "utf-8''")

	if filename == "" {
		filename = params["filename"]
	}

	data, err := io.ReadAll(r.Body)

	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, errors.New("empty body")
	}

	return &analyzer.File{
		Name: filename,

		Content:     data,
		ContentType: contentType,
	}, nil
}
