package api

import (
	"errors"
	"net/http"

	"github.com/clemensw/pagemap/pkg/analyzer"

	"github.com/google/uuid"
)

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	model := valueModel(r)

	p, err := h.Analyzer(model)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	input := analyzer.Input{}

	if url := valueURL(r); url != "" {
		input.URL = url
	} else if file, err := h.readFile(r); err == nil {
		input.File = file
	}

	if input.URL == "" && input.File == nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid input"))
		return
	}

	options := &analyzer.AnalyzeOptions{
		Layout: valueLayout(r),
	}

	result, err := p.Analyze(r.Context(), input, options)

	if err != nil {
		if errors.Is(err, analyzer.ErrUnsupported) {
			writeError(w, http.StatusUnsupportedMediaType, err)
			return
		}

		writeError(w, http.StatusBadGateway, err)
		return
	}

	pages := make([]PageRecord, 0, len(result.Pages))

	for _, page := range result.Pages {
		pages = append(pages, PageRecord{
			Number: page.Number,
			Offset: page.Offset,
			Text:   page.Text,
		})
	}

	writeJson(w, AnalyzeResult{
		ID: uuid.NewString(),

		Model: result.Model,

		Pages: pages,
	})
}
