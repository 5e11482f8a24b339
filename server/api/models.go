package api

type AnalyzeResult struct {
	ID string `json:"id"`

	Model string `json:"model"`

	Pages []PageRecord `json:"pages"`
}

type PageRecord struct {
	Number int    `json:"page_number"`
	Offset int    `json:"offset"`
	Text   string `json:"page_text"`
}
