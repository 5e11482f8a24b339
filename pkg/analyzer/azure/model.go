package azure

type AnalyzeRequest struct {
	URLSource string `json:"urlSource"`
}

type OperationStatus string

const (
	OperationStatusSucceeded  OperationStatus = "succeeded"
	OperationStatusRunning    OperationStatus = "running"
	OperationStatusNotStarted OperationStatus = "notStarted"
)

type AnalyzeOperation struct {
	Status OperationStatus `json:"status"`

	Result AnalyzeResult `json:"analyzeResult"`
}

type AnalyzeResult struct {
	ModelID string `json:"modelId"`

	Content string `json:"content"`

	Pages []Page `json:"pages"`

	Tables     []Table     `json:"tables"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

type Page struct {
	PageNumber int `json:"pageNumber"`

	Spans []Span `json:"spans"`
}

type Table struct {
	RowCount    int `json:"rowCount"`
	ColumnCount int `json:"columnCount"`

	Cells []Cell `json:"cells"`

	BoundingRegions []BoundingRegion `json:"boundingRegions"`
	Spans           []Span           `json:"spans"`
}

type Cell struct {
	Kind string `json:"kind"`

	RowIndex    int `json:"rowIndex"`
	ColumnIndex int `json:"columnIndex"`

	RowSpan    int `json:"rowSpan"`
	ColumnSpan int `json:"columnSpan"`

	Content string `json:"content"`
}

type Paragraph struct {
	Role string `json:"role"`

	Spans []Span `json:"spans"`
}

type BoundingRegion struct {
	PageNumber int `json:"pageNumber"`
}

type Span struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
}
