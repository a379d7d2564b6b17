package model

// RawItem is one line of the OCR guess. The model returns numeric fields as
// numbers, quoted strings, locale-formatted strings or null depending on the
// photo, so they stay untyped until service.ParseFlexibleNumber runs.
type RawItem struct {
	ProductName string `json:"productName"`
	UnitPrice   any    `json:"unitPrice"`
	Quantity    any    `json:"quantity"`
	TotalAmount any    `json:"totalAmount"`
}

// NormalizedItem is a cleaned invoice line: positive quantity, non-empty name,
// total derived from qty*price when the OCR step did not read one.
type NormalizedItem struct {
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalAmount float64 `json:"totalAmount"`
}

// ScanRequest is the loosely-typed payload the OCR proxy hands over, plus the
// caller's catalog names to snap noisy product names onto.
type ScanRequest struct {
	Items             []RawItem `json:"items"`
	SaleDate          string    `json:"saleDate,omitempty"`
	Error             string    `json:"error,omitempty"`
	CandidateProducts []string  `json:"candidateProducts,omitempty"`
}

// ScanResult is what persistence/UI consumes. SaleDate is empty (and omitted)
// when no format matched; callers treat that as "ask the user".
type ScanResult struct {
	Items    []NormalizedItem `json:"items"`
	SaleDate string           `json:"saleDate,omitempty"`
	Error    string           `json:"error,omitempty"`
}
