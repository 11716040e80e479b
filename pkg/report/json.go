package report

import (
	"encoding/json"
	"io"

	"github.com/OpenTraceLab/OpenTraceSAR/pkg/sar"
)

// Document is the JSON envelope written by WriteJSON.
type Document struct {
	Count   int          `json:"count"`
	Results []sar.Result `json:"results"`
}

// WriteJSON writes results as an indented JSON document.
func WriteJSON(w io.Writer, results ...sar.Result) error {
	doc := Document{Count: len(results), Results: results}
	if doc.Results == nil {
		doc.Results = []sar.Result{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
