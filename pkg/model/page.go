package model

// Page is the response of one _all_docs request
type Page struct {
	TotalRows int   `json:"total_rows"`
	Offset    int   `json:"offset"`
	Rows      []Row `json:"rows"`
}

type Row struct {
	ID    string                 `json:"id,omitempty"`
	Key   string                 `json:"key"`
	Value *RowValue              `json:"value,omitempty"`
	Doc   map[string]interface{} `json:"doc,omitempty"`
	Error string                 `json:"error,omitempty"`
}

type RowValue struct {
	Rev     string `json:"rev"`
	Deleted bool   `json:"deleted,omitempty"`
}

const RowErrorNotFound = "not_found"

// NewRow builds the _all_docs row of the document, the document
// body is only added if includeDocs is set.
func NewRow(doc *Document, includeDocs bool) Row {
	row := Row{
		ID:  doc.ID,
		Key: doc.ID,
		Value: &RowValue{
			Rev:     doc.Rev,
			Deleted: doc.Deleted,
		},
	}
	if includeDocs && !doc.Deleted {
		row.Doc = doc.Body()
	}
	return row
}

// Empty is true if the page has no rows, an empty
// page marks the end of a paginated query.
func (p *Page) Empty() bool {
	return p == nil || len(p.Rows) == 0
}

// Last returns the last row of the page
func (p *Page) Last() (Row, bool) {
	if p.Empty() {
		return Row{}, false
	}
	return p.Rows[len(p.Rows)-1], true
}

func (p *Page) IDs() []string {
	if p == nil {
		return nil
	}
	ids := make([]string, len(p.Rows))
	for i, row := range p.Rows {
		ids[i] = row.ID
	}
	return ids
}
