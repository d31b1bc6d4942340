package model

import (
	"strconv"
	"strings"
)

var (
	DocsBucket    = []byte("docs")
	DeletedBucket = []byte("deleted")
)

type Document struct {
	ID      string                 `json:"_id,omitempty"`
	Rev     string                 `json:"_rev,omitempty"`
	Deleted bool                   `json:"_deleted,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

func (doc Document) ValidUpdateRevision(newDoc *Document) bool {
	oldRev, ok := doc.Revision()
	if ok {
		newRev, ok := newDoc.Revision()
		if !ok || newRev != oldRev {
			// update without correct rev forbidden if
			// document already exists
			return false
		}
	}
	return true
}

func (doc Document) Revision() (string, bool) {
	if doc.Rev != "" {
		return doc.Rev, true
	}
	rev, ok := doc.Data["_rev"].(string)
	return rev, ok
}

func (doc Document) NextSequence() int {
	rev, ok := doc.Revision()
	if !ok {
		return 1
	}

	i := strings.Index(rev, "-")
	if i < 0 {
		return 1
	}
	val, err := strconv.ParseInt(rev[:i], 10, 64)
	if err != nil {
		return 1 // this should never happen, but if so fallback to 1
	}
	return int(val) + 1
}

// Body returns the document data as stored by the client
// including the _id and _rev meta fields.
func (doc Document) Body() map[string]interface{} {
	body := make(map[string]interface{}, len(doc.Data)+2)
	for k, v := range doc.Data {
		body[k] = v
	}
	body["_id"] = doc.ID
	body["_rev"] = doc.Rev
	if doc.Deleted {
		body["_deleted"] = true
	}
	return body
}
