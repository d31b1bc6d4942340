package handler

import (
	"net/http"
	"slices"
	"strings"

	"github.com/goydb/alldocs/pkg/model"
)

// DBAll lists the database names, startkey, endkey,
// limit, skip and descending work like for _all_docs
type DBAll struct {
	Base
}

func (s *DBAll) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	options, err := model.ParseAllDocsOptions(r.URL.Query())
	if err != nil {
		WriteErrorFor(w, err)
		return
	}

	names, err := s.Storage.Databases(r.Context())
	if err != nil {
		WriteErrorFor(w, err)
		return
	}

	writeJSON(w, http.StatusOK, selectNames(names, options))
}

// selectNames applies the range options to the sorted names
func selectNames(names []string, o model.AllDocsOptions) []string {
	compare := strings.Compare
	if o.Descending {
		names = slices.Clone(names)
		slices.Reverse(names)
		compare = func(a, b string) int { return strings.Compare(b, a) }
	}

	selected := make([]string, 0, len(names))
	for _, name := range names {
		if o.StartKey != nil && compare(name, *o.StartKey) < 0 {
			continue
		}
		if o.EndKey != nil {
			c := compare(name, *o.EndKey)
			if c > 0 || (c == 0 && !o.IsInclusiveEnd()) {
				break
			}
		}
		selected = append(selected, name)
	}

	selected = selected[min(o.Skip, len(selected)):]
	if o.Limit != nil && *o.Limit < len(selected) {
		selected = selected[:*o.Limit]
	}
	return selected
}
