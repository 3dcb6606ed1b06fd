package transport

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gloovup/portal/internal/listing"
)

// Reserved query parameters. Parameters starting with "_" (cache busters)
// are ignored; every other parameter is a filter.
const (
	paramSearch       = "search"
	paramShowArchived = "show_archived"
)

// ParseQuery reads a listing query from the URL: ?search=..&show_archived=true
// plus one parameter per filter key.
func ParseQuery(r *http.Request) listing.Query {
	values := r.URL.Query()
	q := listing.Query{Search: values.Get(paramSearch)}
	if v := values.Get(paramShowArchived); v != "" {
		q.ShowArchived, _ = strconv.ParseBool(v)
	}
	for key, vals := range values {
		if key == paramSearch || key == paramShowArchived || strings.HasPrefix(key, "_") || len(vals) == 0 {
			continue
		}
		if q.Filters == nil {
			q.Filters = make(map[string]string)
		}
		q.Filters[key] = vals[0]
	}
	return q
}
