package pagination

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildLinkHeader renders an RFC 8288 Link header with next and prev
// relations. Query parameters other than the cursor are carried over, so
// limit and filters survive page traversal. Empty cursors produce no
// relation; with both empty the result is "".
func BuildLinkHeader(baseURL string, query url.Values, nextCursor, prevCursor string) string {
	var links []string
	for _, rel := range []struct {
		name   string
		cursor string
	}{
		{"next", nextCursor},
		{"prev", prevCursor},
	} {
		if rel.cursor == "" {
			continue
		}
		q := cloneValues(query)
		q.Set("cursor", rel.cursor)
		links = append(links, fmt.Sprintf("<%s?%s>; rel=%q", baseURL, q.Encode(), rel.name))
	}
	return strings.Join(links, ", ")
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
