package browser

import (
	"fmt"
	"net/url"
	"strings"
)

// SearchURL builds a results-page URL for query on engine. When sites is
// non-empty the query is scoped to those domains with site: operators.
func SearchURL(engine, query string, sites []string) (string, error) {
	if engine == "" {
		engine = DefaultEngineURL
	}

	u, err := url.Parse(engine)
	if err != nil {
		return "", fmt.Errorf("parse engine url: %w", err)
	}

	q := strings.TrimSpace(query)
	if len(sites) > 0 {
		scoped := make([]string, 0, len(sites))
		for _, s := range sites {
			scoped = append(scoped, "site:"+s)
		}
		q = fmt.Sprintf("%s (%s)", q, strings.Join(scoped, " OR "))
	}

	values := u.Query()
	values.Set("q", q)
	u.RawQuery = values.Encode()
	return u.String(), nil
}
