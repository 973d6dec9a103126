package app

import (
	"net/url"
	"strings"
)

const disablePreparedBinaryParam = "disable_prepared_binary_result"

// normalizeDBURL appends the lib/pq flag that disables binary results for
// prepared statements. Connection poolers in transaction mode need it.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	query := parsed.Query()
	if query.Get(disablePreparedBinaryParam) != "" {
		return raw
	}
	query.Set(disablePreparedBinaryParam, "yes")
	parsed.RawQuery = query.Encode()

	return parsed.String()
}

// dbNameFromURL extracts the database name from either a postgres:// URL or
// a keyword/value DSN, for the db.name attribute on spans.
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)

	if parsed, err := url.Parse(trimmed); err == nil && parsed != nil && parsed.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}

	return dbNameFromKeywordDSN(trimmed)
}

func dbNameFromKeywordDSN(dsn string) string {
	for _, token := range strings.Fields(dsn) {
		value, ok := strings.CutPrefix(token, "dbname=")
		if !ok {
			continue
		}
		if name := strings.Trim(strings.TrimSpace(value), `"'`); name != "" {
			return name
		}
	}

	return ""
}
