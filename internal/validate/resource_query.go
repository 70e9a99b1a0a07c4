package validate

import "strconv"

const (
	CodeInvalidLimit  = "INVALID_LIMIT"
	CodeInvalidOffset = "INVALID_OFFSET"
	CodeInvalidType   = "INVALID_TYPE"
)

var resourceTypes = map[string]bool{
	"course":  true,
	"video":   true,
	"article": true,
	"book":    true,
}

// ResourceQuery is a validated catalog query.
type ResourceQuery struct {
	Tag    string
	Locale string
	Type   string
	Limit  int
	Offset int
}

// Resources validates GET /resources query parameters. Limit defaults to 50
// and is capped at 100; offset defaults to 0.
func Resources(tag, locale, typ, limitStr, offsetStr string) (ResourceQuery, *Error) {
	query := ResourceQuery{Tag: tag, Locale: locale, Type: typ, Limit: 50}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return query, fail(CodeInvalidLimit, "Invalid limit parameter")
		}
		if limit > 100 {
			limit = 100
		}
		query.Limit = limit
	}

	if offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return query, fail(CodeInvalidOffset, "Invalid offset parameter")
		}
		query.Offset = offset
	}

	if typ != "" && !resourceTypes[typ] {
		return query, fail(CodeInvalidType, "Invalid type parameter")
	}

	return query, nil
}

// Page validates plain limit/offset pagination (tasks listing). Same
// defaults and cap as the catalog query.
func Page(limitStr, offsetStr string) (limit, offset int, err *Error) {
	limit = 50
	if limitStr != "" {
		n, convErr := strconv.Atoi(limitStr)
		if convErr != nil || n < 1 {
			return 0, 0, fail(CodeInvalidLimit, "Invalid limit parameter")
		}
		if n > 100 {
			n = 100
		}
		limit = n
	}

	if offsetStr != "" {
		n, convErr := strconv.Atoi(offsetStr)
		if convErr != nil || n < 0 {
			return 0, 0, fail(CodeInvalidOffset, "Invalid offset parameter")
		}
		offset = n
	}

	return limit, offset, nil
}
