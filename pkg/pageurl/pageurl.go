// Package pageurl rewrites pagination query parameters on repository URLs.
//
// Galaxy-style APIs paginate listing endpoints with a "page" query parameter.
// GetPageURL rewrites a URL so that parameter is set to a specific page while
// every other component of the URL, including the relative order and
// multi-values of the remaining query parameters, is left untouched.
package pageurl

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/galaxycheck/pkg/verbose"
)

// pageParam is the query parameter carrying the page number.
const pageParam = "page"

// GetPageURL returns rawURL with its "page" query parameter set to page.
//
// It performs the following operations:
//   - Step 1: Parses rawURL into its components
//   - Step 2: Decodes the query string into an order-preserving parameter map
//   - Step 3: Overwrites the "page" parameter with the single value of page
//   - Step 4: Re-encodes the query with parameters in their original order,
//     emitting one name=value pair per value of a multi-valued parameter
//
// Malformed URLs are echoed back unchanged on a best-effort basis; this
// function never fails.
//
// Parameters:
//   - rawURL: The URL whose query string should be rewritten
//   - page: The page number to set (callers typically start at 1)
//
// Returns:
//   - string: The rewritten URL with all non-query components unchanged
func GetPageURL(rawURL string, page int) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		verbose.Infof("Page URL rewrite: cannot parse %q, echoing back: %v", rawURL, err)
		return rawURL
	}

	query := parseQuery(parsed.RawQuery)
	query.Set(pageParam, []string{strconv.Itoa(page)})
	parsed.RawQuery = encodeQuery(query)

	return parsed.String()
}

// parseQuery decodes a raw query string into an order-preserving map from
// parameter name to its list of values.
//
// Pairs with an empty value are dropped, matching the behavior of galaxy
// clients that treat blank parameters as absent. Undecodable names or values
// are kept in their raw form rather than discarded.
//
// Parameters:
//   - rawQuery: The query string without the leading "?"
//
// Returns:
//   - *orderedmap.OrderedMap: Parameter names mapped to []string values,
//     iteration order matching first appearance in the query
func parseQuery(rawQuery string) *orderedmap.OrderedMap {
	query := orderedmap.New()

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}

		name, value, _ := strings.Cut(pair, "=")
		if value == "" {
			continue
		}

		name = unescape(name)
		value = unescape(value)

		values := []string{}
		if existing, ok := query.Get(name); ok {
			values = existing.([]string)
		}
		query.Set(name, append(values, value))
	}

	return query
}

// encodeQuery re-encodes an order-preserving parameter map into a query string.
//
// Each value of a multi-valued parameter is emitted as a separate name=value
// pair, preserving list order.
//
// Parameters:
//   - query: Parameter names mapped to []string values
//
// Returns:
//   - string: The encoded query string without the leading "?"
func encodeQuery(query *orderedmap.OrderedMap) string {
	var sb strings.Builder

	for _, name := range query.Keys() {
		raw, _ := query.Get(name)
		for _, value := range raw.([]string) {
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(url.QueryEscape(name))
			sb.WriteByte('=')
			sb.WriteString(url.QueryEscape(value))
		}
	}

	return sb.String()
}

// unescape decodes percent-escapes in a query component, returning the input
// unchanged when it cannot be decoded.
//
// Parameters:
//   - s: The query component to decode
//
// Returns:
//   - string: The decoded component, or the raw input if undecodable
func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
