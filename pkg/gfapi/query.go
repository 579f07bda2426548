package gfapi

import (
	"net/url"
	"strconv"
	"strings"
)

// Query holds filter parameters plus the pagination cursor for list
// endpoints. The cursor has three states: unset (the first page is fetched
// from the filter fields), holding a next-page URL (used verbatim as the
// request target), and terminal (the list call short-circuits with
// ErrNoMoreItems and no request is sent).
//
// A Query is owned by the caller and advanced in place by each list call;
// it is not safe for concurrent use.
type Query struct {
	Limit   int
	Filters map[string][]string

	cursorSet bool
	cursor    string
}

// NewQuery creates an empty query.
func NewQuery() *Query {
	return &Query{
		Filters: make(map[string][]string),
	}
}

// WithLimit sets the page size.
func (q *Query) WithLimit(limit int) *Query {
	q.Limit = limit

	return q
}

// WithFilter appends values for a filter field.
func (q *Query) WithFilter(key string, values ...string) *Query {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// ToValues converts the filter fields to URL query values. The cursor is not
// included: a continuation is a complete URL, not a parameter.
func (q *Query) ToValues() url.Values {
	values := url.Values{}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	for key, fieldValues := range q.Filters {
		values.Set(key, strings.Join(fieldValues, ","))
	}

	return values
}

// NextPage returns the continuation URL and whether one is held. It reports
// false both before the first call and after the traversal has terminated.
func (q *Query) NextPage() (string, bool) {
	if !q.cursorSet || q.cursor == "" {
		return "", false
	}

	return q.cursor, true
}

// SetNextPage writes the continuation cursor. An empty string marks the
// traversal as exhausted; the next list call returns ErrNoMoreItems without
// touching the network. List calls invoke this after every successful page.
func (q *Query) SetNextPage(next string) {
	q.cursorSet = true
	q.cursor = next
}

// Exhausted reports whether the cursor has been explicitly terminated.
func (q *Query) Exhausted() bool {
	return q.cursorSet && q.cursor == ""
}

// Reset clears the cursor so the same filters can be walked again.
func (q *Query) Reset() {
	q.cursorSet = false
	q.cursor = ""
}

// InventoryQuery addresses a Steam inventory and carries its start_assetid
// continuation cursor. The cursor follows the same three-state protocol as
// Query: unset, holding an asset ID, or terminal.
type InventoryQuery struct {
	SteamID   string
	AppID     string
	ContextID string
	Count     int

	startSet bool
	start    string
}

// ToValues converts the inventory query to URL parameters.
func (q *InventoryQuery) ToValues() url.Values {
	values := url.Values{}
	values.Set("l", "english")

	if q.Count > 0 {
		values.Set("count", strconv.Itoa(q.Count))
	}

	if q.startSet && q.start != "" {
		values.Set("start_assetid", q.start)
	}

	return values
}

// StartAssetID returns the continuation asset ID and whether one is held.
func (q *InventoryQuery) StartAssetID() (string, bool) {
	if !q.startSet || q.start == "" {
		return "", false
	}

	return q.start, true
}

// SetStartAssetID writes the continuation cursor. An empty string terminates
// the traversal.
func (q *InventoryQuery) SetStartAssetID(assetID string) {
	q.startSet = true
	q.start = assetID
}

// Exhausted reports whether the cursor has been explicitly terminated.
func (q *InventoryQuery) Exhausted() bool {
	return q.startSet && q.start == ""
}

// Reset clears the cursor so the same inventory can be walked again.
func (q *InventoryQuery) Reset() {
	q.startSet = false
	q.start = ""
}
