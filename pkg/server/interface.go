/*
Package server implements msgpack IPC for the word search service.

The server reads a stream of msgpack-encoded requests from stdin and
writes one msgpack response per request to stdout. Messages are
id-tagged so hosts can pipeline requests, and they use short field
keys to keep frames small.

# IPC

A search request carries the raw query text and an optional result
cap:

	{"id": "req_001", "cmd": "search", "q": "-нзф +ки _а___ 2к", "l": 25}

The response holds the ranked matches with zipf scores, the total
match count before capping, and per-predicate filter counters:

	{"id": "req_001", "m": [{"w": "кошка", "r": 1, "z": 5.1}], "c": 1, "n": 1, ...}

When the query's constraints contradict each other the response
carries the conflict messages instead of matches; no filtering is
attempted:

	{"id": "req_002", "x": ["pattern requires [к], but these letters are excluded"], ...}

Other commands: "prefix" lists lexicon words under a prefix (debug
aid), "info" reports lexicon stats, "health" answers ok. Malformed or
unknown requests produce an error response, never a crash.
*/
package server

// Request is the envelope for every incoming message. Cmd selects the
// operation; Query and Limit apply to search and prefix requests.
type Request struct {
	ID    string `msgpack:"id"`
	Cmd   string `msgpack:"cmd"`
	Query string `msgpack:"q,omitempty"`
	Limit int    `msgpack:"l,omitempty"`
}

// Match - a single ranked search result
type Match struct {
	Word string  `msgpack:"w"`
	Rank uint16  `msgpack:"r"`
	Zipf float64 `msgpack:"z,omitempty"`
}

// FilterStats - per-predicate rejection counters
type FilterStats struct {
	Excluded    int `msgpack:"ex"`
	Required    int `msgpack:"rq"`
	Pattern     int `msgpack:"pt"`
	Antipattern int `msgpack:"ap"`
}

// SearchResponse - search result. Count is the number of returned
// matches, Total the number before the limit cap. A non-empty
// Conflicts list means the query was rejected before filtering.
type SearchResponse struct {
	ID        string      `msgpack:"id"`
	Matches   []Match     `msgpack:"m"`
	Count     int         `msgpack:"c"`
	Total     int         `msgpack:"n"`
	Conflicts []string    `msgpack:"x,omitempty"`
	Stats     FilterStats `msgpack:"f"`
	TimeTaken int64       `msgpack:"t"`
}

// PrefixResponse - words under a prefix
type PrefixResponse struct {
	ID    string   `msgpack:"id"`
	Words []string `msgpack:"w"`
	Count int      `msgpack:"c"`
}

// InfoResponse - lexicon statistics
type InfoResponse struct {
	ID         string `msgpack:"id"`
	TotalWords int    `msgpack:"words"`
	FreqCount  int    `msgpack:"scored"`
	HasFreq    bool   `msgpack:"has_freq"`
}

// StatusResponse - ready/health signal
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id,omitempty"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
