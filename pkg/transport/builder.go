package transport

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

type param struct {
	key   string
	value string
}

// queryBuilder keeps parameters in insertion order. The remote service may be
// order-sensitive for array parameters, so url.Values (sorted) is not used.
type queryBuilder struct {
	resource Resource
	params   []param
}

func newQueryBuilder(resource Resource) *queryBuilder {
	return &queryBuilder{resource: resource}
}

func (b *queryBuilder) add(key, value string) {
	b.params = append(b.params, param{key: key, value: value})
}

func (b *queryBuilder) addString(key, value string) {
	if value != "" {
		b.add(key, value)
	}
}

func (b *queryBuilder) addBool(key string, value *bool) {
	if value == nil {
		return
	}
	if *value {
		b.add(key, "1")
	} else {
		b.add(key, "0")
	}
}

func (b *queryBuilder) addInt(key string, value *int) {
	if value != nil {
		b.add(key, strconv.Itoa(*value))
	}
}

func (b *queryBuilder) addFloat(key string, value float64) {
	b.add(key, strconv.FormatFloat(value, 'f', -1, 64))
}

func (b *queryBuilder) addModes(modes []TransportMode) {
	for _, mode := range modes {
		b.add("transportations[]", mode.WireName())
	}
}

// build appends the encoded query to baseURL+resource, "?" before the first
// parameter and "&" before every other one.
func (b *queryBuilder) build(baseURL string) (string, error) {
	var sb strings.Builder
	sb.WriteString(baseURL)
	sb.WriteString(string(b.resource))

	for i, p := range b.params {
		if !utf8.ValidString(p.value) {
			return "", NewURLError(b.resource, fmt.Errorf("parameter %s is not valid UTF-8", p.key))
		}
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}

	rawURL := sb.String()
	if _, err := url.Parse(rawURL); err != nil {
		return "", NewURLError(b.resource, err)
	}
	return rawURL, nil
}

// LocationsURL validates q and returns the request URL without sending it
func (c *Client) LocationsURL(q LocationQuery) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}

	b := newQueryBuilder(ResourceLocations)
	if q.Query != "" {
		b.add("query", q.Query)
		b.addString("type", string(q.Type))
	} else if q.Coordinates != nil {
		b.addFloat("x", q.Coordinates.X)
		b.addFloat("y", q.Coordinates.Y)
		b.addModes(q.Transportations)
	}
	return b.build(c.baseURL)
}

// ConnectionsURL validates q and returns the request URL without sending it
func (c *Client) ConnectionsURL(q ConnectionQuery) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}

	b := newQueryBuilder(ResourceConnections)
	b.add("from", q.From)
	b.add("to", q.To)
	if len(q.Via) == 1 {
		b.add("via", q.Via[0])
	} else {
		for _, via := range q.Via {
			b.add("via[]", via)
		}
	}
	b.addString("date", q.Date)
	b.addString("time", q.Time)
	b.addBool("isArrivalTime", q.IsArrivalTime)
	b.addModes(q.Transportations)
	b.addInt("limit", q.Limit)
	b.addInt("page", q.Page)
	b.addBool("direct", q.Direct)
	b.addBool("sleeper", q.Sleeper)
	b.addBool("couchette", q.Couchette)
	b.addBool("bike", q.Bike)
	b.addString("accessibility", string(q.Accessibility))
	return b.build(c.baseURL)
}

// StationboardURL validates q and returns the request URL without sending it
func (c *Client) StationboardURL(q StationboardQuery) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}

	b := newQueryBuilder(ResourceStationboard)
	b.addString("station", q.Station)
	b.addString("id", q.ID)
	b.addInt("limit", q.Limit)
	b.addModes(q.Transportations)
	b.addString("datetime", q.Datetime)
	return b.build(c.baseURL)
}
