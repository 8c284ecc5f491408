package api

import (
	"net/url"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitkit/opendata-go/pkg/transport"
)

func TestParamsFromEvent(t *testing.T) {
	request := events.APIGatewayProxyRequest{
		QueryStringParameters: map[string]string{
			"from":  "Bern",
			"via[]": "Aarau",
		},
		MultiValueQueryStringParameters: map[string][]string{
			"via[]": {"Olten", "Aarau"},
		},
	}

	params := ParamsFromEvent(request)
	assert.Equal(t, "Bern", params.Get("from"))
	assert.Equal(t, []string{"Olten", "Aarau"}, params["via[]"])
}

func TestParseLocationQuery(t *testing.T) {
	tests := []struct {
		name    string
		params  url.Values
		want    transport.LocationQuery
		wantErr bool
	}{
		{
			name:   "text query with type",
			params: url.Values{"query": {"Bern"}, "type": {"station"}},
			want:   transport.LocationQuery{Query: "Bern", Type: transport.LocationStation},
		},
		{
			name:   "coordinates with modes",
			params: url.Values{"x": {"7.44"}, "y": {"46.95"}, "transportations[]": {"bus", "tramway_underground"}},
			want: transport.LocationQuery{
				Coordinates:     &transport.Coordinates{X: 7.44, Y: 46.95},
				Transportations: []transport.TransportMode{transport.ModeBus, transport.ModeTram},
			},
		},
		{name: "x without y", params: url.Values{"x": {"7.44"}}, wantErr: true},
		{name: "y without x", params: url.Values{"y": {"7.44"}}, wantErr: true},
		{name: "bad x", params: url.Values{"x": {"east"}, "y": {"1"}}, wantErr: true},
		{name: "bad type", params: url.Values{"query": {"Bern"}, "type": {"city"}}, wantErr: true},
		{name: "bad mode", params: url.Values{"x": {"1"}, "y": {"2"}, "transportations[]": {"rocket"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocationQuery(tt.params)
			if tt.wantErr {
				assert.ErrorIs(t, err, transport.ErrInvalidParameters)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseConnectionQuery(t *testing.T) {
	params := url.Values{
		"from":              {"Lausanne"},
		"to":                {"Genève"},
		"via":               {"Morges"},
		"date":              {"2024-03-01"},
		"time":              {"08:15"},
		"isArrivalTime":     {"1"},
		"transportations[]": {"ec_ic"},
		"limit":             {"4"},
		"page":              {"2"},
		"direct":            {"0"},
		"sleeper":           {"false"},
		"couchette":         {"true"},
		"bike":              {"1"},
		"accessibility":     {"independent_boarding"},
	}

	got, err := ParseConnectionQuery(params)
	require.NoError(t, err)
	assert.Equal(t, transport.ConnectionQuery{
		From:            "Lausanne",
		To:              "Genève",
		Via:             []string{"Morges"},
		Date:            "2024-03-01",
		Time:            "08:15",
		IsArrivalTime:   transport.Bool(true),
		Transportations: []transport.TransportMode{transport.ModeIntercity},
		Limit:           transport.Int(4),
		Page:            transport.Int(2),
		Direct:          transport.Bool(false),
		Sleeper:         transport.Bool(false),
		Couchette:       transport.Bool(true),
		Bike:            transport.Bool(true),
		Accessibility:   transport.AccessibilityIndependent,
	}, got)
}

func TestParseConnectionQuery_Errors(t *testing.T) {
	for _, params := range []url.Values{
		{"from": {"A"}, "to": {"B"}, "limit": {"three"}},
		{"from": {"A"}, "to": {"B"}, "page": {"1.5"}},
		{"from": {"A"}, "to": {"B"}, "direct": {"yes"}},
		{"from": {"A"}, "to": {"B"}, "accessibility": {"none"}},
	} {
		_, err := ParseConnectionQuery(params)
		assert.ErrorIs(t, err, transport.ErrInvalidParameters, params.Encode())
	}
}

func TestParseStationboardQuery(t *testing.T) {
	got, err := ParseStationboardQuery(url.Values{
		"id":                {"8507000"},
		"limit":             {"10"},
		"transportations[]": {"bus", "s_sn_r"},
		"datetime":          {"2024-03-01 10:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, transport.StationboardQuery{
		ID:              "8507000",
		Limit:           transport.Int(10),
		Transportations: []transport.TransportMode{transport.ModeBus, transport.ModeSBahn},
		Datetime:        "2024-03-01 10:00",
	}, got)

	_, err = ParseStationboardQuery(url.Values{"station": {"Bern"}, "limit": {"many"}})
	assert.ErrorIs(t, err, transport.ErrInvalidParameters)
}
