package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightRecord_JSONFieldNames(t *testing.T) {
	delay := int64(15)
	record := FlightRecord{
		Airline:            "Delta",
		ID:                 1,
		OriginAirport:      "JFK",
		DestinationAirport: "LAX",
		Delay:              &delay,
	}

	b, err := json.Marshal(record)
	require.NoError(t, err)
	assert.JSONEq(t, `{"AIRLINE":"Delta","ID":1,"ORIGIN_AIRPORT":"JFK","DESTINATION_AIRPORT":"LAX","DELAY":15}`, string(b))
}

func TestFlightRecord_AbsentDelayEncodesAsNull(t *testing.T) {
	record := FlightRecord{Airline: "Delta", ID: 2, OriginAirport: "JFK", DestinationAirport: "SFO"}

	b, err := json.Marshal(record)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"DELAY":null`)
}

func TestFlightRecord_IsDelayed(t *testing.T) {
	zero, positive, negative := int64(0), int64(7), int64(-3)

	assert.False(t, FlightRecord{}.IsDelayed())
	assert.False(t, FlightRecord{Delay: &zero}.IsDelayed())
	assert.False(t, FlightRecord{Delay: &negative}.IsDelayed())
	assert.True(t, FlightRecord{Delay: &positive}.IsDelayed())
}
