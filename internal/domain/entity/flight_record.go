// internal/domain/entity/flight_record.go
package entity

// FlightRecord is one row of a flight lookup. Delay is nil when the
// departure delay is absent in the dataset.
type FlightRecord struct {
	Airline            string `json:"AIRLINE"`
	ID                 int64  `json:"ID"`
	OriginAirport      string `json:"ORIGIN_AIRPORT"`
	DestinationAirport string `json:"DESTINATION_AIRPORT"`
	Delay              *int64 `json:"DELAY"`
}

// IsDelayed reports whether the record carries a strictly positive delay
func (r FlightRecord) IsDelayed() bool {
	return r.Delay != nil && *r.Delay > 0
}
