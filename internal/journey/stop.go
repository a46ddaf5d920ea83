package journey

import "github.com/danpilch/stationboard/internal/api/rtt"

// TrainStop is one calling point of a service, in the shape served to clients.
type TrainStop struct {
	Tiploc                  string `json:"tiploc"`
	Description             string `json:"description"`
	WorkingTime             string `json:"workingTime,omitempty"`
	PublicTime              string `json:"publicTime,omitempty"`
	Platform                string `json:"platform,omitempty"`
	GbttBookedArrival       string `json:"gbttBookedArrival,omitempty"`
	GbttBookedDeparture     string `json:"gbttBookedDeparture,omitempty"`
	RealtimeArrival         string `json:"realtimeArrival,omitempty"`
	RealtimeDeparture       string `json:"realtimeDeparture,omitempty"`
	RealtimeArrivalActual   *bool  `json:"realtimeArrivalActual,omitempty"`
	RealtimeDepartureActual *bool  `json:"realtimeDepartureActual,omitempty"`
}

// TrainDetails is the response for a single service lookup.
type TrainDetails struct {
	ServiceUid string      `json:"serviceUid"`
	Stops      []TrainStop `json:"stops"`
}

// FromServiceLocations projects RTT locations onto TrainStops, keeping journey order.
func FromServiceLocations(locations []rtt.ServiceLocation) []TrainStop {
	stops := make([]TrainStop, len(locations))
	for i, loc := range locations {
		stops[i] = TrainStop{
			Tiploc:                  loc.Tiploc,
			Description:             loc.Description,
			WorkingTime:             loc.WorkingTime,
			PublicTime:              loc.PublicTime,
			Platform:                loc.Platform,
			GbttBookedArrival:       loc.GbttBookedArrival,
			GbttBookedDeparture:     loc.GbttBookedDeparture,
			RealtimeArrival:         loc.RealtimeArrival,
			RealtimeDeparture:       loc.RealtimeDeparture,
			RealtimeArrivalActual:   loc.RealtimeArrivalActual,
			RealtimeDepartureActual: loc.RealtimeDepartureActual,
		}
	}
	return stops
}

// ArrivalTime is the real-time arrival if known, else the booked one.
func (s TrainStop) ArrivalTime() string {
	if s.RealtimeArrival != "" {
		return s.RealtimeArrival
	}
	return s.GbttBookedArrival
}

// DepartureTime is the real-time departure if known, else the booked one.
func (s TrainStop) DepartureTime() string {
	if s.RealtimeDeparture != "" {
		return s.RealtimeDeparture
	}
	return s.GbttBookedDeparture
}
