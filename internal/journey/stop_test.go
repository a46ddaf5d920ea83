package journey

import (
	"testing"

	"github.com/danpilch/stationboard/internal/api/rtt"
)

func TestFromServiceLocations(t *testing.T) {
	locations := []rtt.ServiceLocation{
		{
			Tiploc:                  "WATRLOO",
			CRS:                     "WAT",
			Description:             "London Waterloo",
			WorkingTime:             "103000",
			PublicTime:              "1030",
			Platform:                "1",
			GbttBookedDeparture:     "1030",
			RealtimeDeparture:       "1032",
			RealtimeDepartureActual: flag(true),
			DisplayAs:               "ORIGIN",
		},
		{
			Tiploc:                "BOURNMTH",
			Description:           "Bournemouth",
			GbttBookedArrival:     "1145",
			GbttBookedDeparture:   "1147",
			RealtimeArrival:       "1149",
			RealtimeArrivalActual: flag(false),
			CancelReasonCode:      "XY",
		},
		{
			Tiploc:      "WEYMTH",
			Description: "Weymouth",
		},
	}

	stops := FromServiceLocations(locations)
	if len(stops) != len(locations) {
		t.Fatalf("expected %d stops, got %d", len(locations), len(stops))
	}

	for i, loc := range locations {
		s := stops[i]
		if s.Tiploc != loc.Tiploc || s.Description != loc.Description {
			t.Errorf("stop %d: identity changed: %+v", i, s)
		}
		if s.GbttBookedArrival != loc.GbttBookedArrival || s.GbttBookedDeparture != loc.GbttBookedDeparture {
			t.Errorf("stop %d: booked times changed: %+v", i, s)
		}
		if s.RealtimeArrival != loc.RealtimeArrival || s.RealtimeDeparture != loc.RealtimeDeparture {
			t.Errorf("stop %d: real-time times changed: %+v", i, s)
		}
		if s.RealtimeArrivalActual != loc.RealtimeArrivalActual {
			t.Errorf("stop %d: arrival actual changed", i)
		}
		if s.RealtimeDepartureActual != loc.RealtimeDepartureActual {
			t.Errorf("stop %d: departure actual changed", i)
		}
	}
}

func TestStopTimes(t *testing.T) {
	s := TrainStop{GbttBookedArrival: "1145", GbttBookedDeparture: "1147", RealtimeDeparture: "1150"}
	if got := s.ArrivalTime(); got != "1145" {
		t.Errorf("ArrivalTime() = %q, want booked time", got)
	}
	if got := s.DepartureTime(); got != "1150" {
		t.Errorf("DepartureTime() = %q, want real-time", got)
	}
}
