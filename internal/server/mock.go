package server

import (
	"strings"

	"github.com/danpilch/stationboard/internal/api/rtt"
	"github.com/danpilch/stationboard/internal/journey"
)

// mockStationData is served for every station when live lookups are off.
// The location code echoes the requested one.
func mockStationData(code string) rtt.StationData {
	return rtt.StationData{
		Location: rtt.LocationInfo{
			Name:    "Bournemouth",
			CRS:     strings.ToUpper(code),
			Tiploc:  "BOURNMTH",
			Country: "England",
			System:  "National Rail",
		},
		Services: []rtt.Service{
			{
				ServiceUid:      "SWR123",
				RunDate:         "2025-03-05",
				TrainIdentity:   "1B23",
				RunningIdentity: "1B23",
				AtocCode:        "SW",
				AtocName:        "South Western Railway",
				ServiceType:     "train",
				IsPassenger:     true,
				LocationDetail: rtt.LocationDetail{
					Tiploc:              "BOURNMTH",
					CRS:                 "BMH",
					Description:         "Bournemouth",
					GbttBookedArrival:   "1145",
					GbttBookedDeparture: "1147",
					Origin: []rtt.LegLocation{
						{Tiploc: "WATRLOO", Description: "London Waterloo", WorkingTime: "103000", PublicTime: "1030"},
					},
					Destination: []rtt.LegLocation{
						{Tiploc: "WEYMTH", Description: "Weymouth", WorkingTime: "123000", PublicTime: "1230"},
					},
					IsCall:       true,
					IsPublicCall: true,
					Platform:     "2",
					DisplayAs:    "CALL",
				},
			},
			{
				ServiceUid:      "GWR456",
				RunDate:         "2025-03-05",
				TrainIdentity:   "2F45",
				RunningIdentity: "2F45",
				AtocCode:        "GW",
				AtocName:        "Great Western Railway",
				ServiceType:     "train",
				IsPassenger:     true,
				LocationDetail: rtt.LocationDetail{
					Tiploc:              "BOURNMTH",
					CRS:                 "BMH",
					Description:         "Bournemouth",
					GbttBookedDeparture: "1210",
					Origin: []rtt.LegLocation{
						{Tiploc: "BOURNMTH", Description: "Bournemouth", WorkingTime: "121000", PublicTime: "1210"},
					},
					Destination: []rtt.LegLocation{
						{Tiploc: "BRSTLTM", Description: "Bristol Temple Meads", WorkingTime: "140500", PublicTime: "1405"},
					},
					IsCall:       true,
					IsPublicCall: true,
					Platform:     "3",
					DisplayAs:    "ORIGIN",
				},
			},
		},
	}
}

// mockTrainDetails is a fixed Waterloo to Weymouth itinerary.
func mockTrainDetails(uid string) journey.TrainDetails {
	return journey.TrainDetails{
		ServiceUid: uid,
		Stops: []journey.TrainStop{
			{Tiploc: "WATRLOO", Description: "London Waterloo", WorkingTime: "103000", PublicTime: "1030", Platform: "1"},
			{Tiploc: "BOURNMTH", Description: "Bournemouth", WorkingTime: "114500", PublicTime: "1145", Platform: "2"},
			{Tiploc: "WEYMTH", Description: "Weymouth", WorkingTime: "123000", PublicTime: "1230", Platform: "1"},
		},
	}
}
