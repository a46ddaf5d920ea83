package rtt

// StationData represents the response from the RTT location search endpoint.
type StationData struct {
	Location LocationInfo `json:"location"`
	Filter   *Filter      `json:"filter"`
	Services []Service    `json:"services"`
}

// LocationInfo describes the station a search was made for.
type LocationInfo struct {
	Name    string `json:"name"`
	CRS     string `json:"crs"`
	Tiploc  string `json:"tiploc"`
	Country string `json:"country"`
	System  string `json:"system"`
}

// Filter is present when a search was narrowed to services calling at a second station.
type Filter struct {
	Destination *LocationInfo `json:"destination,omitempty"`
	Origin      *LocationInfo `json:"origin,omitempty"`
}

// Service represents a train service calling at the searched station.
type Service struct {
	LocationDetail  LocationDetail `json:"locationDetail"`
	ServiceUid      string         `json:"serviceUid"`
	RunDate         string         `json:"runDate"`
	TrainIdentity   string         `json:"trainIdentity"`
	RunningIdentity string         `json:"runningIdentity"`
	AtocCode        string         `json:"atocCode"`
	AtocName        string         `json:"atocName"`
	ServiceType     string         `json:"serviceType"`
	IsPassenger     bool           `json:"isPassenger"`
}

// LocationDetail contains timing and platform information for the searched station.
// Real-time fields are only populated once RTT has activated real-time tracking.
type LocationDetail struct {
	RealtimeActivated       bool          `json:"realtimeActivated"`
	Tiploc                  string        `json:"tiploc"`
	CRS                     string        `json:"crs"`
	Description             string        `json:"description"`
	GbttBookedArrival       string        `json:"gbttBookedArrival,omitempty"`
	GbttBookedDeparture     string        `json:"gbttBookedDeparture,omitempty"`
	Origin                  []LegLocation `json:"origin"`
	Destination             []LegLocation `json:"destination"`
	IsCall                  bool          `json:"isCall"`
	IsPublicCall            bool          `json:"isPublicCall"`
	RealtimeArrival         string        `json:"realtimeArrival,omitempty"`
	RealtimeArrivalActual   *bool         `json:"realtimeArrivalActual,omitempty"`
	RealtimeDeparture       string        `json:"realtimeDeparture,omitempty"`
	RealtimeDepartureActual *bool         `json:"realtimeDepartureActual,omitempty"`
	Platform                string        `json:"platform,omitempty"`
	PlatformConfirmed       *bool         `json:"platformConfirmed,omitempty"`
	PlatformChanged         *bool         `json:"platformChanged,omitempty"`
	DisplayAs               string        `json:"displayAs"`
	Associations            []Association `json:"associations,omitempty"`
}

// LegLocation is an origin or destination of a service.
type LegLocation struct {
	Tiploc      string `json:"tiploc"`
	Description string `json:"description"`
	WorkingTime string `json:"workingTime"`
	PublicTime  string `json:"publicTime"`
}

// Association links a service to one it divides from or joins.
type Association struct {
	Type              string `json:"type"`
	AssociatedUid     string `json:"associatedUid"`
	AssociatedRunDate string `json:"associatedRunDate"`
}

// ServiceDetailResponse represents the detailed service response.
type ServiceDetailResponse struct {
	ServiceUid  string            `json:"serviceUid"`
	RunDate     string            `json:"runDate"`
	ServiceType string            `json:"serviceType"`
	AtocCode    string            `json:"atocCode"`
	AtocName    string            `json:"atocName"`
	Origin      []LegLocation     `json:"origin"`
	Destination []LegLocation     `json:"destination"`
	Locations   []ServiceLocation `json:"locations"`
}

// ServiceLocation represents a location in the service journey.
type ServiceLocation struct {
	RealtimeActivated       bool   `json:"realtimeActivated"`
	Tiploc                  string `json:"tiploc"`
	CRS                     string `json:"crs"`
	Description             string `json:"description"`
	WorkingTime             string `json:"workingTime"`
	PublicTime              string `json:"publicTime"`
	GbttBookedArrival       string `json:"gbttBookedArrival"`
	GbttBookedDeparture     string `json:"gbttBookedDeparture"`
	RealtimeArrival         string `json:"realtimeArrival"`
	RealtimeDeparture       string `json:"realtimeDeparture"`
	RealtimeArrivalActual   *bool  `json:"realtimeArrivalActual"`
	RealtimeDepartureActual *bool  `json:"realtimeDepartureActual"`
	Platform                string `json:"platform"`
	PlatformConfirmed       bool   `json:"platformConfirmed"`
	PlatformChanged         bool   `json:"platformChanged"`
	DisplayAs               string `json:"displayAs"`
	CancelReasonCode        string `json:"cancelReasonCode"`
	CancelReasonShortText   string `json:"cancelReasonShortText"`
}
