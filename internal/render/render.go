// Package render draws station board data as terminal tables.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/danpilch/stationboard/internal/api/rtt"
	"github.com/danpilch/stationboard/internal/journey"
	"github.com/danpilch/stationboard/internal/stations"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// StationServices writes the station heading and its services.
func StationServices(w io.Writer, data *rtt.StationData) error {
	if _, err := fmt.Fprintf(w, "%s [%s]\n\n", data.Location.Name, data.Location.CRS); err != nil {
		return err
	}

	if len(data.Services) == 0 {
		_, err := fmt.Fprintln(w, "No services available for this station.")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "SERVICE\tPROVIDER\tDESTINATION\tORIGIN\tDEPARTURE TIME\tARRIVAL TIME")
	for _, svc := range data.Services {
		origin := firstLeg(svc.LocationDetail.Origin)
		destination := firstLeg(svc.LocationDetail.Destination)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			svc.ServiceUid,
			orDash(svc.AtocName),
			orDash(destination.Description),
			orDash(origin.Description),
			journey.FormatTime(origin.PublicTime),
			journey.FormatTime(destination.PublicTime),
		)
	}
	return tw.Flush()
}

// TrainDetails writes one row per calling point with its derived status.
func TrainDetails(w io.Writer, details *journey.TrainDetails) error {
	if _, err := fmt.Fprintf(w, "Train Service Details: %s\n\n", details.ServiceUid); err != nil {
		return err
	}

	if len(details.Stops) == 0 {
		_, err := fmt.Fprintln(w, "No train details found.")
		return err
	}

	statuses := journey.Statuses(details.Stops)

	tw := newTable(w)
	fmt.Fprintln(tw, "STATUS\tSTATION\tPLATFORM\tARRIVAL\tDEPARTURE")
	for i, stop := range details.Stops {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			statusMarker(statuses[i]),
			stop.Description,
			orDash(stop.Platform),
			journey.FormatTime(stop.ArrivalTime()),
			journey.FormatTime(stop.DepartureTime()),
		)
	}
	return tw.Flush()
}

// Suggestions writes matching stations, one per line.
func Suggestions(w io.Writer, suggestions []stations.Suggestion) error {
	if len(suggestions) == 0 {
		_, err := fmt.Fprintln(w, "No matching stations.")
		return err
	}

	tw := newTable(w)
	for _, s := range suggestions {
		fmt.Fprintf(tw, "%s\t%s\n", s.Code, s.Name)
	}
	return tw.Flush()
}

func statusMarker(s journey.Status) string {
	switch s {
	case journey.Passed:
		return "● Passed"
	case journey.AtStation:
		return "◉ At Station"
	case journey.EnRoute:
		return "○ En Route"
	default:
		return "│"
	}
}

func firstLeg(legs []rtt.LegLocation) rtt.LegLocation {
	if len(legs) == 0 {
		return rtt.LegLocation{}
	}
	return legs[0]
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
