package monitor

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/danpilch/stationboard/internal/journey"
)

// DetailsFetcher loads the current state of a service.
type DetailsFetcher interface {
	FetchTrainDetails(ctx context.Context, uid string) (*journey.TrainDetails, error)
}

// Notifier delivers stop events to the user.
type Notifier interface {
	SendTrainAtStation(serviceUid, station, arrivalTime string, delayMinutes int) error
	SendTrainDeparted(serviceUid, station, departureTime string, delayMinutes int) error
	SendTrainArrived(serviceUid, destination, arrivalTime string, delayMinutes int) error
}

type TrainMonitor struct {
	board    DetailsFetcher
	notifier Notifier
	logger   *logrus.Logger

	mu       sync.Mutex
	seen     map[string]bool
	progress map[string]int
}

func NewTrainMonitor(board DetailsFetcher, notifier Notifier, logger *logrus.Logger) *TrainMonitor {
	return &TrainMonitor{
		board:    board,
		notifier: notifier,
		logger:   logger,
		seen:     make(map[string]bool),
		progress: make(map[string]int),
	}
}

// Check fetches the service and notifies every stop that has moved on to
// At Station or Passed since the previous check. The first check of a service
// only records where the train is. finished is true once the train has reached
// its final stop.
func (m *TrainMonitor) Check(ctx context.Context, uid string) (finished bool, err error) {
	details, err := m.board.FetchTrainDetails(ctx, uid)
	if err != nil {
		return false, fmt.Errorf("fetching train details: %w", err)
	}
	if len(details.Stops) == 0 {
		m.logger.WithField("service", uid).Warn("service has no stops")
		return false, nil
	}

	statuses := journey.Statuses(details.Stops)
	last := len(details.Stops) - 1

	m.mu.Lock()
	firstCheck := !m.seen[uid]
	m.seen[uid] = true
	var changed []int
	for i, status := range statuses {
		key := stopKey(uid, i, details.Stops[i])
		rank := progressRank(status)
		if rank <= m.progress[key] {
			continue
		}
		if firstCheck {
			m.progress[key] = rank
		} else {
			changed = append(changed, i)
		}
	}
	m.mu.Unlock()

	finished = progressRank(statuses[last]) > 0

	if firstCheck {
		m.logger.WithFields(logrus.Fields{
			"service":  uid,
			"stops":    len(details.Stops),
			"finished": finished,
		}).Info("watching service")
		return finished, nil
	}

	// A stop is marked notified only once its message is delivered.
	for _, i := range changed {
		if err := m.notify(uid, details.Stops[i], statuses[i], i == last); err != nil {
			return false, err
		}
		m.mu.Lock()
		m.progress[stopKey(uid, i, details.Stops[i])] = progressRank(statuses[i])
		m.mu.Unlock()
	}

	return finished, nil
}

func (m *TrainMonitor) notify(uid string, stop journey.TrainStop, status journey.Status, final bool) error {
	log := m.logger.WithFields(logrus.Fields{
		"service": uid,
		"station": stop.Description,
		"status":  status.String(),
	})

	switch {
	case final:
		delay := journey.DelayMinutes(stop.GbttBookedArrival, stop.RealtimeArrival)
		log.WithField("delay_minutes", delay).Info("train arrived")
		return m.notifier.SendTrainArrived(uid, stop.Description, journey.FormatTime(stop.ArrivalTime()), delay)

	case status == journey.AtStation:
		delay := journey.DelayMinutes(stop.GbttBookedArrival, stop.RealtimeArrival)
		log.WithField("delay_minutes", delay).Info("train at station")
		return m.notifier.SendTrainAtStation(uid, stop.Description, journey.FormatTime(stop.ArrivalTime()), delay)

	default:
		delay := journey.DelayMinutes(stop.GbttBookedDeparture, stop.RealtimeDeparture)
		log.WithField("delay_minutes", delay).Info("train departed")
		return m.notifier.SendTrainDeparted(uid, stop.Description, journey.FormatTime(stop.DepartureTime()), delay)
	}
}

// progressRank orders statuses by how far the train has got with a stop.
func progressRank(s journey.Status) int {
	switch s {
	case journey.AtStation:
		return 1
	case journey.Passed:
		return 2
	default:
		return 0
	}
}

func stopKey(uid string, index int, stop journey.TrainStop) string {
	return fmt.Sprintf("%s/%d/%s", uid, index, stop.Tiploc)
}
