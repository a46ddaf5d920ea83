package notify

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gregdel/pushover"
	"github.com/sirupsen/logrus"
)

const (
	PriorityNormal = 0
	PriorityHigh   = 1
)

// serviceLink is the public RealTimeTrains page for a service.
const serviceLink = "https://www.realtimetrains.co.uk/service/gb-nr:%s"

// sender is the part of the Pushover client used to deliver messages.
type sender interface {
	SendMessage(message *pushover.Message, recipient *pushover.Recipient) (*pushover.Response, error)
}

// Notifier sends stop events for a watched service as Pushover messages.
type Notifier struct {
	app       sender
	recipient *pushover.Recipient
	logger    *logrus.Logger
	now       func() time.Time
}

func NewNotifier(token, userKey string, logger *logrus.Logger) *Notifier {
	return &Notifier{
		app:       pushover.New(token),
		recipient: pushover.NewRecipient(userKey),
		logger:    logger,
		now:       time.Now,
	}
}

// stopEvent is one notification about a service at a station.
type stopEvent struct {
	title        string
	serviceUid   string
	text         string
	delayMinutes int
}

func (e stopEvent) message(at time.Time) *pushover.Message {
	msg := pushover.NewMessageWithTitle(e.text+lateness(e.delayMinutes), e.title)
	msg.Priority = priorityFor(e.delayMinutes)
	msg.URL = fmt.Sprintf(serviceLink, url.PathEscape(e.serviceUid))
	msg.URLTitle = "Service " + e.serviceUid
	msg.Timestamp = at.Unix()
	return msg
}

func (n *Notifier) send(e stopEvent) error {
	msg := e.message(n.now())

	resp, err := n.app.SendMessage(msg, n.recipient)
	if err != nil {
		return fmt.Errorf("sending pushover notification: %w", err)
	}

	n.logger.WithFields(logrus.Fields{
		"title":      e.title,
		"service":    e.serviceUid,
		"priority":   msg.Priority,
		"status":     resp.Status,
		"request_id": resp.ID,
	}).Debug("notification sent")

	return nil
}

func (n *Notifier) SendTrainAtStation(serviceUid, station, arrivalTime string, delayMinutes int) error {
	return n.send(stopEvent{
		title:        "Train At Station",
		serviceUid:   serviceUid,
		text:         fmt.Sprintf("Train %s is at %s (arrived %s)", serviceUid, station, arrivalTime),
		delayMinutes: delayMinutes,
	})
}

func (n *Notifier) SendTrainDeparted(serviceUid, station, departureTime string, delayMinutes int) error {
	return n.send(stopEvent{
		title:        "Train Departed",
		serviceUid:   serviceUid,
		text:         fmt.Sprintf("Train %s has left %s at %s", serviceUid, station, departureTime),
		delayMinutes: delayMinutes,
	})
}

func (n *Notifier) SendTrainArrived(serviceUid, destination, arrivalTime string, delayMinutes int) error {
	return n.send(stopEvent{
		title:        "Train Arrival",
		serviceUid:   serviceUid,
		text:         fmt.Sprintf("Train %s has arrived at %s at %s", serviceUid, destination, arrivalTime),
		delayMinutes: delayMinutes,
	})
}

func lateness(delayMinutes int) string {
	if delayMinutes <= 0 {
		return ""
	}
	return fmt.Sprintf(", %d minutes late", delayMinutes)
}

func priorityFor(delayMinutes int) int {
	if delayMinutes > 0 {
		return PriorityHigh
	}
	return PriorityNormal
}
