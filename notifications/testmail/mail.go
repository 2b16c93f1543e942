// Package testmail provides an in-memory NotificationService used by tests
// to assert on what would have been sent without touching the network.
package testmail

import (
	"context"
	"fmt"
	"sync"

	"github.com/withamcommunity/wmc-api/notifications"
)

// Config controls the behavior of the test double.
type Config struct {
	// MessageID is returned from every successful send.
	MessageID string
	// FailWith, when non-nil, makes every send fail with this error.
	FailWith error
}

// Mail records every notification handed to it.
type Mail struct {
	mu     sync.Mutex
	config *Config
	sent   []notifications.Notification
}

func (tm *Mail) Init(rawConfig any) error {
	config, ok := rawConfig.(*Config)
	if !ok {
		return fmt.Errorf("invalid testmail configuration")
	}
	tm.config = config
	return nil
}

func (tm *Mail) SendNotification(_ context.Context, n *notifications.Notification) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if tm.config.FailWith != nil {
		return "", tm.config.FailWith
	}
	tm.sent = append(tm.sent, *n)
	return tm.config.MessageID, nil
}

// Sent returns a copy of every notification delivered so far.
func (tm *Mail) Sent() []notifications.Notification {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	out := make([]notifications.Notification, len(tm.sent))
	copy(out, tm.sent)
	return out
}
