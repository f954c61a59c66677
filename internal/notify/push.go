package notify

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"chorenet/internal/model"
)

// ErrExpired is returned when a push target's subscription is no longer
// valid (410 Gone).
var ErrExpired = errors.New("push subscription expired")

// Payload is the JSON sent to the push service.
type Payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Tag   string `json:"tag,omitempty"`
}

// PushService sends web push notifications to configured targets.
type PushService struct {
	publicKey  string
	privateKey string
	subscriber string
}

// NewPushService creates a push service with VAPID keys.
func NewPushService(publicKey, privateKey, subscriber string) *PushService {
	return &PushService{
		publicKey:  publicKey,
		privateKey: privateKey,
		subscriber: subscriber,
	}
}

// Send pushes a payload to a target.
func (s *PushService) Send(target model.PushTarget, payload Payload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	resp, err := webpush.SendNotification(data, &webpush.Subscription{
		Endpoint: target.Endpoint,
		Keys: webpush.Keys{
			P256dh: target.P256dhKey,
			Auth:   target.AuthKey,
		},
	}, &webpush.Options{
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		Subscriber:      s.subscriber,
		TTL:             86400,
	})
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusGone {
		return ErrExpired
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("push service returned %d", resp.StatusCode)
	}

	return nil
}
