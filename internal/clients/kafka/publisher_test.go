package kafka

import (
	"testing"

	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

func TestNewPublisherValidation(t *testing.T) {
	cases := []struct {
		name    string
		brokers []string
		topic   string
		wantErr bool
	}{
		{name: "no_brokers", topic: "bookings", wantErr: true},
		{name: "no_topic", brokers: []string{"localhost:9092"}, wantErr: true},
		{name: "ok", brokers: []string{"localhost:9092"}, topic: "bookings"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPublisher(logger.Nop(), tc.brokers, tc.topic)
			if (err != nil) != tc.wantErr {
				t.Fatalf("NewPublisher err=%v, wantErr=%v", err, tc.wantErr)
			}
			if p != nil {
				_ = p.Close()
			}
		})
	}
}
