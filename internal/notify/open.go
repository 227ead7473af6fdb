package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/vendormax/apiserver/config"
)

// OpenBackend constructs the broker backend named by cfg.Backend.
func OpenBackend(ctx context.Context, cfg config.NotifyConfig) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "rabbitmq":
		return NewRabbitMQClient(cfg.RabbitMQ)
	case "pubsub":
		return NewPubSubClient(ctx, cfg.PubSub)
	default:
		return nil, fmt.Errorf("unknown notify backend %q", cfg.Backend)
	}
}
