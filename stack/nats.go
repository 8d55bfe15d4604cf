package stack

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/learnhub/course-backend/settings"
	natsPackage "github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

var lock = &sync.Mutex{}
var natsClient *NatsClient

var settingsData = settings.GetSettings()

type NatsClient struct {
	conn   *natsPackage.Conn
	logger *zap.Logger
}

func newConnection() *natsPackage.Conn {
	if settingsData.NATS_HOST == "" {
		return nil
	}
	conn, err := natsPackage.Connect(
		fmt.Sprintf("nats://%s", settingsData.NATS_HOST),
		natsPackage.RetryOnFailedConnect(true),
		natsPackage.MaxReconnects(-1),
	)
	if err != nil {
		return nil
	}
	return conn
}

// Events are tagged with a uuid so sibling services can de-duplicate
func formatEvent(data interface{}) ([]byte, error) {
	id, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}
	event := make(map[string]interface{})
	event["id"] = id.String()
	if data != nil {
		event["data"] = data
	}
	jsonMarshal, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return jsonMarshal, nil
}

// Publish emits a lifecycle event. Failures are logged, never
// propagated - events must not fail the request that produced them.
func (nats *NatsClient) Publish(subject string, data interface{}) {
	if nats == nil || nats.conn == nil {
		return
	}
	event, err := formatEvent(data)
	if err != nil {
		nats.logger.Warn("event marshal failed", zap.String("subject", subject), zap.Error(err))
		return
	}
	if err := nats.conn.Publish(subject, event); err != nil {
		nats.logger.Warn("event publish failed", zap.String("subject", subject), zap.Error(err))
	}
}

func NewNats(logger *zap.Logger) *NatsClient {
	if natsClient == nil {
		lock.Lock()
		defer lock.Unlock()
		natsClient = &NatsClient{
			conn:   newConnection(),
			logger: logger,
		}
	}
	return natsClient
}
