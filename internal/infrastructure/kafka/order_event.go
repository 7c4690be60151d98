package publisher

import (
	"encoding/json"

	"github.com/mercadim/marketplace-service/internal/domain"
)

type OrderEvent struct {
	OrderID string  `json:"order_id"`
	StoreID string  `json:"store_id"`
	UserID  string  `json:"user_id"`
	Code    string  `json:"code"`
	Status  string  `json:"status"`
	Total   float64 `json:"total"`
}

// OrderEventPublisher publishes order lifecycle events to a fixed topic.
type OrderEventPublisher struct {
	port  domain.PublisherPort
	topic string
}

func NewOrderEventPublisher(port domain.PublisherPort, topic string) *OrderEventPublisher {
	return &OrderEventPublisher{port: port, topic: topic}
}

func (p *OrderEventPublisher) PublishOrder(event OrderEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.port.Publish(p.topic, domain.Message{Key: []byte(event.OrderID), Value: v})
}
