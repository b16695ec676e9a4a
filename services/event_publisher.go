package services

import (
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EngagementEvent 一次成功计数的互动事件，投递到 MQ 供下游消费
type EngagementEvent struct {
	Slug      string    `json:"slug"`
	Action    string    `json:"action"`
	VisitorID string    `json:"visitor_id"`
	At        time.Time `json:"at"`
}

// EventPublisher 向 RabbitMQ 发布互动事件，fire-and-forget。
// 未配置 MQ 时 channel 为空，Publish 直接返回
type EventPublisher struct {
	ch    *amqp.Channel
	queue string
}

func NewEventPublisher(ch *amqp.Channel, queue string) *EventPublisher {
	if queue == "" {
		queue = "engagement.events"
	}
	return &EventPublisher{ch: ch, queue: queue}
}

func (p *EventPublisher) Publish(ev EngagementEvent) {
	if p == nil || p.ch == nil {
		return
	}

	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return
	}

	if err := p.ch.Publish("", p.queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	}); err != nil {
		log.Printf("failed to publish engagement event: %v", err)
	}
}
