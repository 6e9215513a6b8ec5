package config

import (
	"os"
	"strings"

	"github.com/segmentio/kafka-go"
)

// brokerAddrs reads KAFKA_BROKERS as a comma-separated list, defaulting to a
// local single-broker setup.
func brokerAddrs() []string {
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		return strings.Split(v, ",")
	}
	return []string{"localhost:9092"}
}

// NewKafkaWriter returns a writer publishing order lifecycle events to the
// given topic.
func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokerAddrs()...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
