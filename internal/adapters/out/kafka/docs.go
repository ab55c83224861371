// Package kafka publishes order events to a Kafka topic.
//
// Events are Avro-encoded against OrderEventSchema and keyed by order id, so
// every event of one order lands on the same partition and consumers see them
// in the order they happened.
package kafka
