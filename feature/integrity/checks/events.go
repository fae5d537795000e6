package checks

import (
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// BrokerConn is the part of kafka.Conn the events check needs.
type BrokerConn interface {
	ReadPartitions(topics ...string) ([]kafka.Partition, error)
	Close() error
}

// DialFunc opens a connection to one broker.
type DialFunc func(ctx context.Context, address string) (BrokerConn, error)

// DialKafka connects with kafka.DialContext over TCP.
func DialKafka(ctx context.Context, address string) (BrokerConn, error) {
	conn, err := kafka.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// CheckEvents dials the brokers in order and looks up topic on the first one
// that answers. An unreachable cluster is an error, a missing topic a warning
// since brokers usually create topics on first write.
func CheckEvents(ctx context.Context, dial DialFunc, brokers []string, topic string) Result {
	const name = "events"

	if len(brokers) == 0 {
		return failed(name, errors.New("no kafka brokers configured"))
	}

	var errs []error
	for _, addr := range brokers {
		conn, err := dial(ctx, addr)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", addr, err))
			continue
		}
		partitions, err := conn.ReadPartitions(topic)
		_ = conn.Close()
		if err != nil || len(partitions) == 0 {
			detail := fmt.Sprintf("topic %s not found", topic)
			if err != nil {
				detail = fmt.Sprintf("%s: %v", detail, err)
			}
			return Result{Name: name, Status: StatusWarn, Detail: detail, Missing: []string{topic}}
		}
		return Result{Name: name, Status: StatusOK, Detail: fmt.Sprintf("%d partitions", len(partitions))}
	}
	return failed(name, errors.Join(errs...))
}
