package consumer

import (
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/zurilabsafrica/booked-brightly/rental"
)

type Worker struct {
	workerID  int
	channel   *amqp.Channel
	queueName string
	tracker   *PickTracker
}

func NewWorker(workerID int, conn *amqp.Connection, queueName string, tracker *PickTracker) (*Worker, error) {
	// Each worker gets its own channel.
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel for worker %d: %w", workerID, err)
	}

	// One message at a time per worker.
	if err := ch.Qos(1, 0, false); err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to set QoS for worker %d: %w", workerID, err)
	}

	return &Worker{
		workerID:  workerID,
		channel:   ch,
		queueName: queueName,
		tracker:   tracker,
	}, nil
}

// Start consumes orders until the channel closes.
func (w *Worker) Start(wg *sync.WaitGroup) {
	defer wg.Done()
	defer w.channel.Close()

	msgs, err := w.channel.Consume(
		w.queueName,
		fmt.Sprintf("picker-%d", w.workerID), // consumer tag
		false,                                // manual acknowledgements
		false,                                // exclusive
		false,                                // no-local
		false,                                // no-wait
		nil,
	)
	if err != nil {
		log.Error().Err(err).Int("worker", w.workerID).Msg("failed to register consumer")
		return
	}

	log.Info().Int("worker", w.workerID).Msg("worker waiting for orders")

	for msg := range msgs {
		w.processMessage(msg)
	}

	log.Info().Int("worker", w.workerID).Msg("worker stopped")
}

func (w *Worker) processMessage(msg amqp.Delivery) {
	var order rental.Order
	if err := json.Unmarshal(msg.Body, &order); err != nil {
		log.Error().Err(err).Int("worker", w.workerID).Msg("failed to unmarshal order")
		// Malformed payload; reject without requeueing.
		msg.Nack(false, false)
		return
	}

	bookIDs := make([]string, len(order.Items))
	for i, line := range order.Items {
		bookIDs[i] = line.BookID
	}
	w.tracker.RecordOrder(order.OrderID, bookIDs, order.Total)

	if err := msg.Ack(false); err != nil {
		log.Error().Err(err).Int("worker", w.workerID).Msg("failed to acknowledge message")
		return
	}
	log.Info().Int("worker", w.workerID).Str("order", order.OrderID).Msg("order acknowledged")
}

// Stop closes the worker's channel, ending its consume loop.
func (w *Worker) Stop() {
	if w.channel != nil {
		w.channel.Close()
	}
}
