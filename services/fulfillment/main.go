package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zurilabsafrica/booked-brightly/services/fulfillment/config"
	"github.com/zurilabsafrica/booked-brightly/services/fulfillment/consumer"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg := config.LoadConfig()
	log.Info().
		Int("workers", cfg.NumWorkers).
		Str("queue", cfg.RabbitMQQueue).
		Msg("starting fulfillment consumer")

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer conn.Close()

	// Make sure the queue exists before the workers attach.
	ch, err := conn.Channel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open a channel")
	}
	_, err = ch.QueueDeclare(
		cfg.RabbitMQQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to declare queue")
	}
	ch.Close()

	tracker := consumer.NewPickTracker()

	var wg sync.WaitGroup
	for i := 0; i < cfg.NumWorkers; i++ {
		worker, err := consumer.NewWorker(i+1, conn, cfg.RabbitMQQueue, tracker)
		if err != nil {
			log.Fatal().Err(err).Int("worker", i+1).Msg("failed to create worker")
		}
		wg.Add(1)
		go worker.Start(&wg)
	}
	log.Info().Int("workers", cfg.NumWorkers).Msg("all workers started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Info().Msg("shutdown signal received, stopping workers")

	// Closing the connection closes every channel and ends the workers.
	conn.Close()
	wg.Wait()

	tracker.PrintSummary()
	log.Info().Msg("fulfillment consumer shut down")
}
