package mqtt

import (
	"context"
	"errors"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"people-counting-service/internal/events/core/domain"
	"people-counting-service/internal/events/core/usecase"
	"people-counting-service/internal/telemetry"
)

type StoreCountUseCase interface {
	Execute(ctx context.Context, in usecase.StoreCountInput) (*domain.CountEvent, error)
}

// Subscriber relays messages of one topic into the store usecase.
// Reconnects are left to paho; the topic is subscribed again on every
// (re)connect.
type Subscriber struct {
	opts    Options
	storeUC StoreCountUseCase
	logger  *zap.Logger
	metrics *telemetry.Metrics
	client  mqtt.Client
}

func NewSubscriber(opts Options, storeUC StoreCountUseCase, logger *zap.Logger, metrics *telemetry.Metrics) *Subscriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Subscriber{
		opts:    opts.withDefaults(),
		storeUC: storeUC,
		logger:  logger.Named("mqtt"),
		metrics: metrics,
	}
}

// Connect starts the broker session. With ConnectRetry set it returns once
// the first attempt is under way; otherwise it waits for the outcome.
func (s *Subscriber) Connect() error {
	opts := s.opts.pahoOptions()
	opts.SetOnConnectHandler(s.onConnect)
	opts.SetConnectionLostHandler(s.onConnectionLost)
	opts.SetReconnectingHandler(func(_ mqtt.Client, _ *mqtt.ClientOptions) {
		s.logger.Info("reconnecting to broker", zap.String("broker", s.opts.BrokerURL()))
	})

	s.client = mqtt.NewClient(opts)
	s.logger.Info("connecting to broker",
		zap.String("broker", s.opts.BrokerURL()),
		zap.String("client_id", opts.ClientID),
		zap.String("topic", s.opts.Topic),
	)

	token := s.client.Connect()
	if s.opts.ConnectRetry {
		return nil
	}
	if !token.WaitTimeout(s.opts.ConnectTimeout) {
		return fmt.Errorf("broker connection timed out after %s", s.opts.ConnectTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("broker connection error: %w", err)
	}
	return nil
}

// Close disconnects, allowing 250ms for in-flight work.
func (s *Subscriber) Close() {
	if s.client == nil {
		return
	}
	s.client.Disconnect(250)
	s.setConnected(false)
	s.logger.Info("disconnected from broker")
}

func (s *Subscriber) onConnect(c mqtt.Client) {
	s.setConnected(true)
	s.logger.Info("connected to broker")

	token := c.Subscribe(s.opts.Topic, s.opts.QoS, s.HandleMessage)
	if !token.WaitTimeout(s.opts.ConnectTimeout) {
		s.logger.Error("subscribe timed out", zap.String("topic", s.opts.Topic))
		return
	}
	if err := token.Error(); err != nil {
		s.logger.Error("subscribe error", zap.String("topic", s.opts.Topic), zap.Error(err))
		return
	}
	s.logger.Info("subscribed to topic", zap.String("topic", s.opts.Topic), zap.Uint8("qos", s.opts.QoS))
}

func (s *Subscriber) onConnectionLost(_ mqtt.Client, err error) {
	s.setConnected(false)
	s.logger.Warn("broker connection lost", zap.Error(err))
}

// HandleMessage stores one payload. Every failure is logged and the message
// dropped; nothing is retried.
func (s *Subscriber) HandleMessage(_ mqtt.Client, msg mqtt.Message) {
	if s.metrics != nil {
		s.metrics.MessagesReceived.Inc()
	}

	defer func() {
		if r := recover(); r != nil {
			s.drop(telemetry.ReasonPanic)
			s.logger.Error("panic while handling message",
				zap.String("topic", msg.Topic()),
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.StoreTimeout)
	defer cancel()

	e, err := s.storeUC.Execute(ctx, usecase.StoreCountInput{Payload: msg.Payload()})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPayload) {
			s.drop(telemetry.ReasonInvalidPayload)
			s.logger.Warn("dropping unparsable payload",
				zap.String("topic", msg.Topic()),
				zap.ByteString("payload", msg.Payload()),
				zap.Error(err),
			)
			return
		}
		s.drop(telemetry.ReasonStoreError)
		s.logger.Error("error inserting count event",
			zap.String("topic", msg.Topic()),
			zap.Error(err),
		)
		return
	}

	if s.metrics != nil {
		s.metrics.EventsStored.WithLabelValues(string(e.Direction)).Inc()
		s.metrics.PeopleCounted.WithLabelValues(string(e.Direction)).Add(float64(e.Count))
	}
	s.logger.Debug("count event stored",
		zap.Int64("id", e.ID),
		zap.String("timestamp", e.Timestamp),
		zap.String("direction", string(e.Direction)),
		zap.Int64("count", e.Count),
	)
}

func (s *Subscriber) drop(reason string) {
	if s.metrics != nil {
		s.metrics.MessagesDropped.WithLabelValues(reason).Inc()
	}
}

func (s *Subscriber) setConnected(up bool) {
	if s.metrics == nil {
		return
	}
	if up {
		s.metrics.BrokerConnected.Set(1)
	} else {
		s.metrics.BrokerConnected.Set(0)
	}
}
