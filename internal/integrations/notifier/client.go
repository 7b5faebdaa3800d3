// Package notifier публикует события жизненного цикла бронирований в NATS.
// Публикация выполняется строго после коммита транзакции и является
// fire-and-forget: ошибка доставки логируется и никогда не влияет на
// результат операции бронирования или отмены.
package notifier

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/adesombergh/yeety-book-test-sub000/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события бронирований в NATS
type Publisher struct {
	conn   *nats.Conn
	prefix string
	log    Logger
}

// New подключается к NATS и создает publisher.
// prefix используется как префикс subject: <prefix>.reservation.created
func New(url, prefix string, log Logger) (*Publisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("reservation-service"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	return &Publisher{
		conn:   conn,
		prefix: prefix,
		log:    log,
	}, nil
}

// ReservationCreated публикует событие о создании бронирования
func (p *Publisher) ReservationCreated(res *domain.Reservation, cfg *domain.RestaurantConfig) error {
	return p.publish(KindReservationCreated, res, cfg)
}

// ReservationCancelled публикует событие об отмене бронирования
func (p *Publisher) ReservationCancelled(res *domain.Reservation, cfg *domain.RestaurantConfig) error {
	return p.publish(KindReservationCancelled, res, cfg)
}

func (p *Publisher) publish(kind string, res *domain.Reservation, cfg *domain.RestaurantConfig) error {
	event := newEvent(kind, res, cfg, time.Now().UTC())

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	subject := fmt.Sprintf("%s.%s", p.prefix, kind)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("%w: subject=%s: %v", ErrPublish, subject, err)
	}

	p.log.Info("notifier: published %s for reservation id=%d restaurant=%s", kind, res.ID, cfg.Slug)
	return nil
}

// Close дожидается отправки буферизованных сообщений и закрывает соединение
func (p *Publisher) Close() {
	if p.conn == nil {
		return
	}
	if err := p.conn.Drain(); err != nil {
		p.log.Warn("notifier: drain failed: %v", err)
	}
}

// Noop заглушка, используемая когда публикация событий выключена в конфигурации
type Noop struct{}

// ReservationCreated ничего не делает
func (Noop) ReservationCreated(*domain.Reservation, *domain.RestaurantConfig) error { return nil }

// ReservationCancelled ничего не делает
func (Noop) ReservationCancelled(*domain.Reservation, *domain.RestaurantConfig) error { return nil }
