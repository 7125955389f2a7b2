// Package events fans server-side events out to subscribed observers. A Hub
// delivers messages to the SSE clients of one process; a RedisBus carries
// them between processes.
package events

import (
	"context"
	"fmt"

	"backoffice/pkg/domain"

	"github.com/go-faster/jx"
)

const (
	// AdminChannel is the channel administrators subscribe to.
	AdminChannel = "admin"
	// EventNewOrder announces a newly created order.
	EventNewOrder = "new_order"
)

// isoMillis renders timestamps in UTC with millisecond precision,
// e.g. 2026-01-02T03:04:05.000Z.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Message is a named event published on a channel. Data holds the JSON
// encoded payload.
type Message struct {
	Channel string
	Event   string
	Data    []byte
}

// Publisher delivers messages to the subscribers of their channel. Delivery
// is best-effort.
//
//go:generate mockgen -package mockevents -source=message.go -destination=mock/mockevents.go Publisher
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// NewOrderMessage builds the admin-channel message announcing ev.
func NewOrderMessage(ev domain.NewOrderEvent) Message {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.Obj(func(e *jx.Encoder) {
		e.Field("orderId", func(e *jx.Encoder) { e.Int64(int64(ev.OrderID)) })
		e.Field("customerId", func(e *jx.Encoder) {
			if ev.CustomerID == nil {
				e.Null()

				return
			}
			e.Int64(int64(*ev.CustomerID))
		})
		e.Field("total", func(e *jx.Encoder) { e.Str(ev.Total) })
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(ev.CreatedAt.UTC().Format(isoMillis)) })
	})

	return Message{
		Channel: AdminChannel,
		Event:   EventNewOrder,
		Data:    append([]byte(nil), e.Bytes()...),
	}
}

// MarshalMessage encodes msg as {"channel","event","data"} for transports
// that carry whole messages.
func MarshalMessage(msg Message) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.Obj(func(e *jx.Encoder) {
		e.Field("channel", func(e *jx.Encoder) { e.Str(msg.Channel) })
		e.Field("event", func(e *jx.Encoder) { e.Str(msg.Event) })
		e.Field("data", func(e *jx.Encoder) {
			if len(msg.Data) == 0 {
				e.Null()

				return
			}
			e.Raw(msg.Data)
		})
	})

	return append([]byte(nil), e.Bytes()...)
}

// UnmarshalMessage decodes the output of MarshalMessage.
func UnmarshalMessage(data []byte) (Message, error) {
	var msg Message
	if err := jx.DecodeBytes(data).ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "channel":
			msg.Channel, err = d.Str()
		case "event":
			msg.Event, err = d.Str()
		case "data":
			var raw jx.Raw
			raw, err = d.Raw()
			if err == nil && raw.Type() != jx.Null {
				msg.Data = append([]byte(nil), raw...)
			}
		default:
			err = d.Skip()
		}

		return err
	}); err != nil {
		return Message{}, fmt.Errorf("could not decode event message: %w", err)
	}
	if msg.Channel == "" || msg.Event == "" {
		return Message{}, fmt.Errorf("event message without channel or event")
	}

	return msg, nil
}
