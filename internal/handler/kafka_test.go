package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/good-food/order-service/internal/entities"
	mocks "github.com/good-food/order-service/internal/handler/mocks"
	"github.com/good-food/order-service/internal/service"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// fakeReader feeds a fixed set of messages and then reports EOF, which is how
// a closed reader ends the consume loop.
type fakeReader struct {
	messages  []kafka.Message
	committed []kafka.Message
	commitErr error
	closed    bool
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(f.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := f.messages[0]
	f.messages = f.messages[1:]
	return m, nil
}

func (f *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = append(f.committed, msgs...)
	return nil
}

func (f *fakeReader) Close() error {
	f.closed = true
	return nil
}

func newTestKafkaHandler(reader messageReader, svc OrderCommands) *kafkaHandler {
	return &kafkaHandler{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		reader: reader,
		svc:    svc,
	}
}

func TestKafkaHandler_Consume(t *testing.T) {
	testCases := []struct {
		name         string
		messages     []kafka.Message
		mockBehavior func(svc *mocks.MockOrderCommands)
		wantCommits  int
	}{
		{
			name: "create event dispatched",
			messages: []kafka.Message{
				{Value: []byte(`{"action":"CREATE","customer_id":"customer-1","status":"CREATED","meals":[{"description":"Pad Thai","quantity":2,"type":"ASIAN"}]}`)},
			},
			mockBehavior: func(svc *mocks.MockOrderCommands) {
				svc.EXPECT().
					Create(mock.Anything, mock.MatchedBy(func(req service.CreateOrderRequest) bool {
						return req.CustomerID == "customer-1" &&
							req.Status == entities.StatusCreated &&
							len(req.Meals) == 1 &&
							req.Meals[0].Quantity == 2 &&
							req.Meals[0].Type == entities.MealAsian
					})).
					Return(entities.Order{ID: "order-1"}, nil).Once()
			},
			wantCommits: 1,
		},
		{
			name: "update event dispatched",
			messages: []kafka.Message{
				{Value: []byte(`{"action":"UPDATE","id":"order-1","status":"PAID"}`)},
			},
			mockBehavior: func(svc *mocks.MockOrderCommands) {
				svc.EXPECT().
					Update(mock.Anything, service.UpdateOrderRequest{
						ID:     "order-1",
						Status: entities.StatusPaid,
					}).
					Return(entities.Order{ID: "order-1"}, nil).Once()
			},
			wantCommits: 1,
		},
		{
			name: "delete event dispatched",
			messages: []kafka.Message{
				{Value: []byte(`{"action":"DELETE","id":"order-1"}`)},
			},
			mockBehavior: func(svc *mocks.MockOrderCommands) {
				svc.EXPECT().Delete(mock.Anything, "order-1").Return(nil).Once()
			},
			wantCommits: 1,
		},
		{
			name: "missing action is dropped but committed",
			messages: []kafka.Message{
				{Value: []byte(`{"id":"order-1","status":"CREATED"}`)},
			},
			wantCommits: 1,
		},
		{
			name: "unknown action is dropped but committed",
			messages: []kafka.Message{
				{Value: []byte(`{"action":"UPSERT","id":"order-1"}`)},
			},
			wantCommits: 1,
		},
		{
			name: "malformed payload is committed",
			messages: []kafka.Message{
				{Value: []byte(`not json`)},
			},
			wantCommits: 1,
		},
		{
			name: "failing message does not stop the loop",
			messages: []kafka.Message{
				{Value: []byte(`{"action":"DELETE","id":"missing"}`)},
				{Value: []byte(`{"action":"DELETE","id":"order-1"}`)},
			},
			mockBehavior: func(svc *mocks.MockOrderCommands) {
				svc.EXPECT().Delete(mock.Anything, "missing").
					Return(entities.ErrOrderNotFound).Once()
				svc.EXPECT().Delete(mock.Anything, "order-1").Return(nil).Once()
			},
			wantCommits: 2,
		},
		{
			name: "unknown status forwarded as sentinel",
			messages: []kafka.Message{
				{Value: []byte(`{"action":"CREATE","customer_id":"customer-1","status":"BOGUS","meals":[{"description":"Pad Thai","quantity":1,"type":"ASIAN"}]}`)},
			},
			mockBehavior: func(svc *mocks.MockOrderCommands) {
				svc.EXPECT().
					Create(mock.Anything, mock.MatchedBy(func(req service.CreateOrderRequest) bool {
						return req.Status == entities.StatusError
					})).
					Return(entities.Order{}, entities.NewValidationError("Invalid order status")).Once()
			},
			wantCommits: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderCommands(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			reader := &fakeReader{messages: tc.messages}
			h := newTestKafkaHandler(reader, svc)

			h.Consume(context.Background())

			assert.Len(t, reader.committed, tc.wantCommits)
		})
	}
}

func TestKafkaHandler_CommitFailureKeepsConsuming(t *testing.T) {
	svc := mocks.NewMockOrderCommands(t)
	svc.EXPECT().Delete(mock.Anything, "order-1").Return(nil).Twice()

	reader := &fakeReader{
		messages: []kafka.Message{
			{Value: []byte(`{"action":"DELETE","id":"order-1"}`)},
			{Value: []byte(`{"action":"DELETE","id":"order-1"}`)},
		},
		commitErr: errors.New("commit failed"),
	}
	h := newTestKafkaHandler(reader, svc)

	h.Consume(context.Background())

	assert.Empty(t, reader.committed)
}

func TestKafkaHandler_Close(t *testing.T) {
	reader := &fakeReader{}
	h := newTestKafkaHandler(reader, mocks.NewMockOrderCommands(t))

	assert.NoError(t, h.Close())
	assert.True(t, reader.closed)
}
