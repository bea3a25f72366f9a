package amqp

import (
	"testing"
	"time"
)

func TestTransactionEventMessageRoundTrip(t *testing.T) {
	msg := NewTransactionEventMessage(42, ActionUpdated)

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}

	got, err := TransactionEventMessageFromJSON(body)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}

	if got.ID != 42 || got.Action != ActionUpdated {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Timestamp.IsZero() {
		t.Errorf("timestamp not preserved")
	}
	if time.Since(got.Timestamp) > time.Minute {
		t.Errorf("timestamp not recent: %v", got.Timestamp)
	}
}

func TestTransactionEventMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := TransactionEventMessageFromJSON([]byte("not json")); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}
