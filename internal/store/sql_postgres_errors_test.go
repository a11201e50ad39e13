package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil error", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "server starting up", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "duplicate username", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "broken foreign key", err: pgError(pgerrcode.ForeignKeyViolation), want: NonRetryable},
		{name: "wrapped pg error", err: fmt.Errorf("saving: %w", pgError(pgerrcode.ConnectionDoesNotExist)), want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Classify(tt.err); got != tt.want {
				t.Errorf("expected classification %v, got %v", tt.want, got)
			}
		})
	}
}
