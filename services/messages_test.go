package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationLog_Record(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO notifications").
		WithArgs(pgxmock.AnyArg(), "ORD-1", "twilio", "SM123", "hello").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	id, err := NewNotificationLog(mock).Record(context.Background(), "ORD-1", "twilio", "SM123", "hello")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationLog_RecordError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO notifications").WillReturnError(errors.New("disk full"))

	id, err := NewNotificationLog(mock).Record(context.Background(), "ORD-1", "log", "x", "body")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, id)
}
