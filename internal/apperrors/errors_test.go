package apperrors

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestFromStoreClassifiesConnectionLoss(t *testing.T) {
	for _, err := range []error{
		errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
		errors.New("read tcp: connection reset by peer"),
		errors.New("write: broken pipe"),
		errors.New("driver: bad connection"),
	} {
		appErr := FromStore(err, "Error fetching movies")
		assert.Equal(t, Unavailable, appErr.Kind)
		assert.Equal(t, MsgStoreConnErr, appErr.Message)
		assert.ErrorIs(t, appErr, err)
	}
}

func TestFromStoreFallsBackToInternal(t *testing.T) {
	cause := errors.New("syntax error at or near SELECT")

	appErr := FromStore(cause, "Error fetching movies")
	assert.Equal(t, Internal, appErr.Kind)
	assert.Equal(t, "Error fetching movies", appErr.Message)
	assert.ErrorIs(t, appErr, cause)
}

func TestStoreDown(t *testing.T) {
	appErr := StoreDown()
	assert.Equal(t, Unavailable, appErr.Kind)
	assert.Equal(t, MsgStoreDown, appErr.Message)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("duplicate key")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Movie not found", New(NotFound, "Movie not found").Error())

	wrapped := Wrap(Internal, "Error creating booking", errors.New("boom"))
	assert.Equal(t, "Error creating booking: boom", wrapped.Error())
}
