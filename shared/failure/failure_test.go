package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"guesthouse/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "bad request from error", err: failure.BadRequest(errors.New("check_out must be after check_in")), wantCode: http.StatusBadRequest, wantMsg: "check_out must be after check_in"},
		{name: "bad request from string", err: failure.BadRequestFromString("request must be multipart/form-data"), wantCode: http.StatusBadRequest, wantMsg: "request must be multipart/form-data"},
		{name: "validation field", err: failure.ValidationField("room_number", "is not a recognised field"), wantCode: http.StatusBadRequest, wantMsg: "room_number is not a recognised field"},
		{name: "unauthorized", err: failure.Unauthorized("invalid email or password"), wantCode: http.StatusUnauthorized, wantMsg: "invalid email or password"},
		{name: "forbidden", err: failure.Forbidden("account is inactive"), wantCode: http.StatusForbidden, wantMsg: "account is inactive"},
		{name: "not found", err: failure.NotFound("booking not found"), wantCode: http.StatusNotFound, wantMsg: "booking not found"},
		{name: "conflict", err: failure.Conflict("room is already booked for an overlapping stay"), wantCode: http.StatusConflict, wantMsg: "room is already booked for an overlapping stay"},
		{name: "shared forbidden", err: failure.ForbiddenError, wantCode: http.StatusForbidden, wantMsg: "You don't have the required permissions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.EqualError(t, tt.err, tt.wantMsg)
			assert.True(t, failure.Is(tt.err, tt.wantCode))
		})
	}
}

func TestBadRequest_Nil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestGetCode(t *testing.T) {
	t.Run("plain error is internal", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("connection refused")))
	})

	t.Run("wrapped failure keeps its code", func(t *testing.T) {
		err := fmt.Errorf("failed to approve booking: %w", failure.Conflict("booking already processed"))

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.True(t, failure.Is(err, http.StatusConflict))
		assert.False(t, failure.Is(err, http.StatusNotFound))
	})

	t.Run("plain error is no failure", func(t *testing.T) {
		assert.False(t, failure.Is(errors.New("boom"), http.StatusInternalServerError))
	})
}
