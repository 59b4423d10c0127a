package room_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"guesthouse/infras/otel/mocks"
	roomMocks "guesthouse/internal/domains/room/mocks"
	"guesthouse/internal/domains/room/model/dto"
	"guesthouse/internal/handlers/room"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetRooms(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		setupMock func(svc *roomMocks.MockRoomService)
		wantCode  int
	}{
		{
			name:  "non-AC doubles",
			query: "room_type=Double&ac=false",
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().
					List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req dto.ListRoomsRequest) (dto.GetRoomsResponse, error) {
						require.NotNil(t, req.AC)
						assert.False(t, *req.AC)
						assert.Equal(t, "Double", req.RoomType)

						return dto.GetRoomsResponse{Rooms: []dto.RoomResponse{{RoomNumber: "S01"}}, TotalData: 1}, nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "ac is not a boolean",
			query:    "ac=yes",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown status",
			query:    "status=closed",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := roomMocks.NewMockRoomService(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			handler := room.New(svc, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			request := httptest.NewRequest(http.MethodGet, "/rooms/?"+tt.query, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
