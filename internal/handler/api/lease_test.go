//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"fittingroom/internal/domain/lease"
	"fittingroom/internal/domain/user"
	"fittingroom/internal/handler/api"
	resdto "fittingroom/internal/handler/dto/response"
	"fittingroom/internal/pkg/errs"
	"fittingroom/internal/usecase/commands"
	"fittingroom/tests/common/builder"
	"fittingroom/tests/common/httptest"
	"fittingroom/tests/common/testutil"
	commandsmock "fittingroom/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LeaseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLeaseCommands
	handler      *api.LeaseHandler
	authUserID   uuid.UUID
}

func (s *LeaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLeaseCommands(s.mockCtrl)
	s.handler = api.NewLeaseHandler(s.mockCommands)
	s.authUserID = uuid.New()

	// Mock authentication middleware for testing
	optionalAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.authUserID)
			c.Set("user_role", user.RoleOperator)
		}
		c.Next()
	}

	s.router.POST("/leases", optionalAuth, s.handler.CreateLease)
	s.router.POST("/leases/:id/release", optionalAuth, s.handler.ReleaseLease)
}

func (s *LeaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLeaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(LeaseHandlerTestSuite))
}

func leaseRequest(roomID uuid.UUID) map[string]any {
	return map[string]any{
		"roomId":        roomID.String(),
		"holderContact": "+15550001111",
	}
}

// ================================================================================
// TestCreateLease
// ================================================================================

func (s *LeaseHandlerTestSuite) TestCreateLease() {
	url := "/leases"
	started := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	view := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
		b.StartedAt = started
	}).BuildView()

	s.Run("success: returns 200 with the granted lease", func() {
		s.mockCommands.EXPECT().
			CreateLease(gomock.Any(), commands.CreateLeaseParams{
				RoomID:        view.RoomID,
				HolderContact: "+15550001111",
			}).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, leaseRequest(view.RoomID), "")

		var body resdto.LeaseEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Lease)
		s.Equal(view.ID, body.Lease.ID)
		s.Equal("active", body.Lease.Status)
		s.True(started.Add(lease.DefaultDuration).Equal(body.Lease.ExpiresAt))
	})

	s.Run("success: authenticated identity becomes the holder user", func() {
		s.mockCommands.EXPECT().
			CreateLease(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p commands.CreateLeaseParams) (*commands.LeaseView, error) {
				s.Require().NotNil(p.HolderUserID)
				s.Equal(s.authUserID, *p.HolderUserID)
				return view, nil
			}).Times(1)

		req := testutil.DtoMap(s.T(), leaseRequest(view.RoomID), testutil.Field("holderUserId", uuid.NewString()))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 carries occupiedUntil of the blocking lease", func() {
		s.mockCommands.EXPECT().
			CreateLease(gomock.Any(), gomock.Any()).
			Return(nil, &commands.ConflictError{Current: *view}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, leaseRequest(view.RoomID), "")

		s.Equal(http.StatusConflict, rec.Code)
		var body resdto.ConflictResponse
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Equal("Room is occupied", body.Error)
		s.True(view.ExpiresAt.Equal(body.OccupiedUntil))
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: roomId (required)", mutate: testutil.Field("roomId", nil)},
			{name: "roomId is not a uuid", mutate: testutil.Field("roomId", "room-3")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				req := testutil.DtoMap(s.T(), leaseRequest(view.RoomID), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: usecase failures map to statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "invalid holder", err: errs.Wrap(commands.ErrInvalidInput, "holder"), expectCode: http.StatusBadRequest, expectMsg: "Invalid holder"},
			{name: "unknown room", err: commands.ErrInvalidRoom, expectCode: http.StatusNotFound, expectMsg: "Room not found"},
			{name: "store unavailable", err: errs.Mark(errs.New("connection refused"), commands.ErrStoreUnavailable), expectCode: http.StatusInternalServerError, expectMsg: "please retry"},
			{name: "deadline exceeded", err: errs.Wrap(context.DeadlineExceeded, "lock room"), expectCode: http.StatusInternalServerError, expectMsg: "please retry"},
			{name: "unexpected", err: errs.New("boom"), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateLease(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, leaseRequest(view.RoomID), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
				if tc.expectMsg == "please retry" {
					httptest.AssertHeaders(s.T(), rec, map[string]string{"Retry-After": "2"})
				}
			})
		}
	})
}

// ================================================================================
// TestReleaseLease
// ================================================================================

func (s *LeaseHandlerTestSuite) TestReleaseLease() {
	view := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
		b.Status = lease.StatusCompleted
	}).BuildView()
	url := "/leases/" + view.ID.String() + "/release"

	s.Run("success: returns the completed lease", func() {
		s.mockCommands.EXPECT().ReleaseLease(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.LeaseEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("completed", body.Lease.Status)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/leases/nope/release", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lease ID")
	})

	s.Run("error: 404 when lease is unknown", func() {
		s.mockCommands.EXPECT().ReleaseLease(gomock.Any(), view.ID).Return(nil, commands.ErrLeaseNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Lease not found")
	})

	s.Run("error: 409 when lease already ended", func() {
		s.mockCommands.EXPECT().ReleaseLease(gomock.Any(), view.ID).Return(nil, commands.ErrLeaseNotActive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not active")
	})
}
