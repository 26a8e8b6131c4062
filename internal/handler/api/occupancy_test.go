//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"fittingroom/internal/domain/occupancy"
	"fittingroom/internal/handler/api"
	resdto "fittingroom/internal/handler/dto/response"
	"fittingroom/internal/pkg/errs"
	"fittingroom/internal/usecase/queries"
	"fittingroom/tests/common/httptest"
	queriesmock "fittingroom/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OccupancyHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockOccupancyQueries
	handler     *api.OccupancyHandler
}

func (s *OccupancyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockOccupancyQueries(s.mockCtrl)
	s.handler = api.NewOccupancyHandler(s.mockQueries)

	s.router.GET("/rooms/occupancy", s.handler.Occupancy)
	s.router.GET("/rooms/summary", s.handler.Summary)
}

func (s *OccupancyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOccupancyHandlerSuite(t *testing.T) {
	suite.Run(t, new(OccupancyHandlerTestSuite))
}

func (s *OccupancyHandlerTestSuite) TestOccupancy() {
	rooms := []queries.RoomOccupancyView{
		{RoomID: uuid.New(), Number: "1", Occupied: true, RemainingSeconds: 120, QueueLength: 2},
		{RoomID: uuid.New(), Number: "2"},
	}

	s.Run("success: lists every room", func() {
		s.mockQueries.EXPECT().RoomOccupancy(gomock.Any()).Return(rooms, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/occupancy", nil, "")

		var body resdto.RoomsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(rooms, body.Rooms)
	})

	s.Run("error: store failure asks the client to retry", func() {
		s.mockQueries.EXPECT().RoomOccupancy(gomock.Any()).
			Return(nil, errs.Mark(errs.New("timeout"), queries.ErrStoreUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/occupancy", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "please retry")
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Retry-After": "2"})
	})
}

func (s *OccupancyHandlerTestSuite) TestSummary() {
	s.Run("success: returns the load level", func() {
		s.mockQueries.EXPECT().Summary(gomock.Any()).Return(&queries.SummaryView{
			CurrentUsers:       5,
			QueueLength:        3,
			AverageWaitMinutes: 8,
			Status:             occupancy.LevelHigh,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/summary", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"currentUsers":5,"queueLength":3,"averageWaitMinutes":8,"status":"High"}`, rec.Body.String())
	})
}
