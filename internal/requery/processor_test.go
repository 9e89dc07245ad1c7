package requery

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/requery/mocks"
	"github.com/fsdevblog/jadanpay/internal/service"
	"github.com/fsdevblog/jadanpay/internal/vtu"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor   *Processor
	mockService *mocks.MockServicer
	ctrl        *gomock.Controller
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockServicer(s.ctrl)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	s.processor = New(s.mockService, logger).SetWorkers(2)
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func (s *ProcessorTestSuite) TestProcess_NoPending() {
	s.mockService.EXPECT().
		PendingPurchases(gomock.Any(), s.processor.limitPerIteration).
		Return(nil, nil)

	err := s.processor.process(s.T().Context())
	s.ErrorIs(err, ErrNoPending)
}

func (s *ProcessorTestSuite) TestProcess_ServiceError() {
	s.mockService.EXPECT().
		PendingPurchases(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db is down"))

	err := s.processor.process(s.T().Context())
	s.Error(err)
	s.NotErrorIs(err, ErrNoPending)
}

func (s *ProcessorTestSuite) TestProcess_Results() {
	pending := []domain.Transaction{
		{ID: 1, Reference: "REF-000000001"},
		{ID: 2, Reference: "REF-000000002"},
		{ID: 3, Reference: "REF-000000003"},
	}
	s.mockService.EXPECT().PendingPurchases(gomock.Any(), gomock.Any()).Return(pending, nil)

	s.mockService.EXPECT().Requery(gomock.Any(), "REF-000000001").
		Return(&vtu.Result{Status: vtu.StatusSuccess, Reference: "V-1"}, nil)
	s.mockService.EXPECT().Requery(gomock.Any(), "REF-000000002").
		Return(nil, vtu.NewStatusCodeError(http.StatusBadGateway, ""))
	// После 429 запрос повторяется.
	gomock.InOrder(
		s.mockService.EXPECT().Requery(gomock.Any(), "REF-000000003").
			Return(nil, vtu.NewTooManyRequestError(10*time.Millisecond)),
		s.mockService.EXPECT().Requery(gomock.Any(), "REF-000000003").
			Return(&vtu.Result{Status: vtu.StatusPending}, nil),
	)

	s.mockService.EXPECT().ResolvePending(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, results []service.RequeryResult) {
			s.Require().Len(results, 3)
			byID := make(map[int64]service.RequeryResult, len(results))
			for _, r := range results {
				byID[r.TransactionID] = r
			}
			s.NoError(byID[1].Error)
			s.Equal(vtu.StatusSuccess, byID[1].Status)
			s.Equal("V-1", byID[1].VendorReference)

			s.Error(byID[2].Error) //nolint:testifylint

			s.NoError(byID[3].Error)
			s.Equal(vtu.StatusPending, byID[3].Status)
		}).Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	s.NoError(s.processor.process(ctx))
}

func (s *ProcessorTestSuite) TestRun_StopsOnCancel() {
	s.mockService.EXPECT().PendingPurchases(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	s.processor.SetInterval(10 * time.Millisecond)

	ctx, cancel := context.WithTimeout(s.T().Context(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.processor.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("processor did not stop")
	}
}
