//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"hotel-booking-client/internal/pkg/session"
	"hotel-booking-client/internal/usecase"
	"hotel-booking-client/internal/usecase/readmodel"
	"hotel-booking-client/tests/common/builder"
	usecasemock "hotel-booking-client/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EditFlowTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockReservationUseCase
	flow     *usecase.EditFlow
	sess     session.Session
	row      *readmodel.ReservationRM
}

func (s *EditFlowTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockReservationUseCase(s.mockCtrl)
	s.flow = usecase.NewEditFlow(s.mockUC)
	s.sess = session.Session{Token: "admin-token", UserID: "admin-1", IsAdmin: true}
	s.row = builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.SpecialRequirements = []string{"false", "true", "false", "false"}
		b.AdditionalRequests = "quiet floor"
	}).BuildRM()
}

func (s *EditFlowTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *EditFlowTestSuite) SetupSubTest() {
	s.SetupTest()
}

func TestEditFlowSuite(t *testing.T) {
	suite.Run(t, new(EditFlowTestSuite))
}

func (s *EditFlowTestSuite) TestBegin() {
	s.Equal(usecase.StateIdle, s.flow.State())

	s.flow.Begin(s.row)

	s.Equal(usecase.StateEditing, s.flow.State())
	s.Equal("res-1", s.flow.TargetID())

	form := s.flow.Form()
	s.Equal("2026-09-10", form.CheckInDate)
	s.Equal("Deluxe", form.RoomType)
	s.Equal("quiet floor", form.AdditionalRequests)
	s.Equal([]bool{false, true, false, false}, form.Requirements)
}

func (s *EditFlowTestSuite) TestCancel() {
	s.flow.Begin(s.row)
	s.flow.Cancel()

	s.Equal(usecase.StateIdle, s.flow.State())
	s.Empty(s.flow.TargetID())
}

func (s *EditFlowTestSuite) TestSave() {
	s.Run("success settles in idle with a refetched list", func() {
		s.flow.Begin(s.row)
		s.flow.Form().SetRequirement(0, true)

		s.mockUC.EXPECT().Update(gomock.Any(), s.sess, "res-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ session.Session, _ string, form usecase.EditForm) error {
				s.Equal([]bool{true, true, false, false}, form.Requirements)
				return nil
			})
		refreshed := []*readmodel.ReservationRM{s.row}
		s.mockUC.EXPECT().List(gomock.Any(), s.sess).Return(refreshed, nil)

		rows, err := s.flow.Save(context.Background(), s.sess)
		s.Require().NoError(err)
		s.Equal(refreshed, rows)
		s.Equal(usecase.StateIdle, s.flow.State())
		s.NoError(s.flow.Err())
	})

	s.Run("failure returns to editing with the form intact", func() {
		s.flow.Begin(s.row)
		s.flow.Form().AdditionalRequests = "ground floor"

		s.mockUC.EXPECT().Update(gomock.Any(), s.sess, "res-1", gomock.Any()).
			Return(assert.AnError)

		_, err := s.flow.Save(context.Background(), s.sess)
		s.Require().Error(err)
		s.Equal(usecase.StateEditing, s.flow.State())
		s.Equal("res-1", s.flow.TargetID())
		s.Equal("ground floor", s.flow.Form().AdditionalRequests)
		s.Error(s.flow.Err())
	})

	s.Run("save without an open dialog is rejected", func() {
		_, err := s.flow.Save(context.Background(), s.sess)
		s.Require().ErrorIs(err, usecase.ErrNoEditInProgress)
	})
}

func (s *EditFlowTestSuite) TestDelete() {
	s.Run("confirm closes the dialog and refetches on success", func() {
		s.flow.RequestDelete("res-1")
		s.Equal(usecase.StateConfirmingDelete, s.flow.State())

		s.mockUC.EXPECT().Delete(gomock.Any(), s.sess, "res-1").Return(nil)
		s.mockUC.EXPECT().List(gomock.Any(), s.sess).Return(nil, nil)

		_, err := s.flow.ConfirmDelete(context.Background(), s.sess)
		s.Require().NoError(err)
		s.Equal(usecase.StateIdle, s.flow.State())
	})

	s.Run("confirm closes the dialog even on failure", func() {
		s.flow.RequestDelete("res-1")

		s.mockUC.EXPECT().Delete(gomock.Any(), s.sess, "res-1").Return(assert.AnError)

		_, err := s.flow.ConfirmDelete(context.Background(), s.sess)
		s.Require().Error(err)
		s.Equal(usecase.StateIdle, s.flow.State())
		s.Error(s.flow.Err())
	})

	s.Run("cancel closes without deleting", func() {
		s.flow.RequestDelete("res-1")
		s.flow.CancelDelete()

		s.Equal(usecase.StateIdle, s.flow.State())
	})

	s.Run("confirm without an open confirmation is rejected", func() {
		_, err := s.flow.ConfirmDelete(context.Background(), s.sess)
		s.Require().ErrorIs(err, usecase.ErrNoDeleteInProgress)
	})
}
