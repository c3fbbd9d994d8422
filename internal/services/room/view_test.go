package room

import (
	"github.com/Johnpaulreju/Digit-duel/internal/model"
)

func (s *ControllerSuite) TestViewNeverIncludesOwnSecret() {
	id, hostID, _ := s.startDuel("1234", "5678")

	room, err := s.controller.GetRoom(s.ctx, id)
	s.Require().NoError(err)

	view, err := s.controller.ViewForPlayer(room, hostID)
	s.Require().NoError(err)
	s.Empty(view.GetPlayer(hostID).Secret)
}

func (s *ControllerSuite) TestViewHidesOpponentSecretWhileUnresolved() {
	id, hostID, guestID := s.startDuel("1234", "5678")

	room, err := s.controller.GetRoom(s.ctx, id)
	s.Require().NoError(err)

	view, err := s.controller.ViewForPlayer(room, hostID)
	s.Require().NoError(err)
	s.Empty(view.GetPlayer(guestID).Secret)
}

func (s *ControllerSuite) TestViewRevealsOpponentSecretWhenFinished() {
	id, hostID, guestID := s.startDuel("1234", "5678")
	_, err := s.controller.MakeGuess(s.ctx, id, hostID, "5678")
	s.Require().NoError(err)

	room, err := s.controller.GetRoom(s.ctx, id)
	s.Require().NoError(err)

	view, err := s.controller.ViewForPlayer(room, hostID)
	s.Require().NoError(err)
	s.Equal("5678", view.GetPlayer(guestID).Secret)
	// Own secret stays write-only even after the round resolves
	s.Empty(view.GetPlayer(hostID).Secret)
}

func (s *ControllerSuite) TestViewForNonMemberFails() {
	id, _, _ := s.createDuel()

	room, err := s.controller.GetRoom(s.ctx, id)
	s.Require().NoError(err)

	_, err = s.controller.ViewForPlayer(room, "stranger")
	s.ErrorIs(err, model.ErrNotRoomMember)
}

func (s *ControllerSuite) TestViewDoesNotMutateSourceRoom() {
	id, hostID, _ := s.startDuel("1234", "5678")

	room, err := s.controller.GetRoom(s.ctx, id)
	s.Require().NoError(err)

	_, err = s.controller.ViewForPlayer(room, hostID)
	s.Require().NoError(err)
	s.Equal("1234", room.GetPlayer(hostID).Secret)
}
