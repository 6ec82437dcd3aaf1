package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/stbguild/guildhall/internal/common/clock/mocks"
	uuidMocks "github.com/stbguild/guildhall/internal/common/uuid/mocks"
	"github.com/stbguild/guildhall/internal/models"
	messageRepo "github.com/stbguild/guildhall/internal/repositories/message"
	messageMocks "github.com/stbguild/guildhall/internal/repositories/message/mocks"
	"github.com/stbguild/guildhall/internal/services/auth"
)

type ChatServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockMessageRepo *messageMocks.MockRepository
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	chatService     Service
	ctx             context.Context

	testTime    time.Time
	squadMember *auth.Actor
	outsider    *auth.Actor
	admin       *auth.Actor
}

func (s *ChatServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMessageRepo = messageMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("generated-id").AnyTimes()

	s.squadMember = &auth.Actor{
		UserID: "member-1",
		Role:   models.RoleMember,
		Profile: &models.Profile{
			ID:       "member-1",
			FullName: "Squad Player",
			SquadID:  "squad-1",
		},
	}
	s.outsider = &auth.Actor{
		UserID:  "member-2",
		Role:    models.RoleMember,
		Profile: &models.Profile{ID: "member-2"},
	}
	s.admin = &auth.Actor{UserID: "admin-1", Role: models.RoleSubAdmin}

	svc, err := New(&Config{
		MessageRepo: s.mockMessageRepo,
		Clock:       s.mockClock,
		UUID:        s.mockUUID,
	})
	s.Require().NoError(err)
	s.chatService = svc
}

func (s *ChatServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestChatServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChatServiceTestSuite))
}

func (s *ChatServiceTestSuite) TestSendToGlobalChannel() {
	s.mockMessageRepo.EXPECT().
		SaveMessage(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *messageRepo.SaveMessageInput) error {
			s.Empty(input.Message.SquadID)
			s.Equal("Squad Player", input.Message.SenderName)
			s.Equal(models.RoleMember, input.Message.SenderRole)
			return nil
		})

	out, err := s.chatService.SendMessage(s.ctx, &SendMessageInput{
		Actor:   s.squadMember,
		Content: "gg everyone",
	})
	s.Require().NoError(err)
	s.Equal("generated-id", out.Message.ID)
}

func (s *ChatServiceTestSuite) TestSendToOwnSquadChannel() {
	s.mockMessageRepo.EXPECT().SaveMessage(s.ctx, gomock.Any()).Return(nil)

	_, err := s.chatService.SendMessage(s.ctx, &SendMessageInput{
		Actor:   s.squadMember,
		SquadID: "squad-1",
		Content: "scrim at 8",
	})
	s.NoError(err)
}

func (s *ChatServiceTestSuite) TestSendToForeignSquadChannelDenied() {
	_, err := s.chatService.SendMessage(s.ctx, &SendMessageInput{
		Actor:   s.outsider,
		SquadID: "squad-1",
		Content: "let me in",
	})
	s.Equal(ErrNotSquadMember, err)
}

func (s *ChatServiceTestSuite) TestAdminMayUseAnySquadChannel() {
	s.mockMessageRepo.EXPECT().SaveMessage(s.ctx, gomock.Any()).Return(nil)

	_, err := s.chatService.SendMessage(s.ctx, &SendMessageInput{
		Actor:   s.admin,
		SquadID: "squad-1",
		Content: "announcement",
	})
	s.NoError(err)
}

func (s *ChatServiceTestSuite) TestSendRejectsEmptyContent() {
	_, err := s.chatService.SendMessage(s.ctx, &SendMessageInput{
		Actor: s.squadMember,
	})
	s.Equal(ErrEmptyMessage, err)
}

func (s *ChatServiceTestSuite) TestGetHistoryGatesSquadChannel() {
	_, err := s.chatService.GetHistory(s.ctx, &GetHistoryInput{
		Actor:   s.outsider,
		SquadID: "squad-1",
	})
	s.Equal(ErrNotSquadMember, err)
}

func (s *ChatServiceTestSuite) TestGetHistory() {
	s.mockMessageRepo.EXPECT().
		ListMessages(s.ctx, &messageRepo.ListMessagesInput{SquadID: "squad-1", Limit: 50}).
		Return(&messageRepo.ListMessagesOutput{
			Messages: []*models.Message{{ID: "m-1"}, {ID: "m-2"}},
		}, nil)

	out, err := s.chatService.GetHistory(s.ctx, &GetHistoryInput{
		Actor:   s.squadMember,
		SquadID: "squad-1",
		Limit:   50,
	})
	s.Require().NoError(err)
	s.Len(out.Messages, 2)
}
