package chatting

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/realtime"
	realtimemocks "github.com/vfg2006/ads-optimizer-api/internal/realtime/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	chat      *mocks.MockChatRepository
	users     *mocks.MockUserRepository
	publisher *realtimemocks.MockPublisher
	svc       Messenger
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		chat:      mocks.NewMockChatRepository(ctrl),
		users:     mocks.NewMockUserRepository(ctrl),
		publisher: realtimemocks.NewMockPublisher(ctrl),
	}
	f.svc = NewService(f.chat, f.users, f.publisher)
	return f
}

func intPtr(v int) *int { return &v }

var (
	manager      = &domain.Claims{UserID: 2, UserRoleID: domain.RoleManager}
	otherManager = &domain.Claims{UserID: 3, UserRoleID: domain.RoleManager}
	clientUser   = &domain.Claims{UserID: 7, UserRoleID: domain.RoleClient}
	conversation = &domain.Conversation{ID: 10, ManagerID: 2, ClientUserID: 7}
)

func TestService_StartConversation(t *testing.T) {
	ctx := context.Background()

	t.Run("gestor com seu cliente", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(ctx, 7).Return(&domain.User{ID: 7, RoleID: domain.RoleClient, Active: true, ManagerID: intPtr(2)}, nil)
		f.chat.EXPECT().GetOrCreateConversation(ctx, 2, 7).Return(conversation, nil)

		got, err := f.svc.StartConversation(ctx, manager, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(10), got.ID)
	})

	t.Run("cliente com seu gestor", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(ctx, 2).Return(&domain.User{ID: 2, RoleID: domain.RoleManager, Active: true}, nil)
		f.users.EXPECT().GetUserByID(ctx, 7).Return(&domain.User{ID: 7, RoleID: domain.RoleClient, Active: true, ManagerID: intPtr(2)}, nil)
		f.chat.EXPECT().GetOrCreateConversation(ctx, 2, 7).Return(conversation, nil)

		_, err := f.svc.StartConversation(ctx, clientUser, 2)
		require.NoError(t, err)
	})

	t.Run("cliente de outro gestor", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetUserByID(ctx, 7).Return(&domain.User{ID: 7, RoleID: domain.RoleClient, Active: true, ManagerID: intPtr(2)}, nil)

		_, err := f.svc.StartConversation(ctx, otherManager, 7)
		assert.ErrorIs(t, err, ErrParticipantNotFound)
	})

	t.Run("admin não participa", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.StartConversation(ctx, &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}, 7)
		assert.ErrorIs(t, err, ErrForbiddenOperation)
	})
}

func TestService_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("persiste antes de publicar para os dois participantes", func(t *testing.T) {
		f := newFixture(t)
		f.chat.EXPECT().GetConversation(ctx, int64(10)).Return(conversation, nil)
		gomock.InOrder(
			f.chat.EXPECT().CreateMessage(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m *domain.Message) error {
				m.ID = 99
				return nil
			}),
			f.publisher.EXPECT().SendToUsers(gomock.Any(), 2, 7).Do(func(event realtime.Event, _ ...int) {
				assert.Equal(t, realtime.EventMessageNew, event.Type)
				assert.Equal(t, int64(99), event.Data.(*domain.Message).ID)
			}),
		)

		msg, err := f.svc.SendMessage(ctx, clientUser, 10, "  Olá, tudo bem?  ")
		require.NoError(t, err)
		assert.Equal(t, "Olá, tudo bem?", msg.Content)
		assert.Equal(t, 7, msg.SenderID)
	})

	t.Run("conteúdo vazio", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SendMessage(ctx, manager, 10, "   ")
		assert.ErrorIs(t, err, ErrInvalidMessage)
	})

	t.Run("conteúdo longo demais", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SendMessage(ctx, manager, 10, strings.Repeat("a", domain.MaxMessageLength+1))
		assert.ErrorIs(t, err, ErrInvalidMessage)
	})

	t.Run("quem não participa não envia", func(t *testing.T) {
		f := newFixture(t)
		f.chat.EXPECT().GetConversation(ctx, int64(10)).Return(conversation, nil)

		_, err := f.svc.SendMessage(ctx, otherManager, 10, "oi")
		assert.ErrorIs(t, err, ErrConversationNotFound)
	})
}

func TestService_MarkRead(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.chat.EXPECT().GetConversation(ctx, int64(10)).Return(conversation, nil)
	f.chat.EXPECT().MarkRead(ctx, int64(10), 2).Return(int64(3), nil)
	f.publisher.EXPECT().SendToUsers(realtime.Event{
		Type: realtime.EventMessageRead,
		Data: realtime.ReadData{ConversationID: 10, ReaderID: 2, Count: 3},
	}, 2, 7)

	count, err := f.svc.MarkRead(ctx, manager, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestService_ListMessages(t *testing.T) {
	ctx := context.Background()
	admin := &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
	f := newFixture(t)

	f.chat.EXPECT().GetConversation(ctx, int64(10)).Return(conversation, nil)
	f.chat.EXPECT().ListMessages(ctx, int64(10), domain.MessageFilters{Limit: maxMessagesLimit}).Return([]*domain.Message{}, nil)

	_, err := f.svc.ListMessages(ctx, admin, 10, domain.MessageFilters{Limit: 500})
	assert.NoError(t, err)
}

func TestService_HandleInbound(t *testing.T) {
	ctx := context.Background()

	t.Run("message:send", func(t *testing.T) {
		f := newFixture(t)
		f.chat.EXPECT().GetConversation(ctx, int64(10)).Return(conversation, nil)
		f.chat.EXPECT().CreateMessage(ctx, gomock.Any()).Return(nil)
		f.publisher.EXPECT().SendToUsers(gomock.Any(), 2, 7)

		err := f.svc.HandleInbound(ctx, 7, realtime.InboundEvent{
			Type: realtime.EventMessageSend,
			Data: realtime.InboundData{ConversationID: 10, Content: "oi"},
		})
		assert.NoError(t, err)
	})

	t.Run("typing vai apenas para o outro participante", func(t *testing.T) {
		f := newFixture(t)
		f.chat.EXPECT().GetConversation(ctx, int64(10)).Return(conversation, nil)
		f.publisher.EXPECT().SendToUsers(realtime.Event{
			Type: realtime.EventTyping,
			Data: realtime.TypingData{ConversationID: 10, UserID: 7},
		}, 2)

		err := f.svc.HandleInbound(ctx, 7, realtime.InboundEvent{Type: realtime.EventTyping, Data: realtime.InboundData{ConversationID: 10}})
		assert.NoError(t, err)
	})

	t.Run("evento desconhecido", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.HandleInbound(ctx, 7, realtime.InboundEvent{Type: "foo"})
		assert.ErrorIs(t, err, ErrUnknownEvent)
	})
}
