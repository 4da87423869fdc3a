package chatting

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/realtime"
	errorcodes "github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/log"
)

const (
	defaultMessagesLimit = 50
	maxMessagesLimit     = 100
)

type Messenger interface {
	StartConversation(ctx context.Context, requester *domain.Claims, otherUserID int) (*domain.Conversation, error)
	ListConversations(ctx context.Context, requester *domain.Claims) ([]*domain.Conversation, error)
	ListMessages(ctx context.Context, requester *domain.Claims, conversationID int64, filters domain.MessageFilters) ([]*domain.Message, error)
	SendMessage(ctx context.Context, requester *domain.Claims, conversationID int64, content string) (*domain.Message, error)
	MarkRead(ctx context.Context, requester *domain.Claims, conversationID int64) (int64, error)
	HandleInbound(ctx context.Context, userID int, event realtime.InboundEvent) error
}

type Service struct {
	chatRepo  repository.ChatRepository
	userRepo  repository.UserRepository
	publisher realtime.Publisher
}

func NewService(chatRepo repository.ChatRepository, userRepo repository.UserRepository, publisher realtime.Publisher) Messenger {
	return &Service{
		chatRepo:  chatRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// StartConversation devolve a conversa entre o gestor e o usuário cliente, criando se preciso
func (s *Service) StartConversation(ctx context.Context, requester *domain.Claims, otherUserID int) (*domain.Conversation, error) {
	if requester.IsAdmin() {
		return nil, newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Conversas são entre gestor e cliente")
	}

	other, err := s.userRepo.GetUserByID(ctx, otherUserID)
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário")
	}

	notFound := newError(ErrParticipantNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Usuário %d não encontrado", otherUserID))
	if other == nil || !other.Active {
		return nil, notFound
	}

	var managerID, clientUserID int
	switch {
	case requester.IsManager():
		if other.RoleID != domain.RoleClient || other.ManagerID == nil || *other.ManagerID != requester.UserID {
			return nil, notFound
		}
		managerID, clientUserID = requester.UserID, other.ID
	case requester.IsClient():
		me, err := s.userRepo.GetUserByID(ctx, requester.UserID)
		if err != nil {
			return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar usuário")
		}
		if me == nil || me.ManagerID == nil || *me.ManagerID != other.ID {
			return nil, notFound
		}
		managerID, clientUserID = other.ID, requester.UserID
	default:
		return nil, newError(ErrForbiddenOperation, errorcodes.ErrInsufficientPrivilege, "Perfil sem acesso ao chat")
	}

	conversation, err := s.chatRepo.GetOrCreateConversation(ctx, managerID, clientUserID)
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao iniciar conversa")
	}

	return conversation, nil
}

func (s *Service) ListConversations(ctx context.Context, requester *domain.Claims) ([]*domain.Conversation, error) {
	var participant *int
	if !requester.IsAdmin() {
		id := requester.UserID
		participant = &id
	}

	conversations, err := s.chatRepo.ListConversations(ctx, participant, requester.UserID)
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao listar conversas")
	}

	return conversations, nil
}

func (s *Service) ListMessages(ctx context.Context, requester *domain.Claims, conversationID int64, filters domain.MessageFilters) ([]*domain.Message, error) {
	if _, err := s.conversation(ctx, requester, conversationID, true); err != nil {
		return nil, err
	}

	if filters.Limit <= 0 {
		filters.Limit = defaultMessagesLimit
	}
	if filters.Limit > maxMessagesLimit {
		filters.Limit = maxMessagesLimit
	}

	messages, err := s.chatRepo.ListMessages(ctx, conversationID, filters)
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao listar mensagens")
	}

	return messages, nil
}

// SendMessage persiste a mensagem antes de publicá-la para os dois participantes
func (s *Service) SendMessage(ctx context.Context, requester *domain.Claims, conversationID int64, content string) (*domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, newError(ErrInvalidMessage, errorcodes.ErrMissingRequiredData, "Conteúdo é obrigatório")
	}
	if utf8.RuneCountInString(content) > domain.MaxMessageLength {
		return nil, newError(ErrInvalidMessage, errorcodes.ErrInvalidFormat,
			fmt.Sprintf("Mensagem deve ter no máximo %d caracteres", domain.MaxMessageLength))
	}

	conversation, err := s.conversation(ctx, requester, conversationID, false)
	if err != nil {
		return nil, err
	}

	message := &domain.Message{
		ConversationID: conversation.ID,
		SenderID:       requester.UserID,
		Content:        content,
	}
	if err := s.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao enviar mensagem")
	}

	s.publisher.SendToUsers(realtime.Event{Type: realtime.EventMessageNew, Data: message},
		conversation.ManagerID, conversation.ClientUserID)

	return message, nil
}

// MarkRead marca como lidas as mensagens do outro participante
func (s *Service) MarkRead(ctx context.Context, requester *domain.Claims, conversationID int64) (int64, error) {
	conversation, err := s.conversation(ctx, requester, conversationID, false)
	if err != nil {
		return 0, err
	}

	count, err := s.chatRepo.MarkRead(ctx, conversationID, requester.UserID)
	if err != nil {
		return 0, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao marcar mensagens como lidas")
	}

	if count > 0 {
		s.publisher.SendToUsers(realtime.Event{
			Type: realtime.EventMessageRead,
			Data: realtime.ReadData{ConversationID: conversationID, ReaderID: requester.UserID, Count: count},
		}, conversation.ManagerID, conversation.ClientUserID)
	}

	return count, nil
}

// HandleInbound trata os eventos recebidos pelo WebSocket
func (s *Service) HandleInbound(ctx context.Context, userID int, event realtime.InboundEvent) error {
	requester := &domain.Claims{UserID: userID}

	switch event.Type {
	case realtime.EventMessageSend:
		_, err := s.SendMessage(ctx, requester, event.Data.ConversationID, event.Data.Content)
		return err
	case realtime.EventTyping:
		conversation, err := s.conversation(ctx, requester, event.Data.ConversationID, false)
		if err != nil {
			return err
		}
		s.publisher.SendToUsers(realtime.Event{
			Type: realtime.EventTyping,
			Data: realtime.TypingData{ConversationID: conversation.ID, UserID: userID},
		}, conversation.OtherParticipant(userID))
		return nil
	default:
		log.ForContext(ctx).WithFields(log.Fields{"user_id": userID, "type": event.Type}).Debug("Evento de chat ignorado")
		return newError(ErrUnknownEvent, errorcodes.ErrInvalidRequest, event.Type)
	}
}

// conversation valida o acesso; admins apenas leem conversas de terceiros
func (s *Service) conversation(ctx context.Context, requester *domain.Claims, id int64, adminCanRead bool) (*domain.Conversation, error) {
	conversation, err := s.chatRepo.GetConversation(ctx, id)
	if err != nil {
		return nil, newError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar conversa")
	}

	if conversation == nil {
		return nil, newError(ErrConversationNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Conversa %d não encontrada", id))
	}

	if conversation.HasParticipant(requester.UserID) {
		return conversation, nil
	}
	if adminCanRead && requester.IsAdmin() {
		return conversation, nil
	}

	return nil, newError(ErrConversationNotFound, errorcodes.ErrResourceNotFound, fmt.Sprintf("Conversa %d não encontrada", id))
}
