package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/ads-optimizer-api/internal/domain"
	"github.com/vfg2006/ads-optimizer-api/internal/realtime"
	"github.com/vfg2006/ads-optimizer-api/internal/usecases/chatting"
	"github.com/vfg2006/ads-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-optimizer-api/pkg/log"
)

type StartConversationRequest struct {
	UserID int `json:"user_id"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

func ListConversations(service chatting.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		conversations, err := service.ListConversations(r.Context(), claims)
		if err != nil {
			handleError(w, r, err, "Erro ao listar conversas")
			return
		}

		writeJSON(w, http.StatusOK, conversations)
	}
}

// StartConversation devolve a conversa existente entre o par ou cria uma nova
func StartConversation(service chatting.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		var req StartConversationRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.UserID <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id é obrigatório", nil)
			return
		}

		conversation, err := service.StartConversation(r.Context(), claims, req.UserID)
		if err != nil {
			handleError(w, r, err, "Erro ao iniciar conversa")
			return
		}

		writeJSON(w, http.StatusOK, conversation)
	}
}

func ListMessages(service chatting.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		conversationID, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}

		var filters domain.MessageFilters

		if before := r.URL.Query().Get("before"); before != "" {
			beforeID, err := strconv.ParseInt(before, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "before deve ser numérico", nil)
				return
			}
			filters.BeforeID = &beforeID
		}

		limit, err := queryInt(r, "limit", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser numérico", nil)
			return
		}
		filters.Limit = limit

		messages, err := service.ListMessages(r.Context(), claims, conversationID, filters)
		if err != nil {
			handleError(w, r, err, "Erro ao listar mensagens")
			return
		}

		writeJSON(w, http.StatusOK, messages)
	}
}

func SendMessage(service chatting.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		conversationID, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}

		var req SendMessageRequest
		if !decodeBody(w, r, &req) {
			return
		}

		message, err := service.SendMessage(r.Context(), claims, conversationID, req.Content)
		if err != nil {
			handleError(w, r, err, "Erro ao enviar mensagem")
			return
		}

		writeJSON(w, http.StatusCreated, message)
	}
}

func MarkConversationRead(service chatting.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		conversationID, ok := pathInt64(w, r, "id")
		if !ok {
			return
		}

		updated, err := service.MarkRead(r.Context(), claims, conversationID)
		if err != nil {
			handleError(w, r, err, "Erro ao marcar mensagens como lidas")
			return
		}

		writeJSON(w, http.StatusOK, MarkedResponse{Updated: updated})
	}
}

// ServeWebsocket mantém a conexão aberta até o cliente desconectar
func ServeWebsocket(hub *realtime.Hub, service chatting.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requester(w, r)
		if !ok {
			return
		}

		// o upgrader já respondeu ao cliente quando falha
		if err := hub.Serve(w, r, claims.UserID, service); err != nil {
			log.ForContext(r.Context()).WithField("user_id", claims.UserID).WithError(err).Warn("falha ao abrir websocket")
		}
	}
}
