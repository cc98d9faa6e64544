package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tutorboard/internal/service"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

type chatMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// History возвращает переписку со студенческим ассистентом, старые первыми
func (h *ChatHandler) History(c *fiber.Ctx) error {
	studentID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	messages, err := h.chatService.History(c.Context(), ownerID(c), studentID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(messages)
}

// Send сохраняет сообщение репетитора и возвращает ответ ассистента
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	studentID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req chatMessageRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	reply, err := h.chatService.SendMessage(c.Context(), ownerID(c), studentID, req.Content)
	if err != nil {
		h.logger.Error("chat completion failed", zap.Error(err))
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(reply)
}
