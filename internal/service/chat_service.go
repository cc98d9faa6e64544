package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tutorboard/internal/ai"
	"tutorboard/internal/model"
	"tutorboard/internal/repository"
)

type ChatService struct {
	chatRepo    *repository.ChatRepository
	studentRepo *repository.StudentRepository
	aiClient    *ai.Client
	logger      *zap.Logger
}

func NewChatService(
	chatRepo *repository.ChatRepository,
	studentRepo *repository.StudentRepository,
	aiClient *ai.Client,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		chatRepo:    chatRepo,
		studentRepo: studentRepo,
		aiClient:    aiClient,
		logger:      logger,
	}
}

// EnsureChat возвращает чат студента, создавая его при первом обращении
func (s *ChatService) EnsureChat(ctx context.Context, ownerID, studentID uuid.UUID) (*model.StudentChat, error) {
	student, err := s.studentRepo.GetByID(ctx, ownerID, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	chat, err := s.chatRepo.GetByStudent(ctx, ownerID, studentID)
	if err != nil {
		return nil, err
	}
	if chat != nil {
		return chat, nil
	}

	chat = &model.StudentChat{
		OwnerID:   ownerID,
		StudentID: studentID,
	}
	if err := s.chatRepo.Create(ctx, chat); err != nil {
		return nil, err
	}

	s.logger.Info("Chat created for student",
		zap.String("chat_id", chat.ID.String()),
		zap.String("student_id", studentID.String()),
	)

	return chat, nil
}

// History получает историю чата студента в хронологическом порядке
func (s *ChatService) History(ctx context.Context, ownerID, studentID uuid.UUID) ([]*model.ChatMessage, error) {
	chat, err := s.EnsureChat(ctx, ownerID, studentID)
	if err != nil {
		return nil, err
	}
	return s.chatRepo.ListMessages(ctx, chat.ID)
}

// SendMessage сохраняет сообщение преподавателя, запрашивает ответ
// ассистента и сохраняет его. Сбой Gemini возвращается как ошибка;
// сообщение преподавателя при этом остаётся в истории
func (s *ChatService) SendMessage(ctx context.Context, ownerID, studentID uuid.UUID, content string) (*model.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("message content is required")
	}

	student, err := s.studentRepo.GetByID(ctx, ownerID, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	chat, err := s.EnsureChat(ctx, ownerID, studentID)
	if err != nil {
		return nil, err
	}

	userMessage := &model.ChatMessage{
		ChatID:  chat.ID,
		Role:    model.ChatRoleUser,
		Content: content,
	}
	if err := s.chatRepo.CreateMessage(ctx, userMessage); err != nil {
		return nil, err
	}

	history, err := s.chatRepo.ListMessages(ctx, chat.ID)
	if err != nil {
		return nil, err
	}

	notes := ""
	if student.Notes != nil {
		notes = *student.Notes
	}

	reply, err := s.aiClient.Complete(ctx, student.FullName, notes, history)
	if err != nil {
		s.logger.Error("Gemini completion failed",
			zap.String("chat_id", chat.ID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("ai completion: %w", err)
	}

	assistantMessage := &model.ChatMessage{
		ChatID:  chat.ID,
		Role:    model.ChatRoleAssistant,
		Content: reply,
	}
	if err := s.chatRepo.CreateMessage(ctx, assistantMessage); err != nil {
		return nil, err
	}

	return assistantMessage, nil
}
