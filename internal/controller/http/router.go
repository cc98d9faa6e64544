package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tutorboard/internal/service"
)

// Handlers собирает все HTTP-обработчики приложения
type Handlers struct {
	Auth     *AuthHandler
	Student  *StudentHandler
	Schedule *ScheduleHandler
	Progress *ProgressHandler
	Chat     *ChatHandler
}

// NewApp настраивает fiber-приложение и регистрирует маршруты
func NewApp(h Handlers, authService *service.AuthService, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "tutorboard",
		ErrorHandler: errorHandler(logger),
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)

	protected := api.Group("", AuthRequired(authService))

	students := protected.Group("/students")
	students.Get("/", h.Student.List)
	students.Post("/", h.Student.Create)
	students.Get("/:id", h.Student.Get)
	students.Put("/:id", h.Student.Update)
	students.Put("/:id/billing", h.Student.UpdateBilling)
	students.Delete("/:id", h.Student.Delete)
	students.Get("/:id/availability", h.Schedule.StudentAvailability)
	students.Get("/:id/records", h.Progress.List)
	students.Post("/:id/records", h.Progress.Create)
	students.Put("/:id/records/:recordId", h.Progress.Update)
	students.Delete("/:id/records/:recordId", h.Progress.Delete)
	students.Get("/:id/chat", h.Chat.History)
	students.Post("/:id/chat", h.Chat.Send)

	schedule := protected.Group("/schedule")
	schedule.Get("/slots", h.Schedule.ListSlots)
	schedule.Post("/slots", h.Schedule.CreateSlot)
	schedule.Delete("/slots/:id", h.Schedule.DeleteSlot)
	schedule.Post("/assignments", h.Schedule.CreateAssignment)
	schedule.Delete("/assignments/:id", h.Schedule.DeleteAssignment)
	schedule.Get("/week", h.Schedule.WeekGrid)
	schedule.Get("/week.png", h.Schedule.WeekImage)

	return app
}

func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
