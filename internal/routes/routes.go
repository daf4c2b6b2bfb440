package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/mcalvert/outings-api/internal/handlers"
	"github.com/mcalvert/outings-api/internal/middleware"
)

func Setup(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)

	protected := api.Group("/", middleware.Protected())

	protected.Get("/me", handlers.GetMe)

	activities := protected.Group("/activities")
	activities.Get("/", handlers.GetActivities)
	activities.Post("/", handlers.CreateActivity)
	activities.Get("/archived", handlers.GetArchivedActivities)
	activities.Get("/upcoming", handlers.GetUpcomingActivities)
	activities.Get("/calendar", handlers.GetCalendar)
	activities.Get("/:id", handlers.GetActivity)
	activities.Put("/:id", handlers.UpdateActivity)
	activities.Delete("/:id", handlers.DeleteActivity)
	activities.Post("/:id/complete", handlers.CompleteActivity)

	notes := protected.Group("/notes")
	notes.Get("/", handlers.GetNotes)
	notes.Post("/", handlers.CreateNote)
	notes.Get("/:id", handlers.GetNote)
	notes.Put("/:id", handlers.UpdateNote)
	notes.Delete("/:id", handlers.DeleteNote)

	notes.Get("/:id/comments", handlers.GetNoteComments)
	notes.Post("/:id/comments", handlers.AddComment)
	protected.Put("/comments/:id", handlers.UpdateComment)
	protected.Delete("/comments/:id", handlers.DeleteComment)

	protected.Get("/emoticons", handlers.GetEmoticons)
	notes.Get("/:id/emoticon", handlers.GetNoteEmoticon)
	notes.Put("/:id/emoticon", handlers.SetNoteEmoticon)
	notes.Delete("/:id/emoticon", handlers.RemoveNoteEmoticon)

	// WebSocket feed for live list refresh across tabs/devices
	app.Use("/ws", handlers.WebSocketUpgrade())
	app.Get("/ws", websocket.New(handlers.HandleWebSocket))
}
