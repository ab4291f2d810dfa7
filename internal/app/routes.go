package app

import (
	"github.com/hazelsoft/userdir/internal/middleware"
	"github.com/hazelsoft/userdir/internal/platform/router"
	"github.com/hazelsoft/userdir/internal/platform/validation"
	"github.com/hazelsoft/userdir/internal/user"
)

func mountUserRoutes(r router.Router, handler *user.Handler, validator validation.Validator, maxBodySize int64) {
	r.Group("/api/users", func(gr router.Router) {
		gr.Get("/", handler.List)
		gr.Get("/{id}", handler.Find)
		gr.Post("/", handler.Create,
			middleware.DecodePayload[user.CreateRequest](maxBodySize),
			middleware.ValidateInput[user.CreateRequest](validator))
		gr.Put("/{id}", handler.Update,
			middleware.DecodePayload[user.UpdateRequest](maxBodySize),
			middleware.ValidateInput[user.UpdateRequest](validator))
		gr.Delete("/{id}", handler.Delete)
	})
}
