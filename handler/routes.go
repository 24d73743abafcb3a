package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodPost, "/v1/auth/signup", h.registerUserHandler)
	router.HandlerFunc(http.MethodPost, "/v1/auth/login", h.createAuthenticationTokenHandler)
	router.HandlerFunc(http.MethodGet, "/v1/users/me", h.requireAuthenticatedUser(h.showUserHandler))

	router.HandlerFunc(http.MethodGet, "/v1/posts", h.listPostsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/posts", h.createPostHandler)
	router.HandlerFunc(http.MethodGet, "/v1/posts/:postId", h.showPostHandler)
	router.HandlerFunc(http.MethodPut, "/v1/posts/:postId", h.updatePostHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/posts/:postId", h.deletePostHandler)
	router.HandlerFunc(http.MethodPatch, "/v1/posts/:postId/cover", h.updatePostCoverHandler)

	router.HandlerFunc(http.MethodGet, "/v1/posts/:postId/comments", h.listCommentsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/posts/:postId/comments", h.requireAuthenticatedUser(h.createCommentHandler))
	router.HandlerFunc(http.MethodGet, "/v1/posts/:postId/comments/:commentId", h.showCommentHandler)
	router.HandlerFunc(http.MethodPut, "/v1/posts/:postId/comments/:commentId", h.requireAuthenticatedUser(h.updateCommentHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/posts/:postId/comments/:commentId", h.requireAuthenticatedUser(h.deleteCommentHandler))
	router.HandlerFunc(http.MethodGet, "/v1/comments", h.listCommentsByQueryHandler)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", h.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))

	// Swagger routes
	router.HandlerFunc(http.MethodGet, "/spec", h.handleSwaggerFile())
	router.HandlerFunc(http.MethodGet, "/docs/*any", httpSwagger.Handler(httpSwagger.URL("/spec")))

	return h.metrics(h.recoverPanic(h.enableCORS(h.rateLimit(h.authenticate(router)))))
}
