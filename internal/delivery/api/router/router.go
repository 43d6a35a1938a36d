// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vidtube/internal/delivery/api/middleware"
	"vidtube/internal/delivery/api/router/handler"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	VideoHandler    *handler.VideoHandler
	CommentHandler  *handler.CommentHandler
	TweetHandler    *handler.TweetHandler
	PlaylistHandler *handler.PlaylistHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *middleware.AuthMiddleware

	VideoUC    usecase.VideoUsecase
	CommentUC  usecase.CommentUsecase
	TweetUC    usecase.TweetUsecase
	PlaylistUC usecase.PlaylistUsecase
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	videoHandler    *handler.VideoHandler
	commentHandler  *handler.CommentHandler
	tweetHandler    *handler.TweetHandler
	playlistHandler *handler.PlaylistHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware

	ownsVideo    echo.MiddlewareFunc
	ownsComment  echo.MiddlewareFunc
	ownsTweet    echo.MiddlewareFunc
	ownsPlaylist echo.MiddlewareFunc
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		videoHandler:    params.VideoHandler,
		commentHandler:  params.CommentHandler,
		tweetHandler:    params.TweetHandler,
		playlistHandler: params.PlaylistHandler,
		healthHandler:   params.HealthHandler,
		authMiddleware:  params.AuthMiddleware,

		ownsVideo:    middleware.RequireOwner("videoId", middleware.Loader(params.VideoUC.FindVideo)),
		ownsComment:  middleware.RequireOwner("commentId", middleware.Loader(params.CommentUC.FindComment)),
		ownsTweet:    middleware.RequireOwner("tweetId", middleware.Loader(params.TweetUC.FindTweet)),
		ownsPlaylist: middleware.RequireOwner("playlistId", middleware.Loader(params.PlaylistUC.FindPlaylist)),
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	apiV1 := e.Group("/api/v1")
	apiV1.GET("/healthcheck", r.healthHandler.HealthCheck)

	auth := r.authMiddleware.Authenticate

	users := apiV1.Group("/users")
	{
		users.POST("/register", r.userHandler.Register)
		users.POST("/login", r.userHandler.Login)
		users.POST("/refresh-token", r.userHandler.RefreshToken)

		users.POST("/logout", r.userHandler.Logout, auth)
		users.POST("/change-password", r.userHandler.ChangePassword, auth)
		users.GET("/current-user", r.userHandler.CurrentUser, auth)
		users.PATCH("/update-account", r.userHandler.UpdateAccount, auth)
		users.PATCH("/avatar", r.userHandler.UpdateAvatar, auth)
		users.PATCH("/cover-image", r.userHandler.UpdateCoverImage, auth)
	}

	videos := apiV1.Group("/videos", auth)
	{
		videos.GET("", r.videoHandler.ListVideos)
		videos.POST("", r.videoHandler.PublishVideo)
		videos.GET("/:videoId", r.videoHandler.GetVideo)
		videos.PATCH("/:videoId", r.videoHandler.UpdateVideo, r.ownsVideo)
		videos.DELETE("/:videoId", r.videoHandler.DeleteVideo, r.ownsVideo)
		videos.PATCH("/toggle/publish/:videoId", r.videoHandler.TogglePublish, r.ownsVideo)
		videos.GET("/:videoId/share/qr", r.videoHandler.ShareQR)
	}

	comments := apiV1.Group("/comments", auth)
	{
		comments.GET("/:videoId", r.commentHandler.ListComments)
		comments.POST("/:videoId", r.commentHandler.AddComment)
		comments.PATCH("/c/:commentId", r.commentHandler.UpdateComment, r.ownsComment)
		comments.DELETE("/c/:commentId", r.commentHandler.DeleteComment, r.ownsComment)
	}

	tweets := apiV1.Group("/tweets", auth)
	{
		tweets.POST("", r.tweetHandler.CreateTweet)
		tweets.GET("/user/:userId", r.tweetHandler.ListUserTweets)
		tweets.PATCH("/:tweetId", r.tweetHandler.UpdateTweet, r.ownsTweet)
		tweets.DELETE("/:tweetId", r.tweetHandler.DeleteTweet, r.ownsTweet)
	}

	playlists := apiV1.Group("/playlists", auth)
	{
		playlists.POST("", r.playlistHandler.CreatePlaylist)
		playlists.GET("/user/:userId", r.playlistHandler.ListUserPlaylists)
		playlists.GET("/:playlistId", r.playlistHandler.GetPlaylist)
		playlists.PATCH("/:playlistId", r.playlistHandler.UpdatePlaylist, r.ownsPlaylist)
		playlists.DELETE("/:playlistId", r.playlistHandler.DeletePlaylist, r.ownsPlaylist)
		playlists.PATCH("/add/:videoId/:playlistId", r.playlistHandler.AddVideo, r.ownsPlaylist)
		playlists.PATCH("/remove/:videoId/:playlistId", r.playlistHandler.RemoveVideo, r.ownsPlaylist)
	}
}
