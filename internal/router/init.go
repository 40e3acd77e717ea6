package router

import (
	"github.com/streamhive/backend/internal/application"
	"github.com/streamhive/backend/internal/container"
	pginfra "github.com/streamhive/backend/internal/infrastructure/postgres"
	handlers "github.com/streamhive/backend/internal/interface/http"
	"github.com/streamhive/backend/internal/router/modules"
)

// InitModules constructs repositories, services and handlers from the
// container singletons and registers every feature module. Called once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	log := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	videos := pginfra.NewVideoRepository(pool)
	subs := pginfra.NewSubscriptionRepository(pool)
	channels := pginfra.NewChannelRepository(pool)
	comments := pginfra.NewCommentRepository(pool)
	likes := pginfra.NewLikeRepository(pool)
	playlists := pginfra.NewPlaylistRepository(pool)
	tweets := pginfra.NewTweetRepository(pool)

	authSvc := application.NewAuthService(users, container.GetJWT(), container.GetMedia(), container.GetRabbitPub(), log, cfg.AppName)
	userSvc := application.NewUserService(users, videos, channels, container.GetMedia(), log)
	videoSvc := application.NewVideoService(videos, channels, container.GetMedia(), log, container.GetES(), cfg.ESVideosIndex)
	subSvc := application.NewSubscriptionService(subs, users, channels)
	likeSvc := application.NewLikeService(likes, videos, comments, tweets, channels)
	commentSvc := application.NewCommentService(comments, videos)
	playlistSvc := application.NewPlaylistService(playlists, videos)
	tweetSvc := application.NewTweetService(tweets, users)
	dashboardSvc := application.NewDashboardService(channels, videos, users)

	userHandler := handlers.NewUserHandler(authSvc, userSvc, log, cfg.CookieDomain, cfg.CookieSecure)
	videoHandler := handlers.NewVideoHandler(videoSvc, log)
	subHandler := handlers.NewSubscriptionHandler(subSvc)
	likeHandler := handlers.NewLikeHandler(likeSvc)
	commentHandler := handlers.NewCommentHandler(commentSvc)
	playlistHandler := handlers.NewPlaylistHandler(playlistSvc)
	tweetHandler := handlers.NewTweetHandler(tweetSvc)
	dashboardHandler := handlers.NewDashboardHandler(dashboardSvc)
	healthHandler := handlers.NewHealthHandler(pool, container.GetRedis())

	r.Add(modules.NewUserModule(userHandler, authSvc))
	r.Add(modules.NewVideoModule(videoHandler, authSvc))
	r.Add(modules.NewSubscriptionModule(subHandler, authSvc))
	r.Add(modules.NewLikeModule(likeHandler, authSvc))
	r.Add(modules.NewCommentModule(commentHandler, authSvc))
	r.Add(modules.NewPlaylistModule(playlistHandler, authSvc))
	r.Add(modules.NewTweetModule(tweetHandler, authSvc))
	r.Add(modules.NewDashboardModule(dashboardHandler, authSvc))
	r.Add(modules.NewHealthModule(healthHandler))
}
