// Package app builds the service container and HTTP router. main and the
// handler tests share this wiring.
package app

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gassama94/drf-api/internal/comment"
	"github.com/gassama94/drf-api/internal/events"
	"github.com/gassama94/drf-api/internal/follower"
	"github.com/gassama94/drf-api/internal/like"
	"github.com/gassama94/drf-api/internal/media"
	"github.com/gassama94/drf-api/internal/metrics"
	"github.com/gassama94/drf-api/internal/post"
	"github.com/gassama94/drf-api/internal/profile"
	"github.com/gassama94/drf-api/internal/ratelimit"
	"github.com/gassama94/drf-api/internal/shared/db"
	"github.com/gassama94/drf-api/internal/shared/httpx"
	"github.com/gassama94/drf-api/internal/user"
)

type Deps struct {
	Store   *db.Store
	Storage media.Storage
	Events  events.Publisher
	// Limiter is optional; when nil, writes are not rate limited.
	Limiter *ratelimit.Limiter
}

type App struct {
	UserService     user.Service
	ProfileService  profile.Service
	PostService     post.Service
	CommentService  comment.Service
	LikeService     like.Service
	FollowerService follower.Service

	mux *http.ServeMux
}

func New(d Deps) *App {
	profileRepo := profile.NewRepository(d.Store)
	profileSvc := profile.NewService(profileRepo, d.Storage)

	userRepo := user.NewRepository(d.Store)
	userSvc := user.NewService(userRepo, profileSvc, d.Events)

	postRepo := post.NewRepository(d.Store)
	postSvc := post.NewService(postRepo, d.Storage, d.Events)

	commentRepo := comment.NewRepository(d.Store)
	commentSvc := comment.NewService(commentRepo)

	likeRepo := like.NewRepository(d.Store)
	likeSvc := like.NewService(likeRepo)

	followerRepo := follower.NewRepository(d.Store)
	followerSvc := follower.NewService(followerRepo, d.Events)

	a := &App{
		UserService:     userSvc,
		ProfileService:  profileSvc,
		PostService:     postSvc,
		CommentService:  commentSvc,
		LikeService:     likeSvc,
		FollowerService: followerSvc,
	}
	a.mux = a.routes(d)
	return a
}

func (a *App) routes(d Deps) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())

	// Write handlers go through the per-user limiter when Redis is wired.
	limited := func(h http.Handler) http.Handler {
		if d.Limiter == nil {
			return h
		}
		return d.Limiter.LimitHTTP(60, time.Minute, h)
	}

	uh := user.NewHandler(a.UserService)
	mux.Handle("POST /users/register", httpx.Wrap(uh.Register))
	mux.Handle("POST /users/login", httpx.Wrap(uh.Login))
	mux.Handle("GET /users/current", httpx.Wrap(uh.Current))

	ph := post.NewHandler(a.PostService)
	mux.Handle("GET /posts", httpx.Wrap(ph.List))
	mux.Handle("POST /posts", limited(httpx.Wrap(ph.Create)))
	mux.Handle("GET /posts/{id}", httpx.Wrap(ph.Get))
	mux.Handle("PUT /posts/{id}", limited(httpx.Wrap(ph.Update)))
	mux.Handle("DELETE /posts/{id}", limited(httpx.Wrap(ph.Delete)))

	ch := comment.NewHandler(a.CommentService)
	mux.Handle("GET /comments", httpx.Wrap(ch.List))
	mux.Handle("POST /comments", limited(httpx.Wrap(ch.Create)))
	mux.Handle("GET /comments/{id}", httpx.Wrap(ch.Get))
	mux.Handle("PUT /comments/{id}", limited(httpx.Wrap(ch.Update)))
	mux.Handle("DELETE /comments/{id}", limited(httpx.Wrap(ch.Delete)))

	lh := like.NewHandler(a.LikeService)
	mux.Handle("GET /likes", httpx.Wrap(lh.List))
	mux.Handle("POST /likes", limited(httpx.Wrap(lh.Create)))
	mux.Handle("GET /likes/{id}", httpx.Wrap(lh.Get))
	mux.Handle("DELETE /likes/{id}", limited(httpx.Wrap(lh.Delete)))

	fh := follower.NewHandler(a.FollowerService)
	mux.Handle("GET /followers", httpx.Wrap(fh.List))
	mux.Handle("POST /followers", limited(httpx.Wrap(fh.Create)))
	mux.Handle("GET /followers/{id}", httpx.Wrap(fh.Get))
	mux.Handle("DELETE /followers/{id}", limited(httpx.Wrap(fh.Delete)))

	prh := profile.NewHandler(a.ProfileService)
	mux.Handle("GET /profiles", httpx.Wrap(prh.List))
	mux.Handle("GET /profiles/{id}", httpx.Wrap(prh.Get))
	mux.Handle("PUT /profiles/{id}", limited(httpx.Wrap(prh.Update)))

	return mux
}

// Handler is the full middleware chain: bearer parsing, then routing, with
// request metrics around the mux.
func (a *App) Handler() http.Handler {
	return httpx.OptionalAuth(metrics.Middleware(a.mux))
}
