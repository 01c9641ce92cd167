package http

import (
	"net/http"
	"strings"
	"time"

	"nexthire/internal/domain/user"
	"nexthire/internal/http/handlers"
	"nexthire/internal/http/metrics"
	httpmw "nexthire/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler         *handlers.AuthHandler
	UserHandler         *handlers.UserHandler
	JobHandler          *handlers.JobHandler
	ApplicationHandler  *handlers.ApplicationHandler
	SavedJobHandler     *handlers.SavedJobHandler
	NotificationHandler *handlers.NotificationHandler
	MetricsHandler      *handlers.MetricsHandler
	AuthMiddleware      *httpmw.AuthMiddleware
	Metrics             *metrics.Collector
	RequestTimeout      time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging, httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.Metrics(r.deps.Metrics), httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/register":
			r.deps.AuthHandler.Register(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/login":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/refresh":
			r.deps.AuthHandler.Refresh(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/logout":
			r.deps.AuthHandler.Logout(w, req)
			return
		case req.Method == http.MethodGet && path == "/jobs":
			r.deps.JobHandler.ListActive(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/") && !strings.HasSuffix(path, "/save"):
			r.deps.JobHandler.Get(w, req)
			return
		}

		if strings.HasPrefix(path, "/users") || strings.HasPrefix(path, "/jobs") || strings.HasPrefix(path, "/recruiters") || strings.HasPrefix(path, "/applications") || strings.HasPrefix(path, "/notifications") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodGet && path == "/users/me":
		r.deps.UserHandler.Me(w, req)
		return
	case req.Method == http.MethodPatch && path == "/users/me":
		r.deps.UserHandler.UpdateProfile(w, req)
		return
	case req.Method == http.MethodDelete && path == "/users/me":
		r.deps.UserHandler.Deactivate(w, req)
		return
	case req.Method == http.MethodGet && path == "/users/saved-jobs":
		httpmw.RequireRole(user.RoleJobseeker)(http.HandlerFunc(r.deps.SavedJobHandler.List)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/jobs":
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.JobHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/jobs/") && strings.HasSuffix(path, "/save"):
		httpmw.RequireRole(user.RoleJobseeker)(http.HandlerFunc(r.deps.SavedJobHandler.Save)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/jobs/") && strings.HasSuffix(path, "/save"):
		httpmw.RequireRole(user.RoleJobseeker)(http.HandlerFunc(r.deps.SavedJobHandler.Unsave)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/jobs/") && strings.HasSuffix(path, "/status"):
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.JobHandler.UpdateStatus)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/jobs/"):
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.JobHandler.Update)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/jobs/"):
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.JobHandler.Delete)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/recruiters/jobs":
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.JobHandler.ListByRecruiter)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/recruiters/jobs/"):
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.JobHandler.GetByRecruiter)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/applications":
		httpmw.RequireRole(user.RoleJobseeker)(http.HandlerFunc(r.deps.ApplicationHandler.Apply)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/applications":
		r.deps.ApplicationHandler.List(w, req)
		return
	case req.Method == http.MethodGet && path == "/applications/stats":
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.ApplicationHandler.Stats)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/status"):
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.ApplicationHandler.UpdateStatus)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/interview"):
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.ApplicationHandler.ScheduleInterview)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/applications/"):
		httpmw.RequireRole(user.RoleJobseeker)(http.HandlerFunc(r.deps.ApplicationHandler.Withdraw)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/applications/"):
		r.deps.ApplicationHandler.Get(w, req)
		return
	case req.Method == http.MethodGet && path == "/notifications":
		r.deps.NotificationHandler.List(w, req)
		return
	case req.Method == http.MethodPost && path == "/notifications/read-all":
		r.deps.NotificationHandler.MarkAllRead(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/notifications/") && strings.HasSuffix(path, "/read"):
		r.deps.NotificationHandler.MarkRead(w, req)
		return
	}

	http.NotFound(w, req)
}
