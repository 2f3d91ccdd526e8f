package main

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/mager/cadence/config"
	"github.com/mager/cadence/corpus"
	"github.com/mager/cadence/docs"
	"github.com/mager/cadence/handler"
	"github.com/mager/cadence/handler/health"
	"github.com/mager/cadence/handler/options"
	"github.com/mager/cadence/handler/search"
	"github.com/mager/cadence/logger"
	"github.com/mager/cadence/recommend"
	"github.com/mager/cadence/spotify"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Route is an http.Handler that knows the mux pattern
// under which it will be registered.
type Route interface {
	http.Handler

	// Pattern reports the path at which this is registered.
	Pattern() string

	// Methods reports the HTTP methods the route accepts.
	Methods() []string
}

//	@title			Cadence
//	@version		1.0
//	@description	Song recommendations by mood and time of day

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @host		localhost:8080
// @BasePath	/
func main() {
	fx.New(appOptions()).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(NewHTTPServer, fx.ParamTags(``, ``, ``, `group:"routes"`)),
			config.Options,
			logger.Options,
			corpus.Options,
			recommend.Options,
			spotify.Options,

			AsRoute(health.NewHealthHandler),
			AsRoute(options.NewOptionsHandler),
			AsRoute(search.NewSearchHandler),
			AsRoute(search.NewLookupHandler),
		),
		fx.WithLogger(func(log *zap.SugaredLogger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Desugar()}
		}),
		fx.Invoke(func(*http.Server) {}),
	)
}

func NewHTTPServer(
	lc fx.Lifecycle,
	cfg config.Config,
	log *zap.SugaredLogger,
	routes []Route,
) *http.Server {
	router := mux.NewRouter()
	router.Use(handler.RequestLogger(log))

	for _, route := range routes {
		router.Handle(route.Pattern(), route).Methods(route.Methods()...)
	}
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/swagger.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(docs.SwaggerInfo.ReadDoc()))
	}).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Infow("Starting HTTP server", "addr", srv.Addr, "routes", len(routes))
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}

// AsRoute annotates the given constructor to state that
// it provides a route to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(Route)),
		fx.ResultTags(`group:"routes"`),
	)
}
