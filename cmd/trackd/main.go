package main

import (
	"context"
	"flag"
	"log"
	"net/url"
	"path"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/opst/trackfab/pkg/auth"
	kcf "github.com/opst/trackfab/pkg/configs/frontend"
	kdb "github.com/opst/trackfab/pkg/domain/trackfab/db"
	kpg "github.com/opst/trackfab/pkg/domain/trackfab/db/postgres"
	"github.com/opst/trackfab/pkg/utils/echoutil"
	"github.com/opst/trackfab/pkg/utils/filewatch"
	kstrings "github.com/opst/trackfab/pkg/utils/strings"

	"github.com/opst/trackfab/cmd/trackd/handlers"
)

func main() {

	configPath := flag.String("config-path", "", "tracker config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	flag.Parse()

	e := echo.New()
	e.Pre(middleware.AddTrailingSlash())

	// set log
	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	// read configfile
	conf, err := kcf.LoadTrackerConfig(*configPath)
	if err != nil {
		log.Fatalf("can not read configration: %s", err)
	}

	{
		// restart (by supervisor) with fresh config when the file changes
		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), *configPath)
		if err != nil {
			log.Fatalf("can not watch configration: %s", err)
		}
		defer cancel()
		context.AfterFunc(ctx, func() {
			log.Println("config file is updated. quit to restart server.")
			graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := e.Shutdown(graceful); err != nil {
				log.Printf("error on shutdown by config update: %s", err)
			}
		})
	}

	api, err := root("/api")
	if err != nil {
		log.Fatalf("api root /api is invalid url or path: %s", err)
	}

	// get dbaccesor
	ctx := context.Background()
	db, err := getDBAccesor(ctx, conf.DBURI, conf.SchemaRepository)
	if err != nil {
		log.Fatalf("can not connect to database: %s", err.Error())
	}
	defer db.Close()

	if conf.SchemaRepository != "" {
		sctx, cancel := db.Schema().Context(ctx)
		defer cancel()
		context.AfterFunc(sctx, func() {
			log.Println("database schema is outdated. quit to restart server.")
			graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := e.Shutdown(graceful); err != nil {
				log.Printf("error on shutdown by schema update: %s", err)
			}
		})
	}

	// handlers
	{
		e.POST(api("experiments"), handlers.RegisterExperimentHandler(db.Experiment()))
		e.GET(api("experiments/:name/"), handlers.GetExperimentHandler(db.Experiment()))
	}

	{
		e.POST(api("runs"), handlers.RegisterRunHandler(db.Experiment(), db.Run()))
		e.GET(api("runs/:ref/"), handlers.GetRunHandler(db.Run()))

		e.PUT(api("runs/:runId/trainingtime"), handlers.SetTrainingTimeHandler(db.Run(), "runId"))

		e.POST(api("runs/:runId/metrics"), handlers.LogMetricHandler(db.Run(), "runId"))
		e.GET(api("runs/:runId/metrics"), handlers.GetMetricsHandler(db.Run(), "runId"))

		e.POST(api("runs/:runId/hyperparameters"), handlers.LogHyperParameterHandler(db.Run(), "runId"))

		e.PUT(api("runs/:runId/confusionmatrix"), handlers.PutConfusionMatrixHandler(db.Evaluation(), "runId"))
		e.GET(api("runs/:runId/confusionmatrix"), handlers.GetConfusionMatrixHandler(db.Evaluation(), "runId"))

		e.POST(api("runs/:runId/data"), handlers.LogDataHandler(db.Dataset(), "runId"))
		e.GET(api("runs/:runId/data"), handlers.GetDataSchemaHandler(db.Dataset(), "runId"))
	}

	{
		e.DELETE(
			api("admin/records"),
			handlers.CleanupRecordsHandler(db.Garbage()),
			auth.Middleware([]byte(conf.AdminTokenKey)),
		)
	}

	log.Println("registred routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	cert, key := *pcert, *pkey
	if cert != "" && key != "" {
		e.Logger.Fatal(e.StartTLS(":"+conf.ServerPort, cert, key))
	} else {
		e.Logger.Fatal(e.Start(":" + conf.ServerPort))
	}
}

func getDBAccesor(ctx context.Context, dburi string, schemaRepository string) (kdb.TrackDatabase, error) {
	options := []kpg.Option{}
	if schemaRepository != "" {
		options = append(options, kpg.WithSchemaRepository(schemaRepository))
	}
	return kpg.New(ctx, dburi, options...)
}

// create api URL factory
//
// args:
//   - root: api root
//
// return:
// - func: it receive relative path from root, and returns full-path of URL.
func root(r string) (func(...string) string, error) {
	//    when r is https://example.org:8080/api/root/path
	origin := "" // https://example.org:8080/ . "/" terminated. if r is path only, this is empty.
	base := ""   // /api/root/path
	{
		b, err := url.Parse(r)
		if err != nil {
			return nil, err
		}
		base = b.Path
		if b.Host != "" || b.Scheme != "" {
			_r := *b
			r := &_r
			r.RawPath = ""
			r.Path = ""
			r.RawQuery = ""
			r.Fragment = ""
			origin = r.String()
		}
	}
	origin = kstrings.SuppySuffix(origin, "/")

	return func(s ...string) string {
		parts := make([]string, len(s)+1)
		parts[0] = base
		copy(parts[1:], s)
		path := path.Join(parts...)
		path = kstrings.TrimPrefixAll(path, "/")

		return kstrings.SuppySuffix(origin+path, "/")
	}, nil
}
