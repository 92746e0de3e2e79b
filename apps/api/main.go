package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/jmoiron/sqlx"

	echoapi "github.com/secwepemc-ed/curricula/apps/api/echo"
	"github.com/secwepemc-ed/curricula/core"
	"github.com/secwepemc-ed/curricula/core/curriculum"
	"github.com/secwepemc-ed/curricula/core/feedback"
	"github.com/secwepemc-ed/curricula/core/session"
	appfs "github.com/secwepemc-ed/curricula/fs"
	emailsvc "github.com/secwepemc-ed/curricula/services/email"
	logsvc "github.com/secwepemc-ed/curricula/services/logger"
	"github.com/secwepemc-ed/curricula/storage/content"
	"github.com/secwepemc-ed/curricula/storage/database"
	"github.com/secwepemc-ed/curricula/storage/database/inmem"
	sqlxrepos "github.com/secwepemc-ed/curricula/storage/database/sqlx"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	core.InitValidators()

	// content source: configured directory, or the embedded sample set
	contentRepo, err := newContentRepository(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("loading content: %v", err), err)
	}

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	feedbackRepo, db, err := newFeedbackRepository(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	if db != nil {
		defer db.Close()
	}

	curriculumSvc := curriculum.NewService(contentRepo)
	feedbackSvc := feedback.NewService(feedbackRepo, mailSvc, conf)
	sessions := session.NewStore()

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:          conf,
			Logger:        logger,
			CurriculumSvc: curriculumSvc,
			Sessions:      sessions,
			FeedbackSvc:   feedbackSvc,
			Content:       contentRepo,
			DB:            db,
		},
	)

	go server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func newContentRepository(conf *core.Config) (*content.Repository, error) {
	if conf.ContentDir != "" {
		return content.NewRepository(os.DirFS(conf.ContentDir), ".")
	}
	return content.NewRepository(appfs.FS, "content")
}

func newFeedbackRepository(conf *core.Config) (feedback.Repository, *sqlx.DB, error) {
	if conf.Database.Disabled {
		return inmem.NewFeedbackRepository(), nil, nil
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, nil, err
	}
	if err = database.Ping(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return sqlxrepos.NewFeedbackRepository(db), db, nil
}
