package cmd

import (
	"fitstore/internal/config"
	"fitstore/internal/core"
	"fitstore/internal/db"
	"fitstore/internal/http/handler"
	"fitstore/internal/http/handler/middleware"
	"fitstore/internal/http/payload"
	"fitstore/internal/http/server"
	"fitstore/internal/repository"
	"fitstore/internal/session"
	"fitstore/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("fitstore", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// in-memory session registry, lost on restart
	sessions := session.NewManager()

	// core service
	fitstore := core.NewFitStore(
		logger,
		repo,
		sessions)

	// handler
	accountHlr := handler.NewAccountHandler(
		logger,
		payload.DecodeValidator{},
		fitstore)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Signup, accountHlr.HandleSignup)
	mux.HandleFunc(handler.Signin, accountHlr.HandleSignin)
	mux.HandleFunc(handler.Signout, accountHlr.HandleSignout)
	mux.HandleFunc(handler.CurrentUser, accountHlr.HandleCurrentUser)
	mux.HandleFunc(handler.SaveModel, accountHlr.HandleSaveModel)
	mux.HandleFunc(handler.ListModels, accountHlr.HandleListModels)
	mux.HandleFunc(handler.GetModel, accountHlr.HandleGetModel)
	mux.HandleFunc(handler.DeleteModel, accountHlr.HandleDeleteModel)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
