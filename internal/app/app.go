package app

import (
	"context"
	"fmt"

	"github.com/gfdmit/blogdesk/config"
	"github.com/gfdmit/blogdesk/internal/auth"
	v1 "github.com/gfdmit/blogdesk/internal/handlers/http/v1"
	"github.com/gfdmit/blogdesk/internal/httpserver"
	"github.com/gfdmit/blogdesk/internal/repository/postgres"
	"github.com/gfdmit/blogdesk/internal/service"
)

func Run(conf *config.Config) error {
	ctx := context.Background()

	repo, err := postgres.New(conf.Postgres)
	if err != nil {
		return fmt.Errorf("error when setting up repository: %v", err)
	}

	tokens := auth.NewTokenManager(conf.Auth.Secret, conf.Auth.TTL)
	svc := service.New(repo, tokens)
	router := v1.New(svc, tokens, conf.CORS)

	server := httpserver.New(conf.HTTPServer, router)

	return server.Run(ctx)
}
