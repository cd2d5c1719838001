package router

import (
	app "github.com/hirestack/jobboard-api/internal/application"
	"github.com/hirestack/jobboard-api/internal/container"
	pginfra "github.com/hirestack/jobboard-api/internal/infrastructure/postgres"
	handlers "github.com/hirestack/jobboard-api/internal/interface/http"
	"github.com/hirestack/jobboard-api/internal/router/modules"
)

func buildAuthModule() Module {
	cfg := container.GetConfig()
	svc := &app.UserService{
		Repo:          pginfra.NewUserRepository(container.GetPGPool()),
		JWT:           container.GetJWT(),
		Redis:         container.GetRedis(),
		ResetTokenTTL: cfg.ResetTokenTTL,
		ResetURLBase:  cfg.ResetPasswordURL,
		GCS:           container.GetGCS(),
		GCSBucket:     cfg.GCSBucket,
		Pub:           container.GetRabbitPub(),
		MailEnabled:   cfg.MailSendEnabled,
		Logger:        container.GetLogger(),
	}
	h := handlers.NewAuthHandler(svc, container.GetLogger())
	return modules.NewAuthModule(h, container.GetJWT())
}

func buildJobModule() Module {
	cfg := container.GetConfig()
	svc := &app.JobService{
		Repo:        pginfra.NewJobRepository(container.GetPGPool()),
		ES:          container.GetES(),
		ESJobsIndex: cfg.ESJobsIndex,
		Logger:      container.GetLogger(),
	}
	h := handlers.NewJobHandler(svc, container.GetLogger())
	return modules.NewJobModule(h)
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	r.Add(buildAuthModule())
	r.Add(buildJobModule())
}
