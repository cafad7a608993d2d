package pkg

import (
	"fmt"

	"Audio-Viewer/internal/app/config"
	"Audio-Viewer/internal/app/handler"
	"Audio-Viewer/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// App собирает конфигурацию, роутер и репозиторий в одно приложение
type App struct {
	cfg    *config.Config
	router *gin.Engine
	repo   *repository.Repository
}

func NewApp(cfg *config.Config, router *gin.Engine, repo *repository.Repository) *App {
	return &App{
		cfg:    cfg,
		router: router,
		repo:   repo,
	}
}

// RunApp регистрирует обработчики и запускает HTTP сервер
func (a *App) RunApp() {
	handler.RegisterHandlers(a.router, a.repo)

	addr := fmt.Sprintf("%s:%d", a.cfg.ServiceHost, a.cfg.ServicePort)
	logrus.Infof("Server started on %s", addr)

	if err := a.router.Run(addr); err != nil {
		logrus.Fatalf("error running server: %v", err)
	}
}
