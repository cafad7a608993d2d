package main

import (
	"Audio-Viewer/internal/app/config"
	"Audio-Viewer/internal/app/repository"
	"Audio-Viewer/internal/pkg"

	_ "Audio-Viewer/docs"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title Parquet Audio Viewer API
// @version 1.0
// @description Web service for browsing audio datasets stored in parquet files

// @contact.name API Support
// @contact.url http://localhost:8080

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @tag.name Datasets
// @tag.description Loaded parquet datasets
// @tag.name Records
// @tag.description Paginated dataset records with transcript filtering
func main() {
	router := gin.Default()

	// Загружаем конфигурацию
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	// Инициализируем репозиторий: датасеты читаются здесь, один раз,
	// до того как сервер начнет принимать запросы
	repo, err := repository.NewRepository(conf)
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}

	// Создаем приложение с конфигурацией
	application := pkg.NewApp(conf, router, repo)

	// Запускаем приложение
	application.RunApp()
}
