package handler

import (
	"embed"
	"html/template"

	"Audio-Viewer/internal/app/repository"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:embed templates/*.html
var templatesFS embed.FS

// RegisterHandlers регистрирует все обработчики
func RegisterHandlers(router *gin.Engine, repo *repository.Repository) {
	tmpl := template.Must(template.ParseFS(templatesFS, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)

	// Создаем хендлеры
	datasetHandler := NewDatasetHandler(repo)

	// HTML страницы просмотра датасетов
	router.GET("/", datasetHandler.ListDatasets)
	router.GET("/view/:filename", datasetHandler.ViewDataset)
	router.GET("/audio/:filename/:index", datasetHandler.ServeAudio)

	// JSON API
	apiRouter := router.Group("/api")
	{
		apiRouter.GET("/datasets", datasetHandler.GetDatasets)
		apiRouter.GET("/datasets/:filename/records", datasetHandler.GetRecords)
		apiRouter.GET("/datasets/:filename/records/:index", datasetHandler.GetRecord)
		apiRouter.POST("/datasets/:filename/archive", datasetHandler.ArchiveDataset)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
