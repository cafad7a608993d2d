package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"Audio-Viewer/internal/app/dataset"
	"Audio-Viewer/internal/app/ds"
	"Audio-Viewer/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DatasetHandler struct {
	repo *repository.Repository
}

func NewDatasetHandler(repo *repository.Repository) *DatasetHandler {
	return &DatasetHandler{
		repo: repo,
	}
}

// rowView представляет строку таблицы для шаблона
type rowView struct {
	Index    int
	AudioSrc string
	Duration string
	Preview  string
}

// pageLink представляет ссылку пагинации для шаблона
type pageLink struct {
	Number int
	URL    string
	Active bool
}

// ListDatasets отдает HTML список загруженных датасетов
func (h *DatasetHandler) ListDatasets(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "list.html", gin.H{
		"Datasets": h.repo.Datasets(),
	})
}

// ViewDataset отдает HTML таблицу записей датасета с пагинацией и фильтром.
// Страницы в URL нумеруются с единицы, движок работает с нулевым индексом
func (h *DatasetHandler) ViewDataset(ctx *gin.Context) {
	filename := ctx.Param("filename")

	page := 1
	if pageStr := ctx.Query("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil {
			ctx.String(http.StatusBadRequest, "Invalid page parameter")
			return
		}
		page = parsed
	}

	pageSize := h.repo.DefaultPageSize()
	if sizeStr := ctx.Query("page_size"); sizeStr != "" {
		parsed, err := strconv.Atoi(sizeStr)
		if err != nil {
			ctx.String(http.StatusBadRequest, "Invalid page_size parameter")
			return
		}
		pageSize = parsed
	}

	filter := ctx.Query("filter")

	result, err := h.repo.GetRecords(filename, ds.PageRequest{
		PageIndex: page - 1,
		PageSize:  pageSize,
		Filter:    filter,
	})
	if err != nil {
		switch {
		case errors.Is(err, dataset.ErrDatasetNotFound):
			ctx.String(http.StatusNotFound, "File not found")
		case errors.Is(err, dataset.ErrInvalidRequest):
			ctx.String(http.StatusBadRequest, err.Error())
		default:
			logrus.Error("Failed to get records: ", err)
			ctx.String(http.StatusInternalServerError, "Failed to get records")
		}
		return
	}

	rows := make([]rowView, len(result.Items))
	for i, item := range result.Items {
		rows[i] = rowView{
			Index:    item.Index,
			AudioSrc: fmt.Sprintf("/audio/%s/%d", url.PathEscape(filename), item.Index),
			Duration: item.Duration,
			Preview:  item.TranscriptPreview,
		}
	}

	pages := make([]pageLink, 0, result.Pagination.TotalPages)
	for i := 1; i <= result.Pagination.TotalPages; i++ {
		pages = append(pages, pageLink{
			Number: i,
			URL:    viewURL(filename, i, pageSize, filter),
			Active: i == page,
		})
	}

	ctx.HTML(http.StatusOK, "view.html", gin.H{
		"Filename": filename,
		"Rows":     rows,
		"Pages":    pages,
		"Filter":   filter,
		"Total":    result.Pagination.TotalMatching,
	})
}

// ServeAudio отдает WAV байты записи с поддержкой Range запросов,
// чтобы плеер в браузере мог перематывать
func (h *DatasetHandler) ServeAudio(ctx *gin.Context) {
	filename := ctx.Param("filename")

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record index"})
		return
	}

	d, err := h.repo.Dataset(filename)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Dataset not found"})
		return
	}

	rec, err := h.repo.GetRecord(filename, index)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	ctx.Header("Content-Type", "audio/wav")
	http.ServeContent(ctx.Writer, ctx.Request, fmt.Sprintf("%d.wav", index), d.LoadedAt(), rec.AudioStream())
}

func viewURL(filename string, page, pageSize int, filter string) string {
	u := fmt.Sprintf("/view/%s?page=%d&page_size=%d", url.PathEscape(filename), page, pageSize)
	if filter != "" {
		u += "&filter=" + url.QueryEscape(filter)
	}
	return u
}
