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

// RecordDetailResponse представляет детальный вид записи с полным транскриптом
type RecordDetailResponse struct {
	Index           int     `json:"index"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Transcript      string  `json:"transcript"`
	SamplingRate    int64   `json:"sampling_rate"`
	SourcePath      string  `json:"source_path"`
	AudioURL        string  `json:"audio_url"`
	AudioSizeBytes  int64   `json:"audio_size_bytes"`
}

// GetDatasets godoc
// @Summary Get datasets list
// @Description Get list of loaded parquet datasets
// @Tags Datasets
// @Produce json
// @Success 200 {array} ds.DatasetInfo
// @Router /datasets [get]
func (h *DatasetHandler) GetDatasets(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.repo.Datasets())
}

// GetRecords godoc
// @Summary Get dataset records
// @Description Get paginated records of a dataset with optional transcript filtering
// @Tags Records
// @Produce json
// @Param filename path string true "Dataset file name"
// @Param page_index query int false "Zero-based page index"
// @Param page_size query int false "Page size"
// @Param filter query string false "Case-insensitive transcript substring filter"
// @Success 200 {object} ds.PaginatedRecordsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /datasets/{filename}/records [get]
func (h *DatasetHandler) GetRecords(ctx *gin.Context) {
	filename := ctx.Param("filename")

	pageIndex := 0
	if indexStr := ctx.Query("page_index"); indexStr != "" {
		parsed, err := strconv.Atoi(indexStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page_index parameter"})
			return
		}
		pageIndex = parsed
	}

	pageSize := h.repo.DefaultPageSize()
	if sizeStr := ctx.Query("page_size"); sizeStr != "" {
		parsed, err := strconv.Atoi(sizeStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page_size parameter"})
			return
		}
		pageSize = parsed
	}

	filter := ctx.Query("filter")

	result, err := h.repo.GetRecords(filename, ds.PageRequest{
		PageIndex: pageIndex,
		PageSize:  pageSize,
		Filter:    filter,
	})
	if err != nil {
		switch {
		case errors.Is(err, dataset.ErrDatasetNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Dataset not found"})
		case errors.Is(err, dataset.ErrInvalidRequest):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logrus.Error("Failed to get records: ", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get records"})
		}
		return
	}

	response := ds.PaginatedRecordsResponse{
		Data:       result.Items,
		Pagination: result.Pagination,
	}
	if filter != "" {
		response.Filters = &ds.RecordFiltersInfo{Filter: filter}
	}

	ctx.JSON(http.StatusOK, response)
}

// GetRecord godoc
// @Summary Get record details
// @Description Get one record with the full transcript and audio metadata
// @Tags Records
// @Produce json
// @Param filename path string true "Dataset file name"
// @Param index path int true "Record index"
// @Success 200 {object} RecordDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /datasets/{filename}/records/{index} [get]
func (h *DatasetHandler) GetRecord(ctx *gin.Context) {
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

	rec, ok := d.Record(index)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	ctx.JSON(http.StatusOK, RecordDetailResponse{
		Index:           rec.Index,
		Duration:        dataset.FormatDuration(rec.DurationSeconds),
		DurationSeconds: rec.DurationSeconds,
		Transcript:      rec.Transcript,
		SamplingRate:    rec.SamplingRate,
		SourcePath:      rec.SourcePath,
		AudioURL:        fmt.Sprintf("/audio/%s/%d", url.PathEscape(filename), rec.Index),
		AudioSizeBytes:  int64(len(rec.Audio)),
	})
}

// ArchiveDataset godoc
// @Summary Archive dataset clips
// @Description Upload all audio clips of a dataset to the MinIO bucket
// @Tags Datasets
// @Produce json
// @Param filename path string true "Dataset file name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /datasets/{filename}/archive [post]
func (h *DatasetHandler) ArchiveDataset(ctx *gin.Context) {
	filename := ctx.Param("filename")

	uploaded, err := h.repo.ArchiveDataset(ctx.Request.Context(), filename)
	if err != nil {
		switch {
		case errors.Is(err, dataset.ErrDatasetNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Dataset not found"})
		case errors.Is(err, repository.ErrArchiveUnavailable):
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Archive storage is not configured"})
		default:
			logrus.Error("Failed to archive dataset: ", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive dataset"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Dataset archived successfully", "objects": uploaded})
}
