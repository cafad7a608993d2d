// internal/app/repository/repository.go
package repository

import (
	"sort"

	"Audio-Viewer/internal/app/config"
	"Audio-Viewer/internal/app/dataset"
	"Audio-Viewer/internal/app/ds"

	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

type Repository struct {
	cfg         *config.Config
	datasets    map[string]*dataset.Dataset
	engine      *dataset.Engine
	minioClient *minio.Client
}

func NewRepository(cfg *config.Config) (*Repository, error) {
	// Загружаем все датасеты один раз до старта сервера.
	// Дальше они неизменяемы и читаются обработчиками без блокировок
	datasets, err := dataset.LoadFolder(cfg.DatasetFolder)
	if err != nil {
		return nil, err
	}

	// Инициализируем MinIO клиент (нужен только для архивации клипов)
	var minioClient *minio.Client
	if cfg.MinioEnabled {
		minioClient, err = InitMinIOClient(cfg)
		if err != nil {
			logrus.Warnf("Failed to initialize MinIO client: %v", err)
			// Продолжаем без MinIO, но логируем предупреждение
			minioClient = nil
		}
	}

	repo := &Repository{
		cfg:         cfg,
		datasets:    datasets,
		engine:      dataset.NewEngine(cfg.MaxPageSize, cfg.PreviewLength),
		minioClient: minioClient,
	}

	return repo, nil
}

// DefaultPageSize возвращает размер страницы по умолчанию
func (r *Repository) DefaultPageSize() int {
	return r.cfg.DefaultPageSize
}

// Datasets возвращает сводки по загруженным датасетам в алфавитном порядке
func (r *Repository) Datasets() []ds.DatasetInfo {
	infos := make([]ds.DatasetInfo, 0, len(r.datasets))
	for name, d := range r.datasets {
		infos = append(infos, ds.DatasetInfo{
			Name:     name,
			Rows:     d.Len(),
			LoadedAt: d.LoadedAt(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Dataset возвращает датасет по имени файла
func (r *Repository) Dataset(name string) (*dataset.Dataset, error) {
	d, ok := r.datasets[name]
	if !ok {
		return nil, dataset.ErrDatasetNotFound
	}
	return d, nil
}

// GetRecords возвращает страницу записей датасета
func (r *Repository) GetRecords(name string, req ds.PageRequest) (ds.PageResult, error) {
	d, err := r.Dataset(name)
	if err != nil {
		return ds.PageResult{}, err
	}
	return r.engine.Query(d, req)
}

// GetRecord возвращает одну запись в отображаемой форме
func (r *Repository) GetRecord(name string, index int) (ds.RenderedRecord, error) {
	d, err := r.Dataset(name)
	if err != nil {
		return ds.RenderedRecord{}, err
	}
	rec, ok := d.Record(index)
	if !ok {
		return ds.RenderedRecord{}, dataset.ErrRecordNotFound
	}
	return r.engine.Project(rec), nil
}
