// internal/app/dataset/dataset.go
package dataset

import (
	"time"

	"Audio-Viewer/internal/app/ds"
)

// Dataset представляет неизменяемый набор записей одного parquet-файла.
// После загрузки данные только читаются, поэтому Dataset можно безопасно
// разделять между обработчиками без блокировок.
type Dataset struct {
	name     string
	records  []ds.AudioRecord
	loadedAt time.Time
}

// New создает датасет из готового набора записей
func New(name string, records []ds.AudioRecord) *Dataset {
	return &Dataset{
		name:     name,
		records:  records,
		loadedAt: time.Now(),
	}
}

// Name возвращает имя файла датасета
func (d *Dataset) Name() string {
	return d.name
}

// Len возвращает количество строк
func (d *Dataset) Len() int {
	return len(d.records)
}

// Record возвращает строку по индексу
func (d *Dataset) Record(i int) (ds.AudioRecord, bool) {
	if i < 0 || i >= len(d.records) {
		return ds.AudioRecord{}, false
	}
	return d.records[i], true
}

// LoadedAt возвращает время загрузки датасета
func (d *Dataset) LoadedAt() time.Time {
	return d.loadedAt
}
