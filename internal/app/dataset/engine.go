// internal/app/dataset/engine.go
package dataset

import (
	"fmt"
	"strings"

	"Audio-Viewer/internal/app/ds"
)

// Engine выполняет фильтрацию, пагинацию и проекцию записей.
// Все методы чистые: состояние датасета не меняется, блокировки не нужны.
type Engine struct {
	maxPageSize   int
	previewLength int
}

// NewEngine создает движок с настроенными лимитами
func NewEngine(maxPageSize, previewLength int) *Engine {
	return &Engine{
		maxPageSize:   maxPageSize,
		previewLength: previewLength,
	}
}

// Query возвращает страницу записей, прошедших фильтр.
// Фильтр - это регистронезависимый поиск подстроки по транскрипту.
// Страница за пределами данных - не ошибка: возвращается пустой список
// с корректным total_matching, чтобы навигация "вперед" не ломалась в конце.
func (e *Engine) Query(d *Dataset, req ds.PageRequest) (ds.PageResult, error) {
	if req.PageSize <= 0 {
		return ds.PageResult{}, invalidRequestf("page_size must be positive, got %d", req.PageSize)
	}
	if req.PageSize > e.maxPageSize {
		return ds.PageResult{}, invalidRequestf("page_size %d exceeds maximum %d", req.PageSize, e.maxPageSize)
	}
	if req.PageIndex < 0 {
		return ds.PageResult{}, invalidRequestf("page_index must be non-negative, got %d", req.PageIndex)
	}

	// Один линейный проход: датасет неизменяемый и целиком в памяти,
	// индекс здесь не окупается
	filter := strings.ToLower(req.Filter)
	matched := make([]ds.AudioRecord, 0, req.PageSize)
	total := 0
	start := req.PageIndex * req.PageSize
	end := start + req.PageSize

	for i := 0; i < d.Len(); i++ {
		rec, _ := d.Record(i)
		if filter != "" && !strings.Contains(strings.ToLower(rec.Transcript), filter) {
			continue
		}
		if total >= start && total < end {
			matched = append(matched, rec)
		}
		total++
	}

	items := make([]ds.RenderedRecord, len(matched))
	for i, rec := range matched {
		items[i] = e.Project(rec)
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + req.PageSize - 1) / req.PageSize
	}

	return ds.PageResult{
		Items: items,
		Pagination: ds.PaginationInfo{
			PageIndex:     req.PageIndex,
			PageSize:      req.PageSize,
			TotalMatching: total,
			TotalPages:    totalPages,
		},
	}, nil
}

// Project преобразует сырую запись в отображаемую форму.
// Аудио байты не копируются и не перекодируются: запись хранит ссылку
// на исходный срез и отдает его потоком только при обращении.
func (e *Engine) Project(rec ds.AudioRecord) ds.RenderedRecord {
	preview, truncated := TruncateTranscript(rec.Transcript, e.previewLength)
	return ds.NewRenderedRecord(
		rec.Index,
		FormatDuration(rec.DurationSeconds),
		preview,
		truncated,
		rec.Audio,
		rec.Transcript,
	)
}

// FormatDuration форматирует секунды как mm:ss.mmm с усечением до миллисекунд.
// Эпсилон компенсирует двоичное представление: 3599.999 должно давать
// 59:59.999, а не 59:59.998
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalMs := int64(seconds*1000 + 1e-6)

	minutes := totalMs / 60000
	secs := (totalMs % 60000) / 1000
	millis := totalMs % 1000

	return fmt.Sprintf("%02d:%02d.%03d", minutes, secs, millis)
}

// TruncateTranscript возвращает превью транскрипта и признак усечения.
// Срез по рунам, чтобы не резать многобайтовые символы
func TruncateTranscript(transcript string, limit int) (string, bool) {
	if limit <= 0 {
		return transcript, false
	}
	runes := []rune(transcript)
	if len(runes) <= limit {
		return transcript, false
	}
	return string(runes[:limit]) + "…", true
}
