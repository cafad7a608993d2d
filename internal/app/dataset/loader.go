// internal/app/dataset/loader.go
package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"Audio-Viewer/internal/app/ds"

	"github.com/parquet-go/parquet-go"
	"github.com/sirupsen/logrus"
)

// rawRow описывает строку parquet-файла в формате HF audio датасета
type rawRow struct {
	Audio struct {
		Bytes        []byte `parquet:"bytes"`
		Path         string `parquet:"path"`
		SamplingRate int64  `parquet:"sampling_rate"`
	} `parquet:"audio"`
	Duration      float64 `parquet:"duration"`
	Transcription string  `parquet:"transcription"`
}

var requiredColumns = []struct {
	path []string
	name string
	kind parquet.Kind
}{
	{[]string{"audio", "bytes"}, "audio.bytes", parquet.ByteArray},
	{[]string{"duration"}, "duration", parquet.Double},
	{[]string{"transcription"}, "transcription", parquet.ByteArray},
}

// Load читает parquet-файл целиком и возвращает неизменяемый датасет.
// Схема проверяется один раз до чтения строк, дальше типы не перепроверяются.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	pf, err := parquet.OpenFile(f, st.Size())
	if err != nil {
		return nil, loadErrorf(path, "malformed parquet file: %v", err)
	}

	if err := validateSchema(pf.Schema()); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	rows, err := parquet.Read[rawRow](f, st.Size())
	if err != nil {
		return nil, loadErrorf(path, "failed to read rows: %v", err)
	}

	records := make([]ds.AudioRecord, len(rows))
	for i, row := range rows {
		records[i] = ds.AudioRecord{
			Index:           i,
			Audio:           row.Audio.Bytes,
			SamplingRate:    row.Audio.SamplingRate,
			SourcePath:      row.Audio.Path,
			DurationSeconds: row.Duration,
			Transcript:      row.Transcription,
		}
	}

	name := filepath.Base(path)
	logrus.Infof("Dataset %s loaded: %d rows", name, len(records))

	return New(name, records), nil
}

// LoadFolder загружает все parquet-файлы из папки при старте сервиса.
// Любая ошибка загрузки фатальна: сервис не стартует с частично загруженными данными.
func LoadFolder(folder string) (map[string]*Dataset, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, &LoadError{Path: folder, Err: err}
	}

	datasets := make(map[string]*Dataset)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".parquet" {
			continue
		}
		d, err := Load(filepath.Join(folder, entry.Name()))
		if err != nil {
			return nil, err
		}
		datasets[entry.Name()] = d
	}

	if len(datasets) == 0 {
		logrus.Warnf("No parquet files found in %s", folder)
	}

	return datasets, nil
}

func validateSchema(schema *parquet.Schema) error {
	for _, col := range requiredColumns {
		leaf, ok := schema.Lookup(col.path...)
		if !ok {
			return fmt.Errorf("required column %q is missing", col.name)
		}
		if kind := leaf.Node.Type().Kind(); kind != col.kind {
			return fmt.Errorf("column %q has kind %s, want %s", col.name, kind, col.kind)
		}
	}
	return nil
}
