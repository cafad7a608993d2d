// internal/app/ds/records.go
package ds

import (
	"bytes"
	"io"
)

// AudioRecord представляет одну строку датасета
type AudioRecord struct {
	Index           int
	Audio           []byte
	SamplingRate    int64
	SourcePath      string
	DurationSeconds float64
	Transcript      string
}

// RenderedRecord представляет строку, подготовленную для отображения
type RenderedRecord struct {
	Index             int    `json:"index"`
	Duration          string `json:"duration"`
	TranscriptPreview string `json:"transcript_preview"`
	PreviewTruncated  bool   `json:"preview_truncated"`

	audio      []byte
	transcript string
}

// NewRenderedRecord собирает отображаемую запись без копирования аудио
func NewRenderedRecord(index int, duration, preview string, truncated bool, audio []byte, transcript string) RenderedRecord {
	return RenderedRecord{
		Index:             index,
		Duration:          duration,
		TranscriptPreview: preview,
		PreviewTruncated:  truncated,
		audio:             audio,
		transcript:        transcript,
	}
}

// Transcript возвращает полный текст транскрипта
func (r RenderedRecord) Transcript() string {
	return r.transcript
}

// AudioStream возвращает поток аудио байт с поддержкой Seek
func (r RenderedRecord) AudioStream() io.ReadSeeker {
	return bytes.NewReader(r.audio)
}

// AudioSize возвращает размер аудио в байтах
func (r RenderedRecord) AudioSize() int64 {
	return int64(len(r.audio))
}
