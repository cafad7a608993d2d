package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"Audio-Viewer/internal/app/config"
	"Audio-Viewer/internal/app/ds"
	"Audio-Viewer/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/parquet-go/parquet-go"
)

type testRow struct {
	Audio struct {
		Bytes        []byte `parquet:"bytes"`
		Path         string `parquet:"path"`
		SamplingRate int64  `parquet:"sampling_rate"`
	} `parquet:"audio"`
	Duration      float64 `parquet:"duration"`
	Transcription string  `parquet:"transcription"`
}

var testTranscripts = []string{
	"The cat sat on the mat",
	"Weather report for tomorrow",
	"Catalog of recordings",
}

func testAudio(i int) []byte {
	return []byte{0x52, 0x49, 0x46, 0x46, byte(i), 1, 2, 3}
}

func writeTestParquet(t *testing.T, path string) {
	t.Helper()

	rows := make([]testRow, len(testTranscripts))
	for i := range rows {
		rows[i].Audio.Bytes = testAudio(i)
		rows[i].Audio.Path = "clip.wav"
		rows[i].Audio.SamplingRate = 16000
		rows[i].Duration = float64(i) + 0.5
		rows[i].Transcription = testTranscripts[i]
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	w := parquet.NewGenericWriter[testRow](f)
	if _, err := w.Write(rows); err != nil {
		t.Fatalf("failed to write rows: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	writeTestParquet(t, filepath.Join(dir, "speech.parquet"))

	cfg := &config.Config{
		DatasetFolder:   dir,
		DefaultPageSize: 10,
		MaxPageSize:     100,
		PreviewLength:   120,
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		t.Fatalf("failed to initialize repository: %v", err)
	}

	router := gin.New()
	RegisterHandlers(router, repo)
	return router
}

func perform(router *gin.Engine, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListDatasetsPage(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "speech.parquet") {
		t.Error("list page does not mention the loaded dataset")
	}
}

func TestViewDatasetPage(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/view/speech.parquet", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "The cat sat on the mat") {
		t.Error("view page does not contain the transcript")
	}
	if !strings.Contains(body, "/audio/speech.parquet/0") {
		t.Error("view page does not link the audio endpoint")
	}
	if !strings.Contains(body, "00:00.500") {
		t.Error("view page does not contain the formatted duration")
	}
}

func TestViewDatasetFiltered(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/view/speech.parquet?filter=cat", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "2 matching records") {
		t.Error("filtered view should report 2 matching records")
	}
	if strings.Contains(body, "Weather report") {
		t.Error("filtered view should not contain non-matching transcripts")
	}
}

func TestViewDatasetNotFound(t *testing.T) {
	router := newTestRouter(t)

	if w := perform(router, http.MethodGet, "/view/absent.parquet", nil); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestViewDatasetInvalidPageSize(t *testing.T) {
	router := newTestRouter(t)

	if w := perform(router, http.MethodGet, "/view/speech.parquet?page_size=0", nil); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetDatasetsAPI(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/api/datasets", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var infos []ds.DatasetInfo
	if err := json.Unmarshal(w.Body.Bytes(), &infos); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(infos) != 1 || infos[0].Name != "speech.parquet" || infos[0].Rows != 3 {
		t.Errorf("unexpected datasets response: %+v", infos)
	}
}

func TestGetRecordsAPI(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/api/datasets/speech.parquet/records?filter=cat", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp ds.PaginatedRecordsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Pagination.TotalMatching != 2 {
		t.Errorf("total_matching = %d, want 2", resp.Pagination.TotalMatching)
	}
	if len(resp.Data) != 2 || resp.Data[0].Index != 0 || resp.Data[1].Index != 2 {
		t.Errorf("unexpected filtered records: %+v", resp.Data)
	}
	if resp.Filters == nil || resp.Filters.Filter != "cat" {
		t.Error("response should echo the applied filter")
	}
}

func TestGetRecordsAPIErrors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		target string
		code   int
	}{
		{"unknown dataset", "/api/datasets/absent.parquet/records", http.StatusNotFound},
		{"zero page size", "/api/datasets/speech.parquet/records?page_size=0", http.StatusBadRequest},
		{"oversized page", "/api/datasets/speech.parquet/records?page_size=101", http.StatusBadRequest},
		{"negative page index", "/api/datasets/speech.parquet/records?page_index=-1", http.StatusBadRequest},
		{"malformed page index", "/api/datasets/speech.parquet/records?page_index=abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := perform(router, http.MethodGet, tt.target, nil); w.Code != tt.code {
				t.Errorf("status = %d, want %d", w.Code, tt.code)
			}
		})
	}
}

func TestGetRecordDetailAPI(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/api/datasets/speech.parquet/records/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var detail RecordDetailResponse
	if err := json.Unmarshal(w.Body.Bytes(), &detail); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if detail.Transcript != "Weather report for tomorrow" {
		t.Errorf("transcript = %q", detail.Transcript)
	}
	if detail.Duration != "00:01.500" {
		t.Errorf("duration = %q, want 00:01.500", detail.Duration)
	}
	if detail.AudioURL != "/audio/speech.parquet/1" {
		t.Errorf("audio_url = %q", detail.AudioURL)
	}
	if detail.AudioSizeBytes != int64(len(testAudio(1))) {
		t.Errorf("audio_size_bytes = %d", detail.AudioSizeBytes)
	}

	if w := perform(router, http.MethodGet, "/api/datasets/speech.parquet/records/99", nil); w.Code != http.StatusNotFound {
		t.Errorf("status for missing record = %d, want 404", w.Code)
	}
}

func TestServeAudio(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/audio/speech.parquet/0", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "audio/wav" {
		t.Errorf("content type = %q, want audio/wav", ct)
	}
	if !bytes.Equal(w.Body.Bytes(), testAudio(0)) {
		t.Error("audio body does not match the stored bytes")
	}
}

func TestServeAudioRange(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/audio/speech.parquet/0", map[string]string{"Range": "bytes=0-3"})
	if w.Code != http.StatusPartialContent {
		t.Fatalf("status = %d, want 206", w.Code)
	}
	if !bytes.Equal(w.Body.Bytes(), testAudio(0)[:4]) {
		t.Error("partial body does not match the requested range")
	}
	if w.Header().Get("Content-Range") == "" {
		t.Error("Content-Range header is missing")
	}
}

func TestServeAudioNotFound(t *testing.T) {
	router := newTestRouter(t)

	if w := perform(router, http.MethodGet, "/audio/speech.parquet/99", nil); w.Code != http.StatusNotFound {
		t.Errorf("status for missing record = %d, want 404", w.Code)
	}
	if w := perform(router, http.MethodGet, "/audio/absent.parquet/0", nil); w.Code != http.StatusNotFound {
		t.Errorf("status for missing dataset = %d, want 404", w.Code)
	}
}

func TestArchiveWithoutMinIO(t *testing.T) {
	router := newTestRouter(t)

	if w := perform(router, http.MethodPost, "/api/datasets/speech.parquet/archive", nil); w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}
