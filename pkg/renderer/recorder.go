package renderer

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

// Manifest describes a render bundle's layout so tooling can locate the
// event and frame streams without guessing filenames.
type Manifest struct {
	Version    int    `json:"version"`
	CreatedAt  string `json:"created_at"`
	Scene      string `json:"scene"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	EventsPath string `json:"events_path"`
	FramesPath string `json:"frames_path"`
}

// Event is one line in the recorder's event journal
type Event struct {
	Timestamp string `json:"ts"`
	Kind      string `json:"kind"`
	RowsDone  int    `json:"rows_done,omitempty"`
	ElapsedMs int64  `json:"elapsed_ms,omitempty"`
}

// Recorder streams render progress to disk: a snappy-compressed JSON-lines
// event journal plus zstd-compressed raw framebuffer snapshots. A bundle
// directory holds both streams and a manifest.
type Recorder struct {
	mu          sync.Mutex
	dir         string
	start       time.Time
	eventFile   *os.File
	eventStream *snappy.Writer
	frameFile   *os.File
	frameStream *zstd.Encoder
	frames      uint32
}

// NewRecorder creates a render bundle directory under root and opens the
// compressed sinks. The caller must Close the recorder to flush them.
func NewRecorder(root, sceneName string, width, height int) (*Recorder, error) {
	if root == "" {
		return nil, fmt.Errorf("recorder root must be provided")
	}
	created := time.Now().UTC()
	dir := filepath.Join(root, fmt.Sprintf("render-%s", created.Format("20060102T150405Z")))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	eventsPath := filepath.Join(dir, "events.jsonl.sz")
	framesPath := filepath.Join(dir, "frames.bin.zst")

	eventFile, err := os.Create(eventsPath)
	if err != nil {
		return nil, err
	}
	frameFile, err := os.Create(framesPath)
	if err != nil {
		eventFile.Close()
		return nil, err
	}
	frameStream, err := zstd.NewWriter(frameFile)
	if err != nil {
		eventFile.Close()
		frameFile.Close()
		return nil, err
	}

	manifest := Manifest{
		Version:    1,
		CreatedAt:  created.Format(time.RFC3339),
		Scene:      sceneName,
		Width:      width,
		Height:     height,
		EventsPath: "events.jsonl.sz",
		FramesPath: "frames.bin.zst",
	}
	manifestData, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		eventFile.Close()
		frameFile.Close()
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), manifestData, 0o644); err != nil {
		eventFile.Close()
		frameFile.Close()
		return nil, err
	}

	return &Recorder{
		dir:         dir,
		start:       time.Now(),
		eventFile:   eventFile,
		eventStream: snappy.NewBufferedWriter(eventFile),
		frameFile:   frameFile,
		frameStream: frameStream,
	}, nil
}

// Dir returns the bundle directory path
func (r *Recorder) Dir() string {
	return r.dir
}

// RecordEvent appends one JSON line to the event journal
func (r *Recorder) RecordEvent(kind string, rowsDone int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event := Event{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Kind:      kind,
		RowsDone:  rowsDone,
		ElapsedMs: time.Since(r.start).Milliseconds(),
	}
	line, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := r.eventStream.Write(append(line, '\n')); err != nil {
		return err
	}
	return nil
}

// RecordFrame appends a raw framebuffer snapshot to the frame stream:
// a frame index and dimensions as little-endian uint32 headers, then the
// pixels as float64 triples in row-major order.
func (r *Recorder) RecordFrame(fb *Framebuffer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	header := []uint32{r.frames, uint32(fb.Width), uint32(fb.Height)}
	if err := binary.Write(r.frameStream, binary.LittleEndian, header); err != nil {
		return err
	}
	for _, p := range fb.Pixels {
		if err := binary.Write(r.frameStream, binary.LittleEndian, [3]float64{p.X, p.Y, p.Z}); err != nil {
			return err
		}
	}
	r.frames++
	return nil
}

// Close flushes and closes both streams
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	if err := r.eventStream.Close(); err != nil {
		firstErr = err
	}
	if err := r.eventFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := r.frameStream.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := r.frameFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
