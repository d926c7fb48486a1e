package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/tracer"
)

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string  `json:"scene"`   // Scene name (e.g. "default")
	Width   int     `json:"width"`   // Image width
	Height  int     `json:"height"`  // Image height
	FOV     float64 `json:"fov"`     // Vertical field of view in degrees
	Depth   int     `json:"depth"`   // Maximum recursion depth
	Workers int     `json:"workers"` // Render worker count
}

// ProgressUpdate represents a single progressive update sent to the client
type ProgressUpdate struct {
	RowsDone   int    `json:"rowsDone"`
	TotalRows  int    `json:"totalRows"`
	ImageData  string `json:"imageData"` // Base64 encoded PNG
	IsComplete bool   `json:"isComplete"`
	ElapsedMs  int64  `json:"elapsedMs"`
}

// Start starts the web server
func (s *Server) Start() error {
	// Serve static files
	http.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/health", s.handleHealth)
	http.HandleFunc("/api/scenes", s.handleScenes)
	http.HandleFunc("/ws/render", s.handleRenderWS)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode([]string{"default", "mirrors"})
}

// handleRender handles progressive rendering requests with SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	err = s.renderProgressive(req, func(update ProgressUpdate) error {
		return s.sendSSEUpdate(w, update)
	})
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Render error: %v", err))
		return
	}

	s.sendSSEEvent(w, "complete", "Rendering completed")
}

// handleRenderWS streams the same progressive updates over a websocket
func (s *Server) handleRenderWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	defer conn.Close()

	req, err := parseRenderRequest(r)
	if err != nil {
		conn.WriteJSON(map[string]string{"error": err.Error()})
		return
	}

	err = s.renderProgressive(req, func(update ProgressUpdate) error {
		return conn.WriteJSON(update)
	})
	if err != nil {
		conn.WriteJSON(map[string]string{"error": err.Error()})
		return
	}

	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "render complete"))
}

// renderProgressive runs a render and pushes an update to send after every
// completed row band, then a final update with the finished image.
func (s *Server) renderProgressive(req *RenderRequest, send func(ProgressUpdate) error) error {
	sceneObj := createScene(req.Scene)
	if sceneObj == nil {
		return fmt.Errorf("unknown scene: %s", req.Scene)
	}

	config := tracer.DefaultConfig()
	config.MaxDepth = req.Depth

	camera := renderer.NewCamera(req.Width, req.Height, req.FOV*math.Pi/180)
	rend := renderer.NewRenderer(sceneObj, camera, config, log.Default())

	startTime := time.Now()
	var sendErr error
	fb := rend.RenderParallel(req.Workers, func(partial *renderer.Framebuffer, rowsDone int) {
		if sendErr != nil {
			return
		}
		imageData, err := framebufferToBase64PNG(partial)
		if err != nil {
			sendErr = err
			return
		}
		sendErr = send(ProgressUpdate{
			RowsDone:  rowsDone,
			TotalRows: req.Height,
			ImageData: imageData,
			ElapsedMs: time.Since(startTime).Milliseconds(),
		})
	})
	if sendErr != nil {
		return sendErr
	}

	imageData, err := framebufferToBase64PNG(fb)
	if err != nil {
		return err
	}
	return send(ProgressUpdate{
		RowsDone:   req.Height,
		TotalRows:  req.Height,
		ImageData:  imageData,
		IsComplete: true,
		ElapsedMs:  time.Since(startTime).Milliseconds(),
	})
}

// parseRenderRequest parses request parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if sceneName := r.URL.Query().Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 400, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 300, 16, 2000); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(r.URL.Query(), "depth", 4, 0, 16); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(r.URL.Query(), "workers", 4, 1, 64); err != nil {
		return nil, err
	}
	if req.FOV, err = parseFloatParam(r.URL.Query(), "fov", 60, 10, 170); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, minVal, maxVal int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < minVal || parsed > maxVal {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, minVal, maxVal, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, minVal, maxVal float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < minVal || parsed > maxVal {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, minVal, maxVal, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene creates a scene based on the scene name
func createScene(sceneName string) *scene.Scene {
	switch sceneName {
	case "default":
		return scene.NewDefaultScene()
	case "mirrors":
		return scene.NewMirrorScene()
	default:
		return nil
	}
}

// framebufferToBase64PNG converts a framebuffer to base64-encoded PNG
func framebufferToBase64PNG(fb *renderer.Framebuffer) (string, error) {
	var buf bytes.Buffer
	if err := fb.WritePNG(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// sendSSEUpdate sends a progress update via SSE
func (s *Server) sendSSEUpdate(w http.ResponseWriter, update ProgressUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return s.sendSSEEvent(w, "progress", string(data))
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) {
	s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent writes a single SSE event and flushes it to the client
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}
