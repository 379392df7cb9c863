// Package app provides the main application logic for the Mudra sign translation system.
package app

import (
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/sign"
	"github.com/ayusman/mudra/internal/speech"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/translate"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active translation.
	ActiveFPS = 15
	// IdleTimeoutMs is the time in milliseconds to wait before switching back to idle mode.
	IdleTimeoutMs = 2000
)

// Setting keys persisted in the store.
const (
	SettingHoldDurationMs = "hold_duration_ms"
	SettingSpeakOnConfirm = "speak_on_confirm"
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	CameraID     int
	MotionThresh float64
	HoldDuration time.Duration
}

// App orchestrates the capture-detect-translate pipeline.
type App struct {
	config         Config
	camera         capture.Camera
	motion         *capture.MotionDetector
	detector       detector.Detector
	translator     *translate.Translator
	speaker        speech.Speaker
	speakOnConfirm bool
	enabled        bool
	mu             sync.RWMutex
	stopCh         chan struct{}
	onSign         func(sign.Symbol)
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	hold := config.HoldDuration
	if hold <= 0 {
		hold = loadHoldDuration(config.Store)
	}

	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		motion:     capture.NewMotionDetector(motionThreshold),
		translator: translate.New(translate.Config{HoldDuration: hold}),
		enabled:    false,
		stopCh:     nil,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	// Speech is optional; translation works without an engine
	if sp, err := speech.NewCommandSpeaker(); err == nil {
		a.speaker = sp
	} else {
		log.Printf("Speech not available: %v", err)
	}

	if config.Store != nil {
		if v, err := config.Store.Settings().Get(SettingSpeakOnConfirm); err == nil {
			a.speakOnConfirm = v == "true"
		}
	}

	return a
}

// loadHoldDuration reads the persisted hold duration, falling back to the
// built-in default when unset or invalid.
func loadHoldDuration(s *store.Store) time.Duration {
	if s == nil {
		return sign.DefaultHoldDuration
	}

	value, err := s.Settings().Get(SettingHoldDurationMs)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("Failed to load hold duration setting: %v", err)
		}
		return sign.DefaultHoldDuration
	}

	ms, err := strconv.Atoi(value)
	if err != nil || ms <= 0 {
		log.Printf("Ignoring invalid hold duration setting %q", value)
		return sign.DefaultHoldDuration
	}

	return time.Duration(ms) * time.Millisecond
}

// SetEnabled enables or disables sign recognition. Disabling abandons any
// in-progress hold but keeps the session text.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.enabled && !enabled {
		a.translator.Reset()
	}
	a.enabled = enabled
}

// IsEnabled returns whether sign recognition is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// OnSign registers a callback invoked whenever a sign is confirmed, e.g.
// to update the tray. Must be set before Start.
func (a *App) OnSign(fn func(sign.Symbol)) {
	a.onSign = fn
}

// Start begins the translation pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	// Open the camera
	if err := a.camera.Open(); err != nil {
		return err
	}

	// Set initial FPS to idle mode
	a.camera.SetFPS(IdleFPS)

	// Create stop channel and start the pipeline
	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Translation pipeline started")
	return nil
}

// Stop halts the translation pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Signal the pipeline to stop
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	// Close the camera
	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	// Close motion detector
	a.motion.Close()

	// Close the hand detector if set
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Translation pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// Translator returns the translator driving the live session.
func (a *App) Translator() *translate.Translator {
	return a.translator
}

// Speaker returns the speech engine, or nil when none is available.
func (a *App) Speaker() speech.Speaker {
	return a.speaker
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}
