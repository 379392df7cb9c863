package app

import (
	"context"
	"log"
	"time"

	"github.com/ayusman/mudra/internal/detector"
)

// runPipeline is the main translation loop that processes frames from the
// camera. It manages the state transitions between idle and active modes
// based on motion detection.
//
// Pipeline logic:
// 1. Start in idle mode (IdleFPS=5)
// 2. On motion detected, switch to active mode (ActiveFPS=15)
// 3. Run hand detection and pick the first reported hand
// 4. Feed the hand's landmarks through the translator with the measured dt
// 5. Record confirmed signs in the event log and notify the UI
// 6. After 2s no motion, switch back to idle mode and abandon the hold
func (a *App) runPipeline(stopCh chan struct{}) {
	// Track whether we're in active mode
	activeMode := false

	// Track the last motion detection time
	lastMotionTime := time.Now()

	// Timestamp of the previous translated frame, zero when no frame has
	// been fed to the translator since the last idle transition
	var lastFrameTime time.Time

	// Frame interval based on current FPS
	frameInterval := time.Second / time.Duration(IdleFPS)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			// Skip processing if recognition is disabled
			if !a.IsEnabled() {
				continue
			}

			// Read a frame from the camera
			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			// Step 1: Motion detection
			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				// Switch to active mode if not already
				if !activeMode {
					activeMode = true
					a.camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				// Check if we should switch back to idle mode
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.camera.SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					a.translator.Reset()
					lastFrameTime = time.Time{}
					log.Println("Switched to idle mode")
				}
			}

			d := a.Detector()

			// Skip further processing if not in active mode or no detector
			if !activeMode || d == nil {
				frame.Close()
				continue
			}

			// Step 2: Hand detection
			hands, err := d.Detect(frame)
			frame.Close() // Done with the frame

			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			// Step 3: Translate using the first reported hand
			now := time.Now()
			dt := frameInterval
			if !lastFrameTime.IsZero() {
				dt = now.Sub(lastFrameTime)
			}
			lastFrameTime = now

			var points []detector.Point3D
			if hand := detector.FirstHand(hands); hand != nil {
				points = hand.Points[:]
			}

			confirmed, ok, err := a.translator.ProcessFrame(points, dt)
			if err != nil {
				log.Printf("Rejected frame: %v", err)
				continue
			}
			if !ok {
				continue
			}

			log.Printf("Confirmed sign: %s", confirmed)

			// Step 4: Record the confirmation and notify listeners
			if a.config.Store != nil {
				if err := a.config.Store.Events().Record(string(confirmed)); err != nil {
					log.Printf("Failed to record sign event: %v", err)
				}
			}
			if a.onSign != nil {
				a.onSign(confirmed)
			}
			if a.speakOnConfirm && a.speaker != nil {
				go func(text string) {
					if err := a.speaker.Speak(context.Background(), text); err != nil {
						log.Printf("Failed to speak sign: %v", err)
					}
				}(string(confirmed))
			}
		}
	}
}
