package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ventbreak/audio"
	"github.com/lixenwraith/ventbreak/core"
	"github.com/lixenwraith/ventbreak/event"
	"github.com/lixenwraith/ventbreak/sequence"
	"github.com/lixenwraith/ventbreak/vmath"
)

const logDir = "log"

var (
	configFlag = flag.String("config", "", "Path to a YAML vent tuning file")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	debugFlag  = flag.Bool("debug", false, "Write debug log to ./log/")
)

// grate is the orientation store the sequence drives
type grate struct {
	orientation vmath.Euler
}

func (g *grate) Orientation() vmath.Euler     { return g.orientation }
func (g *grate) SetOrientation(e vmath.Euler) { g.orientation = e }

// player receives the control handoff at completion
type player struct {
	state core.PlayerState
}

func (p *player) SetPlayerState(s core.PlayerState) {
	p.state = s
	log.Printf("[sandbox] player state -> %s", s)
}

// notificationLog keeps the last few break notifications for the HUD
type notificationLog struct {
	lines []string
}

func (n *notificationLog) HandleEvent(ev event.GameEvent) {
	var line string
	switch ev.Type {
	case event.EventBreakStarted:
		p := ev.Payload.(*event.BreakStartedPayload)
		line = fmt.Sprintf("started: X %.0f° -> %.0f°", p.Initial.X, p.Target.X)
	case event.EventBreakCompleted:
		p := ev.Payload.(*event.BreakCompletedPayload)
		line = fmt.Sprintf("completed: resting at X %.0f°", p.Final.X)
	default:
		return
	}
	n.lines = append(n.lines, line)
	if len(n.lines) > 5 {
		n.lines = n.lines[len(n.lines)-5:]
	}
}

func (n *notificationLog) EventTypes() []event.EventType {
	return []event.EventType{event.EventBreakStarted, event.EventBreakCompleted}
}

func setupLogging(enabled bool) *os.File {
	if !enabled {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	path := filepath.Join(logDir, fmt.Sprintf("vent-sandbox-%d.log", time.Now().Unix()))
	f, err := os.Create(path)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVENT-SANDBOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	// Tuning: defaults, or a YAML override file
	cfg := sequence.DefaultConfig()
	if *configFlag != "" {
		loaded, err := sequence.LoadConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Audio: degrade silently when no device is available
	audioCfg := audio.LoadAudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		fmt.Printf("Audio initialization failed: %v (continuing without audio)\n", err)
	}
	defer sound.Cleanup()

	// Event plumbing: queue for inbound triggers, router for everything
	queue := event.NewQueue()
	router := event.NewRouter(queue)

	vent := &grate{}
	ply := &player{state: core.PlayerLocked}
	notes := &notificationLog{}
	router.Register(notes)

	seq, err := sequence.New(cfg, vent, sound, ply, router)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sequence: %v\n", err)
		os.Exit(1)
	}
	router.Register(seq)

	// Terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	// Input runs on its own goroutine; triggers cross into the frame
	// loop through the MPSC queue, exactly like engine input would
	inputCh := make(chan *tcell.EventKey, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			switch tev := ev.(type) {
			case *tcell.EventKey:
				inputCh <- tev
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	last := time.Now()
	running := true
	for running {
		select {
		case kev := <-inputCh:
			switch kev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				running = false
			case tcell.KeyEnter:
				queue.Push(event.GameEvent{
					Type:      event.EventBreakRequest,
					Payload:   &event.BreakRequestPayload{Source: event.TriggerInteract},
					Timestamp: time.Now(),
				})
			case tcell.KeyRune:
				switch kev.Rune() {
				case ' ', 'e':
					queue.Push(event.GameEvent{
						Type:      event.EventBreakRequest,
						Payload:   &event.BreakRequestPayload{Source: event.TriggerInteract},
						Timestamp: time.Now(),
					})
				case 'c':
					queue.Push(event.GameEvent{
						Type:      event.EventBreakRequest,
						Payload:   &event.BreakRequestPayload{Source: event.TriggerContact},
						Timestamp: time.Now(),
					})
				case 'm':
					sound.ToggleMute()
				case 'q':
					running = false
				}
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			router.DispatchAll()
			seq.Update(dt)
			draw(screen, vent, seq, ply, notes, sound.IsMuted())
		}
	}
}

func draw(screen tcell.Screen, vent *grate, seq *sequence.BreakSequence, ply *player, notes *notificationLog, muted bool) {
	screen.Clear()
	w, h := screen.Size()

	frameStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	grateStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver).Bold(true)
	hudStyle := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	noteStyle := tcell.StyleDefault.Foreground(tcell.ColorOlive)

	// Duct opening, side view: hinge at top, grate swings down-open
	hingeX := w / 2
	hingeY := h/2 - 6
	if hingeY < 2 {
		hingeY = 2
	}

	// Duct frame
	for dy := 0; dy <= 12 && hingeY+dy < h; dy++ {
		screen.SetContent(hingeX-14, hingeY+dy, '│', nil, frameStyle)
	}
	for dx := -14; dx <= 1; dx++ {
		screen.SetContent(hingeX+dx, hingeY-1, '─', nil, frameStyle)
	}
	screen.SetContent(hingeX, hingeY, '◉', nil, grateStyle) // hinge pin

	// Grate: a bar of cells rotated by the X angle. 0° hangs across the
	// opening; negative swings it toward the viewer and down
	angle := vent.Orientation().X * math.Pi / 180
	const grateLen = 11.0
	for r := 1.0; r <= grateLen; r += 0.5 {
		// Terminal cells are ~2x taller than wide; stretch x to compensate
		x := hingeX + int(math.Round(-2*r*math.Sin(angle)*0.5))
		y := hingeY + int(math.Round(r*math.Cos(angle)))
		if x >= 0 && x < w && y >= 0 && y < h {
			screen.SetContent(x, y, '▓', nil, grateStyle)
		}
	}

	// HUD
	hud := []string{
		fmt.Sprintf("phase: %-10s  angle X: %6.1f°", seq.Phase(), vent.Orientation().X),
		fmt.Sprintf("player: %-10s audio: %s", ply.state, audioLabel(muted)),
		"",
		"[space/e/enter] interact  [c] contact  [m] mute  [q/esc] quit",
	}
	for i, line := range hud {
		drawText(screen, 2, 1+i, hudStyle, line)
	}

	// Notification trail
	for i, line := range notes.lines {
		drawText(screen, 2, h-2-len(notes.lines)+i, noteStyle, line)
	}

	screen.Show()
}

func audioLabel(muted bool) string {
	if muted {
		return "muted"
	}
	return "on"
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
