// Command square-timer runs the five-square countdown timer on an APA102
// strip with a single push-button, or in a terminal simulator.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/peterbourgon/ff/v3"

	"github.com/sweeney/square-timer/internal/gpio"
	"github.com/sweeney/square-timer/internal/logic"
	"github.com/sweeney/square-timer/internal/settings"
	"github.com/sweeney/square-timer/internal/status"
	"github.com/sweeney/square-timer/internal/strip"
)

type options struct {
	poll       time.Duration
	debounce   time.Duration
	heartbeat  time.Duration
	chip       string
	pin        int
	spi        string
	store      string
	sim        bool
	timeScale  uint
	printState bool
}

func main() {
	fs := flag.NewFlagSet("square-timer", flag.ExitOnError)
	var o options
	fs.DurationVar(&o.poll, "poll", time.Millisecond, "Loop tick interval")
	fs.DurationVar(&o.debounce, "debounce", gpio.DefaultDebounce*time.Millisecond, "Button debounce window")
	fs.DurationVar(&o.heartbeat, "heartbeat", 15*time.Minute, "Status log interval (0 to disable)")
	fs.StringVar(&o.chip, "chip", gpio.DefaultChip, "GPIO chip of the button")
	fs.IntVar(&o.pin, "pin", gpio.DefaultPin, "BCM pin number of the button")
	fs.StringVar(&o.spi, "spi", "", "SPI port of the APA102 strip (empty selects the first port)")
	fs.StringVar(&o.store, "store", "/var/lib/square-timer/settings.bin", "Settings file")
	fs.BoolVar(&o.sim, "sim", false, "Run in the terminal: space toggles the button, q quits")
	fs.UintVar(&o.timeScale, "time-scale", 1, "Countdown speed multiplier (1 is realtime)")
	fs.BoolVar(&o.printState, "print-state", false, "Print stored settings and button state and exit")

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("SQUARE_TIMER")); err != nil {
		log.Fatalf("fatal: %v", err)
	}

	if err := run(o); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(o options) error {
	if err := logic.ValidateIntervals(logic.Squares[:]); err != nil {
		return fmt.Errorf("interval table: %w", err)
	}

	var (
		reader gpio.Reader
		out    strip.Strip
		quit   <-chan struct{}
	)

	if o.sim {
		sim, err := openSim()
		if err != nil {
			return err
		}
		defer sim.restore()
		reader, out, quit = sim.keys, sim.strip, sim.keys.Quit()
	} else {
		r, err := gpio.NewRealReader(o.chip, o.pin)
		if err != nil {
			return fmt.Errorf("init gpio: %w", err)
		}
		reader = r
	}
	defer reader.Close()

	store := settings.NewFileStore(o.store)

	// Print state mode
	if o.printState {
		return printState(reader, store)
	}

	if out == nil {
		s, err := strip.NewAPA102Strip(o.spi)
		if err != nil {
			return fmt.Errorf("init strip: %w", err)
		}
		out = s
	}
	defer out.Close()

	if err := out.Clear(); err != nil {
		log.Printf("failed to clear strip: %v", err)
	}

	adapter := settings.NewAdapter(store, out)
	current := adapter.Load()

	cfg := logic.DefaultConfig()
	cfg.TimeScale = uint32(o.timeScale)

	start := time.Now()
	now := func() uint32 { return millisSince(start, time.Now()) }

	timer := logic.NewTimer(cfg, current, rand.New(rand.NewSource(start.UnixNano())), now())
	button := gpio.NewButton(reader, uint32(o.debounce.Milliseconds()))

	tracker := status.NewTracker(start, status.Config{
		PollMs:      o.poll.Milliseconds(),
		DebounceMs:  o.debounce.Milliseconds(),
		HeartbeatMs: o.heartbeat.Milliseconds(),
		TimeScale:   cfg.TimeScale,
		Store:       o.store,
		Sim:         o.sim,
	})
	tracker.Update(timer.Mode(), timer.Field(), timer.Settings())

	log.Printf("started: poll=%v debounce=%v heartbeat=%v pin=%d spi=%q store=%s sim=%v time-scale=%d brightness=%d pattern=%s",
		o.poll, o.debounce, o.heartbeat, o.pin, o.spi, o.store, o.sim, cfg.TimeScale,
		current.BrightnessLevel(), logic.Patterns[current.Pattern].Name)
	log.Printf("status: %s", status.FormatStatusEvent(tracker.Snapshot(), "STARTUP", ""))

	ticker := time.NewTicker(o.poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(button, timer, out, adapter, tracker, uint32(o.heartbeat.Milliseconds()), now, ticker.C, sigCh, quit)
}

// poller is the button as the loop drives it: sampled once per tick, then
// queried by the timer.
type poller interface {
	logic.Button
	Poll(now uint32) error
}

// runLoop drives the timer once per tick. tracker may be nil; a heartbeat of
// 0 disables the periodic status line.
func runLoop(button poller, timer *logic.Timer, out strip.Strip, adapter *settings.Adapter, tracker *status.Tracker, heartbeat uint32, now func() uint32, tick <-chan time.Time, sig <-chan os.Signal, quit <-chan struct{}) error {
	buttonErr := faultLog{name: "button"}
	stripErr := faultLog{name: "strip"}

	var lastBeat uint32
	beatPrimed := false

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			shutdown(out, tracker, s.String())
			return nil

		case <-quit:
			log.Printf("quit requested, shutting down")
			shutdown(out, tracker, "quit")
			return nil

		case <-tick:
			t := now()

			// A failed poll reports no edges, so the timer still runs.
			buttonErr.report(button.Poll(t))

			for _, ev := range timer.Process(button, t) {
				log.Printf("event: %s", describeEvent(ev))
				if tracker != nil {
					tracker.Record(ev)
				}
				if err := adapter.Apply(ev); err != nil {
					log.Printf("settings error: %v", err)
				}
			}

			if frame, ok := timer.Render(t); ok {
				out.SetFrame(frame)
				stripErr.report(out.Show())
			}

			if tracker == nil {
				continue
			}
			tracker.Update(timer.Mode(), timer.Field(), timer.Settings())

			if !beatPrimed {
				lastBeat, beatPrimed = t, true
			} else if heartbeat > 0 && logic.Elapsed(t, lastBeat) >= heartbeat {
				lastBeat = t
				log.Printf("status: %s", status.FormatStatusEvent(tracker.Snapshot(), "HEARTBEAT", ""))
			}
		}
	}
}

func shutdown(out strip.Strip, tracker *status.Tracker, reason string) {
	if err := out.Clear(); err != nil {
		log.Printf("failed to clear strip: %v", err)
	}
	if tracker != nil {
		log.Printf("status: %s", status.FormatStatusEvent(tracker.Snapshot(), "SHUTDOWN", reason))
	}
}

// faultLog logs the first error of a run of failures and the recovery,
// instead of one line per tick.
type faultLog struct {
	name    string
	failing bool
}

func (f *faultLog) report(err error) {
	if err == nil {
		if f.failing {
			log.Printf("%s recovered", f.name)
			f.failing = false
		}
		return
	}
	if !f.failing {
		log.Printf("%s error: %v", f.name, err)
		f.failing = true
	}
}

func describeEvent(ev logic.Event) string {
	switch ev.Type {
	case logic.EventModeChanged:
		return fmt.Sprintf("%s %s -> %s at %dms", ev.Type, ev.From, ev.To, ev.Time)
	case logic.EventFieldChanged:
		return fmt.Sprintf("%s field=%s", ev.Type, ev.Field)
	case logic.EventBrightnessChanged:
		return fmt.Sprintf("%s index=%d level=%d", ev.Type, ev.Value, logic.Settings{Brightness: ev.Value}.BrightnessLevel())
	case logic.EventPatternChanged:
		return fmt.Sprintf("%s index=%d name=%s", ev.Type, ev.Value, logic.Patterns[int(ev.Value)%len(logic.Patterns)].Name)
	}
	return string(ev.Type)
}

// millisSince samples the monotonic clock as a wrapping 32-bit millisecond
// counter.
func millisSince(start, now time.Time) uint32 {
	return uint32(now.Sub(start).Milliseconds())
}

func printState(reader gpio.Reader, store settings.Store) error {
	pressed, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read gpio: %w", err)
	}
	b, err := store.ReadSlot(settings.SlotBrightness)
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	p, err := store.ReadSlot(settings.SlotPattern)
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	fmt.Printf("brightness: %d, pattern: %d, button: %s\n", b, p, stateString(pressed))
	return nil
}

func stateString(pressed bool) string {
	if pressed {
		return "PRESSED"
	}
	return "RELEASED"
}
