package logic

// Config holds the timing constants of the timer. All values are milliseconds
// except TimeScale.
type Config struct {
	// LongPress is the hold that enters or leaves configuration.
	LongPress uint32
	// MediumPress is the hold that, once released, toggles the active field.
	MediumPress uint32
	// ConfigTimeout returns to the countdown after this long without input.
	ConfigTimeout uint32
	// IdleTimeout switches the countdown to the idle animation.
	IdleTimeout uint32
	// FeedbackPulse is the length of the flash after a countdown reset.
	FeedbackPulse uint32
	// CursorBlink is the half-period of the configuration field cursor.
	CursorBlink uint32
	// CountDownPeriod and ConfigPeriod are frame intervals.
	CountDownPeriod uint32
	ConfigPeriod    uint32
	// TimeScale speeds up countdown time; 1 is realtime.
	TimeScale uint32
}

// DefaultConfig returns the timing of the reference device.
func DefaultConfig() Config {
	return Config{
		LongPress:       seconds(3),
		MediumPress:     seconds(2),
		ConfigTimeout:   seconds(10),
		IdleTimeout:     minutes(10),
		FeedbackPulse:   192,
		CursorBlink:     500,
		CountDownPeriod: 8, // 125 fps
		ConfigPeriod:    8,
		TimeScale:       1,
	}
}
