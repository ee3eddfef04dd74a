package app

import "time"

// Timers holds the four decrementing counters spec §4.10 drives off a
// single 100ms tick: help, direct-access, search idleness, and
// window-resize debounce. Each fires once when it reaches zero; the
// loop re-arms a counter by calling its Arm* method (ArmHelp,
// ArmDaccess, ArmSearchIdle, ArmResize).
type Timers struct {
	tick time.Duration

	help       time.Duration
	daccess    time.Duration
	searchIdle time.Duration
	resize     time.Duration

	helpTotal       time.Duration
	daccessTotal    time.Duration
	searchIdleTotal time.Duration
	resizeTotal     time.Duration
}

// NewTimers builds a Timers from the configured durations, all
// initially disarmed (zero remaining).
func NewTimers(tick, help, daccess, searchIdle, resize time.Duration) *Timers {
	return &Timers{
		tick:            tick,
		helpTotal:       help,
		daccessTotal:    daccess,
		searchIdleTotal: searchIdle,
		resizeTotal:     resize,
	}
}

// Tick advances every armed counter by one tick interval, returning
// which ones just reached zero this call.
type Expired struct {
	Help, Daccess, SearchIdle, Resize bool
}

func (t *Timers) Tick() Expired {
	var e Expired
	e.Help = countDown(&t.help, t.tick)
	e.Daccess = countDown(&t.daccess, t.tick)
	e.SearchIdle = countDown(&t.searchIdle, t.tick)
	e.Resize = countDown(&t.resize, t.tick)
	return e
}

func countDown(remaining *time.Duration, tick time.Duration) bool {
	if *remaining <= 0 {
		return false
	}
	*remaining -= tick
	if *remaining <= 0 {
		*remaining = 0
		return true
	}
	return false
}

// ArmHelp/ArmDaccess/ArmSearchIdle/ArmResize (re)start a counter from
// its configured total, called whenever the corresponding activity
// happens (help shown, a digit pushed, a search buffer edited, a
// SIGWINCH observed).
func (t *Timers) ArmHelp()       { t.help = t.helpTotal }
func (t *Timers) ArmDaccess()    { t.daccess = t.daccessTotal }
func (t *Timers) ArmSearchIdle() { t.searchIdle = t.searchIdleTotal }
func (t *Timers) ArmResize()     { t.resize = t.resizeTotal }
