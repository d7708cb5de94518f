package passmeter

import (
	"math"
	"strconv"
)

// Attacker models, in guesses per second, from a throttled web login to
// offline cracking of fast hashes.
const (
	onlineThrottledPerSecond   = 100.0 / 3600.0
	onlineUnthrottledPerSecond = 10.0
	offlineSlowHashPerSecond   = 1e4
	offlineFastHashPerSecond   = 1e10
)

func (e *Estimator) estimateAttackTimes(guesses float64) (CrackTimes, CrackTimesDisplay) {
	seconds := CrackTimes{
		OnlineThrottling100PerHour:   guesses / onlineThrottledPerSecond,
		OnlineNoThrottling10PerSec:   guesses / onlineUnthrottledPerSecond,
		OfflineSlowHashing1e4PerSec:  guesses / offlineSlowHashPerSecond,
		OfflineFastHashing1e10PerSec: guesses / offlineFastHashPerSecond,
	}
	display := CrackTimesDisplay{
		OnlineThrottling100PerHour:   displayTime(seconds.OnlineThrottling100PerHour),
		OnlineNoThrottling10PerSec:   displayTime(seconds.OnlineNoThrottling10PerSec),
		OfflineSlowHashing1e4PerSec:  displayTime(seconds.OfflineSlowHashing1e4PerSec),
		OfflineFastHashing1e10PerSec: displayTime(seconds.OfflineFastHashing1e10PerSec),
	}
	return seconds, display
}

const (
	minuteSeconds  = 60
	hourSeconds    = minuteSeconds * 60
	daySeconds     = hourSeconds * 24
	monthSeconds   = daySeconds * 31
	yearSeconds    = monthSeconds * 12
	centurySeconds = yearSeconds * 100
)

// displayTime humanizes a crack time in seconds. Buckets and wording are
// a fixed catalog so results stay identical across platforms.
func displayTime(seconds float64) string {
	switch {
	case seconds < 1:
		return "less than a second"
	case seconds < minuteSeconds:
		return pluralize(math.Round(seconds), "second")
	case seconds < hourSeconds:
		return pluralize(math.Round(seconds/minuteSeconds), "minute")
	case seconds < daySeconds:
		return pluralize(math.Round(seconds/hourSeconds), "hour")
	case seconds < monthSeconds:
		return pluralize(math.Round(seconds/daySeconds), "day")
	case seconds < yearSeconds:
		return pluralize(math.Round(seconds/monthSeconds), "month")
	case seconds < centurySeconds:
		return pluralize(math.Round(seconds/yearSeconds), "year")
	default:
		return "centuries"
	}
}

func pluralize(value float64, unit string) string {
	display := strconv.FormatFloat(value, 'f', -1, 64) + " " + unit
	if value != 1 {
		display += "s"
	}
	return display
}
