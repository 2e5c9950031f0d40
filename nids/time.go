package nids

import "github.com/retoomey/RAPIO-sub003/rtime"

// TimeFromNIDS converts a modified-Julian-date (epoch day = 1) plus
// seconds-of-day into a rtime.Time.
func TimeFromNIDS(julianDay int, secondsOfDay int) rtime.Time {
	epoch := int64(julianDay-1)*86400 + int64(secondsOfDay)
	return rtime.FromEpochSeconds(epoch, 0)
}

// NIDSFromTime is the inverse of TimeFromNIDS.
func NIDSFromTime(t rtime.Time) (julianDay int, secondsOfDay int) {
	epoch := t.EpochSeconds()
	julianDay = int(epoch/86400) + 1
	secondsOfDay = int(epoch % 86400)
	return
}
