package domain

// FILETIME values count 100-nanosecond ticks since 1601-01-01 UTC.
// The Unix epoch sits a fixed number of ticks later.
const (
	filetimeUnixEpoch   = 116444736000000000
	filetimeTicksPerMs  = 10000
	filetimeUnavailable = ^uint64(0)
)

// FiletimeToUnixMilli converts a raw FILETIME tick count to Unix
// milliseconds. 0 and the all-ones sentinel both mean the transport
// reported no date and convert to 0.
func FiletimeToUnixMilli(ticks uint64) int64 {
	if ticks == 0 || ticks == filetimeUnavailable {
		return 0
	}
	return (int64(ticks) - filetimeUnixEpoch) / filetimeTicksPerMs
}

// UnixMilliToFiletime is the inverse of FiletimeToUnixMilli.
func UnixMilliToFiletime(ms int64) uint64 {
	return uint64(ms*filetimeTicksPerMs + filetimeUnixEpoch)
}
