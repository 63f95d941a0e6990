package shared

type QuotaCounters struct {
	Current int32
	Max     int32
}
