package gateway

import "time"

//go:generate mockgen -destination=mock/mock_time_provider.go -package=mockgateway -source=time_provider.go

type TimeProvider interface {
	Now() time.Time
}

// UTCTimeProvider reads the wall clock in UTC
type UTCTimeProvider struct{}

func (UTCTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

func timeProviderOrDefault(tp TimeProvider) TimeProvider {
	if tp == nil {
		return UTCTimeProvider{}
	}
	return tp
}
