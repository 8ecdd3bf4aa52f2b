package utils

import (
	"fmt"
	"time"
)

// Clock supplies the timestamp recorded on each observation.
type Clock interface {
	Now() time.Time
}

// LocalClock localizes wall-clock time to a fixed zone so stored timestamps
// match the deployment's region regardless of the server's TZ setting.
type LocalClock struct {
	loc *time.Location
}

func NewLocalClock(zone string) (*LocalClock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", zone, err)
	}
	return &LocalClock{loc: loc}, nil
}

func (c *LocalClock) Now() time.Time {
	return time.Now().In(c.loc)
}
