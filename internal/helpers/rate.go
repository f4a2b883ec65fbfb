package helpers

import (
	"time"

	"golang.org/x/time/rate"
)

// OnceAMinute throttles log lines that would otherwise repeat on every invocation.
var OnceAMinute = onceAMinute()

func onceAMinute() *rate.Sometimes {
	return &rate.Sometimes{
		First:    1,
		Interval: time.Minute,
	}
}
