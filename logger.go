package kex

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

func init() {
	// set level from env
	if x, exists := os.LookupEnv("LOG"); exists {
		if level, err := logrus.ParseLevel(x); err == nil {
			Logger.SetLevel(level)
		}
	}
}
