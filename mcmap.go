/*
Package mcmap is a library for converting Minecraft map item files into PNG
images.
*/
package mcmap

import (
	"github.com/sirupsen/logrus"
)

// Converter converts map files, reporting progress and failures to its logger
type Converter struct {
	logger *logrus.Logger
}

// New returns a Converter that logs to logger
func New(logger *logrus.Logger) *Converter {
	return &Converter{
		logger: logger,
	}
}
