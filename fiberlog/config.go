package fiberlog

import "github.com/sirupsen/logrus"

// Config настройки журналирования запросов
type Config struct {
	Logger *logrus.Logger
	Tags   []string
	// SkipPaths запросы по этим путям не журналируются
	SkipPaths []string
	// MaxBodySize тела больше этого размера не пишутся в лог
	MaxBodySize int
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		TagUserID,
	},
	MaxBodySize: defaultMaxBodySize,
}
