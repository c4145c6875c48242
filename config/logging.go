package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
	return log
}

func NewValidator() *validator.Validate {
	return validator.New()
}
