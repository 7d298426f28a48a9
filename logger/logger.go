// Copyright (C) 2025 Justin Grote
//
// This file is part of PIMFast.
//
// PIMFast is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PIMFast is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package logger provides the application logger: a logr.Logger backed by
// zerolog, writing human-readable console output or structured JSON.
package logger

import (
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/rs/zerolog"

	"github.com/JustinGrote/PIMFast/config"
)

func GetLogger() (*logr.Logger, error) {
	var writers []io.Writer

	if config.JsonLogs.Value() {
		writers = append(writers, os.Stderr)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if logFile := config.LogFile.Value(); logFile != "" {
		file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		writers = append(writers, file)
	}

	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	logger := logr.New(&zerologSink{logger: &zl, verbosity: config.Verbosity.Value()})
	return &logger, nil
}
