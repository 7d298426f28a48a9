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

package logger

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/rs/zerolog"
)

// zerologSink adapts zerolog to the logr.LogSink interface. logr V-levels
// above zero map to zerolog's debug level.
type zerologSink struct {
	logger    *zerolog.Logger
	name      string
	verbosity int
	values    []interface{}
}

func (s *zerologSink) Init(info logr.RuntimeInfo) {}

func (s *zerologSink) Enabled(level int) bool {
	return level <= s.verbosity
}

func (s *zerologSink) Info(level int, msg string, keysAndValues ...interface{}) {
	if !s.Enabled(level) {
		return
	}

	var event *zerolog.Event
	if level > 0 {
		event = s.logger.Debug()
	} else {
		event = s.logger.Info()
	}
	s.write(event, msg, keysAndValues)
}

func (s *zerologSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.write(s.logger.Error().Err(err), msg, keysAndValues)
}

func (s *zerologSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	clone := *s
	clone.values = append(append([]interface{}{}, s.values...), keysAndValues...)
	return &clone
}

func (s *zerologSink) WithName(name string) logr.LogSink {
	clone := *s
	if clone.name == "" {
		clone.name = name
	} else {
		clone.name = clone.name + "/" + name
	}
	return &clone
}

func (s *zerologSink) write(event *zerolog.Event, msg string, keysAndValues []interface{}) {
	if s.name != "" {
		event = event.Str("logger", s.name)
	}
	event = appendFields(event, s.values)
	event = appendFields(event, keysAndValues)
	event.Msg(msg)
}

func appendFields(event *zerolog.Event, keysAndValues []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keysAndValues[i])
		}
		event = event.Interface(key, keysAndValues[i+1])
	}
	return event
}
