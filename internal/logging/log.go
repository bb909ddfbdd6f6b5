/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logging sets up the single standard logger shared by all engine
// packages. The log level is controlled through config.LogLevel so it can
// be changed at startup via config file or command line flag.
package logging

import (
	"os"

	. "github.com/op/go-logging"

	"github.com/samnelson/topas/internal/config"
)

var stdLog *Logger

var levelByNumber = map[int]Level{
	-1: CRITICAL - 1, // "off": below CRITICAL, so no record ever fires
	0:  CRITICAL,
	1:  ERROR,
	2:  WARNING,
	3:  NOTICE,
	4:  INFO,
	5:  DEBUG,
}

// GetLog returns the shared standard logger, creating it on first use and
// applying the current config.LogLevel. Later calls refresh the level so a
// logger obtained before config.Setup() ran still reflects cmd line or
// config file overrides applied afterwards.
func GetLog() *Logger {
	if stdLog == nil {
		stdLog = MustGetLogger("topas")
		backend := NewLogBackend(os.Stdout, "", 0)
		format := MustStringFormatter(
			`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
		)
		backendFormatter := NewBackendFormatter(backend, format)
		leveled := AddModuleLevel(backendFormatter)
		SetBackend(leveled)
	}
	SetLevel(levelFor(config.LogLevel), "")
	return stdLog
}

var testLog *Logger

// GetTestLog returns the logger used by unit tests. It shares the backend of
// the standard logger; its level follows config.TestLogLevel.
func GetTestLog() *Logger {
	GetLog()
	if testLog == nil {
		testLog = MustGetLogger("test")
	}
	SetLevel(levelFor(config.TestLogLevel), "test")
	return testLog
}

func levelFor(n int) Level {
	if lvl, found := levelByNumber[n]; found {
		return lvl
	}
	return DEBUG
}
