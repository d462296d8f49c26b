// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Process-wide, read-once debug trace switch (spec.md §6 "Debug switch",
// §9 "Global debug flag" design note). When YAMLRUST_DEBUG is set in the
// environment, the scanner logs one line per emitted token to stderr.

package libyaml

import (
	"log"
	"os"
	"sync"
)

var (
	debugOnce   sync.Once
	debugLogger *log.Logger
)

func debugEnabled() bool {
	debugOnce.Do(func() {
		if os.Getenv("YAMLRUST_DEBUG") != "" {
			debugLogger = log.New(os.Stderr, "yaml: ", log.Lmsgprefix)
		}
	})
	return debugLogger != nil
}

func traceToken(token *Token) {
	if !debugEnabled() {
		return
	}
	debugLogger.Printf("token %s at %s", token.Type, token.StartMark)
}
