// Package template generates starter COBOL documents.
package template

import (
	"context"
	"strings"
	"time"

	"cobbler/internal/clock"
	"cobbler/internal/gitutil"
)

// DocumentName is the file name used when none is given.
const DocumentName = "HelloWorld.cob"

const (
	commentIndent = "      "  // comment indicator lands in column 7
	areaA         = "       " // statements start in column 8
)

// HelloWorld returns a fixed-format hello world program. Every line,
// including the last, ends with sep.
func HelloWorld(author string, written time.Time, sep string) string {
	lines := []string{
		commentIndent + "* Auto generated hello world file ",
		areaA + "IDENTIFICATION DIVISION. ",
		areaA + "PROGRAM-ID. HELLO-WORLD. ",
		areaA + "AUTHOR. " + author,
		areaA + "DATE-WRITTEN. " + clock.DateWritten(written),
		areaA + "ENVIRONMENT DIVISION. ",
		areaA + "DATA DIVISION. ",
		areaA + "WORKING-STORAGE SECTION. ",
		"",
		areaA + `01 MyName PIC X(30) VALUE "` + author + `.".`,
		"",
		areaA + `DISPLAY "Hello, " MyName. `,
		"",
		areaA + "STOP RUN. ",
	}

	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteString(sep)
	}
	return sb.String()
}

// Generate builds the hello world program for the current user and date.
// An unknown author is left blank rather than failing.
func Generate(ctx context.Context, clk clock.Clock, sep string) string {
	author, _ := gitutil.AuthorName(ctx)
	return HelloWorld(author, clk.Now(), sep)
}
