/*
 * Swift - A compiler frontend for the Swift programming language
 *
 * Copyright Tienex and the Swift frontend contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package pretty

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"

	"github.com/tienex/swift/ast"
	"github.com/tienex/swift/common"
	"github.com/tienex/swift/errors"
)

const errorPrefix = "error"
const excerptArrow = "--> "

func colorizeError(message string) string {
	return aurora.Colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
}

func colorizeNote(message string) string {
	return aurora.Colorize(message, aurora.CyanFg|aurora.BoldFm).String()
}

func colorizeMessage(message string) string {
	return aurora.Bold(message).String()
}

func colorizeMeta(meta string) string {
	return aurora.Blue(meta).String()
}

func FormatErrorMessage(prefix string, message string, useColor bool) string {
	if useColor {
		prefix = colorizeError(prefix)
		message = colorizeMessage(message)
	}
	return prefix + ": " + message + "\n"
}

type excerpt struct {
	startPos *ast.Position
	endPos   *ast.Position
	message  string
	isError  bool
}

func newExcerpt(obj any, message string, isError bool) *excerpt {
	excerpt := &excerpt{
		message: message,
		isError: isError,
	}
	if positioned, hasPosition := obj.(ast.HasPosition); hasPosition {
		startPos := positioned.StartPosition()
		excerpt.startPos = &startPos

		endPos := positioned.EndPosition(nil)
		excerpt.endPos = &endPos
	}
	return excerpt
}

type ErrorPrettyPrinter struct {
	writer   io.Writer
	useColor bool
}

func NewErrorPrettyPrinter(writer io.Writer, useColor bool) ErrorPrettyPrinter {
	return ErrorPrettyPrinter{
		writer:   writer,
		useColor: useColor,
	}
}

func (p ErrorPrettyPrinter) writeString(str string) error {
	_, err := p.writer.Write([]byte(str))
	return err
}

// PrettyPrintError writes a human-readable description of the given error,
// including a code excerpt when the error provides a position
// and the code of its location is available.
//
// Child errors of a parent error are each printed separately.
func (p ErrorPrettyPrinter) PrettyPrintError(
	err error,
	location common.Location,
	codes map[common.Location]string,
) error {
	i := 0
	var printError func(err error, location common.Location) error
	printError = func(err error, location common.Location) error {

		if parentErr, ok := err.(errors.ParentError); ok {
			for _, childErr := range parentErr.ChildErrors() {
				err := printError(childErr, location)
				if err != nil {
					return err
				}
			}
			return nil
		}

		if i > 0 {
			err := p.writeString("\n")
			if err != nil {
				return err
			}
		}
		i++

		return p.prettyPrintError(err, location, codes[location])
	}
	return printError(err, location)
}

func (p ErrorPrettyPrinter) prettyPrintError(
	err error,
	location common.Location,
	code string,
) error {

	var sb strings.Builder

	sb.WriteString(FormatErrorMessage(errorPrefix, err.Error(), p.useColor))

	var excerpts []*excerpt

	if positioned, hasPosition := err.(ast.HasPosition); hasPosition {
		var secondaryMessage string
		if secondaryError, ok := err.(errors.SecondaryError); ok {
			secondaryMessage = secondaryError.SecondaryError()
		}
		excerpts = append(
			excerpts,
			newExcerpt(positioned, secondaryMessage, true),
		)
	}

	if errorNotes, ok := err.(errors.ErrorNotes); ok {
		for _, note := range errorNotes.ErrorNotes() {
			excerpts = append(
				excerpts,
				newExcerpt(note, note.Message(), false),
			)
		}
	}

	sortExcerpts(excerpts)

	p.writeCodeExcerpts(&sb, excerpts, location, code)

	return p.writeString(sb.String())
}

func sortExcerpts(excerpts []*excerpt) {
	sort.Slice(excerpts, func(i, j int) bool {
		first := excerpts[i]
		second := excerpts[j]
		if first.startPos == nil || second.startPos == nil {
			return false
		}
		return first.startPos.Compare(*second.startPos) < 0
	})
}

func (p ErrorPrettyPrinter) writeCodeExcerpts(
	sb *strings.Builder,
	excerpts []*excerpt,
	location common.Location,
	code string,
) {
	if len(excerpts) == 0 || excerpts[0].startPos == nil {
		return
	}

	lines := strings.Split(code, "\n")
	lineCount := len(lines)

	maxLineNumber := 1
	for _, excerpt := range excerpts {
		if excerpt.startPos == nil {
			continue
		}
		lineNumber := excerpt.startPos.Line
		if lineNumber > maxLineNumber && lineNumber <= lineCount {
			maxLineNumber = lineNumber
		}
	}
	lineNumberWidth := len(strconv.Itoa(maxLineNumber))
	emptyLineNumbers := strings.Repeat(" ", lineNumberWidth)

	// location, e.g. ` --> test:1:2`

	startPos := excerpts[0].startPos

	sb.WriteString(emptyLineNumbers)
	p.writeMeta(sb, excerptArrow)
	sb.WriteString(fmt.Sprintf(
		"%s:%d:%d\n",
		location,
		startPos.Line,
		startPos.Column,
	))

	printedEmptyGutter := false

	for _, excerpt := range excerpts {
		if excerpt.startPos == nil ||
			excerpt.startPos.Line < 1 ||
			excerpt.startPos.Line > lineCount {

			continue
		}

		if !printedEmptyGutter {
			sb.WriteString(emptyLineNumbers)
			p.writeMeta(sb, " |\n")
			printedEmptyGutter = true
		}

		line := lines[excerpt.startPos.Line-1]

		// code line, e.g. `1 | let x = 1`

		lineNumberString := strconv.Itoa(excerpt.startPos.Line)
		sb.WriteString(strings.Repeat(" ", lineNumberWidth-len(lineNumberString)))
		p.writeMeta(sb, lineNumberString+" | ")
		sb.WriteString(line)
		sb.WriteRune('\n')

		// indicator line, e.g. `  |     ^^^`

		sb.WriteString(emptyLineNumbers)
		p.writeMeta(sb, " | ")

		for i := 0; i < excerpt.startPos.Column && i < len(line); i++ {
			if line[i] == '\t' {
				sb.WriteRune('\t')
			} else {
				sb.WriteRune(' ')
			}
		}

		indicatorLength := 1
		if excerpt.endPos != nil &&
			excerpt.endPos.Line == excerpt.startPos.Line &&
			excerpt.endPos.Column > excerpt.startPos.Column {

			indicatorLength = excerpt.endPos.Column - excerpt.startPos.Column + 1
		}

		indicatorChar := "-"
		colorize := colorizeNote
		if excerpt.isError {
			indicatorChar = "^"
			colorize = colorizeError
		}

		indicator := strings.Repeat(indicatorChar, indicatorLength)
		if p.useColor {
			indicator = colorize(indicator)
		}
		sb.WriteString(indicator)

		if excerpt.message != "" {
			message := excerpt.message
			if p.useColor {
				message = colorizeMessage(message)
			}
			sb.WriteRune(' ')
			sb.WriteString(message)
		}

		sb.WriteRune('\n')
	}
}

func (p ErrorPrettyPrinter) writeMeta(sb *strings.Builder, meta string) {
	if p.useColor {
		meta = colorizeMeta(meta)
	}
	sb.WriteString(meta)
}
