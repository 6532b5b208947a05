// Package importer loads question/answer cards from plain text files.
//
// A file is a sequence of blocks separated by a line containing only "---".
// Within a block, a line starting with "Q:" begins the question and a line
// starting with "A:" begins the answer; following lines continue whichever
// part was started last.
package importer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gravitrone/cardgraph/internal/authoring"
	"github.com/gravitrone/cardgraph/internal/domain"
)

const (
	questionPrefix = "Q:"
	answerPrefix   = "A:"
	separator      = "---"
)

// Entry is one parsed card.
type Entry struct {
	Question string
	Answer   string
	Line     int
}

type state int

const (
	seeking state = iota
	readingQuestion
	readingAnswer
)

// ParseFile parses the cards in the file at path.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads cards from r. Blocks without a question are skipped.
func Parse(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		entries  []Entry
		current  Entry
		question []string
		answer   []string
		st       = seeking
		lineNo   int
	)
	flush := func() {
		current.Question = strings.TrimSpace(strings.Join(question, "\n"))
		current.Answer = strings.TrimSpace(strings.Join(answer, "\n"))
		if current.Question != "" {
			entries = append(entries, current)
		}
		current, question, answer, st = Entry{}, nil, nil, seeking
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		switch {
		case strings.TrimSpace(line) == separator:
			flush()
		case strings.HasPrefix(line, questionPrefix):
			if st != seeking {
				flush()
			}
			current.Line = lineNo
			question = append(question, strings.TrimSpace(strings.TrimPrefix(line, questionPrefix)))
			st = readingQuestion
		case strings.HasPrefix(line, answerPrefix) && st != seeking:
			answer = append(answer, strings.TrimSpace(strings.TrimPrefix(line, answerPrefix)))
			st = readingAnswer
		case st == readingQuestion:
			question = append(question, line)
		case st == readingAnswer:
			answer = append(answer, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read cards: %w", err)
	}
	flush()
	return entries, nil
}

// Options controls where imported cards go.
type Options struct {
	Context  authoring.CreationContext
	Topic    *domain.TopicID
	Finished bool
}

// Result summarises an import run.
type Result struct {
	Imported []domain.CardID
	Errors   []error
}

// Import writes every entry through w. A failing entry does not stop the run.
func Import(w *authoring.Writer, entries []Entry, opts Options) Result {
	cc := opts.Context
	if cc == nil {
		cc = authoring.Plain{}
	}
	var res Result
	for _, e := range entries {
		id, err := w.WriteDraft(authoring.Draft{
			Context:  cc,
			Question: e.Question,
			Answer:   e.Answer,
			Topic:    opts.Topic,
			Finished: opts.Finished,
		})
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", e.Line, err))
			continue
		}
		res.Imported = append(res.Imported, id)
	}
	return res
}
