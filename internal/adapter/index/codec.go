package index

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"docsearch/internal/adapter/avl"
	"docsearch/internal/domain"
)

// Format tags written in the index file header.
const (
	FormatTree  = "AVL"
	FormatTable = "HASH"
)

const (
	startMarker = "start-------------------------------"
	endMarker   = "end---------------------------------"
	nilMarker   = "$$$"
)

// WriteWord writes the text block of a single Word:
//
//	whale :: 2 documents :: 5 times
//		corpus/moby.txt	4	12.22
func WriteWord(w io.Writer, word *domain.Word) error {
	if _, err := fmt.Fprintf(w, "\n%s :: %d documents :: %d times\n", word.Term, word.DocumentCount, word.TotalFrequency); err != nil {
		return err
	}
	for _, d := range word.Documents {
		if _, err := fmt.Fprintf(w, "\t%s\t%d\t%.2f\n", d.Name, d.Frequency, d.Ranking); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(w io.Writer, corpus domain.Corpus, format string) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", corpus.Directory, format, corpus.Files, corpus.Pages, corpus.Words)
	return err
}

// writeTree writes one start/end wrapped preorder block.
func writeTree(w io.Writer, tree *avl.Tree[*domain.Word]) error {
	if _, err := fmt.Fprintln(w, startMarker); err != nil {
		return err
	}
	err := tree.Encode(func(word *domain.Word, present bool) error {
		if !present {
			_, err := fmt.Fprintln(w, nilMarker)
			return err
		}
		return WriteWord(w, word)
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, endMarker)
	return err
}

func writeWordCounts(w io.Writer, counts map[string]int) error {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	if _, err := fmt.Fprintln(w, len(names)); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", name, counts[name]); err != nil {
			return err
		}
	}
	return nil
}

// lineReader yields the non-blank lines of an index file.
type lineReader struct {
	sc       *bufio.Scanner
	line     string
	lineNo   int
	buffered bool
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	return &lineReader{sc: sc}
}

func (r *lineReader) next() (string, bool) {
	if r.buffered {
		r.buffered = false
		return r.line, true
	}
	for r.sc.Scan() {
		r.lineNo++
		line := strings.TrimRight(r.sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		r.line = line
		return line, true
	}
	return "", false
}

func (r *lineReader) unread() {
	r.buffered = true
}

func (r *lineReader) err() error {
	return r.sc.Err()
}

func (r *lineReader) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", r.lineNo, fmt.Sprintf(format, args...), domain.ErrInvalidFormat)
}

// readHeader parses "<directory> <format> <files> <pages> <words>".
func readHeader(r *lineReader) (domain.Corpus, string, error) {
	line, ok := r.next()
	if !ok {
		if err := r.err(); err != nil {
			return domain.Corpus{}, "", err
		}
		return domain.Corpus{}, "", fmt.Errorf("empty index file: %w", domain.ErrInvalidFormat)
	}

	fields := strings.Split(line, "\t")
	if len(fields) != 5 {
		fields = strings.Fields(line)
	}
	if len(fields) != 5 {
		return domain.Corpus{}, "", r.errorf("malformed header %q", line)
	}

	format := fields[1]
	if format != FormatTree && format != FormatTable {
		return domain.Corpus{}, "", r.errorf("unknown format %q", format)
	}

	corpus := domain.NewCorpus(fields[0])
	counters := []*int{&corpus.Files, &corpus.Pages, &corpus.Words}
	for i, p := range counters {
		n, err := strconv.Atoi(fields[2+i])
		if err != nil {
			return domain.Corpus{}, "", r.errorf("header counter %q", fields[2+i])
		}
		*p = n
	}
	return corpus, format, nil
}

// ReadWord parses a Word block whose header line is the next line of r.
func readWord(r *lineReader) (*domain.Word, error) {
	line, ok := r.next()
	if !ok {
		return nil, r.errorf("unexpected end of file")
	}
	word, err := parseWordHeader(line)
	if err != nil {
		return nil, r.errorf("%v", err)
	}

	for {
		line, ok := r.next()
		if !ok {
			break
		}
		if !strings.HasPrefix(line, "\t") {
			r.unread()
			break
		}
		d, err := parseDocLine(line)
		if err != nil {
			return nil, r.errorf("%v", err)
		}
		word.Documents = append(word.Documents, d)
	}

	if want := min(word.DocumentCount, domain.MaxDocuments); len(word.Documents) < want {
		return nil, r.errorf("term %q lists %d of %d documents", word.Term, len(word.Documents), want)
	}
	return word, nil
}

func parseWordHeader(line string) (*domain.Word, error) {
	parts := strings.Split(line, " :: ")
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed word header %q", line)
	}

	count, ok := strings.CutSuffix(parts[1], " documents")
	if !ok {
		return nil, fmt.Errorf("malformed document count %q", parts[1])
	}
	total, ok := strings.CutSuffix(parts[2], " times")
	if !ok {
		return nil, fmt.Errorf("malformed frequency %q", parts[2])
	}

	w := domain.NewWord(parts[0])
	var err error
	if w.DocumentCount, err = strconv.Atoi(count); err != nil {
		return nil, fmt.Errorf("document count: %v", err)
	}
	if w.TotalFrequency, err = strconv.Atoi(total); err != nil {
		return nil, fmt.Errorf("frequency: %v", err)
	}
	return w, nil
}

// parseDocLine parses "\t<name>\t<frequency>\t<ranking>". The name is
// everything before the last two fields.
func parseDocLine(line string) (domain.DocRecord, error) {
	line = strings.TrimPrefix(line, "\t")

	i := strings.LastIndex(line, "\t")
	if i < 0 {
		return domain.DocRecord{}, fmt.Errorf("malformed document line %q", line)
	}
	rest, rankField := line[:i], line[i+1:]

	j := strings.LastIndex(rest, "\t")
	if j < 0 {
		return domain.DocRecord{}, fmt.Errorf("malformed document line %q", line)
	}
	name, freqField := rest[:j], rest[j+1:]

	freq, err := strconv.Atoi(freqField)
	if err != nil {
		return domain.DocRecord{}, fmt.Errorf("document frequency: %v", err)
	}
	rank, err := strconv.ParseFloat(rankField, 64)
	if err != nil {
		return domain.DocRecord{}, fmt.Errorf("document ranking: %v", err)
	}
	return domain.DocRecord{Name: name, Frequency: freq, Ranking: rank}, nil
}

// readTree parses one start/end wrapped preorder block.
func readTree(r *lineReader) (*avl.Tree[*domain.Word], error) {
	if line, ok := r.next(); !ok || line != startMarker {
		return nil, r.errorf("expected start marker")
	}

	tree, err := avl.Decode(domain.CompareWords, func() (*domain.Word, bool, error) {
		line, ok := r.next()
		if !ok {
			return nil, false, r.errorf("unexpected end of tree")
		}
		if line == nilMarker {
			return nil, false, nil
		}
		r.unread()
		w, err := readWord(r)
		return w, err == nil, err
	})
	if err != nil {
		return nil, err
	}

	if line, ok := r.next(); !ok || line != endMarker {
		return nil, r.errorf("expected end marker")
	}
	if err := checkOrder(tree); err != nil {
		return nil, r.errorf("%v", err)
	}
	return tree, nil
}

func checkOrder(tree *avl.Tree[*domain.Word]) error {
	var prev *domain.Word
	var err error
	tree.InOrder(func(w *domain.Word) bool {
		if prev != nil && domain.CompareWords(prev, w) >= 0 {
			err = fmt.Errorf("term %q stored after %q", w.Term, prev.Term)
			return false
		}
		prev = w
		return true
	})
	return err
}

// readWords parses every Word block in r regardless of tree layout, for
// loading a file written by the other backend.
func readWords(r *lineReader, fn func(*domain.Word)) error {
	for {
		line, ok := r.next()
		if !ok {
			return r.err()
		}
		switch line {
		case startMarker, endMarker, nilMarker:
			continue
		}
		r.unread()
		w, err := readWord(r)
		if err != nil {
			return err
		}
		fn(w)
	}
}

func readWordCounts(r io.Reader) (map[string]int, error) {
	lr := newLineReader(r)
	line, ok := lr.next()
	if !ok {
		return nil, fmt.Errorf("empty word count file: %w", domain.ErrInvalidFormat)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, lr.errorf("document count %q", line)
	}

	counts := make(map[string]int, n)
	for i := 0; i < n; i++ {
		line, ok := lr.next()
		if !ok {
			return nil, lr.errorf("expected %d documents, found %d", n, i)
		}
		j := strings.LastIndexAny(line, "\t ")
		if j < 0 {
			return nil, lr.errorf("malformed word count %q", line)
		}
		total, err := strconv.Atoi(line[j+1:])
		if err != nil {
			return nil, lr.errorf("malformed word count %q", line)
		}
		counts[line[:j]] = total
	}
	return counts, nil
}
