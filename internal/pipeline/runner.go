package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"academic_nausea/internal/ingest"
	"academic_nausea/internal/nausea"
)

// Runner analyses batches of documents.
type Runner struct {
	Analyzer *nausea.Analyzer
	Encoding string
	Workers  int
	Log      *logrus.Entry
	// Trace receives the stack trace of every skipped document.
	Trace io.Writer
	// OnDocument is called once per path from worker goroutines.
	OnDocument func(path string, err error)
}

// DocumentName is the identity of a document: its base name. Files with the
// same name in different directories collide.
func DocumentName(path string) string {
	return filepath.Base(path)
}

// Run analyses every path and returns the results of the documents that
// succeeded, in input order. Failed documents are logged and left out.
func (r *Runner) Run(paths ...string) []nausea.Result {
	results, _ := Map(paths, r.Workers, func(path string) (nausea.Result, error) {
		res, err := r.ProcessDocument(path)
		if err != nil {
			r.skip(path, err)
		}
		if r.OnDocument != nil {
			r.OnDocument(path, err)
		}
		return res, err
	})
	return results
}

// ProcessDocument reads and analyses a single file.
func (r *Runner) ProcessDocument(path string) (nausea.Result, error) {
	rc, err := ingest.Open(path, r.Encoding)
	if err != nil {
		return nausea.Result{}, errors.Wrapf(err, "open %s", path)
	}
	defer rc.Close()

	res, err := r.Analyzer.Analyze(rc)
	if err != nil {
		return nausea.Result{}, errors.Wrapf(err, "analyze %s", path)
	}
	res.DocumentName = DocumentName(path)
	return res, nil
}

func (r *Runner) logger() *logrus.Entry {
	if r.Log == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return r.Log
}

func (r *Runner) skip(path string, err error) {
	r.logger().WithField("document", DocumentName(path)).WithError(err).Error("skipping document")
	if r.Trace != nil {
		fmt.Fprintf(r.Trace, "skipped %s: %+v\n", path, err)
	}
}

var readDir = os.ReadDir

// ExpandPaths replaces every directory in paths with the .txt files it
// directly contains, sorted by name. Other paths are kept as given. A
// directory that cannot be listed is logged and left out.
func (r *Runner) ExpandPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			out = append(out, p)
			continue
		}
		entries, err := readDir(p)
		if err != nil {
			err = errors.Wrapf(err, "read dir %s", p)
			r.logger().WithField("directory", p).WithError(err).Error("skipping directory")
			if r.Trace != nil {
				fmt.Fprintf(r.Trace, "skipped %s: %+v\n", p, err)
			}
			continue
		}
		var files []string
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
				continue
			}
			files = append(files, filepath.Join(p, e.Name()))
		}
		sort.Strings(files)
		out = append(out, files...)
	}
	return out
}
