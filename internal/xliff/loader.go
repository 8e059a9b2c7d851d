package xliff

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/termbridge/internal/debug"
	"github.com/standardbeagle/termbridge/internal/errors"
	"github.com/standardbeagle/termbridge/internal/terms"
)

// LoadFile parses one XLIFF file and adds every translatable unit to the
// store under the file's target language. Units marked translate="no" and
// units with an empty source or target are skipped. Returns the number of
// terms added.
func LoadFile(store *terms.Store, path string) (int, error) {
	doc, err := ParseFile(path)
	if err != nil {
		return 0, errors.NewIngestError("parse", err).WithPath(path)
	}
	return applyDocument(store, doc, path)
}

// LoadGlob expands a doublestar pattern, parses the matched files
// concurrently, and applies them to the store sequentially in sorted path
// order. Parsing is the expensive part; applying stays serialized so
// repeated runs produce identical stores and the store needs no locking.
// Returns the total number of terms added.
func LoadGlob(store *terms.Store, pattern string) (int, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return 0, errors.NewIngestError("glob", err).WithPath(pattern)
	}
	sort.Strings(paths)

	docs := make([]*Document, len(paths))
	var group errgroup.Group
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			doc, err := ParseFile(path)
			if err != nil {
				return errors.NewIngestError("parse", err).WithPath(path)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for i, doc := range docs {
		added, err := applyDocument(store, doc, paths[i])
		total += added
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// applyDocument validates a parsed document and feeds its units to the
// store. A document without a <file> element or without a target-language
// attribute is rejected: the language is the store key, so ingestion cannot
// guess it.
func applyDocument(store *terms.Store, doc *Document, path string) (int, error) {
	if len(doc.Files) == 0 {
		return 0, errors.NewIngestError("validate", fmt.Errorf("missing file element")).WithPath(path)
	}

	added := 0
	for _, file := range doc.Files {
		if file.TargetLanguage == "" {
			return added, errors.NewIngestError("validate", fmt.Errorf("missing target-language attribute")).WithPath(path)
		}
		for _, unit := range file.AllUnits() {
			if !unit.Translatable() {
				continue
			}
			if unit.Source == "" || unit.Target == "" {
				continue
			}
			store.Add(unit.Source, unit.Target, file.TargetLanguage)
			added++
		}
	}

	if debug.Enabled() {
		debug.Logf("xliff: loaded %d terms from %s", added, path)
	}
	return added, nil
}
