package pngcap

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/pngcap/crc32"
)

const numWorkers = 10

// Ignore any dump greater than 64 MB.
const maxDumpSize = 64 << 20

func crcFile(file string) (uint32, error) {
	f, err := os.Open(file)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	h := crc32.New()
	if _, err = io.Copy(h, f); err != nil {
		return 0, err
	}

	return h.Sum32(), nil
}

func (e *Exporter) findDumps(ctx context.Context, base string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() {
				return nil
			}

			if info.Size() > maxDumpSize {
				return nil
			}

			if !strings.EqualFold(filepath.Ext(file), Extension) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc
}

func (e *Exporter) dumpWorker(ctx context.Context, in <-chan string) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			select {
			case <-ctx.Done():
				return
			default:
			}

			crc, err := crcFile(file)
			if err != nil {
				errc <- err
				return
			}

			if e.db != nil {
				if _, _, _, ok, err := e.db.FindByCRC(crc); err != nil {
					errc <- err
					return
				} else if ok {
					e.logger.Printf("Skipping \"%s\", already catalogued\n", file)
					continue
				}
			}

			f, err := os.Open(file)
			if err != nil {
				errc <- err
				return
			}

			d, err := ReadDump(f)
			f.Close()
			if err != nil {
				e.logger.Printf("Skipping \"%s\": %v\n", file, err)
				continue
			}

			target := strings.TrimSuffix(file, filepath.Ext(file)) + ".png"
			if err := e.export(target, &d.ARGB, crc); err != nil {
				errc <- err
				return
			}

			e.logger.Printf("Converted \"%s\"\n", file)
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks the tree rooted at path converting every raw capture dump it
// finds to a PNG file alongside it. Dumps whose CRC is already catalogued
// are skipped; unreadable dumps are logged and skipped rather than
// aborting the scan.
func (e *Exporter) Scan(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	dumps, errc := e.findDumps(ctx, dir)
	errcList = append(errcList, errc)

	for i := 0; i < numWorkers; i++ {
		errcList = append(errcList, e.dumpWorker(ctx, dumps))
	}

	return waitForPipeline(errcList...)
}
