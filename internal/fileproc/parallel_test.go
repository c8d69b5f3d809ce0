package fileproc

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"testing"
)

func makeFiles(n int) []string {
	files := make([]string, n)
	for i := range files {
		files[i] = fmt.Sprintf("file%03d.cpp", i)
	}
	return files
}

func TestForEachFile(t *testing.T) {
	files := makeFiles(20)

	results := ForEachFile(files, func(path string) (string, error) {
		return strings.ToUpper(path), nil
	})

	if len(results) != len(files) {
		t.Fatalf("results = %d, want %d", len(results), len(files))
	}
	sort.Strings(results)
	if results[0] != "FILE000.CPP" {
		t.Errorf("results[0] = %q", results[0])
	}
}

func TestForEachFileEmpty(t *testing.T) {
	results := ForEachFile(nil, func(path string) (int, error) {
		return 0, nil
	})
	if results != nil {
		t.Errorf("empty input should return nil, got %v", results)
	}
}

func TestForEachFileSkipsErrors(t *testing.T) {
	files := makeFiles(10)

	results := ForEachFile(files, func(path string) (string, error) {
		if path == "file005.cpp" {
			return "", fmt.Errorf("bad file")
		}
		return path, nil
	})

	if len(results) != 9 {
		t.Errorf("results = %d, want 9 (one error skipped)", len(results))
	}
}

func TestForEachFileWithProgress(t *testing.T) {
	files := makeFiles(15)
	var ticks int64

	results := ForEachFileWithProgress(files, func(path string) (int, error) {
		return len(path), nil
	}, func() {
		atomic.AddInt64(&ticks, 1)
	})

	if len(results) != 15 {
		t.Errorf("results = %d, want 15", len(results))
	}
	if ticks != 15 {
		t.Errorf("progress ticks = %d, want 15", ticks)
	}
}

func TestForEachFileWithErrors(t *testing.T) {
	files := makeFiles(10)
	var failures atomic.Int64

	results := ForEachFileWithErrors(files, func(path string) (string, error) {
		return "", fmt.Errorf("fail %s", path)
	}, func(path string, err error) {
		failures.Add(1)
	})

	if len(results) != 0 {
		t.Errorf("results = %d, want 0", len(results))
	}
	if failures.Load() != 10 {
		t.Errorf("error callbacks = %d, want 10", failures.Load())
	}
}

func TestForEachFileNProgressCountsErrors(t *testing.T) {
	files := makeFiles(8)
	var ticks int64

	ForEachFileN(files, 2, func(path string) (int, error) {
		return 0, fmt.Errorf("always fails")
	}, func() {
		atomic.AddInt64(&ticks, 1)
	}, nil)

	if ticks != 8 {
		t.Errorf("progress should tick on failures too, got %d", ticks)
	}
}

func TestForEachFileCollectErrors(t *testing.T) {
	files := makeFiles(10)

	results, errs := ForEachFileCollectErrors(files, func(path string) (string, error) {
		if path == "file003.cpp" || path == "file007.cpp" {
			return "", fmt.Errorf("corrupt")
		}
		return path, nil
	})

	if len(results) != 8 {
		t.Errorf("results = %d, want 8", len(results))
	}
	if errs == nil || !errs.HasErrors() {
		t.Fatal("expected collected errors")
	}
	if len(errs.Errors) != 2 {
		t.Errorf("errors = %d, want 2", len(errs.Errors))
	}
	if !strings.Contains(errs.Error(), "2 files failed") {
		t.Errorf("Error() = %q", errs.Error())
	}
}

func TestForEachFileCollectErrorsNoErrors(t *testing.T) {
	results, errs := ForEachFileCollectErrors(makeFiles(5), func(path string) (string, error) {
		return path, nil
	})
	if errs != nil {
		t.Errorf("errs = %v, want nil when everything succeeds", errs)
	}
	if len(results) != 5 {
		t.Errorf("results = %d, want 5", len(results))
	}
}

func TestForEachFileWithContext(t *testing.T) {
	results, errs := ForEachFileWithContext(context.Background(), makeFiles(10), func(path string) (string, error) {
		return path, nil
	})
	if errs != nil {
		t.Errorf("errs = %v, want nil", errs)
	}
	if len(results) != 10 {
		t.Errorf("results = %d, want 10", len(results))
	}
}

func TestForEachFileWithContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, errs := ForEachFileWithContext(ctx, makeFiles(10), func(path string) (string, error) {
		return path, nil
	})

	if errs == nil || !errs.HasErrors() {
		t.Fatal("cancelled context should produce errors")
	}
	if len(results)+len(errs.Errors) > 10 {
		t.Errorf("results %d + errors %d exceeds input", len(results), len(errs.Errors))
	}
}

func TestProcessingErrors(t *testing.T) {
	var errs ProcessingErrors

	if errs.HasErrors() {
		t.Error("fresh ProcessingErrors should be empty")
	}
	if errs.Error() != "no errors" {
		t.Errorf("Error() = %q", errs.Error())
	}

	errs.Add("a.cpp", fmt.Errorf("boom"))
	if !errs.HasErrors() {
		t.Error("HasErrors() should be true after Add")
	}
	if !strings.Contains(errs.Error(), "a.cpp") {
		t.Errorf("single error should include path, got %q", errs.Error())
	}
	if errs.Unwrap() != nil {
		t.Error("Unwrap() should return nil")
	}
}
