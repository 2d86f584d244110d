package activation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseIdentification(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   Identification
	}{
		{
			name:   "both tokens",
			header: "InternetSettings/1.0 model/iPad2,1 build/13G37 Darwin/15.6.0",
			want:   Identification{Model: "iPad2,1", Build: "13G37"},
		},
		{
			name:   "no markers",
			header: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)",
			want:   Identification{},
		},
		{
			name:   "model only",
			header: "model/iPhone4,1",
			want:   Identification{Model: "iPhone4,1"},
		},
		{
			name:   "build only",
			header: "build/13G36",
			want:   Identification{Build: "13G36"},
		},
		{
			name:   "traversal characters never captured",
			header: "model/../etc build/13G37",
			want:   Identification{Build: "13G37"},
		},
		{
			name:   "capture stops at disallowed characters",
			header: "model/iPad2,1;x build/13G37/evil",
			want:   Identification{Model: "iPad2,1", Build: "13G37"},
		},
		{
			name:   "empty header",
			header: "",
			want:   Identification{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseIdentification(tt.header); got != tt.want {
				t.Errorf("ParseIdentification(%q) = %+v, want %+v", tt.header, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	artifact := filepath.Join(root, "iPad2,1", "13G37", ArtifactName)
	if err := os.MkdirAll(filepath.Dir(artifact), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(artifact, []byte("<plist/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	// a directory posing as an artifact must not resolve
	if err := os.MkdirAll(filepath.Join(root, "iPad3,1", "13G37", ArtifactName), 0o755); err != nil {
		t.Fatal(err)
	}
	// a regular file shadowing a model directory makes stat fail with
	// ENOTDIR, which must stay a denial
	if err := os.WriteFile(filepath.Join(root, "STRAY"), []byte("not a directory"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		id       Identification
		wantPath string
		wantErr  error
		wantStat int
	}{
		{
			name:     "found",
			id:       Identification{Model: "iPad2,1", Build: "13G37"},
			wantPath: artifact,
			wantStat: 1,
		},
		{
			name:     "not found",
			id:       Identification{Model: "iPhone4,1", Build: "13G36"},
			wantErr:  ErrNotFound,
			wantStat: 1,
		},
		{
			name:     "artifact is a directory",
			id:       Identification{Model: "iPad3,1", Build: "13G37"},
			wantErr:  ErrNotFound,
			wantStat: 1,
		},
		{
			name:     "model shadowed by a regular file",
			id:       Identification{Model: "STRAY", Build: "13G37"},
			wantErr:  ErrNotFound,
			wantStat: 1,
		},
		{
			name:    "missing model",
			id:      Identification{Build: "13G37"},
			wantErr: ErrMissingIdentification,
		},
		{
			name:    "missing build",
			id:      Identification{Model: "iPad2,1"},
			wantErr: ErrMissingIdentification,
		},
		{
			name:    "traversal in model",
			id:      Identification{Model: "..", Build: "13G37"},
			wantErr: ErrTraversal,
		},
		{
			name:    "traversal in build",
			id:      Identification{Model: "iPad2,1", Build: "..13G37"},
			wantErr: ErrTraversal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(root)
			var stats int
			r.stat = func(path string) (os.FileInfo, error) {
				stats++
				return os.Stat(path)
			}
			path, err := r.Resolve(tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve(%+v) error = %v, want %v", tt.id, err, tt.wantErr)
			}
			if path != tt.wantPath {
				t.Errorf("Resolve(%+v) path = %q, want %q", tt.id, path, tt.wantPath)
			}
			if stats != tt.wantStat {
				t.Errorf("Resolve(%+v) touched the filesystem %d times, want %d", tt.id, stats, tt.wantStat)
			}
		})
	}
}

func TestDenied(t *testing.T) {
	for _, err := range []error{ErrMissingIdentification, ErrTraversal, ErrNotFound} {
		if !Denied(err) {
			t.Errorf("Denied(%v) = false, want true", err)
		}
	}
	if Denied(errors.New("disk on fire")) {
		t.Error("Denied(operational error) = true, want false")
	}
	if Denied(nil) {
		t.Error("Denied(nil) = true, want false")
	}
}
