//nolint:varnamelen // Test files use idiomatic short variable names (t, etc.)
package filesystem_test

import (
	"testing"

	"github.com/joe/gifpick/pkg/filesystem"
)

// TestParsePath_Local tests ParsePath with host paths.
func TestParsePath_Local(t *testing.T) {
	t.Parallel()

	result, err := filesystem.ParsePath("/media/sdcard/gifs/")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.IsRemote {
		t.Error("IsRemote should be false for host path")
	}
	if result.Path != "/media/sdcard/gifs/" {
		t.Errorf("Path = %q, want %q", result.Path, "/media/sdcard/gifs/")
	}
	if result.String() != "/media/sdcard/gifs/" {
		t.Errorf("String() = %q, want the path unchanged", result.String())
	}
}

// TestParsePath_Empty tests that an empty location is rejected.
func TestParsePath_Empty(t *testing.T) {
	t.Parallel()

	if _, err := filesystem.ParsePath(""); err == nil {
		t.Error("Expected error for empty location")
	}
}

// TestParsePath_SFTP tests ParsePath with SFTP URLs.
//
//nolint:funlen // Table-driven test with many SFTP URL parsing cases
func TestParsePath_SFTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantErr    bool
		wantUser   string
		wantHost   string
		wantPort   int
		wantPath   string
		wantString string
	}{
		{
			name:       "relative to home",
			input:      "sftp://pi@matrix.local/gifs/",
			wantUser:   "pi",
			wantHost:   "matrix.local",
			wantPort:   22,
			wantPath:   "gifs/",
			wantString: "sftp://pi@matrix.local:22/gifs/",
		},
		{
			name:       "absolute path with custom port",
			input:      "sftp://admin@10.0.0.7:2222//sd/gifs",
			wantUser:   "admin",
			wantHost:   "10.0.0.7",
			wantPort:   2222,
			wantPath:   "/sd/gifs",
			wantString: "sftp://admin@10.0.0.7:2222//sd/gifs",
		},
		{
			name:       "home directory",
			input:      "sftp://pi@matrix.local",
			wantUser:   "pi",
			wantHost:   "matrix.local",
			wantPort:   22,
			wantPath:   ".",
			wantString: "sftp://pi@matrix.local:22",
		},
		{
			name:    "without username",
			input:   "sftp://matrix.local/gifs",
			wantErr: true,
		},
		{
			name:    "bad port",
			input:   "sftp://pi@matrix.local:notaport/gifs",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := filesystem.ParsePath(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if !result.IsRemote {
				t.Error("IsRemote should be true for SFTP URL")
			}
			if result.User != tt.wantUser {
				t.Errorf("User = %q, want %q", result.User, tt.wantUser)
			}
			if result.Host != tt.wantHost {
				t.Errorf("Host = %q, want %q", result.Host, tt.wantHost)
			}
			if result.Port != tt.wantPort {
				t.Errorf("Port = %d, want %d", result.Port, tt.wantPort)
			}
			if result.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", result.Path, tt.wantPath)
			}
			if result.String() != tt.wantString {
				t.Errorf("String() = %q, want %q", result.String(), tt.wantString)
			}
		})
	}
}
