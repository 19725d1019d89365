package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-docreport/internal/yamlutil"
)

type report struct {
	Product   string   `yaml:"product"`
	Documents []string `yaml:"documents"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		errText string
	}{
		{
			name: "known fields",
			data: []byte("product: KSR Cranes App\ndocuments:\n  - a.md\n  - b.md"),
			dest: &report{},
		},
		{
			name:    "empty input",
			data:    nil,
			dest:    &report{},
			wantErr: yamlutil.ErrEmptyInput,
		},
		{
			name:    "nil destination",
			data:    []byte("product: x"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "unknown field rejected",
			data:    []byte("product: x\nproduct_name: y"),
			dest:    &report{},
			errText: "yamlutil:",
		},
		{
			name:    "syntax error",
			data:    []byte("documents: [unclosed"),
			dest:    &report{},
			errText: "yamlutil:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
				}
			case tt.errText != "":
				if err == nil || !strings.Contains(err.Error(), tt.errText) {
					t.Errorf("UnmarshalStrict() error = %v, want containing %q", err, tt.errText)
				}
			default:
				if err != nil {
					t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
				}
			}
		})
	}
}

func TestUnmarshalStrict_Decodes(t *testing.T) {
	t.Parallel()

	var r report
	if err := yamlutil.UnmarshalStrict([]byte("product: Cranes\ndocuments: [a.md, b.md]"), &r); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if r.Product != "Cranes" || len(r.Documents) != 2 || r.Documents[1] != "b.md" {
		t.Errorf("decoded = %+v", r)
	}
}

func TestUnmarshalStrict_TooLarge(t *testing.T) {
	// Not parallel: mutates MaxInputSize.
	orig := yamlutil.MaxInputSize
	yamlutil.MaxInputSize = 16
	t.Cleanup(func() { yamlutil.MaxInputSize = orig })

	err := yamlutil.UnmarshalStrict([]byte("product: a very long product name"), &report{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("UnmarshalStrict() error = %v, want ErrInputTooLarge", err)
	}
}

// ---------------------------------------------------------------------------
// TestMarshal
// ---------------------------------------------------------------------------

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	in := report{Product: "Cranes", Documents: []string{"a.md"}}
	data, err := yamlutil.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "product: Cranes") {
		t.Errorf("Marshal() = %q", data)
	}

	var out report
	if err := yamlutil.UnmarshalStrict(data, &out); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if out.Product != in.Product || len(out.Documents) != 1 {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
