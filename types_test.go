package docreport

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPageSettings_Validate
// ---------------------------------------------------------------------------

func TestPageSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    PageSettings
		wantErr error
	}{
		{"default", DefaultPageSettings(), nil},
		{"a4", PageSettings{Size: PageSizeA4, Margin: 0.5}, nil},
		{"legal upper case", PageSettings{Size: "LEGAL", Margin: 1}, nil},
		{"min margin", PageSettings{Size: PageSizeLetter, Margin: MinMargin}, nil},
		{"max margin", PageSettings{Size: PageSizeLetter, Margin: MaxMargin}, nil},
		{"unknown size", PageSettings{Size: "tabloid", Margin: 1}, ErrInvalidPageSize},
		{"empty size", PageSettings{Margin: 1}, ErrInvalidPageSize},
		{"margin too small", PageSettings{Size: PageSizeLetter, Margin: 0.1}, ErrInvalidMargin},
		{"margin too large", PageSettings{Size: PageSizeLetter, Margin: 3.5}, ErrInvalidMargin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.page.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPageSettings_Dimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size          string
		width, height float64
	}{
		{PageSizeLetter, 8.5, 11},
		{PageSizeA4, 8.27, 11.69},
		{"Legal", 8.5, 14},
	}

	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			t.Parallel()

			w, h := PageSettings{Size: tt.size, Margin: 1}.dimensions()
			if w != tt.width || h != tt.height {
				t.Errorf("dimensions() = %v x %v, want %v x %v", w, h, tt.width, tt.height)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReport_Validate
// ---------------------------------------------------------------------------

func TestReport_Validate(t *testing.T) {
	t.Parallel()

	valid := Report{
		Product:    "KSR Cranes App",
		Documents:  []Document{{Path: "README.md", Title: "Readme"}},
		OutputPath: "out.pdf",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	blankProduct := valid
	blankProduct.Product = "  "
	if err := blankProduct.Validate(); !errors.Is(err, ErrEmptyProduct) {
		t.Errorf("blank product: error = %v, want ErrEmptyProduct", err)
	}

	noDocs := valid
	noDocs.Documents = []Document{}
	if err := noDocs.Validate(); !errors.Is(err, ErrNoDocuments) {
		t.Errorf("no documents: error = %v, want ErrNoDocuments", err)
	}

	noOutput := valid
	noOutput.OutputPath = ""
	if err := noOutput.Validate(); !errors.Is(err, ErrEmptyOutput) {
		t.Errorf("no output: error = %v, want ErrEmptyOutput", err)
	}
}
