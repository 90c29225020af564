package ocr

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/santescan/santescan/constants"
)

// fakeRunner scripts external command behavior per binary name.
type fakeRunner struct {
	calls []string
	run   func(name string, args []string) (string, string, error)
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	out, errOut, err := f.run(name, args)
	return []byte(out), []byte(errOut), err
}

func newFakeExtractor(run func(name string, args []string) (string, string, error)) (*Extractor, *fakeRunner) {
	e := NewExtractor(Config{}, nil)
	r := &fakeRunner{run: run}
	e.runner = r
	return e, r
}

func TestExtract_ImageUsesTesseract(t *testing.T) {
	e, r := newFakeExtractor(func(name string, args []string) (string, string, error) {
		require.Equal(t, "tesseract", name)
		return "Hémoglobine : 13.5 g/dL\n", "", nil
	})

	res, err := e.Extract(context.Background(), "/tmp/scan.JPG")
	require.NoError(t, err)
	require.Equal(t, constants.IMAGE, res.SourceType)
	require.Equal(t, "image-ocr", res.Method)
	require.Equal(t, 1, res.Pages)
	require.Contains(t, res.Text, "Hémoglobine")
	require.Equal(t, "fra", res.Language)

	// tesseract <file> stdout -l fra
	require.Len(t, r.calls, 1)
	require.Contains(t, r.calls[0], "stdout -l fra")
}

func TestExtract_PDFWithEmbeddedText(t *testing.T) {
	e, r := newFakeExtractor(func(name string, args []string) (string, string, error) {
		require.Equal(t, "pdftotext", name)
		return "page un\fpage deux", "", nil
	})

	res, err := e.Extract(context.Background(), "/tmp/labs.pdf")
	require.NoError(t, err)
	require.Equal(t, constants.PDF, res.SourceType)
	require.Equal(t, "pdf-text", res.Method)
	require.Equal(t, 2, res.Pages)
	require.Len(t, r.calls, 1)
}

func TestExtract_ScannedPDFFallsBackToOCR(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	r := &fakeRunner{}
	r.run = func(name string, args []string) (string, string, error) {
		switch name {
		case "pdftotext":
			// scanned document: no embedded text layer
			return "   ", "", nil
		case "pdftoppm":
			prefix := args[len(args)-1]
			require.NoError(t, os.WriteFile(prefix+"-1.png", []byte("img"), 0o644))
			require.NoError(t, os.WriteFile(prefix+"-2.png", []byte("img"), 0o644))
			return "", "", nil
		case "tesseract":
			return "texte océrisé", "", nil
		default:
			return "", "", errors.New("unexpected binary: " + name)
		}
	}
	e.runner = r

	res, err := e.Extract(context.Background(), "/tmp/scan.pdf")
	require.NoError(t, err)
	require.Equal(t, "pdf-ocr", res.Method)
	require.Equal(t, 2, res.Pages)
	require.Contains(t, res.Text, "\f") // page break marker between pages
	require.Equal(t, 2, strings.Count(res.Text, "texte océrisé"))
}

func TestExtract_PDFNoPagesRendered(t *testing.T) {
	e, _ := newFakeExtractor(func(name string, args []string) (string, string, error) {
		if name == "pdftotext" {
			return "", "", errors.New("broken pdf")
		}
		return "", "", nil // pdftoppm succeeds but writes nothing
	})

	_, err := e.Extract(context.Background(), "/tmp/broken.pdf")
	require.Error(t, err)
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	e, r := newFakeExtractor(func(string, []string) (string, string, error) {
		return "", "", nil
	})

	_, err := e.Extract(context.Background(), "/tmp/report.docx")
	require.Error(t, err)
	require.Empty(t, r.calls)
}

func TestExtract_TesseractFailure(t *testing.T) {
	e, _ := newFakeExtractor(func(name string, args []string) (string, string, error) {
		return "", "Error opening data file", errors.New("exit status 1")
	})

	_, err := e.Extract(context.Background(), "/tmp/scan.png")
	require.Error(t, err)
}
