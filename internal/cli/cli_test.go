package cli

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/docsv/docx"
	"github.com/tsawler/docsv/export"
)

// writeFixtureDOCX creates a DOCX on disk with the given body markup.
func writeFixtureDOCX(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.docx")
	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	w.Write([]byte(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`))
	w, err = zw.Create("word/document.xml")
	require.NoError(t, err)
	w.Write([]byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body + `</w:body></w:document>`))
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	return path
}

const twoTableBody = `<w:tbl><w:tr><w:tc><w:p><w:r><w:t>a</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
	`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>b</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`

// runCommand executes the root command with args and captures its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)

		// Flag variables are package-level; restore their defaults so
		// tests stay independent.
		cfgFile = ""
		quiet = false
		extractOutputFlag = "tables"
		extractBasenameFlag = "table"
		exportOutputFlag = "operator_results"
		exportZipFlag = false
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "docsv version dev")
}

func TestExtractCmd(t *testing.T) {
	input := writeFixtureDOCX(t, twoTableBody)
	outDir := filepath.Join(t.TempDir(), "tables")

	_, err := runCommand(t, "extract", input, "--output", outDir, "--basename", "tab", "-q")
	require.NoError(t, err)

	first, err := os.ReadFile(filepath.Join(outDir, "tab_1.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a\n", string(first))

	second, err := os.ReadFile(filepath.Join(outDir, "tab_2.csv"))
	require.NoError(t, err)
	assert.Equal(t, "b\n", string(second))
}

func TestExtractCmd_NoTables(t *testing.T) {
	input := writeFixtureDOCX(t, `<w:p><w:r><w:t>prose only</w:t></w:r></w:p>`)
	outDir := filepath.Join(t.TempDir(), "tables")

	out, err := runCommand(t, "extract", input, "--output", outDir, "-q")
	require.NoError(t, err)
	assert.Contains(t, out, "No tables with data found")

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr), "no output directory should be created")
}

func TestExtractCmd_MissingInput(t *testing.T) {
	_, err := runCommand(t, "extract", "/no/such/file.docx", "-q")
	assert.ErrorIs(t, err, docx.ErrNotFound)
}

func TestExportCmd_Directory(t *testing.T) {
	input := writeFixtureDOCX(t, twoTableBody)
	outDir := filepath.Join(t.TempDir(), "results")

	out, err := runCommand(t, "export", input, "--output", outDir, "-q")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 4 CSV file(s) for 2 operator(s)")

	var files []string
	for _, op := range []string{"Operator_A", "Operator_B"} {
		entries, err := os.ReadDir(filepath.Join(outDir, op))
		require.NoError(t, err)
		for _, e := range entries {
			files = append(files, op+"/"+e.Name())
		}
	}
	sort.Strings(files)
	assert.Equal(t, []string{
		"Operator_A/operator_a_table_1.csv",
		"Operator_A/operator_a_table_2.csv",
		"Operator_B/operator_b_table_1.csv",
		"Operator_B/operator_b_table_2.csv",
	}, files)
}

func TestExportCmd_Zip(t *testing.T) {
	input := writeFixtureDOCX(t, twoTableBody)
	archive := filepath.Join(t.TempDir(), "bundle")

	out, err := runCommand(t, "export", input, "--output", archive, "--zip", "-q")
	require.NoError(t, err)
	assert.Contains(t, out, "bundle.zip")

	zr, err := zip.OpenReader(archive + ".zip")
	require.NoError(t, err)
	defer zr.Close()
	assert.Len(t, zr.File, 4)
}

func TestExportCmd_NoTables(t *testing.T) {
	input := writeFixtureDOCX(t, `<w:p><w:r><w:t>prose only</w:t></w:r></w:p>`)
	outDir := filepath.Join(t.TempDir(), "results")

	_, err := runCommand(t, "export", input, "--output", outDir, "-q")
	assert.ErrorIs(t, err, export.ErrNoTables)
}

func TestExportCmd_CustomOperators(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "docsv.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
operators:
  - key: X
    basename: special
`), 0644))

	input := writeFixtureDOCX(t, twoTableBody)
	outDir := filepath.Join(dir, "results")

	_, err := runCommand(t, "export", input, "--output", outDir, "--config", cfgPath, "-q")
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(outDir, "Operator_X", "special_1.csv"))
	assert.NoError(t, statErr)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", docx.ErrNotFound, "file not found"},
		{"invalid format", docx.ErrInvalidFormat, "the file is not a valid DOCX document"},
		{"no tables", export.ErrNoTables, "the document contains no tables with data"},
		{"invalid target", export.ErrInvalidTarget, "the destination is a file: choose a directory or use --zip"},
		{"passthrough", errors.New("odd failure"), "odd failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userMessage(tt.err))
		})
	}
}
