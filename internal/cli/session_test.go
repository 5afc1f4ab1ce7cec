package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/registrar/internal/config"
	"github.com/aretw0/registrar/pkg/adapters/sqldb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvFixture = `FirstName,LastName,GPA,Major,FacultyAdvisor,Address,City,State,ZipCode,MobilePhoneNumber
Ada,Lovelace,3.9,Math,Babbage,12 St James Sq,London,LD,10001,555-0101
Alan,Turing,4.0,CS,Church,Bletchley Park,Milton Keynes,MK,10002,555-0102
`

func sessionConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "students.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(csvFixture), 0o644))

	cfg := config.Default()
	cfg.Store.DSN = filepath.Join(dir, "StudentDB.db")
	cfg.Import.Path = csvPath
	return cfg
}

func run(t *testing.T, cfg config.Config, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := RunSession(RunOptions{
		Config: cfg,
		Stdin:  strings.NewReader(input),
		Stdout: &out,
		Stderr: io.Discard,
	})
	return out.String(), err
}

func TestRunSession_ImportsAndPersists(t *testing.T) {
	cfg := sessionConfig(t)

	out, err := run(t, cfg, "4\n2\nquit\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Student 2 deleted.")

	store, err := sqldb.Open(context.Background(), "sqlite", cfg.Store.DSN)
	require.NoError(t, err)
	defer store.Close()

	rows, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.False(t, rows[0].IsDeleted)
	assert.True(t, rows[1].IsDeleted)
}

func TestRunSession_EOFExitsCleanly(t *testing.T) {
	out, err := run(t, sessionConfig(t), "1\n")
	require.NoError(t, err)
	assert.Contains(t, out, "1 | Ada | Lovelace | 3.9 | Math |")
}

func TestRunSession_ImportFailureIsFatal(t *testing.T) {
	cfg := sessionConfig(t)
	cfg.Import.Path = filepath.Join(t.TempDir(), "missing.csv")

	out, err := run(t, cfg, "quit\n")
	require.Error(t, err)
	assert.ErrorContains(t, err, "import failed")
	assert.NotContains(t, out, "Student Database Menu", "no menu before a successful import")
}

func TestRunSession_SkipsEmptyImportPath(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Driver = config.DriverMemory
	cfg.Import.Path = ""

	out, err := run(t, cfg, "1\nquit\n")
	require.NoError(t, err)
	assert.Contains(t, out, "No students on record.")
}

func TestRunSession_UnknownDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Driver = "oracle"
	_, err := run(t, cfg, "")
	assert.ErrorContains(t, err, `unknown store driver "oracle"`)
}

func TestHandleExecutionError(t *testing.T) {
	assert.NoError(t, handleExecutionError(nil))
	assert.NoError(t, handleExecutionError(io.EOF))
	assert.NoError(t, handleExecutionError(context.Canceled))
	assert.NoError(t, handleExecutionError(ErrInterrupted))
	assert.Error(t, handleExecutionError(io.ErrUnexpectedEOF))
}

func TestInterruptibleReader(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	done := make(chan struct{})
	r := NewInterruptibleReader(pr, done)

	go func() {
		time.Sleep(10 * time.Millisecond)
		close(done)
	}()

	_, err := r.Read(make([]byte, 8))
	assert.ErrorIs(t, err, ErrInterrupted)
}

func TestInterruptibleReader_PassThrough(t *testing.T) {
	r := NewInterruptibleReader(strings.NewReader("abc"), make(chan struct{}))
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
}
