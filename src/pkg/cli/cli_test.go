package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/local-app/src/pkg/data"
	"roster/local-app/src/pkg/log"
	"roster/local-app/src/pkg/model"
	"roster/local-app/src/pkg/session"
	"roster/local-app/src/pkg/storage"
)

const helpText = "Supported commands:\n" +
	"1. Add [name] to [department]\n" +
	"2. List [department], All, or Quit\n" +
	"3. All\n" +
	"4. Quit\n" +
	"5. Help to bring up this again.\n" +
	"\n"

var errReaderClosed = errors.New("reader closed")

type readStep struct {
	line string
	err  error
}

// scriptReader replays scripted lines and errors, then reports io.EOF.
type scriptReader struct {
	steps  []readStep
	closed bool
}

func newScriptReader(lines ...string) *scriptReader {
	r := &scriptReader{}
	for _, l := range lines {
		r.steps = append(r.steps, readStep{line: l})
	}
	return r
}

func (r *scriptReader) Readline() (string, error) {
	if r.closed {
		return "", errReaderClosed
	}
	if len(r.steps) == 0 {
		return "", io.EOF
	}
	step := r.steps[0]
	r.steps = r.steps[1:]
	return step.line, step.err
}

func (r *scriptReader) Close() error {
	r.closed = true
	return nil
}

type harness struct {
	cli     *CLI
	reader  *scriptReader
	out     *bytes.Buffer
	session *session.Session
}

func newHarness(t *testing.T, cfg *model.Config, reader *scriptReader) *harness {
	t.Helper()
	logger, err := log.NewLogger(&model.Config{}, log.LevelDebug)
	require.NoError(t, err)

	sess := session.NewSession(data.NewRosterManager(storage.NewMemoryStore(), logger), logger)
	out := &bytes.Buffer{}
	return &harness{
		cli:     NewCLI(sess, reader, out, cfg, logger),
		reader:  reader,
		out:     out,
		session: sess,
	}
}

// run executes lines and returns everything printed after the startup banner.
func run(t *testing.T, lines ...string) string {
	t.Helper()
	h := newHarness(t, &model.Config{}, newScriptReader(lines...))
	require.NoError(t, h.cli.Run(context.Background()))

	out := h.out.String()
	require.True(t, strings.HasPrefix(out, helpText), "banner missing:\n%s", out)
	return strings.TrimPrefix(out, helpText)
}

func TestRun_AddThenList(t *testing.T) {
	out := run(t, "add alice to engineering", "list engineering", "quit")
	assert.Equal(t, "engineering: [\"alice\"]\nQuitting...\n", out)
}

func TestRun_InsertionOrder(t *testing.T) {
	out := run(t, "add alice to engineering", "add bob to engineering", "list engineering", "quit")
	assert.Equal(t, "engineering: [\"alice\", \"bob\"]\nQuitting...\n", out)
}

func TestRun_UnknownDepartment(t *testing.T) {
	out := run(t, "list sales", "all", "quit")
	assert.Equal(t, "I don't recognize that department!\nQuitting...\n", out)
}

func TestRun_AllWithEmptyRoster(t *testing.T) {
	out := run(t, "all", "quit")
	assert.Equal(t, "Quitting...\n", out)
}

func TestRun_AllListsEveryDepartment(t *testing.T) {
	out := run(t, "add alice to engineering", "add carol to sales", "add bob to engineering", "all", "quit")
	assert.Equal(t, "engineering: [\"alice\", \"bob\"]\nsales: [\"carol\"]\nQuitting...\n", out)
}

func TestRun_QuitStopsReading(t *testing.T) {
	h := newHarness(t, &model.Config{}, newScriptReader("quit", "add alice to engineering"))
	require.NoError(t, h.cli.Run(context.Background()))

	assert.Len(t, h.reader.steps, 1, "lines after quit must not be read")
	assert.True(t, strings.HasSuffix(h.out.String(), "Quitting...\n"))
}

func TestRun_Help(t *testing.T) {
	out := run(t, "help", "quit")
	assert.Equal(t, helpText+"Quitting...\n", out)
}

func TestRun_InvalidInputLeavesRosterUnchanged(t *testing.T) {
	out := run(t, "foo bar baz", "", "add x y z", "all", "quit")
	assert.Equal(t, "Invalid input\nInvalid input\nInvalid input\nQuitting...\n", out)
}

func TestRun_LowercasesInputByDefault(t *testing.T) {
	out := run(t, "  ADD Alice TO Engineering  ", "LIST engineering", "Quit")
	assert.Equal(t, "engineering: [\"alice\"]\nQuitting...\n", out)
}

func TestRun_PreserveCase(t *testing.T) {
	h := newHarness(t, &model.Config{PreserveCase: true},
		newScriptReader("ADD Alice TO Engineering", "list engineering", "List Engineering", "QUIT"))
	require.NoError(t, h.cli.Run(context.Background()))

	out := strings.TrimPrefix(h.out.String(), helpText)
	assert.Equal(t, "I don't recognize that department!\nEngineering: [\"Alice\"]\nQuitting...\n", out)
}

func TestRun_EOFIsGracefulQuit(t *testing.T) {
	out := run(t, "add alice to engineering")
	assert.Equal(t, "Quitting...\n", out)
}

func TestRun_InterruptContinues(t *testing.T) {
	reader := newScriptReader()
	reader.steps = []readStep{
		{err: readline.ErrInterrupt},
		{line: "quit"},
	}
	h := newHarness(t, &model.Config{}, reader)
	require.NoError(t, h.cli.Run(context.Background()))

	out := strings.TrimPrefix(h.out.String(), helpText)
	assert.Equal(t, "Use 'quit' to exit the program.\nQuitting...\n", out)
}

func TestRun_ReadErrorIsFatal(t *testing.T) {
	boom := errors.New("terminal gone")
	reader := newScriptReader()
	reader.steps = []readStep{{err: boom}}
	h := newHarness(t, &model.Config{}, reader)

	err := h.cli.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotContains(t, h.out.String(), "Quitting...")
}

func TestStop_EndsRunGracefully(t *testing.T) {
	h := newHarness(t, &model.Config{}, newScriptReader("add alice to engineering"))
	h.cli.Stop()
	h.cli.Stop()

	require.NoError(t, h.cli.Run(context.Background()))
	assert.True(t, h.reader.closed)
	assert.Equal(t, helpText, h.out.String())
}

func TestRun_StoreErrorIsReported(t *testing.T) {
	logger, err := log.NewLogger(&model.Config{}, log.LevelDebug)
	require.NoError(t, err)
	sess := session.NewSession(data.NewRosterManager(brokenStore{}, logger), logger)
	out := &bytes.Buffer{}
	c := NewCLI(sess, newScriptReader("all", "quit"), out, &model.Config{}, logger)

	require.NoError(t, c.Run(context.Background()))
	assert.Contains(t, out.String(), "Error: failed to list departments: broken\n")
	assert.True(t, strings.HasSuffix(out.String(), "Quitting...\n"))
}

type brokenStore struct{}

func (brokenStore) EmployeeAdd(string, string) error { return errors.New("broken") }
func (brokenStore) EmployeeList(string) ([]string, bool, error) { return nil, false, errors.New("broken") }
func (brokenStore) DepartmentList() ([]model.Department, error) { return nil, errors.New("broken") }
func (brokenStore) Close() error { return nil }

func TestPrintHelp(t *testing.T) {
	var buf bytes.Buffer
	printHelp(&buf)
	assert.Equal(t, helpText, buf.String())
}
