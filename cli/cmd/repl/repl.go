package repl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/brief/lang"
	"github.com/ardnew/brief/log"
)

// editProgramMsg is sent when program editing completes successfully.
type editProgramMsg struct{ program *lang.Program }

// editCancelledMsg is sent when the user cleared the editor content.
type editCancelledMsg struct{}

// editDeclinedMsg is sent when the user declined to re-edit after a syntax
// error.
type editDeclinedMsg struct{}

// editErrorMsg is sent when the edit process encounters a non-syntax error.
type editErrorMsg struct{ err error }

// evalDoneMsg is sent when an evaluation started by [model.startEval]
// returns.
type evalDoneMsg struct {
	out string
	err error
}

const (
	evalPrompt = "➜ "
	ctrlPrompt = " :"

	// cmdPrefix runs a control command from eval mode, e.g. ":vars".
	cmdPrefix = ":"
)

func helpMessage() string {
	return `
: Commands (press Esc to toggle mode, or prefix with ':' in eval mode):

  help     Print this cruft
  vars     List variables and functions
  reset    Discard all bindings and the session program
  edit     Edit the session program in external $EDITOR and re-run it
  clear    Clear screen
  quit     Exit REPL

Usage:
  Type statements to execute them; bindings persist between lines
  Completions appear automatically as you type
  Press Tab / Shift-Tab to cycle through candidates
  Press Space to accept the current candidate
  Press Esc to toggle between eval and command modes
  Use Up/Down arrows for history navigation (mode switches automatically)
  Use Shift+Up/Shift+Down for history navigation within current mode only
  Use Alt+Up/Alt+Down to switch to command mode and navigate command history
    (restores original mode when reaching end of history)
  Press Ctrl+C while a statement runs to interrupt it
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// inputMode represents the current input mode.
type inputMode int

const (
	modeEval inputMode = iota
	modeCtrl
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// formatCommand formats the command echo line with prompt and input styled.
func formatCommand(input string) string {
	return promptStyle.Render(evalPrompt) + inputStyle.Render(input)
}

// formatCtrlCommand formats the control command echo line with prompt and input
// styled.
func formatCtrlCommand(input string) string {
	return ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input)
}

// maxOutput bounds the output kept from a single evaluation.
const maxOutput = 1 << 20

// outputBuffer captures program output up to a byte limit and counts what it
// drops beyond that.
type outputBuffer struct {
	buf     bytes.Buffer
	limit   int
	dropped int
}

func (b *outputBuffer) Write(p []byte) (int, error) {
	room := max(b.limit-b.buf.Len(), 0)
	if len(p) <= room {
		return b.buf.Write(p)
	}

	b.buf.Write(p[:room])
	b.dropped += len(p) - room

	return len(p), nil
}

func (b *outputBuffer) String() string {
	if b.dropped == 0 {
		return b.buf.String()
	}

	return b.buf.String() + "\n… " + strconv.Itoa(b.dropped) + " bytes of output dropped"
}

func (b *outputBuffer) Reset() {
	b.buf.Reset()
	b.dropped = 0
}

// session holds the interpreter state shared by every copy of the model.
//
// While an evaluation is in flight its goroutine owns the session; the
// update loop does not touch it until the matching [evalDoneMsg] arrives.
type session struct {
	interp  *lang.Interpreter
	out     *outputBuffer
	program *lang.Program // every statement executed successfully so far
}

// model is the Bubble Tea model for the REPL.
type model struct {
	*session

	ctxFunc          func() context.Context
	cancelEval       context.CancelFunc // non-nil while an evaluation runs
	input            textinput.Model
	logger           log.Logger
	history          *History
	historyIdx       int
	matches          fuzzy.Matches // current fuzzy match results
	candidates       []string      // backing candidate list
	wordStart        int           // byte offset of current word start
	wordEnd          int           // byte offset of current word end
	suggIdx          int           // selected candidate index
	tabActive        bool          // whether user is tab-cycling
	preTabText       string        // input text before tab-cycling began
	preTabCursor     int           // cursor position before tab-cycling began
	altNavActive     bool          // whether user is in Alt+Up/Down navigation
	altNavOrigMode   inputMode     // original mode before Alt navigation
	altNavOrigText   string        // original text before Alt navigation
	altNavOrigCursor int           // original cursor position before Alt navigation
	width            int           // terminal width for ellipsization
	quitting         bool
	mode             inputMode
	evalText         string
	evalCursor       int
	ctrlText         string
	ctrlCursor       int
}

// Run starts the REPL. If preload is non-nil, it is executed first and its
// bindings are available to the session. The interpreter options configure
// globals and call depth; output is always captured by the REPL.
func Run(
	ctx context.Context,
	preload io.Reader,
	cacheDir string,
	logger log.Logger,
	opts ...lang.Option,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger.TraceContext(
		ctx,
		"repl start",
		slog.String("cache_dir", cacheDir),
		slog.Bool("has_preload", preload != nil),
	)

	sess := newSession(logger, opts...)

	if preload != nil {
		prog, err := lang.ParseReader(ctx, preload, lang.WithLogger(logger))
		if err != nil {
			return err
		}

		out, err := sess.run(ctx, prog)
		fmt.Fprint(os.Stdout, out)

		if err != nil {
			return err
		}

		logger.TraceContext(
			ctx,
			"repl preload executed",
			slog.Int("statement_count", len(prog.Statements)),
			slog.Int("binding_count", sess.interp.Env().Len()),
		)
	}

	history := NewHistory(filepath.Join(cacheDir, baseHistory))
	if err := history.Load(); err != nil {
		logger.WarnContext(ctx, "could not load history",
			slog.String("path", history.path),
			slog.Any("error", err),
		)
	}

	logger.TraceContext(
		ctx,
		"repl history loaded",
		slog.Int("entry_count", history.Len()),
	)

	m := newModel(ctx, sess, history, logger)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

func newSession(logger log.Logger, opts ...lang.Option) *session {
	out := &outputBuffer{limit: maxOutput}

	opts = append(opts, lang.WithOutput(out), lang.WithLogger(logger))

	return &session{
		interp:  lang.New(opts...),
		out:     out,
		program: new(lang.Program),
	}
}

// run executes prog and returns everything it printed. Statements are
// recorded in the session program only when the whole of prog succeeds.
func (s *session) run(ctx context.Context, prog *lang.Program) (string, error) {
	s.out.Reset()

	err := s.interp.Execute(ctx, prog)
	if err == nil {
		s.program.Statements = append(s.program.Statements, prog.Statements...)
	}

	return s.out.String(), err
}

// eval parses and executes one line of input.
func (s *session) eval(ctx context.Context, input string, logger log.Logger) (string, error) {
	prog, err := lang.ParseCached(ctx, input, lang.WithLogger(logger))
	if err != nil {
		return "", err
	}

	return s.run(ctx, prog)
}

// reset discards all bindings and the session program.
func (s *session) reset() {
	s.interp.Reset()
	s.program = new(lang.Program)
}

// vars renders the current bindings, one per line.
func (s *session) vars() string {
	env := s.interp.Env()
	if env.Len() == 0 {
		return hintStyle.Render("  (no bindings)")
	}

	var b strings.Builder

	for _, name := range env.Names() {
		node, _ := env.Lookup(name)
		b.WriteString(fmt.Sprintf("  %s %s\n", name, hintStyle.Render(describeBinding(node))))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// isFunction reports whether name is bound to a function.
func (s *session) isFunction(name string) bool {
	node, ok := s.interp.Env().Lookup(name)
	if !ok {
		return false
	}

	_, ok = node.(*lang.FunctionDeclaration)

	return ok
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	sess *session,
	history *History,
	logger log.Logger,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		session:    sess,
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		width:      defaultWidth,
		mode:       modeEval,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil

	case editProgramMsg:
		// The edited program replaces the session: start over and re-run it.
		m.reset()

		m.logger.TraceContext(
			m.ctxFunc(),
			"repl edit complete",
			slog.Int("statement_count", len(msg.program.Statements)),
		)

		sess, prog := m.session, msg.program

		return m.startEval(
			func(ctx context.Context) (string, error) { return sess.run(ctx, prog) },
			tea.Println(resultStyle.Render("✔ — program updated")),
		)

	case evalDoneMsg:
		m.cancelEval = nil

		m.logger.TraceContext(
			m.ctxFunc(),
			"repl eval result",
			slog.Int("output_bytes", len(msg.out)),
			slog.Bool("success", msg.err == nil),
		)

		return m, tea.Sequence(printResult(msg.out, msg.err)...)

	case editCancelledMsg:
		return m, tea.Println(hintStyle.Render("🗴 — edit cancelled."))

	case editDeclinedMsg:
		m.quitting = true

		return m, tea.Quit

	case editErrorMsg:
		return m, tea.Println(
			errorStyle.Render("🗴 — error: " + msg.err.Error()),
		)
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Input line.
	b.WriteString(m.input.View())
	b.WriteString("\n")

	// Completion / hint line.
	input := m.input.Value()

	switch {
	case m.cancelEval != nil:
		b.WriteString(hintStyle.Render("Running… press Ctrl+C to interrupt"))

	case m.historyIdx < m.history.Len():
		// Show history position indicator
		pos := m.historyIdx + 1 // 1-based for display
		total := m.history.Len()
		hint := fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(pos)),
			total)
		b.WriteString(hintStyle.Render(hint))

	case strings.TrimSpace(input) == "":
		var hint string
		if m.mode == modeEval {
			hint = "Type a statement or press Esc for commands"
		} else {
			hint = "Type: " + strings.Join(ctrlCommands, ", ") + " (press Esc to return)"
		}

		b.WriteString(hintStyle.Render(hint))

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(
			m.matches, m.suggIdx, m.tabActive, m.width, m.isFunction,
		))
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(
		m.ctxFunc(),
		"repl keypress",
		slog.String("key", msg.String()),
		slog.Int("type", int(msg.Type)),
	)

	if m.cancelEval != nil {
		if msg.Type == tea.KeyCtrlC {
			m.cancelEval()
		}

		return m, nil
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.altNavActive = false
		m.historyIdx = m.history.Len()
		refreshMatches(&m, false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			m.altNavActive = false

			return m.executeInput()
		}
		// Lock in the current tab candidate without executing.
		m.tabActive = false
		m.altNavActive = false
		refreshMatches(&m, true)

		return m, nil

	case tea.KeyTab:
		return m.cycle(1)

	case tea.KeyShiftTab:
		return m.cycle(-1)

	case tea.KeyUp:
		if msg.Alt {
			return m.historyCtrl(-1)
		}

		return m.historyPrev()

	case tea.KeyDown:
		if msg.Alt {
			return m.historyCtrl(1)
		}

		return m.historyNext()

	case tea.KeyShiftUp:
		return m.historyInMode(-1)

	case tea.KeyShiftDown:
		return m.historyInMode(1)

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			refreshMatches(&m, false)

			return m, nil
		}

		m.altNavActive = false

		return m.toggleMode()

	case tea.KeyRunes, tea.KeySpace:
		// Space is a "breaking" key while tab-cycling.
		if m.tabActive && msg.String() == " " {
			m.tabActive = false
		}

		var cmd tea.Cmd

		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		refreshMatches(&m, true)

		return m, cmd
	}

	// For any other key (backspace, delete, arrows, etc.),
	// update input and recompute matches without auto-confirm.
	var cmd tea.Cmd

	m.tabActive = false
	m.altNavActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m, false)

	return m, cmd
}

// cycle moves the tab selection by step (1 for Tab, -1 for Shift-Tab).
func (m model) cycle(step int) (model, tea.Cmd) {
	if len(m.matches) == 0 {
		return m, nil
	}

	// Single candidate: complete and confirm immediately.
	if len(m.matches) == 1 {
		replaceCurrentWord(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m, nil
	}

	if m.tabActive {
		m.suggIdx = (m.suggIdx + step + len(m.matches)) % len(m.matches)
	} else {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()

		m.suggIdx = 0
		if step < 0 {
			m.suggIdx = len(m.matches) - 1
		}
	}

	replaceCurrentWord(&m, m.matches[m.suggIdx].Str)

	return m, nil
}

// replaceCurrentWord replaces the current word boundaries in the input with
// the given replacement text and repositions the cursor.
func replaceCurrentWord(m *model, replacement string) {
	input := m.input.Value()
	newInput := input[:m.wordStart] + replacement + input[m.wordEnd:]
	newCursor := m.wordStart + len(replacement)

	m.input.SetValue(newInput)
	m.input.SetCursor(newCursor)

	m.wordEnd = newCursor
}

// refreshMatches recomputes fuzzy matches for the current input state.
// When autoConfirm is true it also auto-confirms the completion when exactly
// one candidate remains and the typed word already equals that candidate.
// autoConfirm should be false for deletions and cursor navigation so that
// the user can freely edit without unexpected completions.
func refreshMatches(m *model, autoConfirm bool) {
	m.matches, m.candidates, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}

	if !autoConfirm || len(m.matches) != 1 {
		return
	}

	candidate := m.matches[0].Str
	word := m.input.Value()[m.wordStart:m.wordEnd]

	if word == candidate {
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
	}
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	// Reset both mode inputs after submission
	m.evalText = ""
	m.evalCursor = 0
	m.ctrlText = ""
	m.ctrlCursor = 0
	m.input.SetValue("")
	m.matches = nil

	if m.mode == modeCtrl {
		_, _ = m.history.WriteWithMode(input, modeCtrl)
		m.historyIdx = m.history.Len()

		return m.executeCommand(input, formatCtrlCommand(input))
	}

	_, _ = m.history.WriteWithMode(input, modeEval)
	m.historyIdx = m.history.Len()

	if cmd, ok := strings.CutPrefix(input, cmdPrefix); ok {
		return m.executeCommand(strings.TrimSpace(cmd), formatCommand(input))
	}

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl eval",
		slog.String("input", input),
	)

	sess, logger := m.session, m.logger

	return m.startEval(
		func(ctx context.Context) (string, error) { return sess.eval(ctx, input, logger) },
		tea.Println(formatCommand(input)),
	)
}

// startEval runs fn off the update loop after the commands in before. Until
// its [evalDoneMsg] is delivered, keys other than Ctrl+C are ignored and
// Ctrl+C cancels the context passed to fn.
func (m model) startEval(
	fn func(ctx context.Context) (string, error),
	before ...tea.Cmd,
) (model, tea.Cmd) {
	ctx, cancel := context.WithCancel(m.ctxFunc())
	m.cancelEval = cancel

	eval := func() tea.Msg {
		defer cancel()

		out, err := fn(ctx)
		if err != nil && errors.Is(err, context.Canceled) {
			err = ErrInterrupted
		}

		return evalDoneMsg{out: out, err: err}
	}

	return m, tea.Sequence(append(before, eval)...)
}

// printResult renders program output followed by any error.
func printResult(out string, err error) []tea.Cmd {
	var cmds []tea.Cmd

	if out = strings.TrimSuffix(out, "\n"); out != "" {
		cmds = append(cmds, tea.Println(resultStyle.Render(out)))
	}

	if err != nil {
		cmds = append(cmds, tea.Println(errorStyle.Render("error: "+err.Error())))
	}

	return cmds
}

func (m model) executeCommand(input, echo string) (model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	echoCmd := tea.Println(echo)

	cmd := parts[0]

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl exec command",
		slog.String("command", cmd),
		slog.Any("args", parts[1:]),
	)

	switch cmd {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echoCmd, tea.Quit)

	case "h", "help":
		return m, tea.Sequence(echoCmd, tea.Println(helpMessage()))

	case "v", "vars":
		return m, tea.Sequence(echoCmd, tea.Println(m.vars()))

	case "r", "reset":
		m.reset()

		return m, tea.Sequence(echoCmd, tea.Println(hintStyle.Render("bindings cleared")))

	case "c", "clear":
		return m, tea.ClearScreen

	case "e", "edit":
		return m, tea.Sequence(echoCmd, m.handleEdit())

	default:
		return m, tea.Sequence(echoCmd, tea.Println(
			errorStyle.Render("Unknown command: "+cmd+" (try 'help')"),
		))
	}
}

func (m model) handleEdit() tea.Cmd {
	cmd := &editProgramCommand{
		program: m.program,
		ctxFunc: m.ctxFunc,
		logger:  m.logger,
	}

	return tea.Exec(cmd, func(err error) tea.Msg {
		if errors.Is(err, ErrEditDeclined) {
			return editDeclinedMsg{}
		}

		if err != nil {
			return editErrorMsg{err: err}
		}

		if cmd.edited == nil {
			return editCancelledMsg{}
		}

		return editProgramMsg{program: cmd.edited}
	})
}

// showEntry loads history entry i into the input, switching mode if follow
// is set and the entry was submitted in the other mode.
func (m model) showEntry(i int, follow bool) (model, bool) {
	entry, err := m.history.GetEntry(i)
	if err != nil {
		return m, false
	}

	if m.mode != entry.Mode {
		if !follow {
			return m, false
		}

		m, _ = m.switchToMode(entry.Mode)
	}

	m.historyIdx = i
	m.input.SetValue(entry.Line)
	m.input.SetCursor(len(entry.Line))
	refreshMatches(&m, false)

	return m, true
}

// clearEntry returns to the empty line past the newest history entry.
func (m model) clearEntry() model {
	m.historyIdx = m.history.Len()
	m.input.SetValue("")
	refreshMatches(&m, false)

	return m
}

func (m model) historyPrev() (model, tea.Cmd) {
	if m.historyIdx > 0 {
		m, _ = m.showEntry(m.historyIdx-1, true)
	}

	return m, nil
}

func (m model) historyNext() (model, tea.Cmd) {
	if m.historyIdx < m.history.Len()-1 {
		m, _ = m.showEntry(m.historyIdx+1, true)

		return m, nil
	}

	return m.clearEntry(), nil
}

// historyInMode steps through history entries of the current mode only.
func (m model) historyInMode(step int) (model, tea.Cmd) {
	for i := m.historyIdx + step; i >= 0 && i < m.history.Len(); i += step {
		if next, ok := m.showEntry(i, false); ok {
			return next, nil
		}
	}

	// Reached end of mode-specific history, clear input
	if step > 0 && m.historyIdx < m.history.Len() {
		return m.clearEntry(), nil
	}

	return m, nil
}

// historyCtrl switches to command mode and steps through command history.
// Running off either end restores the mode and text from before navigation
// began.
func (m model) historyCtrl(step int) (model, tea.Cmd) {
	if !m.altNavActive {
		m.altNavActive = true
		m.altNavOrigMode = m.mode
		m.altNavOrigText = m.input.Value()
		m.altNavOrigCursor = m.input.Position()

		if m.mode != modeCtrl {
			m, _ = m.switchToMode(modeCtrl)
		}
	}

	for i := m.historyIdx + step; i >= 0 && i < m.history.Len(); i += step {
		if next, ok := m.showEntry(i, false); ok {
			return next, nil
		}
	}

	m.altNavActive = false
	if m.altNavOrigMode != m.mode {
		m, _ = m.switchToMode(m.altNavOrigMode)
	}

	m.input.SetValue(m.altNavOrigText)
	m.input.SetCursor(m.altNavOrigCursor)
	m.historyIdx = m.history.Len()
	refreshMatches(&m, false)

	return m, nil
}

// toggleMode switches between eval and control modes, preserving input state.
func (m model) toggleMode() (model, tea.Cmd) {
	if m.mode == modeEval {
		return m.switchToMode(modeCtrl)
	}

	return m.switchToMode(modeEval)
}

// switchToMode switches to the specified mode, preserving input state.
func (m model) switchToMode(mode inputMode) (model, tea.Cmd) {
	if m.mode == modeEval {
		m.evalText = m.input.Value()
		m.evalCursor = m.input.Position()
	} else {
		m.ctrlText = m.input.Value()
		m.ctrlCursor = m.input.Position()
	}

	m.mode = mode
	if mode == modeEval {
		m.input.Prompt = promptStyle.Render(evalPrompt)
		m.input.SetValue(m.evalText)
		m.input.SetCursor(m.evalCursor)
	} else {
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
		m.input.SetValue(m.ctrlText)
		m.input.SetCursor(m.ctrlCursor)
	}

	refreshMatches(&m, false)

	return m, nil
}
