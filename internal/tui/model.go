package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hctsai/dazi/internal/codegen"
	"github.com/hctsai/dazi/internal/encoding"
	"github.com/hctsai/dazi/internal/leaderboard"
	"github.com/hctsai/dazi/internal/model"
	"github.com/hctsai/dazi/internal/passage"
	"github.com/hctsai/dazi/internal/session"
)

const flashDuration = 300 * time.Millisecond

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	flashStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#1A1A1A")).Background(lipgloss.Color("#FF4D4F"))
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6FA8DC"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	recordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	currentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// NewsStore caches fetched headlines between runs.
type NewsStore interface {
	LoadNews(ctx context.Context, lang model.Lang, fetchedOn, version string) ([]string, error)
	SaveNews(ctx context.Context, lang model.Lang, fetchedOn, version string, titles []string) error
}

type hintMsg struct {
	char  rune
	rec   model.EncodingRecord
	found bool
}

type flashClearMsg struct{}

type newsMsg struct {
	lang   model.Lang
	titles []string
	err    error
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	cfg     model.Config
	ctrl    *session.Controller
	lib     *passage.Library
	picker  *passage.Picker
	gen     *codegen.Generator
	hints   *encoding.Chain
	board   *leaderboard.Board
	news    NewsStore
	fetcher *passage.Fetcher

	width  int
	height int

	alphabet  codegen.Alphabet
	noPassage bool

	finished   bool
	outcome    model.Outcome
	topEntries []model.Entry

	input       []rune
	prevRun     int
	hintVisible bool
	hintChar    rune
	hintRec     model.EncodingRecord
	hintFound   bool
	hintLoaded  bool
	flashIndex  int
}

// NewModel constructs a typing TUI model and starts the first session.
func NewModel(cfg model.Config, ctrl *session.Controller, lib *passage.Library, picker *passage.Picker, gen *codegen.Generator, hints *encoding.Chain, board *leaderboard.Board, news NewsStore, fetcher *passage.Fetcher) *Model {
	m := &Model{
		cfg:        cfg,
		ctrl:       ctrl,
		lib:        lib,
		picker:     picker,
		gen:        gen,
		hints:      hints,
		board:      board,
		news:       news,
		fetcher:    fetcher,
		flashIndex: -1,
	}
	m.coerceCodeType()
	m.startSession()
	return m
}

// Init implements tea.Model. News refreshes in the background and only
// ever swaps the passage pools; it can never block typing or scoring.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.requestHint()}
	if m.news != nil && m.fetcher != nil {
		cmds = append(cmds, m.loadNewsCmd(model.LangZH), m.loadNewsCmd(model.LangEN))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case hintMsg:
		if msg.char == m.hintChar {
			m.hintRec = msg.rec
			m.hintFound = msg.found
			m.hintLoaded = true
		}
		return m, nil
	case flashClearMsg:
		m.flashIndex = -1
		return m, nil
	case newsMsg:
		if msg.err == nil {
			m.lib.SetSentences(msg.lang, msg.titles)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch msg.String() {
	case "ctrl+t":
		m.switchLang()
		return m, m.requestHint()
	case "ctrl+o":
		m.cycleContent()
		return m, m.requestHint()
	}
	if m.finished || m.noPassage {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "enter", " ":
			if m.finished {
				m.startSession()
				return m, m.requestHint()
			}
		}
		return m, nil
	}
	if m.cfg.Content == model.ContentCode {
		return m.handleDrillKey(msg)
	}
	return m.handleTextKey(msg)
}

func (m *Model) handleTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, m.complete()
	case tea.KeyTab:
		m.hintVisible = true
		return m, m.requestHint()
	case tea.KeyEnter:
		if m.ctrl.CanFinishWithEnter() {
			return m, m.complete()
		}
		return m, nil
	case tea.KeyBackspace, tea.KeyDelete:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
			m.ctrl.SetInput(string(m.input))
		}
		return m, nil
	case tea.KeySpace:
		return m.appendRunes([]rune{' '})
	case tea.KeyRunes:
		return m.appendRunes(msg.Runes)
	default:
		return m, nil
	}
}

func (m *Model) appendRunes(runes []rune) (tea.Model, tea.Cmd) {
	m.input = append(m.input, runes...)
	m.ctrl.SetInput(string(m.input))
	// The hint tracks the leading correct run and only advances when it
	// grows, so typing past an error keeps the hint on the mistake.
	run := m.ctrl.LeadingRun()
	var cmd tea.Cmd
	if run > m.prevRun {
		cmd = m.requestHint()
	}
	m.prevRun = run
	return m, cmd
}

func (m *Model) handleDrillKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, m.complete()
	case tea.KeyTab:
		m.hintVisible = true
		return m, nil
	case tea.KeyBackspace, tea.KeyDelete:
		m.ctrl.Backspace()
		m.input = m.ctrl.Input()
		return m, nil
	case tea.KeySpace, tea.KeyRunes:
		keys := msg.Runes
		if msg.Type == tea.KeySpace {
			keys = []rune{' '}
		}
		var cmds []tea.Cmd
		for _, key := range keys {
			out := m.ctrl.CodeKey(key, m.alphabet)
			m.input = m.ctrl.Input()
			if out.Rejected {
				m.flashIndex = len(m.input)
				cmds = append(cmds, tea.Tick(flashDuration, func(time.Time) tea.Msg {
					return flashClearMsg{}
				}))
			}
			if out.Finished {
				cmds = append(cmds, m.complete())
				break
			}
		}
		return m, tea.Batch(cmds...)
	default:
		return m, nil
	}
}

func (m *Model) startSession() {
	m.finished = false
	m.noPassage = false
	m.input = nil
	m.prevRun = 0
	m.flashIndex = -1
	m.hintVisible = m.cfg.AutoHints
	m.clearHint()

	text, err := m.nextPassage()
	if err != nil {
		m.noPassage = true
		return
	}
	m.ctrl.Start(text)
	m.refreshHintTarget()
}

func (m *Model) nextPassage() (string, error) {
	switch m.cfg.Content {
	case model.ContentCode:
		return m.gen.Generate(m.alphabet, m.cfg.DrillLength), nil
	case model.ContentArticle:
		articles := m.lib.Articles(m.cfg.Lang)
		pool := make([]string, 0, len(articles))
		for _, a := range articles {
			pool = append(pool, a.Content)
		}
		return m.picker.Pick(pool)
	default:
		return m.picker.Pick(m.lib.Sentences(m.cfg.Lang))
	}
}

func (m *Model) switchLang() {
	if m.cfg.Lang == model.LangZH {
		m.cfg.Lang = model.LangEN
	} else {
		m.cfg.Lang = model.LangZH
	}
	m.coerceCodeType()
	m.applyMode()
}

func (m *Model) cycleContent() {
	switch m.cfg.Content {
	case model.ContentSentence:
		m.cfg.Content = model.ContentArticle
	case model.ContentArticle:
		m.cfg.Content = model.ContentCode
	default:
		m.cfg.Content = model.ContentSentence
	}
	m.coerceCodeType()
	m.applyMode()
}

// coerceCodeType keeps the drill alphabet consistent with the language:
// English drills always use the latin alphabet, and switching to Chinese
// away from it defaults to cangjie.
func (m *Model) coerceCodeType() {
	if m.cfg.Lang == model.LangEN {
		m.cfg.CodeType = codegen.TypeEnglish
	} else if m.cfg.CodeType == codegen.TypeEnglish {
		m.cfg.CodeType = codegen.TypeCangjie
	}
	if alphabet, ok := codegen.Lookup(m.cfg.CodeType); ok {
		m.alphabet = alphabet
	}
}

func (m *Model) applyMode() {
	m.ctrl.SetMode(model.Mode{Lang: m.cfg.Lang, Content: m.cfg.Content})
	m.picker.Reset()
	m.startSession()
}

func (m *Model) complete() tea.Cmd {
	outcome, ok := m.ctrl.Complete(context.Background())
	if !ok {
		return nil
	}
	m.outcome = outcome
	m.finished = true
	m.topEntries = m.board.Top(context.Background(), m.cfg.Lang)
	return nil
}

func (m *Model) clearHint() {
	m.hintChar = 0
	m.hintFound = false
	m.hintLoaded = false
	m.hintRec = model.EncodingRecord{}
}

// refreshHintTarget points the hint at the character the leading run has
// reached. The actual lookup happens asynchronously.
func (m *Model) refreshHintTarget() {
	passage := m.ctrl.Passage()
	run := m.ctrl.LeadingRun()
	if run >= len(passage) {
		m.clearHint()
		return
	}
	m.hintChar = passage[run]
	m.hintFound = false
	m.hintLoaded = false
}

func (m *Model) requestHint() tea.Cmd {
	if m.finished || m.noPassage {
		return nil
	}
	m.refreshHintTarget()
	if m.hintChar == 0 || m.cfg.Content == model.ContentCode {
		return nil
	}
	if !m.hintVisible || m.cfg.Lang != model.LangZH {
		return nil
	}
	if !encoding.IsChinese(m.hintChar) {
		m.hintLoaded = true
		return nil
	}
	char := m.hintChar
	chain := m.hints
	return func() tea.Msg {
		rec, ok := chain.Lookup(context.Background(), char)
		return hintMsg{char: char, rec: rec, found: ok}
	}
}

func (m *Model) loadNewsCmd(lang model.Lang) tea.Cmd {
	news := m.news
	fetcher := m.fetcher
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		today := time.Now().Format("2006-01-02")
		cached, err := news.LoadNews(ctx, lang, today, passage.DataVersion)
		if err == nil && len(cached) > 0 {
			return newsMsg{lang: lang, titles: cached}
		}
		titles, err := fetcher.FetchTitles(ctx, lang)
		if err != nil {
			return newsMsg{lang: lang, err: err}
		}
		if err := news.SaveNews(ctx, lang, today, passage.DataVersion, titles); err != nil {
			// Cache failures only cost a refetch next run.
			_ = err
		}
		return newsMsg{lang: lang, titles: titles}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.noPassage {
		body := "No passages available for this mode.\nPress ctrl+o to switch content, ctrl+t to switch language, q to quit."
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	if m.finished {
		return m.viewResults()
	}
	return m.viewTyping()
}

func (m *Model) viewTyping() string {
	passage := m.ctrl.Passage()
	cursorIndex := -1
	if len(m.ctrl.Input()) < len(passage) {
		cursorIndex = len(m.ctrl.Input())
	}
	styledRunes := buildStyledRunes(passage, m.ctrl.Input(), cursorIndex, m.flashIndex)

	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(styledRunes, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)

	parts := []string{titleStyle.Render(m.modeLabel()), "", content}
	if hint := m.renderHint(); hint != "" {
		parts = append(parts, "", hintStyle.Render(hint))
	}
	body := strings.Join(parts, "\n")

	footer := footerStyle.Render(m.renderFooter())
	bodyHeight := m.height - 1
	if bodyHeight < 1 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	placed := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return placed + "\n" + footerLine
}

func (m *Model) viewResults() string {
	lines := []string{
		titleStyle.Render("Session complete"),
		"",
		fmt.Sprintf("WPM %d · Accuracy %d%% · Score %d", m.outcome.WPM, m.outcome.Accuracy, m.outcome.Score),
		m.renderAchievement(),
		"",
		titleStyle.Render(fmt.Sprintf("Top %d (%s)", leaderboard.Size, m.cfg.Lang)),
	}
	lines = append(lines, m.renderBoard()...)
	lines = append(lines, "", footerStyle.Render("enter/space: again · ctrl+t: language · ctrl+o: content · q: quit"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}

func (m *Model) renderAchievement() string {
	switch {
	case m.outcome.IsNewRecord:
		return recordStyle.Render("New record! Best score yet.")
	case m.outcome.IsTopFive:
		return currentStyle.Render(fmt.Sprintf("Top five! Ranked #%d.", m.outcome.CurrentRank))
	default:
		return footerStyle.Render(fmt.Sprintf("Ranked #%d. Keep going!", m.outcome.CurrentRank))
	}
}

func (m *Model) renderBoard() []string {
	if len(m.topEntries) == 0 {
		return []string{footerStyle.Render("No records yet.")}
	}
	medals := []string{"🥇", "🥈", "🥉"}
	lines := make([]string, 0, len(m.topEntries))
	for i, entry := range m.topEntries {
		medal := "  "
		if i < len(medals) {
			medal = medals[i]
		}
		line := fmt.Sprintf("%s %d pts (%d WPM / %d%%) %s",
			medal, entry.Score, entry.WPM, entry.Accuracy,
			entry.Timestamp.Local().Format("2006-01-02 15:04"))
		if i+1 == m.outcome.CurrentRank {
			line = currentStyle.Render(line + "  ← this run")
		}
		lines = append(lines, line)
	}
	return lines
}

func (m *Model) renderHint() string {
	if m.cfg.Content == model.ContentCode {
		return m.renderDrillHint()
	}
	if !m.hintVisible || m.cfg.Lang != model.LangZH || m.hintChar == 0 {
		return ""
	}
	if !encoding.IsChinese(m.hintChar) {
		return fmt.Sprintf("%c · not a Chinese character", m.hintChar)
	}
	if !m.hintLoaded {
		return fmt.Sprintf("%c · looking up…", m.hintChar)
	}
	if !m.hintFound {
		return fmt.Sprintf("%c · no dictionary entry", m.hintChar)
	}
	return fmt.Sprintf("%c · 注音 %s · 倉頡 %s · 嘸蝦米 %s · 拼音 %s",
		m.hintChar,
		orNoData(m.hintRec.Zhuyin), orNoData(m.hintRec.Cangjie),
		orNoData(m.hintRec.Boshiamy), orNoData(m.hintRec.Pinyin))
}

func (m *Model) renderDrillHint() string {
	if !m.hintVisible {
		return ""
	}
	passage := m.ctrl.Passage()
	cursor := len(m.ctrl.Input())
	if cursor >= len(passage) {
		return ""
	}
	symbol := passage[cursor]
	if key, ok := m.alphabet.KeyForSymbol(symbol); ok {
		return fmt.Sprintf("next %c · key %c", symbol, key)
	}
	return fmt.Sprintf("next %c · key ?", symbol)
}

func (m *Model) renderFooter() string {
	passage := m.ctrl.Passage()
	progress := 0
	if len(passage) > 0 {
		progress = len(m.ctrl.Input()) * 100 / len(passage)
	}
	segments := []string{
		fmt.Sprintf("Progress %d%%", progress),
		fmt.Sprintf("Errors %d", m.ctrl.Errors()),
	}
	if m.cfg.Content == model.ContentCode {
		segments = append(segments, fmt.Sprintf("Drill %s", m.alphabet.Name))
	}
	segments = append(segments, "esc: finish · tab: hint")
	return strings.Join(segments, "  ")
}

func (m *Model) modeLabel() string {
	if m.cfg.Content == model.ContentCode {
		return fmt.Sprintf("dazi · %s drill", m.alphabet.Name)
	}
	return fmt.Sprintf("dazi · %s %s (%d in pool)",
		m.cfg.Lang, m.cfg.Content,
		m.lib.PoolSize(model.Mode{Lang: m.cfg.Lang, Content: m.cfg.Content}))
}

func orNoData(v string) string {
	if v == "" {
		return encoding.NoData
	}
	return v
}
