// Package console is the interactive terminal frontend: a command loop
// over the session manager, the vocabulary catalog and backups.
package console

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/example/vocabtrainer/internal/backup"
	"github.com/example/vocabtrainer/internal/catalog"
	"github.com/example/vocabtrainer/internal/excel"
	"github.com/example/vocabtrainer/internal/progress"
	"github.com/example/vocabtrainer/internal/scheduler"
	"github.com/example/vocabtrainer/internal/session"
	"github.com/example/vocabtrainer/internal/skill"
	"github.com/example/vocabtrainer/internal/storage"
	"github.com/example/vocabtrainer/pkg/models"
)

// Console wires the command loop to the application services
type Console struct {
	kv      storage.Store
	store   *progress.Store
	vocab   *catalog.Manager
	manager *session.Manager
	rng     *rand.Rand

	in  *bufio.Scanner
	out io.Writer
}

// New creates a console reading from in and writing to out
func New(kv storage.Store, store *progress.Store, vocab *catalog.Manager, manager *session.Manager, in io.Reader, out io.Writer) *Console {
	return &Console{
		kv:      kv,
		store:   store,
		vocab:   vocab,
		manager: manager,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run executes the command loop until quit or EOF
func (c *Console) Run() error {
	c.printf("Vocabulary Trainer (%s)\n", c.pair())
	if c.store.AppState().PausedSession != nil {
		c.printf("You have a paused session. Type 'resume' to continue it.\n")
	}
	c.printf("Type 'help' for commands.\n")

	for {
		c.printf("> ")
		line, ok := c.readLine()
		if !ok {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "help":
			c.printHelp()
		case "study":
			c.cmdStudy(args)
		case "resume":
			c.cmdResume()
		case "stats":
			c.cmdStats()
		case "pair":
			c.cmdPair(args)
		case "level":
			c.cmdLevel(args)
		case "goal":
			c.cmdGoal(args)
		case "add":
			c.cmdAdd()
		case "remove":
			c.cmdRemove(args)
		case "words":
			c.cmdWords()
		case "import":
			c.cmdImport(args)
		case "export":
			c.cmdExport(args)
		case "restore":
			c.cmdRestore(args)
		case "refresh":
			c.cmdRefresh()
		case "reset":
			c.cmdReset()
		case "quit", "exit":
			return nil
		default:
			c.printf("Unknown command '%s'. Type 'help' for commands.\n", cmd)
		}
	}
}

func (c *Console) printHelp() {
	c.printf(`Commands:
  study [n|all]     start a session of n cards (default: daily goals)
  resume            continue a paused session
  stats             show progress for the current language pair
  pair [code]       show or switch language pair (%s)
  level [name]      show or set default level: auto, beginner, intermediate, advanced
  goal [new review] show or set daily targets
  add               add a word to your vocabulary
  remove <id>       remove one of your words
  words             list your words and imported files
  import <file>     import words from .json, .xlsx or .csv (option: skip|replace|merge)
  export            write a backup file
  restore <file>    restore from a backup file
  refresh           re-download the built-in vocabulary
  reset             erase all progress
  quit              exit
`, pairCodes())
}

func pairCodes() string {
	codes := make([]string, len(catalog.LanguagePairs))
	for i, p := range catalog.LanguagePairs {
		codes[i] = p.Code
	}
	return strings.Join(codes, ", ")
}

// --- session flow ---

func (c *Console) cmdStudy(args []string) {
	size := scheduler.SizeAll
	if len(args) > 0 && args[0] != "all" {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			c.printf("Session size must be a positive number or 'all'.\n")
			return
		}
		size = n
	}

	if c.store.AppState().PausedSession != nil {
		c.printf("Discarding the paused session.\n")
		c.store.AppState().PausedSession = nil
		if err := c.store.SaveAppState(); err != nil {
			c.printf("Warning: %v\n", err)
		}
	}

	now := time.Now()
	words := c.vocab.Words(c.pair(), now)
	if err := c.manager.Start(words, c.pair(), size, now); err != nil {
		if err == session.ErrNoCards {
			c.printf("Nothing to study right now. All caught up!\n")
		} else {
			c.printf("Failed to start session: %v\n", err)
		}
		return
	}
	c.runSession(words)
}

func (c *Console) cmdResume() {
	snapshot := c.store.AppState().PausedSession
	if snapshot == nil {
		c.printf("No paused session.\n")
		return
	}

	now := time.Now()
	if err := c.manager.Resume(snapshot, now); err != nil {
		c.printf("Failed to resume: %v\n", err)
		return
	}
	c.store.AppState().PausedSession = nil
	if err := c.store.SaveAppState(); err != nil {
		c.printf("Warning: %v\n", err)
	}

	words := c.vocab.Words(snapshot.LanguagePair, now)
	c.printf("Resuming session at card %d.\n", snapshot.CurrentIndex+1)
	c.runSession(words)
}

// runSession drives the card loop until the session ends or is paused
func (c *Console) runSession(pool []models.Word) {
	for c.manager.Active() {
		card, _ := c.manager.Current()
		pos, total := c.manager.Position()
		tier := c.manager.Tier()

		c.printf("\n[%d/%d] (%s, %s)\n", pos+1, total, card.Kind, tier)
		c.printf("  %s", card.Word.Word)
		if card.Word.Romanization != "" {
			c.printf(" [%s]", card.Word.Romanization)
		}
		c.printf("\n")

		answered, correct := c.askCard(card, tier, pool)
		if !answered {
			c.pauseSession()
			return
		}

		now := time.Now()
		if _, err := c.manager.Submit(correct, now); err != nil {
			c.printf("Error: %v\n", err)
			return
		}
		if !c.manager.Advance() {
			break
		}
	}
	c.finishSession()
}

// askCard poses one card, returning answered=false when the learner
// paused instead of answering
func (c *Console) askCard(card models.SessionCard, tier skill.Level, pool []models.Word) (answered, correct bool) {
	for {
		if tier == skill.Beginner {
			return c.askChoice(card, pool)
		}

		c.printf("  Your answer ('pause' to pause, /1 /2 /3 to switch level): ")
		line, ok := c.readLine()
		if !ok || strings.TrimSpace(line) == "pause" {
			return false, false
		}
		if next, switched := parseTierSwitch(line); switched {
			c.manager.OverrideTier(next)
			tier = c.manager.Tier()
			c.printf("  Switched to %s.\n", tier)
			continue
		}

		result := validateWithAlternates(line, card.Word, tier)
		c.printFeedback(result, card.Word)
		return true, result.Correct
	}
}

// askChoice renders the multiple-choice form for a beginner card
func (c *Console) askChoice(card models.SessionCard, pool []models.Word) (answered, correct bool) {
	choices := skill.GenerateChoices(card.Word, pool, c.rng)
	for i, choice := range choices {
		c.printf("  %d) %s", i+1, choice.Text)
		if choice.Romanization != "" {
			c.printf(" [%s]", choice.Romanization)
		}
		c.printf("\n")
	}

	for {
		c.printf("  Pick 1-%d ('pause' to pause, /2 /3 to switch level): ", len(choices))
		line, ok := c.readLine()
		if !ok || strings.TrimSpace(line) == "pause" {
			return false, false
		}
		if next, switched := parseTierSwitch(line); switched {
			c.manager.OverrideTier(next)
			c.printf("  Switched to %s.\n", c.manager.Tier())
			return c.askCard(card, c.manager.Tier(), pool)
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > len(choices) {
			c.printf("  Enter a number between 1 and %d.\n", len(choices))
			continue
		}

		picked := choices[n-1]
		if picked.Correct {
			c.printf("  Correct!\n")
		} else {
			c.printf("  Incorrect. The answer was: %s\n", card.Word.Translation)
		}
		return true, picked.Correct
	}
}

func parseTierSwitch(line string) (skill.Level, bool) {
	switch strings.TrimSpace(line) {
	case "/1":
		return skill.Beginner, true
	case "/2":
		return skill.Intermediate, true
	case "/3":
		return skill.Advanced, true
	}
	return skill.Auto, false
}

// validateWithAlternates accepts the primary translation or any of the
// word's alternate translations, whichever matches best
func validateWithAlternates(answer string, w models.Word, tier skill.Level) skill.Result {
	best := skill.ValidateAnswer(answer, w.Translation, tier)
	if best.Exact {
		return best
	}
	for _, alt := range w.Alternates {
		r := skill.ValidateAnswer(answer, alt, tier)
		if r.Exact {
			return r
		}
		if r.Correct && !best.Correct {
			best = r
		}
	}
	return best
}

func (c *Console) printFeedback(r skill.Result, w models.Word) {
	switch {
	case r.Exact:
		c.printf("  Perfect!\n")
	case r.Close:
		c.printf("  Close enough! Exact spelling: %s\n", w.Translation)
	case r.Correct:
		c.printf("  Correct!\n")
	default:
		c.printf("  Incorrect. The answer was: %s\n", w.Translation)
	}
}

func (c *Console) pauseSession() {
	now := time.Now()
	snapshot := c.manager.Pause(now)
	if snapshot == nil {
		return
	}
	c.store.AppState().PausedSession = snapshot
	if err := c.store.SaveAppState(); err != nil {
		c.printf("Warning: failed to save paused session: %v\n", err)
		return
	}
	c.printf("Session paused at card %d of %d. Type 'resume' to continue.\n",
		snapshot.CurrentIndex+1, len(snapshot.Cards))
}

func (c *Console) finishSession() {
	summary := c.manager.Complete(time.Now())
	data := c.store.Data()
	goal := c.store.Goal()

	c.printf("\nSession complete: %d cards, %.0f%% accuracy.\n", summary.Words, summary.Accuracy)
	c.printf("Today: %d/%d new, %d/%d reviews. Streak: %d day(s).\n",
		data.DailyProgress.New, goal.New, data.DailyProgress.Review, goal.Review, data.Streak)
}

// --- settings and statistics ---

func (c *Console) cmdStats() {
	now := time.Now()
	c.store.Rollover(now)
	words := c.vocab.Words(c.pair(), now)
	stats := c.store.Statistics(c.pair(), words, now)
	data := c.store.Data()
	goal := c.store.Goal()

	c.printf("Language pair: %s\n", c.pair())
	c.printf("  Words:     %d total, %d unseen, %d due, %d scheduled, %d mastered\n",
		stats.Total, stats.New, stats.Due, stats.Future, stats.Mastered)
	c.printf("  Levels:    beginner %d, intermediate %d, advanced %d\n",
		stats.ByTier[1], stats.ByTier[2], stats.ByTier[3])
	c.printf("  Today:     %d/%d new, %d/%d reviews, %.0f min, %d session(s)\n",
		data.DailyProgress.New, goal.New, data.DailyProgress.Review, goal.Review,
		data.DailyProgress.TimeSpent, len(data.DailyProgress.Sessions))
	c.printf("  Streak:    %d day(s)\n", data.Streak)
	c.printf("  Learned:   %d word(s)\n", data.TotalLearned)
	if data.Accuracy.Total > 0 {
		c.printf("  Accuracy:  %.0f%% over %d answers\n",
			float64(data.Accuracy.Correct)/float64(data.Accuracy.Total)*100, data.Accuracy.Total)
	}
}

func (c *Console) cmdPair(args []string) {
	if len(args) == 0 {
		c.printf("Current pair: %s. Available: %s\n", c.pair(), pairCodes())
		return
	}
	code := args[0]
	if !catalog.ValidPair(code) {
		c.printf("Unknown language pair '%s'. Available: %s\n", code, pairCodes())
		return
	}
	if c.store.AppState().PausedSession != nil && c.store.AppState().PausedSession.LanguagePair != code {
		c.printf("Note: your paused session belongs to %s.\n", c.store.AppState().PausedSession.LanguagePair)
	}
	c.store.AppState().CurrentLanguagePair = code
	if err := c.store.SaveAppState(); err != nil {
		c.printf("Failed to save: %v\n", err)
		return
	}
	c.printf("Switched to %s.\n", code)
}

func (c *Console) cmdLevel(args []string) {
	if len(args) == 0 {
		c.printf("Default level: %s\n", skill.Level(c.store.Data().DefaultSkillLevel))
		return
	}
	var level skill.Level
	switch strings.ToLower(args[0]) {
	case "auto":
		level = skill.Auto
	case "beginner":
		level = skill.Beginner
	case "intermediate":
		level = skill.Intermediate
	case "advanced":
		level = skill.Advanced
	default:
		c.printf("Level must be one of: auto, beginner, intermediate, advanced.\n")
		return
	}
	c.store.SetDefaultSkillLevel(int(level))
	if err := c.store.Save(); err != nil {
		c.printf("Failed to save: %v\n", err)
		return
	}
	c.printf("Default level set to %s.\n", level)
}

func (c *Console) cmdGoal(args []string) {
	goal := c.store.Goal()
	if len(args) == 0 {
		c.printf("Daily goal: %d new, %d reviews.\n", goal.New, goal.Review)
		return
	}
	if len(args) != 2 {
		c.printf("Usage: goal <new> <review>\n")
		return
	}
	newGoal, err1 := strconv.Atoi(args[0])
	reviewGoal, err2 := strconv.Atoi(args[1])
	bounds := scheduler.DefaultBounds()
	if err1 != nil || err2 != nil ||
		newGoal < bounds.MinNew || newGoal > bounds.MaxNew ||
		reviewGoal < bounds.MinReview || reviewGoal > bounds.MaxReview {
		c.printf("Goals must be %d-%d new and %d-%d reviews.\n",
			bounds.MinNew, bounds.MaxNew, bounds.MinReview, bounds.MaxReview)
		return
	}
	goal.New = newGoal
	goal.Review = reviewGoal
	c.store.SetGoal(goal)
	if err := c.store.Save(); err != nil {
		c.printf("Failed to save: %v\n", err)
		return
	}
	if err := c.store.SaveAppState(); err != nil {
		c.printf("Warning: %v\n", err)
	}
	c.printf("Daily goal set to %d new, %d reviews.\n", goal.New, goal.Review)
}

// --- vocabulary management ---

func (c *Console) cmdAdd() {
	word := c.promptRequired("Word: ")
	if word == "" {
		return
	}
	translation := c.promptRequired("Translation: ")
	if translation == "" {
		return
	}
	romanization := c.prompt("Romanization (optional): ")
	category := c.prompt("Category (optional): ")
	difficulty := 1
	if d := c.prompt("Difficulty 1-3 (default 1): "); d != "" {
		if n, err := strconv.Atoi(d); err == nil && n >= 1 && n <= 3 {
			difficulty = n
		}
	}

	added, err := c.vocab.AddWord(c.pair(), models.Word{
		Word:         word,
		Translation:  translation,
		Romanization: romanization,
		Category:     category,
		Difficulty:   difficulty,
	}, time.Now())
	if err != nil {
		c.printf("Failed to add word: %v\n", err)
		return
	}
	c.printf("Added '%s' (id %d).\n", added.Word, added.ID)
}

func (c *Console) cmdRemove(args []string) {
	if len(args) != 1 {
		c.printf("Usage: remove <id>\n")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		c.printf("Id must be a number.\n")
		return
	}
	removed, err := c.vocab.RemoveUserWord(c.pair(), id)
	if err != nil {
		c.printf("Failed to remove: %v\n", err)
		return
	}
	if !removed {
		c.printf("No user word with id %d. Built-in words cannot be removed.\n", id)
		return
	}
	c.printf("Removed word %d.\n", id)
}

func (c *Console) cmdWords() {
	words := c.vocab.UserWords(c.pair())
	if len(words) == 0 {
		c.printf("No user words for %s.\n", c.pair())
	} else {
		c.printf("Your words for %s:\n", c.pair())
		for _, w := range words {
			c.printf("  %4d  %s = %s", w.ID, w.Word, w.Translation)
			if len(w.Alternates) > 0 {
				c.printf(" (also: %s)", strings.Join(w.Alternates, ", "))
			}
			c.printf("\n")
		}
	}

	files := c.vocab.Files()
	if len(files) > 0 {
		c.printf("Imported files:\n")
		for _, f := range files {
			c.printf("  %s (%s, %d words, %s)\n", f.Name, f.LanguagePair, f.WordCount, f.ImportedAt)
		}
	}
}

func (c *Console) cmdImport(args []string) {
	if len(args) == 0 {
		c.printf("Usage: import <file> [skip|replace|merge]\n")
		return
	}
	path := args[0]
	strategy := catalog.DuplicateSkip
	if len(args) > 1 {
		switch args[1] {
		case "skip":
			strategy = catalog.DuplicateSkip
		case "replace":
			strategy = catalog.DuplicateReplace
		case "merge":
			strategy = catalog.DuplicateMerge
		default:
			c.printf("Duplicate strategy must be skip, replace or merge.\n")
			return
		}
	}

	pair := c.pair()
	var words []models.Word

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			c.printf("Failed to read file: %v\n", err)
			return
		}
		file, err := catalog.ParseVocabularyFile(data)
		if err != nil {
			c.printf("%v\n", err)
			return
		}
		if file.Metadata != nil && file.Metadata.LanguagePair != "" {
			if !catalog.ValidPair(file.Metadata.LanguagePair) {
				c.printf("File targets unknown language pair '%s'.\n", file.Metadata.LanguagePair)
				return
			}
			pair = file.Metadata.LanguagePair
		}
		words = file.Words
	case ".xlsx", ".csv":
		config := excel.DefaultImportConfig()
		config.FilePath = path
		result, err := excel.ImportWords(config)
		if err != nil {
			c.printf("Import failed: %v\n", err)
			return
		}
		for _, e := range result.Errors {
			c.printf("  %s\n", e)
		}
		if result.Skipped > 0 {
			c.printf("Skipped %d incomplete row(s).\n", result.Skipped)
		}
		words = result.Words
	default:
		c.printf("Unsupported file type. Use .json, .xlsx or .csv.\n")
		return
	}

	if len(words) == 0 {
		c.printf("No words found in %s.\n", path)
		return
	}

	now := time.Now()
	summary, err := c.vocab.ImportWords(pair, words, strategy, now)
	if err != nil {
		c.printf("Import failed: %v\n", err)
		return
	}
	if err := c.vocab.RecordFile(models.FileRecord{
		Name:         filepath.Base(path),
		LanguagePair: pair,
		WordCount:    len(words),
		ImportedAt:   now.Format("2006-01-02 15:04"),
	}); err != nil {
		c.printf("Warning: %v\n", err)
	}
	c.printf("Imported into %s: %d added, %d replaced, %d merged, %d skipped.\n",
		pair, summary.Added, summary.Replaced, summary.Merged, summary.Skipped)
}

// --- backup and maintenance ---

func (c *Console) cmdExport(args []string) {
	now := time.Now()
	data, err := backup.Export(c.kv, now)
	if err != nil {
		c.printf("Export failed: %v\n", err)
		return
	}
	name := backup.Filename("vocabtrainer-backup", now)
	if len(args) > 0 {
		name = args[0]
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		c.printf("Failed to write %s: %v\n", name, err)
		return
	}
	c.printf("Backup written to %s.\n", name)
}

func (c *Console) cmdRestore(args []string) {
	if len(args) != 1 {
		c.printf("Usage: restore <file>\n")
		return
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		c.printf("Failed to read file: %v\n", err)
		return
	}

	c.printf("Restoring will replace all current progress. Type 'yes' to continue: ")
	if line, ok := c.readLine(); !ok || strings.TrimSpace(line) != "yes" {
		c.printf("Restore cancelled.\n")
		return
	}

	archive, err := backup.Import(c.kv, data)
	if err != nil {
		c.printf("Restore failed: %v\n", err)
		return
	}
	c.printf("Restored backup from %s (version %s). Restart to pick up the new data.\n",
		archive.ExportDate.Format("2006-01-02"), archive.Version)
}

func (c *Console) cmdRefresh() {
	words := c.vocab.Refresh(c.pair(), time.Now())
	c.printf("Vocabulary for %s refreshed: %d built-in words.\n", c.pair(), len(words))
}

func (c *Console) cmdReset() {
	c.printf("This erases all progress, goals and streaks. Type 'yes' to continue: ")
	if line, ok := c.readLine(); !ok || strings.TrimSpace(line) != "yes" {
		c.printf("Reset cancelled.\n")
		return
	}
	if err := c.store.Reset(time.Now()); err != nil {
		c.printf("Reset failed: %v\n", err)
		return
	}
	c.printf("All progress erased.\n")
}

// --- helpers ---

func (c *Console) pair() string {
	return c.store.AppState().CurrentLanguagePair
}

func (c *Console) prompt(label string) string {
	c.printf("%s", label)
	line, _ := c.readLine()
	return strings.TrimSpace(line)
}

func (c *Console) promptRequired(label string) string {
	v := c.prompt(label)
	if v == "" {
		c.printf("Cancelled.\n")
	}
	return v
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
