package gui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/lexicarte/internal"
	"codeberg.org/snonux/lexicarte/internal/generate"
	"codeberg.org/snonux/lexicarte/internal/speech"
	"codeberg.org/snonux/lexicarte/internal/store"
)

// Config holds GUI application configuration
type Config struct {
	DBPath string

	// Generation settings
	Provider        string
	GenerationModel string
	OpenAIKey       string // from env/config; the stored credential takes precedence
	GeminiKey       string

	// Speech settings
	SpeechEngine string
	SpeechRate   int
	OpenAIModel  string
	OpenAIVoice  string
	OpenAISpeed  float64
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	return &Config{
		DBPath:       store.DefaultPath(),
		Provider:     "openai",
		SpeechEngine: "espeak",
		SpeechRate:   130,
		OpenAIModel:  "gpt-4o-mini-tts",
		OpenAISpeed:  0.9,
	}
}

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// Application context
	config    *Config
	store     *store.Store
	state     *State
	generator generate.Generator
	speaker   *speech.Speaker

	// UI elements
	searchEntry *widget.Entry
	grid        *fyne.Container
	statusLabel *widget.Label
	countLabel  *widget.Label
	content     *fyne.Container

	// Toolbar buttons
	addButton      *ttwidget.Button
	reviewButton   *ttwidget.Button
	editButton     *ttwidget.Button
	settingsButton *ttwidget.Button

	// Background generation
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	mu         sync.Mutex
	generating bool
}

// New creates a new GUI application
func New(config *Config) (*Application, error) {
	if config == nil {
		config = DefaultConfig()
	}

	st, err := store.Open(config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open card store: %w", err)
	}

	state, err := NewState(st)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	myApp := app.NewWithID("org.codeberg.snonux.lexicarte")

	a := &Application{
		app:    myApp,
		config: config,
		store:  st,
		state:  state,
		ctx:    ctx,
		cancel: cancel,
	}

	a.rebuildGenerator()
	a.setupSpeaker()
	a.setupUI()

	return a, nil
}

// rebuildGenerator constructs the generation client from the current
// credential. Called at startup and after the settings sheet saves a new key.
func (a *Application) rebuildGenerator() {
	gen, err := generate.NewGenerator(&generate.Config{
		Provider: a.config.Provider,
		APIKey:   a.generationKey(),
		Model:    a.config.GenerationModel,
	})
	if err != nil {
		// Unknown provider in the config file; fall back to the default
		fmt.Printf("Warning: %v, falling back to openai\n", err)
		gen, _ = generate.NewGenerator(&generate.Config{APIKey: a.generationKey()})
	}
	a.generator = gen
}

// generationKey resolves the credential: the stored key wins, then the
// environment/config key passed in via Config.
func (a *Application) generationKey() string {
	if key, err := a.store.Credential(); err == nil && key != "" {
		return key
	}
	if a.config.Provider == "gemini" {
		return a.config.GeminiKey
	}
	return a.config.OpenAIKey
}

// setupSpeaker wires the speech engine. A missing engine (espeak-ng not
// installed, no API key for the openai engine) only disables pronunciation.
func (a *Application) setupSpeaker() {
	engine, err := speech.NewEngine(&speech.Config{
		Engine:      a.config.SpeechEngine,
		Locale:      "fr-FR",
		ESpeakRate:  a.config.SpeechRate,
		OpenAIKey:   a.config.OpenAIKey,
		OpenAIModel: a.config.OpenAIModel,
		OpenAIVoice: a.config.OpenAIVoice,
		OpenAISpeed: a.config.OpenAISpeed,
	})
	if err != nil {
		fmt.Printf("Warning: speech engine unavailable: %v\n", err)
		return
	}

	a.speaker = speech.NewSpeaker(engine, "fr-FR", func(playing bool) {
		fyne.Do(func() {
			if playing {
				a.statusLabel.SetText("Playing...")
			} else {
				a.statusLabel.SetText("Ready")
			}
		})
	})
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("Lexicarte v%s - French Vocabulary Cards", internal.Version))
	a.window.Resize(fyne.NewSize(900, 640))

	// Search entry filters the grid as the user types
	a.searchEntry = widget.NewEntry()
	a.searchEntry.SetPlaceHolder("Search cards...")
	a.searchEntry.OnChanged = func(text string) {
		a.state.SetSearch(text)
		a.refreshGrid()
	}

	// Toolbar buttons (tooltips set after the tooltip layer is created)
	a.addButton = ttwidget.NewButtonWithIcon("", theme.ContentAddIcon(), a.onAddWord)
	a.reviewButton = ttwidget.NewButtonWithIcon("", theme.HistoryIcon(), a.onToggleReview)
	a.editButton = ttwidget.NewButtonWithIcon("", theme.DocumentCreateIcon(), a.onToggleEdit)
	a.settingsButton = ttwidget.NewButtonWithIcon("", theme.SettingsIcon(), a.onShowSettings)

	toolbar := container.NewHBox(
		a.addButton,
		a.reviewButton,
		a.editButton,
		widget.NewSeparator(),
		a.settingsButton,
	)

	topSection := container.NewBorder(nil, nil, toolbar, nil, a.searchEntry)

	// Card grid
	a.grid = container.NewGridWrap(fyne.NewSize(210, 150))

	// Status section
	a.statusLabel = widget.NewLabel("Ready")
	a.countLabel = widget.NewLabel("")
	a.countLabel.TextStyle = fyne.TextStyle{Italic: true}
	statusSection := container.NewBorder(nil, nil, a.statusLabel, a.countLabel)

	a.content = container.NewStack()

	root := container.NewBorder(
		container.NewVBox(topSection, widget.NewSeparator()),
		statusSection,
		nil, nil,
		a.content,
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(root, a.window.Canvas()))

	a.addButton.SetToolTip("Add a new word")
	a.reviewButton.SetToolTip("Toggle review mode (chronological)")
	a.editButton.SetToolTip("Toggle edit mode")
	a.settingsButton.SetToolTip("Settings")

	a.window.SetOnClosed(func() {
		a.cancel()
		if a.speaker != nil {
			a.speaker.Stop()
		}
		a.wg.Wait()
		a.store.Close()
	})

	a.showBrowse()
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// showBrowse displays the card grid (browse or review ordering).
func (a *Application) showBrowse() {
	a.state.ClearSelection()
	a.refreshGrid()
	a.content.Objects = []fyne.CanvasObject{container.NewVScroll(a.grid)}
	a.content.Refresh()
}

// showDetail displays a single card full-screen.
func (a *Application) showDetail(id string) {
	a.state.Select(id)
	w, ok := a.state.Selected()
	if !ok {
		a.showBrowse()
		return
	}
	a.content.Objects = []fyne.CanvasObject{a.buildDetailView(w)}
	a.content.Refresh()
}

// refreshGrid rebuilds the card tiles from the visible collection.
func (a *Application) refreshGrid() {
	visible := a.state.Visible()
	editMode := a.state.EditMode()

	tiles := make([]fyne.CanvasObject, 0, len(visible))
	for _, w := range visible {
		w := w
		tiles = append(tiles, NewCardTile(w, editMode,
			func() { a.showDetail(w.ID) },
			func() { a.speak(w.French) },
			func() { a.deleteCard(w.ID) },
		))
	}

	a.grid.Objects = tiles
	a.grid.Refresh()
	a.updateCount()
}

func (a *Application) updateCount() {
	mode := "Browse"
	if a.state.Mode() == ModeReview {
		mode = "Review"
	}
	a.countLabel.SetText(fmt.Sprintf("%s | Cards: %d", mode, a.state.Count()))
}

// speak pronounces text, superseding any current utterance.
func (a *Application) speak(text string) {
	if a.speaker == nil {
		a.statusLabel.SetText("Speech engine unavailable")
		return
	}
	a.speaker.Speak(text)
}

// deleteCard removes a card and re-renders. Local-only, no failure path
// beyond logging.
func (a *Application) deleteCard(id string) {
	if err := a.state.Delete(id); err != nil {
		fmt.Printf("Warning: failed to persist deletion: %v\n", err)
	}
	if _, selected := a.state.Selected(); !selected && a.state.Mode() == ModeBrowse {
		a.showBrowse()
	} else {
		a.refreshGrid()
	}
	a.statusLabel.SetText("Card deleted")
}

// onToggleReview switches between browse and review ordering.
func (a *Application) onToggleReview() {
	if a.state.Mode() == ModeBrowse {
		a.state.SetMode(ModeReview)
	} else {
		a.state.SetMode(ModeBrowse)
	}
	a.showBrowse()
}

// onToggleEdit flips the per-card delete affordance.
func (a *Application) onToggleEdit() {
	a.state.ToggleEdit()
	a.refreshGrid()
}

// onAddWord opens the add-word sheet.
func (a *Application) onAddWord() {
	a.mu.Lock()
	busy := a.generating
	a.mu.Unlock()
	if busy {
		return
	}

	wordEntry := widget.NewEntry()
	wordEntry.SetPlaceHolder("French word...")

	d := dialog.NewForm("Add Word", "Generate", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Word", wordEntry)},
		func(confirmed bool) {
			if !confirmed {
				return
			}
			a.generateWord(wordEntry.Text)
		}, a.window)
	d.Resize(fyne.NewSize(380, 140))
	d.Show()
	a.window.Canvas().Focus(wordEntry)
}

// generateWord runs the generation round-trip in the background. The add
// button stays disabled until it completes: at most one generation in flight.
func (a *Application) generateWord(word string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}

	a.mu.Lock()
	if a.generating {
		a.mu.Unlock()
		return
	}
	a.generating = true
	a.mu.Unlock()

	a.addButton.Disable()
	a.statusLabel.SetText(fmt.Sprintf("Generating card for '%s'...", word))

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		w, err := a.state.GenerateAndAdd(a.ctx, a.generator, word)

		a.mu.Lock()
		a.generating = false
		a.mu.Unlock()

		fyne.Do(func() {
			a.addButton.Enable()

			if err != nil {
				a.statusLabel.SetText("Ready")
				a.showGenerationError(err)
				return
			}

			a.refreshGrid()
			a.statusLabel.SetText(fmt.Sprintf("Added '%s'", w.French))
		})
	}()
}

// showGenerationError distinguishes the missing-credential failure, which has
// a remediation path, from the generic retry-suggesting failure.
func (a *Application) showGenerationError(err error) {
	if errors.Is(err, generate.ErrNoAPIKey) {
		dialog.NewConfirm("API Key Required",
			"No generation API key is configured.\nOpen settings to add one?",
			func(open bool) {
				if open {
					a.onShowSettings()
				}
			}, a.window).Show()
		return
	}
	dialog.ShowError(fmt.Errorf("Card generation failed: %w\n\nPlease try again.", err), a.window)
}
